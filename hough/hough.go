package hough

import (
	"math"

	"github.com/katalvlaran/sudokuar/core"
	"github.com/katalvlaran/sudokuar/geometry"
)

// Accumulator is a dense 16-bit Hough voting grid.
//
// Layout: data[row*width + col]. Column c covers θ = c·π/width. Row r covers
// signed ρ = (r − H/2)·diag/(H/2), so the middle row is ρ = 0 and the grid
// spans [−diag, +diag].
type Accumulator struct {
	opts Options

	width  int
	height int

	inputW int
	inputH int
	diag   float64

	sin  []float64
	cos  []float64
	data []uint16
}

// NewAccumulator returns an empty accumulator. Grid and trig tables are
// allocated lazily on the first Transform, once the input size is known.
func NewAccumulator(opts Options) *Accumulator {
	return &Accumulator{opts: opts.withDefaults()}
}

// Size returns the grid dimensions (θ columns, ρ rows). Zero before the
// first Transform.
func (a *Accumulator) Size() (width, height int) {
	return a.width, a.height
}

// InputSize returns the dimensions of the last transformed edge image.
// Zero before the first Transform.
func (a *Accumulator) InputSize() (width, height int) {
	return a.inputW, a.inputH
}

// At returns the vote count of cell (thetaIndex, rhoIndex).
func (a *Accumulator) At(thetaIndex, rhoIndex int) uint16 {
	return a.data[rhoIndex*a.width+thetaIndex]
}

// Line converts a grid cell back to the line it represents, in canonical
// ρ ≥ 0, θ ∈ [0, 2π) form.
func (a *Accumulator) Line(thetaIndex, rhoIndex int) geometry.Line {
	halfHeight := float64(a.height) / 2
	theta := float64(thetaIndex) * math.Pi / float64(a.width)
	rho := (float64(rhoIndex) - halfHeight) * a.diag / halfHeight
	return geometry.NewLine(theta, rho)
}

// resize rebuilds the grid and trig tables for a new input size.
func (a *Accumulator) resize(inputW, inputH int) {
	a.inputW = inputW
	a.inputH = inputH
	a.diag = math.Hypot(float64(inputW), float64(inputH))

	a.width = a.opts.Width
	a.height = a.opts.Height
	if a.height <= 0 {
		a.height = min(inputW, inputH)
	}

	if len(a.sin) != a.width {
		a.sin = make([]float64, a.width)
		a.cos = make([]float64, a.width)
	}
	for c := 0; c < a.width; c++ {
		theta := float64(c) * math.Pi / float64(a.width)
		a.sin[c] = math.Sin(theta)
		a.cos[c] = math.Cos(theta)
	}

	need := a.width * a.height
	if cap(a.data) < need {
		a.data = make([]uint16, need)
	}
	a.data = a.data[:need]
}

// Transform clears the grid and casts one vote per (edge pixel, θ column)
// pair. An edge pixel is any pixel with 255 in channel 0; pixels within the
// configured border are skipped. Cells saturate at 0xFFFF.
func (a *Accumulator) Transform(edges *core.Image) {
	if edges.Width != a.inputW || edges.Height != a.inputH || len(a.data) == 0 {
		a.resize(edges.Width, edges.Height)
	}
	for i := range a.data {
		a.data[i] = 0
	}

	border := a.opts.Border
	if edges.Width <= border*2 || edges.Height <= border*2 {
		return
	}

	halfHeight := float64(a.height) / 2
	rowScale := halfHeight / a.diag

	for y := border; y < edges.Height-border; y++ {
		for x := border; x < edges.Width-border; x++ {
			if edges.Data[(y*edges.Width+x)*core.Channels] != 255 {
				continue
			}

			xf, yf := float64(x), float64(y)
			for c := 0; c < a.width; c++ {
				rho := xf*a.cos[c] + yf*a.sin[c]
				row := int(rho*rowScale + halfHeight)
				if row < 0 {
					row = 0
				} else if row >= a.height {
					row = a.height - 1
				}

				cell := &a.data[row*a.width+c]
				if *cell != math.MaxUint16 {
					*cell++
				}
			}
		}
	}
}
