package canny

import (
	"math"

	"github.com/katalvlaran/sudokuar/core"
)

// Gradient stores one (magnitude, angle) pair per pixel of a source image,
// interleaved in row-major order. Magnitude ≥ 0; angle ∈ (−π, π].
type Gradient struct {
	Width  int
	Height int
	Data   []float64 // len == Width*Height*2
}

// resize adjusts the gradient map dimensions, reusing the buffer when able,
// and zeroes it.
func (g *Gradient) resize(width, height int) {
	g.Width = width
	g.Height = height
	need := width * height * 2
	if cap(g.Data) < need {
		g.Data = make([]float64, need)
		return
	}
	g.Data = g.Data[:need]
	for i := range g.Data {
		g.Data[i] = 0
	}
}

// At returns the (magnitude, angle) pair for pixel (x, y).
func (g *Gradient) At(x, y int) (magnitude, angle float64) {
	i := (y*g.Width + x) * 2
	return g.Data[i], g.Data[i+1]
}

// Sobel computes the gradient of channel 0 with the standard 3×3 masks.
// The one-pixel border keeps (0, 0).
func Sobel(img *core.Image, grad *Gradient) {
	grad.resize(img.Width, img.Height)
	if img.Width < 3 || img.Height < 3 {
		return
	}

	rowSpan := img.Width * core.Channels
	for y := 1; y < img.Height-1; y++ {
		for x := 1; x < img.Width-1; x++ {
			i := (y*img.Width + x) * core.Channels
			d := img.Data

			gx := -float64(d[i-rowSpan-3]) + float64(d[i-rowSpan+3]) +
				-2*float64(d[i-3]) + 2*float64(d[i+3]) +
				-float64(d[i+rowSpan-3]) + float64(d[i+rowSpan+3])
			gy := -float64(d[i-rowSpan-3]) - 2*float64(d[i-rowSpan]) - float64(d[i-rowSpan+3]) +
				float64(d[i+rowSpan-3]) + 2*float64(d[i+rowSpan]) + float64(d[i+rowSpan+3])

			o := (y*img.Width + x) * 2
			grad.Data[o+0] = math.Hypot(gx, gy)
			grad.Data[o+1] = math.Atan2(gy, gx)
		}
	}
}
