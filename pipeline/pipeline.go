package pipeline

import (
	"github.com/katalvlaran/sudokuar/canny"
	"github.com/katalvlaran/sudokuar/core"
	"github.com/katalvlaran/sudokuar/hough"
	"github.com/katalvlaran/sudokuar/neural"
	"github.com/katalvlaran/sudokuar/puzzlefinder"
	"github.com/katalvlaran/sudokuar/sudoku"
	"github.com/katalvlaran/sudokuar/warp"
)

// Camera hands frames to the pipeline. Capture methods return false when no
// frame is available; the pipeline treats that as "skip this iteration".
type Camera interface {
	CaptureFrameRGB(frame *core.Image) bool
	CaptureFrameGreyscale(frame *core.Image) bool
}

// Options configures the per-frame stages. Zero-valued fields take the
// stage defaults.
type Options struct {
	BlurRadius float64
	Hough      hough.Options
	Finder     puzzlefinder.Options
}

// DefaultOptions returns the stage defaults.
func DefaultOptions() Options {
	return Options{
		BlurRadius: canny.DefaultRadius,
		Hough:      hough.DefaultOptions(),
		Finder:     puzzlefinder.DefaultOptions(),
	}
}

// Result is one frame's outcome. Found reports grid corners; Solved
// additionally reports a usable solution. Solution is owned by the solver
// cache and must not be mutated.
type Result struct {
	Found   bool
	Corners [4]core.Point

	Digits [81]uint8

	Solved   bool
	Solution []uint8
}

// Pipeline runs the frame loop stages. Not safe for concurrent use.
type Pipeline struct {
	detector *canny.Detector
	acc      *hough.Accumulator
	finder   *puzzlefinder.Finder
	net      *neural.Network
	solver   *sudoku.CachedPuzzleSolver
	renderer *warp.Renderer

	grey   core.Image
	edges  core.Image
	warped core.Image
	glyphs core.Image
}

// New builds a Pipeline around a trained classifier.
func New(net *neural.Network, opts Options) *Pipeline {
	radius := opts.BlurRadius
	if radius <= 0 {
		radius = canny.DefaultRadius
	}
	return &Pipeline{
		detector: canny.NewDetector(radius),
		acc:      hough.NewAccumulator(opts.Hough),
		finder:   puzzlefinder.New(opts.Finder),
		net:      net,
		solver:   sudoku.NewCachedPuzzleSolver(),
		renderer: warp.NewRenderer(),
	}
}

// Finder exposes the grid detector's inspectable state for debug overlays.
func (p *Pipeline) Finder() *puzzlefinder.Finder {
	return p.finder
}

// Process runs every stage on one RGB frame. Any stage that finds nothing
// short-circuits to an empty Result; per-frame failure is normal and never
// an error.
func (p *Pipeline) Process(frame *core.Image) Result {
	var result Result

	core.RGBToGreyscale(frame, &p.grey)
	p.detector.Process(&p.grey, &p.edges)
	p.acc.Transform(&p.edges)

	corners, found := p.finder.Find(frame.Width, frame.Height, p.acc)
	if !found {
		return result
	}
	result.Found = true
	result.Corners = corners

	if err := warp.ExtractImage(&p.grey, corners, &p.warped, neural.WarpSize, neural.WarpSize); err != nil {
		return result
	}
	result.Digits = neural.ClassifyTiles(p.net, &p.warped)

	solution, ok := p.solver.Solve(result.Digits[:])
	if !ok {
		// Fall back to the best recently-used solution while a background
		// solve is pending.
		solution, ok = p.solver.GetMostLikelySolution()
	}
	result.Solved = ok
	result.Solution = solution
	return result
}

// ProcessCamera captures one RGB frame into the caller's buffer and runs
// Process on it. ok is false when the camera had no frame.
func (p *Pipeline) ProcessCamera(cam Camera, frame *core.Image) (Result, bool) {
	if !cam.CaptureFrameRGB(frame) {
		return Result{}, false
	}
	return p.Process(frame), true
}

// Overlay composites the solved digits onto the frame in place: the digits
// the classifier did not read are rendered as glyphs, warped into the
// detected quad and added to the camera image. No-op unless Solved.
func (p *Pipeline) Overlay(frame *core.Image, result Result) {
	if !result.Solved {
		return
	}

	var missing [81]uint8
	for i, digit := range result.Digits {
		if digit == 0 {
			missing[i] = result.Solution[i]
		}
	}
	p.renderer.RenderPuzzleGlyphs(missing[:], &p.glyphs)

	// Map frame coordinates into glyph space and add the samples.
	h, err := warp.NewHomography(result.Corners, warp.UnitRect(warp.RenderSize, warp.RenderSize))
	if err != nil {
		return
	}

	minX, minY, maxX, maxY := cornerBounds(result.Corners, frame.Width, frame.Height)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			gx, gy := h.Apply(float64(x), float64(y))
			sx, sy := int(gx), int(gy)
			if sx < 0 || sx >= warp.RenderSize || sy < 0 || sy >= warp.RenderSize {
				continue
			}

			src := p.glyphs.Index(sx, sy)
			dst := frame.Index(x, y)
			for c := 0; c < core.Channels; c++ {
				frame.Data[dst+c] = core.ClampU8(float64(frame.Data[dst+c]) + float64(p.glyphs.Data[src+c]))
			}
		}
	}
}

// cornerBounds clips the quad's bounding box to the frame.
func cornerBounds(corners [4]core.Point, w, h int) (minX, minY, maxX, maxY int) {
	minX, minY = w-1, h-1
	for _, c := range corners {
		x, y := int(c.X), int(c.Y)
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > w-1 {
		maxX = w - 1
	}
	if maxY > h-1 {
		maxY = h - 1
	}
	return minX, minY, maxX, maxY
}
