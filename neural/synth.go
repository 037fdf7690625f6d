package neural

import (
	"math/rand"

	"github.com/katalvlaran/sudokuar/core"
	"github.com/katalvlaran/sudokuar/warp"
)

// WarpSize is the edge length of the warped puzzle image handed to the
// classifier: 9 cells of TileSize pixels.
const WarpSize = 9 * TileSize

// DefaultTrainingGrids is the number of random puzzles one training
// invocation renders.
const DefaultTrainingGrids = 3000

// cornerJitter is the maximum per-coordinate displacement, in pixels,
// applied to the rendered puzzle's corners before warping. It imitates an
// imperfect corner detection.
const cornerJitter = 15.0

// Synthesizer produces labelled training samples by rendering random
// puzzles and pushing them through the same warp and binarise steps the
// live pipeline uses. No hand-labelled data is involved.
type Synthesizer struct {
	rng      *rand.Rand
	renderer *warp.Renderer

	rendered core.Image
	warped   core.Image
	tile     []float32
}

// NewSynthesizer returns a deterministic Synthesizer for the seed.
func NewSynthesizer(seed int64) *Synthesizer {
	return &Synthesizer{
		rng:      rand.New(rand.NewSource(seed)),
		renderer: warp.NewRenderer(),
		tile:     make([]float32, TileSize*TileSize),
	}
}

// Generate renders the given number of grids and returns their 81·grids
// tile samples, shuffled.
func (s *Synthesizer) Generate(grids int) []Sample {
	samples := make([]Sample, 0, grids*81)

	digits := make([]uint8, 81)
	for g := 0; g < grids; g++ {
		for i := range digits {
			digits[i] = uint8(s.rng.Intn(10))
		}
		samples = s.appendGridSamples(samples, digits)
	}

	s.rng.Shuffle(len(samples), func(i, j int) {
		samples[i], samples[j] = samples[j], samples[i]
	})
	return samples
}

// appendGridSamples renders one grid, warps it through jittered corners and
// appends its 81 binarised tiles.
func (s *Synthesizer) appendGridSamples(samples []Sample, digits []uint8) []Sample {
	s.renderer.RenderPuzzleGrid(digits, &s.rendered)

	corners := warp.UnitRect(warp.RenderSize, warp.RenderSize)
	for i := range corners {
		corners[i].X += (s.rng.Float64()*2 - 1) * cornerJitter
		corners[i].Y += (s.rng.Float64()*2 - 1) * cornerJitter
	}
	if err := warp.ExtractImage(&s.rendered, corners, &s.warped, WarpSize, WarpSize); err != nil {
		// Jittered rectangles cannot degenerate; treat it as a bug.
		panic(err)
	}

	for i, digit := range digits {
		x0 := (i % 9) * TileSize
		y0 := (i / 9) * TileSize
		contrast, keep := s.binarizeParams()
		Binarize(&s.warped, x0, y0, TileSize, TileSize, contrast, s.tile)
		ShuffleEdges(s.tile, TileSize, TileSize, keep, s.rng)
		samples = append(samples, NewSample(digit, s.tile))
	}
	return samples
}

// binarizeParams draws one tile sample's thresholder contrast a ∈ [2, 4]
// and edge-shuffle keep probability V ∈ [0.95, 0.99]. A fresh pair per
// sample, never shared across a grid.
func (s *Synthesizer) binarizeParams() (contrast, keep float64) {
	return 2 + 2*s.rng.Float64(), 0.95 + 0.04*s.rng.Float64()
}

// ClassifyTiles binarises the 81 cells of a WarpSize×WarpSize puzzle image
// and classifies each with the network.
func ClassifyTiles(n *Network, warped *core.Image) [81]uint8 {
	var digits [81]uint8
	tile := make([]float32, TileSize*TileSize)
	for i := range digits {
		x0 := (i % 9) * TileSize
		y0 := (i / 9) * TileSize
		Binarize(warped, x0, y0, TileSize, TileSize, InferenceContrast, tile)
		digits[i] = n.Run(tile)
	}
	return digits
}
