package neural_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sudokuar/core"
	"github.com/katalvlaran/sudokuar/neural"
	"github.com/katalvlaran/sudokuar/warp"
)

// extractFull warps the whole source image, corners un-jittered, into the
// classifier's input size.
func extractFull(src, dst *core.Image) error {
	corners := warp.UnitRect(float64(src.Width), float64(src.Height))
	return warp.ExtractImage(src, corners, dst, neural.WarpSize, neural.WarpSize)
}

// tileImage builds a TileSize×TileSize greyscale image from f.
func tileImage(f func(x, y int) byte) *core.Image {
	img := core.NewImage(neural.TileSize, neural.TileSize)
	for y := 0; y < neural.TileSize; y++ {
		for x := 0; x < neural.TileSize; x++ {
			img.SetGrey(x, y, f(x, y))
		}
	}
	return img
}

func TestBinarize_InkOnPaper(t *testing.T) {
	// Black 4×4 glyph blob on white paper.
	img := tileImage(func(x, y int) byte {
		if x >= 6 && x < 10 && y >= 6 && y < 10 {
			return 0
		}
		return 255
	})

	out := make([]float32, neural.TileSize*neural.TileSize)
	neural.Binarize(img, 0, 0, neural.TileSize, neural.TileSize, neural.InferenceContrast, out)

	assert.Equal(t, float32(0), out[8*neural.TileSize+8], "ink pixel")
	assert.Equal(t, float32(1), out[2*neural.TileSize+2], "paper pixel")
}

func TestBinarize_AllDarkTileGoesLow(t *testing.T) {
	img := tileImage(func(x, y int) byte { return 0 })

	out := make([]float32, neural.TileSize*neural.TileSize)
	neural.Binarize(img, 0, 0, neural.TileSize, neural.TileSize, neural.InferenceContrast, out)

	for i, v := range out {
		require.Equal(t, float32(0), v, "pixel %d", i)
	}
}

func TestBinarize_UniformBrightTileGoesHigh(t *testing.T) {
	img := tileImage(func(x, y int) byte { return 180 })

	out := make([]float32, neural.TileSize*neural.TileSize)
	neural.Binarize(img, 0, 0, neural.TileSize, neural.TileSize, neural.InferenceContrast, out)

	for i, v := range out {
		require.Equal(t, float32(1), v, "pixel %d", i)
	}
}

func TestBinarize_HonoursRegionOffset(t *testing.T) {
	// Two tiles side by side: left all dark, right all bright.
	img := core.NewImage(2*neural.TileSize, neural.TileSize)
	for y := 0; y < neural.TileSize; y++ {
		for x := 0; x < 2*neural.TileSize; x++ {
			v := byte(0)
			if x >= neural.TileSize {
				v = 200
			}
			img.SetGrey(x, y, v)
		}
	}

	out := make([]float32, neural.TileSize*neural.TileSize)
	neural.Binarize(img, neural.TileSize, 0, neural.TileSize, neural.TileSize, neural.InferenceContrast, out)
	assert.Equal(t, float32(1), out[0], "right tile must not see the left tile")
}

func TestShuffleEdges_KeepOneIsIdentity(t *testing.T) {
	tile := make([]float32, neural.TileSize*neural.TileSize)
	for y := 4; y < 12; y++ {
		for x := 4; x < 12; x++ {
			tile[y*neural.TileSize+x] = 1
		}
	}
	want := append([]float32(nil), tile...)

	neural.ShuffleEdges(tile, neural.TileSize, neural.TileSize, 1.0, rand.New(rand.NewSource(1)))
	assert.Equal(t, want, tile)
}

func TestShuffleEdges_KeepZeroPerturbsEveryEdge(t *testing.T) {
	tile := make([]float32, neural.TileSize*neural.TileSize)
	for y := 4; y < 12; y++ {
		for x := 4; x < 12; x++ {
			tile[y*neural.TileSize+x] = 1
		}
	}
	before := append([]float32(nil), tile...)

	neural.ShuffleEdges(tile, neural.TileSize, neural.TileSize, 0.0, rand.New(rand.NewSource(1)))

	changed := 0
	for i := range tile {
		if tile[i] != before[i] {
			changed++
		}
	}
	assert.Positive(t, changed, "keep = 0 must perturb the block boundary")

	// Interior of the block is not an edge and keeps its value.
	assert.Equal(t, float32(1), tile[8*neural.TileSize+8])
}

func TestSynthesizer_DeterministicAndWellFormed(t *testing.T) {
	a := neural.NewSynthesizer(123).Generate(2)
	b := neural.NewSynthesizer(123).Generate(2)
	other := neural.NewSynthesizer(124).Generate(2)

	require.Len(t, a, 2*81)
	assert.Equal(t, a, b, "same seed, same corpus")
	assert.NotEqual(t, a, other, "different seed, different corpus")

	for i := range a {
		require.Len(t, a[i].Input, neural.PadTo8(neural.InputSize+1))
		assert.Equal(t, float32(1), a[i].Input[neural.InputSize], "bias input")
		assert.LessOrEqual(t, a[i].Label, uint8(9))
		for _, v := range a[i].Input[:neural.InputSize] {
			require.True(t, v == 0 || v == 1, "binarised inputs are 0/1")
		}
	}
}

func TestSynthesizer_FreshThresholdParamsPerSample(t *testing.T) {
	s := neural.NewSynthesizer(7)

	contrasts := make(map[float64]struct{})
	keeps := make(map[float64]struct{})
	for i := 0; i < 81; i++ {
		contrast, keep := neural.DrawBinarizeParams(s)
		assert.GreaterOrEqual(t, contrast, 2.0)
		assert.Less(t, contrast, 4.0)
		assert.GreaterOrEqual(t, keep, 0.95)
		assert.Less(t, keep, 0.99)
		contrasts[contrast] = struct{}{}
		keeps[keep] = struct{}{}
	}

	// One draw per tile sample: consecutive draws must not repeat a single
	// shared value across a grid's 81 tiles.
	assert.Greater(t, len(contrasts), 1)
	assert.Greater(t, len(keeps), 1)
}

func TestClassifyTiles_ShapeAndLabelRange(t *testing.T) {
	var rendered, warped core.Image
	digits := make([]uint8, 81)
	digits[0] = 3
	warp.NewRenderer().RenderPuzzleGrid(digits, &rendered)
	require.NoError(t, extractFull(&rendered, &warped))

	net := neural.NewNetwork(neural.InputSize, neural.DigitChoices(), 9)
	got := neural.ClassifyTiles(net, &warped)
	for _, d := range got {
		assert.LessOrEqual(t, d, uint8(9))
	}
}
