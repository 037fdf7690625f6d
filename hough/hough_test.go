package hough_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sudokuar/core"
	"github.com/katalvlaran/sudokuar/geometry"
	"github.com/katalvlaran/sudokuar/hough"
)

// edgeImage builds a size×size mask with 255 in channel 0 wherever on
// returns true.
func edgeImage(size int, on func(x, y int) bool) *core.Image {
	img := core.NewImage(size, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if on(x, y) {
				img.Data[(y*size+x)*core.Channels] = 255
			}
		}
	}
	return img
}

// containsLine reports whether any peak matches the target within the grid's
// quantisation tolerances.
func containsLine(peaks []geometry.Line, target geometry.Line) bool {
	for _, p := range peaks {
		if geometry.DifferenceTheta(p.Theta, target.Theta) < 0.02 &&
			math.Abs(p.Rho-target.Rho) < 5 {
			return true
		}
	}
	return false
}

func TestPeaks_EmptyBeforeTransform(t *testing.T) {
	acc := hough.NewAccumulator(hough.DefaultOptions())
	assert.Empty(t, acc.Peaks())
}

func TestTransform_RecoversDiagonalLine(t *testing.T) {
	// y = x, i.e. θ = 3π/4, ρ = 0 with image coordinates.
	edges := edgeImage(1000, func(x, y int) bool { return x == y })

	acc := hough.NewAccumulator(hough.DefaultOptions())
	acc.Transform(edges)
	peaks := acc.Peaks()

	require.Len(t, peaks, 1)
	assert.InDelta(t, 3*math.Pi/4, peaks[0].Theta, 0.02)
	assert.InDelta(t, 0, peaks[0].Rho, 3)
}

func TestTransform_RecoversPerpendicularPair(t *testing.T) {
	// y = x and x + y = 800: perpendicular at (400, 400).
	edges := edgeImage(1000, func(x, y int) bool {
		return x == y || x+y == 800
	})

	acc := hough.NewAccumulator(hough.DefaultOptions())
	acc.Transform(edges)
	peaks := acc.Peaks()

	require.GreaterOrEqual(t, len(peaks), 2)

	first := geometry.NewLine(3*math.Pi/4, 0)
	second := geometry.NewLine(math.Pi/4, 800/math.Sqrt2)
	assert.True(t, containsLine(peaks, first), "missing y = x")
	assert.True(t, containsLine(peaks, second), "missing x + y = 800")

	// No stray peaks away from the two drawn lines.
	for _, p := range peaks {
		near := containsLine([]geometry.Line{p}, first) ||
			containsLine([]geometry.Line{p}, second)
		assert.True(t, near, "unexpected peak θ=%.3f ρ=%.1f", p.Theta, p.Rho)
	}
}

func TestTransform_ShortSegmentBelowPeakFloor(t *testing.T) {
	// 100 collinear pixels cannot reach the 200-vote floor.
	edges := edgeImage(1000, func(x, y int) bool {
		return x == y && x >= 200 && x < 300
	})

	acc := hough.NewAccumulator(hough.DefaultOptions())
	acc.Transform(edges)
	assert.Empty(t, acc.Peaks())
}

func TestTransform_BorderPixelsDoNotVote(t *testing.T) {
	// All edge pixels sit inside the default 10-pixel border.
	edges := edgeImage(400, func(x, y int) bool { return y < 10 })

	acc := hough.NewAccumulator(hough.DefaultOptions())
	acc.Transform(edges)

	w, h := acc.Size()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			if acc.At(col, row) != 0 {
				t.Fatalf("cell (%d,%d) received votes from border pixels", col, row)
			}
		}
	}
}

func TestTransform_ClearsBetweenFrames(t *testing.T) {
	lined := edgeImage(1000, func(x, y int) bool { return x == y })
	blank := edgeImage(1000, func(x, y int) bool { return false })

	acc := hough.NewAccumulator(hough.DefaultOptions())
	acc.Transform(lined)
	require.NotEmpty(t, acc.Peaks())

	acc.Transform(blank)
	assert.Empty(t, acc.Peaks())
}

func TestOptions_Defaults(t *testing.T) {
	opts := hough.WithDefaults(hough.Options{})
	assert.Equal(t, hough.DefaultWidth, opts.Width)
	assert.Equal(t, hough.DefaultBorder, opts.Border)
	assert.Equal(t, uint16(hough.DefaultMinPeakValue), opts.MinPeakValue)
	assert.Equal(t, hough.DefaultPeakRadius, opts.PeakRadius)

	// Height stays zero: resolved against the input at transform time.
	assert.Zero(t, opts.Height)

	edges := edgeImage(400, func(x, y int) bool { return false })
	acc := hough.NewAccumulator(opts)
	acc.Transform(edges)
	w, h := acc.Size()
	assert.Equal(t, hough.DefaultWidth, w)
	assert.Equal(t, 400, h)
}

func BenchmarkTransform(b *testing.B) {
	edges := edgeImage(480, func(x, y int) bool { return (x+y)%17 == 0 })
	acc := hough.NewAccumulator(hough.DefaultOptions())

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		acc.Transform(edges)
	}
}
