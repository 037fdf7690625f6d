package canny

import (
	"math"

	"github.com/katalvlaran/sudokuar/core"
)

// gaussianKernel builds the 1-D blur kernel for the given radius.
//
// Weights follow g(x) = exp(−x²/(2σ²)) − exp(−r²/(2σ²)) with σ = r/3, so the
// kernel reaches zero at ±r instead of being truncated mid-slope. Weights
// are normalised to sum to 1 and clamped to ≥ 0 (the outermost taps of the
// cooked Gaussian can dip fractionally below zero).
func gaussianKernel(radius float64) (weights []float64, weightRadius int) {
	sigma := radius / 3.0
	sigma2Times2 := 2 * sigma * sigma
	tail := math.Exp(-(radius * radius) / sigma2Times2)

	weightRadius = int(radius) + 1
	count := weightRadius*2 + 1

	weights = make([]float64, count)
	sum := 0.0
	for i := range weights {
		x := float64(i - weightRadius)
		w := 0.0
		if math.Abs(x) <= radius {
			w = math.Exp(-(x*x)/sigma2Times2) - tail
		}
		weights[i] = w
		sum += w
	}

	for i, w := range weights {
		weights[i] = math.Max(0, w/sum)
	}
	return weights, weightRadius
}

// Gaussian applies a separable Gaussian blur of the given radius.
//
// Border policy: pixels within ⌊r⌋+1 of any image edge are left at zero in
// the output. There is no wrapping or mirroring; the valid aperture shrinks
// and later stages ignore the frame margin anyway.
//
// dst is resized to match src. scratch holds the horizontally blurred
// intermediate and is resized as needed.
func Gaussian(src, dst, scratch *core.Image, radius float64) {
	dst.MatchSize(src)
	dst.Fill(0)

	weights, wr := gaussianKernel(radius)
	if src.Width <= 2*wr || src.Height <= 2*wr {
		return
	}

	scratch.MatchSize(src)
	scratch.Fill(0)

	// Horizontal pass into scratch.
	for y := wr; y < src.Height-wr; y++ {
		for x := wr; x < src.Width-wr; x++ {
			var sum [3]float64
			for w, weight := range weights {
				i := (y*src.Width + x + w - wr) * core.Channels
				sum[0] += float64(src.Data[i+0]) * weight
				sum[1] += float64(src.Data[i+1]) * weight
				sum[2] += float64(src.Data[i+2]) * weight
			}
			o := (y*src.Width + x) * core.Channels
			scratch.Data[o+0] = core.ClampU8(sum[0])
			scratch.Data[o+1] = core.ClampU8(sum[1])
			scratch.Data[o+2] = core.ClampU8(sum[2])
		}
	}

	// Vertical pass into dst.
	for y := wr; y < src.Height-wr; y++ {
		for x := wr; x < src.Width-wr; x++ {
			var sum [3]float64
			for w, weight := range weights {
				i := ((y+w-wr)*src.Width + x) * core.Channels
				sum[0] += float64(scratch.Data[i+0]) * weight
				sum[1] += float64(scratch.Data[i+1]) * weight
				sum[2] += float64(scratch.Data[i+2]) * weight
			}
			o := (y*src.Width + x) * core.Channels
			dst.Data[o+0] = core.ClampU8(sum[0])
			dst.Data[o+1] = core.ClampU8(sum[1])
			dst.Data[o+2] = core.ClampU8(sum[2])
		}
	}
}
