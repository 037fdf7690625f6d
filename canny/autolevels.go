package canny

import "github.com/katalvlaran/sudokuar/core"

// clipping is the fraction of intensity range intentionally saturated at
// each tail during auto-levels. Crushing the extremes stretches the middle
// of the histogram, which is where the grid strokes live.
const clipping = 0.1

// AutoLevels rescales intensities so the darkest and brightest parts of the
// valid aperture clip by 10 % each. ignorePadding excludes the blur border
// from the min/max scan (those pixels are zero and would wreck the range).
//
// When the input range is too narrow for the clipped rescale (Δ ≤ 0), the
// image is passed through unchanged. dst is resized to match src.
func AutoLevels(src, dst *core.Image, ignorePadding int) {
	dst.MatchSize(src)

	if src.Width < ignorePadding*2 || src.Height < ignorePadding*2 {
		copy(dst.Data, src.Data)
		return
	}

	minValue := byte(255)
	maxValue := byte(0)
	for y := ignorePadding; y < src.Height-ignorePadding; y++ {
		for x := ignorePadding; x < src.Width-ignorePadding; x++ {
			v := src.Grey(x, y)
			if v < minValue {
				minValue = v
			}
			if v > maxValue {
				maxValue = v
			}
		}
	}

	delta := float64(maxValue-minValue)/255.0 - clipping*2
	if delta <= 0 {
		copy(dst.Data, src.Data)
		return
	}

	for p := 0; p < src.Width*src.Height; p++ {
		i := p * core.Channels
		v := core.ClampU8((float64(src.Data[i]) - float64(minValue)) / delta)
		dst.Data[i+0] = v
		dst.Data[i+1] = v
		dst.Data[i+2] = v
	}
}
