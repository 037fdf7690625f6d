package canny

import "github.com/katalvlaran/sudokuar/core"

// thinningMasks are the eight structuring elements of the morphological
// thinning pass (Digital Image Processing 3rd ed., §9.5.5). Per 3×3 cell:
// 0 = pixel must be off, 1 = pixel must be on, 2 = don't care. A center
// pixel matching any mask is deleted.
var thinningMasks = [8][9]byte{
	{0, 0, 0, 2, 1, 2, 1, 1, 1},
	{2, 0, 0, 1, 1, 0, 1, 1, 2},
	{1, 2, 0, 1, 1, 0, 1, 2, 0},
	{1, 1, 2, 1, 1, 0, 2, 0, 0},
	{1, 1, 1, 2, 1, 2, 0, 0, 0},
	{2, 1, 1, 0, 1, 1, 0, 0, 2},
	{0, 2, 1, 0, 1, 1, 0, 2, 1},
	{0, 0, 2, 0, 1, 1, 2, 1, 1},
}

// LineThinning performs one pass of morphological thinning on a binary edge
// image. A single pass is all Canny needs to knock one-pixel burrs off the
// hysteresis output; full thinning would iterate until convergence.
//
// All masks test against src while deletions land in dst, so the pass is
// order-independent. dst is resized to match src.
func LineThinning(src, dst *core.Image) {
	dst.MatchSize(src)
	copy(dst.Data, src.Data)
	if src.Width < 3 || src.Height < 3 {
		return
	}

	matches := func(mask *[9]byte, maskIndex, x, y int) bool {
		value := src.Grey(x, y)
		switch mask[maskIndex] {
		case 0:
			return value == 0
		case 1:
			return value == 255
		default:
			return true
		}
	}

	for m := range thinningMasks {
		mask := &thinningMasks[m]
		for y := 1; y < src.Height-1; y++ {
			for x := 1; x < src.Width-1; x++ {
				if src.Grey(x, y) != 255 {
					continue
				}

				if matches(mask, 0, x-1, y-1) && matches(mask, 1, x, y-1) && matches(mask, 2, x+1, y-1) &&
					matches(mask, 3, x-1, y) && matches(mask, 4, x, y) && matches(mask, 5, x+1, y) &&
					matches(mask, 6, x-1, y+1) && matches(mask, 7, x, y+1) && matches(mask, 8, x+1, y+1) {
					dst.SetGrey(x, y, 0)
				}
			}
		}
	}
}
