package warp

import (
	"math"

	"github.com/katalvlaran/sudokuar/core"
)

// ExtractImage resamples the quadrilateral of src between the four corners
// (TL, TR, BR, BL) into a dstW×dstH rectangle. Each destination pixel is
// inverse-mapped through the homography and sampled nearest-neighbour;
// samples falling outside src come back black.
//
// dst is resized in place. Returns ErrSingular for degenerate corners.
func ExtractImage(src *core.Image, corners [4]core.Point, dst *core.Image, dstW, dstH int) error {
	h, err := NewHomography(UnitRect(float64(dstW), float64(dstH)), corners)
	if err != nil {
		return err
	}

	dst.Resize(dstW, dstH)
	for y := 0; y < dstH; y++ {
		for x := 0; x < dstW; x++ {
			sxf, syf := h.Apply(float64(x), float64(y))
			sx := int(math.Round(sxf))
			sy := int(math.Round(syf))

			o := (y*dstW + x) * core.Channels
			if sx < 0 || sx >= src.Width || sy < 0 || sy >= src.Height {
				dst.Data[o+0] = 0
				dst.Data[o+1] = 0
				dst.Data[o+2] = 0
				continue
			}

			i := (sy*src.Width + sx) * core.Channels
			dst.Data[o+0] = src.Data[i+0]
			dst.Data[o+1] = src.Data[i+1]
			dst.Data[o+2] = src.Data[i+2]
		}
	}
	return nil
}
