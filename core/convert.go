package core

// Colorspace conversions from raw camera buffers into the canonical Image
// form. Each conversion assumes frame has already been sized to the capture
// dimensions and that the source buffer holds at least one full frame.

// YUYVToRGB converts a packed YUYV 4:2:2 buffer into an RGB image.
// Two pixels are decoded per step; frame.Width must be even.
func YUYVToRGB(yuyv []byte, frame *Image) {
	for x := 0; x < frame.Width*frame.Height; x += 2 {
		in := x * 2
		out := x * Channels

		y0 := float64(yuyv[in+0])
		cb := float64(yuyv[in+1]) - 128
		y1 := float64(yuyv[in+2])
		cr := float64(yuyv[in+3]) - 128

		frame.Data[out+0] = ClampU8(y0 + 1.402*cr)
		frame.Data[out+1] = ClampU8(y0 - 0.344*cb - 0.714*cr)
		frame.Data[out+2] = ClampU8(y0 + 1.772*cb)

		frame.Data[out+3] = ClampU8(y1 + 1.402*cr)
		frame.Data[out+4] = ClampU8(y1 - 0.344*cb - 0.714*cr)
		frame.Data[out+5] = ClampU8(y1 + 1.772*cb)
	}
}

// YUYVToGreyscale converts a packed YUYV 4:2:2 buffer into a greyscale image
// by keeping only the luma samples.
func YUYVToGreyscale(yuyv []byte, frame *Image) {
	for x := 0; x < frame.Width*frame.Height; x += 2 {
		in := x * 2
		out := x * Channels

		y0 := yuyv[in+0]
		y1 := yuyv[in+2]

		frame.Data[out+0] = y0
		frame.Data[out+1] = y0
		frame.Data[out+2] = y0

		frame.Data[out+3] = y1
		frame.Data[out+4] = y1
		frame.Data[out+5] = y1
	}
}

// NV12ToRGB converts a planar-luma/interleaved-chroma NV12 buffer into RGB.
func NV12ToRGB(nv12 []byte, frame *Image) {
	widthHalf := frame.Width / 2
	for y := 0; y < frame.Height; y++ {
		yEven := y &^ 1
		for x := 0; x < frame.Width; x++ {
			xEven := x &^ 1

			luma := float64(nv12[y*frame.Width+x])
			cIndex := frame.Width*frame.Height + yEven*widthHalf + xEven
			cb := float64(nv12[cIndex+0]) - 128
			cr := float64(nv12[cIndex+1]) - 128

			out := (y*frame.Width + x) * Channels
			frame.Data[out+0] = ClampU8(luma + 1.402*cr)
			frame.Data[out+1] = ClampU8(luma - 0.344*cb - 0.714*cr)
			frame.Data[out+2] = ClampU8(luma + 1.772*cb)
		}
	}
}

// NV12ToGreyscale converts an NV12 buffer into a greyscale image from its
// luma plane alone.
func NV12ToGreyscale(nv12 []byte, frame *Image) {
	for x := 0; x < frame.Width*frame.Height; x++ {
		out := x * Channels
		luma := nv12[x]

		frame.Data[out+0] = luma
		frame.Data[out+1] = luma
		frame.Data[out+2] = luma
	}
}

// RGBToRGB copies a packed RGB buffer into the frame verbatim.
func RGBToRGB(rgb []byte, frame *Image) {
	copy(frame.Data, rgb[:frame.Width*frame.Height*Channels])
}

// RGBToGreyscale converts src into a greyscale image using BT.601 luma.
// dst is resized to match src. src and dst may alias.
func RGBToGreyscale(src, dst *Image) {
	dst.MatchSize(src)
	for x := 0; x < src.Width*src.Height; x++ {
		i := x * Channels

		luma := ClampU8(0.299*float64(src.Data[i+0]) +
			0.587*float64(src.Data[i+1]) +
			0.114*float64(src.Data[i+2]))

		dst.Data[i+0] = luma
		dst.Data[i+1] = luma
		dst.Data[i+2] = luma
	}
}

// BGRVerticalMirroredToRGB converts a bottom-up BGR buffer (the Windows
// capture layout) into a top-down RGB image.
func BGRVerticalMirroredToRGB(bgr []byte, frame *Image) {
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			in := ((frame.Height-y-1)*frame.Width + x) * Channels
			out := (y*frame.Width + x) * Channels

			frame.Data[out+0] = bgr[in+2]
			frame.Data[out+1] = bgr[in+1]
			frame.Data[out+2] = bgr[in+0]
		}
	}
}

// BlendAdd writes the saturating per-byte sum of a and b into dst.
// Panics with ErrSizeMismatch if a and b differ in size: blending
// differently sized frames is a caller bug.
func BlendAdd(a, b, dst *Image) {
	if a.Width != b.Width || a.Height != b.Height {
		panic(ErrSizeMismatch)
	}
	dst.MatchSize(a)
	for i := range a.Data {
		dst.Data[i] = clampInt(int(a.Data[i]) + int(b.Data[i]))
	}
}
