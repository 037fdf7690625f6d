package core

import "errors"

// Channels is the number of byte channels per pixel. Every Image carries
// three channels even when it holds greyscale or binary content.
const Channels = 3

// ErrSizeMismatch indicates two images that must share dimensions do not.
var ErrSizeMismatch = errors.New("core: image dimensions do not match")

// Point is a position in image space. Sub-pixel precision matters for grid
// corners, so both coordinates are floats.
type Point struct {
	X float64
	Y float64
}

// Image is a dense, row-major, three-channel byte raster.
//
// Invariant: len(Data) == Width*Height*Channels. The zero Image (0×0, nil
// data) is valid and satisfies the invariant.
type Image struct {
	Width  int
	Height int
	Data   []byte
}

// NewImage allocates a zeroed image of the given dimensions.
// Panics if either dimension is negative: impossible dimensions are a bug in
// the caller, not a runtime condition.
func NewImage(width, height int) *Image {
	if width < 0 || height < 0 {
		panic("core: negative image dimension")
	}
	return &Image{
		Width:  width,
		Height: height,
		Data:   make([]byte, width*height*Channels),
	}
}

// MatchSize resizes img to the dimensions of other, reallocating only when
// the current buffer is too small. Contents are unspecified afterwards.
func (img *Image) MatchSize(other *Image) {
	img.Resize(other.Width, other.Height)
}

// Resize sets the image dimensions, reusing the existing buffer when it is
// large enough. Contents are unspecified afterwards.
func (img *Image) Resize(width, height int) {
	if width < 0 || height < 0 {
		panic("core: negative image dimension")
	}
	img.Width = width
	img.Height = height
	need := width * height * Channels
	if cap(img.Data) < need {
		img.Data = make([]byte, need)
		return
	}
	img.Data = img.Data[:need]
}

// Fill sets every byte of every channel to value.
func (img *Image) Fill(value byte) {
	for i := range img.Data {
		img.Data[i] = value
	}
}

// Index returns the byte offset of channel 0 of pixel (x, y).
func (img *Image) Index(x, y int) int {
	return (y*img.Width + x) * Channels
}

// Grey returns channel 0 of pixel (x, y). For greyscale and binary content
// channel 0 is the intensity.
func (img *Image) Grey(x, y int) byte {
	return img.Data[img.Index(x, y)]
}

// SetGrey stores value in all three channels of pixel (x, y).
func (img *Image) SetGrey(x, y int, value byte) {
	i := img.Index(x, y)
	img.Data[i] = value
	img.Data[i+1] = value
	img.Data[i+2] = value
}

// SetRGB stores an RGB triple at pixel (x, y).
func (img *Image) SetRGB(x, y int, r, g, b byte) {
	i := img.Index(x, y)
	img.Data[i] = r
	img.Data[i+1] = g
	img.Data[i+2] = b
}

// Clone returns a deep copy of the image.
func (img *Image) Clone() *Image {
	out := NewImage(img.Width, img.Height)
	copy(out.Data, img.Data)
	return out
}

// ClampU8 clamps a float to the byte range [0, 255].
func ClampU8(value float64) byte {
	if value <= 0 {
		return 0
	}
	if value >= 255 {
		return 255
	}
	return byte(value)
}

// clampInt clamps an int to the byte range.
func clampInt(value int) byte {
	if value < 0 {
		return 0
	}
	if value > 255 {
		return 255
	}
	return byte(value)
}
