package canny

import "github.com/katalvlaran/sudokuar/core"

// DefaultRadius is the Gaussian blur radius the pipeline uses when nothing
// better is known about the camera's noise profile.
const DefaultRadius = 5.0

// Detector runs the full Canny pipeline. It owns every intermediate buffer
// and reuses them across frames; construct one per video stream and call
// Process once per frame. Not safe for concurrent use.
type Detector struct {
	radius float64

	blurScratch core.Image
	blurred     core.Image
	levelled    core.Image
	gradient    Gradient
	hist        [256]float64
	suppressed  core.Image
}

// NewDetector returns a Detector with the given Gaussian blur radius.
// Radius must be positive; larger radii suppress more texture noise at the
// cost of a wider dead border and weakly fewer retained edges.
func NewDetector(radius float64) *Detector {
	if radius <= 0 {
		panic("canny: radius must be positive")
	}
	return &Detector{radius: radius}
}

// Process extracts edges from a greyscale input (R=G=B=luma). On return,
// dst channel 0 holds 255 on retained edge pixels and 0 elsewhere.
//
// Process never fails: degenerate inputs produce an all-zero mask.
func (d *Detector) Process(src, dst *core.Image) {
	Gaussian(src, &d.blurred, &d.blurScratch, d.radius)
	AutoLevels(&d.blurred, &d.levelled, int(d.radius)+1)
	Sobel(&d.levelled, &d.gradient)

	histogram(&d.levelled, &d.hist)
	high := otsuThreshold(&d.hist)
	low := high / 2

	suppressNonMaxima(&d.gradient, &d.suppressed, low, high)
	linkHysteresis(&d.suppressed)

	LineThinning(&d.suppressed, dst)
}
