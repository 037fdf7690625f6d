package canny

// Bridges exposing internals to the external tests.
var (
	GaussianKernel = gaussianKernel
	Histogram      = histogram
	OtsuThreshold  = otsuThreshold
)
