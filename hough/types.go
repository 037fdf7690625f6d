package hough

// Default accumulator parameters. Width is the number of θ columns over
// [0, π); Height defaults to min(inputW, inputH) rows at transform time.
const (
	DefaultWidth        = 360
	DefaultBorder       = 10
	DefaultMinPeakValue = 200
	DefaultPeakRadius   = 5
)

// Options configures an Accumulator. The zero value of any field selects
// its default.
type Options struct {
	// Width is the θ resolution (columns).
	Width int

	// Height is the ρ resolution (rows). When zero, the accumulator uses
	// min(inputW, inputH) of the first transformed image.
	Height int

	// Border is the input-image margin, in pixels, whose edge pixels are
	// ignored. Edge detection is unreliable near the frame boundary.
	Border int

	// MinPeakValue is the minimum vote count for a cell to qualify as a
	// peak.
	MinPeakValue uint16

	// PeakRadius is the half-width of the strict-maximum window; a peak
	// must exceed every other cell within (2R+1)×(2R+1).
	PeakRadius int
}

// DefaultOptions returns an Options with every field at its default.
func DefaultOptions() Options {
	return Options{
		Width:        DefaultWidth,
		Border:       DefaultBorder,
		MinPeakValue: DefaultMinPeakValue,
		PeakRadius:   DefaultPeakRadius,
	}
}

// withDefaults fills zero-valued fields in place of the package defaults.
func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Border <= 0 {
		o.Border = DefaultBorder
	}
	if o.MinPeakValue == 0 {
		o.MinPeakValue = DefaultMinPeakValue
	}
	if o.PeakRadius <= 0 {
		o.PeakRadius = DefaultPeakRadius
	}
	return o
}
