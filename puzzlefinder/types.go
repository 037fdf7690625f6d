package puzzlefinder

// gridLines is the number of parallel lines a Sudoku grid shows in each
// direction: 9 cells need 10 rulings.
const gridLines = 10

// Default tolerances for grid detection.
const (
	// DefaultThetaTolerance is the maximum angular distance, in radians,
	// between a line and its cluster's running mean.
	DefaultThetaTolerance = 0.08

	// DefaultPerpTolerance is the allowed deviation, in radians, from π/2
	// between the two chosen clusters' mean orientations.
	DefaultPerpTolerance = 0.08

	// DefaultSpacingTolerance bounds how far a consecutive ρ spacing may
	// stray from the run's median spacing, as a fraction of that median.
	DefaultSpacingTolerance = 0.20
)

// Options configures a Finder. The zero value of any field selects its
// default.
type Options struct {
	ThetaTolerance   float64
	PerpTolerance    float64
	SpacingTolerance float64
}

// DefaultOptions returns an Options with every field at its default.
func DefaultOptions() Options {
	return Options{
		ThetaTolerance:   DefaultThetaTolerance,
		PerpTolerance:    DefaultPerpTolerance,
		SpacingTolerance: DefaultSpacingTolerance,
	}
}

func (o Options) withDefaults() Options {
	if o.ThetaTolerance <= 0 {
		o.ThetaTolerance = DefaultThetaTolerance
	}
	if o.PerpTolerance <= 0 {
		o.PerpTolerance = DefaultPerpTolerance
	}
	if o.SpacingTolerance <= 0 {
		o.SpacingTolerance = DefaultSpacingTolerance
	}
	return o
}
