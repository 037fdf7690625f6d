package geometry_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sudokuar/geometry"
)

func ExampleIntersectLines() {
	vertical := geometry.Line{Theta: 0, Rho: 5}            // x = 5
	horizontal := geometry.Line{Theta: math.Pi / 2, Rho: 7} // y = 7

	p, ok := geometry.IntersectLines(vertical, horizontal)
	fmt.Printf("%v (%.1f, %.1f)\n", ok, p.X, p.Y)
	// Output: true (5.0, 7.0)
}

func ExampleNewLine() {
	// A negative ρ re-expresses the line on the opposite heading.
	line := geometry.NewLine(0.2, -10)
	fmt.Printf("θ=%.4f ρ=%.0f\n", line.Theta, line.Rho)
	// Output: θ=3.3416 ρ=10
}
