package geometry

import (
	"math"

	"github.com/katalvlaran/sudokuar/core"
)

// Tau is the full circle, 2π.
const Tau = 2 * math.Pi

// wrapStraddleSpan is the θ range beyond which a line set is considered to
// straddle the 2π wrap: max−min ≥ 4π/3 cannot happen for a genuinely tight
// cluster unless its members sit on both sides of zero.
const wrapStraddleSpan = 4 * math.Pi / 3

// Line is a line in Hesse normal form: x·cos(Theta) + y·sin(Theta) = Rho.
//
// Invariant: Rho ≥ 0 and Theta ∈ [0, 2π). Use NewLine to construct lines
// from raw (θ, ρ) pairs; it re-expresses negative ρ on the opposite heading.
type Line struct {
	Theta float64 // radians
	Rho   float64
}

// NewLine normalises a raw (θ, ρ) pair into the package invariant:
// a negative ρ flips the heading by π, and θ wraps into [0, 2π).
func NewLine(theta, rho float64) Line {
	if rho < 0 {
		theta += math.Pi
		rho = -rho
	}
	theta = math.Mod(theta, Tau)
	if theta < 0 {
		theta += Tau
	}
	return Line{Theta: theta, Rho: rho}
}

// MeanTheta returns the circular mean of the lines' θ values in [0, 2π).
//
// A cluster whose members sit on both sides of the 2π wrap (say 6.2 and 0.1)
// must not average to the far side of the circle. When the θ span reveals a
// straddle, every angle is shifted past the wrap by a pivot, the shifted
// values are averaged, and the pivot is removed again modulo 2π.
//
// Panics on an empty slice: callers only compute means of non-empty clusters.
//
// Complexity: O(n).
func MeanTheta(lines []Line) float64 {
	if len(lines) == 0 {
		panic("geometry: MeanTheta of empty line set")
	}

	sum := 0.0
	minTheta := math.Pi / 2
	maxTheta := 0.0
	for _, line := range lines {
		sum += line.Theta
		minTheta = math.Min(minTheta, line.Theta)
		maxTheta = math.Max(maxTheta, line.Theta)
	}

	shift := 0.0
	if minTheta < math.Pi/2 && maxTheta-minTheta >= wrapStraddleSpan {
		// The extra 1.0 keeps the shifted values clear of the wrap itself.
		shift = Tau - maxTheta + 1.0
		sum = 0.0
		for _, line := range lines {
			sum += math.Mod(line.Theta+shift, Tau)
		}
	}

	mean := math.Mod(sum/float64(len(lines))-shift, Tau)
	if mean < 0 {
		mean += Tau
	}
	return mean
}

// DifferenceTheta returns the shorter-arc distance between two angles in
// [0, 2π). It is symmetric and DifferenceTheta(a, a) == 0.
func DifferenceTheta(theta1, theta2 float64) float64 {
	direct := math.Abs(theta1 - theta2)
	wrapped := math.Min(theta1, theta2) + Tau - math.Max(theta1, theta2)
	return math.Min(direct, wrapped)
}

// IntersectLines returns the intersection point of two Hesse-normal lines.
// The second return is false when the lines are parallel, which is exactly
// when sin(θ₂−θ₁) == 0 (equal headings or headings π apart).
func IntersectLines(line1, line2 Line) (core.Point, bool) {
	sinDiff := math.Sin(line2.Theta - line1.Theta)
	if sinDiff == 0 {
		return core.Point{}, false
	}

	sin1, cos1 := math.Sincos(line1.Theta)
	sin2, cos2 := math.Sincos(line2.Theta)

	return core.Point{
		X: (line1.Rho*sin2 - line2.Rho*sin1) / sinDiff,
		Y: (line1.Rho*cos2 - line2.Rho*cos1) / -sinDiff,
	}, true
}
