// Package geometry provides the Hesse-normal line representation and the
// wrap-safe angular statistics the puzzle finder reasons with.
//
// 🚀 Hesse normal form
//
//	A line is all points (x, y) satisfying x·cos θ + y·sin θ = ρ.
//	Package invariant: ρ ≥ 0 and θ ∈ [0, 2π). A candidate with negative ρ is
//	re-expressed by adding π to θ and negating ρ (NewLine does this).
//
// ✨ What lives here:
//   - Line construction and normalisation
//   - MeanTheta — circular mean of cluster orientations, safe across the
//     2π wrap (a cluster straddling 0 must not average to π)
//   - DifferenceTheta — shorter-arc angular distance, symmetric
//   - IntersectLines — closed-form intersection of two Hesse lines
//
// All angles are radians.
package geometry
