// Package hough turns a binary edge mask into straight-line hypotheses via
// the Hough transform.
//
// 🚀 What the package does
//
//   - Accumulator — a dense 16-bit voting grid over (θ, ρ) space. Columns
//     discretise θ ∈ [0, π); rows discretise signed ρ ∈ [−diag, +diag] with
//     ρ = 0 on the middle row, so lines on either side of the origin vote.
//   - Transform — walks every edge pixel of a mask (outside a configurable
//     border) and casts one vote per θ column, saturating at 0xFFFF.
//   - Peaks — slides a square window over the grid and reports every cell
//     that is strictly maximal in its window and at least MinPeakValue,
//     converted to geometry.Line in canonical ρ ≥ 0 form.
//
// ✨ Usage
//
//	acc := hough.NewAccumulator(hough.DefaultOptions())
//	acc.Transform(edges)            // edges: 255 in channel 0 marks an edge
//	lines := acc.Peaks()
//
// The accumulator reuses its grid and trig tables across frames; reallocate
// happens only when the input size changes. Not safe for concurrent use.
package hough
