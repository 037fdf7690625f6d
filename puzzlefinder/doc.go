// Package puzzlefinder locates a Sudoku grid among Hough line hypotheses.
//
// 🚀 The pipeline
//
//  1. Pull peak lines out of the accumulator.
//  2. Cluster lines by orientation using wrap-safe circular statistics
//     (geometry.MeanTheta / geometry.DifferenceTheta).
//  3. In every large-enough cluster, look for a run of exactly ten lines
//     whose consecutive ρ spacings agree with their median. Ten evenly
//     spaced parallel lines is the signature of a Sudoku grid edge-on.
//  4. Pick two runs whose mean orientations are perpendicular; when several
//     pairs qualify, prefer the squarest one (closest spacing ratio).
//  5. Intersect the outermost lines of the two runs and order the four
//     corners TL, TR, BR, BL by angle around their centroid.
//
// ✨ Usage
//
//	f := puzzlefinder.New(puzzlefinder.DefaultOptions())
//	corners, ok := f.Find(frameW, frameH, accumulator)
//
// Every intermediate stage (Lines, Clusters, Runs, Chosen) stays readable on
// the Finder after Find returns, for overlays and tests.
package puzzlefinder
