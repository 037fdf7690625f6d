// Package sudokuar is an augmented-reality Sudoku solver built from first
// principles: hand it one RGB camera frame and it finds the printed 9×9 grid,
// reads the digits, solves the puzzle, and tells you where to draw the answer.
//
// 🚀 What is sudokuar?
//
//	A pure-Go vision-and-reasoning pipeline that brings together:
//		• Canny edge detection: Gaussian blur, auto-levels, Sobel, Otsu,
//		  non-maximum suppression, hysteresis linking, line thinning
//		• Hough transform: (θ, ρ) voting plus sliding-window peak finding
//		• Puzzle finding: clustering parallel lines, matching perpendicular
//		  ten-line groups with uniform spacing, corner extraction
//		• Digit reading: an in-house feed-forward network trained by
//		  back-propagation on synthetically rendered grids
//		• Solving: depth-first constraint search behind a recently-used
//		  cache and a non-blocking background worker
//
// ✨ Why build it this way?
//
//   - No OpenCV, no cgo — every stage is plain Go you can read and test
//   - Deterministic — seeded RNG everywhere a test needs to reproduce a run
//   - Collaborator interfaces — cameras and renderers stay outside the core
//
// Everything is organized under flat subpackages:
//
//	core/         — Image raster, Point, colorspace conversions
//	geometry/     — Hesse-normal lines, wrap-safe angle statistics
//	canny/        — the edge extractor
//	hough/        — the line-hypothesis accumulator and peak finder
//	puzzlefinder/ — the geometric reasoner that locates the grid
//	warp/         — homography, perspective sampling, glyph rendering
//	neural/       — classifier, trainer, thresholder, training synthesis
//	sudoku/       — game rules, solver, cached background solver
//	pipeline/     — one-frame orchestration over the collaborator interfaces
//
// Quick ASCII example:
//
//	frame ──► canny ──► hough ──► puzzlefinder ──► warp ──► neural ──► sudoku
//
// See cmd/sudokuar for a command-line host that runs the pipeline on still
// images and manages the classifier training artifact.
package sudokuar
