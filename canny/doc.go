// Package canny implements the edge extractor: a classic Canny detector
// tuned for finding the long straight strokes of a printed sudoku grid.
//
// 🚀 Pipeline (fixed order)
//
//	greyscale ──► Gaussian blur ──► auto-levels ──► Sobel gradient
//	                                      │
//	                histogram ──► Otsu threshold (high; low = high/2)
//	                                      │
//	     non-maximum suppression ──► hysteresis linking ──► line thinning
//
// ✨ Behavioral notes:
//   - The blur is separable and leaves a zeroed border of ⌊r⌋+1 pixels; the
//     aperture loss is intentional and documented rather than mirrored away.
//   - Auto-levels clips 10 % from each histogram tail, saturating extremes
//     so Otsu gets a high-contrast input.
//   - The stage never reports failure: an empty or near-uniform frame simply
//     produces an all-zero edge mask and downstream stages tolerate that.
//
// A Detector owns all intermediate buffers and reuses them across frames, so
// per-frame processing allocates nothing after the first call.
package canny
