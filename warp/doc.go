// Package warp maps between camera space and puzzle space.
//
// 🚀 What the package does
//
//   - Homography — a 3×3 projective transform fitted to four point
//     correspondences by solving the standard 8×8 linear system
//     (Digital Image Warping §2.11).
//   - ExtractImage — resamples the quadrilateral between four detected
//     corners into an axis-aligned rectangle, the input for the digit
//     classifier.
//   - Renderer — rasterises digit glyphs (and full grids for training
//     synthesis) into 600×600 RGB images suitable for additive overlay
//     compositing.
//
// ✨ Usage
//
//	h, err := warp.NewHomography(warp.UnitRect(w, h), corners)
//	warp.ExtractImage(frame, corners, &tile, 144, 144)
package warp
