// Package core defines the fundamental raster and coordinate types shared by
// every stage of the sudokuar pipeline, plus the colorspace conversions that
// turn raw camera buffers into the canonical Image form.
//
// 🚀 The Image contract
//
//	An Image is width × height pixels in a dense, row-major byte buffer of
//	exactly width·height·3 bytes. It is ALWAYS three channels, even when the
//	content is greyscale — a grey pixel simply stores the same luma in all
//	three bytes. Stages that only care about intensity read channel 0.
//
// ✨ What lives here:
//   - Image construction, resizing (MatchSize), pixel access helpers
//   - Point, the float image-space coordinate used for grid corners
//   - Camera-format conversions: YUYV, NV12, packed RGB, mirrored BGR
//   - RGBToGreyscale (BT.601 luma) and saturating BlendAdd composition
//
// Conversions write into a caller-owned Image and resize it to fit, so a
// video loop can reuse the same frame buffers without reallocating.
package core
