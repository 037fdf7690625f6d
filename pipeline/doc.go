// Package pipeline wires the per-frame stages into one synchronous pass:
// greyscale → edge extraction → Hough transform → grid detection → warp →
// digit classification → cached solve → overlay.
//
// 🚀 Threading model
//
// The pipeline is single-threaded: one Process call per frame, stages run
// sequentially, and every intermediate buffer is owned by the Pipeline and
// reused across frames. The only concurrency is the solver cache's single
// background goroutine, which Process polls without blocking.
//
// ✨ Usage
//
//	p := pipeline.New(network, pipeline.DefaultOptions())
//	for cam.CaptureFrameRGB(&frame) {
//	    result := p.Process(&frame)
//	    if result.Solved {
//	        p.Overlay(&frame, result)
//	    }
//	}
package pipeline
