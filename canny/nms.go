package canny

import (
	"math"

	"github.com/katalvlaran/sudokuar/core"
)

// Channel roles in the suppression scratch image.
//
//	channel 0 — strong edge (255) after thresholding / linking
//	channel 1 — weak edge magnitude awaiting promotion
//	channel 2 — unused
const (
	chanStrong = 0
	chanWeak   = 1
)

// suppressNonMaxima thins the gradient to one-pixel ridges and splits
// survivors into strong and weak edges (Digital Image Processing 3rd ed.,
// §10.2).
//
// Direction is quantised into four 45°-wide buckets — 0: vertical stroke
// (horizontal gradient), 1: one diagonal, 2: horizontal stroke, 3: the
// other diagonal — and the pixel survives only when its magnitude is not
// exceeded by either neighbor along the gradient axis for that bucket.
//
// Magnitudes are clamped to the byte range before comparison. Mapping the
// theoretical maximum (√2·1020) down to 255 would be "correct", but the
// saturation deliberately flattens strong responses and helps long grid
// strokes survive in full.
func suppressNonMaxima(grad *Gradient, out *core.Image, lowThreshold, highThreshold byte) {
	out.Resize(grad.Width, grad.Height)
	out.Fill(0)
	if grad.Width < 3 || grad.Height < 3 {
		return
	}

	width, height := grad.Width, grad.Height

	// Quantised copy: per pixel, clamped magnitude and direction bucket.
	magnitudes := make([]byte, width*height)
	directions := make([]byte, width*height)
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			i := y*width + x
			magnitudes[i] = core.ClampU8(grad.Data[i*2])

			direction := grad.Data[i*2+1]
			if direction < 0 {
				direction += math.Pi
			}
			directions[i] = byte(math.Round(direction*4/math.Pi)) % 4
		}
	}

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			i := y*width + x
			magnitude := magnitudes[i]

			var suppress bool
			switch directions[i] {
			case 0: // Vertical stroke: compare along the row.
				suppress = magnitude < magnitudes[i-1] || magnitude < magnitudes[i+1]
			case 1:
				suppress = magnitude < magnitudes[i-width-1] || magnitude < magnitudes[i+width+1]
			case 2: // Horizontal stroke: compare along the column.
				suppress = magnitude < magnitudes[i-width] || magnitude < magnitudes[i+width]
			case 3:
				suppress = magnitude < magnitudes[i-width+1] || magnitude < magnitudes[i+width-1]
			}

			if suppress || magnitude < lowThreshold {
				continue
			}

			o := i * core.Channels
			if magnitude >= highThreshold {
				out.Data[o+chanStrong] = 255
			} else {
				out.Data[o+chanWeak] = magnitude
			}
		}
	}
}

// linkHysteresis flood-fills from strong pixels through their 8-neighbor
// weak pixels, promoting every weak pixel connected to a strong seed.
// Remaining weak pixels are demoted to zero.
func linkHysteresis(img *core.Image) {
	width, height := img.Width, img.Height
	if width < 3 || height < 3 {
		return
	}

	// Seed the queue with every strong pixel.
	queue := make([]int, 0, width)
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			if img.Data[img.Index(x, y)+chanStrong] == 255 {
				queue = append(queue, y*width+x)
			}
		}
	}

	neighborOffsets := [8]int{
		-width - 1, -width, -width + 1,
		-1, 1,
		width - 1, width, width + 1,
	}

	for len(queue) > 0 {
		p := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		for _, offset := range neighborOffsets {
			n := p + offset
			o := n * core.Channels
			if img.Data[o+chanWeak] == 0 {
				continue
			}
			// Promote and keep filling from here.
			img.Data[o+chanStrong] = 255
			img.Data[o+chanWeak] = 0
			queue = append(queue, n)
		}
	}

	// Demote weak pixels that never linked up.
	for p := 0; p < width*height; p++ {
		img.Data[p*core.Channels+chanWeak] = 0
	}
}
