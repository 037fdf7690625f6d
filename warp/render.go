package warp

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/katalvlaran/sudokuar/core"
)

// RenderSize is the edge length of rendered puzzle images.
const RenderSize = 600

const (
	glyphW     = 7
	glyphH     = 13
	glyphScale = 4
)

// Renderer rasterises digit glyphs into puzzle-sized images. Glyph coverage
// masks are prebuilt from the basicfont 7×13 face and blitted with integer
// upscaling, so rendering itself does no font work.
type Renderer struct {
	masks [10][glyphW * glyphH]bool
}

// NewRenderer prebuilds coverage masks for the digits 0–9.
func NewRenderer() *Renderer {
	r := &Renderer{}
	face := basicfont.Face7x13

	for digit := 0; digit < 10; digit++ {
		img := image.NewAlpha(image.Rect(0, 0, glyphW, glyphH))
		drawer := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(color.Alpha{A: 255}),
			Face: face,
			Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
		}
		drawer.DrawString(string(rune('0' + digit)))

		for y := 0; y < glyphH; y++ {
			for x := 0; x < glyphW; x++ {
				r.masks[digit][y*glyphW+x] = img.AlphaAt(x, y).A > 127
			}
		}
	}
	return r
}

// RenderPuzzleGlyphs draws the non-zero digits of an 81-element vector into
// a black RenderSize×RenderSize frame, green, for additive compositing over
// a camera image. Panics unless len(digits) == 81.
func (r *Renderer) RenderPuzzleGlyphs(digits []uint8, dst *core.Image) {
	if len(digits) != 81 {
		panic("warp: RenderPuzzleGlyphs needs 81 digits")
	}

	dst.Resize(RenderSize, RenderSize)
	dst.Fill(0)
	for i, digit := range digits {
		if digit == 0 {
			continue
		}
		r.drawGlyph(dst, digit, i%9, i/9, 0, 255, 0)
	}
}

// RenderPuzzleGrid draws a printed-looking puzzle: black rulings and black
// digits on white. Training synthesis warps and binarises these images.
// Panics unless len(digits) == 81.
func (r *Renderer) RenderPuzzleGrid(digits []uint8, dst *core.Image) {
	if len(digits) != 81 {
		panic("warp: RenderPuzzleGrid needs 81 digits")
	}

	dst.Resize(RenderSize, RenderSize)
	dst.Fill(255)

	for i := 0; i <= 9; i++ {
		at := cellEdge(i)
		if at == RenderSize {
			at--
		}
		for p := 0; p < RenderSize; p++ {
			dst.SetGrey(at, p, 0)
			dst.SetGrey(p, at, 0)
		}
	}

	for i, digit := range digits {
		if digit == 0 {
			continue
		}
		r.drawGlyph(dst, digit, i%9, i/9, 0, 0, 0)
	}
}

// cellEdge returns the pixel coordinate of grid ruling i (0..9).
func cellEdge(i int) int {
	return i * RenderSize / 9
}

// drawGlyph blits one digit centered in cell (col, row) with integer
// upscaling.
func (r *Renderer) drawGlyph(dst *core.Image, digit uint8, col, row int, cr, cg, cb byte) {
	x0 := cellEdge(col)
	y0 := cellEdge(row)
	cellW := cellEdge(col+1) - x0
	cellH := cellEdge(row+1) - y0
	x0 += (cellW - glyphW*glyphScale) / 2
	y0 += (cellH - glyphH*glyphScale) / 2

	mask := &r.masks[digit]
	for gy := 0; gy < glyphH; gy++ {
		for gx := 0; gx < glyphW; gx++ {
			if !mask[gy*glyphW+gx] {
				continue
			}
			for sy := 0; sy < glyphScale; sy++ {
				for sx := 0; sx < glyphScale; sx++ {
					dst.SetRGB(x0+gx*glyphScale+sx, y0+gy*glyphScale+sy, cr, cg, cb)
				}
			}
		}
	}
}
