package warp

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sudokuar/core"
)

// ErrSingular is returned when four point correspondences do not determine
// a projective transform (three collinear points, coincident corners).
var ErrSingular = errors.New("warp: degenerate corner configuration")

// Homography is a 3×3 projective transform in row-major order with the
// bottom-right element fixed to 1.
type Homography [9]float64

// UnitRect returns the corners of the rectangle [0,w)×[0,h) in TL, TR, BR,
// BL order, matching the corner order produced by grid detection.
func UnitRect(w, h float64) [4]core.Point {
	return [4]core.Point{
		{X: 0, Y: 0},
		{X: w, Y: 0},
		{X: w, Y: h},
		{X: 0, Y: h},
	}
}

// NewHomography fits the transform taking src[i] to dst[i] for the four
// correspondences. The 8 unknowns (h22 = 1) come from the linear system
//
//	x' = (h00·X + h01·Y + h02) / (h20·X + h21·Y + 1)
//	y' = (h10·X + h11·Y + h12) / (h20·X + h21·Y + 1)
//
// solved with a dense LU decomposition.
func NewHomography(src, dst [4]core.Point) (Homography, error) {
	a := mat.NewDense(8, 8, nil)
	b := mat.NewVecDense(8, nil)

	for i := 0; i < 4; i++ {
		sx, sy := src[i].X, src[i].Y
		dx, dy := dst[i].X, dst[i].Y
		r := 2 * i

		a.SetRow(r, []float64{sx, sy, 1, 0, 0, 0, -sx * dx, -sy * dx})
		b.SetVec(r, dx)
		a.SetRow(r+1, []float64{0, 0, 0, sx, sy, 1, -sx * dy, -sy * dy})
		b.SetVec(r+1, dy)
	}

	var h mat.VecDense
	if err := h.SolveVec(a, b); err != nil {
		return Homography{}, ErrSingular
	}

	var out Homography
	for i := 0; i < 8; i++ {
		out[i] = h.AtVec(i)
	}
	out[8] = 1
	return out, nil
}

// Apply maps a point through the transform.
func (h Homography) Apply(x, y float64) (float64, float64) {
	w := h[6]*x + h[7]*y + h[8]
	return (h[0]*x + h[1]*y + h[2]) / w, (h[3]*x + h[4]*y + h[5]) / w
}
