package hough

import "github.com/katalvlaran/sudokuar/geometry"

// Peaks scans the grid for local vote maxima and returns them as lines.
//
// A cell qualifies when its count is at least MinPeakValue and strictly
// greater than every other cell in its (2R+1)×(2R+1) window, clipped at the
// grid edges. Two equal maxima within R of each other suppress one another;
// a wobbling camera resolves such ties within a frame or two.
//
// Results are ordered by grid position (row-major). Call after Transform.
func (a *Accumulator) Peaks() []geometry.Line {
	var lines []geometry.Line
	if len(a.data) == 0 {
		return lines
	}

	radius := a.opts.PeakRadius
	for row := 0; row < a.height; row++ {
		for col := 0; col < a.width; col++ {
			value := a.data[row*a.width+col]
			if value < a.opts.MinPeakValue {
				continue
			}
			if a.strictMaximum(col, row, value, radius) {
				lines = append(lines, a.Line(col, row))
			}
		}
	}
	return lines
}

// strictMaximum reports whether value beats every other cell in the window
// centered on (col, row).
func (a *Accumulator) strictMaximum(col, row int, value uint16, radius int) bool {
	for dy := -radius; dy <= radius; dy++ {
		y := row + dy
		if y < 0 || y >= a.height {
			continue
		}
		for dx := -radius; dx <= radius; dx++ {
			x := col + dx
			if x < 0 || x >= a.width {
				continue
			}
			if x == col && y == row {
				continue
			}
			if a.data[y*a.width+x] >= value {
				return false
			}
		}
	}
	return true
}
