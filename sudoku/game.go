package sudoku

import "strings"

// Board geometry. The solver and the vision pipeline both assume the
// standard 9×9 grid of 3×3 blocks.
const (
	Width       = 9
	Height      = 9
	BlockWidth  = Width / 3
	BlockHeight = Height / 3
	Cells       = Width * Height

	// MaxValue is the largest playable digit.
	MaxValue = 9
	// Empty marks a cell with no digit.
	Empty = uint8(0)
)

// Game is a mutable 9×9 board. Digits are 1..9; Empty (0) is a blank cell.
// The zero Game is an empty board ready for use. Game is a value type: a
// plain assignment snapshots the board, which is how the background solver
// isolates itself from the frame thread.
type Game struct {
	cells [Cells]uint8
}

// Clear empties every cell.
func (g *Game) Clear() {
	g.cells = [Cells]uint8{}
}

// Set places value at (x, y). It reports false, leaving the board untouched,
// when the coordinates are out of range or value exceeds MaxValue. Zero is
// explicitly accepted and clears the cell.
func (g *Game) Set(x, y int, value uint8) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height || value > MaxValue {
		return false
	}
	g.cells[y*Width+x] = value
	return true
}

// Get returns the digit at (x, y), or Empty when out of range.
func (g *Game) Get(x, y int) uint8 {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return Empty
	}
	return g.cells[y*Width+x]
}

// DigitsToGame builds a board from 81 row-major digits (row 0 on top).
// Returns false when the slice is not exactly 81 entries or any entry
// exceeds MaxValue.
func DigitsToGame(digits []uint8) (Game, bool) {
	var g Game
	if len(digits) != Cells {
		return g, false
	}
	for i, d := range digits {
		if d > MaxValue {
			return Game{}, false
		}
		g.cells[i] = d
	}
	return g, true
}

// GameToDigits flattens the board into 81 row-major digits.
func GameToDigits(g *Game) []uint8 {
	out := make([]uint8, Cells)
	copy(out, g.cells[:])
	return out
}

// String renders the board as ASCII art with block dividers, blanks for
// empty cells.
func (g *Game) String() string {
	var b strings.Builder
	divider := strings.Repeat("-", Width+Width/BlockWidth+1) + "\n"

	for y := 0; y < Height; y++ {
		if y%BlockHeight == 0 {
			b.WriteString(divider)
		}
		for x := 0; x < Width; x++ {
			if x%BlockWidth == 0 {
				b.WriteByte('|')
			}
			d := g.Get(x, y)
			if d == Empty {
				b.WriteByte(' ')
			} else {
				b.WriteByte('0' + d)
			}
		}
		b.WriteString("|\n")
	}
	b.WriteString(divider)
	return b.String()
}
