package sudoku

import (
	"errors"
	"fmt"
	"io"
)

// ErrBadPuzzleText reports unparsable puzzle text.
var ErrBadPuzzleText = errors.New("sudoku: bad puzzle text")

// ParsePuzzle reads a board from plain text: the first 81 digit characters
// become the cells in row-major order. '0' and '.' mean empty; whitespace
// and grid decorations ('|', '-', '+') are ignored.
func ParsePuzzle(r io.Reader) (Game, error) {
	var game Game

	buf := make([]byte, 1)
	cell := 0
	for cell < Cells {
		if _, err := r.Read(buf); err != nil {
			if err == io.EOF {
				return game, fmt.Errorf("%w: only %d of %d cells", ErrBadPuzzleText, cell, Cells)
			}
			return game, err
		}

		c := buf[0]
		switch {
		case c >= '1' && c <= '9':
			if !game.Set(cell%Width, cell/Width, c-'0') {
				return game, fmt.Errorf("%w: cell %d", ErrBadPuzzleText, cell)
			}
			cell++
		case c == '0' || c == '.':
			cell++
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' ||
			c == '|' || c == '-' || c == '+':
			// Decoration.
		default:
			return game, fmt.Errorf("%w: unexpected %q", ErrBadPuzzleText, c)
		}
	}
	return game, nil
}
