package sudoku

// unavailableRow collects the digits already present in row y.
func unavailableRow(g *Game, y int, set *DigitSet) {
	for x := 0; x < Width; x++ {
		set.Insert(g.Get(x, y))
	}
}

// unavailableColumn collects the digits already present in column x.
func unavailableColumn(g *Game, x int, set *DigitSet) {
	for y := 0; y < Height; y++ {
		set.Insert(g.Get(x, y))
	}
}

// unavailableBlock collects the digits already present in the 3×3 block
// containing (x, y).
func unavailableBlock(g *Game, x, y int, set *DigitSet) {
	startX := (x / BlockWidth) * BlockWidth
	startY := (y / BlockHeight) * BlockHeight
	for dy := 0; dy < BlockHeight; dy++ {
		for dx := 0; dx < BlockWidth; dx++ {
			set.Insert(g.Get(startX+dx, startY+dy))
		}
	}
}

// availableChoices returns the digits that can legally be placed at (x, y):
// the complement of the union of the row, column, and block occupants.
func availableChoices(g *Game, x, y int) DigitSet {
	var unavailable DigitSet
	unavailableRow(g, y, &unavailable)
	unavailableColumn(g, x, &unavailable)
	unavailableBlock(g, x, y, &unavailable)
	return unavailable.Complement()
}

// nextOpenIndex returns the first empty cell at or after the row-major
// index from, or -1 when the board has no further empty cell.
func nextOpenIndex(g *Game, from int) int {
	for index := from; index < Cells; index++ {
		if g.cells[index] == Empty {
			return index
		}
	}
	return -1
}

// Solvable reports whether no placed digit conflicts with its row, column,
// or block. It is a consistency gate, not a full solve: a true result means
// the clues do not contradict each other, not that a solution exists.
//
// The board is taken by value; the caller's board is never mutated.
func Solvable(g Game) bool {
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			digit := g.Get(x, y)
			if digit == Empty {
				continue
			}

			// Temporarily lift the digit so it does not mask itself.
			g.Set(x, y, Empty)
			choices := availableChoices(&g, x, y)
			if !choices.Contains(digit) {
				return false
			}
			g.Set(x, y, digit)
		}
	}
	return true
}

// solveFrom fills the board by depth-first search starting at the first
// empty cell at or after index from. On failure the attempted cell is
// restored to Empty so sibling branches see a clean board.
func solveFrom(g *Game, from int) bool {
	index := nextOpenIndex(g, from)
	if index < 0 {
		return true // No open cells left: solved.
	}

	x, y := index%Width, index/Width
	for _, choice := range availableChoices(g, x, y).Digits() {
		g.cells[index] = choice
		if solveFrom(g, index+1) {
			return true
		}
	}

	g.cells[index] = Empty
	return false
}

// Solve completes the board in place by recursive depth-first search,
// trying permissible digits in ascending order at each empty cell. It
// returns false, leaving the board as it was, when no completion exists.
//
// Solve assumes a consistent board; run Solvable first when the digits come
// from an untrusted source such as the classifier.
func Solve(g *Game) bool {
	return solveFrom(g, 0)
}
