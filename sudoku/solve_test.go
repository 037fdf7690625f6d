package sudoku_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sudokuar/sudoku"
)

// shortzPuzzle is the standard hard puzzle used throughout the tests.
var shortzPuzzle = []uint8{
	5, 3, 0, 0, 7, 0, 0, 0, 0,
	6, 0, 0, 1, 9, 5, 0, 0, 0,
	0, 9, 8, 0, 0, 0, 0, 6, 0,
	8, 0, 0, 0, 6, 0, 0, 0, 3,
	4, 0, 0, 8, 0, 3, 0, 0, 1,
	7, 0, 0, 0, 2, 0, 0, 0, 6,
	0, 6, 0, 0, 0, 0, 2, 8, 0,
	0, 0, 0, 4, 1, 9, 0, 0, 5,
	0, 0, 0, 0, 8, 0, 0, 7, 9,
}

// shortzSolution is its unique completion.
var shortzSolution = []uint8{
	5, 3, 4, 6, 7, 8, 9, 1, 2,
	6, 7, 2, 1, 9, 5, 3, 4, 8,
	1, 9, 8, 3, 4, 2, 5, 6, 7,
	8, 5, 9, 7, 6, 1, 4, 2, 3,
	4, 2, 6, 8, 5, 3, 7, 9, 1,
	7, 1, 3, 9, 2, 4, 8, 5, 6,
	9, 6, 1, 5, 3, 7, 2, 8, 4,
	2, 8, 7, 4, 1, 9, 6, 3, 5,
	3, 4, 5, 2, 8, 6, 1, 7, 9,
}

//----------------------------------------------------------------------------//
// DigitSet
//----------------------------------------------------------------------------//

// TestDigitSet_Basics covers insert, contains, and ascending iteration.
func TestDigitSet_Basics(t *testing.T) {
	var s sudoku.DigitSet
	s.Insert(7)
	s.Insert(2)
	s.Insert(2)
	s.Insert(9)

	assert.True(t, s.Contains(2))
	assert.True(t, s.Contains(7))
	assert.False(t, s.Contains(3))
	assert.Equal(t, []uint8{2, 7, 9}, s.Digits(), "members come out ascending")
}

// TestDigitSet_Complement verifies the complement flips only digits 1..9.
func TestDigitSet_Complement(t *testing.T) {
	var s sudoku.DigitSet
	s.Insert(0) // the blank marker never counts as playable
	s.Insert(1)
	s.Insert(5)

	c := s.Complement()
	assert.Equal(t, []uint8{2, 3, 4, 6, 7, 8, 9}, c.Digits())
	assert.False(t, c.Contains(0), "complement never reintroduces index 0")

	var empty sudoku.DigitSet
	assert.Equal(t, []uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}, empty.Complement().Digits())
}

// TestDigitSet_Intersect checks set intersection.
func TestDigitSet_Intersect(t *testing.T) {
	var a, b sudoku.DigitSet
	a.Insert(1)
	a.Insert(4)
	a.Insert(8)
	b.Insert(4)
	b.Insert(8)
	b.Insert(9)

	assert.Equal(t, []uint8{4, 8}, a.Intersect(b).Digits())
}

// TestDigitSet_OutOfRangePanics: bad indexes are bugs.
func TestDigitSet_OutOfRangePanics(t *testing.T) {
	var s sudoku.DigitSet
	assert.Panics(t, func() { s.Insert(10) })
	assert.Panics(t, func() { s.Contains(11) })
}

//----------------------------------------------------------------------------//
// Game
//----------------------------------------------------------------------------//

// TestGame_SetGet covers bounds, the zero-value write, and rejection of
// digits above nine.
func TestGame_SetGet(t *testing.T) {
	var g sudoku.Game

	assert.True(t, g.Set(3, 4, 7))
	assert.Equal(t, uint8(7), g.Get(3, 4))

	assert.True(t, g.Set(3, 4, 0), "zero explicitly clears a cell")
	assert.Equal(t, sudoku.Empty, g.Get(3, 4))

	assert.False(t, g.Set(9, 0, 1))
	assert.False(t, g.Set(0, 9, 1))
	assert.False(t, g.Set(-1, 0, 1))
	assert.False(t, g.Set(0, 0, 10))

	assert.Equal(t, sudoku.Empty, g.Get(42, 0), "out of range reads as empty")
}

//----------------------------------------------------------------------------//
// Solve / Solvable
//----------------------------------------------------------------------------//

// TestSolve_Shortz solves the classic puzzle and compares against its
// unique solution.
func TestSolve_Shortz(t *testing.T) {
	game, ok := sudoku.DigitsToGame(shortzPuzzle)
	require.True(t, ok)

	require.True(t, sudoku.Solve(&game))

	solved := sudoku.GameToDigits(&game)
	assert.Equal(t, shortzSolution, solved)
	for i, d := range solved {
		assert.NotEqual(t, sudoku.Empty, d, "cell %d left empty", i)
	}
}

// TestSolve_RoundTrip blanks cells of a known solution and checks the
// solver restores it exactly while at least 21 clues remain.
func TestSolve_RoundTrip(t *testing.T) {
	for _, blanked := range []int{20, 35, 51} {
		game, ok := sudoku.DigitsToGame(shortzSolution)
		require.True(t, ok)

		// Blank every other cell first so clue positions spread out.
		cleared := 0
		for i := 0; i < sudoku.Cells && cleared < blanked; i += 2 {
			game.Set(i%sudoku.Width, i/sudoku.Width, sudoku.Empty)
			cleared++
		}
		for i := 1; i < sudoku.Cells && cleared < blanked; i += 2 {
			game.Set(i%sudoku.Width, i/sudoku.Width, sudoku.Empty)
			cleared++
		}

		require.True(t, sudoku.Solve(&game), "blanked=%d", blanked)
		assert.Equal(t, shortzSolution, sudoku.GameToDigits(&game), "blanked=%d", blanked)
	}
}

// TestSolve_Unsolvable verifies a contradictory board returns false and the
// board is left as it was.
func TestSolve_Unsolvable(t *testing.T) {
	var game sudoku.Game
	// Force a contradiction: the first row holds 1..8, the ninth column of
	// that row is blocked by a 9 directly below it.
	for x := 0; x < 8; x++ {
		game.Set(x, 0, uint8(x+1))
	}
	game.Set(8, 1, 9)
	before := sudoku.GameToDigits(&game)

	assert.False(t, sudoku.Solve(&game))
	assert.Equal(t, before, sudoku.GameToDigits(&game), "failed solve must restore the board")
}

// TestSolvable covers the completed board, row, column, and block conflicts.
func TestSolvable(t *testing.T) {
	full, ok := sudoku.DigitsToGame(shortzSolution)
	require.True(t, ok)
	assert.True(t, sudoku.Solvable(full), "a completed valid board is solvable")

	partial, ok := sudoku.DigitsToGame(shortzPuzzle)
	require.True(t, ok)
	assert.True(t, sudoku.Solvable(partial))

	var rowDup sudoku.Game
	rowDup.Set(0, 0, 5)
	rowDup.Set(8, 0, 5)
	assert.False(t, sudoku.Solvable(rowDup), "duplicate in a row")

	var colDup sudoku.Game
	colDup.Set(4, 0, 3)
	colDup.Set(4, 8, 3)
	assert.False(t, sudoku.Solvable(colDup), "duplicate in a column")

	var blockDup sudoku.Game
	blockDup.Set(0, 0, 2)
	blockDup.Set(1, 1, 2)
	assert.False(t, sudoku.Solvable(blockDup), "duplicate in a block")
}

// TestGame_String sanity-checks the ASCII rendering shape.
func TestGame_String(t *testing.T) {
	game, _ := sudoku.DigitsToGame(shortzPuzzle)
	s := game.String()

	assert.Contains(t, s, "|53 | 7 |   |")
	assert.Contains(t, s, "-------------")
}
