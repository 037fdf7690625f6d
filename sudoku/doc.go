// Package sudoku implements the puzzle rules, the depth-first constraint
// solver, and the cached background solver that keeps a video loop
// responsive.
//
// 🚀 Three layers:
//
//	Game               — the mutable 9×9 board with row/column/block rules
//	Solve / Solvable   — recursive backtracking search and its pre-flight
//	                     consistency gate
//	CachedPuzzleSolver — a bounded recently-used cache over solved boards,
//	                     near-match fallback for OCR noise, and a single
//	                     non-blocking background solve task
//
// ✨ Solver behavior:
//   - The pure solver never fails loudly: an unsolvable board returns false.
//   - The cached wrapper only surfaces successful solutions; callers poll it
//     once per frame and treat "not ready" as "no overlay this frame".
//   - Boards with fewer than 21 clues are rejected outright — too few clues
//     make the search space explode, and a camera frame that sparse is far
//     more likely to be a misread than a real puzzle.
package sudoku
