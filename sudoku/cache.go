package sudoku

// CachedPuzzleSolver wraps the pure solver with a bounded recently-used
// cache and a single asynchronous solve task.
//
// Every frame the host OCRs the visible grid and calls Solve with the 81
// decoded digits. Decodes of the same physical puzzle arrive dozens of times
// per second, often with a digit or two misread, so the wrapper:
//
//   - answers exact repeats from the cache,
//   - answers near repeats (fewer than 4 differing digits) with the most
//     recently used solution, masking transient OCR errors,
//   - hands genuinely new puzzles to one background goroutine and reports
//     "not ready" until that completes — never blocking the frame thread.
//
// CachedPuzzleSolver is not safe for concurrent use: per the pipeline's
// threading model only the frame thread touches it, and the background task
// communicates exclusively through a channel.
type CachedPuzzleSolver struct {
	solved       map[[Cells]uint8]*cacheEntry
	recentlyUsed []*cacheEntry

	solvingDigits [Cells]uint8
	solving       chan solveResult // nil when no task is in flight
}

type cacheEntry struct {
	puzzle            [Cells]uint8
	solution          []uint8
	recentlyUsedCount int
}

type solveResult struct {
	game Game
	ok   bool
}

// maxRecentlyUsed bounds the recently-used deque.
const maxRecentlyUsed = 10

// minimumClues is the fewest non-zero digits accepted for a solve attempt.
// Sparser boards blow up the depth-first search and are almost certainly
// misreads anyway.
const minimumClues = 21

// nearMatchLimit: an unmatched puzzle differing from the most recently used
// solution in fewer than this many cells is treated as that puzzle.
const nearMatchLimit = 4

// NewCachedPuzzleSolver returns an empty solver cache.
func NewCachedPuzzleSolver() *CachedPuzzleSolver {
	return &CachedPuzzleSolver{
		solved: make(map[[Cells]uint8]*cacheEntry),
	}
}

// Solve resolves one frame's digit vector. The returned slice is the 81
// solved digits; ok is false when the input is invalid, has too few clues,
// or the solution is not ready yet (a background solve may have just been
// started). The caller must not mutate the returned slice.
func (s *CachedPuzzleSolver) Solve(digits []uint8) (solution []uint8, ok bool) {
	// The oldest recently-used entry is retired on every call UNLESS this
	// call lands an exact cache hit while the deque is under its bound —
	// mirroring how a hit both refreshes and extends recent memory.
	popPending := true
	defer func() {
		if popPending {
			s.popRecentlyUsed()
		}
	}()

	// Collect a background solve that finished since the last call.
	if s.solving != nil {
		select {
		case result := <-s.solving:
			s.solving = nil
			if result.ok {
				s.store(s.solvingDigits, GameToDigits(&result.game))
			}
		default:
		}
	}

	game, valid := DigitsToGame(digits)
	if !valid {
		return nil, false
	}
	if !Solvable(game) {
		return nil, false
	}

	clues := 0
	for _, d := range digits {
		if d != Empty {
			clues++
		}
	}
	if clues < minimumClues {
		return nil, false
	}

	var key [Cells]uint8
	copy(key[:], digits)

	// Exact hit: refresh its recency and return the cached solution.
	if entry, hit := s.solved[key]; hit {
		entry.recentlyUsedCount++
		s.recentlyUsed = append(s.recentlyUsed, entry)
		if len(s.recentlyUsed) > maxRecentlyUsed {
			s.popRecentlyUsed()
		}
		popPending = false
		return entry.solution, true
	}

	// Near match against the most recently used solution: assume the
	// difference is OCR noise and answer with that solution.
	if likely := s.mostLikely(); likely != nil {
		different := 0
		for i := range key {
			if key[i] != likely.puzzle[i] {
				different++
			}
		}
		if different < nearMatchLimit {
			return likely.solution, true
		}
	}

	// A task is already running; drop this request rather than queue it.
	// New puzzles are rare enough that queuing buys nothing.
	if s.solving != nil {
		return nil, false
	}

	// Solve in the background on a by-value snapshot of the board.
	s.solvingDigits = key
	ch := make(chan solveResult, 1)
	s.solving = ch
	go func(g Game) {
		solved := Solve(&g)
		ch <- solveResult{game: g, ok: solved}
	}(game)

	return nil, false
}

// GetMostLikelySolution returns the solution with the highest recently-used
// count, or ok=false when nothing has been used recently.
func (s *CachedPuzzleSolver) GetMostLikelySolution() ([]uint8, bool) {
	likely := s.mostLikely()
	if likely == nil {
		return nil, false
	}
	return likely.solution, true
}

func (s *CachedPuzzleSolver) mostLikely() *cacheEntry {
	var best *cacheEntry
	for _, entry := range s.recentlyUsed {
		if best == nil || entry.recentlyUsedCount > best.recentlyUsedCount {
			best = entry
		}
	}
	return best
}

func (s *CachedPuzzleSolver) store(puzzle [Cells]uint8, solution []uint8) {
	s.solved[puzzle] = &cacheEntry{puzzle: puzzle, solution: solution}
}

func (s *CachedPuzzleSolver) popRecentlyUsed() {
	if len(s.recentlyUsed) == 0 {
		return
	}
	s.recentlyUsed[0].recentlyUsedCount--
	s.recentlyUsed = s.recentlyUsed[1:]
}
