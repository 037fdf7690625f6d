package puzzlefinder

import (
	"math"
	"sort"

	"github.com/katalvlaran/sudokuar/core"
	"github.com/katalvlaran/sudokuar/geometry"
	"github.com/katalvlaran/sudokuar/hough"
)

// Run is a ten-line subsequence of one orientation cluster whose consecutive
// ρ spacings agree with their median. One Run per grid direction.
type Run struct {
	// Lines are the ten member lines, sorted by ascending ρ.
	Lines []geometry.Line

	// MeanTheta is the circular mean orientation of the member lines.
	MeanTheta float64

	// Spacing is the median consecutive ρ difference.
	Spacing float64
}

// Finder locates Sudoku grids. After every Find call the intermediate
// stages remain readable for overlays and tests; they are overwritten by
// the next call. Not safe for concurrent use.
type Finder struct {
	opts Options

	// Lines holds every Hough peak of the last Find.
	Lines []geometry.Line

	// Clusters groups Lines by orientation.
	Clusters [][]geometry.Line

	// Runs holds, per qualifying cluster, its ten-line uniform-spacing run.
	Runs []Run

	// Chosen is the perpendicular pair of runs forming the grid. Valid only
	// when the last Find returned ok.
	Chosen [2]Run
}

// New returns a Finder with the given tolerances.
func New(opts Options) *Finder {
	return &Finder{opts: opts.withDefaults()}
}

// Find extracts the four corners of a Sudoku grid from the accumulator's
// peaks, scaled from accumulator input coordinates to a targetW×targetH
// frame. The corners come back in TL, TR, BR, BL order; ok is false when no
// grid-like line structure is present.
func (f *Finder) Find(targetW, targetH int, acc *hough.Accumulator) (corners [4]core.Point, ok bool) {
	f.Lines = acc.Peaks()
	f.Clusters = f.clusterByTheta(f.Lines)

	f.Runs = f.Runs[:0]
	for _, cluster := range f.Clusters {
		if run, found := f.uniformRun(cluster); found {
			f.Runs = append(f.Runs, run)
		}
	}

	chosen, found := f.perpendicularPair(f.Runs)
	if !found {
		return corners, false
	}
	f.Chosen = chosen

	corners, ok = gridCorners(chosen)
	if !ok {
		return corners, false
	}

	inputW, inputH := acc.InputSize()
	scaleX := float64(targetW) / float64(inputW)
	scaleY := float64(targetH) / float64(inputH)
	for i := range corners {
		corners[i].X *= scaleX
		corners[i].Y *= scaleY
	}
	return corners, true
}

// clusterByTheta assigns each line to the first cluster whose running
// circular mean is within ThetaTolerance, opening a new cluster otherwise.
func (f *Finder) clusterByTheta(lines []geometry.Line) [][]geometry.Line {
	var clusters [][]geometry.Line
	for _, line := range lines {
		assigned := false
		for i, cluster := range clusters {
			mean := geometry.MeanTheta(cluster)
			if geometry.DifferenceTheta(line.Theta, mean) < f.opts.ThetaTolerance {
				clusters[i] = append(cluster, line)
				assigned = true
				break
			}
		}
		if !assigned {
			clusters = append(clusters, []geometry.Line{line})
		}
	}
	return clusters
}

// uniformRun searches a cluster for a contiguous run of exactly ten lines
// (sorted by ρ) whose nine consecutive spacings all sit within the tolerance
// band around their median. Among qualifying windows the one with the
// smallest worst-case relative deviation wins.
func (f *Finder) uniformRun(cluster []geometry.Line) (Run, bool) {
	if len(cluster) < gridLines {
		return Run{}, false
	}

	sorted := make([]geometry.Line, len(cluster))
	copy(sorted, cluster)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Rho < sorted[j].Rho })

	best := Run{}
	bestDeviation := math.Inf(1)
	spacings := make([]float64, gridLines-1)

	for start := 0; start+gridLines <= len(sorted); start++ {
		window := sorted[start : start+gridLines]
		for i := 0; i < gridLines-1; i++ {
			spacings[i] = window[i+1].Rho - window[i].Rho
		}
		median := medianOf(spacings)
		if median <= 0 {
			continue
		}

		worst := 0.0
		for _, s := range spacings {
			worst = math.Max(worst, math.Abs(s-median)/median)
		}
		if worst > f.opts.SpacingTolerance || worst >= bestDeviation {
			continue
		}

		bestDeviation = worst
		best = Run{
			Lines:     append([]geometry.Line(nil), window...),
			MeanTheta: geometry.MeanTheta(window),
			Spacing:   median,
		}
	}

	return best, !math.IsInf(bestDeviation, 1)
}

// perpendicularPair picks the two runs whose mean orientations differ by
// π/2 within PerpTolerance. Among qualifying pairs, the one whose spacing
// ratio is closest to 1 wins: the grid is square in puzzle space, so wildly
// different spacings mean two unrelated line families.
func (f *Finder) perpendicularPair(runs []Run) ([2]Run, bool) {
	var chosen [2]Run
	found := false
	bestRatio := math.Inf(1)

	for i := 0; i < len(runs); i++ {
		for j := i + 1; j < len(runs); j++ {
			diff := geometry.DifferenceTheta(runs[i].MeanTheta, runs[j].MeanTheta)
			if math.Abs(diff-math.Pi/2) > f.opts.PerpTolerance {
				continue
			}

			ratio := runs[i].Spacing / runs[j].Spacing
			if ratio < 1 {
				ratio = 1 / ratio
			}
			if ratio < bestRatio {
				bestRatio = ratio
				chosen = [2]Run{runs[i], runs[j]}
				found = true
			}
		}
	}
	return chosen, found
}

// gridCorners intersects the outermost lines of the two runs and orders the
// four intersections TL, TR, BR, BL by angle around their centroid (screen
// coordinates, y growing downward).
func gridCorners(pair [2]Run) ([4]core.Point, bool) {
	var corners [4]core.Point
	first := [2]geometry.Line{pair[0].Lines[0], pair[0].Lines[gridLines-1]}
	second := [2]geometry.Line{pair[1].Lines[0], pair[1].Lines[gridLines-1]}

	n := 0
	for _, a := range first {
		for _, b := range second {
			p, ok := geometry.IntersectLines(a, b)
			if !ok {
				return corners, false
			}
			corners[n] = p
			n++
		}
	}

	var centroid core.Point
	for _, p := range corners {
		centroid.X += p.X / 4
		centroid.Y += p.Y / 4
	}
	sort.Slice(corners[:], func(i, j int) bool {
		ai := math.Atan2(corners[i].Y-centroid.Y, corners[i].X-centroid.X)
		aj := math.Atan2(corners[j].Y-centroid.Y, corners[j].X-centroid.X)
		return ai < aj
	})
	return corners, true
}

// medianOf returns the median without disturbing the input order.
func medianOf(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
