package puzzlefinder

import (
	"github.com/katalvlaran/sudokuar/core"
	"github.com/katalvlaran/sudokuar/geometry"
)

// Bridges exposing internals to the external tests.

const GridLines = gridLines

func (f *Finder) ClusterByTheta(lines []geometry.Line) [][]geometry.Line {
	return f.clusterByTheta(lines)
}

func (f *Finder) UniformRun(cluster []geometry.Line) (Run, bool) {
	return f.uniformRun(cluster)
}

func (f *Finder) PerpendicularPair(runs []Run) ([2]Run, bool) {
	return f.perpendicularPair(runs)
}

func GridCorners(pair [2]Run) ([4]core.Point, bool) {
	return gridCorners(pair)
}
