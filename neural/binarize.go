package neural

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/sudokuar/core"
)

// globalMeanFactor: a pixel must also beat 95 % of the tile mean, which
// keeps paper texture in an all-bright tile from reading as ink.
const globalMeanFactor = 0.95

// InferenceContrast is the thresholder contrast factor used at inference
// time; training draws it uniformly from [2, 4] per sample.
const InferenceContrast = 2.0

// Binarize thresholds the w×h greyscale region of img at (x0, y0) into out,
// one float32 per pixel, 1 for ink and 0 for paper.
//
// A pixel is ink iff its value exceeds a·σ_L (the 3×3 local standard
// deviation) and 95 % of the region mean. Neighbourhoods replicate-clamp at
// the region boundary. out must hold w·h values.
func Binarize(img *core.Image, x0, y0, w, h int, a float64, out []float32) {
	if len(out) < w*h {
		panic("neural: Binarize output too small")
	}

	globalMean := 0.0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			globalMean += float64(img.Grey(x0+x, y0+y))
		}
	}
	globalMean /= float64(w * h)

	clamp := func(v, lo, hi int) int {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum, sumSq float64
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx := clamp(x+dx, 0, w-1)
					ny := clamp(y+dy, 0, h-1)
					v := float64(img.Grey(x0+nx, y0+ny))
					sum += v
					sumSq += v * v
				}
			}
			mean := sum / 9
			variance := sumSq/9 - mean*mean
			if variance < 0 {
				variance = 0
			}
			sigma := math.Sqrt(variance)

			center := float64(img.Grey(x0+x, y0+y))
			if center > a*sigma && center > globalMeanFactor*globalMean {
				out[y*w+x] = 1
			} else {
				out[y*w+x] = 0
			}
		}
	}
}

// laplacianEdgeFloor marks a binary pixel as an edge when the magnitude of
// its 4-neighbour Laplacian reaches this value. On a 0/1 image any value
// ≥ 1 means the pixel disagrees with at least one neighbour.
const laplacianEdgeFloor = 1.0

// ShuffleEdges regularises a binary tile against anti-aliased glyph
// boundaries. For every edge pixel (Laplacian criterion), with probability
// 1−keep the pixel's value is copied onto a random diagonal neighbour and
// the pixel itself is inverted. keep is drawn from [0.95, 0.99] per training
// sample by the synthesizer.
func ShuffleEdges(tile []float32, w, h int, keep float64, rng *rand.Rand) {
	at := func(x, y int) float32 {
		if x < 0 || x >= w || y < 0 || y >= h {
			return 0
		}
		return tile[y*w+x]
	}

	// Edge detection runs on a snapshot so earlier shuffles in the same
	// pass cannot create new edges.
	snapshot := append([]float32(nil), tile...)
	atSnap := func(x, y int) float32 {
		if x < 0 || x >= w || y < 0 || y >= h {
			return 0
		}
		return snapshot[y*w+x]
	}

	diagonals := [4][2]int{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			lap := 4*atSnap(x, y) - atSnap(x-1, y) - atSnap(x+1, y) - atSnap(x, y-1) - atSnap(x, y+1)
			if math.Abs(float64(lap)) < laplacianEdgeFloor {
				continue
			}
			if rng.Float64() < keep {
				continue
			}

			d := diagonals[rng.Intn(len(diagonals))]
			nx, ny := x+d[0], y+d[1]
			if nx >= 0 && nx < w && ny >= 0 && ny < h {
				tile[ny*w+nx] = at(x, y)
			}
			tile[y*w+x] = 1 - tile[y*w+x]
		}
	}
}
