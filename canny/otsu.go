package canny

import "github.com/katalvlaran/sudokuar/core"

// histogram fills hist with the 256-bin intensity histogram of channel 0,
// normalised so the bins sum to 1. An empty image leaves all bins zero.
func histogram(img *core.Image, hist *[256]float64) {
	for i := range hist {
		hist[i] = 0
	}

	pixels := img.Width * img.Height
	if pixels == 0 {
		return
	}
	for p := 0; p < pixels; p++ {
		hist[img.Data[p*core.Channels]]++
	}

	inv := 1.0 / float64(pixels)
	for i := range hist {
		hist[i] *= inv
	}
}

// otsuThreshold returns the intensity maximising the between-class variance
// of the normalised histogram (Digital Image Processing 3rd ed., §10.3.3).
// When several thresholds tie, the arithmetic mean of the tying indices is
// chosen.
func otsuThreshold(hist *[256]float64) byte {
	// P1(k): cumulative probability up to k.
	var cumulativeSums [256]float64
	cumulativeSums[0] = hist[0]
	for k := 1; k < 256; k++ {
		cumulativeSums[k] = cumulativeSums[k-1] + hist[k]
	}

	// m(k): cumulative intensity mean up to k.
	var cumulativeMeans [256]float64
	for k := 1; k < 256; k++ {
		cumulativeMeans[k] = cumulativeMeans[k-1] + hist[k]*float64(k)
	}

	globalMean := cumulativeMeans[255]

	var tyingIndexes []int
	varianceMax := 0.0
	for k := 0; k < 256; k++ {
		numerator := globalMean*cumulativeSums[k] - cumulativeMeans[k]
		denominator := cumulativeSums[k] * (1 - cumulativeSums[k])

		variance := 0.0
		if denominator != 0 {
			variance = numerator * numerator / denominator
		}
		if variance > varianceMax {
			tyingIndexes = tyingIndexes[:0]
			tyingIndexes = append(tyingIndexes, k)
			varianceMax = variance
		} else if variance == varianceMax {
			tyingIndexes = append(tyingIndexes, k)
		}
	}

	sum := 0
	for _, k := range tyingIndexes {
		sum += k
	}
	return byte(sum / len(tyingIndexes))
}
