package neural

// Bridges exposing internals to the external tests.

var PadTo8 = padTo8

// Layers returns the raw weight matrices.
func Layers(n *Network) [][][]float32 { return n.layers }

// DrawBinarizeParams forwards one per-sample thresholder parameter draw.
func DrawBinarizeParams(s *Synthesizer) (contrast, keep float64) {
	return s.binarizeParams()
}
