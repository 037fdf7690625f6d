package neural

import (
	"math"
	"math/rand"
)

// Tile geometry: the 144×144 warped puzzle slices into 81 cells of 16×16
// pixels, and each binarised cell is one input vector.
const (
	TileSize  = 16
	InputSize = TileSize * TileSize
)

// simdPad is the alignment training vectors are padded to.
const simdPad = 8

// padTo8 rounds n up to a multiple of simdPad.
func padTo8(n int) int {
	return (n + simdPad - 1) &^ (simdPad - 1)
}

// DigitChoices returns the label set for Sudoku digit classification:
// 0 (empty cell) through 9.
func DigitChoices() []uint8 {
	return []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
}

// Network is a fully-connected sigmoid MLP.
//
// Weight layout per neuron: weights[0:prev] multiply the previous layer's
// outputs, weights[prev] is the bias, and the tail up to the padded length
// stays zero. Inference reads only the meaningful prefix.
type Network struct {
	inputSize int
	choices   []uint8

	// layers[l][n] is the weight vector of neuron n in layer l.
	// Layer 0 is the hidden layer, layer 1 the output layer.
	layers [][][]float32

	// Per-layer output scratch, reused across Run calls.
	outputs [][]float32

	rng *rand.Rand
}

// NewNetwork builds a network for the given input width and label set, with
// one hidden layer of ⌊inputSize/2⌋ neurons and one output neuron per
// choice. Weights initialise uniform in [−0.5, +0.5] from the seed.
func NewNetwork(inputSize int, choices []uint8, seed int64) *Network {
	n := &Network{
		inputSize: inputSize,
		choices:   append([]uint8(nil), choices...),
		rng:       rand.New(rand.NewSource(seed)),
	}

	hidden := inputSize / 2
	n.layers = [][][]float32{
		n.newLayer(hidden, inputSize),
		n.newLayer(len(choices), hidden),
	}
	n.outputs = [][]float32{
		make([]float32, hidden),
		make([]float32, len(choices)),
	}
	return n
}

func (n *Network) newLayer(neurons, prev int) [][]float32 {
	layer := make([][]float32, neurons)
	for i := range layer {
		weights := make([]float32, padTo8(prev+1))
		for j := 0; j <= prev; j++ {
			weights[j] = float32(n.rng.Float64() - 0.5)
		}
		layer[i] = weights
	}
	return layer
}

// Choices returns the label set in output-neuron order.
func (n *Network) Choices() []uint8 {
	return n.choices
}

// sigmoid is the logistic activation.
func sigmoid(z float32) float32 {
	return float32(1 / (1 + math.Exp(-float64(z))))
}

// forward feeds input through all layers, leaving each layer's activations
// in n.outputs. Only input[0:prev] of each layer is read, so padded
// training vectors and bare inference vectors both work.
func (n *Network) forward(input []float32) {
	for l, layer := range n.layers {
		prev := input
		if l > 0 {
			prev = n.outputs[l-1]
		}
		prevLen := n.layerInputSize(l)

		for i, weights := range layer {
			// Fixed summation order keeps single-threaded runs bit-stable.
			sum := weights[prevLen] // bias
			for j := 0; j < prevLen; j++ {
				sum += weights[j] * prev[j]
			}
			n.outputs[l][i] = sigmoid(sum)
		}
	}
}

// layerInputSize returns the meaningful input width of layer l.
func (n *Network) layerInputSize(l int) int {
	if l == 0 {
		return n.inputSize
	}
	return len(n.layers[l-1])
}

// Run classifies one input vector and returns the winning label.
// len(input) must be at least the network's input size; any padding tail is
// ignored.
func (n *Network) Run(input []float32) uint8 {
	n.forward(input)

	out := n.outputs[len(n.outputs)-1]
	best := 0
	for i := 1; i < len(out); i++ {
		if out[i] > out[best] {
			best = i
		}
	}
	return n.choices[best]
}
