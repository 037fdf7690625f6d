package neural

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ArtifactPath is where checkpoints land: the process working directory,
// no header, no magic. Consumers validate structurally.
const ArtifactPath = "training.bin.dat"

// ErrMalformed reports a structurally broken artifact. A missing file is
// not malformed; callers distinguish via errors.Is(err, os.ErrNotExist).
var ErrMalformed = errors.New("neural: malformed artifact")

// maxArtifactCount bounds any single count field; a count beyond this is
// structural corruption, not data.
const maxArtifactCount = 1 << 24

// Save writes the training samples and network weights in the binary
// artifact layout: little-endian u32 counts, float32 data, the reserved
// zero test-set count, then the label choices.
func Save(w io.Writer, samples []Sample, n *Network) error {
	bw := bufio.NewWriter(w)

	writeU32 := func(v uint32) error {
		return binary.Write(bw, binary.LittleEndian, v)
	}

	if err := writeU32(uint32(len(samples))); err != nil {
		return err
	}
	for i := range samples {
		if err := writeU32(uint32(samples[i].Label)); err != nil {
			return err
		}
		if err := writeU32(uint32(len(samples[i].Input))); err != nil {
			return err
		}
		if err := binary.Write(bw, binary.LittleEndian, samples[i].Input); err != nil {
			return err
		}
	}

	// Reserved test-sample section.
	if err := writeU32(0); err != nil {
		return err
	}

	if err := writeU32(uint32(len(n.layers))); err != nil {
		return err
	}
	for _, layer := range n.layers {
		if err := writeU32(uint32(len(layer))); err != nil {
			return err
		}
		for _, weights := range layer {
			if err := writeU32(uint32(len(weights))); err != nil {
				return err
			}
			if err := binary.Write(bw, binary.LittleEndian, weights); err != nil {
				return err
			}
		}
	}

	if err := writeU32(uint32(len(n.choices))); err != nil {
		return err
	}
	if _, err := bw.Write(n.choices); err != nil {
		return err
	}
	return bw.Flush()
}

// SaveFile writes the artifact atomically: a temp file in the same
// directory, renamed over the destination on success.
func SaveFile(path string, samples []Sample, n *Network) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := Save(tmp, samples, n); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Load reads an artifact back. The returned network carries the stored
// weights and choices; inputSize is recovered from the hidden layer's
// weight width. Any truncation or impossible count wraps ErrMalformed.
func Load(r io.Reader) ([]Sample, *Network, error) {
	br := bufio.NewReader(r)

	readU32 := func(what string) (uint32, error) {
		var v uint32
		if err := binary.Read(br, binary.LittleEndian, &v); err != nil {
			return 0, fmt.Errorf("%w: %s: %v", ErrMalformed, what, err)
		}
		return v, nil
	}
	readCount := func(what string) (int, error) {
		v, err := readU32(what)
		if err != nil {
			return 0, err
		}
		if v > maxArtifactCount {
			return 0, fmt.Errorf("%w: %s %d out of range", ErrMalformed, what, v)
		}
		return int(v), nil
	}

	trainCount, err := readCount("train sample count")
	if err != nil {
		return nil, nil, err
	}
	samples := make([]Sample, 0, trainCount)
	for i := 0; i < trainCount; i++ {
		label, err := readU32("sample label")
		if err != nil {
			return nil, nil, err
		}
		inputLen, err := readCount("sample input length")
		if err != nil {
			return nil, nil, err
		}
		input := make([]float32, inputLen)
		if err := binary.Read(br, binary.LittleEndian, input); err != nil {
			return nil, nil, fmt.Errorf("%w: sample data: %v", ErrMalformed, err)
		}
		samples = append(samples, Sample{Label: uint8(label), Input: input})
	}

	testCount, err := readCount("test sample count")
	if err != nil {
		return nil, nil, err
	}
	if testCount != 0 {
		return nil, nil, fmt.Errorf("%w: reserved test section holds %d samples", ErrMalformed, testCount)
	}

	layerCount, err := readCount("layer count")
	if err != nil {
		return nil, nil, err
	}
	layers := make([][][]float32, layerCount)
	for l := range layers {
		neuronCount, err := readCount("neuron count")
		if err != nil {
			return nil, nil, err
		}
		layers[l] = make([][]float32, neuronCount)
		for i := range layers[l] {
			weightCount, err := readCount("weight count")
			if err != nil {
				return nil, nil, err
			}
			weights := make([]float32, weightCount)
			if err := binary.Read(br, binary.LittleEndian, weights); err != nil {
				return nil, nil, fmt.Errorf("%w: weight data: %v", ErrMalformed, err)
			}
			layers[l][i] = weights
		}
	}

	choiceCount, err := readCount("choice count")
	if err != nil {
		return nil, nil, err
	}
	choices := make([]uint8, choiceCount)
	if _, err := io.ReadFull(br, choices); err != nil {
		return nil, nil, fmt.Errorf("%w: choices: %v", ErrMalformed, err)
	}

	n, err := networkFromLayers(layers, choices)
	if err != nil {
		return nil, nil, err
	}
	return samples, n, nil
}

// LoadFile opens and loads the artifact at path.
func LoadFile(path string) ([]Sample, *Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return Load(f)
}

// networkFromLayers rebuilds a Network around deserialised weights.
func networkFromLayers(layers [][][]float32, choices []uint8) (*Network, error) {
	if len(layers) != 2 || len(layers[0]) == 0 || len(layers[1]) == 0 {
		return nil, fmt.Errorf("%w: expected 2 non-empty layers, got %d", ErrMalformed, len(layers))
	}
	if len(layers[1]) != len(choices) {
		return nil, fmt.Errorf("%w: %d output neurons for %d choices", ErrMalformed, len(layers[1]), len(choices))
	}

	// The hidden layer width implies the input size: the hidden layer is
	// built as ⌊input/2⌋ neurons.
	inputSize := len(layers[0]) * 2
	for l, layer := range layers {
		prev := inputSize
		if l > 0 {
			prev = len(layers[l-1])
		}
		for _, weights := range layer {
			if len(weights) < prev+1 {
				return nil, fmt.Errorf("%w: neuron with %d weights for %d inputs", ErrMalformed, len(weights), prev)
			}
		}
	}

	n := &Network{
		inputSize: inputSize,
		choices:   choices,
		layers:    layers,
		outputs: [][]float32{
			make([]float32, len(layers[0])),
			make([]float32, len(layers[1])),
		},
	}
	return n, nil
}
