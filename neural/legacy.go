package neural

import (
	"bufio"
	"fmt"
	"io"
)

// LoadLegacyText reads the historical whitespace-separated text artifact.
// It mirrors the binary layout field for field; only the encoding differs.
// Write support is intentionally absent, checkpoints are binary-only.
func LoadLegacyText(r io.Reader) ([]Sample, *Network, error) {
	br := bufio.NewReader(r)

	readInt := func(what string) (int, error) {
		var v int
		if _, err := fmt.Fscan(br, &v); err != nil {
			return 0, fmt.Errorf("%w: %s: %v", ErrMalformed, what, err)
		}
		if v < 0 || v > maxArtifactCount {
			return 0, fmt.Errorf("%w: %s %d out of range", ErrMalformed, what, v)
		}
		return v, nil
	}
	readFloats := func(what string, out []float32) error {
		for i := range out {
			if _, err := fmt.Fscan(br, &out[i]); err != nil {
				return fmt.Errorf("%w: %s: %v", ErrMalformed, what, err)
			}
		}
		return nil
	}

	trainCount, err := readInt("train sample count")
	if err != nil {
		return nil, nil, err
	}
	samples := make([]Sample, 0, trainCount)
	for i := 0; i < trainCount; i++ {
		label, err := readInt("sample label")
		if err != nil {
			return nil, nil, err
		}
		inputLen, err := readInt("sample input length")
		if err != nil {
			return nil, nil, err
		}
		input := make([]float32, inputLen)
		if err := readFloats("sample data", input); err != nil {
			return nil, nil, err
		}
		samples = append(samples, Sample{Label: uint8(label), Input: input})
	}

	testCount, err := readInt("test sample count")
	if err != nil {
		return nil, nil, err
	}
	if testCount != 0 {
		return nil, nil, fmt.Errorf("%w: reserved test section holds %d samples", ErrMalformed, testCount)
	}

	layerCount, err := readInt("layer count")
	if err != nil {
		return nil, nil, err
	}
	layers := make([][][]float32, layerCount)
	for l := range layers {
		neuronCount, err := readInt("neuron count")
		if err != nil {
			return nil, nil, err
		}
		layers[l] = make([][]float32, neuronCount)
		for n := range layers[l] {
			weightCount, err := readInt("weight count")
			if err != nil {
				return nil, nil, err
			}
			weights := make([]float32, weightCount)
			if err := readFloats("weight data", weights); err != nil {
				return nil, nil, err
			}
			layers[l][n] = weights
		}
	}

	choiceCount, err := readInt("choice count")
	if err != nil {
		return nil, nil, err
	}
	choices := make([]uint8, choiceCount)
	for i := range choices {
		c, err := readInt("choice")
		if err != nil {
			return nil, nil, err
		}
		choices[i] = uint8(c)
	}

	net, err := networkFromLayers(layers, choices)
	if err != nil {
		return nil, nil, err
	}
	return samples, net, nil
}
