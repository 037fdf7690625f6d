package neural_test

import (
	"bytes"
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sudokuar/neural"
)

func TestPadTo8(t *testing.T) {
	assert.Equal(t, 0, neural.PadTo8(0))
	assert.Equal(t, 8, neural.PadTo8(1))
	assert.Equal(t, 8, neural.PadTo8(8))
	assert.Equal(t, 16, neural.PadTo8(9))
	assert.Equal(t, 264, neural.PadTo8(neural.InputSize+1))
}

func TestNewSample_BiasAndPadding(t *testing.T) {
	raw := []float32{1, 2, 3}
	s := neural.NewSample(7, raw)

	require.Len(t, s.Input, 8)
	assert.Equal(t, float32(3), s.Input[2])
	assert.Equal(t, float32(1), s.Input[3], "bias input")
	assert.Equal(t, float32(0), s.Input[4], "padding tail")
	assert.Equal(t, uint8(7), s.Label)
}

func TestNewNetwork_DeterministicFromSeed(t *testing.T) {
	a := neural.NewNetwork(16, neural.DigitChoices(), 99)
	b := neural.NewNetwork(16, neural.DigitChoices(), 99)
	c := neural.NewNetwork(16, neural.DigitChoices(), 100)

	assert.Equal(t, neural.Layers(a), neural.Layers(b))
	assert.NotEqual(t, neural.Layers(a), neural.Layers(c))

	// Topology: hidden = ⌊input/2⌋, one output per choice, bias slot + pad.
	layers := neural.Layers(a)
	require.Len(t, layers, 2)
	assert.Len(t, layers[0], 8)
	assert.Len(t, layers[1], 10)
	assert.Len(t, layers[0][0], neural.PadTo8(16+1))
	assert.Len(t, layers[1][0], neural.PadTo8(8+1))
}

// patternSamples builds a linearly separable toy task: label k lights up
// input block [4k, 4k+4) plus uniform noise.
func patternSamples(rng *rand.Rand, perLabel int) []neural.Sample {
	var samples []neural.Sample
	for label := uint8(0); label < 3; label++ {
		for i := 0; i < perLabel; i++ {
			raw := make([]float32, 16)
			for j := range raw {
				raw[j] = float32(rng.Float64()) * 0.1
			}
			for j := 0; j < 4; j++ {
				raw[int(label)*4+j] = 1 - float32(rng.Float64())*0.1
			}
			samples = append(samples, neural.NewSample(label, raw))
		}
	}
	return samples
}

func TestTrain_LearnsSeparablePatterns(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	samples := patternSamples(rng, 60)

	net := neural.NewNetwork(16, []uint8{0, 1, 2}, 42)
	err := net.Train(samples, neural.TrainOptions{LearningRate: 0.5, MaxEpochs: 300})
	require.NoError(t, err)

	correct := 0
	for i := range samples {
		if net.Run(samples[i].Input) == samples[i].Label {
			correct++
		}
	}
	accuracy := float64(correct) / float64(len(samples))
	assert.Greater(t, accuracy, 0.9, "training accuracy %.2f", accuracy)
}

func TestTrain_SyntheticHeldOutAccuracy(t *testing.T) {
	if testing.Short() {
		t.Skip("trains the digit classifier on a rendered corpus")
	}

	// Disjoint seeds keep the held-out grids out of the training corpus.
	train := neural.NewSynthesizer(21).Generate(40)
	held := neural.NewSynthesizer(22).Generate(5)

	net := neural.NewNetwork(neural.InputSize, neural.DigitChoices(), 3)
	opts := neural.DefaultTrainOptions()
	opts.MaxEpochs = 60
	require.NoError(t, net.Train(train, opts))

	correct := 0
	for i := range held {
		if net.Run(held[i].Input) == held[i].Label {
			correct++
		}
	}
	accuracy := float64(correct) / float64(len(held))
	assert.Greater(t, accuracy, 0.85, "held-out accuracy %.3f", accuracy)
}

func TestTrain_CheckpointCadence(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	samples := patternSamples(rng, 5)
	net := neural.NewNetwork(16, []uint8{0, 1, 2}, 1)

	checkpoints := 0
	epochs := 0
	err := net.Train(samples, neural.TrainOptions{
		MaxEpochs:  50,
		Checkpoint: func() error { checkpoints++; return nil },
		Progress:   func(epoch int, deltaSum float64) { epochs = epoch },
	})
	require.NoError(t, err)

	assert.Equal(t, 50, epochs)
	// Epochs 25 and 50 at minimum; converged epochs add more.
	assert.GreaterOrEqual(t, checkpoints, 2)
}

func TestTrain_CooperativeStop(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	samples := patternSamples(rng, 5)
	net := neural.NewNetwork(16, []uint8{0, 1, 2}, 1)

	var stop atomic.Bool
	stop.Store(true)

	checkpoints := 0
	lastEpoch := 0
	err := net.Train(samples, neural.TrainOptions{
		MaxEpochs:  1000,
		Checkpoint: func() error { checkpoints++; return nil },
		Progress:   func(epoch int, deltaSum float64) { lastEpoch = epoch },
		Stop:       &stop,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, lastEpoch, "stop is honoured after the first epoch")
	assert.Equal(t, 1, checkpoints, "save-then-exit")
}

func TestTrain_CheckpointErrorAborts(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	samples := patternSamples(rng, 5)
	net := neural.NewNetwork(16, []uint8{0, 1, 2}, 1)

	boom := fmt.Errorf("disk full")
	err := net.Train(samples, neural.TrainOptions{
		MaxEpochs:  100,
		Checkpoint: func() error { return boom },
	})
	assert.ErrorIs(t, err, boom)
}

func TestArtifact_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	samples := patternSamples(rng, 2)
	net := neural.NewNetwork(16, []uint8{0, 1, 2}, 11)

	var buf bytes.Buffer
	require.NoError(t, neural.Save(&buf, samples, net))

	gotSamples, gotNet, err := neural.Load(&buf)
	require.NoError(t, err)

	assert.Equal(t, samples, gotSamples)
	assert.Equal(t, neural.Layers(net), neural.Layers(gotNet))
	assert.Equal(t, net.Choices(), gotNet.Choices())

	// Bit-identical weights give identical inference.
	for i := range samples {
		assert.Equal(t, net.Run(samples[i].Input), gotNet.Run(samples[i].Input))
	}
}

func TestLoad_TruncatedArtifact(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	samples := patternSamples(rng, 2)
	net := neural.NewNetwork(16, []uint8{0, 1, 2}, 11)

	var buf bytes.Buffer
	require.NoError(t, neural.Save(&buf, samples, net))

	for _, cut := range []int{1, buf.Len() / 2, buf.Len() - 1} {
		_, _, err := neural.Load(bytes.NewReader(buf.Bytes()[:cut]))
		assert.ErrorIs(t, err, neural.ErrMalformed, "cut at %d", cut)
	}
}

func TestLoad_EmptyIsMalformed(t *testing.T) {
	_, _, err := neural.Load(bytes.NewReader(nil))
	assert.ErrorIs(t, err, neural.ErrMalformed)
}

// writeLegacyText mirrors Save in the whitespace text encoding.
func writeLegacyText(buf *bytes.Buffer, samples []neural.Sample, n *neural.Network) {
	fmt.Fprintln(buf, len(samples))
	for i := range samples {
		fmt.Fprintln(buf, samples[i].Label, len(samples[i].Input))
		for _, v := range samples[i].Input {
			fmt.Fprintln(buf, v)
		}
	}
	fmt.Fprintln(buf, 0)
	layers := neural.Layers(n)
	fmt.Fprintln(buf, len(layers))
	for _, layer := range layers {
		fmt.Fprintln(buf, len(layer))
		for _, weights := range layer {
			fmt.Fprintln(buf, len(weights))
			for _, w := range weights {
				fmt.Fprintln(buf, w)
			}
		}
	}
	choices := n.Choices()
	fmt.Fprintln(buf, len(choices))
	for _, c := range choices {
		fmt.Fprintln(buf, c)
	}
}

func TestLoadLegacyText_MatchesBinaryLoad(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	samples := patternSamples(rng, 1)
	net := neural.NewNetwork(16, []uint8{0, 1, 2}, 11)

	var buf bytes.Buffer
	writeLegacyText(&buf, samples, net)

	gotSamples, gotNet, err := neural.LoadLegacyText(&buf)
	require.NoError(t, err)
	assert.Equal(t, samples, gotSamples)
	assert.Equal(t, net.Choices(), gotNet.Choices())
	require.Equal(t, len(neural.Layers(net)), len(neural.Layers(gotNet)))

	_, _, err = neural.LoadLegacyText(bytes.NewBufferString("3 0 5 1.0"))
	assert.ErrorIs(t, err, neural.ErrMalformed)
}
