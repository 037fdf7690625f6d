package neural

import (
	"math"
	"runtime"
	"sync"
	"sync/atomic"
)

// Training hyperparameters.
const (
	LearningRate    = 0.005
	MaxEpochs       = 1500
	checkpointEvery = 25

	// convergedDeltaSum: an epoch whose summed |δ| drops below this has
	// effectively stopped learning; checkpoint and keep going.
	convergedDeltaSum = 1.0
)

// Sample is one labelled training vector. Input carries the bias term
// (1.0 at the raw length) and is padded to a multiple of 8.
type Sample struct {
	Label uint8
	Input []float32
}

// NewSample copies raw, appends the bias input and zero-pads.
func NewSample(label uint8, raw []float32) Sample {
	input := make([]float32, padTo8(len(raw)+1))
	copy(input, raw)
	input[len(raw)] = 1
	return Sample{Label: label, Input: input}
}

// TrainOptions tunes a training run. Zero-valued fields take defaults; nil
// callbacks are skipped.
type TrainOptions struct {
	LearningRate float32
	MaxEpochs    int

	// Checkpoint persists the current weights. Called after every 25th
	// epoch, after any epoch whose summed |δ| falls below 1, and once more
	// before a cooperative stop. A checkpoint error aborts training.
	Checkpoint func() error

	// Progress observes each finished epoch.
	Progress func(epoch int, deltaSum float64)

	// Stop requests a cooperative save-then-exit, checked between epochs.
	Stop *atomic.Bool
}

// DefaultTrainOptions returns the standard schedule with no callbacks.
func DefaultTrainOptions() TrainOptions {
	return TrainOptions{LearningRate: LearningRate, MaxEpochs: MaxEpochs}
}

func (o TrainOptions) withDefaults() TrainOptions {
	if o.LearningRate <= 0 {
		o.LearningRate = LearningRate
	}
	if o.MaxEpochs <= 0 {
		o.MaxEpochs = MaxEpochs
	}
	return o
}

// Train runs stochastic back-propagation over the samples in order, one
// weight update per sample, for up to MaxEpochs epochs.
func (n *Network) Train(samples []Sample, opts TrainOptions) error {
	opts = opts.withDefaults()

	hidden := len(n.layers[0])
	outputs := len(n.layers[1])
	hiddenDelta := make([]float32, hidden)
	outputDelta := make([]float32, outputs)

	for epoch := 1; epoch <= opts.MaxEpochs; epoch++ {
		deltaSum := 0.0
		for i := range samples {
			n.trainSample(&samples[i], opts.LearningRate, hiddenDelta, outputDelta)
			for _, d := range outputDelta {
				deltaSum += math.Abs(float64(d))
			}
			for _, d := range hiddenDelta {
				deltaSum += math.Abs(float64(d))
			}
		}

		if opts.Progress != nil {
			opts.Progress(epoch, deltaSum)
		}

		checkpoint := epoch%checkpointEvery == 0 || deltaSum < convergedDeltaSum
		stop := opts.Stop != nil && opts.Stop.Load()
		if (checkpoint || stop) && opts.Checkpoint != nil {
			if err := opts.Checkpoint(); err != nil {
				return err
			}
		}
		if stop {
			return nil
		}
	}
	return nil
}

// trainSample performs one forward/backward pass and updates weights in
// place. Deltas use the pre-update weights of both layers.
func (n *Network) trainSample(sample *Sample, rate float32, hiddenDelta, outputDelta []float32) {
	n.forward(sample.Input)
	hiddenOut := n.outputs[0]
	outputOut := n.outputs[1]

	labelIndex := 0
	for i, c := range n.choices {
		if c == sample.Label {
			labelIndex = i
			break
		}
	}

	for k, out := range outputOut {
		target := float32(0)
		if k == labelIndex {
			target = 1
		}
		outputDelta[k] = (target - out) * out * (1 - out)
	}

	for j, out := range hiddenOut {
		var sum float32
		for k := range outputDelta {
			sum += outputDelta[k] * n.layers[1][k][j]
		}
		hiddenDelta[j] = sum * out * (1 - out)
	}

	// Weight updates. Each goroutine owns whole neurons, so rows never
	// collide.
	parallelNeurons(len(n.layers[1]), func(k int) {
		weights := n.layers[1][k]
		step := rate * outputDelta[k]
		for j, out := range hiddenOut {
			weights[j] += step * out
		}
		weights[len(hiddenOut)] += step
	})

	input := sample.Input
	prevLen := n.inputSize
	parallelNeurons(len(n.layers[0]), func(j int) {
		weights := n.layers[0][j]
		step := rate * hiddenDelta[j]
		for i := 0; i <= prevLen; i++ {
			weights[i] += step * input[i]
		}
	})
}

// parallelFloor is the neuron count below which fan-out is not worth the
// scheduling overhead.
const parallelFloor = 64

// parallelNeurons maps fn over [0, n) neurons, fanning out across the
// available hardware threads for wide layers and staying inline otherwise.
func parallelNeurons(n int, fn func(i int)) {
	workers := runtime.GOMAXPROCS(0)
	if n < parallelFloor || workers < 2 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}
