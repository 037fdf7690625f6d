// Package neural implements the digit classifier: a small fully-connected
// feed-forward network trained from synthetically rendered puzzles.
//
// 🚀 What the package does
//
//   - Network — sigmoid MLP with one hidden layer of ⌊input/2⌋ neurons and
//     one output neuron per label. Run returns the arg-max label.
//   - Train — stochastic back-propagation (η = 0.005, up to 1500 epochs)
//     with periodic checkpointing to the binary artifact.
//   - Binarize — an adaptive thresholder that turns an anti-aliased glyph
//     tile into a clean 0/1 vector before it reaches the network.
//   - Synthesizer — renders random puzzles, warps them like a camera would,
//     slices them into 16×16 cell tiles and labels them, producing the
//     training corpus without any hand-labelled data.
//   - Save/Load — the little-endian binary artifact at training.bin.dat,
//     plus a reader for the legacy whitespace text form.
//
// ✨ Typical round trip
//
//	samples := neural.NewSynthesizer(seed).Generate(3000)
//	net := neural.NewNetwork(neural.InputSize, neural.DigitChoices(), seed)
//	err := net.Train(samples, neural.DefaultTrainOptions())
//	digit := net.Run(tile)
package neural
