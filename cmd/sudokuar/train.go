package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sudokuar/neural"
)

var (
	trainGrids  int
	trainEpochs int
	trainSeed   int64
	trainOut    string
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the digit classifier from synthetic puzzles",
	Long: `Renders random puzzle grids, warps and binarises their cell tiles and
trains the classifier with stochastic back-propagation. Progress is
checkpointed to the artifact every 25 epochs; Ctrl-C saves and exits.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := trainSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "rendering %d grids (seed %d)\n", trainGrids, seed)
		samples := neural.NewSynthesizer(seed).Generate(trainGrids)
		fmt.Fprintf(out, "%d samples\n", len(samples))

		net := neural.NewNetwork(neural.InputSize, neural.DigitChoices(), seed)

		var stop atomic.Bool
		interrupts := make(chan os.Signal, 1)
		signal.Notify(interrupts, os.Interrupt)
		defer signal.Stop(interrupts)
		go func() {
			<-interrupts
			fmt.Fprintln(out, "interrupt: saving after this epoch")
			stop.Store(true)
		}()

		opts := neural.DefaultTrainOptions()
		opts.MaxEpochs = trainEpochs
		opts.Stop = &stop
		opts.Checkpoint = func() error {
			return neural.SaveFile(trainOut, samples, net)
		}
		opts.Progress = func(epoch int, deltaSum float64) {
			if epoch%25 == 0 || deltaSum < 1 {
				fmt.Fprintf(out, "epoch %4d  Σ|δ| = %.3f\n", epoch, deltaSum)
			}
		}

		if err := net.Train(samples, opts); err != nil {
			return err
		}
		if err := neural.SaveFile(trainOut, samples, net); err != nil {
			return err
		}
		fmt.Fprintf(out, "model written to %s\n", trainOut)
		return nil
	},
}

func init() {
	trainCmd.Flags().IntVar(&trainGrids, "grids", neural.DefaultTrainingGrids, "number of random grids to render")
	trainCmd.Flags().IntVar(&trainEpochs, "epochs", neural.MaxEpochs, "maximum training epochs")
	trainCmd.Flags().Int64Var(&trainSeed, "seed", 0, "PRNG seed (0 = time-based)")
	trainCmd.Flags().StringVar(&trainOut, "out", neural.ArtifactPath, "artifact output path")
	rootCmd.AddCommand(trainCmd)
}
