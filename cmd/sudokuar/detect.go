package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sudokuar/core"
	"github.com/katalvlaran/sudokuar/neural"
	"github.com/katalvlaran/sudokuar/pipeline"
	"github.com/katalvlaran/sudokuar/sudoku"
)

var (
	detectModel   string
	detectOverlay string
	detectRadius  float64
)

var detectCmd = &cobra.Command{
	Use:   "detect <image.png>",
	Short: "Find and solve the Sudoku grid in a still image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		frame, err := loadPNG(args[0])
		if err != nil {
			return err
		}

		net, err := loadModel(detectModel)
		if err != nil {
			return err
		}

		opts := pipeline.DefaultOptions()
		if detectRadius > 0 {
			opts.BlurRadius = detectRadius
		}
		p := pipeline.New(net, opts)

		result := p.Process(frame)
		if !result.Found {
			return fmt.Errorf("no grid found in %s", args[0])
		}

		out := cmd.OutOrStdout()
		for i, c := range result.Corners {
			fmt.Fprintf(out, "corner %d: (%.1f, %.1f)\n", i, c.X, c.Y)
		}

		game, _ := sudoku.DigitsToGame(result.Digits[:])
		fmt.Fprintln(out, "recognised digits:")
		fmt.Fprint(out, game.String())

		if result.Solved {
			solved, _ := sudoku.DigitsToGame(result.Solution)
			fmt.Fprintln(out, "solution:")
			fmt.Fprint(out, solved.String())
		} else {
			fmt.Fprintln(out, "no solution available")
		}

		if detectOverlay != "" && result.Solved {
			p.Overlay(frame, result)
			if err := savePNG(detectOverlay, frame); err != nil {
				return err
			}
			fmt.Fprintf(out, "overlay written to %s\n", detectOverlay)
		}
		return nil
	},
}

// loadModel reads the trained classifier, falling back to fresh random
// weights when no artifact exists. Malformed artifacts are fatal; the user
// must re-train.
func loadModel(path string) (*neural.Network, error) {
	_, net, err := neural.LoadFile(path)
	if err == nil {
		return net, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "no model at %s, digits will be noise; run `sudokuar train`\n", path)
		return neural.NewNetwork(neural.InputSize, neural.DigitChoices(), 1), nil
	}
	return nil, err
}

func loadPNG(path string) (*core.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	frame := core.NewImage(bounds.Dx(), bounds.Dy())
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			frame.SetRGB(x, y, byte(r>>8), byte(g>>8), byte(b>>8))
		}
	}
	return frame, nil
}

func savePNG(path string, frame *core.Image) error {
	img := image.NewRGBA(image.Rect(0, 0, frame.Width, frame.Height))
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			i := frame.Index(x, y)
			o := img.PixOffset(x, y)
			img.Pix[o+0] = frame.Data[i+0]
			img.Pix[o+1] = frame.Data[i+1]
			img.Pix[o+2] = frame.Data[i+2]
			img.Pix[o+3] = 255
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func init() {
	detectCmd.Flags().StringVar(&detectModel, "model", neural.ArtifactPath, "trained classifier artifact")
	detectCmd.Flags().StringVar(&detectOverlay, "overlay", "", "write the solved overlay to this PNG")
	detectCmd.Flags().Float64Var(&detectRadius, "blur-radius", 0, "edge extractor blur radius (default 5)")
	rootCmd.AddCommand(detectCmd)
}
