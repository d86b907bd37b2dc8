// Package main provides the maskconv CLI.
//
// Usage:
//
//	maskconv version
//	maskconv mask -k 3 -in 4 -out 8 -type b -groups 2
//	maskconv run -k 3 -in 4 -out 8 -type b -groups 2 -batch 2 -width 10 -weightnorm -seed 1
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/exp/rand"

	"github.com/born-ml/maskconv/internal/backend/cpu"
	"github.com/born-ml/maskconv/internal/nn"
	"github.com/born-ml/maskconv/internal/tensor"
)

const version = "v0.1.0"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "maskconv: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		usage(out)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(out, "maskconv %s\n", version)
		return nil
	case "mask":
		return runMask(args[1:], out)
	case "run":
		return runLayer(args[1:], out)
	case "help", "-h", "--help":
		usage(out)
		return nil
	default:
		usage(out)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage(out io.Writer) {
	fmt.Fprintln(out, "maskconv - masked 1-D convolution layers")
	fmt.Fprintf(out, "Version: %s\n\n", version)
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  version    Show version")
	fmt.Fprintln(out, "  mask       Print the autoregressive mask of a layer")
	fmt.Fprintln(out, "  run        Build a layer and run a random batch through it")
}

// layerFlags are shared by the mask and run commands.
type layerFlags struct {
	filterSize int
	inputDim   int
	outputDim  int
	maskType   string
	groups     int
}

func (f *layerFlags) register(fs *flag.FlagSet) {
	fs.IntVar(&f.filterSize, "k", 3, "Filter size")
	fs.IntVar(&f.inputDim, "in", 4, "Input channels")
	fs.IntVar(&f.outputDim, "out", 8, "Output channels")
	fs.StringVar(&f.maskType, "type", "b", `Mask type: "a", "b" or "none"`)
	fs.IntVar(&f.groups, "groups", 1, "Channel groups")
}

func (f *layerFlags) maskSpec() (nn.MaskSpec, error) {
	kind, err := nn.ParseMaskKind(f.maskType)
	if err != nil {
		return nn.MaskSpec{}, err
	}
	return nn.MaskSpec{Kind: kind, Groups: f.groups}, nil
}

func runMask(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("mask", flag.ContinueOnError)
	fs.SetOutput(out)
	var lf layerFlags
	lf.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	spec, err := lf.maskSpec()
	if err != nil {
		return err
	}
	mask, err := nn.BuildMask(lf.filterSize, lf.inputDim, lf.outputDim, spec)
	if err != nil {
		return err
	}
	if mask == nil {
		fmt.Fprintln(out, "no mask: every tap is visible")
		return nil
	}

	fmt.Fprintf(out, "mask %s, groups=%d, shape=[%d %d %d]\n",
		spec.Kind, max(spec.Groups, 1), lf.filterSize, lf.inputDim, lf.outputDim)

	tapSize := lf.inputDim * lf.outputDim
	for k := 0; k < lf.filterSize; k++ {
		open := 0
		for _, v := range mask[k*tapSize : (k+1)*tapSize] {
			if v != 0 {
				open++
			}
		}
		fmt.Fprintf(out, "  tap %d: %d/%d open\n", k, open, tapSize)
	}

	center := lf.filterSize / 2
	fmt.Fprintf(out, "center tap %d (rows: input channel, columns: output channel):\n", center)
	for ci := 0; ci < lf.inputDim; ci++ {
		var row strings.Builder
		for co := 0; co < lf.outputDim; co++ {
			if mask[center*tapSize+ci*lf.outputDim+co] != 0 {
				row.WriteString(" 1")
			} else {
				row.WriteString(" .")
			}
		}
		fmt.Fprintf(out, "  %3d:%s\n", ci, row.String())
	}
	return nil
}

func runLayer(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(out)
	var lf layerFlags
	lf.register(fs)
	batch := fs.Int("batch", 2, "Batch size")
	width := fs.Int("width", 10, "Sequence width")
	stride := fs.Int("stride", 1, "Convolution stride")
	padding := fs.String("padding", "SAME", `Padding: "SAME" or "VALID"`)
	weightNorm := fs.Bool("weightnorm", false, "Enable weight normalization by default")
	noBias := fs.Bool("nobias", false, "Disable the bias")
	glorot := fs.Bool("glorot", false, "Use Glorot instead of He initialization")
	seed := fs.Uint64("seed", 1, "Random seed for filters and input")
	if err := fs.Parse(args); err != nil {
		return err
	}

	spec, err := lf.maskSpec()
	if err != nil {
		return err
	}
	pad, err := tensor.ParsePadding(*padding)
	if err != nil {
		return err
	}
	if *batch <= 0 || *width <= 0 {
		return errors.New("batch and width must be positive")
	}

	backend := cpu.New()
	builder := nn.NewBuilder(backend, nn.BuilderConfig{})
	if *weightNorm {
		builder.EnableWeightNormDefault()
	}

	src := rand.NewSource(*seed)
	input := randomInput(backend, rand.New(src), *batch, *width, lf.inputDim)

	cfg := nn.Conv1DConfig{
		InputDim:   lf.inputDim,
		OutputDim:  lf.outputDim,
		FilterSize: lf.filterSize,
		HeInit:     nn.Bool(!*glorot),
		Mask:       spec,
		Stride:     *stride,
		UseBias:    nn.Bool(!*noBias),
		Padding:    pad,
		Rand:       src,
	}

	output, err := builder.MaskedConv1D("conv", cfg, input)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "backend: %s\n", backend.Name())
	fmt.Fprintf(out, "input:   %v\n", input.Shape())
	fmt.Fprintf(out, "output:  %v\n", output.Shape())
	fmt.Fprintln(out, "parameters:")
	for _, p := range builder.Store().Parameters() {
		fmt.Fprintf(out, "  %-14s %v\n", p.Name(), p.Shape())
	}
	return nil
}

func randomInput(backend *cpu.CPUBackend, rng *rand.Rand, batch, width, channels int) *tensor.Tensor[float32, *cpu.CPUBackend] {
	x := tensor.Zeros[float32](tensor.Shape{batch, width, channels}, backend)
	data := x.Data()
	for i := range data {
		data[i] = float32(rng.NormFloat64())
	}
	return x
}
