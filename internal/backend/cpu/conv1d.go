package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/born-ml/maskconv/internal/parallel"
	"github.com/born-ml/maskconv/internal/tensor"
)

// Conv1D performs a strided 1-D convolution in channel-last layout using im2col.
//
// Input shape:  [batch, width, in_channels]
// Filter shape: [filter_size, in_channels, out_channels]
// Output shape: [batch, out_width, out_channels]
//
// Padding:
//   - SAME:  out_width = ceil(width / stride); the total padding is split with
//     the smaller half on the left.
//   - VALID: out_width = (width - filter_size) / stride + 1.
//
// Output position o reads input positions o*stride + k - pad_left for k in
// [0, filter_size). Out-of-range positions contribute zero.
//
// Algorithm: Im2col
//  1. For each batch element, gather patches into [out_width, filter_size*in_channels]
//  2. The filter is already [filter_size*in_channels, out_channels] in row-major order
//  3. GEMM the two into the batch element's [out_width, out_channels] output slice
//
// Batch elements are processed through parallel.For.
func (cpu *CPUBackend) Conv1D(input, filter *tensor.RawTensor, stride int, padding tensor.Padding) *tensor.RawTensor {
	inputShape := input.Shape()
	filterShape := filter.Shape()

	if len(inputShape) != 3 {
		panic(fmt.Sprintf("conv1d: input must be 3D [N,W,C_in], got %dD", len(inputShape)))
	}
	if len(filterShape) != 3 {
		panic(fmt.Sprintf("conv1d: filter must be 3D [K,C_in,C_out], got %dD", len(filterShape)))
	}
	if input.DType() != filter.DType() {
		panic(fmt.Sprintf("conv1d: dtype mismatch input=%s filter=%s", input.DType(), filter.DType()))
	}
	if stride <= 0 {
		panic(fmt.Sprintf("conv1d: invalid stride %d", stride))
	}

	g := conv1dGeometry{
		N:      inputShape[0],
		W:      inputShape[1],
		CIn:    inputShape[2],
		K:      filterShape[0],
		COut:   filterShape[2],
		Stride: stride,
	}
	if filterShape[1] != g.CIn {
		panic(fmt.Sprintf("conv1d: input channels %d != filter channels %d", g.CIn, filterShape[1]))
	}

	g.WOut, g.PadLeft = tensor.Conv1DOutputWidth(g.W, g.K, stride, padding)
	if g.WOut <= 0 {
		panic(fmt.Sprintf("conv1d: invalid output width %d (width=%d, filter=%d, stride=%d, padding=%s)",
			g.WOut, g.W, g.K, stride, padding))
	}

	output, err := tensor.NewRaw(tensor.Shape{g.N, g.WOut, g.COut}, input.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("conv1d: failed to create output tensor: %v", err))
	}

	switch input.DType() {
	case tensor.Float32:
		conv1dFloat32(output.AsFloat32(), input.AsFloat32(), filter.AsFloat32(), g, cpu.parallel)
	case tensor.Float64:
		conv1dFloat64(output.AsFloat64(), input.AsFloat64(), filter.AsFloat64(), g, cpu.parallel)
	default:
		panic(fmt.Sprintf("conv1d: unsupported dtype %s", input.DType()))
	}

	return output
}

// conv1dGeometry holds the resolved sizes of one Conv1D call.
type conv1dGeometry struct {
	N, W, CIn     int
	K, COut       int
	Stride        int
	WOut, PadLeft int
}

// colWidth is the row length of the im2col buffer.
func (g conv1dGeometry) colWidth() int {
	return g.K * g.CIn
}

// im2col gathers the patches of one batch element.
// col: [WOut, K*CIn], src: [W, CIn].
func im2col[T tensor.DType](col, src []T, g conv1dGeometry) {
	cw := g.colWidth()
	for o := 0; o < g.WOut; o++ {
		row := col[o*cw : (o+1)*cw]
		for k := 0; k < g.K; k++ {
			dst := row[k*g.CIn : (k+1)*g.CIn]
			pos := o*g.Stride + k - g.PadLeft
			if pos < 0 || pos >= g.W {
				for c := range dst {
					dst[c] = 0
				}
				continue
			}
			copy(dst, src[pos*g.CIn:(pos+1)*g.CIn])
		}
	}
}

func conv1dFloat32(out, in, filter []float32, g conv1dGeometry, cfg parallel.Config) {
	cw := g.colWidth()
	w := blas32.General{Rows: cw, Cols: g.COut, Stride: g.COut, Data: filter}

	parallel.For(g.N, func(n int) {
		col := make([]float32, g.WOut*cw)
		im2col(col, in[n*g.W*g.CIn:(n+1)*g.W*g.CIn], g)

		a := blas32.General{Rows: g.WOut, Cols: cw, Stride: cw, Data: col}
		c := blas32.General{Rows: g.WOut, Cols: g.COut, Stride: g.COut, Data: out[n*g.WOut*g.COut : (n+1)*g.WOut*g.COut]}
		blas32.Gemm(blas.NoTrans, blas.NoTrans, 1, a, w, 0, c)
	}, cfg)
}

func conv1dFloat64(out, in, filter []float64, g conv1dGeometry, cfg parallel.Config) {
	cw := g.colWidth()
	w := blas64.General{Rows: cw, Cols: g.COut, Stride: g.COut, Data: filter}

	parallel.For(g.N, func(n int) {
		col := make([]float64, g.WOut*cw)
		im2col(col, in[n*g.W*g.CIn:(n+1)*g.W*g.CIn], g)

		a := blas64.General{Rows: g.WOut, Cols: cw, Stride: cw, Data: col}
		c := blas64.General{Rows: g.WOut, Cols: g.COut, Stride: g.COut, Data: out[n*g.WOut*g.COut : (n+1)*g.WOut*g.COut]}
		blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, a, w, 0, c)
	}, cfg)
}
