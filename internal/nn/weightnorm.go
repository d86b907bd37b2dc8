package nn

import (
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/maskconv/internal/tensor"
)

// ChannelNorms returns the L2 norm of each output channel of a row-major
// [filterSize, inputDim, outputDim] filter, taken over the first two axes.
//
// These norms are the initial value of the weight-norm gain g.
func ChannelNorms(values []float32, filterSize, inputDim, outputDim int) []float32 {
	rows := filterSize * inputDim
	column := make([]float64, rows)
	norms := make([]float32, outputDim)

	for o := 0; o < outputDim; o++ {
		for r := 0; r < rows; r++ {
			column[r] = float64(values[r*outputDim+o])
		}
		norms[o] = float32(floats.Norm(column, 2))
	}
	return norms
}

// WeightNorm rescales each output channel of filters to have norm g.
//
// filters: [K, C_in, C_out], g: [C_out].
//
//	norms   = sqrt(sum over axes 0,1 of filters^2)   -> [1, 1, C_out]
//	result  = filters * (g / norms)                 broadcast over axes 0 and 1
//
// The norms are recomputed from the live filter on every call.
func WeightNorm[B tensor.Backend](filters, g *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	shape := filters.Shape()
	outputDim := shape[len(shape)-1]

	norms := filters.Square().SumDim(0, true).SumDim(1, true).Sqrt()
	scale := g.Reshape(1, 1, outputDim).Div(norms)

	return filters.Mul(scale)
}
