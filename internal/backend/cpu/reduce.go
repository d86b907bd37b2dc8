package cpu

import (
	"fmt"

	"github.com/born-ml/maskconv/internal/tensor"
)

// SumDim sums tensor elements along the specified dimension.
//
// Parameters:
//   - dim: dimension to reduce (supports negative indexing: -1 = last dim)
//   - keepDim: if true, keep the reduced dimension with size 1; if false, remove it
//
// Example:
//
//	filter := backend.SumDim(x, 0, true) // [3, 4, 8] -> [1, 4, 8]
//	y := backend.SumDim(filter, 1, true) // [1, 4, 8] -> [1, 1, 8]
func (cpu *CPUBackend) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	dim, err := tensor.NormalizeDim(dim, ndim)
	if err != nil {
		panic(fmt.Sprintf("sumdim: %v", err))
	}

	var outShape tensor.Shape
	if keepDim {
		outShape = shape.Clone()
		outShape[dim] = 1
	} else {
		outShape = make(tensor.Shape, 0, ndim-1)
		for i := 0; i < ndim; i++ {
			if i != dim {
				outShape = append(outShape, shape[i])
			}
		}
	}

	result, err := tensor.NewRaw(outShape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("sumdim: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		sumDim(x.AsFloat32(), result.AsFloat32(), shape, dim)
	case tensor.Float64:
		sumDim(x.AsFloat64(), result.AsFloat64(), shape, dim)
	default:
		panic(fmt.Sprintf("sumdim: unsupported dtype %s (only float32/float64 supported)", x.DType()))
	}

	return result
}

// sumDim reduces data along dim into result.
// The tensor is viewed as [outer, size, inner] around the reduced axis.
func sumDim[T tensor.DType](data, result []T, shape tensor.Shape, dim int) {
	for i := range result {
		result[i] = 0
	}

	outer := shape[:dim].NumElements()
	size := shape[dim]
	inner := shape[dim+1:].NumElements()

	for o := 0; o < outer; o++ {
		src := data[o*size*inner:]
		dst := result[o*inner : (o+1)*inner]
		for s := 0; s < size; s++ {
			row := src[s*inner : (s+1)*inner]
			for i, v := range row {
				dst[i] += v
			}
		}
	}
}
