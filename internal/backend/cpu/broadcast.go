package cpu

import (
	"github.com/born-ml/maskconv/internal/tensor"
)

// broadcastIter walks the output of a broadcast binary op in row-major order
// and tracks the matching flat offsets into both operands.
//
// The offsets are updated incrementally, odometer style, so no per-element
// division is needed.
type broadcastIter struct {
	shape    tensor.Shape
	coord    []int
	aStrides []int // 0 on broadcast axes
	bStrides []int
	aIdx     int
	bIdx     int
}

func newBroadcastIter(aShape, bShape, outShape tensor.Shape) *broadcastIter {
	return &broadcastIter{
		shape:    outShape,
		coord:    make([]int, len(outShape)),
		aStrides: broadcastStrides(aShape, outShape),
		bStrides: broadcastStrides(bShape, outShape),
	}
}

// broadcastStrides returns the row-major strides of in, right-aligned against
// out. Axes that in lacks or holds with size 1 get stride 0.
//
// Example: in [1, 1, 8], out [3, 4, 8] -> [0, 0, 1].
func broadcastStrides(in, out tensor.Shape) []int {
	strides := make([]int, len(out))
	inStrides := in.ComputeStrides()
	offset := len(out) - len(in)

	for i := offset; i < len(out); i++ {
		if in[i-offset] != 1 {
			strides[i] = inStrides[i-offset]
		}
	}
	return strides
}

// next advances to the following output element.
func (it *broadcastIter) next() {
	for d := len(it.shape) - 1; d >= 0; d-- {
		it.coord[d]++
		it.aIdx += it.aStrides[d]
		it.bIdx += it.bStrides[d]
		if it.coord[d] < it.shape[d] {
			return
		}
		// carry
		it.aIdx -= it.coord[d] * it.aStrides[d]
		it.bIdx -= it.coord[d] * it.bStrides[d]
		it.coord[d] = 0
	}
}
