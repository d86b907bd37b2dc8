package cpu

import (
	"github.com/born-ml/maskconv/internal/tensor"
)

type binaryOp int

const (
	opAdd binaryOp = iota
	opMul
	opDiv
)

func apply[T tensor.DType](op binaryOp, x, y T) T {
	switch op {
	case opAdd:
		return x + y
	case opMul:
		return x * y
	default:
		return x / y
	}
}

// applyBinary computes dst = a op b, broadcasting when shapes differ.
func applyBinary[T tensor.DType](op binaryOp, dst, a, b []T, aShape, bShape, outShape tensor.Shape, needsBroadcast bool) {
	if !needsBroadcast {
		for i := range dst {
			dst[i] = apply(op, a[i], b[i])
		}
		return
	}

	it := newBroadcastIter(aShape, bShape, outShape)
	for i := range dst {
		dst[i] = apply(op, a[it.aIdx], b[it.bIdx])
		it.next()
	}
}
