package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/maskconv/internal/tensor"
)

func TestSumDim_1D(t *testing.T) {
	backend := New()

	x := rawFloat32(t, tensor.Shape{4}, 1, 2, 3, 4)

	result := backend.SumDim(x, 0, true)
	assert.Equal(t, tensor.Shape{1}, result.Shape())
	assert.Equal(t, []float32{10}, result.AsFloat32())

	result = backend.SumDim(x, 0, false)
	assert.Empty(t, result.Shape())
	assert.Equal(t, []float32{10}, result.AsFloat32())
}

func TestSumDim_2D_LastDim(t *testing.T) {
	backend := New()

	// Row 0: [1, 2, 3]
	// Row 1: [4, 5, 6]
	x := rawFloat32(t, tensor.Shape{2, 3}, 1, 2, 3, 4, 5, 6)

	result := backend.SumDim(x, -1, true)
	assert.Equal(t, tensor.Shape{2, 1}, result.Shape())
	assert.Equal(t, []float32{6, 15}, result.AsFloat32())
}

// TestSumDim_FilterAxes reduces a [K, C_in, C_out] filter over its first two axes,
// which is how weight normalization computes per-output-channel norms.
func TestSumDim_FilterAxes(t *testing.T) {
	backend := New()

	// K=2, C_in=2, C_out=2
	x := rawFloat32(t, tensor.Shape{2, 2, 2},
		1, 10,
		2, 20,
		3, 30,
		4, 40)

	overTaps := backend.SumDim(x, 0, true)
	assert.Equal(t, tensor.Shape{1, 2, 2}, overTaps.Shape())
	assert.Equal(t, []float32{4, 40, 6, 60}, overTaps.AsFloat32())

	perChannel := backend.SumDim(overTaps, 1, true)
	assert.Equal(t, tensor.Shape{1, 1, 2}, perChannel.Shape())
	assert.Equal(t, []float32{10, 100}, perChannel.AsFloat32())
}

func TestSumDim_InvalidDim(t *testing.T) {
	backend := New()
	x := rawFloat32(t, tensor.Shape{2, 2}, 1, 2, 3, 4)

	assert.Panics(t, func() { backend.SumDim(x, 2, true) })
	assert.Panics(t, func() { backend.SumDim(x, -3, true) })
}
