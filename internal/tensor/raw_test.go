package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRaw(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Float64, CPU)
	require.NoError(t, err)

	assert.Equal(t, Shape{2, 3}, raw.Shape())
	assert.Equal(t, []int{3, 1}, raw.Strides())
	assert.Equal(t, Float64, raw.DType())
	assert.Equal(t, "CPU", raw.Device().String())
	assert.Equal(t, 48, raw.ByteSize())
	assert.Equal(t, make([]float64, 6), raw.AsFloat64())

	_, err = NewRaw(Shape{2, 0}, Float32, CPU)
	assert.Error(t, err)
}

func TestRawTensor_WrongDType(t *testing.T) {
	raw, err := NewRaw(Shape{2}, Float32, CPU)
	require.NoError(t, err)
	assert.Panics(t, func() { raw.AsFloat64() })
}

func TestRawTensor_View(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Float32, CPU)
	require.NoError(t, err)
	copy(raw.AsFloat32(), []float32{1, 2, 3, 4, 5, 6})

	view, err := raw.View(Shape{3, 2})
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2}, view.Shape())
	assert.Equal(t, []int{2, 1}, view.Strides())

	// Views share storage.
	view.AsFloat32()[0] = 10
	assert.Equal(t, []float32{10, 2, 3, 4, 5, 6}, raw.AsFloat32())

	_, err = raw.View(Shape{4})
	assert.Error(t, err)
}

func TestRawTensor_Clone(t *testing.T) {
	raw, err := NewRaw(Shape{3}, Float32, CPU)
	require.NoError(t, err)
	copy(raw.AsFloat32(), []float32{1, 2, 3})

	clone := raw.Clone()
	clone.AsFloat32()[0] = 9

	assert.Equal(t, []float32{1, 2, 3}, raw.AsFloat32())
	assert.Equal(t, []float32{9, 2, 3}, clone.AsFloat32())
}

func TestDataType(t *testing.T) {
	assert.Equal(t, 4, Float32.Size())
	assert.Equal(t, 8, Float64.Size())
	assert.Equal(t, "float32", Float32.String())
	assert.Equal(t, "float64", Float64.String())
	assert.Panics(t, func() { DataType(9).Size() })
}
