package tensor

// Add performs element-wise addition with broadcasting.
//
// Example:
//
//	out := tensor.Zeros[float32](Shape{2, 10, 1, 8}, backend)
//	bias := tensor.Ones[float32](Shape{1, 1, 1, 8}, backend)
//	c := out.Add(bias) // Shape: [2, 10, 1, 8] (broadcasted)
func (t *Tensor[T, B]) Add(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Add(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor[T, B]) Mul(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Mul(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Div performs element-wise division with broadcasting.
func (t *Tensor[T, B]) Div(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.Div(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// Square computes t * t element-wise.
func (t *Tensor[T, B]) Square() *Tensor[T, B] {
	return t.Mul(t)
}

// Sqrt computes the element-wise square root.
func (t *Tensor[T, B]) Sqrt() *Tensor[T, B] {
	result := t.backend.Sqrt(t.raw)
	return New[T, B](result, t.backend)
}

// SumDim sums along one dimension. Negative dims count from the end.
//
// Example:
//
//	filter := tensor.Ones[float32](Shape{3, 4, 8}, backend)
//	s := filter.SumDim(0, true).SumDim(1, true) // Shape: [1, 1, 8]
func (t *Tensor[T, B]) SumDim(dim int, keepDim bool) *Tensor[T, B] {
	result := t.backend.SumDim(t.raw, dim, keepDim)
	return New[T, B](result, t.backend)
}

// Reshape returns a tensor with the same data but different shape.
// The new shape must have the same number of elements.
//
// Example:
//
//	g := tensor.Ones[float32](Shape{8}, backend)
//	reshaped := g.Reshape(1, 1, 8)
func (t *Tensor[T, B]) Reshape(newShape ...int) *Tensor[T, B] {
	result := t.backend.Reshape(t.raw, Shape(newShape))
	return New[T, B](result, t.backend)
}

// Conv1D convolves a channel-last input [N, W, C_in] with filter [K, C_in, C_out].
//
// Example:
//
//	x := tensor.Zeros[float32](Shape{2, 10, 4}, backend)
//	f := tensor.Ones[float32](Shape{3, 4, 8}, backend)
//	y := x.Conv1D(f, 1, tensor.PaddingSame) // Shape: [2, 10, 8]
func (t *Tensor[T, B]) Conv1D(filter *Tensor[T, B], stride int, padding Padding) *Tensor[T, B] {
	result := t.backend.Conv1D(t.raw, filter.raw, stride, padding)
	return New[T, B](result, t.backend)
}
