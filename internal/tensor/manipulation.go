package tensor

// Unsqueeze adds a dimension of size 1 at the specified position.
//
// Supports negative dim indexing.
// This is a view operation (no data copy).
//
// Example:
//
//	x := tensor.Zeros[float32](Shape{2, 10, 8}, backend)
//	y := x.Unsqueeze(2)  // Shape: [2, 10, 1, 8]
//	z := x.Unsqueeze(-1) // Shape: [2, 10, 8, 1]
func (t *Tensor[T, B]) Unsqueeze(dim int) *Tensor[T, B] {
	result := t.backend.Unsqueeze(t.raw, dim)
	return New[T, B](result, t.backend)
}

// Squeeze removes a dimension of size 1 at the specified position.
//
// Panics if the dimension size is not 1. Only the named axis is removed,
// so a batch or width of 1 elsewhere in the shape survives.
// This is a view operation (no data copy).
//
// Example:
//
//	x := tensor.Zeros[float32](Shape{1, 10, 1, 8}, backend)
//	y := x.Squeeze(2)  // Shape: [1, 10, 8]
func (t *Tensor[T, B]) Squeeze(dim int) *Tensor[T, B] {
	result := t.backend.Squeeze(t.raw, dim)
	return New[T, B](result, t.backend)
}
