package nn

import (
	"github.com/born-ml/maskconv/internal/tensor"
)

// Parameter represents a trainable parameter owned by a layer.
//
// Parameters are named with their scope path, e.g. "conv1/Filters".
// Gradient tracking belongs to the backend that trains the model.
//
// Example:
//
//	// Create a filter parameter
//	filters := nn.NewParameter("conv1/Filters", filterTensor)
//
//	// Access the tensor
//	w := filters.Tensor()
type Parameter[B tensor.Backend] struct {
	name   string                     // Fully qualified name (e.g., "conv1/Filters")
	tensor *tensor.Tensor[float32, B] // The parameter tensor
}

// NewParameter creates a new trainable parameter.
//
// The tensor should be initialized before creating the Parameter.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return &Parameter[B]{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name.
func (p *Parameter[B]) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter[B]) Tensor() *tensor.Tensor[float32, B] {
	return p.tensor
}

// Shape returns the parameter tensor's shape.
func (p *Parameter[B]) Shape() tensor.Shape {
	return p.tensor.Shape()
}
