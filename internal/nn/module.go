// Package nn implements the masked 1-D convolution layer and the parameter
// scoping it is built with.
//
// This package provides:
//   - Module interface: Base interface for all NN components
//   - Parameter and ParameterStore: named, scoped trainable tensors
//   - MaskSpec / BuildMask: causal and channel-group autoregressive masks
//   - FanInOut / FilterStdev / UniformStdev: He and Glorot uniform initialization
//   - WeightNorm: per-output-channel magnitude reparameterization
//   - MaskedConv1D and Builder: the layer and its constructor
//   - Sequential: Container for stacking layers
package nn

import (
	"github.com/born-ml/maskconv/internal/tensor"
)

// Module is the base interface for all neural network components.
//
// Every NN module must implement:
//   - Forward: Compute output from input
//   - Parameters: Return all trainable parameters
//
// Type parameter B must satisfy the tensor.Backend interface.
type Module[B tensor.Backend] interface {
	// Forward computes the output of the module given an input tensor.
	//
	// MaskedConv1D expects [batch, width, input_dim].
	Forward(input *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B]

	// Parameters returns all trainable parameters of this module.
	Parameters() []*Parameter[B]
}
