package tensor

import "fmt"

// Padding selects how Conv1D pads the width axis.
type Padding int

const (
	// PaddingSame pads so that the output width is ceil(width / stride).
	// Extra padding goes to the right when the total is odd.
	PaddingSame Padding = iota
	// PaddingValid applies no padding.
	PaddingValid
)

// String returns the conventional padding name.
func (p Padding) String() string {
	switch p {
	case PaddingSame:
		return "SAME"
	case PaddingValid:
		return "VALID"
	default:
		return "Unknown"
	}
}

// ParsePadding parses "SAME" or "VALID" in either case. An empty string means SAME.
func ParsePadding(s string) (Padding, error) {
	switch s {
	case "SAME", "same", "":
		return PaddingSame, nil
	case "VALID", "valid":
		return PaddingValid, nil
	default:
		return 0, fmt.Errorf("unknown padding %q", s)
	}
}

// Conv1DOutputWidth returns the output width and left padding for a 1-D convolution.
func Conv1DOutputWidth(width, filterSize, stride int, padding Padding) (outWidth, padLeft int) {
	switch padding {
	case PaddingValid:
		return (width-filterSize)/stride + 1, 0
	default:
		outWidth = (width + stride - 1) / stride
		padTotal := max((outWidth-1)*stride+filterSize-width, 0)
		return outWidth, padTotal / 2
	}
}

// Backend defines the operations a compute backend must provide to build
// masked convolution layers.
//
// Implementations:
//   - CPU: Pure Go, im2col + gonum BLAS for convolution
type Backend interface {
	// Element-wise binary operations (NumPy broadcasting)
	Add(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Math operations (element-wise)
	Sqrt(x *RawTensor) *RawTensor

	// Reduction operations
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor // sum along dimension

	// Shape operations
	Reshape(t *RawTensor, newShape Shape) *RawTensor
	Unsqueeze(x *RawTensor, dim int) *RawTensor // add dimension of size 1
	Squeeze(x *RawTensor, dim int) *RawTensor   // remove dimension of size 1

	// Conv1D convolves a channel-last input [N, W, C_in] with a filter
	// [K, C_in, C_out] and returns [N, W_out, C_out].
	Conv1D(input, filter *RawTensor, stride int, padding Padding) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
