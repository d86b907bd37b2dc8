package nn

import (
	"fmt"

	"github.com/born-ml/maskconv/internal/tensor"
)

// MaskKind selects the autoregressive mask applied to a convolution filter.
type MaskKind int

const (
	// MaskNone disables masking; the full filter is used.
	MaskNone MaskKind = iota
	// MaskA hides future taps and, at the current tap, every input group >= the output group.
	// Used for the first layer of an autoregressive stack.
	MaskA
	// MaskB hides future taps and, at the current tap, every input group > the output group.
	// Used for all layers after the first.
	MaskB
)

// String returns "none", "a" or "b".
func (k MaskKind) String() string {
	switch k {
	case MaskNone:
		return "none"
	case MaskA:
		return "a"
	case MaskB:
		return "b"
	default:
		return fmt.Sprintf("MaskKind(%d)", int(k))
	}
}

// ParseMaskKind parses "a", "b", or "" / "none".
func ParseMaskKind(s string) (MaskKind, error) {
	switch s {
	case "", "none":
		return MaskNone, nil
	case "a", "A":
		return MaskA, nil
	case "b", "B":
		return MaskB, nil
	default:
		return MaskNone, maskErr("Kind", s, `must be one of "a", "b" or "none"`)
	}
}

// MaskSpec describes the mask of one layer.
// The zero value means no mask.
//
// Groups is the number of channel groups. Input and output channel c belong
// to group c % Groups, and both channel counts must be divisible by Groups.
// A Groups of 0 with a kind set is treated as 1.
type MaskSpec struct {
	Kind   MaskKind
	Groups int
}

// Enabled reports whether a mask is requested.
func (m MaskSpec) Enabled() bool {
	return m.Kind != MaskNone
}

// normalize fills in the single-group default.
func (m MaskSpec) normalize() MaskSpec {
	if m.Enabled() && m.Groups == 0 {
		m.Groups = 1
	}
	return m
}

// Validate checks the mask against the layer's channel counts.
func (m MaskSpec) Validate(inputDim, outputDim int) error {
	if !m.Enabled() {
		return nil
	}
	if m.Kind != MaskA && m.Kind != MaskB {
		return maskErr("Mask.Kind", m.Kind, "unknown mask kind")
	}

	m = m.normalize()
	if m.Groups < 0 {
		return maskErr("Mask.Groups", m.Groups, "must be positive")
	}
	if inputDim%m.Groups != 0 {
		return maskErr("Mask.Groups", m.Groups, fmt.Sprintf("does not divide input dim %d", inputDim))
	}
	if outputDim%m.Groups != 0 {
		return maskErr("Mask.Groups", m.Groups, fmt.Sprintf("does not divide output dim %d", outputDim))
	}
	return nil
}

// BuildMask returns the [filterSize, inputDim, outputDim] mask in row-major order.
//
// Construction:
//   - start from all ones
//   - zero every tap after center = filterSize / 2
//   - at the center tap, zero input channel ci / output channel co when
//     i = ci % groups and j = co % groups satisfy i >= j (MaskA) or i > j (MaskB)
//
// Returns nil for MaskNone. The result depends only on the arguments.
func BuildMask(filterSize, inputDim, outputDim int, spec MaskSpec) ([]float32, error) {
	if !spec.Enabled() {
		return nil, nil
	}
	if filterSize <= 0 || inputDim <= 0 || outputDim <= 0 {
		return nil, maskErr("shape", tensor.Shape{filterSize, inputDim, outputDim}, "dimensions must be positive")
	}
	if err := spec.Validate(inputDim, outputDim); err != nil {
		return nil, err
	}
	spec = spec.normalize()

	mask := make([]float32, filterSize*inputDim*outputDim)
	center := filterSize / 2
	tapSize := inputDim * outputDim

	// Taps up to the center are visible; later taps stay zero.
	for i := 0; i < (center+1)*tapSize; i++ {
		mask[i] = 1
	}

	centerTap := mask[center*tapSize : (center+1)*tapSize]
	for ci := 0; ci < inputDim; ci++ {
		i := ci % spec.Groups
		for co := 0; co < outputDim; co++ {
			j := co % spec.Groups
			if hidesGroup(spec.Kind, i, j) {
				centerTap[ci*outputDim+co] = 0
			}
		}
	}

	return mask, nil
}

// hidesGroup reports whether output group j must not see input group i
// at the current time step.
func hidesGroup(kind MaskKind, i, j int) bool {
	switch kind {
	case MaskA:
		return i >= j
	case MaskB:
		return i > j
	default:
		return false
	}
}

// MaskTensor wraps BuildMask in a [filterSize, inputDim, outputDim] tensor.
// Returns nil for MaskNone.
func MaskTensor[B tensor.Backend](filterSize, inputDim, outputDim int, spec MaskSpec, backend B) (*tensor.Tensor[float32, B], error) {
	values, err := BuildMask(filterSize, inputDim, outputDim, spec)
	if err != nil || values == nil {
		return nil, err
	}
	return tensor.FromSlice(values, tensor.Shape{filterSize, inputDim, outputDim}, backend)
}
