// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"golang.org/x/exp/rand"

	"github.com/born-ml/maskconv/internal/nn"
	"github.com/born-ml/maskconv/internal/tensor"
)

// Module interface defines the common interface for all neural network modules.
type Module[B tensor.Backend] = nn.Module[B]

// Parameter represents a trainable parameter in a neural network.
type Parameter[B tensor.Backend] = nn.Parameter[B]

// NewParameter creates a new parameter with the given name and tensor.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return nn.NewParameter(name, t)
}

// ParameterStore allocates named parameters under hierarchical scopes.
type ParameterStore[B tensor.Backend] = nn.ParameterStore[B]

// NewParameterStore creates an empty root store.
func NewParameterStore[B tensor.Backend]() *ParameterStore[B] {
	return nn.NewParameterStore[B]()
}

// Masks

// MaskKind selects the autoregressive mask applied to a filter.
type MaskKind = nn.MaskKind

// Mask kinds.
const (
	MaskNone MaskKind = nn.MaskNone
	MaskA    MaskKind = nn.MaskA
	MaskB    MaskKind = nn.MaskB
)

// MaskSpec describes the mask of one layer. The zero value means no mask.
type MaskSpec = nn.MaskSpec

// ParseMaskKind parses "a", "b", or "none".
func ParseMaskKind(s string) (MaskKind, error) {
	return nn.ParseMaskKind(s)
}

// BuildMask returns the [filterSize, inputDim, outputDim] mask in row-major order,
// or nil for MaskNone.
//
// Example:
//
//	mask, err := nn.BuildMask(3, 4, 8, nn.MaskSpec{Kind: nn.MaskB, Groups: 2})
func BuildMask(filterSize, inputDim, outputDim int, spec MaskSpec) ([]float32, error) {
	return nn.BuildMask(filterSize, inputDim, outputDim, spec)
}

// Initialization

// FanInOut returns the fan-in and fan-out of a 1-D convolution filter,
// halved when the filter is masked.
func FanInOut(inputDim, outputDim, filterSize, stride int, masked bool) (fanIn, fanOut float64) {
	return nn.FanInOut(inputDim, outputDim, filterSize, stride, masked)
}

// FilterStdev returns the He (heInit) or Glorot standard deviation.
func FilterStdev(fanIn, fanOut float64, heInit bool) float64 {
	return nn.FilterStdev(fanIn, fanOut, heInit)
}

// UniformStdev creates a tensor sampled from a uniform distribution with
// standard deviation stdev, scaled by gain.
func UniformStdev[B tensor.Backend](stdev, gain float64, shape tensor.Shape, src rand.Source, backend B) *tensor.Tensor[float32, B] {
	return nn.UniformStdev(stdev, gain, shape, src, backend)
}

// WeightNorm rescales each output channel of filters [K, in, out] to have norm g [out].
func WeightNorm[B tensor.Backend](filters, g *tensor.Tensor[float32, B]) *tensor.Tensor[float32, B] {
	return nn.WeightNorm(filters, g)
}

// Layers

// Conv1DConfig configures a masked 1-D convolution layer.
type Conv1DConfig = nn.Conv1DConfig

// Bool returns a pointer to v, for the optional fields of Conv1DConfig.
func Bool(v bool) *bool {
	return nn.Bool(v)
}

// Float returns a pointer to v, for Conv1DConfig.Gain.
func Float(v float64) *float64 {
	return nn.Float(v)
}

// MaskedConv1D is a 1-D convolution layer with optional mask, weight
// normalization and bias.
type MaskedConv1D[B tensor.Backend] = nn.MaskedConv1D[B]

// NewMaskedConv1D creates a standalone layer.
//
// Example:
//
//	backend := cpu.New()
//	conv, err := nn.NewMaskedConv1D(nn.Conv1DConfig{
//	    InputDim: 4, OutputDim: 8, FilterSize: 3,
//	    Mask: nn.MaskSpec{Kind: nn.MaskB, Groups: 2},
//	}, backend)
//	output := conv.Forward(input) // [batch, width, 8]
func NewMaskedConv1D[B tensor.Backend](cfg Conv1DConfig, backend B) (*MaskedConv1D[B], error) {
	return nn.NewMaskedConv1D(cfg, backend)
}

// BuilderConfig holds defaults shared by every layer a Builder creates.
type BuilderConfig = nn.BuilderConfig

// Builder creates masked convolution layers under named scopes.
type Builder[B tensor.Backend] = nn.Builder[B]

// NewBuilder creates a Builder with an empty parameter store.
func NewBuilder[B tensor.Backend](backend B, cfg BuilderConfig) *Builder[B] {
	return nn.NewBuilder(backend, cfg)
}

// Sequential is a container module that chains layers.
type Sequential[B tensor.Backend] = nn.Sequential[B]

// NewSequential creates a new Sequential container.
//
// Example:
//
//	model := nn.NewSequential[*cpu.Backend](first, second)
func NewSequential[B tensor.Backend](modules ...Module[B]) *Sequential[B] {
	return nn.NewSequential(modules...)
}

// Errors

// ConfigError describes a rejected construction argument.
type ConfigError = nn.ConfigError

// Sentinel errors.
var (
	ErrInvalidConfig      = nn.ErrInvalidConfig
	ErrInvalidMask        = nn.ErrInvalidMask
	ErrDuplicateParameter = nn.ErrDuplicateParameter
)
