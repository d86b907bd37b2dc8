// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides masked 1-D convolution layers for autoregressive
// (PixelCNN-style) sequence models.
//
// # Overview
//
// This package contains:
//   - MaskedConv1D: 1-D convolution with optional causal mask, weight
//     normalization and bias
//   - Builder: creates layers under named parameter scopes
//   - MaskSpec, BuildMask: MaskA / MaskB autoregressive masks with channel groups
//   - FanInOut, FilterStdev, UniformStdev: He and Glorot uniform initialization
//   - ParameterStore, Parameter, Module, Sequential
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/maskconv/nn"
//	    "github.com/born-ml/maskconv/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    b := nn.NewBuilder(backend, nn.BuilderConfig{})
//	    b.EnableWeightNormDefault()
//
//	    // First layer: the current position is hidden.
//	    h, err := b.MaskedConv1D("conv0", nn.Conv1DConfig{
//	        InputDim: 3, OutputDim: 48, FilterSize: 5,
//	        Mask: nn.MaskSpec{Kind: nn.MaskA, Groups: 3},
//	    }, input)
//
//	    // Later layers: the current position is visible to its own group.
//	    h, err = b.MaskedConv1D("conv1", nn.Conv1DConfig{
//	        InputDim: 48, OutputDim: 48, FilterSize: 5,
//	        Mask: nn.MaskSpec{Kind: nn.MaskB, Groups: 3},
//	    }, h)
//	}
//
// # Masks
//
// A mask of filter size K keeps taps 0..K/2 and hides later taps. At the
// center tap, input channel ci reaches output channel co only if
// ci%Groups < co%Groups (MaskA) or ci%Groups <= co%Groups (MaskB).
//
// # Parameters
//
// A layer built under name "conv0" owns "conv0/Filters" [K, in, out],
// "conv0/g" [out] with weight normalization, and "conv0/Biases" [out]
// unless UseBias is false.
//
// # Errors
//
// Invalid configurations return a *ConfigError that wraps ErrInvalidConfig
// or ErrInvalidMask. Reusing a layer name returns ErrDuplicateParameter.
package nn
