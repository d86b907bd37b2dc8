// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/maskconv/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// It covers what a masked convolution layer needs: broadcasting arithmetic,
// a square root, a reduction, shape views and a channel-last 1-D convolution.
//
// Implementations:
//   - backend/cpu: Pure Go with gonum BLAS for the convolution GEMM
//
// Example:
//
//	import (
//	    "github.com/born-ml/maskconv/tensor"
//	    "github.com/born-ml/maskconv/backend/cpu"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	z := x.Add(y)  // Uses backend.Add under the hood
type Backend interface {
	// Element-wise binary operations.
	Add(a, b *RawTensor) *RawTensor // Element-wise addition.
	Mul(a, b *RawTensor) *RawTensor // Element-wise multiplication.
	Div(a, b *RawTensor) *RawTensor // Element-wise division.

	// Math operations (element-wise).
	Sqrt(x *RawTensor) *RawTensor // Square root.

	// Reduction operations.
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor // Sum along dimension.

	// Shape operations.
	Reshape(t *RawTensor, newShape Shape) *RawTensor // Reshape tensor.
	Unsqueeze(x *RawTensor, dim int) *RawTensor      // Add dimension of size 1.
	Squeeze(x *RawTensor, dim int) *RawTensor        // Remove dimension of size 1.

	// Convolutional operations.
	Conv1D(input, filter *RawTensor, stride int, padding Padding) *RawTensor // [N,W,Cin] x [K,Cin,Cout].

	// Metadata.
	Name() string   // Backend name (e.g., "CPU").
	Device() Device // Device type.
}

// Compile-time check that internal Backend implements public Backend.
var _ Backend = tensor.Backend(nil)
