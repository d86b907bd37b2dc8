// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe tensor operations for maskconv.
//
// # Overview
//
// Tensors are the data structure every layer works on. This package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - NumPy-style broadcasting
//   - Zero-copy views for Reshape, Unsqueeze and Squeeze
//   - A channel-last 1-D convolution with SAME and VALID padding
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/maskconv/tensor"
//	    "github.com/born-ml/maskconv/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x := tensor.Zeros[float32](tensor.Shape{2, 10, 4}, backend)
//	    f := tensor.Ones[float32](tensor.Shape{3, 4, 8}, backend)
//
//	    y := x.Conv1D(f, 1, tensor.PaddingSame) // [2, 10, 8]
//	    z := y.Unsqueeze(2)                     // [2, 10, 1, 8]
//	}
//
// # Errors
//
// Shape mismatches inside operations panic with a message naming the
// operation. Constructors that take user data, such as FromSlice, return
// an error instead.
package tensor
