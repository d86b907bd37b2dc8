// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Im2col plus gonum BLAS GEMM for 1-D convolutions
//   - Float32 and Float64 support
//   - Batch elements convolved in parallel
//   - NumPy-compatible broadcasting
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/maskconv/backend/cpu"
//	    "github.com/born-ml/maskconv/nn"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    b := nn.NewBuilder(backend, nn.BuilderConfig{})
//	    out, err := b.MaskedConv1D("conv0", nn.Conv1DConfig{
//	        InputDim: 4, OutputDim: 8, FilterSize: 3,
//	        Mask: nn.MaskSpec{Kind: nn.MaskA},
//	    }, input)
//	}
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each tensor operation
// is isolated and does not share mutable state.
package cpu
