// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/maskconv/internal/backend/cpu"
	"github.com/born-ml/maskconv/internal/parallel"
	"github.com/born-ml/maskconv/tensor"
)

// Backend represents the CPU backend implementation.
//
// CPU backend provides pure Go implementations of the tensor operations,
// with gonum BLAS for the convolution matrix products.
type Backend = internalcpu.CPUBackend

// ParallelConfig controls how Conv1D spreads batch elements over goroutines.
type ParallelConfig = parallel.Config

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/born-ml/maskconv/backend/cpu"
//	    "github.com/born-ml/maskconv/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Zeros[float32](tensor.Shape{2, 10, 4}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}

// NewWithConfig creates a CPU backend with explicit parallelism settings.
//
// Example:
//
//	backend := cpu.NewWithConfig(cpu.ParallelConfig{Enabled: false}) // single goroutine
func NewWithConfig(cfg ParallelConfig) *Backend {
	return internalcpu.NewWithConfig(cfg)
}

// DefaultParallelConfig returns the settings New uses.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}
