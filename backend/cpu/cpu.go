// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/graphgrad/internal/backend/cpu"
	"github.com/born-ml/graphgrad/tensor"
)

// Backend computes tensor kernels on the CPU.
//
// Float32 and Float64 run natively. Float16 inputs are widened to float32,
// computed, and narrowed back into a fresh Float16 result, so half precision
// gradients round once per kernel.
type Backend = internalcpu.CPUBackend

var _ tensor.Backend = (*Backend)(nil)

// New returns a CPU backend. It holds no state and may be shared by any
// number of graphs and goroutines.
//
// Example, half precision values through the widening path:
//
//	backend := cpu.New()
//	x, _ := tensor.FromFloat64([]float64{0.5, 1.5}, tensor.Shape{2}, tensor.Float16, backend)
//	y := x.MulScalar(3) // computed as float32, stored as [1.5 4.5] float16
func New() *Backend {
	return internalcpu.New()
}
