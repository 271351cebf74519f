// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the value type carried by the autodiff graph.
//
// # Overview
//
// A Tensor is a dense, immutable array stored row-major in a byte buffer and
// bound to the Backend that computes its operations. This package provides:
//   - Float32, Float64 and Float16 element types
//   - Element-wise arithmetic, matrix multiplication and reductions
//   - Shape manipulation: transpose, reshape, concatenation, narrowing
//   - Random creation from standard, uniform, normal and Bernoulli distributions
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/graphgrad/backend/cpu"
//	    "github.com/born-ml/graphgrad/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x := tensor.Zeros(tensor.Shape{2, 3}, tensor.Float32, backend)
//	    y := tensor.Ones(tensor.Shape{3, 2}, tensor.Float32, backend)
//	    z := x.MatMul(y)
//	}
//
// # Immutability
//
// Operations never modify their operands; each returns a new Tensor. Clone
// shares the underlying buffer, which is safe because buffers are never
// written after creation.
package tensor
