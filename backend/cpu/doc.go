// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Float32, Float64 and Float16 support (Float16 computed in float32)
//   - Batched matrix multiplication, float64 through gonum
//   - Byte-level transpose, concatenation and narrowing for every dtype
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
//	    y := tensor.Ones(tensor.Shape{2, 3}, tensor.Float32, backend)
//	    z := x.Add(y)
//	}
//
// # Errors
//
// Shape or dtype mismatches are programming errors and panic.
package cpu
