// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/graphgrad/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - backend/cpu: Pure Go, with gonum for float64 matrix products
//
// Example:
//
//	import (
//	    "github.com/born-ml/graphgrad/tensor"
//	    "github.com/born-ml/graphgrad/backend/cpu"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros(tensor.Shape{2, 3}, tensor.Float32, backend)
type Backend = tensor.Backend
