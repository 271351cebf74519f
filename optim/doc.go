// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-based optimizers.
//
// # Overview
//
// This package contains:
//   - Param: a named trainable tensor
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/graphgrad/autodiff"
//	    "github.com/born-ml/graphgrad/backend/cpu"
//	    "github.com/born-ml/graphgrad/optim"
//	    "github.com/born-ml/graphgrad/tensor"
//	)
//
//	func main() {
//	    ctx := autodiff.NewContext()
//	    x, _ := autodiff.FromSlice(ctx, []float32{3}, tensor.Shape{1}, cpu.New())
//	    param := optim.NewParam("x", x)
//
//	    optimizer := optim.NewAdam([]*optim.Param{param}, optim.AdamConfig{LR: 0.1})
//
//	    for range 100 {
//	        x := param.Tensor()
//	        optimizer.Step(x.Mul(x).Sum().Backward())
//	    }
//	}
//
// Each step consumes the parameter gradients from the store and replaces
// every updated parameter with a new leaf.
package optim
