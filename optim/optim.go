// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/graphgrad/autodiff"
	"github.com/born-ml/graphgrad/internal/optim"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Param is a named trainable tensor.
type Param = optim.Param

// NewParam wraps t as a trainable parameter.
func NewParam(name string, t *autodiff.Tensor) *Param {
	return optim.NewParam(name, t)
}

// SGD (Stochastic Gradient Descent)

// SGD represents the SGD optimizer with optional momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	optimizer := optim.NewSGD(params, optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
func NewSGD(params []*Param, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}

// Adam (Adaptive Moment Estimation)

// Adam represents the Adam optimizer.
type Adam = optim.Adam

// AdamConfig contains configuration for Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer with bias correction.
//
// Example:
//
//	optimizer := optim.NewAdam(params, optim.AdamConfig{
//	    LR:    0.001,
//	    Beta1: 0.9,
//	    Beta2: 0.999,
//	    Eps:   1e-8,
//	})
func NewAdam(params []*Param, config AdamConfig) *Adam {
	return optim.NewAdam(params, config)
}
