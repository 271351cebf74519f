// Package optim implements gradient-based parameter updates.
//
// This package provides:
//   - Param: a named trainable tensor
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Optimizers read gradients from the store returned by a backward pass.
// Tensors are immutable, so a step replaces each updated parameter with a
// fresh leaf holding the new value.
//
// Example usage:
//
//	w := optim.NewParam("w", weights)
//	optimizer := optim.NewAdam([]*optim.Param{w}, optim.AdamConfig{LR: 0.001})
//
//	for range epochs {
//	    loss := computeLoss(w.Tensor(), data)
//	    optimizer.Step(loss.Backward())
//	}
package optim

import (
	"github.com/born-ml/graphgrad/internal/autodiff"
	"github.com/born-ml/graphgrad/internal/graph"
	"github.com/born-ml/graphgrad/internal/tensor"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies gradient updates to all parameters.
	//
	// Gradients of updated parameters are removed from grads. Parameters
	// without a gradient in grads are left unchanged.
	Step(grads *graph.Gradients)

	// GetLR returns the current learning rate.
	GetLR() float64
}

var (
	_ Optimizer = (*SGD)(nil)
	_ Optimizer = (*Adam)(nil)
)

// Param is a named trainable tensor.
type Param struct {
	name  string
	value *autodiff.Tensor
}

// NewParam wraps t as a trainable parameter.
func NewParam(name string, t *autodiff.Tensor) *Param {
	return &Param{name: name, value: t}
}

func (p *Param) Name() string { return p.name }

// Tensor returns the current leaf. It changes after every update.
func (p *Param) Tensor() *autodiff.Tensor { return p.value }

func (p *Param) set(value *tensor.Tensor) {
	p.value = autodiff.NewTensor(p.value.Context(), value)
}

// takeGradient removes and returns the gradient of p from grads.
//
// Returns false if p did not take part in the backward pass.
func takeGradient(p *Param, grads *graph.Gradients) (*tensor.Tensor, bool) {
	if p == nil || grads == nil {
		return nil, false
	}
	grad, found := grads.Remove(p.value.ID())
	if !found {
		return nil, false
	}
	typed, ok := grad.(*tensor.Tensor)
	return typed, ok
}
