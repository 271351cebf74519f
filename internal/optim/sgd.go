package optim

import (
	"github.com/pkg/errors"

	"github.com/born-ml/graphgrad/internal/graph"
	"github.com/born-ml/graphgrad/internal/tensor"
)

// SGD implements Stochastic Gradient Descent optimizer with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Example:
//
//	optimizer := optim.NewSGD(params, optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
//
//	for range epochs {
//	    optimizer.Step(loss(params).Backward())
//	}
type SGD struct {
	params     []*Param
	lr         float64
	momentum   float64
	velocities map[*Param]*tensor.Tensor
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
func NewSGD(params []*Param, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*Param]*tensor.Tensor),
	}
}

// Step performs a single optimization step.
//
// Parameters with no gradient (not in computational graph) are skipped.
func (s *SGD) Step(grads *graph.Gradients) {
	for _, param := range s.params {
		grad, ok := takeGradient(param, grads)
		if !ok {
			continue
		}

		update := grad
		if s.momentum != 0 {
			// velocity = momentum * velocity + grad
			if velocity, exists := s.velocities[param]; exists {
				update = velocity.MulScalar(s.momentum).Add(grad)
			}
			s.velocities[param] = update
		}

		// param -= lr * update
		param.set(param.Tensor().Value().Sub(update.MulScalar(s.lr)))
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

// StateDict returns the velocity buffers keyed "velocity.<param name>".
// Without momentum, returns an empty map.
func (s *SGD) StateDict() map[string]*tensor.Tensor {
	stateDict := make(map[string]*tensor.Tensor)
	for _, param := range s.params {
		if velocity, exists := s.velocities[param]; exists {
			stateDict["velocity."+param.Name()] = velocity
		}
	}
	return stateDict
}

// LoadStateDict restores velocity buffers saved by StateDict.
//
// Returns an error if a velocity shape doesn't match its parameter.
func (s *SGD) LoadStateDict(stateDict map[string]*tensor.Tensor) error {
	velocities := make(map[*Param]*tensor.Tensor)
	for _, param := range s.params {
		velocity, exists := stateDict["velocity."+param.Name()]
		if !exists {
			// Initialized on first step.
			continue
		}
		if want := param.Tensor().Shape(); !velocity.Shape().Equal(want) {
			return errors.Errorf("velocity shape mismatch for parameter %q: expected %v, got %v",
				param.Name(), want, velocity.Shape())
		}
		velocities[param] = velocity
	}
	s.velocities = velocities
	return nil
}
