package optim

import (
	"math"

	"github.com/born-ml/graphgrad/internal/graph"
	"github.com/born-ml/graphgrad/internal/tensor"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)   // Parameter update
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam struct {
	params []*Param
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64
	t      int // Timestep for bias correction
	m      map[*Param]*tensor.Tensor
	v      map[*Param]*tensor.Tensor
}

// AdamConfig holds configuration for Adam optimizer.
// Zero fields take the defaults LR 0.001, Beta1 0.9, Beta2 0.999, Eps 1e-8.
type AdamConfig struct {
	LR    float64
	Beta1 float64
	Beta2 float64
	Eps   float64
}

// NewAdam creates a new Adam optimizer.
func NewAdam(params []*Param, config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Beta1 == 0 {
		config.Beta1 = 0.9
	}
	if config.Beta2 == 0 {
		config.Beta2 = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	return &Adam{
		params: params,
		lr:     config.LR,
		beta1:  config.Beta1,
		beta2:  config.Beta2,
		eps:    config.Eps,
		m:      make(map[*Param]*tensor.Tensor),
		v:      make(map[*Param]*tensor.Tensor),
	}
}

// Step performs a single optimization step using Adam algorithm.
//
// Parameters with no gradient are skipped, but the timestep advances once
// per call.
func (a *Adam) Step(grads *graph.Gradients) {
	a.t++

	biasCorrection1 := 1 - math.Pow(a.beta1, float64(a.t))
	biasCorrection2 := 1 - math.Pow(a.beta2, float64(a.t))

	for _, param := range a.params {
		grad, ok := takeGradient(param, grads)
		if !ok {
			continue
		}

		m, exists := a.m[param]
		if !exists {
			m = grad.Zeros()
		}
		v, exists := a.v[param]
		if !exists {
			v = grad.Zeros()
		}

		m = m.MulScalar(a.beta1).Add(grad.MulScalar(1 - a.beta1))
		v = v.MulScalar(a.beta2).Add(grad.Mul(grad).MulScalar(1 - a.beta2))
		a.m[param], a.v[param] = m, v

		mHat := m.MulScalar(1 / biasCorrection1)
		vHat := v.MulScalar(1 / biasCorrection2)
		step := mHat.Div(vHat.Powf(0.5).AddScalar(a.eps)).MulScalar(a.lr)
		param.set(param.Tensor().Value().Sub(step))
	}
}

// GetLR returns the current learning rate.
func (a *Adam) GetLR() float64 {
	return a.lr
}

// SetLR updates the learning rate.
func (a *Adam) SetLR(lr float64) {
	a.lr = lr
}

// GetTimestep returns the number of steps taken.
func (a *Adam) GetTimestep() int {
	return a.t
}
