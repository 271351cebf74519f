package ops

import "github.com/born-ml/graphgrad/internal/tensor"

// PowfOps raises every element to a constant power.
//
// Backward pass:
//
//	d(x^p)/dx = p * x^(p-1), so grad_x = grad * p * x^(p-1)
type PowfOps struct {
	Exponent float64
}

func (o PowfOps) Forward(x *tensor.Tensor) *tensor.Tensor { return x.Powf(o.Exponent) }

func (o PowfOps) Partial(s *unaryState) *tensor.Tensor {
	local := s.Input.Value().Powf(o.Exponent - 1).MulScalar(o.Exponent)
	return s.Output.Grad().Mul(local)
}
