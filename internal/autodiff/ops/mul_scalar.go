package ops

import "github.com/born-ml/graphgrad/internal/tensor"

// MulScalarOps multiplies every element by a constant: grad_x = scalar * grad.
type MulScalarOps struct {
	Scalar float64
}

func (o MulScalarOps) Forward(x *tensor.Tensor) *tensor.Tensor { return x.MulScalar(o.Scalar) }

func (o MulScalarOps) Partial(s *unaryState) *tensor.Tensor {
	return s.Output.Grad().MulScalar(o.Scalar)
}
