package ops

import "github.com/born-ml/graphgrad/internal/tensor"

// AddScalarOps adds a constant to every element. The gradient passes through.
type AddScalarOps struct {
	Scalar float64
}

func (o AddScalarOps) Forward(x *tensor.Tensor) *tensor.Tensor { return x.AddScalar(o.Scalar) }

func (AddScalarOps) Partial(s *unaryState) *tensor.Tensor { return s.Output.Grad() }
