package ops

import "github.com/born-ml/graphgrad/internal/tensor"

// NegOps is element-wise negation: output = -x, grad_x = -grad.
type NegOps struct{}

func (NegOps) Forward(x *tensor.Tensor) *tensor.Tensor { return x.Neg() }

func (NegOps) Partial(s *unaryState) *tensor.Tensor { return s.Output.Grad().Neg() }
