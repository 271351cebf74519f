package ops

import "github.com/born-ml/graphgrad/internal/tensor"

// ExpOps is the element-wise exponential.
//
// Backward pass: d(exp(x))/dx = exp(x), so grad_x = grad * output.
type ExpOps struct{}

func (ExpOps) Forward(x *tensor.Tensor) *tensor.Tensor { return x.Exp() }

func (ExpOps) Partial(s *unaryState) *tensor.Tensor {
	// The output value is exp(x), no need to recompute it.
	return s.Output.Grad().Mul(s.Output.Value())
}
