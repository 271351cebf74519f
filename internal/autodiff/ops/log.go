package ops

import "github.com/born-ml/graphgrad/internal/tensor"

// LogOps is the element-wise natural logarithm.
//
// Backward pass: d(log(x))/dx = 1/x, so grad_x = grad / x.
type LogOps struct{}

func (LogOps) Forward(x *tensor.Tensor) *tensor.Tensor { return x.Log() }

func (LogOps) Partial(s *unaryState) *tensor.Tensor {
	return s.Output.Grad().Div(s.Input.Value())
}
