package ops

import "github.com/born-ml/graphgrad/internal/tensor"

// SumOps reduces all elements to a scalar.
//
// Backward pass: every input element contributed once, so the scalar
// gradient is broadcast back: grad_x = ones(x) * grad.
type SumOps struct{}

func (SumOps) Forward(x *tensor.Tensor) *tensor.Tensor { return x.Sum() }

func (SumOps) Partial(s *unaryState) *tensor.Tensor {
	return s.Input.Value().Ones().MulScalar(s.Output.Grad().Item())
}
