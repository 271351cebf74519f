package ops

import "github.com/born-ml/graphgrad/internal/tensor"

// MeanOps reduces all elements to their mean.
//
// Backward pass: grad_x = ones(x) * grad / n.
type MeanOps struct{}

func (MeanOps) Forward(x *tensor.Tensor) *tensor.Tensor {
	return x.Sum().MulScalar(1 / float64(x.NumElements()))
}

func (MeanOps) Partial(s *unaryState) *tensor.Tensor {
	input := s.Input.Value()
	return input.Ones().MulScalar(s.Output.Grad().Item() / float64(input.NumElements()))
}
