package ops

import "github.com/born-ml/graphgrad/internal/tensor"

// MulOps is element-wise multiplication: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = grad * b
//   - d(a*b)/db = a, so grad_b = grad * a
type MulOps struct{}

func (MulOps) Forward(a, b *tensor.Tensor) *tensor.Tensor { return a.Mul(b) }

func (MulOps) PartialLeft(s *binaryState) *tensor.Tensor {
	return s.Output.Grad().Mul(s.Right.Value())
}

func (MulOps) PartialRight(s *binaryState) *tensor.Tensor {
	return s.Output.Grad().Mul(s.Left.Value())
}
