package ops

import "github.com/born-ml/graphgrad/internal/tensor"

// DivOps is element-wise division: output = a / b.
//
// Backward pass:
//   - d(a/b)/da = 1/b, so grad_a = grad / b
//   - d(a/b)/db = -a/b², so grad_b = -grad * a / b²
type DivOps struct{}

func (DivOps) Forward(a, b *tensor.Tensor) *tensor.Tensor { return a.Div(b) }

func (DivOps) PartialLeft(s *binaryState) *tensor.Tensor {
	return s.Output.Grad().Div(s.Right.Value())
}

func (DivOps) PartialRight(s *binaryState) *tensor.Tensor {
	a, b := s.Left.Value(), s.Right.Value()
	return s.Output.Grad().Mul(a).Div(b.Mul(b)).Neg()
}
