package ops

import "github.com/born-ml/graphgrad/internal/tensor"

// SubOps is element-wise subtraction: output = a - b.
//
// Backward pass:
//   - grad_a = grad
//   - grad_b = -grad
type SubOps struct{}

func (SubOps) Forward(a, b *tensor.Tensor) *tensor.Tensor { return a.Sub(b) }

func (SubOps) PartialLeft(s *binaryState) *tensor.Tensor { return s.Output.Grad() }

func (SubOps) PartialRight(s *binaryState) *tensor.Tensor { return s.Output.Grad().Neg() }
