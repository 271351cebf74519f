package ops

import "github.com/born-ml/graphgrad/internal/tensor"

// AddOps is element-wise addition: output = a + b.
//
// Backward pass:
//   - grad_a = grad
//   - grad_b = grad
type AddOps struct{}

func (AddOps) Forward(a, b *tensor.Tensor) *tensor.Tensor { return a.Add(b) }

func (AddOps) PartialLeft(s *binaryState) *tensor.Tensor { return s.Output.Grad() }

func (AddOps) PartialRight(s *binaryState) *tensor.Tensor { return s.Output.Grad() }
