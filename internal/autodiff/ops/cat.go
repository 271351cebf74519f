package ops

import "github.com/born-ml/graphgrad/internal/tensor"

// CatOps concatenates tensors along Dim.
//
// Backward pass: the gradient is split back along Dim at the input
// boundaries, each input receiving the slice it contributed.
//
//	inputs: [2, 3] and [1, 3] along dim 0
//	grad:   [3, 3]
//	grad_0: rows 0..1, grad_1: row 2
type CatOps struct {
	Dim int
}

func (o CatOps) Forward(inputs []*tensor.Tensor) *tensor.Tensor { return tensor.Cat(inputs, o.Dim) }

func (o CatOps) Partial(s *naryState) []*tensor.Tensor {
	grad := s.Output.Grad()
	grads := make([]*tensor.Tensor, len(s.Inputs))
	offset := 0
	for i, input := range s.Inputs {
		size := input.Value().Shape()[o.Dim]
		grads[i] = grad.Narrow(o.Dim, offset, size)
		offset += size
	}
	return grads
}
