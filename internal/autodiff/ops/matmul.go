package ops

import "github.com/born-ml/graphgrad/internal/tensor"

// MatMulOps is matrix multiplication over the last two dimensions:
// output = a @ b.
//
// Backward pass:
//   - d(A@B)/dA = grad @ B^T
//   - d(A@B)/dB = A^T @ grad
//
// Leading (batch) dimensions are carried through unchanged.
type MatMulOps struct{}

func (MatMulOps) Forward(a, b *tensor.Tensor) *tensor.Tensor { return a.MatMul(b) }

func (MatMulOps) PartialLeft(s *binaryState) *tensor.Tensor {
	return s.Output.Grad().MatMul(lastTwoSwapped(s.Right.Value()))
}

func (MatMulOps) PartialRight(s *binaryState) *tensor.Tensor {
	return lastTwoSwapped(s.Left.Value()).MatMul(s.Output.Grad())
}

func lastTwoSwapped(t *tensor.Tensor) *tensor.Tensor {
	ndim := len(t.Shape())
	return t.SwapDims(ndim-2, ndim-1)
}
