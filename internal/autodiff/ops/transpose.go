package ops

import "github.com/born-ml/graphgrad/internal/tensor"

// PermuteOps reorders dimensions: output = transpose(input, axes).
// Transpose and dimension swaps are both permutations.
//
// Backward pass:
//
//	grad_input = transpose(grad, inverse(axes))
type PermuteOps struct {
	Axes []int
}

// NewTransposeOps swaps the last two of ndim dimensions.
func NewTransposeOps(ndim int) PermuteOps {
	return PermuteOps{Axes: tensor.SwapAxes(ndim, ndim-2, ndim-1)}
}

// NewSwapDimsOps swaps dim1 and dim2 of ndim dimensions.
func NewSwapDimsOps(ndim, dim1, dim2 int) PermuteOps {
	return PermuteOps{Axes: tensor.SwapAxes(ndim, dim1, dim2)}
}

func (o PermuteOps) Forward(x *tensor.Tensor) *tensor.Tensor { return x.Transpose(o.Axes...) }

func (o PermuteOps) Partial(s *unaryState) *tensor.Tensor {
	return s.Output.Grad().Transpose(tensor.InverseAxes(o.Axes)...)
}
