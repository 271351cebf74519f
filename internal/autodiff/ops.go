package autodiff

import (
	"github.com/pkg/errors"

	"github.com/born-ml/graphgrad/internal/autodiff/ops"
	"github.com/born-ml/graphgrad/internal/graph"
	"github.com/born-ml/graphgrad/internal/tensor"
)

func (t *Tensor) unary(op ops.Unary) *Tensor {
	return &Tensor{ctx: t.ctx, node: graph.RecordUnary(t.ctx, t.node, op)}
}

func (t *Tensor) binary(other *Tensor, op ops.Binary) *Tensor {
	return &Tensor{ctx: t.ctx, node: graph.RecordBinary(t.ctx, t.node, other.node, op)}
}

// Add returns t + other.
func (t *Tensor) Add(other *Tensor) *Tensor { return t.binary(other, ops.AddOps{}) }

// Sub returns t - other.
func (t *Tensor) Sub(other *Tensor) *Tensor { return t.binary(other, ops.SubOps{}) }

// Mul returns the element-wise product.
func (t *Tensor) Mul(other *Tensor) *Tensor { return t.binary(other, ops.MulOps{}) }

// Div returns the element-wise quotient.
func (t *Tensor) Div(other *Tensor) *Tensor { return t.binary(other, ops.DivOps{}) }

// MatMul multiplies the last two dimensions of t and other.
func (t *Tensor) MatMul(other *Tensor) *Tensor { return t.binary(other, ops.MatMulOps{}) }

func (t *Tensor) Neg() *Tensor { return t.unary(ops.NegOps{}) }

func (t *Tensor) AddScalar(s float64) *Tensor { return t.unary(ops.AddScalarOps{Scalar: s}) }

func (t *Tensor) MulScalar(s float64) *Tensor { return t.unary(ops.MulScalarOps{Scalar: s}) }

// Powf raises every element to exponent.
func (t *Tensor) Powf(exponent float64) *Tensor { return t.unary(ops.PowfOps{Exponent: exponent}) }

func (t *Tensor) Exp() *Tensor { return t.unary(ops.ExpOps{}) }

func (t *Tensor) Log() *Tensor { return t.unary(ops.LogOps{}) }

// Transpose swaps the last two dimensions.
func (t *Tensor) Transpose() *Tensor {
	return t.unary(ops.NewTransposeOps(len(t.Shape())))
}

// SwapDims exchanges dim1 and dim2.
func (t *Tensor) SwapDims(dim1, dim2 int) *Tensor {
	return t.unary(ops.NewSwapDimsOps(len(t.Shape()), dim1, dim2))
}

// Reshape returns a tensor with the same elements and a new shape.
func (t *Tensor) Reshape(shape tensor.Shape) *Tensor {
	return t.unary(ops.ReshapeOps{Shape: shape.Clone()})
}

// Sum reduces all elements to a scalar.
func (t *Tensor) Sum() *Tensor { return t.unary(ops.SumOps{}) }

// Mean reduces all elements to their mean.
func (t *Tensor) Mean() *Tensor { return t.unary(ops.MeanOps{}) }

// Cat concatenates tensors along dim. Every tensor must have the same rank
// and dtype, and the same size on every other dimension.
// The result is recorded in the first tensor's context.
func Cat(tensors []*Tensor, dim int) (*Tensor, error) {
	if len(tensors) == 0 {
		return nil, errors.New("cat: no tensors")
	}
	first := tensors[0].Value()
	rank := len(first.Shape())
	if dim < 0 || dim >= rank {
		return nil, errors.Errorf("cat: dim %d out of range for rank %d", dim, rank)
	}
	nodes := make([]*Node, len(tensors))
	for i, t := range tensors {
		value := t.Value()
		if value.DType() != first.DType() {
			return nil, errors.Errorf("cat: tensor %d has dtype %s, want %s", i, value.DType(), first.DType())
		}
		shape := value.Shape()
		if len(shape) != rank {
			return nil, errors.Errorf("cat: tensor %d has shape %v, want rank %d", i, shape, rank)
		}
		for d := range shape {
			if d != dim && shape[d] != first.Shape()[d] {
				return nil, errors.Errorf("cat: tensor %d has shape %v, incompatible with %v along dim %d", i, shape, first.Shape(), dim)
			}
		}
		nodes[i] = t.node
	}
	ctx := tensors[0].ctx
	return &Tensor{ctx: ctx, node: graph.RecordNary(ctx, nodes, ops.Nary(ops.CatOps{Dim: dim}))}, nil
}
