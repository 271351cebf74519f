// Package ops defines the differentiable tensor operations.
//
// Each operation is a strategy plugged into the graph engine: it replays the
// forward value from its inputs and computes the local gradient
// contributions from the gradient of its output.
//
// Supported operations:
//   - AddOps, SubOps, MulOps, DivOps: element-wise binary arithmetic
//   - NegOps, AddScalarOps, MulScalarOps, PowfOps, ExpOps, LogOps: element-wise unary
//   - MatMulOps: matrix multiplication (d(A@B)/dA = grad@B^T, d(A@B)/dB = A^T@grad)
//   - PermuteOps: transpose and dimension swaps
//   - ReshapeOps, SumOps, MeanOps: shape and reductions
//   - CatOps: concatenation of any number of tensors
package ops

import (
	"github.com/born-ml/graphgrad/internal/graph"
	"github.com/born-ml/graphgrad/internal/tensor"
)

type (
	unaryState  = graph.UnaryOpsNodeState[*tensor.Tensor, *tensor.Tensor]
	binaryState = graph.BinaryOpsNodeState[*tensor.Tensor, *tensor.Tensor, *tensor.Tensor]
	naryState   = graph.NaryOpsNodeState[*tensor.Tensor, *tensor.Tensor]
)

// Unary is an operation on one tensor.
type Unary = graph.UnaryOps[*tensor.Tensor, *tensor.Tensor]

// Binary is an operation on two tensors.
type Binary = graph.BinaryOps[*tensor.Tensor, *tensor.Tensor, *tensor.Tensor]

// Nary is an operation on any number of tensors.
type Nary = graph.NaryOps[*tensor.Tensor, *tensor.Tensor]

var (
	_ Binary = AddOps{}
	_ Binary = SubOps{}
	_ Binary = MulOps{}
	_ Binary = DivOps{}
	_ Binary = MatMulOps{}
	_ Unary  = NegOps{}
	_ Unary  = AddScalarOps{}
	_ Unary  = MulScalarOps{}
	_ Unary  = PowfOps{}
	_ Unary  = ExpOps{}
	_ Unary  = LogOps{}
	_ Unary  = PermuteOps{}
	_ Unary  = ReshapeOps{}
	_ Unary  = SumOps{}
	_ Unary  = MeanOps{}
	_ Nary   = CatOps{}
)
