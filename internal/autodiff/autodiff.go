// Package autodiff provides tensors that record the operations applied to
// them and compute gradients on demand.
//
// Architecture:
//   - Tensor: a value plus the forward graph node that produced it
//   - graph.Context: allocates the identity of every recorded node
//   - ops: each operation's forward replay and local gradient rules
//   - Backward: converts the recorded graph and runs the reverse pass
//
// Usage:
//
//	ctx := graph.NewContext()
//	b := cpu.New()
//	x := autodiff.FromSlice(ctx, []float32{2.0}, tensor.Shape{1}, b)
//	y := x.Mul(x) // y = x²
//
//	grads := y.Backward()
//	gx, _ := x.Grad(grads) // dy/dx = 2x = 4.0
package autodiff

import (
	"github.com/pkg/errors"

	"github.com/born-ml/graphgrad/internal/element"
	"github.com/born-ml/graphgrad/internal/graph"
	"github.com/born-ml/graphgrad/internal/tensor"
)

// Node is a forward graph node carrying a tensor.
type Node = graph.ForwardNode[*tensor.Tensor]

// Tensor is a tensor tracked by the autodiff graph.
//
// Tensors are immutable: every operation records a new node and returns a
// new Tensor. The result of an operation on tensors from different contexts
// is recorded in the receiver's context.
type Tensor struct {
	ctx  *graph.Context
	node *Node
}

// NewTensor records value as a leaf of ctx.
func NewTensor(ctx *graph.Context, value *tensor.Tensor) *Tensor {
	return &Tensor{ctx: ctx, node: graph.NewLeaf(ctx, value)}
}

// FromSlice records a leaf built from data.
func FromSlice[E element.Element](ctx *graph.Context, data []E, shape tensor.Shape, b tensor.Backend) (*Tensor, error) {
	value, err := tensor.FromSlice(data, shape, b)
	if err != nil {
		return nil, errors.Wrap(err, "autodiff: creating leaf")
	}
	return NewTensor(ctx, value), nil
}

// FromFloat64 records a leaf of the given dtype built from float64 data.
func FromFloat64(ctx *graph.Context, data []float64, shape tensor.Shape, dtype tensor.DataType, b tensor.Backend) (*Tensor, error) {
	value, err := tensor.FromFloat64(data, shape, dtype, b)
	if err != nil {
		return nil, errors.Wrapf(err, "autodiff: creating %s leaf", dtype)
	}
	return NewTensor(ctx, value), nil
}

// ZerosLike records a fresh leaf of zeros shaped like t.
// The new leaf is not connected to t.
func ZerosLike(t *Tensor) *Tensor {
	return NewTensor(t.ctx, t.Value().Zeros())
}

// OnesLike records a fresh leaf of ones shaped like t.
func OnesLike(t *Tensor) *Tensor {
	return NewTensor(t.ctx, t.Value().Ones())
}

// Value returns the tensor value.
func (t *Tensor) Value() *tensor.Tensor { return t.node.Value() }

// Node returns the forward node that produced t.
func (t *Tensor) Node() *Node { return t.node }

// ID returns the identity gradients are stored under.
func (t *Tensor) ID() graph.NodeID { return t.node.ID() }

func (t *Tensor) Context() *graph.Context { return t.ctx }

// Order returns the node's topological order: 0 for leaves.
func (t *Tensor) Order() int { return t.node.Order() }

// IsLeaf reports whether t was created directly rather than by an operation.
func (t *Tensor) IsLeaf() bool { return t.node.IsLeaf() }

func (t *Tensor) Shape() tensor.Shape { return t.Value().Shape() }

func (t *Tensor) DType() tensor.DataType { return t.Value().DType() }

// ToFloat64 returns the elements as float64.
func (t *Tensor) ToFloat64() []float64 { return t.Value().ToFloat64() }

// Item returns the only element of a single-element tensor.
func (t *Tensor) Item() float64 { return t.Value().Item() }

func (t *Tensor) String() string { return t.Value().String() }
