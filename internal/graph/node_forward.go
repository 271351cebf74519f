package graph

import "github.com/gomlx/exceptions"

// ForwardNode is a node of the forward graph: a computed value, its identity,
// its order and the operation that produced it.
//
// Order is 0 for leaves and max(order of parents)+1 otherwise, so it strictly
// increases along every edge.
type ForwardNode[V Value[V]] struct {
	id    NodeID
	order int
	state *ForwardNodeState[V]
	ops   ForwardRecordedOps[V]
}

// NewLeaf records value as a leaf: order 0, no parents.
func NewLeaf[V Value[V]](ctx *Context, value V) *ForwardNode[V] {
	return NewNode[V](ctx, InitRecordedOps[V]{}, value)
}

// NewNode records value as the output of ops. The order is derived from the
// parents returned by ops.ForwardParents.
func NewNode[V Value[V]](ctx *Context, ops ForwardRecordedOps[V], value V) *ForwardNode[V] {
	if ctx == nil {
		exceptions.Panicf("graph.NewNode: nil context")
	}
	order := 0
	parents := ops.ForwardParents()
	for _, parent := range parents {
		if parent == nil {
			exceptions.Panicf("graph.NewNode: nil parent")
		}
		order = max(order, parent.Order()+1)
	}
	if len(parents) > 0 && order == 0 {
		exceptions.Panicf("graph.NewNode: node with %d parents would have order 0", len(parents))
	}
	return &ForwardNode[V]{
		id:    ctx.NextID(),
		order: order,
		state: NewForwardNodeState(value),
		ops:   ops,
	}
}

func (n *ForwardNode[V]) ID() NodeID { return n.id }

func (n *ForwardNode[V]) Order() int { return n.order }

// Value returns a clone of the node value.
func (n *ForwardNode[V]) Value() V { return n.state.Value() }

// Parents returns the recorded parents.
func (n *ForwardNode[V]) Parents() []ForwardParent { return n.ops.ForwardParents() }

// IsLeaf reports whether the node has no parents.
func (n *ForwardNode[V]) IsLeaf() bool { return n.order == 0 }
