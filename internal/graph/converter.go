package graph

import (
	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"
)

// Converter turns a forward graph into a backward graph.
//
// It memoizes converted nodes by NodeID, so a node reachable through several
// paths is converted once and every child refers to the same backward node.
// A Converter belongs to a single backward pass.
type Converter struct {
	nodes map[NodeID]any
	hits  int
}

// NewConverter returns an empty converter.
func NewConverter() *Converter {
	return &Converter{nodes: make(map[NodeID]any)}
}

// ConvertNode returns the backward node for node, converting its parents
// first when it has not been seen yet.
func ConvertNode[V Value[V]](c *Converter, node *ForwardNode[V]) *BackwardNode[V] {
	if existing, found := c.nodes[node.id]; found {
		backward, ok := existing.(*BackwardNode[V])
		if !ok {
			exceptions.Panicf("converter: node %s was memoized as %T, requested as %T", node.id, existing, backward)
		}
		c.hits++
		klog.V(3).Infof("converter: hit %s", node.id)
		return backward
	}
	klog.V(3).Infof("converter: miss %s (order %d)", node.id, node.order)
	backward := &BackwardNode[V]{
		id:    node.id,
		order: node.order,
		state: NewBackwardNodeState(node.state.value),
		ops:   node.ops.ToBackward(c),
	}
	c.nodes[node.id] = backward
	return backward
}

// Len returns the number of converted nodes.
func (c *Converter) Len() int { return len(c.nodes) }

// Hits returns how many conversions were served from the memo table.
func (c *Converter) Hits() int { return c.hits }
