package graph

import (
	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"

	"github.com/born-ml/graphgrad/internal/parallel"
)

// BackwardNode is a node of the backward graph. It carries the same NodeID
// and order as the forward node it was converted from.
type BackwardNode[V Value[V]] struct {
	id    NodeID
	order int
	state *BackwardNodeState[V]
	ops   BackwardRecordedOps[V]
}

func (n *BackwardNode[V]) ID() NodeID { return n.id }

func (n *BackwardNode[V]) Order() int { return n.order }

// State returns the node's value and gradient slot.
func (n *BackwardNode[V]) State() *BackwardNodeState[V] { return n.state }

// BackwardStep propagates the node's gradient to its parents.
// Panics if no gradient reached the node before it was stepped.
func (n *BackwardNode[V]) BackwardStep() {
	if !n.state.HasGrad() {
		exceptions.Panicf("backward step on node %s (order %d) before any gradient reached it", n.id, n.order)
	}
	n.ops.BackwardStep(n.state)
}

func (n *BackwardNode[V]) BackwardParents() []RecordedOpsParent {
	return n.ops.BackwardParents()
}

// RegisterGrad stores the node's gradient, if any, in grads.
func (n *BackwardNode[V]) RegisterGrad(grads *Gradients) {
	if grad, ok := n.state.GradOrNone(); ok {
		grads.Register(n.id, grad)
	}
}

// Backward runs the backward pass with n as root and returns the gradients
// of n and of every ancestor.
//
// The root is seeded with ones of its value's shape and stepped first. Its
// ancestors are then stepped bucket by bucket, from order(n)-1 down to 1, so
// every node has received all of its contributions before it is stepped.
// Leaves only accumulate.
func (n *BackwardNode[V]) Backward(cfg Config) *Gradients {
	n.state.UpdateGrad(n.state.Value().Ones())
	n.BackwardStep()

	buckets := make([][]RecordedOpsParent, n.order+1)
	var discovered []RecordedOpsParent
	NewBreadthFirstSearch(n).Traverse(func(node RecordedOpsParent) {
		discovered = append(discovered, node)
		order := node.Order()
		if order >= n.order {
			exceptions.Panicf("backward: ancestor %s has order %d, root %s has order %d", node.ID(), order, n.id, n.order)
		}
		if order == 0 {
			if parents := node.BackwardParents(); len(parents) > 0 {
				exceptions.Panicf("backward: node %s has order 0 but %d parents", node.ID(), len(parents))
			}
			return
		}
		buckets[order] = append(buckets[order], node)
	})

	numBuckets := 0
	for order := n.order - 1; order >= 1; order-- {
		bucket := buckets[order]
		if len(bucket) == 0 {
			continue
		}
		numBuckets++
		klog.V(2).Infof("backward: bucket %d with %d nodes on %d goroutines", order, len(bucket),
			parallel.Workers(len(bucket), cfg.Parallel))
		parallel.For(len(bucket), func(i int) {
			bucket[i].BackwardStep()
		}, cfg.Parallel)
	}

	grads := NewGradients()
	n.RegisterGrad(grads)
	for _, node := range discovered {
		node.RegisterGrad(grads)
	}
	klog.V(1).Infof("backward: root %s order %d, %d ancestors, %d buckets, %d gradients",
		n.id, n.order, len(discovered), numBuckets, grads.Len())
	return grads
}

// Backward converts the graph ending at root and runs the backward pass
// sequentially.
func Backward[V Value[V]](root *ForwardNode[V]) *Gradients {
	return BackwardWithConfig(root, DefaultConfig())
}

// BackwardWithConfig converts the graph ending at root and runs the backward
// pass with cfg. Each call uses a fresh converter, so repeated passes over the
// same forward graph return independent stores.
func BackwardWithConfig[V Value[V]](root *ForwardNode[V], cfg Config) *Gradients {
	c := NewConverter()
	backward := ConvertNode(c, root)
	klog.V(3).Infof("converter: %d nodes, %d memo hits", c.Len(), c.Hits())
	return backward.Backward(cfg)
}
