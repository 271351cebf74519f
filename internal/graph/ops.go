package graph

// RecordedOpsParent is the type-erased view of a backward node used by the
// traversal and the backward pass. It lets nodes carrying different value
// types share one graph.
type RecordedOpsParent interface {
	ID() NodeID
	Order() int
	// BackwardStep propagates the node's accumulated gradient to its parents.
	BackwardStep()
	// BackwardParents returns the parents for discovery only.
	BackwardParents() []RecordedOpsParent
	// RegisterGrad stores the node's gradient in grads, if it has one.
	RegisterGrad(grads *Gradients)
}

// ForwardParent is the type-erased view of a forward node.
type ForwardParent interface {
	ID() NodeID
	Order() int
}

// ForwardRecordedOps is the operation record held by a forward node.
type ForwardRecordedOps[V Value[V]] interface {
	// ForwardParents returns the recorded parents, used for order assignment.
	ForwardParents() []ForwardParent
	// ToBackward builds the backward record. Every parent must go through c
	// so that shared parents resolve to a single backward node.
	ToBackward(c *Converter) BackwardRecordedOps[V]
}

// BackwardRecordedOps is the operation record held by a backward node.
type BackwardRecordedOps[V Value[V]] interface {
	// BackwardStep computes each parent's contribution from state and
	// accumulates it through the parent's BackwardNodeState.UpdateGrad.
	BackwardStep(state *BackwardNodeState[V])
	BackwardParents() []RecordedOpsParent
}
