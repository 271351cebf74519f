package graph

// BinaryOps is the strategy of an operation with two inputs.
type BinaryOps[Lhs Value[Lhs], Rhs Value[Rhs], Out Value[Out]] interface {
	Forward(lhs Lhs, rhs Rhs) Out
	// PartialLeft returns the contribution to the left input gradient.
	PartialLeft(state *BinaryOpsNodeState[Lhs, Rhs, Out]) Lhs
	// PartialRight returns the contribution to the right input gradient.
	PartialRight(state *BinaryOpsNodeState[Lhs, Rhs, Out]) Rhs
}

// BinaryOpsNodeState gives the partials access to both input states and the
// output state.
type BinaryOpsNodeState[Lhs Value[Lhs], Rhs Value[Rhs], Out Value[Out]] struct {
	Left   *BackwardNodeState[Lhs]
	Right  *BackwardNodeState[Rhs]
	Output *BackwardNodeState[Out]
}

// BinaryRecordedOps records a binary operation in the forward graph.
// Both sides may be the same node, as in x*x.
type BinaryRecordedOps[Lhs Value[Lhs], Rhs Value[Rhs], Out Value[Out]] struct {
	lhs *ForwardNode[Lhs]
	rhs *ForwardNode[Rhs]
	ops BinaryOps[Lhs, Rhs, Out]
}

// NewBinaryRecordedOps records ops applied to lhs and rhs.
func NewBinaryRecordedOps[Lhs Value[Lhs], Rhs Value[Rhs], Out Value[Out]](
	lhs *ForwardNode[Lhs], rhs *ForwardNode[Rhs], ops BinaryOps[Lhs, Rhs, Out],
) *BinaryRecordedOps[Lhs, Rhs, Out] {
	return &BinaryRecordedOps[Lhs, Rhs, Out]{lhs: lhs, rhs: rhs, ops: ops}
}

func (r *BinaryRecordedOps[Lhs, Rhs, Out]) ForwardParents() []ForwardParent {
	return []ForwardParent{r.lhs, r.rhs}
}

func (r *BinaryRecordedOps[Lhs, Rhs, Out]) ToBackward(c *Converter) BackwardRecordedOps[Out] {
	return &BinaryRecordedOpsBackward[Lhs, Rhs, Out]{
		lhs: ConvertNode(c, r.lhs),
		rhs: ConvertNode(c, r.rhs),
		ops: r.ops,
	}
}

// BinaryRecordedOpsBackward is the backward counterpart of BinaryRecordedOps.
type BinaryRecordedOpsBackward[Lhs Value[Lhs], Rhs Value[Rhs], Out Value[Out]] struct {
	lhs *BackwardNode[Lhs]
	rhs *BackwardNode[Rhs]
	ops BinaryOps[Lhs, Rhs, Out]
}

func (r *BinaryRecordedOpsBackward[Lhs, Rhs, Out]) BackwardStep(state *BackwardNodeState[Out]) {
	ns := &BinaryOpsNodeState[Lhs, Rhs, Out]{
		Left:   r.lhs.state,
		Right:  r.rhs.state,
		Output: state,
	}
	// Both partials are computed before either parent is updated, so a node
	// used on both sides sees its own state unchanged.
	left := r.ops.PartialLeft(ns)
	right := r.ops.PartialRight(ns)
	r.lhs.state.UpdateGrad(left)
	r.rhs.state.UpdateGrad(right)
}

func (r *BinaryRecordedOpsBackward[Lhs, Rhs, Out]) BackwardParents() []RecordedOpsParent {
	return []RecordedOpsParent{r.lhs, r.rhs}
}

// RecordBinary computes ops on the two input values and records the result
// as a new forward node.
func RecordBinary[Lhs Value[Lhs], Rhs Value[Rhs], Out Value[Out]](
	ctx *Context, lhs *ForwardNode[Lhs], rhs *ForwardNode[Rhs], ops BinaryOps[Lhs, Rhs, Out],
) *ForwardNode[Out] {
	value := ops.Forward(lhs.Value(), rhs.Value())
	return NewNode[Out](ctx, NewBinaryRecordedOps(lhs, rhs, ops), value)
}
