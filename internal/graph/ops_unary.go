package graph

// UnaryOps is the strategy of an operation with one input.
type UnaryOps[In Value[In], Out Value[Out]] interface {
	// Forward computes the output value from the input value.
	Forward(input In) Out
	// Partial returns the contribution to the input gradient.
	Partial(state *UnaryOpsNodeState[In, Out]) In
}

// UnaryOpsNodeState gives a partial access to the input and output states.
// The output state always carries the gradient being propagated.
type UnaryOpsNodeState[In Value[In], Out Value[Out]] struct {
	Input  *BackwardNodeState[In]
	Output *BackwardNodeState[Out]
}

// UnaryRecordedOps records a unary operation in the forward graph.
type UnaryRecordedOps[In Value[In], Out Value[Out]] struct {
	input *ForwardNode[In]
	ops   UnaryOps[In, Out]
}

// NewUnaryRecordedOps records ops applied to input.
func NewUnaryRecordedOps[In Value[In], Out Value[Out]](input *ForwardNode[In], ops UnaryOps[In, Out]) *UnaryRecordedOps[In, Out] {
	return &UnaryRecordedOps[In, Out]{input: input, ops: ops}
}

func (r *UnaryRecordedOps[In, Out]) ForwardParents() []ForwardParent {
	return []ForwardParent{r.input}
}

func (r *UnaryRecordedOps[In, Out]) ToBackward(c *Converter) BackwardRecordedOps[Out] {
	return &UnaryRecordedOpsBackward[In, Out]{
		input: ConvertNode(c, r.input),
		ops:   r.ops,
	}
}

// UnaryRecordedOpsBackward is the backward counterpart of UnaryRecordedOps.
type UnaryRecordedOpsBackward[In Value[In], Out Value[Out]] struct {
	input *BackwardNode[In]
	ops   UnaryOps[In, Out]
}

func (r *UnaryRecordedOpsBackward[In, Out]) BackwardStep(state *BackwardNodeState[Out]) {
	partial := r.ops.Partial(&UnaryOpsNodeState[In, Out]{
		Input:  r.input.state,
		Output: state,
	})
	r.input.state.UpdateGrad(partial)
}

func (r *UnaryRecordedOpsBackward[In, Out]) BackwardParents() []RecordedOpsParent {
	return []RecordedOpsParent{r.input}
}

// RecordUnary computes ops on the input value and records the result as a
// new forward node.
func RecordUnary[In Value[In], Out Value[Out]](ctx *Context, input *ForwardNode[In], ops UnaryOps[In, Out]) *ForwardNode[Out] {
	value := ops.Forward(input.Value())
	return NewNode[Out](ctx, NewUnaryRecordedOps(input, ops), value)
}
