package graph

import "github.com/gomlx/exceptions"

// NaryOps is the strategy of an operation over any number of inputs of the
// same value type.
type NaryOps[In Value[In], Out Value[Out]] interface {
	Forward(inputs []In) Out
	// Partial returns one contribution per input, in input order.
	Partial(state *NaryOpsNodeState[In, Out]) []In
}

// NaryOpsNodeState gives a partial access to every input state and the
// output state.
type NaryOpsNodeState[In Value[In], Out Value[Out]] struct {
	Inputs []*BackwardNodeState[In]
	Output *BackwardNodeState[Out]
}

// NaryRecordedOps records an n-ary operation in the forward graph.
type NaryRecordedOps[In Value[In], Out Value[Out]] struct {
	inputs []*ForwardNode[In]
	ops    NaryOps[In, Out]
}

// NewNaryRecordedOps records ops applied to inputs.
func NewNaryRecordedOps[In Value[In], Out Value[Out]](inputs []*ForwardNode[In], ops NaryOps[In, Out]) *NaryRecordedOps[In, Out] {
	return &NaryRecordedOps[In, Out]{inputs: append([]*ForwardNode[In](nil), inputs...), ops: ops}
}

func (r *NaryRecordedOps[In, Out]) ForwardParents() []ForwardParent {
	parents := make([]ForwardParent, len(r.inputs))
	for i, input := range r.inputs {
		parents[i] = input
	}
	return parents
}

func (r *NaryRecordedOps[In, Out]) ToBackward(c *Converter) BackwardRecordedOps[Out] {
	inputs := make([]*BackwardNode[In], len(r.inputs))
	for i, input := range r.inputs {
		inputs[i] = ConvertNode(c, input)
	}
	return &NaryRecordedOpsBackward[In, Out]{inputs: inputs, ops: r.ops}
}

// NaryRecordedOpsBackward is the backward counterpart of NaryRecordedOps.
type NaryRecordedOpsBackward[In Value[In], Out Value[Out]] struct {
	inputs []*BackwardNode[In]
	ops    NaryOps[In, Out]
}

func (r *NaryRecordedOpsBackward[In, Out]) BackwardStep(state *BackwardNodeState[Out]) {
	ns := &NaryOpsNodeState[In, Out]{
		Inputs: make([]*BackwardNodeState[In], len(r.inputs)),
		Output: state,
	}
	for i, input := range r.inputs {
		ns.Inputs[i] = input.state
	}
	partials := r.ops.Partial(ns)
	if len(partials) != len(r.inputs) {
		exceptions.Panicf("n-ary partial returned %d contributions for %d inputs", len(partials), len(r.inputs))
	}
	for i, input := range r.inputs {
		input.state.UpdateGrad(partials[i])
	}
}

func (r *NaryRecordedOpsBackward[In, Out]) BackwardParents() []RecordedOpsParent {
	parents := make([]RecordedOpsParent, len(r.inputs))
	for i, input := range r.inputs {
		parents[i] = input
	}
	return parents
}

// RecordNary computes ops on the input values and records the result as a
// new forward node.
func RecordNary[In Value[In], Out Value[Out]](ctx *Context, inputs []*ForwardNode[In], ops NaryOps[In, Out]) *ForwardNode[Out] {
	values := make([]In, len(inputs))
	for i, input := range inputs {
		values[i] = input.Value()
	}
	return NewNode[Out](ctx, NewNaryRecordedOps(inputs, ops), ops.Forward(values))
}
