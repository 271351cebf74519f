package graph

// InitRecordedOps is the record of a leaf: it has no parents and its backward
// step does nothing.
type InitRecordedOps[V Value[V]] struct{}

func (InitRecordedOps[V]) ForwardParents() []ForwardParent { return nil }

func (o InitRecordedOps[V]) ToBackward(*Converter) BackwardRecordedOps[V] { return o }

func (InitRecordedOps[V]) BackwardStep(*BackwardNodeState[V]) {}

func (InitRecordedOps[V]) BackwardParents() []RecordedOpsParent { return nil }
