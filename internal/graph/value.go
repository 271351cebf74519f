package graph

// Value is the capability set the engine needs from the values carried at
// each node: zero and one values of the same shape, addition for gradient
// accumulation, and cloning for values read by several contributions.
//
// Implementations must not mutate the receiver or the argument.
type Value[V any] interface {
	Zeros() V
	Ones() V
	Add(other V) V
	Clone() V
}
