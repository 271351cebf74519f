// Package graph implements the dual-graph reverse-mode autodiff engine.
//
// Architecture:
//   - Forward graph: a ForwardNode is recorded eagerly for every executed
//     operation. It holds the computed value, an identity allocated by a
//     Context, a topological order and the operation record with its parents.
//   - Conversion: a Converter rebuilds the forward graph as a graph of
//     BackwardNodes, memoized by node identity so shared parents stay shared.
//   - Backward pass: the root is seeded with ones and stepped, its ancestors
//     are discovered breadth-first and bucketed by order, and the buckets are
//     stepped from the highest order down to 1. Leaves (order 0) are never
//     stepped.
//   - Gradients: every discovered node registers its accumulated gradient by
//     identity in a Gradients store.
//
// Operations plug in through the UnaryOps, BinaryOps and NaryOps strategy
// interfaces, which replay the forward value and compute partial derivatives.
//
// Usage:
//
//	ctx := graph.NewContext()
//	a := graph.NewLeaf(ctx, valueA)
//	b := graph.NewLeaf(ctx, valueB)
//	c := graph.RecordBinary(ctx, a, b, matmulOps)
//	grads := graph.Backward(c)
//	gradA, ok := graph.Get[*tensor.Tensor](grads, a.ID())
//
// Broken graph invariants (a node stepped without a gradient, orders that do
// not increase along an edge, a cycle) are fatal and panic through
// exceptions.Panicf.
package graph
