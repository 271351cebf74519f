// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation.
//
// Operations on autodiff tensors are recorded as a graph as they execute.
// Backward converts the recorded graph into a backward graph and propagates
// gradients level by level, so a tensor used several times receives the sum
// of all its contributions.
//
// Example:
//
//	import (
//	    "github.com/born-ml/graphgrad/autodiff"
//	    "github.com/born-ml/graphgrad/backend/cpu"
//	    "github.com/born-ml/graphgrad/tensor"
//	)
//
//	func main() {
//	    ctx := autodiff.NewContext()
//	    backend := cpu.New()
//
//	    a, _ := autodiff.FromSlice(ctx, []float32{1, 7, 2, 3}, tensor.Shape{2, 2}, backend)
//	    b, _ := autodiff.FromSlice(ctx, []float32{4, 7, 2, 3}, tensor.Shape{2, 2}, backend)
//	    c := a.MatMul(b)
//
//	    grads := c.Backward()
//	    gradA, _ := a.Grad(grads) // [[11, 5], [11, 5]]
//	}
package autodiff

import (
	"github.com/born-ml/graphgrad/internal/autodiff"
	"github.com/born-ml/graphgrad/internal/graph"
	"github.com/born-ml/graphgrad/tensor"
)

// Tensor is a tensor tracked by the autodiff graph.
type Tensor = autodiff.Tensor

// Context allocates the identities of recorded nodes.
type Context = graph.Context

// NodeID identifies a recorded node.
type NodeID = graph.NodeID

// Gradients holds the result of a backward pass, keyed by NodeID.
type Gradients = graph.Gradients

// Config controls how a backward pass runs.
type Config = graph.Config

// NewContext creates a recording context.
func NewContext() *Context {
	return graph.NewContext()
}

// DefaultConfig runs backward passes sequentially.
func DefaultConfig() Config {
	return graph.DefaultConfig()
}

// ParallelConfig steps independent nodes of a backward pass concurrently.
func ParallelConfig() Config {
	return graph.ParallelConfig()
}

// NewTensor records value as a leaf.
func NewTensor(ctx *Context, value *tensor.Tensor) *Tensor {
	return autodiff.NewTensor(ctx, value)
}

// FromSlice records a leaf built from a Go slice.
func FromSlice[E tensor.Element](ctx *Context, data []E, shape tensor.Shape, b tensor.Backend) (*Tensor, error) {
	return autodiff.FromSlice(ctx, data, shape, b)
}

// FromFloat64 records a leaf of the given dtype built from float64 values.
func FromFloat64(ctx *Context, data []float64, shape tensor.Shape, dtype tensor.DataType, b tensor.Backend) (*Tensor, error) {
	return autodiff.FromFloat64(ctx, data, shape, dtype, b)
}

// ZerosLike records a fresh leaf of zeros shaped like t.
func ZerosLike(t *Tensor) *Tensor {
	return autodiff.ZerosLike(t)
}

// OnesLike records a fresh leaf of ones shaped like t.
func OnesLike(t *Tensor) *Tensor {
	return autodiff.OnesLike(t)
}

// Cat concatenates tensors along dim.
func Cat(tensors []*Tensor, dim int) (*Tensor, error) {
	return autodiff.Cat(tensors, dim)
}

// Grad returns the gradient stored for id.
func Grad(grads *Gradients, id NodeID) (*tensor.Tensor, bool) {
	return graph.Get[*tensor.Tensor](grads, id)
}
