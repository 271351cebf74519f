package autodiff

import (
	"github.com/born-ml/graphgrad/internal/graph"
	"github.com/born-ml/graphgrad/internal/tensor"
)

// Backward computes the gradients of t with respect to every tensor it
// was computed from. t is seeded with ones of its own shape, so calling it
// on a non-scalar tensor differentiates the sum of its elements.
func (t *Tensor) Backward() *graph.Gradients {
	return graph.Backward(t.node)
}

// BackwardWithConfig is Backward with an explicit engine configuration.
func (t *Tensor) BackwardWithConfig(cfg graph.Config) *graph.Gradients {
	return graph.BackwardWithConfig(t.node, cfg)
}

// Grad returns the gradient of t in grads, or false if t did not take part
// in the backward pass that produced grads.
func (t *Tensor) Grad(grads *graph.Gradients) (*tensor.Tensor, bool) {
	return graph.Get[*tensor.Tensor](grads, t.ID())
}

// Detach returns a new leaf holding t's value. Gradients do not flow from
// the result back to t.
func (t *Tensor) Detach() *Tensor {
	return NewTensor(t.ctx, t.Value())
}
