package ops

import "github.com/born-ml/graphgrad/internal/tensor"

// ReshapeOps changes the shape and keeps the elements.
// The gradient is reshaped back to the input shape.
type ReshapeOps struct {
	Shape tensor.Shape
}

func (o ReshapeOps) Forward(x *tensor.Tensor) *tensor.Tensor { return x.Reshape(o.Shape) }

func (ReshapeOps) Partial(s *unaryState) *tensor.Tensor {
	return s.Output.Grad().Reshape(s.Input.Value().Shape())
}
