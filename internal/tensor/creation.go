package tensor

import (
	"math/rand/v2"

	"github.com/born-ml/graphgrad/internal/element"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros(Shape{3, 4}, tensor.Float32, backend)
func Zeros(shape Shape, dtype DataType, b Backend) *Tensor {
	raw, err := NewRaw(shape, dtype, b.Device())
	if err != nil {
		panic(err) // Shapes of existing tensors are already valid
	}
	return New(raw, b)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape, dtype DataType, b Backend) *Tensor {
	return Full(shape, dtype, 1, b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full(Shape{3, 3}, tensor.Float64, 3.14, backend)
func Full(shape Shape, dtype DataType, value float64, b Backend) *Tensor {
	t := Zeros(shape, dtype, b)
	if value != 0 {
		t.raw.Fill(value)
	}
	return t
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[E element.Element](data []E, shape Shape, b Backend) (*Tensor, error) {
	if shape.NumElements() != len(data) {
		return nil, errors.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	raw, err := NewRaw(shape, DataTypeOf[E](), b.Device())
	if err != nil {
		return nil, err
	}

	switch src := any(data).(type) {
	case []float32:
		copy(raw.AsFloat32(), src)
	case []float64:
		copy(raw.AsFloat64(), src)
	case []float16.Float16:
		copy(raw.AsFloat16(), src)
	}
	return New(raw, b), nil
}

// FromFloat64 creates a tensor of the given dtype from float64 values.
func FromFloat64(data []float64, shape Shape, dtype DataType, b Backend) (*Tensor, error) {
	if shape.NumElements() != len(data) {
		return nil, errors.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	raw, err := NewRaw(shape, dtype, b.Device())
	if err != nil {
		return nil, err
	}
	raw.SetFloat64(data)
	return New(raw, b), nil
}

// Random creates a tensor with values drawn from dist.
// Note: Uses math/rand (not crypto/rand) - appropriate for ML/statistical purposes.
//
// Example:
//
//	src := rand.NewPCG(42, 42)
//	w := tensor.Random(Shape{2, 2}, tensor.Float32, element.NormalDistribution(0, 1), src, backend)
func Random(shape Shape, dtype DataType, dist element.Distribution, src rand.Source, b Backend) *Tensor {
	t := Zeros(shape, dtype, b)
	sample := dist.Sampler(src)
	vals := make([]float64, shape.NumElements())
	for i := range vals {
		vals[i] = sample()
	}
	t.raw.SetFloat64(vals)
	return t
}
