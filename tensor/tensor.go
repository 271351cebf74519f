// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand/v2"

	"github.com/born-ml/graphgrad/internal/element"
	"github.com/born-ml/graphgrad/internal/tensor"
)

// Tensor is a dense immutable tensor bound to a Backend.
type Tensor = tensor.Tensor

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Float16 DataType = tensor.Float16
)

// Device represents the device where tensor data resides.
type Device = tensor.Device

// CPU is the only device with a backend.
const CPU Device = tensor.CPU

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Element is the constraint satisfied by supported Go element types.
type Element = element.Element

// Distribution describes how Random samples elements.
type Distribution = element.Distribution

// Distribution constructors.
var (
	StandardDistribution  = element.StandardDistribution
	UniformDistribution   = element.UniformDistribution
	NormalDistribution    = element.NormalDistribution
	BernoulliDistribution = element.BernoulliDistribution
)

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape, dtype DataType, b Backend) *Tensor {
	return tensor.Zeros(shape, dtype, b)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape, dtype DataType, b Backend) *Tensor {
	return tensor.Ones(shape, dtype, b)
}

// Full creates a tensor filled with value.
func Full(shape Shape, dtype DataType, value float64, b Backend) *Tensor {
	return tensor.Full(shape, dtype, value, b)
}

// FromSlice creates a tensor from a Go slice. The data is copied.
//
// Example:
//
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
func FromSlice[E Element](data []E, shape Shape, b Backend) (*Tensor, error) {
	return tensor.FromSlice(data, shape, b)
}

// FromFloat64 creates a tensor of the given dtype from float64 values.
func FromFloat64(data []float64, shape Shape, dtype DataType, b Backend) (*Tensor, error) {
	return tensor.FromFloat64(data, shape, dtype, b)
}

// Random creates a tensor with elements sampled from dist using src.
//
// Example:
//
//	src := rand.NewPCG(1, 2)
//	w := tensor.Random(tensor.Shape{3, 3}, tensor.Float32, tensor.NormalDistribution(0, 1), src, backend)
func Random(shape Shape, dtype DataType, dist Distribution, src rand.Source, b Backend) *Tensor {
	return tensor.Random(shape, dtype, dist, src, b)
}

// Cat concatenates tensors along dim.
func Cat(tensors []*Tensor, dim int) *Tensor {
	return tensor.Cat(tensors, dim)
}
