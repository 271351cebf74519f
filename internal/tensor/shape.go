package tensor

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Shape represents the dimensions of a tensor.
// An empty shape is a scalar.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid: all dimensions > 0 and an element
// count that fits in an int.
func (s Shape) Validate() error {
	n := 1
	for i, dim := range s {
		if dim <= 0 {
			return errors.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
		if n > math.MaxInt/dim {
			return errors.Errorf("shape %v overflows the element count at index %d", s, i)
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Permute returns the shape with dimensions reordered by axes.
// Panics if axes is not a permutation of [0, len(s)).
func (s Shape) Permute(axes []int) Shape {
	if len(axes) != len(s) {
		panic(fmt.Sprintf("permute: got %d axes for shape %v", len(axes), s))
	}
	seen := make([]bool, len(s))
	out := make(Shape, len(s))
	for i, ax := range axes {
		if ax < 0 || ax >= len(s) || seen[ax] {
			panic(fmt.Sprintf("permute: axes %v is not a permutation of %d dims", axes, len(s)))
		}
		seen[ax] = true
		out[i] = s[ax]
	}
	return out
}

// String formats the shape as (d0, d1, ...).
func (s Shape) String() string {
	if len(s) == 0 {
		return "()"
	}
	out := "("
	for i, d := range s {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprint(d)
	}
	return out + ")"
}
