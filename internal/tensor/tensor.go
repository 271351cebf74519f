package tensor

import (
	"fmt"
	"strings"
)

// Tensor binds a RawTensor to the backend that computes on it.
// It is the value type carried by autodiff graph nodes: Zeros, Ones, Add and
// Clone are the capabilities the graph relies on.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Ones(tensor.Shape{3, 4}, tensor.Float32, backend)
//	u := t.Add(t)
type Tensor struct {
	raw     *RawTensor
	backend Backend
}

// New creates a Tensor from a RawTensor and backend.
func New(raw *RawTensor, b Backend) *Tensor {
	return &Tensor{raw: raw, backend: b}
}

// Raw returns the underlying RawTensor.
func (t *Tensor) Raw() *RawTensor {
	return t.raw
}

// Backend returns the backend computing on this tensor.
func (t *Tensor) Backend() Backend {
	return t.backend
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.raw.Shape()
}

// DType returns the tensor's data type.
func (t *Tensor) DType() DataType {
	return t.raw.DType()
}

// Device returns the tensor's compute device.
func (t *Tensor) Device() Device {
	return t.raw.Device()
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.raw.NumElements()
}

// Zeros returns a tensor of zeros with the same shape and dtype.
func (t *Tensor) Zeros() *Tensor {
	return Zeros(t.Shape(), t.DType(), t.backend)
}

// Ones returns a tensor of ones with the same shape and dtype.
func (t *Tensor) Ones() *Tensor {
	return Ones(t.Shape(), t.DType(), t.backend)
}

// Clone returns a tensor sharing the underlying buffer.
func (t *Tensor) Clone() *Tensor {
	return New(t.raw.Clone(), t.backend)
}

// Add performs element-wise addition.
func (t *Tensor) Add(other *Tensor) *Tensor {
	return t.wrap(t.backend.Add(t.raw, other.raw))
}

// Sub performs element-wise subtraction.
func (t *Tensor) Sub(other *Tensor) *Tensor {
	return t.wrap(t.backend.Sub(t.raw, other.raw))
}

// Mul performs element-wise multiplication.
func (t *Tensor) Mul(other *Tensor) *Tensor {
	return t.wrap(t.backend.Mul(t.raw, other.raw))
}

// Div performs element-wise division.
func (t *Tensor) Div(other *Tensor) *Tensor {
	return t.wrap(t.backend.Div(t.raw, other.raw))
}

// Neg negates every element.
func (t *Tensor) Neg() *Tensor {
	return t.wrap(t.backend.Neg(t.raw))
}

// AddScalar adds s to every element.
func (t *Tensor) AddScalar(s float64) *Tensor {
	return t.wrap(t.backend.AddScalar(t.raw, s))
}

// MulScalar multiplies every element by s.
func (t *Tensor) MulScalar(s float64) *Tensor {
	return t.wrap(t.backend.MulScalar(t.raw, s))
}

// Powf raises every element to exponent.
func (t *Tensor) Powf(exponent float64) *Tensor {
	return t.wrap(t.backend.Powf(t.raw, exponent))
}

// Exp computes e^x element-wise.
func (t *Tensor) Exp() *Tensor {
	return t.wrap(t.backend.Exp(t.raw))
}

// Log computes the natural logarithm element-wise.
func (t *Tensor) Log() *Tensor {
	return t.wrap(t.backend.Log(t.raw))
}

// MatMul multiplies the last two dimensions of t and other.
func (t *Tensor) MatMul(other *Tensor) *Tensor {
	return t.wrap(t.backend.MatMul(t.raw, other.raw))
}

// Transpose permutes dimensions. With no axes, all dimensions are reversed.
func (t *Tensor) Transpose(axes ...int) *Tensor {
	return t.wrap(t.backend.Transpose(t.raw, axes...))
}

// SwapDims exchanges dimensions dim1 and dim2.
func (t *Tensor) SwapDims(dim1, dim2 int) *Tensor {
	return t.Transpose(SwapAxes(len(t.Shape()), dim1, dim2)...)
}

// Reshape returns a tensor with the same elements and a new shape.
func (t *Tensor) Reshape(shape Shape) *Tensor {
	return t.wrap(t.backend.Reshape(t.raw, shape))
}

// Sum reduces all elements to a scalar tensor.
func (t *Tensor) Sum() *Tensor {
	return t.wrap(t.backend.Sum(t.raw))
}

// Narrow returns the slice [start, start+length) along dim.
func (t *Tensor) Narrow(dim, start, length int) *Tensor {
	return t.wrap(t.backend.Narrow(t.raw, dim, start, length))
}

// Cat concatenates tensors along dim using the first tensor's backend.
func Cat(tensors []*Tensor, dim int) *Tensor {
	if len(tensors) == 0 {
		panic("cat: no tensors")
	}
	raws := make([]*RawTensor, len(tensors))
	for i, t := range tensors {
		raws[i] = t.raw
	}
	return tensors[0].wrap(tensors[0].backend.Cat(raws, dim))
}

// ToFloat64 returns a float64 copy of the elements in row-major order.
func (t *Tensor) ToFloat64() []float64 {
	return t.raw.ToFloat64()
}

// Item returns the only element of a single-element tensor.
func (t *Tensor) Item() float64 {
	if t.NumElements() != 1 {
		panic(fmt.Sprintf("item: tensor of shape %v has %d elements", t.Shape(), t.NumElements()))
	}
	return t.raw.ToFloat64()[0]
}

// String formats the tensor as shape, dtype and values.
func (t *Tensor) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tensor%v %s [", t.Shape(), t.DType())
	for i, v := range t.ToFloat64() {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%g", v)
	}
	sb.WriteString("]")
	return sb.String()
}

func (t *Tensor) wrap(raw *RawTensor) *Tensor {
	return New(raw, t.backend)
}

// SwapAxes returns the permutation of ndim axes that exchanges dim1 and dim2.
func SwapAxes(ndim, dim1, dim2 int) []int {
	if dim1 < 0 || dim1 >= ndim || dim2 < 0 || dim2 >= ndim {
		panic(fmt.Sprintf("swap dims: dims (%d, %d) out of range for %d dims", dim1, dim2, ndim))
	}
	axes := make([]int, ndim)
	for i := range axes {
		axes[i] = i
	}
	axes[dim1], axes[dim2] = axes[dim2], axes[dim1]
	return axes
}

// InverseAxes returns the permutation undoing axes.
func InverseAxes(axes []int) []int {
	inverse := make([]int, len(axes))
	for i, ax := range axes {
		inverse[ax] = i
	}
	return inverse
}
