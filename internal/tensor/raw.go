package tensor

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// Device represents the compute device for tensor operations.
type Device int

// Supported compute devices.
const (
	CPU Device = iota
	CUDA
	Vulkan
	Metal
	WebGPU
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	case CUDA:
		return "CUDA"
	case Vulkan:
		return "Vulkan"
	case Metal:
		return "Metal"
	case WebGPU:
		return "WebGPU"
	default:
		return "Unknown"
	}
}

// RawTensor is the low-level tensor representation: a contiguous row-major
// byte buffer plus shape and type information.
//
// A RawTensor is never modified after the backend that produced it returns,
// so clones share the buffer freely.
type RawTensor struct {
	data   []byte
	shape  Shape    // Tensor dimensions
	stride []int    // Memory strides (row-major)
	dtype  DataType // Runtime type information
	device Device   // Compute device
}

// NewRaw creates a new RawTensor with the given shape and type.
// Memory is zero-initialized.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid shape %v", shape)
	}
	if n := shape.NumElements(); n > math.MaxInt/dtype.Size() {
		return nil, errors.Errorf("%d elements of %s overflow the buffer size", n, dtype)
	}

	return &RawTensor{
		data:   make([]byte, shape.NumElements()*dtype.Size()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
		device: device,
	}, nil
}

// MustNewRaw is like NewRaw but panics on error.
// Used by backends, where shapes were already validated by the inputs.
func MustNewRaw(shape Shape, dtype DataType, device Device) *RawTensor {
	r, err := NewRaw(shape, dtype, device)
	if err != nil {
		panic(fmt.Sprintf("%+v", err))
	}
	return r
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's memory strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// Device returns the tensor's compute device.
func (r *RawTensor) Device() Device {
	return r.device
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the total memory size in bytes.
func (r *RawTensor) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// Data returns the raw byte slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *RawTensor) Data() []byte {
	return r.data
}

// AsFloat32 interprets the data as []float32.
// Panics if the tensor's dtype is not Float32.
func (r *RawTensor) AsFloat32() []float32 {
	if r.dtype != Float32 {
		panic(fmt.Sprintf("tensor dtype is %s, not float32", r.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*float32)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AsFloat64 interprets the data as []float64.
// Panics if the tensor's dtype is not Float64.
func (r *RawTensor) AsFloat64() []float64 {
	if r.dtype != Float64 {
		panic(fmt.Sprintf("tensor dtype is %s, not float64", r.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*float64)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// AsFloat16 interprets the data as []float16.Float16.
// Panics if the tensor's dtype is not Float16.
func (r *RawTensor) AsFloat16() []float16.Float16 {
	if r.dtype != Float16 {
		panic(fmt.Sprintf("tensor dtype is %s, not float16", r.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*float16.Float16)(unsafe.Pointer(&r.data[0])), r.NumElements())
}

// Clone returns a RawTensor sharing the same buffer.
func (r *RawTensor) Clone() *RawTensor {
	return &RawTensor{
		data:   r.data,
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
		dtype:  r.dtype,
		device: r.device,
	}
}

// Copy returns a RawTensor with its own copy of the buffer.
func (r *RawTensor) Copy() *RawTensor {
	c := r.Clone()
	c.data = append([]byte(nil), r.data...)
	return c
}

// WithShape returns a RawTensor sharing the buffer but viewed with a new shape.
// Panics if the element count differs.
func (r *RawTensor) WithShape(shape Shape) *RawTensor {
	if shape.NumElements() != r.NumElements() {
		panic(fmt.Sprintf("reshape: cannot view %v (%d elements) as %v", r.shape, r.NumElements(), shape))
	}
	c := r.Clone()
	c.shape = shape.Clone()
	c.stride = shape.ComputeStrides()
	return c
}

// ToFloat64 returns a float64 copy of the tensor's elements.
func (r *RawTensor) ToFloat64() []float64 {
	out := make([]float64, r.NumElements())
	switch r.dtype {
	case Float32:
		for i, v := range r.AsFloat32() {
			out[i] = float64(v)
		}
	case Float64:
		copy(out, r.AsFloat64())
	case Float16:
		for i, v := range r.AsFloat16() {
			out[i] = float64(v.Float32())
		}
	default:
		panic(fmt.Sprintf("unsupported dtype %s", r.dtype))
	}
	return out
}

// SetFloat64 overwrites the tensor's elements with values converted from vals.
// Only meant for freshly created tensors that no one else holds yet.
func (r *RawTensor) SetFloat64(vals []float64) {
	if len(vals) != r.NumElements() {
		panic(fmt.Sprintf("set: %d values for %d elements", len(vals), r.NumElements()))
	}
	switch r.dtype {
	case Float32:
		data := r.AsFloat32()
		for i, v := range vals {
			data[i] = float32(v)
		}
	case Float64:
		copy(r.AsFloat64(), vals)
	case Float16:
		data := r.AsFloat16()
		for i, v := range vals {
			data[i] = float16.Fromfloat32(float32(v))
		}
	default:
		panic(fmt.Sprintf("unsupported dtype %s", r.dtype))
	}
}

// Fill sets every element to v.
// Only meant for freshly created tensors that no one else holds yet.
func (r *RawTensor) Fill(v float64) {
	switch r.dtype {
	case Float32:
		data := r.AsFloat32()
		for i := range data {
			data[i] = float32(v)
		}
	case Float64:
		data := r.AsFloat64()
		for i := range data {
			data[i] = v
		}
	case Float16:
		h := float16.Fromfloat32(float32(v))
		data := r.AsFloat16()
		for i := range data {
			data[i] = h
		}
	default:
		panic(fmt.Sprintf("unsupported dtype %s", r.dtype))
	}
}
