// Package cpu implements the CPU backend in pure Go.
//
// Float32 and Float64 are computed natively. Float16 tensors are widened to
// float32, computed, and rounded back to half precision.
package cpu

import (
	"fmt"

	"github.com/born-ml/graphgrad/internal/tensor"
)

// CPUBackend implements tensor operations on CPU.
type CPUBackend struct {
	device tensor.Device
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Add performs element-wise addition.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("add", a, b, binaryKernel{f32: add[float32], f64: add[float64]})
}

// Sub performs element-wise subtraction.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("sub", a, b, binaryKernel{f32: sub[float32], f64: sub[float64]})
}

// Mul performs element-wise multiplication.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("mul", a, b, binaryKernel{f32: mul[float32], f64: mul[float64]})
}

// Div performs element-wise division.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("div", a, b, binaryKernel{f32: div[float32], f64: div[float64]})
}

func (cpu *CPUBackend) binary(name string, a, b *tensor.RawTensor, k binaryKernel) *tensor.RawTensor {
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("%s: shape mismatch %v vs %v", name, a.Shape(), b.Shape()))
	}
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch %s vs %s", name, a.DType(), b.DType()))
	}

	result := tensor.MustNewRaw(a.Shape(), a.DType(), cpu.device)
	switch a.DType() {
	case tensor.Float32:
		zip(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), k.f32)
	case tensor.Float64:
		zip(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), k.f64)
	case tensor.Float16:
		out := make([]float32, a.NumElements())
		zip(out, widen(a.AsFloat16()), widen(b.AsFloat16()), k.f32)
		narrow(result.AsFloat16(), out)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, a.DType()))
	}
	return result
}
