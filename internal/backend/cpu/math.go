package cpu

import (
	"fmt"
	"math"

	"github.com/born-ml/graphgrad/internal/tensor"
)

// Neg negates every element.
func (cpu *CPUBackend) Neg(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("neg", x, unaryKernel{
		f32: func(v float32) float32 { return -v },
		f64: func(v float64) float64 { return -v },
	})
}

// AddScalar adds scalar to every element.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	s32 := float32(scalar)
	return cpu.unary("add_scalar", x, unaryKernel{
		f32: func(v float32) float32 { return v + s32 },
		f64: func(v float64) float64 { return v + scalar },
	})
}

// MulScalar multiplies every element by scalar.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	s32 := float32(scalar)
	return cpu.unary("mul_scalar", x, unaryKernel{
		f32: func(v float32) float32 { return v * s32 },
		f64: func(v float64) float64 { return v * scalar },
	})
}

// Powf raises every element to exponent.
func (cpu *CPUBackend) Powf(x *tensor.RawTensor, exponent float64) *tensor.RawTensor {
	return cpu.unary("powf", x, liftUnary(powf(exponent)))
}

// Exp computes e^x element-wise.
func (cpu *CPUBackend) Exp(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("exp", x, liftUnary(math.Exp))
}

// Log computes the natural logarithm element-wise.
// Non-positive inputs produce -Inf or NaN, as math.Log does.
func (cpu *CPUBackend) Log(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("log", x, liftUnary(math.Log))
}

func (cpu *CPUBackend) unary(name string, x *tensor.RawTensor, k unaryKernel) *tensor.RawTensor {
	result := tensor.MustNewRaw(x.Shape(), x.DType(), cpu.device)
	switch x.DType() {
	case tensor.Float32:
		apply(result.AsFloat32(), x.AsFloat32(), k.f32)
	case tensor.Float64:
		apply(result.AsFloat64(), x.AsFloat64(), k.f64)
	case tensor.Float16:
		out := make([]float32, x.NumElements())
		apply(out, widen(x.AsFloat16()), k.f32)
		narrow(result.AsFloat16(), out)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, x.DType()))
	}
	return result
}
