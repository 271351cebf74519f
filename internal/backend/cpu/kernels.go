package cpu

import (
	"math"

	"github.com/x448/float16"
	"golang.org/x/exp/constraints"
)

type binaryKernel struct {
	f32 func(x, y float32) float32
	f64 func(x, y float64) float64
}

type unaryKernel struct {
	f32 func(x float32) float32
	f64 func(x float64) float64
}

// liftUnary builds a kernel evaluating f in float64 for every dtype.
func liftUnary(f func(float64) float64) unaryKernel {
	return unaryKernel{
		f32: func(x float32) float32 { return float32(f(float64(x))) },
		f64: f,
	}
}

func add[T constraints.Float](x, y T) T { return x + y }
func sub[T constraints.Float](x, y T) T { return x - y }
func mul[T constraints.Float](x, y T) T { return x * y }
func div[T constraints.Float](x, y T) T { return x / y }

func zip[T constraints.Float](dst, a, b []T, f func(x, y T) T) {
	for i := range dst {
		dst[i] = f(a[i], b[i])
	}
}

func apply[T constraints.Float](dst, src []T, f func(x T) T) {
	for i := range dst {
		dst[i] = f(src[i])
	}
}

// widen converts half precision values to float32.
func widen(src []float16.Float16) []float32 {
	out := make([]float32, len(src))
	for i, v := range src {
		out[i] = v.Float32()
	}
	return out
}

// narrow rounds float32 values into half precision storage.
func narrow(dst []float16.Float16, src []float32) {
	for i, v := range src {
		dst[i] = float16.Fromfloat32(v)
	}
}

func powf(exponent float64) func(float64) float64 {
	return func(x float64) float64 { return math.Pow(x, exponent) }
}
