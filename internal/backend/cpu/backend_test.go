package cpu_test

import (
	"math"
	"testing"

	"github.com/born-ml/graphgrad/internal/backend/cpu"
	"github.com/born-ml/graphgrad/internal/tensor"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
	"gonum.org/v1/gonum/floats"
)

func raw(t *testing.T, dtype tensor.DataType, shape tensor.Shape, vals ...float64) *tensor.RawTensor {
	t.Helper()
	return must.M1(tensor.FromFloat64(vals, shape, dtype, cpu.New())).Raw()
}

func TestCPUBackend_Name(t *testing.T) {
	backend := cpu.New()
	assert.Equal(t, "CPU", backend.Name())
	assert.Equal(t, tensor.CPU, backend.Device())
}

func TestCPUBackend_Binary(t *testing.T) {
	backend := cpu.New()
	tests := []struct {
		name string
		op   func(a, b *tensor.RawTensor) *tensor.RawTensor
		want []float64
	}{
		{"add", backend.Add, []float64{5, 7, 9, 11}},
		{"sub", backend.Sub, []float64{-3, -3, -3, -3}},
		{"mul", backend.Mul, []float64{4, 10, 18, 28}},
		{"div", backend.Div, []float64{0.25, 0.4, 0.5, 4.0 / 7.0}},
	}
	for _, dtype := range []tensor.DataType{tensor.Float32, tensor.Float64, tensor.Float16} {
		for _, tt := range tests {
			t.Run(dtype.String()+"/"+tt.name, func(t *testing.T) {
				a := raw(t, dtype, tensor.Shape{2, 2}, 1, 2, 3, 4)
				b := raw(t, dtype, tensor.Shape{2, 2}, 4, 5, 6, 7)
				got := tt.op(a, b)
				require.Equal(t, dtype, got.DType())
				assert.True(t, floats.EqualApprox(tt.want, got.ToFloat64(), 1e-3), "got %v", got.ToFloat64())
			})
		}
	}
}

func TestCPUBackend_Binary_ShapeMismatchPanics(t *testing.T) {
	backend := cpu.New()
	a := raw(t, tensor.Float32, tensor.Shape{2}, 1, 2)
	b := raw(t, tensor.Float32, tensor.Shape{3}, 1, 2, 3)
	assert.Panics(t, func() { backend.Add(a, b) })
}

func TestCPUBackend_Unary(t *testing.T) {
	backend := cpu.New()
	x := raw(t, tensor.Float64, tensor.Shape{3}, 1, 2, 4)

	assert.Equal(t, []float64{-1, -2, -4}, backend.Neg(x).ToFloat64())
	assert.Equal(t, []float64{3, 4, 6}, backend.AddScalar(x, 2).ToFloat64())
	assert.Equal(t, []float64{0.5, 1, 2}, backend.MulScalar(x, 0.5).ToFloat64())
	assert.Equal(t, []float64{1, 4, 16}, backend.Powf(x, 2).ToFloat64())
	assert.InDeltaSlice(t, []float64{math.E, math.Exp(2), math.Exp(4)}, backend.Exp(x).ToFloat64(), 1e-12)
	assert.InDeltaSlice(t, []float64{0, math.Ln2, 2 * math.Ln2}, backend.Log(x).ToFloat64(), 1e-12)

	// Inputs are never modified.
	assert.Equal(t, []float64{1, 2, 4}, x.ToFloat64())
}

func TestCPUBackend_MatMul(t *testing.T) {
	backend := cpu.New()
	for _, dtype := range []tensor.DataType{tensor.Float32, tensor.Float64, tensor.Float16} {
		t.Run(dtype.String(), func(t *testing.T) {
			a := raw(t, dtype, tensor.Shape{2, 2}, 1, 7, 2, 3)
			b := raw(t, dtype, tensor.Shape{2, 2}, 4, 7, 2, 3)
			got := backend.MatMul(a, b)
			assert.Equal(t, tensor.Shape{2, 2}, got.Shape())
			assert.Equal(t, []float64{18, 28, 14, 23}, got.ToFloat64())
		})
	}
}

func TestCPUBackend_MatMul_Batched(t *testing.T) {
	backend := cpu.New()
	// Two batches of (1,2) @ (2,1).
	a := raw(t, tensor.Float64, tensor.Shape{2, 1, 2}, 1, 2, 3, 4)
	b := raw(t, tensor.Float64, tensor.Shape{2, 2, 1}, 5, 6, 7, 8)
	got := backend.MatMul(a, b)
	assert.Equal(t, tensor.Shape{2, 1, 1}, got.Shape())
	assert.Equal(t, []float64{17, 53}, got.ToFloat64())
}

func TestCPUBackend_MatMul_ShapeMismatchPanics(t *testing.T) {
	backend := cpu.New()
	a := raw(t, tensor.Float32, tensor.Shape{2, 3}, 1, 2, 3, 4, 5, 6)
	b := raw(t, tensor.Float32, tensor.Shape{2, 2}, 1, 2, 3, 4)
	assert.Panics(t, func() { backend.MatMul(a, b) })
}

func TestCPUBackend_Transpose(t *testing.T) {
	backend := cpu.New()
	x := raw(t, tensor.Float32, tensor.Shape{2, 2, 3}, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11)

	swapLast := backend.Transpose(x, 0, 2, 1)
	assert.Equal(t, tensor.Shape{2, 3, 2}, swapLast.Shape())
	assert.Equal(t, []float64{0, 3, 1, 4, 2, 5, 6, 9, 7, 10, 8, 11}, swapLast.ToFloat64())

	swapOuter := backend.Transpose(x, 2, 1, 0)
	assert.Equal(t, tensor.Shape{3, 2, 2}, swapOuter.Shape())
	assert.Equal(t, []float64{0, 6, 3, 9, 1, 7, 4, 10, 2, 8, 5, 11}, swapOuter.ToFloat64())

	// Default reverses all axes.
	assert.Equal(t, swapOuter.ToFloat64(), backend.Transpose(x).ToFloat64())
}

func TestCPUBackend_Transpose_Float16(t *testing.T) {
	backend := cpu.New()
	x := must.M1(tensor.FromSlice([]float16.Float16{
		float16.Fromfloat32(1), float16.Fromfloat32(2),
		float16.Fromfloat32(3), float16.Fromfloat32(4),
	}, tensor.Shape{2, 2}, backend))
	assert.Equal(t, []float64{1, 3, 2, 4}, backend.Transpose(x.Raw(), 1, 0).ToFloat64())
}

func TestCPUBackend_Reshape(t *testing.T) {
	backend := cpu.New()
	x := raw(t, tensor.Float64, tensor.Shape{2, 3}, 1, 2, 3, 4, 5, 6)
	r := backend.Reshape(x, tensor.Shape{3, 2})
	assert.Equal(t, tensor.Shape{3, 2}, r.Shape())
	assert.Equal(t, x.ToFloat64(), r.ToFloat64())
	assert.Panics(t, func() { backend.Reshape(x, tensor.Shape{4}) })
}

func TestCPUBackend_Sum(t *testing.T) {
	backend := cpu.New()
	for _, dtype := range []tensor.DataType{tensor.Float32, tensor.Float64, tensor.Float16} {
		x := raw(t, dtype, tensor.Shape{2, 2}, 1, 2, 3, 4)
		s := backend.Sum(x)
		assert.Empty(t, s.Shape())
		assert.Equal(t, []float64{10}, s.ToFloat64(), dtype.String())
	}
}

func TestCPUBackend_CatNarrow(t *testing.T) {
	backend := cpu.New()
	a := raw(t, tensor.Float32, tensor.Shape{2, 2}, 1, 2, 3, 4)
	b := raw(t, tensor.Float32, tensor.Shape{2, 1}, 5, 6)

	c := backend.Cat([]*tensor.RawTensor{a, b}, 1)
	assert.Equal(t, tensor.Shape{2, 3}, c.Shape())
	assert.Equal(t, []float64{1, 2, 5, 3, 4, 6}, c.ToFloat64())

	rows := backend.Cat([]*tensor.RawTensor{a, a}, 0)
	assert.Equal(t, []float64{1, 2, 3, 4, 1, 2, 3, 4}, rows.ToFloat64())

	assert.Equal(t, a.ToFloat64(), backend.Narrow(c, 1, 0, 2).ToFloat64())
	assert.Equal(t, b.ToFloat64(), backend.Narrow(c, 1, 2, 1).ToFloat64())
	assert.Panics(t, func() { backend.Narrow(c, 1, 2, 2) })
	assert.Panics(t, func() { backend.Cat([]*tensor.RawTensor{a, b}, 0) })
}
