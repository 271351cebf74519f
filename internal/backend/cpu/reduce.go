package cpu

import (
	"fmt"

	"github.com/born-ml/graphgrad/internal/tensor"
	"gonum.org/v1/gonum/floats"
)

// Sum reduces all elements of x to a scalar of the same dtype.
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	result := tensor.MustNewRaw(tensor.Shape{}, x.DType(), cpu.device)
	switch x.DType() {
	case tensor.Float64:
		result.AsFloat64()[0] = floats.Sum(x.AsFloat64())
	case tensor.Float32, tensor.Float16:
		// Accumulate in float64 to limit rounding error on long inputs.
		result.SetFloat64([]float64{floats.Sum(x.ToFloat64())})
	default:
		panic(fmt.Sprintf("sum: unsupported dtype %s", x.DType()))
	}
	return result
}
