package cpu

import (
	"fmt"

	"github.com/born-ml/graphgrad/internal/tensor"
	"gonum.org/v1/gonum/mat"
)

// MatMul performs (batched) matrix multiplication over the last two dimensions.
//
//	2D: (M, K) @ (K, N) -> (M, N)
//	ND: (..., M, K) @ (..., K, N) -> (..., M, N), leading dimensions must match.
//
// Float64 uses gonum's BLAS-backed Dense.Mul, the other dtypes a naive kernel.
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	aShape, bShape := a.Shape(), b.Shape()
	if len(aShape) < 2 || len(bShape) < 2 || len(aShape) != len(bShape) {
		panic(fmt.Sprintf("matmul: need equal rank >= 2, got %v @ %v", aShape, bShape))
	}
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("matmul: dtype mismatch %s vs %s", a.DType(), b.DType()))
	}

	rank := len(aShape)
	m, k := aShape[rank-2], aShape[rank-1]
	kAlt, n := bShape[rank-2], bShape[rank-1]
	if k != kAlt || !aShape[:rank-2].Equal(bShape[:rank-2]) {
		panic(fmt.Sprintf("matmul: shape mismatch %v @ %v", aShape, bShape))
	}

	outShape := aShape.Clone()
	outShape[rank-1] = n
	result := tensor.MustNewRaw(outShape, a.DType(), cpu.device)
	batch := aShape[:rank-2].NumElements()

	switch a.DType() {
	case tensor.Float32:
		matmulBatched(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), batch, m, k, n)
	case tensor.Float64:
		matmulFloat64(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), batch, m, k, n)
	case tensor.Float16:
		out := make([]float32, outShape.NumElements())
		matmulBatched(out, widen(a.AsFloat16()), widen(b.AsFloat16()), batch, m, k, n)
		narrow(result.AsFloat16(), out)
	default:
		panic(fmt.Sprintf("matmul: unsupported dtype %s", a.DType()))
	}
	return result
}

// matmulBatched computes C[i,j] = sum_k A[i,k] * B[k,j] for each batch.
func matmulBatched(c, a, b []float32, batch, m, k, n int) {
	for bi := 0; bi < batch; bi++ {
		ca := c[bi*m*n : (bi+1)*m*n]
		aa := a[bi*m*k : (bi+1)*m*k]
		ba := b[bi*k*n : (bi+1)*k*n]
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				var sum float32
				for kIdx := 0; kIdx < k; kIdx++ {
					sum += aa[i*k+kIdx] * ba[kIdx*n+j]
				}
				ca[i*n+j] = sum
			}
		}
	}
}

func matmulFloat64(c, a, b []float64, batch, m, k, n int) {
	for bi := 0; bi < batch; bi++ {
		// mat.NewDense wraps the slices without copying; inputs are only read.
		am := mat.NewDense(m, k, a[bi*m*k:(bi+1)*m*k])
		bm := mat.NewDense(k, n, b[bi*k*n:(bi+1)*k*n])
		cm := mat.NewDense(m, n, c[bi*m*n:(bi+1)*m*n])
		cm.Mul(am, bm)
	}
}
