package cpu

import (
	"fmt"

	"github.com/born-ml/graphgrad/internal/tensor"
)

// Transpose permutes the dimensions of t.
// With no axes, all dimensions are reversed.
func (cpu *CPUBackend) Transpose(t *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	shape := t.Shape()
	ndim := len(shape)
	if len(axes) == 0 {
		axes = make([]int, ndim)
		for i := range axes {
			axes[i] = ndim - 1 - i
		}
	}
	outShape := shape.Permute(axes)
	result := tensor.MustNewRaw(outShape, t.DType(), cpu.device)

	// Byte-level copy: element size is all that matters for a permutation.
	size := t.DType().Size()
	src, dst := t.Data(), result.Data()
	inStrides := shape.ComputeStrides()
	outStrides := outShape.ComputeStrides()
	total := outShape.NumElements()
	for outIdx := 0; outIdx < total; outIdx++ {
		srcIdx := 0
		rem := outIdx
		for d := 0; d < ndim; d++ {
			coord := rem / outStrides[d]
			rem %= outStrides[d]
			srcIdx += coord * inStrides[axes[d]]
		}
		copy(dst[outIdx*size:(outIdx+1)*size], src[srcIdx*size:(srcIdx+1)*size])
	}
	return result
}

// Reshape returns a view of t with a new shape. No data is copied.
func (cpu *CPUBackend) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	if err := newShape.Validate(); err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	return t.WithShape(newShape)
}

// Cat concatenates tensors along dim. All tensors must share dtype, rank and
// every dimension other than dim.
func (cpu *CPUBackend) Cat(tensors []*tensor.RawTensor, dim int) *tensor.RawTensor {
	if len(tensors) == 0 {
		panic("cat: no tensors")
	}
	first := tensors[0].Shape()
	if dim < 0 || dim >= len(first) {
		panic(fmt.Sprintf("cat: dim %d out of range for shape %v", dim, first))
	}

	outShape := first.Clone()
	outShape[dim] = 0
	for _, t := range tensors {
		s := t.Shape()
		if len(s) != len(first) || t.DType() != tensors[0].DType() {
			panic(fmt.Sprintf("cat: incompatible tensor %v %s vs %v %s", s, t.DType(), first, tensors[0].DType()))
		}
		for d := range s {
			if d != dim && s[d] != first[d] {
				panic(fmt.Sprintf("cat: shape mismatch %v vs %v outside dim %d", s, first, dim))
			}
		}
		outShape[dim] += s[dim]
	}

	result := tensor.MustNewRaw(outShape, tensors[0].DType(), cpu.device)
	outer := first[:dim].NumElements()
	inner := first[dim+1:].NumElements() * tensors[0].DType().Size()
	dst := result.Data()
	offset := 0
	for o := 0; o < outer; o++ {
		for _, t := range tensors {
			chunk := t.Shape()[dim] * inner
			copy(dst[offset:offset+chunk], t.Data()[o*chunk:(o+1)*chunk])
			offset += chunk
		}
	}
	return result
}

// Narrow returns the slice [start, start+length) of x along dim as a new tensor.
func (cpu *CPUBackend) Narrow(x *tensor.RawTensor, dim, start, length int) *tensor.RawTensor {
	shape := x.Shape()
	if dim < 0 || dim >= len(shape) {
		panic(fmt.Sprintf("narrow: dim %d out of range for shape %v", dim, shape))
	}
	if start < 0 || length <= 0 || start+length > shape[dim] {
		panic(fmt.Sprintf("narrow: range [%d, %d) out of bounds for dim %d of %v", start, start+length, dim, shape))
	}

	outShape := shape.Clone()
	outShape[dim] = length
	result := tensor.MustNewRaw(outShape, x.DType(), cpu.device)
	outer := shape[:dim].NumElements()
	inner := shape[dim+1:].NumElements() * x.DType().Size()
	src, dst := x.Data(), result.Data()
	for o := 0; o < outer; o++ {
		from := (o*shape[dim] + start) * inner
		copy(dst[o*length*inner:(o+1)*length*inner], src[from:from+length*inner])
	}
	return result
}
