package tensor

// Backend defines the kernels the autodiff engine needs from a compute device.
// Backends never modify their inputs and always return fresh tensors, except
// for Reshape, which may return a view sharing the input buffer.
//
// Element-wise binary operations require operands of identical shape and dtype.
// Implementations panic on misuse.
type Backend interface {
	// Name returns a human-readable backend name.
	Name() string
	// Device returns the compute device.
	Device() Device

	// Element-wise binary operations
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Element-wise unary operations
	Neg(x *RawTensor) *RawTensor
	AddScalar(x *RawTensor, scalar float64) *RawTensor
	MulScalar(x *RawTensor, scalar float64) *RawTensor
	Powf(x *RawTensor, exponent float64) *RawTensor
	Exp(x *RawTensor) *RawTensor
	Log(x *RawTensor) *RawTensor

	// MatMul multiplies the last two dimensions, batching over leading ones.
	// (..., M, K) @ (..., K, N) -> (..., M, N)
	MatMul(a, b *RawTensor) *RawTensor

	// Shape operations
	Transpose(t *RawTensor, axes ...int) *RawTensor
	Reshape(t *RawTensor, newShape Shape) *RawTensor

	// Sum reduces all elements to a scalar.
	Sum(x *RawTensor) *RawTensor

	// Cat concatenates tensors along dim.
	Cat(tensors []*RawTensor, dim int) *RawTensor
	// Narrow returns the slice [start, start+length) along dim.
	Narrow(x *RawTensor, dim, start, length int) *RawTensor
}
