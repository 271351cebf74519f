// Package serialization saves and loads named tensors in the SafeTensors
// format, the interchange format of HuggingFace tooling.
//
//	Format Structure:
//	  [8 bytes: Header Size (uint64 LE)]
//	  [Header: JSON, tensor name -> {dtype, shape, data_offsets}]
//	  [Tensor data: raw little-endian bytes, in header order]
//
// The optional "__metadata__" header entry holds string key/value pairs.
//
// Example usage:
//
//	// Save parameters and their gradients
//	err := serialization.WriteSafeTensors("step.safetensors", map[string]*tensor.RawTensor{
//	    "param.w": w.Value().Raw(),
//	    "grad.w":  gradW.Raw(),
//	}, map[string]string{"step": "10"})
//
//	// Load them back
//	tensors, metadata, err := serialization.ReadSafeTensors("step.safetensors", tensor.CPU)
package serialization
