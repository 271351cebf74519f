package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/graphgrad/autodiff"
	"github.com/born-ml/graphgrad/internal/serialization"
	"github.com/born-ml/graphgrad/tensor"
)

func TestRunMatMul(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runMatMul(&out, tensor.Float32, autodiff.DefaultConfig()))
	assert.Contains(t, out.String(), "grad A = Tensor(2, 2) float32 [800 792 360 592]")
	assert.Contains(t, out.String(), "grad B = Tensor(2, 2) float32 [264 264 344 344]")
	assert.Contains(t, out.String(), "gradient store: 6 tensors")
}

func TestRunTrain(t *testing.T) {
	for _, optimizer := range []string{"sgd", "adam"} {
		t.Run(optimizer, func(t *testing.T) {
			var out bytes.Buffer
			err := runTrain(&out, trainConfig{
				DType:     tensor.Float64,
				Backward:  autodiff.ParallelConfig(),
				Optimizer: optimizer,
				LR:        0.1,
				Momentum:  0.9,
				Steps:     200,
				Size:      4,
				Seed:      1,
			})
			require.NoError(t, err)
			assert.Contains(t, out.String(), "final loss after 200 steps")
		})
	}

	err := runTrain(&bytes.Buffer{}, trainConfig{Optimizer: "lbfgs", Steps: 1, Size: 1, DType: tensor.Float32})
	assert.Error(t, err)
}

func TestRunTrainSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.safetensors")
	var out bytes.Buffer
	err := runTrain(&out, trainConfig{
		DType:     tensor.Float32,
		Backward:  autodiff.DefaultConfig(),
		Optimizer: "sgd",
		LR:        0.1,
		Momentum:  0.9,
		Steps:     5,
		Size:      3,
		Seed:      7,
		SavePath:  path,
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "saved 4 tensors to "+path)

	tensors, metadata, err := serialization.ReadSafeTensors(path, tensor.CPU)
	require.NoError(t, err)
	for _, name := range []string{"param.x", "grad.x", "target", "optim.velocity.x"} {
		raw, ok := tensors[name]
		require.Truef(t, ok, "missing %s", name)
		assert.Equal(t, tensor.Shape{3}, raw.Shape(), name)
		assert.Equal(t, tensor.Float32, raw.DType(), name)
	}
	assert.Equal(t, "sgd", metadata["optimizer"])
	assert.Equal(t, "5", metadata["steps"])
}

func TestParseDType(t *testing.T) {
	dtype, err := parseDType("float16")
	require.NoError(t, err)
	assert.Equal(t, tensor.Float16, dtype)

	_, err = parseDType("int8")
	assert.Error(t, err)
}
