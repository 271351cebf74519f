package serialization

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/graphgrad/internal/tensor"
)

func rawOf(t *testing.T, data []float64, shape tensor.Shape, dtype tensor.DataType) *tensor.RawTensor {
	t.Helper()
	raw := must.M1(tensor.NewRaw(shape, dtype, tensor.CPU))
	raw.SetFloat64(data)
	return raw
}

func TestSafeTensorsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roundtrip.safetensors")
	tensors := map[string]*tensor.RawTensor{
		"weight": rawOf(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, tensor.Float32),
		"bias":   rawOf(t, []float64{0.5, -0.25}, tensor.Shape{2}, tensor.Float64),
		"half":   rawOf(t, []float64{1.5, 2, -3}, tensor.Shape{3}, tensor.Float16),
		"loss":   rawOf(t, []float64{0.125}, tensor.Shape{}, tensor.Float32),
	}
	metadata := map[string]string{"step": "10"}

	require.NoError(t, WriteSafeTensors(path, tensors, metadata))
	loaded, loadedMetadata, err := ReadSafeTensors(path, tensor.CPU)
	require.NoError(t, err)

	assert.Equal(t, metadata, loadedMetadata)
	require.Len(t, loaded, len(tensors))
	for name, want := range tensors {
		got, ok := loaded[name]
		require.Truef(t, ok, "missing %s", name)
		assert.Equal(t, want.DType(), got.DType(), name)
		assert.True(t, want.Shape().Equal(got.Shape()), name)
		assert.Equal(t, want.ToFloat64(), got.ToFloat64(), name)
	}
}

func TestEncodeSafeTensorsLayout(t *testing.T) {
	var buf bytes.Buffer
	tensors := map[string]*tensor.RawTensor{
		"b": rawOf(t, []float64{2}, tensor.Shape{1}, tensor.Float32),
		"a": rawOf(t, []float64{1}, tensor.Shape{1}, tensor.Float32),
	}
	require.NoError(t, EncodeSafeTensors(&buf, tensors, nil))

	data := buf.Bytes()
	headerSize := binary.LittleEndian.Uint64(data[:8])
	header := string(data[8 : 8+headerSize])
	assert.Contains(t, header, `"a":{"dtype":"F32","shape":[1],"data_offsets":[0,4]}`)
	assert.Contains(t, header, `"b":{"dtype":"F32","shape":[1],"data_offsets":[4,8]}`)
	assert.NotContains(t, header, metadataKey)
	assert.Len(t, data, 8+int(headerSize)+8)
}

func TestEncodeSafeTensorsReservedName(t *testing.T) {
	err := EncodeSafeTensors(&bytes.Buffer{}, map[string]*tensor.RawTensor{
		metadataKey: rawOf(t, []float64{1}, tensor.Shape{1}, tensor.Float32),
	}, nil)
	assert.Error(t, err)
}

func TestDecodeSafeTensorsErrors(t *testing.T) {
	encode := func(header string, body []byte) *bytes.Reader {
		var buf bytes.Buffer
		_ = binary.Write(&buf, binary.LittleEndian, uint64(len(header)))
		buf.WriteString(header)
		buf.Write(body)
		return bytes.NewReader(buf.Bytes())
	}

	tests := []struct {
		name   string
		header string
		body   []byte
	}{
		{"bad json", `{"x":`, nil},
		{"unknown dtype", `{"x":{"dtype":"I8","shape":[1],"data_offsets":[0,1]}}`, []byte{1}},
		{"offsets past end", `{"x":{"dtype":"F32","shape":[2],"data_offsets":[0,8]}}`, []byte{0, 0, 0, 0}},
		{"size mismatch", `{"x":{"dtype":"F32","shape":[2],"data_offsets":[0,4]}}`, make([]byte, 8)},
		{"bad shape", `{"x":{"dtype":"F32","shape":[0],"data_offsets":[0,0]}}`, nil},
		{"overflowing shape", `{"x":{"dtype":"F32","shape":[4294967296,1073741824],"data_offsets":[0,0]}}`, nil},
		{"overflowing byte size", `{"x":{"dtype":"F64","shape":[2305843009213693952],"data_offsets":[0,0]}}`, nil},
		{"shape larger than body", `{"x":{"dtype":"F32","shape":[1099511627776],"data_offsets":[0,4]}}`, []byte{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeSafeTensors(encode(tt.header, tt.body), tensor.CPU)
			assert.Error(t, err)
		})
	}

	_, _, err := DecodeSafeTensors(bytes.NewReader([]byte{1, 2}), tensor.CPU)
	assert.Error(t, err, "truncated header size")

	_, _, err = ReadSafeTensors(filepath.Join(t.TempDir(), "missing.safetensors"), tensor.CPU)
	assert.Error(t, err)
}
