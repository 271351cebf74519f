package serialization

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"

	"github.com/born-ml/graphgrad/internal/tensor"
)

// maxHeaderSize bounds the JSON header accepted by the reader.
const maxHeaderSize = 100 * 1024 * 1024

const metadataKey = "__metadata__"

// SafeTensorsDType is a dtype name as written in a SafeTensors header.
type SafeTensorsDType string

// Supported SafeTensors dtypes.
const (
	SafeTensorsF16 SafeTensorsDType = "F16"
	SafeTensorsF32 SafeTensorsDType = "F32"
	SafeTensorsF64 SafeTensorsDType = "F64"
)

// SafeTensorInfo describes a tensor in the SafeTensors header.
type SafeTensorInfo struct {
	DType       SafeTensorsDType `json:"dtype"`
	Shape       []int            `json:"shape"`
	DataOffsets [2]int64         `json:"data_offsets"` // [start, end) relative to the data section
}

func toSafeTensorsDType(dt tensor.DataType) (SafeTensorsDType, error) {
	switch dt {
	case tensor.Float32:
		return SafeTensorsF32, nil
	case tensor.Float64:
		return SafeTensorsF64, nil
	case tensor.Float16:
		return SafeTensorsF16, nil
	}
	return "", errors.Errorf("data type %s has no SafeTensors equivalent", dt)
}

func fromSafeTensorsDType(dtype SafeTensorsDType) (tensor.DataType, error) {
	switch dtype {
	case SafeTensorsF32:
		return tensor.Float32, nil
	case SafeTensorsF64:
		return tensor.Float64, nil
	case SafeTensorsF16:
		return tensor.Float16, nil
	}
	return 0, errors.Errorf("unsupported SafeTensors dtype %q", dtype)
}

// WriteSafeTensors writes tensors to a new SafeTensors file at path.
func WriteSafeTensors(path string, tensors map[string]*tensor.RawTensor, metadata map[string]string) (err error) {
	//nolint:gosec // G304: the path is chosen by the caller
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create file")
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = errors.Wrapf(closeErr, "failed to close %s", path)
		}
	}()
	return EncodeSafeTensors(file, tensors, metadata)
}

// EncodeSafeTensors writes tensors in SafeTensors format to w.
//
// Tensors are written in alphabetical order by name.
func EncodeSafeTensors(w io.Writer, tensors map[string]*tensor.RawTensor, metadata map[string]string) error {
	names := make([]string, 0, len(tensors))
	for name := range tensors {
		if name == metadataKey {
			return errors.Errorf("tensor name %q is reserved", name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	header := make(map[string]any, len(names)+1)
	if len(metadata) > 0 {
		header[metadataKey] = metadata
	}
	var offset int64
	for _, name := range names {
		raw := tensors[name]
		dtype, err := toSafeTensorsDType(raw.DType())
		if err != nil {
			return errors.WithMessagef(err, "tensor %s", name)
		}
		size := int64(raw.ByteSize())
		header[name] = SafeTensorInfo{
			DType:       dtype,
			Shape:       append([]int{}, raw.Shape()...),
			DataOffsets: [2]int64{offset, offset + size},
		}
		offset += size
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return errors.Wrap(err, "failed to marshal header")
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return errors.Wrap(err, "failed to write header size")
	}
	if _, err := w.Write(headerJSON); err != nil {
		return errors.Wrap(err, "failed to write header")
	}
	for _, name := range names {
		if _, err := w.Write(tensors[name].Data()); err != nil {
			return errors.Wrapf(err, "failed to write tensor %s", name)
		}
	}
	return nil
}

// ReadSafeTensors loads every tensor of the SafeTensors file at path.
func ReadSafeTensors(path string, device tensor.Device) (map[string]*tensor.RawTensor, map[string]string, error) {
	//nolint:gosec // G304: the path is chosen by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read file")
	}
	return DecodeSafeTensors(bytes.NewReader(data), device)
}

// DecodeSafeTensors reads every tensor of a SafeTensors stream.
func DecodeSafeTensors(r io.Reader, device tensor.Device) (map[string]*tensor.RawTensor, map[string]string, error) {
	var headerSize uint64
	if err := binary.Read(r, binary.LittleEndian, &headerSize); err != nil {
		return nil, nil, errors.Wrap(err, "failed to read header size")
	}
	if headerSize > maxHeaderSize {
		return nil, nil, errors.Errorf("invalid header size: %d (too large)", headerSize)
	}
	headerJSON := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerJSON); err != nil {
		return nil, nil, errors.Wrap(err, "failed to read header")
	}

	var rawHeader map[string]json.RawMessage
	if err := json.Unmarshal(headerJSON, &rawHeader); err != nil {
		return nil, nil, errors.Wrap(err, "failed to parse header JSON")
	}
	var metadata map[string]string
	infos := make(map[string]SafeTensorInfo, len(rawHeader))
	for name, value := range rawHeader {
		if name == metadataKey {
			if err := json.Unmarshal(value, &metadata); err != nil {
				return nil, nil, errors.Wrap(err, "failed to parse metadata")
			}
			continue
		}
		var info SafeTensorInfo
		if err := json.Unmarshal(value, &info); err != nil {
			return nil, nil, errors.Wrapf(err, "failed to parse header of tensor %s", name)
		}
		infos[name] = info
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read tensor data")
	}
	tensors := make(map[string]*tensor.RawTensor, len(infos))
	for name, info := range infos {
		raw, err := decodeTensor(info, body, device)
		if err != nil {
			return nil, nil, errors.WithMessagef(err, "tensor %s", name)
		}
		tensors[name] = raw
	}
	return tensors, metadata, nil
}

func decodeTensor(info SafeTensorInfo, body []byte, device tensor.Device) (*tensor.RawTensor, error) {
	dtype, err := fromSafeTensorsDType(info.DType)
	if err != nil {
		return nil, err
	}
	// Bound the element count by the data section before allocating.
	shape := tensor.Shape(info.Shape)
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid shape")
	}
	if n, limit := shape.NumElements(), len(body)/dtype.Size(); n > limit {
		return nil, errors.Errorf("shape %v holds %d elements of %s, the data section only %d", shape, n, dtype, limit)
	}
	raw, err := tensor.NewRaw(shape, dtype, device)
	if err != nil {
		return nil, errors.Wrap(err, "invalid shape")
	}
	start, end := info.DataOffsets[0], info.DataOffsets[1]
	if start < 0 || end > int64(len(body)) || end-start != int64(raw.ByteSize()) {
		return nil, errors.Errorf("invalid data offsets [%d, %d) for %d bytes of %s %v in a %d byte data section",
			start, end, raw.ByteSize(), dtype, raw.Shape(), len(body))
	}
	copy(raw.Data(), body[start:end])
	return raw, nil
}
