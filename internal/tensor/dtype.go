package tensor

import (
	"fmt"

	"github.com/born-ml/graphgrad/internal/element"
	"github.com/x448/float16"
)

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Float32 DataType = iota
	Float64
	Float16
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32:
		return 4
	case Float64:
		return 8
	case Float16:
		return 2
	default:
		panic(fmt.Sprintf("unknown data type %d", int(dt)))
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Float16:
		return "float16"
	default:
		return "unknown"
	}
}

// Precision returns the element precision class of the data type.
func (dt DataType) Precision() element.Precision {
	switch dt {
	case Float64:
		return element.Double
	case Float32:
		return element.Full
	case Float16:
		return element.Half
	default:
		return element.Other
	}
}

// DataTypeOf infers the DataType of element type E.
func DataTypeOf[E element.Element]() DataType {
	var zero E
	switch any(zero).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case float16.Float16:
		return Float16
	default:
		panic("unsupported element type")
	}
}
