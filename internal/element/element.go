// Package element defines the scalar types a tensor can hold and the
// capabilities the rest of the module needs from them: zero and one values,
// conversion through float64, precision classes and random sampling.
package element

import (
	"fmt"
	"math"

	"github.com/x448/float16"
)

// Element is the set of scalar types supported by tensors.
//
// Float16 values are stored as IEEE 754 half precision bits and converted
// through float32 for arithmetic.
type Element interface {
	float32 | float64 | float16.Float16
}

// Precision classifies an element type by its storage width.
type Precision int

// Supported precision classes.
const (
	Double Precision = iota
	Full
	Half
	Other
)

// String returns a human-readable precision name.
func (p Precision) String() string {
	switch p {
	case Double:
		return "double"
	case Full:
		return "full"
	case Half:
		return "half"
	default:
		return "other"
	}
}

// PrecisionOf returns the precision class of E.
func PrecisionOf[E Element]() Precision {
	var zero E
	switch any(zero).(type) {
	case float64:
		return Double
	case float32:
		return Full
	case float16.Float16:
		return Half
	default:
		return Other
	}
}

// FromFloat64 converts v to E, rounding to nearest for narrower types.
func FromFloat64[E Element](v float64) E {
	var out E
	switch p := any(&out).(type) {
	case *float32:
		*p = float32(v)
	case *float64:
		*p = v
	case *float16.Float16:
		*p = float16.Fromfloat32(float32(v))
	default:
		panic(fmt.Sprintf("element: unsupported type %T", out))
	}
	return out
}

// ToFloat64 widens e to float64.
func ToFloat64[E Element](e E) float64 {
	switch v := any(e).(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	case float16.Float16:
		return float64(v.Float32())
	default:
		panic(fmt.Sprintf("element: unsupported type %T", e))
	}
}

// Zero returns the additive identity of E.
func Zero[E Element]() E {
	return FromFloat64[E](0)
}

// One returns the multiplicative identity of E.
func One[E Element]() E {
	return FromFloat64[E](1)
}

// Inf returns positive infinity if sign >= 0, negative infinity otherwise.
func Inf[E Element](sign int) E {
	return FromFloat64[E](math.Inf(sign))
}

// NaN returns a quiet NaN of type E.
func NaN[E Element]() E {
	return FromFloat64[E](math.NaN())
}
