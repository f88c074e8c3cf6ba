package scalar

import (
	"math"
	"strconv"
)

// Value is the element type rows hold. Anything that can report a numeric
// coercion of itself can live in a row; the concrete Scalar below covers the
// common cases.
type Value interface {
	// ToNumber returns the numeric coercion of the value.
	ToNumber() float64
}

// Kind identifies the concrete type stored in a Scalar.
type Kind uint8

const (
	// KindInvalid represents an invalid kind.
	KindInvalid Kind = iota
	// KindNull represents a null value.
	KindNull
	// KindInt represents an integer value.
	KindInt
	// KindFloat represents a float value.
	KindFloat
	// KindBool represents a boolean value.
	KindBool
)

// Scalar is a small typed value implementing Value.
//
// The representation is designed to make coercion fast and predictable:
// no reflection and no fmt-based stringification.
type Scalar struct {
	Kind Kind
	I64  int64
	F64  float64
	B    bool
}

// Zero is the numeric-zero Scalar. It is what a sparse row hands back for
// positions it does not store when built by filtering a dense sequence.
var Zero = Float(0)

// Null returns the null Scalar. Its numeric coercion is 0.
func Null() Scalar {
	return Scalar{Kind: KindNull}
}

// Int returns an integer Scalar.
func Int(v int64) Scalar {
	return Scalar{Kind: KindInt, I64: v}
}

// Float returns a float Scalar.
func Float(v float64) Scalar {
	return Scalar{Kind: KindFloat, F64: v}
}

// Bool returns a boolean Scalar. true coerces to 1, false to 0.
func Bool(v bool) Scalar {
	return Scalar{Kind: KindBool, B: v}
}

// ToNumber implements Value.
func (v Scalar) ToNumber() float64 {
	switch v.Kind {
	case KindInt:
		return float64(v.I64)
	case KindFloat:
		return v.F64
	case KindBool:
		if v.B {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// AsInt64 returns the int64 value if Kind is KindInt.
func (v Scalar) AsInt64() (int64, bool) {
	if v.Kind != KindInt {
		return 0, false
	}
	return v.I64, true
}

// AsFloat64 returns the float64 value if Kind is KindFloat.
func (v Scalar) AsFloat64() (float64, bool) {
	if v.Kind != KindFloat {
		return 0, false
	}
	return v.F64, true
}

// AsBool returns the boolean value if Kind is KindBool.
func (v Scalar) AsBool() (bool, bool) {
	if v.Kind != KindBool {
		return false, false
	}
	return v.B, true
}

// IsZero reports whether the numeric coercion of v is zero.
func (v Scalar) IsZero() bool {
	return v.ToNumber() == 0
}

// Key returns a stable string representation for use in maps.
//
// It is intended for internal indexing and must remain stable across
// versions.
func (v Scalar) Key() string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindInt:
		return "i:" + strconv.FormatInt(v.I64, 10)
	case KindFloat:
		return "f:" + strconv.FormatUint(math.Float64bits(v.F64), 16)
	case KindBool:
		if v.B {
			return "b:1"
		}
		return "b:0"
	default:
		return "invalid"
	}
}

// IsNonZero reports whether the numeric coercion of v is non-zero. It is the
// predicate rows use to decide which positions a non-zero traversal yields.
func IsNonZero(v Value) bool {
	return v.ToNumber() != 0
}
