package tree

import (
	"math"
	"strconv"
)

// Value is a primitive leaf value: null, bool, number or string.
//
// Numbers are placed under Int64 when they are integers fitting in 64 bits,
// under Float64 when they are floating point, and under Number as a decimal
// literal when neither can represent them exactly.
type Value struct {
	Type Type

	Bool    bool
	String  string
	Number  string
	Int64   *int64
	Float64 *float64
}

func Null() Value {
	return Value{Type: NullType}
}

func FromBool(v bool) Value {
	return Value{Type: BoolType, Bool: v}
}

func FromInt(v int64) Value {
	return Value{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) Value {
	return Value{Type: NumberType, Float64: &f}
}

// FromNumber holds an integer literal too large for int64.
func FromNumber(lit string) Value {
	return Value{Type: NumberType, Number: lit}
}

func FromString(v string) Value {
	return Value{Type: StringType, String: v}
}

func (v Value) IsNull() bool { return v.Type == NullType }

func (v Value) IsInt() bool { return v.Type == NumberType && v.Int64 != nil }

func (v Value) IsFloat() bool { return v.Type == NumberType && v.Float64 != nil }

func (v Value) Equal(o Value) bool {
	if v.Type != o.Type {
		return false
	}
	switch v.Type {
	case BoolType:
		return v.Bool == o.Bool
	case StringType:
		return v.String == o.String
	case NumberType:
		switch {
		case v.IsInt():
			return o.IsInt() && *v.Int64 == *o.Int64
		case v.IsFloat():
			return o.IsFloat() && *v.Float64 == *o.Float64
		default:
			return !o.IsInt() && !o.IsFloat() && v.Number == o.Number
		}
	}
	return true
}

// Literal renders v for diagnostics. Strings are Go-quoted.
func (v Value) Literal() string {
	switch v.Type {
	case BoolType:
		return strconv.FormatBool(v.Bool)
	case StringType:
		return strconv.Quote(v.String)
	case NumberType:
		switch {
		case v.IsInt():
			return strconv.FormatInt(*v.Int64, 10)
		case v.IsFloat():
			return FormatFloat(*v.Float64)
		default:
			return v.Number
		}
	}
	return "null"
}

// FormatFloat formats f with the shortest representation that round trips,
// switching to exponent notation outside [1e-4, 1e16). Integral values keep
// a trailing ".0" so they do not read back as integers.
func FormatFloat(f float64) string {
	if f == 0 {
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}
	abs := math.Abs(f)
	if abs < 1e-4 || abs >= 1e16 {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return s
		}
	}
	return s + ".0"
}
