package validator

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ValueType identifies which kind of input a Value carries.
type ValueType uint8

const (
	TypeNull ValueType = iota
	TypeString
	TypeInt
	TypeFloat
	TypeBool
	// TypeOther marks non-scalar input (slices, maps, structs, pointers...).
	TypeOther
)

func (t ValueType) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeBool:
		return "bool"
	default:
		return "other"
	}
}

// Value is the input accepted by every validator in this package.
// It is a closed union of scalar kinds; anything else is carried as TypeOther
// and rejected by the validators' type gates before any further evaluation.
type Value struct {
	typ ValueType
	s   string
	i   int64
	f   float64
	b   bool
}

func String(s string) Value { return Value{typ: TypeString, s: s} }

func Int(i int64) Value { return Value{typ: TypeInt, i: i} }

func Float(f float64) Value { return Value{typ: TypeFloat, f: f} }

func Bool(b bool) Value { return Value{typ: TypeBool, b: b} }

func Null() Value { return Value{typ: TypeNull} }

// ValueOf converts an arbitrary Go value into a Value.
// Integer kinds become TypeInt (unsigned values above math.MaxInt64 become TypeFloat),
// json.Number is resolved to an int or float, and every non-scalar is TypeOther.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case string:
		return String(x)
	case bool:
		return Bool(x)
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return fromUint(uint64(x))
	case uint8:
		return Int(int64(x))
	case uint16:
		return Int(int64(x))
	case uint32:
		return Int(int64(x))
	case uint64:
		return fromUint(x)
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return Int(i)
		}
		if f, err := x.Float64(); err == nil {
			return Float(f)
		}
		return String(x.String())
	default:
		return Value{typ: TypeOther}
	}
}

func fromUint(u uint64) Value {
	if u > math.MaxInt64 {
		return Float(float64(u))
	}
	return Int(int64(u))
}

func (v Value) Type() ValueType { return v.typ }

// IsScalar reports whether the value is a string, int, float or bool.
func (v Value) IsScalar() bool {
	switch v.typ {
	case TypeString, TypeInt, TypeFloat, TypeBool:
		return true
	default:
		return false
	}
}

// IsStringOrInt reports whether the value is a string or an int.
func (v Value) IsStringOrInt() bool {
	return v.typ == TypeString || v.typ == TypeInt
}

// String returns the canonical string form used for pattern matching:
// true is "1", false and null are "", floats use the shortest decimal form.
func (v Value) String() string {
	switch v.typ {
	case TypeString:
		return v.s
	case TypeInt:
		return strconv.FormatInt(v.i, 10)
	case TypeFloat:
		return formatFloat(v.f)
	case TypeBool:
		if v.b {
			return "1"
		}
		return ""
	default:
		return ""
	}
}

// IsEmpty follows the loose emptiness rule of form input: null, "", "0",
// zero numbers and false are empty.
func (v Value) IsEmpty() bool {
	switch v.typ {
	case TypeNull:
		return true
	case TypeString:
		return v.s == "" || v.s == "0"
	case TypeInt:
		return v.i == 0
	case TypeFloat:
		return v.f == 0
	case TypeBool:
		return !v.b
	default:
		return false
	}
}

// Any returns the underlying Go value (nil for null and non-scalar values).
func (v Value) Any() any {
	switch v.typ {
	case TypeString:
		return v.s
	case TypeInt:
		return v.i
	case TypeFloat:
		return v.f
	case TypeBool:
		return v.b
	default:
		return nil
	}
}

// numericString is the decimal notation accepted as a number in loose
// comparisons. Hex, NaN and infinity spellings are not numbers here.
var numericString = regexp.MustCompile(`^\s*[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?\s*$`)

// number returns the finite numeric interpretation of the value, if there is one.
// Strings qualify only when they are written in decimal notation.
func (v Value) number() (float64, bool) {
	var f float64
	switch v.typ {
	case TypeInt:
		return float64(v.i), true
	case TypeFloat:
		f = v.f
	case TypeString:
		if !numericString.MatchString(v.s) {
			return 0, false
		}
		var err error
		if f, err = strconv.ParseFloat(strings.TrimSpace(v.s), 64); err != nil {
			return 0, false
		}
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func formatFloat(f float64) string {
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
