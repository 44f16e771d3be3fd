package value

import (
	"fmt"
	"strconv"
	"strings"
)

type Kind int

const (
	KindUndefined Kind = iota
	KindInt
	KindFloat
	KindBool
	KindChar
	KindArray
)

// String returns the type name used in diagnostics
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindBool:
		return "Bool"
	case KindChar:
		return "Char"
	case KindArray:
		return "Array"
	default:
		return "Undefined"
	}
}

// Value represents a dynamically-typed value. Arrays are owned by the value
// holding them and are deep-copied whenever a value is read or stored.
type Value struct {
	Kind  Kind
	Int   int32
	Float float32
	Bool  bool
	Char  rune
	Array []Value
}

// Undefined is the explicit "no value" sentinel
var Undefined = Value{Kind: KindUndefined}

// NewInt creates a new integer Value.
func NewInt(i int32) Value {
	return Value{Kind: KindInt, Int: i}
}

// NewFloat creates a new float Value.
func NewFloat(f float32) Value {
	return Value{Kind: KindFloat, Float: f}
}

// NewBool creates a new boolean Value.
func NewBool(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// NewChar creates a new character Value.
func NewChar(c rune) Value {
	return Value{Kind: KindChar, Char: c}
}

// NewArray creates a new array Value from copies of elems.
func NewArray(elems ...Value) Value {
	arr := make([]Value, len(elems))
	for i, e := range elems {
		arr[i] = e.Clone()
	}

	return Value{Kind: KindArray, Array: arr}
}

// Clone returns a deep copy of the value
func (v Value) Clone() Value {
	if v.Kind != KindArray {
		return v
	}

	return NewArray(v.Array...)
}

// IsNumeric reports whether the value is an Int or a Float
func (v Value) IsNumeric() bool {
	return v.Kind == KindInt || v.Kind == KindFloat
}

// AsFloat32 converts a numeric value to float32.
func (v Value) AsFloat32() (float32, error) {
	switch v.Kind {
	case KindFloat:
		return v.Float, nil
	case KindInt:
		return float32(v.Int), nil
	default:
		return 0, fmt.Errorf("cannot convert %v to float", v.Kind)
	}
}

// String renders the value the way Say prints it.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(int64(v.Int), 10)
	case KindFloat:
		return strconv.FormatFloat(float64(v.Float), 'f', -1, 32)
	case KindBool:
		if v.Bool {
			return "TRUE"
		}
		return "FALSE"
	case KindChar:
		return string(v.Char)
	case KindArray:
		parts := make([]string, len(v.Array))
		for i, e := range v.Array {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return "UNDEFINED"
	}
}

// GoString renders the value with its kind, e.g. Int(3)
func (v Value) GoString() string {
	switch v.Kind {
	case KindUndefined:
		return "Undefined"
	case KindChar:
		return fmt.Sprintf("Char(%q)", v.Char)
	case KindArray:
		parts := make([]string, len(v.Array))
		for i, e := range v.Array {
			parts[i] = e.GoString()
		}
		return "Array([" + strings.Join(parts, ", ") + "])"
	default:
		return fmt.Sprintf("%s(%s)", v.Kind, v.String())
	}
}

// Equal compares two values. Ints and floats compare numerically, arrays
// compare element-wise, and any other kind mismatch is simply unequal.
func Equal(a, b Value) bool {
	if a.IsNumeric() && b.IsNumeric() {
		if a.Kind == KindInt && b.Kind == KindInt {
			return a.Int == b.Int
		}

		af, _ := a.AsFloat32()
		bf, _ := b.AsFloat32()
		return af == bf
	}

	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case KindBool:
		return a.Bool == b.Bool
	case KindChar:
		return a.Char == b.Char
	case KindArray:
		if len(a.Array) != len(b.Array) {
			return false
		}
		for i := range a.Array {
			if !Equal(a.Array[i], b.Array[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// FromConstant resolves a language constant name
func FromConstant(name string) (Value, bool) {
	switch name {
	case "TRUE":
		return NewBool(true), true
	case "FALSE":
		return NewBool(false), true
	case "UNDEFINED":
		return Undefined, true
	case "ARRAY":
		return NewArray(), true
	default:
		return Value{}, false
	}
}
