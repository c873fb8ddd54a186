package jsoncontract

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// Kind is the variant tag of a Value.
type Kind uint8

const (
	Null Kind = iota
	Bool
	Int
	Float
	String
	Array
	Object
)

// String returns JSON Schema type name of kind.
//
// Int is reported as integer and Float as number.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Int:
		return "integer"
	case Float:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Member is a key-value pair of Object.
type Member struct {
	Key   string
	Value Value
}

// Value is an immutable JSON value.
//
// The zero value is JSON null.
type Value struct {
	kind Kind

	b   bool
	i   *big.Int
	f   float64
	lit string // Number literal as it appeared in the source, if any.
	s   string
	arr []Value
	obj []Member
}

// NullValue returns JSON null.
func NullValue() Value {
	return Value{kind: Null}
}

// BoolValue creates boolean Value.
func BoolValue(v bool) Value {
	return Value{kind: Bool, b: v}
}

// IntValue creates integer Value. The value is copied.
func IntValue(v *big.Int) Value {
	return Value{kind: Int, i: new(big.Int).Set(v)}
}

// Int64Value creates integer Value.
func Int64Value(v int64) Value {
	return Value{kind: Int, i: big.NewInt(v)}
}

// FloatValue creates number Value.
func FloatValue(v float64) Value {
	return Value{kind: Float, f: v}
}

// StringValue creates string Value.
func StringValue(v string) Value {
	return Value{kind: String, s: v}
}

// ArrayValue creates array Value from given elements.
func ArrayValue(elems ...Value) Value {
	return Value{kind: Array, arr: append([]Value(nil), elems...)}
}

// ObjectValue creates object Value from given members.
//
// If key is repeated, the first position is kept and the last value wins.
func ObjectValue(members ...Member) Value {
	obj := make([]Member, 0, len(members))
	for _, m := range members {
		obj = setMember(obj, m.Key, m.Value)
	}
	return Value{kind: Object, obj: obj}
}

func setMember(obj []Member, key string, val Value) []Member {
	for i := range obj {
		if obj[i].Key == key {
			obj[i].Value = val
			return obj
		}
	}
	return append(obj, Member{Key: key, Value: val})
}

// Kind returns variant of value.
func (v Value) Kind() Kind {
	return v.kind
}

// Bool returns boolean value. Result is meaningful only for Bool.
func (v Value) Bool() bool {
	return v.b
}

// Int returns a copy of integer value, or nil if v is not Int.
func (v Value) Int() *big.Int {
	if v.kind != Int {
		return nil
	}
	return new(big.Int).Set(v.i)
}

// Float returns float value. Int values are converted.
func (v Value) Float() float64 {
	switch v.kind {
	case Int:
		f, _ := new(big.Float).SetInt(v.i).Float64()
		return f
	case Float:
		return v.f
	default:
		return 0
	}
}

// Str returns string value. Result is meaningful only for String.
func (v Value) Str() string {
	return v.s
}

// Len returns length of string (in code points), array or object.
func (v Value) Len() int {
	switch v.kind {
	case String:
		return runeCount(v.s)
	case Array:
		return len(v.arr)
	case Object:
		return len(v.obj)
	default:
		return 0
	}
}

// Elems returns array elements. Returned slice must not be modified.
func (v Value) Elems() []Value {
	return v.arr
}

// Members returns object members in insertion order. Returned slice must not be modified.
func (v Value) Members() []Member {
	return v.obj
}

// Get returns object member value by key.
func (v Value) Get(key string) (Value, bool) {
	for _, m := range v.obj {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Has reports whether object has member with given key.
func (v Value) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// IsNumber reports whether value is Int or Float.
//
// Bool is never a number.
func (v Value) IsNumber() bool {
	return v.kind == Int || v.kind == Float
}

// IsFinite reports whether value is Int or finite Float.
func (v Value) IsFinite() bool {
	switch v.kind {
	case Int:
		return true
	case Float:
		return !math.IsInf(v.f, 0) && !math.IsNaN(v.f)
	default:
		return false
	}
}

func (v Value) rat() *big.Rat {
	switch v.kind {
	case Int:
		return new(big.Rat).SetInt(v.i)
	case Float:
		return new(big.Rat).SetFloat64(v.f)
	default:
		return nil
	}
}

// compareNumbers compares two numeric values.
//
// Returns ok = false if values are incomparable (NaN or non-number).
func compareNumbers(a, b Value) (cmp int, ok bool) {
	if !a.IsNumber() || !b.IsNumber() {
		return 0, false
	}
	if a.IsFinite() && b.IsFinite() {
		return a.rat().Cmp(b.rat()), true
	}
	x, y := a.Float(), b.Float()
	switch {
	case math.IsNaN(x) || math.IsNaN(y):
		return 0, false
	case x < y:
		return -1, true
	case x > y:
		return 1, true
	default:
		return 0, true
	}
}

// Equal reports whether a and b are deeply equal JSON values.
//
// Numbers are compared by value, so 1 and 1.0 are equal. Booleans never equal numbers.
// Objects are compared regardless of member order.
func Equal(a, b Value) bool {
	if a.IsNumber() && b.IsNumber() {
		cmp, ok := compareNumbers(a, b)
		return ok && cmp == 0
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case Null:
		return true
	case Bool:
		return a.b == b.b
	case String:
		return a.s == b.s
	case Array:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(a.obj) != len(b.obj) {
			return false
		}
		for _, m := range a.obj {
			other, ok := b.Get(m.Key)
			if !ok || !Equal(m.Value, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// numberText returns textual representation of numeric value.
func (v Value) numberText() string {
	if v.lit != "" {
		return v.lit
	}
	switch v.kind {
	case Int:
		return v.i.String()
	case Float:
		switch {
		case math.IsNaN(v.f):
			return "NaN"
		case math.IsInf(v.f, 1):
			return "Infinity"
		case math.IsInf(v.f, -1):
			return "-Infinity"
		}
		s := strconv.FormatFloat(v.f, 'g', -1, 64)
		if s == strconv.FormatInt(int64(v.f), 10) {
			// Keep float-ness visible.
			s += ".0"
		}
		return s
	default:
		return ""
	}
}

// String implements fmt.Stringer, returning compact JSON.
func (v Value) String() string {
	return string(v.JSON())
}
