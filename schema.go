package jsoncontract

import "math"

type schemaKind uint8

const (
	objectSchema schemaKind = iota
	trueSchema
	falseSchema
	invalidSchema
)

// typeSet is a bitset of JSON Schema type names.
type typeSet uint8

const (
	nullType typeSet = 1 << iota
	booleanType
	integerType
	numberType
	stringType
	arrayType
	objectType
)

func parseTypeName(name string) (typeSet, bool) {
	switch name {
	case "null":
		return nullType, true
	case "boolean":
		return booleanType, true
	case "integer":
		return integerType, true
	case "number":
		return numberType, true
	case "string":
		return stringType, true
	case "array":
		return arrayType, true
	case "object":
		return objectType, true
	default:
		return 0, false
	}
}

func (t typeSet) has(o typeSet) bool {
	return t&o != 0
}

// match reports whether value satisfies any type of the set.
func (t typeSet) match(v Value) bool {
	switch v.Kind() {
	case Null:
		return t.has(nullType)
	case Bool:
		return t.has(booleanType)
	case Int:
		return t.has(integerType | numberType)
	case Float:
		return t.has(numberType) && v.IsFinite()
	case String:
		return t.has(stringType)
	case Array:
		return t.has(arrayType)
	case Object:
		return t.has(objectType)
	default:
		return false
	}
}

// limit is an integer keyword payload.
type limit struct {
	set bool
	n   int64
}

func (l limit) below(n int) bool {
	return l.set && int64(n) < l.n
}

func (l limit) above(n int) bool {
	return l.set && int64(n) > l.n
}

func parseLimit(v Value, ok bool) limit {
	if !ok || v.Kind() != Int {
		return limit{}
	}
	i := v.Int()
	switch {
	case i.IsInt64():
		return limit{set: true, n: i.Int64()}
	case i.Sign() > 0:
		return limit{set: true, n: math.MaxInt64}
	default:
		return limit{set: true, n: math.MinInt64}
	}
}

type property struct {
	Name   string
	Schema *Schema
}

// Schema is a compiled schema node.
//
// Schema is immutable and safe for concurrent use.
type Schema struct {
	kind schemaKind
	// Kind of the offending node, for invalidSchema.
	nodeKind Kind

	hasType  bool
	types    typeSet
	typeDesc string // Expected type as it should be reported.

	hasConst bool
	constant Value
	hasEnum  bool
	enum     []Value
	enumDesc string

	// String validators.
	minLength limit

	// Array validators.
	minItems limit
	maxItems limit
	items    *Schema

	// Number validators.
	minimum *Value
	maximum *Value

	// Object validators.
	required []string
	// Set when "properties" is absent or has a valid shape.
	checkProperties bool
	properties      []property
	propertyIndex   map[string]*Schema
	noAdditional    bool

	// Schema composition.
	allOf      []*Schema
	ifSchema   *Schema
	thenSchema *Schema
}

// AlwaysValid reports whether schema is boolean true literal.
func (s *Schema) AlwaysValid() bool {
	return s.kind == trueSchema
}

// NeverValid reports whether schema is boolean false literal.
func (s *Schema) NeverValid() bool {
	return s.kind == falseSchema
}

func (s *Schema) property(name string) (*Schema, bool) {
	sch, ok := s.propertyIndex[name]
	return sch, ok
}

func numberLimit(v Value, ok bool) *Value {
	if !ok || !v.IsNumber() {
		return nil
	}
	return &v
}
