package jsoncontract

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func testInstances() []Value {
	return []Value{
		NullValue(),
		BoolValue(false),
		BoolValue(true),
		Int64Value(0),
		Int64Value(-7),
		FloatValue(2.5),
		FloatValue(math.Inf(1)),
		FloatValue(math.NaN()),
		StringValue(""),
		StringValue("text"),
		ArrayValue(),
		ArrayValue(Int64Value(1), StringValue("a")),
		ObjectValue(),
		ObjectValue(Member{Key: "a", Value: ArrayValue(NullValue())}),
	}
}

func mustParse(t *testing.T, schema string) *Schema {
	t.Helper()
	s, err := Parse([]byte(schema))
	require.NoError(t, err)
	return s
}

func TestBooleanSchemas(t *testing.T) {
	always := Compile(BoolValue(true))
	never := Compile(BoolValue(false))
	require.True(t, always.AlwaysValid())
	require.True(t, never.NeverValid())

	for i, v := range testInstances() {
		v := v
		t.Run(fmt.Sprintf("Test%d", i+1), func(t *testing.T) {
			a := require.New(t)
			a.Empty(always.Validate(v))

			errs := never.Validate(v)
			a.Len(errs, 1)
			a.Equal(Root, errs[0].Path)
			a.Equal(NotAllowed, errs[0].Kind)
		})
	}
}

func TestBooleanIsNotNumber(t *testing.T) {
	for i, schema := range []string{
		`{"type":"integer"}`,
		`{"type":"number"}`,
		`{"type":["integer","number"]}`,
	} {
		schema := schema
		t.Run(fmt.Sprintf("Test%d", i+1), func(t *testing.T) {
			a := require.New(t)
			s := mustParse(t, schema)
			for _, b := range []bool{true, false} {
				errs := s.Validate(BoolValue(b))
				a.Len(errs, 1)
				a.Equal(TypeMismatch, errs[0].Kind)
			}
		})
	}

	t.Run("Bounds", func(t *testing.T) {
		a := require.New(t)
		s := mustParse(t, `{"minimum":5,"maximum":-5}`)
		a.Empty(s.Validate(BoolValue(true)))
		a.Empty(s.Validate(BoolValue(false)))
	})
}

func TestNonFiniteIsNotNumber(t *testing.T) {
	a := require.New(t)
	s := mustParse(t, `{"type":"number"}`)

	for _, f := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		errs := s.Validate(FloatValue(f))
		a.Len(errs, 1)
		a.Equal(TypeMismatch, errs[0].Kind)
	}
	a.Empty(s.Validate(FloatValue(math.MaxFloat64)))
}

func TestNonFiniteBounds(t *testing.T) {
	a := require.New(t)
	s := mustParse(t, `{"minimum":0,"maximum":10}`)

	a.Equal([]ValidationError{
		{Kind: BoundsViolation, Path: Root, Message: "number must be <= 10"},
	}, s.Validate(FloatValue(math.Inf(1))))
	a.Equal([]ValidationError{
		{Kind: BoundsViolation, Path: Root, Message: "number must be >= 0"},
	}, s.Validate(FloatValue(math.Inf(-1))))
	// NaN is never compared.
	a.Empty(s.Validate(FloatValue(math.NaN())))
}

func TestValidateAt(t *testing.T) {
	a := require.New(t)
	s := mustParse(t, `{"items":{"type":"string"}}`)

	errs := s.ValidateAt(ArrayValue(StringValue("a"), Int64Value(1)), "$.list")
	a.Equal([]ValidationError{
		{Kind: TypeMismatch, Path: "$.list[1]", Message: "expected string, got integer"},
	}, errs)
}

func TestErrorKinds(t *testing.T) {
	s := mustParse(t, `{
		"type": "object",
		"required": ["id"],
		"properties": {
			"name": {"type": "string"},
			"tags": {"maxItems": 1},
			"mode": {"enum": ["fast", "slow"]},
			"raw": 0
		},
		"additionalProperties": false
	}`)

	instance, err := DecodeJSON([]byte(`{
		"name": 1,
		"tags": ["a", "b"],
		"mode": "medium",
		"raw": null,
		"extra": true
	}`))
	require.NoError(t, err)

	var kinds []ErrorKind
	for _, e := range s.Validate(instance) {
		kinds = append(kinds, e.Kind)
	}
	require.Equal(t, []ErrorKind{
		MissingRequiredKey,
		TypeMismatch,
		BoundsViolation,
		ValueMismatch,
		StructuralError,
		DisallowedProperty,
	}, kinds)
}

func TestValidateIdempotent(t *testing.T) {
	a := require.New(t)
	s := mustParse(t, `{
		"allOf": [{"type": "object"}, {"required": ["a", "b"]}],
		"properties": {"a": {"items": {"minimum": 1}}},
		"if": {"required": ["a"]},
		"then": {"properties": {"a": {"minItems": 4}}}
	}`)
	instance, err := DecodeJSON([]byte(`{"a":[0,1,-1]}`))
	a.NoError(err)

	first := s.Validate(instance)
	a.NotEmpty(first)
	for i := 0; i < 10; i++ {
		a.Equal(first, s.Validate(instance))
	}
}

func TestErrorKindString(t *testing.T) {
	a := require.New(t)
	a.Equal("StructuralError", StructuralError.String())
	a.Equal("DisallowedProperty", DisallowedProperty.String())
	a.Equal("ErrorKind(200)", ErrorKind(200).String())
}
