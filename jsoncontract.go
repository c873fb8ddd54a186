// Package jsoncontract implements a validator for a small subset of JSON Schema
// used to check workflow contract documents.
//
// Supported keywords are type, const, enum, minLength, minItems, maxItems, items,
// minimum, maximum, required, properties, additionalProperties (false only), allOf
// and if/then. Any other keyword is ignored.
package jsoncontract

import "github.com/go-faster/errors"

// Parse parses given JSON and compiles schema.
func Parse(data []byte) (*Schema, error) {
	doc, err := DecodeJSON(data)
	if err != nil {
		return nil, errors.Wrap(err, "decode schema")
	}
	return Compile(doc), nil
}

// ValidateJSON decodes given JSON and validates it against schema.
//
// Returned error is non-nil only if data is not a valid JSON.
func ValidateJSON(s *Schema, data []byte) ([]ValidationError, error) {
	v, err := DecodeJSON(data)
	if err != nil {
		return nil, errors.Wrap(err, "decode instance")
	}
	return s.Validate(v), nil
}

// Check validates instance against schema and builds a Report naming both documents.
func Check(s *Schema, instance Value, schemaName, instanceName string) Report {
	return Report{
		Schema:   schemaName,
		Instance: instanceName,
		Errors:   s.Validate(instance),
	}
}
