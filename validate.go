package jsoncontract

import (
	"sort"
	"strconv"
)

// Root is the path of the document root.
const Root = "$"

func keyPath(path, key string) string {
	return path + "." + key
}

func indexPath(path string, idx int) string {
	return path + "[" + strconv.Itoa(idx) + "]"
}

// Validate validates instance against schema, reporting paths relative to Root.
//
// Returned slice is empty if instance conforms to schema.
func (s *Schema) Validate(instance Value) []ValidationError {
	return s.ValidateAt(instance, Root)
}

// ValidateAt validates instance located at given path.
func (s *Schema) ValidateAt(instance Value, path string) []ValidationError {
	return s.validate(instance, path)
}

func (s *Schema) validate(v Value, path string) []ValidationError {
	switch s.kind {
	case trueSchema:
		return nil
	case falseSchema:
		return []ValidationError{
			newError(NotAllowed, path, "value is not allowed by schema"),
		}
	case invalidSchema:
		return []ValidationError{
			newError(StructuralError, path, "invalid schema node type %s", s.nodeKind),
		}
	}

	// Other keywords assume the type, so mismatch stops here.
	if s.hasType && !s.types.match(v) {
		return []ValidationError{
			newError(TypeMismatch, path, "expected %s, got %s", s.typeDesc, v.Kind()),
		}
	}

	var errs []ValidationError
	if s.hasConst && !Equal(v, s.constant) {
		errs = append(errs, newError(ValueMismatch, path, "expected constant value %s", s.constant))
	}
	if s.hasEnum && !s.inEnum(v) {
		errs = append(errs, newError(ValueMismatch, path, "expected one of %s", s.enumDesc))
	}

	switch v.Kind() {
	case Null, Bool:
	case String:
		errs = s.validateString(errs, v, path)
	case Int, Float:
		errs = s.validateNumber(errs, v, path)
	case Array:
		errs = s.validateArray(errs, v, path)
	case Object:
		errs = s.validateObject(errs, v, path)
	}

	for _, sch := range s.allOf {
		errs = append(errs, sch.validate(v, path)...)
	}

	if s.ifSchema != nil && s.thenSchema != nil {
		// Errors of the condition are never reported.
		if len(s.ifSchema.validate(v, path)) == 0 {
			errs = append(errs, s.thenSchema.validate(v, path)...)
		}
	}

	return errs
}

func (s *Schema) inEnum(v Value) bool {
	for _, variant := range s.enum {
		if Equal(variant, v) {
			return true
		}
	}
	return false
}

func (s *Schema) validateString(errs []ValidationError, v Value, path string) []ValidationError {
	if s.minLength.below(v.Len()) {
		errs = append(errs, newError(BoundsViolation, path, "string length must be >= %d", s.minLength.n))
	}
	return errs
}

func (s *Schema) validateNumber(errs []ValidationError, v Value, path string) []ValidationError {
	if s.minimum != nil {
		if cmp, ok := compareNumbers(v, *s.minimum); ok && cmp < 0 {
			errs = append(errs, newError(BoundsViolation, path, "number must be >= %s", *s.minimum))
		}
	}
	if s.maximum != nil {
		if cmp, ok := compareNumbers(v, *s.maximum); ok && cmp > 0 {
			errs = append(errs, newError(BoundsViolation, path, "number must be <= %s", *s.maximum))
		}
	}
	return errs
}

func (s *Schema) validateArray(errs []ValidationError, v Value, path string) []ValidationError {
	n := v.Len()
	if s.minItems.below(n) {
		errs = append(errs, newError(BoundsViolation, path, "array length must be >= %d", s.minItems.n))
	}
	if s.maxItems.above(n) {
		errs = append(errs, newError(BoundsViolation, path, "array length must be <= %d", s.maxItems.n))
	}
	if s.items != nil {
		for i, elem := range v.Elems() {
			errs = append(errs, s.items.validate(elem, indexPath(path, i))...)
		}
	}
	return errs
}

func (s *Schema) validateObject(errs []ValidationError, v Value, path string) []ValidationError {
	for _, key := range s.required {
		if !v.Has(key) {
			errs = append(errs, newError(MissingRequiredKey, path, "missing required key %s", StringValue(key)))
		}
	}

	if !s.checkProperties {
		return errs
	}

	var extra []string
	for _, m := range v.Members() {
		prop, ok := s.property(m.Key)
		if !ok {
			extra = append(extra, m.Key)
			continue
		}
		errs = append(errs, prop.validate(m.Value, keyPath(path, m.Key))...)
	}

	if s.noAdditional {
		sort.Strings(extra)
		for _, key := range extra {
			errs = append(errs, newError(DisallowedProperty, path, "additional property %s is not allowed", StringValue(key)))
		}
	}
	return errs
}
