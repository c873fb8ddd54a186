package jsoncontract

import (
	"fmt"
	"io"
	"strings"
)

// ErrorKind classifies ValidationError.
type ErrorKind uint8

const (
	// NotAllowed is reported for boolean false schema.
	NotAllowed ErrorKind = iota
	// StructuralError is reported for schema node which is neither boolean nor object.
	StructuralError
	TypeMismatch
	// ValueMismatch is reported by const and enum.
	ValueMismatch
	// BoundsViolation is reported by length, item count and numeric bounds.
	BoundsViolation
	MissingRequiredKey
	DisallowedProperty
)

// String implements fmt.Stringer.
func (k ErrorKind) String() string {
	switch k {
	case NotAllowed:
		return "NotAllowed"
	case StructuralError:
		return "StructuralError"
	case TypeMismatch:
		return "TypeMismatch"
	case ValueMismatch:
		return "ValueMismatch"
	case BoundsViolation:
		return "BoundsViolation"
	case MissingRequiredKey:
		return "MissingRequiredKey"
	case DisallowedProperty:
		return "DisallowedProperty"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// ValidationError describes single failed constraint.
type ValidationError struct {
	Kind ErrorKind
	// Path locates the instance value, e.g. $.users[2].name.
	Path    string
	Message string
}

// Error implements error.
func (e ValidationError) Error() string {
	return e.Path + ": " + e.Message
}

func newError(kind ErrorKind, path, format string, args ...interface{}) ValidationError {
	return ValidationError{
		Kind:    kind,
		Path:    path,
		Message: fmt.Sprintf(format, args...),
	}
}

// Report is a result of validating one instance document against one schema document.
type Report struct {
	// Schema and Instance name the validated documents, usually file paths.
	Schema   string
	Instance string
	Errors   []ValidationError
}

// Valid reports whether no violations were found.
func (r Report) Valid() bool {
	return len(r.Errors) == 0
}

// Lines returns formatted errors in reported order.
func (r Report) Lines() []string {
	lines := make([]string, 0, len(r.Errors))
	for _, err := range r.Errors {
		lines = append(lines, err.Error())
	}
	return lines
}

// String returns rendered report. Empty string is returned for valid report.
func (r Report) String() string {
	if r.Valid() {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Schema validation failed for %s against %s:\n", r.Instance, r.Schema)
	for _, line := range r.Lines() {
		b.WriteString("- ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteTo writes rendered report to w.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String())
	return int64(n), err
}
