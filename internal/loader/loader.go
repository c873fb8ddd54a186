// Package loader reads JSON and YAML documents from files.
package loader

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-faster/errors"

	"github.com/tdakkota/jsoncontract"
	"github.com/tdakkota/jsoncontract/yamlvalue"
)

// NotFoundError is returned when document file does not exist.
type NotFoundError struct {
	Path string
}

// Error implements error.
func (e *NotFoundError) Error() string {
	return "file not found: " + e.Path
}

// SyntaxError is returned when document cannot be decoded.
type SyntaxError struct {
	Path string
	Err  error
}

// Error implements error.
func (e *SyntaxError) Error() string {
	return "invalid document " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns underlying decoding error.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Format is a document encoding.
type Format int

const (
	JSON Format = iota
	YAML
)

// DetectFormat selects format by file extension. Anything but .yaml and .yml is JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return JSON
	}
}

// Decode decodes document data using given format.
func Decode(data []byte, format Format) (jsoncontract.Value, error) {
	if format == YAML {
		return yamlvalue.Decode(data)
	}
	return jsoncontract.DecodeJSON(data)
}

// Load reads and decodes document at path.
func Load(path string) (jsoncontract.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return jsoncontract.Value{}, &NotFoundError{Path: path}
		}
		return jsoncontract.Value{}, errors.Wrapf(err, "read %q", path)
	}

	v, err := Decode(data, DetectFormat(path))
	if err != nil {
		return jsoncontract.Value{}, &SyntaxError{Path: path, Err: err}
	}
	return v, nil
}

// LoadSchema reads document at path and compiles it.
func LoadSchema(path string) (*jsoncontract.Schema, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}
	return jsoncontract.Compile(doc), nil
}
