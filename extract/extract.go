// Package extract finds a JSON object embedded in free-form text, such as
// model output wrapped in prose or markdown fences.
package extract

import (
	"regexp"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"

	"github.com/tdakkota/jsoncontract"
)

// ErrNotFound is returned when text contains no JSON object.
var ErrNotFound = errors.New("no JSON object found")

// Strategy is a way the object was found.
type Strategy int

const (
	// Whole means the entire text is a JSON object.
	Whole Strategy = iota
	// Fenced means the object is the body of a fenced code block.
	Fenced
	// Scan means the object was decoded starting at some '{' in the text.
	Scan
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Whole:
		return "whole"
	case Fenced:
		return "fenced"
	case Scan:
		return "scan"
	default:
		return "unknown"
	}
}

// Match is a found object.
type Match struct {
	Value    jsoncontract.Value
	Strategy Strategy
	// Offset is the byte offset of the object in the text, for Scan.
	Offset int
}

var fencedBlock = regexp.MustCompile("(?is)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// Extract returns the first JSON object found in text.
func Extract(text string) (jsoncontract.Value, error) {
	m, err := Find(text)
	if err != nil {
		return jsoncontract.Value{}, err
	}
	return m.Value, nil
}

// Find looks for JSON object in text, trying in order: the whole text, bodies
// of fenced code blocks, and a left-to-right scan decoding from every '{'.
//
// Only objects are accepted, arrays and scalars are skipped.
func Find(text string) (Match, error) {
	if v, ok := decodeObject(text); ok {
		return Match{Value: v, Strategy: Whole}, nil
	}

	for _, block := range fencedBlock.FindAllStringSubmatch(text, -1) {
		if v, ok := decodeObject(block[1]); ok {
			return Match{Value: v, Strategy: Fenced}, nil
		}
	}

	data := []byte(text)
	d := jx.GetDecoder()
	defer jx.PutDecoder(d)
	for idx, c := range data {
		if c != '{' {
			continue
		}
		// Trailing text after the object is fine here.
		d.ResetBytes(data[idx:])
		v, err := jsoncontract.DecodeValue(d)
		if err != nil || v.Kind() != jsoncontract.Object {
			continue
		}
		return Match{Value: v, Strategy: Scan, Offset: idx}, nil
	}

	return Match{}, ErrNotFound
}

// decodeObject decodes candidate as a single JSON object.
func decodeObject(candidate string) (jsoncontract.Value, bool) {
	text := strings.TrimSpace(candidate)
	if text == "" {
		return jsoncontract.Value{}, false
	}
	v, err := jsoncontract.DecodeJSON([]byte(text))
	if err != nil || v.Kind() != jsoncontract.Object {
		return jsoncontract.Value{}, false
	}
	return v, true
}
