package jsoncontract

import (
	"bytes"
	"io"
	"math/big"
	"strconv"
	"unicode/utf8"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// DecodeJSON decodes single JSON document.
//
// Trailing data after the document is an error.
func DecodeJSON(data []byte) (Value, error) {
	d := jx.GetDecoder()
	defer jx.PutDecoder(d)

	d.ResetBytes(data)
	v, err := DecodeValue(d)
	if err != nil {
		return Value{}, errors.Wrap(err, "invalid json")
	}
	// Only whitespace may follow the document.
	if err := d.Skip(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected trailing data")
		}
		return Value{}, errors.Wrap(err, "invalid json")
	}
	return v, nil
}

// DecodeValue decodes next JSON value from d.
//
// Data after the value is left for the caller.
func DecodeValue(d *jx.Decoder) (Value, error) {
	switch tt := d.Next(); tt {
	case jx.Null:
		if err := d.Null(); err != nil {
			return Value{}, err
		}
		return NullValue(), nil
	case jx.Bool:
		v, err := d.Bool()
		if err != nil {
			return Value{}, err
		}
		return BoolValue(v), nil
	case jx.Number:
		n, err := d.Num()
		if err != nil {
			return Value{}, err
		}
		return parseNumber(n)
	case jx.String:
		v, err := d.Str()
		if err != nil {
			return Value{}, err
		}
		if !utf8.ValidString(v) {
			return Value{}, errors.Errorf("invalid UTF-8 in string %q", v)
		}
		return StringValue(v), nil
	case jx.Array:
		var elems []Value
		if err := d.Arr(func(d *jx.Decoder) error {
			v, err := DecodeValue(d)
			if err != nil {
				return errors.Wrapf(err, "[%d]", len(elems))
			}
			elems = append(elems, v)
			return nil
		}); err != nil {
			return Value{}, err
		}
		return Value{kind: Array, arr: elems}, nil
	case jx.Object:
		var obj []Member
		if err := d.Obj(func(d *jx.Decoder, key string) error {
			if !utf8.ValidString(key) {
				return errors.Errorf("invalid UTF-8 in key %q", key)
			}
			v, err := DecodeValue(d)
			if err != nil {
				return errors.Wrapf(err, "%q", key)
			}
			obj = setMember(obj, key, v)
			return nil
		}); err != nil {
			return Value{}, err
		}
		if obj == nil {
			obj = []Member{}
		}
		return Value{kind: Object, obj: obj}, nil
	default:
		// Let decoder produce a precise syntax error.
		if err := d.Skip(); err != nil {
			return Value{}, err
		}
		return Value{}, errors.Errorf("unexpected type %q", tt)
	}
}

// parseNumber classifies JSON number literal.
//
// Literal without fraction and exponent is Int, anything else is Float.
func parseNumber(n jx.Num) (Value, error) {
	text := string(n)
	if n.Str() {
		return Value{}, errors.Errorf("invalid number %s", text)
	}
	if !bytes.ContainsAny(n, ".eE") {
		i, ok := new(big.Int).SetString(text, 10)
		if !ok {
			return Value{}, errors.Errorf("invalid integer %q", text)
		}
		return Value{kind: Int, i: i, lit: text}, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Value{}, errors.Wrapf(err, "invalid number %q", text)
	}
	// Out of range literals become ±Inf or zero, like most JSON decoders do.
	return Value{kind: Float, f: f, lit: text}, nil
}
