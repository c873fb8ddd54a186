package jsoncontract

import (
	"sort"

	"github.com/go-faster/jx"
)

// JSON returns compact JSON encoding of value, preserving member order.
func (v Value) JSON() []byte {
	var e jx.Encoder
	v.encode(&e, false)
	return e.Bytes()
}

// EncodeIndent returns JSON encoding of value indented by ident spaces,
// with object keys sorted.
func EncodeIndent(v Value, ident int) []byte {
	var e jx.Encoder
	e.SetIdent(ident)
	v.encode(&e, true)
	return e.Bytes()
}

func (v Value) encode(e *jx.Encoder, sortKeys bool) {
	switch v.kind {
	case Null:
		e.Null()
	case Bool:
		e.Bool(v.b)
	case Int, Float:
		e.Raw([]byte(v.numberText()))
	case String:
		e.Str(v.s)
	case Array:
		e.ArrStart()
		for _, elem := range v.arr {
			elem.encode(e, sortKeys)
		}
		e.ArrEnd()
	case Object:
		members := v.obj
		if sortKeys {
			members = append([]Member(nil), members...)
			sort.SliceStable(members, func(i, j int) bool {
				return members[i].Key < members[j].Key
			})
		}
		e.ObjStart()
		for _, m := range members {
			e.FieldStart(m.Key)
			m.Value.encode(e, sortKeys)
		}
		e.ObjEnd()
	}
}
