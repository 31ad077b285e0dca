package tree

import (
	"encoding/json"

	j "github.com/goccy/go-json"
)

// Canonical JSON rendering: object member order is preserved exactly as
// decoded or built, numbers render with their original text, strings are
// escaped by the go-json encoder.

// JSON renders the object as canonical JSON text.
func (o *Object) JSON() []byte { return o.appendJSON(nil) }

// JSON renders the array as canonical JSON text.
func (a *Array) JSON() []byte { return a.appendJSON(nil) }

// JSON renders the scalar as canonical JSON text.
func (v *Value) JSON() []byte { return v.appendJSON(nil) }

func (o *Object) String() string { return string(o.JSON()) }
func (a *Array) String() string  { return string(a.JSON()) }
func (v *Value) String() string  { return string(v.JSON()) }

// MarshalJSON implements json.Marshaler.
func (o *Object) MarshalJSON() ([]byte, error) { return o.JSON(), nil }

// MarshalJSON implements json.Marshaler.
func (a *Array) MarshalJSON() ([]byte, error) { return a.JSON(), nil }

// MarshalJSON implements json.Marshaler.
func (v *Value) MarshalJSON() ([]byte, error) { return v.JSON(), nil }

func (o *Object) appendJSON(dst []byte) []byte {
	if o == nil {
		return append(dst, "null"...)
	}
	dst = append(dst, '{')
	for i, m := range o.members {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = appendQuoted(dst, m.Name)
		dst = append(dst, ':')
		dst = appendNodeJSON(dst, m.Value)
	}
	return append(dst, '}')
}

func (a *Array) appendJSON(dst []byte) []byte {
	if a == nil {
		return append(dst, "null"...)
	}
	dst = append(dst, '[')
	for i, e := range a.elems {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = appendNodeJSON(dst, e)
	}
	return append(dst, ']')
}

func (v *Value) appendJSON(dst []byte) []byte {
	if v == nil || v.scalar == nil {
		return append(dst, "null"...)
	}
	switch s := v.scalar.(type) {
	case string:
		return appendQuoted(dst, s)
	case bool:
		if s {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case json.Number:
		return append(dst, s...)
	default:
		return append(dst, "null"...)
	}
}

func appendNodeJSON(dst []byte, n Node) []byte {
	if isNilNode(n) {
		return append(dst, "null"...)
	}
	return n.appendJSON(dst)
}

func appendQuoted(dst []byte, s string) []byte {
	b, err := j.Marshal(s)
	if err != nil {
		// strings cannot fail to marshal; keep output well-formed regardless
		return append(dst, `""`...)
	}
	return append(dst, b...)
}
