// Package tree holds the JSON tree model consumed by the safejson accessor
// layer: a closed variant set of Object (ordered members), Array, and Value
// (scalar or null), plus decoding from JSON/YAML, canonical rendering, and
// copy-on-write mutation.
package tree

import (
	"encoding/json"
	"strconv"
)

// Kind discriminates the node variants.
type Kind int

const (
	KindObject Kind = iota
	KindArray
	KindValue
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "value"
	}
}

// Node is one element of a JSON tree. The variant set is closed: *Object,
// *Array, and *Value are the only implementations.
type Node interface {
	Kind() Kind
	// Clone returns a deep copy sharing no mutable state with the receiver.
	Clone() Node
	// JSON renders the node as canonical JSON text, object member order
	// preserved.
	JSON() []byte

	appendJSON(dst []byte) []byte
}

// Member is one name/value pair of an Object.
type Member struct {
	Name  string
	Value Node
}

// Object is a JSON object with members kept in their original order.
type Object struct {
	members []Member
	index   map[string]int
}

// NewObject builds an Object from members. A repeated name overwrites the
// value at the first occurrence's position, mirroring Set semantics.
func NewObject(members ...Member) *Object {
	o := &Object{index: make(map[string]int, len(members))}
	for _, m := range members {
		o.setInPlace(m.Name, m.Value)
	}
	return o
}

func (o *Object) Kind() Kind { return KindObject }

// Len returns the number of members; safe on a nil receiver.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.members)
}

// Get looks up a member value by name; safe on a nil receiver.
func (o *Object) Get(name string) (Node, bool) {
	if o == nil {
		return nil, false
	}
	i, ok := o.index[name]
	if !ok {
		return nil, false
	}
	return o.members[i].Value, true
}

// Has reports whether a member with the given name exists.
func (o *Object) Has(name string) bool {
	_, ok := o.Get(name)
	return ok
}

// Members returns a copy of the member slice in original order. Member
// values are the object's own child nodes; treat them as read-only.
func (o *Object) Members() []Member {
	if o == nil {
		return nil
	}
	out := make([]Member, len(o.members))
	copy(out, o.members)
	return out
}

// Names returns the member names in original order.
func (o *Object) Names() []string {
	if o == nil {
		return nil
	}
	out := make([]string, len(o.members))
	for i, m := range o.members {
		out[i] = m.Name
	}
	return out
}

// Clone returns a deep copy.
func (o *Object) Clone() Node {
	if o == nil {
		return (*Object)(nil)
	}
	out := &Object{
		members: make([]Member, len(o.members)),
		index:   make(map[string]int, len(o.index)),
	}
	for i, m := range o.members {
		var v Node
		if m.Value != nil {
			v = m.Value.Clone()
		}
		out.members[i] = Member{Name: m.Name, Value: v}
		out.index[m.Name] = i
	}
	return out
}

// setInPlace overwrites an existing member (keeping its position) or appends
// a new one. The value is attached as-is.
func (o *Object) setInPlace(name string, v Node) {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if i, ok := o.index[name]; ok {
		o.members[i].Value = v
		return
	}
	o.index[name] = len(o.members)
	o.members = append(o.members, Member{Name: name, Value: v})
}

// cloneShallow copies the member slice and index without cloning child nodes.
// Mutations then replace member slots, so unchanged subtrees stay shared.
func (o *Object) cloneShallow() *Object {
	if o == nil {
		return NewObject()
	}
	out := &Object{
		members: make([]Member, len(o.members)),
		index:   make(map[string]int, len(o.index)),
	}
	copy(out.members, o.members)
	for k, v := range o.index {
		out.index[k] = v
	}
	return out
}

// Array is a JSON array.
type Array struct {
	elems []Node
}

// NewArray builds an Array from elements.
func NewArray(elems ...Node) *Array {
	return &Array{elems: append([]Node(nil), elems...)}
}

func (a *Array) Kind() Kind { return KindArray }

// Len returns the number of elements; safe on a nil receiver.
func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.elems)
}

// At returns the element at index i.
func (a *Array) At(i int) Node { return a.elems[i] }

// Elems returns a copy of the element slice in original order.
func (a *Array) Elems() []Node {
	if a == nil {
		return nil
	}
	return append([]Node(nil), a.elems...)
}

// Clone returns a deep copy.
func (a *Array) Clone() Node {
	if a == nil {
		return (*Array)(nil)
	}
	out := &Array{elems: make([]Node, len(a.elems))}
	for i, e := range a.elems {
		if e != nil {
			out.elems[i] = e.Clone()
		}
	}
	return out
}

// Value is a JSON scalar: string, number (json.Number), bool, or null.
type Value struct {
	scalar any // string | json.Number | bool | nil
}

// NewString returns a string Value.
func NewString(s string) *Value { return &Value{scalar: s} }

// NewNumber returns a number Value from its textual representation.
func NewNumber(n json.Number) *Value { return &Value{scalar: n} }

// NewInt returns an integer number Value.
func NewInt(i int64) *Value { return &Value{scalar: json.Number(formatInt(i))} }

// NewFloat returns a floating-point number Value.
func NewFloat(f float64) *Value { return &Value{scalar: json.Number(formatFloat(f))} }

// NewBool returns a boolean Value.
func NewBool(b bool) *Value { return &Value{scalar: b} }

// Null returns the JSON null literal.
func Null() *Value { return &Value{} }

func formatInt(i int64) string { return strconv.FormatInt(i, 10) }

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

func (v *Value) Kind() Kind { return KindValue }

// IsNull reports whether the Value is the JSON null literal.
func (v *Value) IsNull() bool { return v.scalar == nil }

// Scalar returns the underlying scalar (string, json.Number, bool, or nil).
func (v *Value) Scalar() any { return v.scalar }

// StringValue returns the scalar as a string when it is string-typed.
func (v *Value) StringValue() (string, bool) {
	s, ok := v.scalar.(string)
	return s, ok
}

// NumberValue returns the scalar as a json.Number when it is number-typed.
func (v *Value) NumberValue() (json.Number, bool) {
	n, ok := v.scalar.(json.Number)
	return n, ok
}

// BoolValue returns the scalar as a bool when it is bool-typed.
func (v *Value) BoolValue() (bool, bool) {
	b, ok := v.scalar.(bool)
	return b, ok
}

// Clone returns a copy. Scalars are immutable so this is a shallow copy.
func (v *Value) Clone() Node {
	if v == nil {
		return (*Value)(nil)
	}
	return &Value{scalar: v.scalar}
}

// EqualNodes reports deep structural equality. Object member order is
// significant, matching the tree's order-preserving decode semantics.
func EqualNodes(a, b Node) bool {
	if isNilNode(a) || isNilNode(b) {
		return isNilNode(a) && isNilNode(b)
	}
	switch av := a.(type) {
	case *Object:
		bv, ok := b.(*Object)
		if !ok || len(av.members) != len(bv.members) {
			return false
		}
		for i, m := range av.members {
			if bv.members[i].Name != m.Name || !EqualNodes(m.Value, bv.members[i].Value) {
				return false
			}
		}
		return true
	case *Array:
		bv, ok := b.(*Array)
		if !ok || len(av.elems) != len(bv.elems) {
			return false
		}
		for i, e := range av.elems {
			if !EqualNodes(e, bv.elems[i]) {
				return false
			}
		}
		return true
	case *Value:
		bv, ok := b.(*Value)
		return ok && av.scalar == bv.scalar
	}
	return false
}

func isNilNode(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Object:
		return v == nil
	case *Array:
		return v == nil
	case *Value:
		return v == nil
	}
	return false
}

// IsNil reports whether n is absent (the untyped or typed nil node), as
// opposed to the JSON null literal.
func IsNil(n Node) bool { return isNilNode(n) }
