package safejson

import (
	"github.com/safejson/safejson/i18n"
	"github.com/safejson/safejson/tree"
)

// Accessor layer: type-directed extraction from a tree.Node, expressed
// entirely in terms of Result/Option/Error. Ordinary failure (absent node,
// wrong kind, missing property) never panics and never surfaces a native
// error.

func errCode(code string, data map[string]string) Error {
	return ErrorFromMessage(i18n.T(code, data))
}

func failCode[T any](code string, data map[string]string) Result[T] {
	return Fail[T](errCode(code, data))
}

// AsObject succeeds when the node is a JSON object.
func AsObject(n tree.Node) Result[*tree.Object] {
	if tree.IsNil(n) {
		return failCode[*tree.Object](CodeNullNode, nil)
	}
	o, ok := n.(*tree.Object)
	if !ok {
		return failCode[*tree.Object](CodeNotObject, nil)
	}
	return Ok(o)
}

// AsArray succeeds when the node is a JSON array.
func AsArray(n tree.Node) Result[*tree.Array] {
	if tree.IsNil(n) {
		return failCode[*tree.Array](CodeNullNode, nil)
	}
	a, ok := n.(*tree.Array)
	if !ok {
		return failCode[*tree.Array](CodeNotArray, nil)
	}
	return Ok(a)
}

// AsValue succeeds when the node is a JSON scalar value.
func AsValue(n tree.Node) Result[*tree.Value] {
	if tree.IsNil(n) {
		return failCode[*tree.Value](CodeNullNode, nil)
	}
	v, ok := n.(*tree.Value)
	if !ok {
		return failCode[*tree.Value](CodeNotValue, nil)
	}
	return Ok(v)
}

// GetProperty looks up a required property. It fails when the object is
// absent, the property is missing, or the property's value is the JSON null
// literal.
func GetProperty(o *tree.Object, name string) Result[tree.Node] {
	if o == nil {
		return failCode[tree.Node](CodeNullObject, nil)
	}
	n, ok := o.Get(name)
	if !ok {
		return failCode[tree.Node](CodeMissingProperty, map[string]string{"name": name})
	}
	if v, isValue := n.(*tree.Value); isValue && v.IsNull() {
		return failCode[tree.Node](CodeNullProperty, map[string]string{"name": name})
	}
	return Ok(n)
}

// GetOptionalProperty is the absence-tolerant lookup: a missing or null
// property collapses to None. Errors from GetProperty are discarded, not
// re-surfaced.
func GetOptionalProperty(o *tree.Object, name string) Option[tree.Node] {
	return GetProperty(o, name).ToOption()
}

// GetTypedProperty looks up a required property and applies the coercion.
// Coercion failures are rewritten with a "Property '<name>' is invalid. "
// prefix; the prefix is applied exactly once, at this boundary, so nested
// failures are never prefixed twice. Lookup failures already name the
// property and pass through untouched.
func GetTypedProperty[T any](o *tree.Object, name string, coerce func(tree.Node) Result[T]) Result[T] {
	return BindResult(GetProperty(o, name), func(n tree.Node) Result[T] {
		prefix := i18n.T(CodeInvalidProperty, map[string]string{"name": name}) + " "
		return coerce(n).MapErr(func(e Error) Error { return e.Prefix(prefix) })
	})
}

// GetOptionalTypedProperty coerces a property when present and non-null; a
// missing or null property, or a failing coercion, collapses to None.
func GetOptionalTypedProperty[T any](o *tree.Object, name string, coerce func(tree.Node) Result[T]) Option[T] {
	return BindOption(GetOptionalProperty(o, name), func(n tree.Node) Option[T] {
		return coerce(n).ToOption()
	})
}
