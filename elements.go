package safejson

import (
	"strconv"

	"github.com/safejson/safejson/i18n"
	"github.com/safejson/safejson/tree"
)

// Array extraction is Traverse applied over the array's elements: all
// elements convert or the single failure carries one message per bad index,
// tagged with the index in the original array.

// GetElements returns the array's elements in original order.
func GetElements(a *tree.Array) Result[[]tree.Node] {
	if a == nil {
		return failCode[[]tree.Node](CodeNullArray, nil)
	}
	return Ok(a.Elems())
}

func elementKindError(i int, kind tree.Kind) Error {
	return errCode(CodeElementKind, map[string]string{
		"index": strconv.Itoa(i),
		"kind":  kind.String(),
	})
}

// GetTypedElements applies a coercion to every element under the Traverse
// aggregation contract.
func GetTypedElements[T any](a *tree.Array, coerce func(tree.Node, int) Result[T]) Result[[]T] {
	return BindResult(GetElements(a), func(nodes []tree.Node) Result[[]T] {
		return Traverse(nodes, coerce)
	})
}

// GetObjectElements succeeds when every element is a JSON object.
func GetObjectElements(a *tree.Array) Result[[]*tree.Object] {
	return GetTypedElements(a, func(n tree.Node, i int) Result[*tree.Object] {
		o, ok := n.(*tree.Object)
		if !ok || tree.IsNil(n) {
			return Fail[*tree.Object](elementKindError(i, tree.KindObject))
		}
		return Ok(o)
	})
}

// GetArrayElements succeeds when every element is a JSON array.
func GetArrayElements(a *tree.Array) Result[[]*tree.Array] {
	return GetTypedElements(a, func(n tree.Node, i int) Result[*tree.Array] {
		e, ok := n.(*tree.Array)
		if !ok || tree.IsNil(n) {
			return Fail[*tree.Array](elementKindError(i, tree.KindArray))
		}
		return Ok(e)
	})
}

// GetValueElements succeeds when every element is a JSON scalar value.
func GetValueElements(a *tree.Array) Result[[]*tree.Value] {
	return GetTypedElements(a, func(n tree.Node, i int) Result[*tree.Value] {
		v, ok := n.(*tree.Value)
		if !ok || tree.IsNil(n) {
			return Fail[*tree.Value](elementKindError(i, tree.KindValue))
		}
		return Ok(v)
	})
}

// GetStringElements coerces every element with AsString, tagging failures
// with the element index.
func GetStringElements(a *tree.Array) Result[[]string] {
	return GetTypedElements(a, indexed(AsString))
}

// GetIntElements coerces every element with AsInt, tagging failures with the
// element index.
func GetIntElements(a *tree.Array) Result[[]int64] {
	return GetTypedElements(a, indexed(AsInt))
}

// indexed adapts a node coercion into an element coercion whose failures are
// prefixed with the element position.
func indexed[T any](coerce func(tree.Node) Result[T]) func(tree.Node, int) Result[T] {
	return func(n tree.Node, i int) Result[T] {
		return coerce(n).MapErr(func(e Error) Error {
			prefix := i18n.T(CodeInvalidElement, map[string]string{"index": strconv.Itoa(i)}) + " "
			return e.Prefix(prefix)
		})
	}
}
