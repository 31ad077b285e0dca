package safejson_test

import (
	"strings"
	"testing"

	safejson "github.com/safejson/safejson"
	"github.com/safejson/safejson/tree"
)

func mustParse(t *testing.T, src string) tree.Node {
	t.Helper()
	n, err := tree.FromJSON([]byte(src))
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return n
}

func mustObject(t *testing.T, src string) *tree.Object {
	t.Helper()
	o, ok := mustParse(t, src).(*tree.Object)
	if !ok {
		t.Fatalf("%q is not an object", src)
	}
	return o
}

func failMessages[T any](t *testing.T, r safejson.Result[T]) []string {
	t.Helper()
	if !r.IsFail() {
		t.Fatalf("expected failure")
	}
	return r.Err().Messages()
}

func TestAsObject(t *testing.T) {
	if r := safejson.AsObject(nil); failMessages(t, r)[0] != "Node is null." {
		t.Fatalf("unexpected message: %v", r.Err().Messages())
	}
	if r := safejson.AsObject(tree.NewString("s")); failMessages(t, r)[0] != "Node is not a JSON object." {
		t.Fatalf("unexpected message: %v", r.Err().Messages())
	}
	if r := safejson.AsObject(mustParse(t, `{"a":1}`)); !r.IsOk() {
		t.Fatalf("object should coerce: %v", r.Err().Messages())
	}
}

func TestAsArrayAndAsValue(t *testing.T) {
	if msg := failMessages(t, safejson.AsArray(mustParse(t, `{}`)))[0]; msg != "Node is not a JSON array." {
		t.Fatalf("unexpected message %q", msg)
	}
	if msg := failMessages(t, safejson.AsValue(mustParse(t, `[]`)))[0]; msg != "Node is not a JSON value." {
		t.Fatalf("unexpected message %q", msg)
	}
	if r := safejson.AsArray(mustParse(t, `[1]`)); !r.IsOk() {
		t.Fatalf("array should coerce")
	}
	if r := safejson.AsValue(mustParse(t, `"x"`)); !r.IsOk() {
		t.Fatalf("scalar should coerce")
	}
	// a typed nil hiding inside the interface is still an absent node
	var nilObj *tree.Object
	if msg := failMessages(t, safejson.AsObject(nilObj))[0]; msg != "Node is null." {
		t.Fatalf("typed nil should read as absent, got %q", msg)
	}
}

func TestGetProperty(t *testing.T) {
	o := mustObject(t, `{"name":"ada","zero":0,"nothing":null}`)

	if r := safejson.GetProperty(o, "name"); !r.IsOk() {
		t.Fatalf("present property must succeed: %v", r.Err().Messages())
	}
	if msg := failMessages(t, safejson.GetProperty(nil, "x"))[0]; msg != "Object is null." {
		t.Fatalf("unexpected message %q", msg)
	}
	if msg := failMessages(t, safejson.GetProperty(o, "missing"))[0]; msg != "Object does not have a property named 'missing'." {
		t.Fatalf("unexpected message %q", msg)
	}
	if msg := failMessages(t, safejson.GetProperty(o, "nothing"))[0]; msg != "Property 'nothing' is null." {
		t.Fatalf("null property must fail, got %q", msg)
	}
}

func TestGetProperty_RoundTripAfterSet(t *testing.T) {
	o := mustObject(t, `{"a":1}`)
	v := mustParse(t, `{"nested":[1,2,3]}`)
	o2 := o.Set("b", v)
	r := safejson.GetProperty(o2, "b")
	if !r.IsOk() {
		t.Fatalf("set property must be gettable: %v", r.Err().Messages())
	}
	var got tree.Node
	r.Match(func(n tree.Node) { got = n }, func(safejson.Error) {})
	if !tree.EqualNodes(got, v) {
		t.Fatalf("round trip mismatch: %s", got.JSON())
	}
}

func TestGetOptionalProperty(t *testing.T) {
	o := mustObject(t, `{"present":1,"nothing":null}`)
	if safejson.GetOptionalProperty(o, "missing").IsSome() {
		t.Fatalf("missing key is None, never a surfaced failure")
	}
	if safejson.GetOptionalProperty(o, "nothing").IsSome() {
		t.Fatalf("null value collapses to None")
	}
	if safejson.GetOptionalProperty(o, "present").IsNone() {
		t.Fatalf("present value is Some")
	}
	if safejson.GetOptionalProperty(nil, "x").IsSome() {
		t.Fatalf("nil object is None")
	}
}

func TestGetTypedProperty_EnrichesExactlyOnce(t *testing.T) {
	o := mustObject(t, `{"count":"not a number"}`)
	msgs := failMessages(t, safejson.GetTypedProperty(o, "count", safejson.AsInt))
	if len(msgs) != 1 {
		t.Fatalf("expected a single message, got %v", msgs)
	}
	want := "Property 'count' is invalid. JSON value is not an integer."
	if msgs[0] != want {
		t.Fatalf("want %q, got %q", want, msgs[0])
	}
	if strings.Count(msgs[0], "is invalid.") != 1 {
		t.Fatalf("prefix must be applied exactly once: %q", msgs[0])
	}
}

func TestGetTypedProperty_LookupFailurePassesThrough(t *testing.T) {
	o := mustObject(t, `{}`)
	msgs := failMessages(t, safejson.GetTypedProperty(o, "count", safejson.AsInt))
	if msgs[0] != "Object does not have a property named 'count'." {
		t.Fatalf("lookup failures already name the property: %q", msgs[0])
	}
}

func TestGetTypedProperty_NestedCoercionPrefixedOncePerBoundary(t *testing.T) {
	// inner failure crosses two property boundaries; each adds its own
	// prefix once, so the message nests without doubling either prefix
	o := mustObject(t, `{"outer":{"count":1.5}}`)
	r := safejson.GetTypedProperty(o, "outer", func(n tree.Node) safejson.Result[int64] {
		return safejson.BindResult(safejson.AsObject(n), func(inner *tree.Object) safejson.Result[int64] {
			return safejson.GetIntProperty(inner, "count")
		})
	})
	msgs := failMessages(t, r)
	want := "Property 'outer' is invalid. Property 'count' is invalid. JSON value is not an integer."
	if len(msgs) != 1 || msgs[0] != want {
		t.Fatalf("want %q, got %v", want, msgs)
	}
}

func TestGetOptionalTypedProperty(t *testing.T) {
	o := mustObject(t, `{"n":3,"s":"x"}`)
	if v := safejson.GetOptionalIntProperty(o, "n"); v.UnwrapOr(0) != 3 {
		t.Fatalf("typed optional lost the value")
	}
	if safejson.GetOptionalIntProperty(o, "s").IsSome() {
		t.Fatalf("failed coercion collapses to None")
	}
	if safejson.GetOptionalIntProperty(o, "missing").IsSome() {
		t.Fatalf("missing key collapses to None")
	}
}

func TestTypedPropertyWrappers(t *testing.T) {
	o := mustObject(t, `{
		"s": "hello",
		"i": 42,
		"b": true,
		"g": "0f8fad5b-d9cb-469f-a165-70867728950e",
		"u": "https://example.com/x",
		"o": {"k": 1},
		"a": [1, 2]
	}`)

	if r := safejson.GetStringProperty(o, "s"); r.UnwrapOr("") != "hello" {
		t.Fatalf("string wrapper: %v", r.Err().Messages())
	}
	if r := safejson.GetIntProperty(o, "i"); r.UnwrapOr(0) != 42 {
		t.Fatalf("int wrapper: %v", r.Err().Messages())
	}
	if r := safejson.GetBoolProperty(o, "b"); !r.UnwrapOr(false) {
		t.Fatalf("bool wrapper: %v", r.Err().Messages())
	}
	if r := safejson.GetGUIDProperty(o, "g"); !r.IsOk() {
		t.Fatalf("guid wrapper: %v", r.Err().Messages())
	}
	if r := safejson.GetURIProperty(o, "u"); !r.IsOk() {
		t.Fatalf("uri wrapper: %v", r.Err().Messages())
	}
	if r := safejson.GetObjectProperty(o, "o"); !r.IsOk() {
		t.Fatalf("object wrapper: %v", r.Err().Messages())
	}
	if r := safejson.GetArrayProperty(o, "a"); !r.IsOk() {
		t.Fatalf("array wrapper: %v", r.Err().Messages())
	}
}

func TestMultipleInvalidFieldsReportTogether(t *testing.T) {
	o := mustObject(t, `{"id":"not-a-guid","count":1.5,"ok":"yes"}`)
	e := safejson.Combine(
		safejson.Combine(
			safejson.GetGUIDProperty(o, "id").Err(),
			safejson.GetIntProperty(o, "count").Err(),
		),
		safejson.GetBoolProperty(o, "ok").Err(),
	)
	if e.Len() != 3 {
		t.Fatalf("one diagnostic per invalid field, got %v", e.Messages())
	}
}
