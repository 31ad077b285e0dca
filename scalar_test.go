package safejson_test

import (
	"encoding/json"
	"testing"

	safejson "github.com/safejson/safejson"
	"github.com/safejson/safejson/tree"
)

func TestAsString(t *testing.T) {
	if r := safejson.AsString(tree.NewString("hi")); r.UnwrapOr("") != "hi" {
		t.Fatalf("string scalar: %v", r.Err().Messages())
	}
	if msg := failMessages(t, safejson.AsString(tree.NewInt(1)))[0]; msg != "JSON value is not a string." {
		t.Fatalf("unexpected message %q", msg)
	}
	if msg := failMessages(t, safejson.AsString(nil))[0]; msg != "Node is null." {
		t.Fatalf("absent node: %q", msg)
	}
}

func TestAsInt_CoercionBoundary(t *testing.T) {
	if r := safejson.AsInt(tree.NewNumber(json.Number("42"))); r.UnwrapOr(0) != 42 {
		t.Fatalf("integral number must succeed: %v", r.Err().Messages())
	}
	// fractional representation fails rather than rounding
	if msg := failMessages(t, safejson.AsInt(tree.NewNumber(json.Number("42.5"))))[0]; msg != "JSON value is not an integer." {
		t.Fatalf("unexpected message %q", msg)
	}
	// trailing .0 is still a non-integral textual form
	if !safejson.AsInt(tree.NewNumber(json.Number("42.0"))).IsFail() {
		t.Fatalf("42.0 must fail")
	}
	// string-typed "42" is not number-typed
	if msg := failMessages(t, safejson.AsInt(tree.NewString("42")))[0]; msg != "JSON value is not an integer." {
		t.Fatalf("unexpected message %q", msg)
	}
	if !safejson.AsInt(mustParse(t, `{}`)).IsFail() {
		t.Fatalf("non-scalar must fail")
	}
}

func TestAsBool_OnlyLiterals(t *testing.T) {
	if r := safejson.AsBool(tree.NewBool(true)); !r.UnwrapOr(false) {
		t.Fatalf("bool literal: %v", r.Err().Messages())
	}
	if msg := failMessages(t, safejson.AsBool(tree.NewString("true")))[0]; msg != "JSON value is not a boolean." {
		t.Fatalf("string \"true\" must not coerce: %q", msg)
	}
	if !safejson.AsBool(tree.Null()).IsFail() {
		t.Fatalf("null is not a boolean")
	}
}

func TestAsGUID(t *testing.T) {
	if r := safejson.AsGUID(tree.NewString("0f8fad5b-d9cb-469f-a165-70867728950e")); !r.IsOk() {
		t.Fatalf("valid guid: %v", r.Err().Messages())
	}
	if msg := failMessages(t, safejson.AsGUID(tree.NewString("not-a-guid")))[0]; msg != "JSON value is not a GUID." {
		t.Fatalf("unexpected message %q", msg)
	}
	if !safejson.AsGUID(tree.NewInt(5)).IsFail() {
		t.Fatalf("number is not a GUID")
	}
}

func TestAsAbsoluteURI(t *testing.T) {
	if r := safejson.AsAbsoluteURI(tree.NewString("https://example.com/path?q=1")); !r.IsOk() {
		t.Fatalf("absolute uri: %v", r.Err().Messages())
	}
	for _, bad := range []string{"/relative/path", "example.com/no-scheme", "mailto:x@example.com", ""} {
		r := safejson.AsAbsoluteURI(tree.NewString(bad))
		if !r.IsFail() {
			t.Fatalf("%q should be rejected", bad)
		}
		if msg := r.Err().FirstMessage(); msg != "JSON value is not an absolute URI." {
			t.Fatalf("unexpected message %q", msg)
		}
	}
}

func TestParseInt_RejectsNonIntegralForms(t *testing.T) {
	if safejson.ParseInt("17").UnwrapOr(0) != 17 {
		t.Fatalf("plain integer must parse")
	}
	if safejson.ParseInt("-3").UnwrapOr(0) != -3 {
		t.Fatalf("negative integer must parse")
	}
	for _, bad := range []string{"42.5", "42.0", "4e2", "0x10", "", "forty-two"} {
		if safejson.ParseInt(bad).IsSome() {
			t.Fatalf("%q must not parse as integer", bad)
		}
	}
}

func TestParseGUID(t *testing.T) {
	if safejson.ParseGUID("0f8fad5b-d9cb-469f-a165-70867728950e").IsNone() {
		t.Fatalf("canonical guid must parse")
	}
	if safejson.ParseGUID("xyz").IsSome() {
		t.Fatalf("garbage must not parse")
	}
}

func TestParseAbsoluteURI_HostPolicy(t *testing.T) {
	if safejson.ParseAbsoluteURI("https://example.com").IsNone() {
		t.Fatalf("scheme plus host must parse")
	}
	// host-less absolute forms are rejected by policy
	if safejson.ParseAbsoluteURI("mailto:a@b.c").IsSome() {
		t.Fatalf("host-less URI rejected by policy")
	}
	if safejson.ParseAbsoluteURI("file:///tmp/x").IsSome() {
		t.Fatalf("empty-host URI rejected by policy")
	}
}
