package safejson

import (
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/safejson/safejson/tree"
)

// Scalar coercions from a tree node to a typed value, and the underlying
// textual parse functions. Each coercion fails with a fixed, kind-specific
// message when the node is not a scalar of the right kind or the text does
// not parse.

// AsString succeeds when the node is a string-typed scalar. The textual form
// of a number or bool is not accepted.
func AsString(n tree.Node) Result[string] {
	return BindResult(AsValue(n), func(v *tree.Value) Result[string] {
		s, ok := v.StringValue()
		if !ok {
			return failCode[string](CodeNotString, nil)
		}
		return Ok(s)
	})
}

// AsInt succeeds when the node is a number-typed scalar whose representation
// is integral. A fractional representation such as 42.5 fails rather than
// rounding, and a string-typed "42" fails because it is not number-typed.
func AsInt(n tree.Node) Result[int64] {
	return BindResult(AsValue(n), func(v *tree.Value) Result[int64] {
		num, ok := v.NumberValue()
		if !ok {
			return failCode[int64](CodeNotInteger, nil)
		}
		return ResultFromOption(ParseInt(num.String()), errCode(CodeNotInteger, nil))
	})
}

// AsBool succeeds only for the JSON literals true and false; the strings
// "true"/"false" are string-typed and fail.
func AsBool(n tree.Node) Result[bool] {
	return BindResult(AsValue(n), func(v *tree.Value) Result[bool] {
		b, ok := v.BoolValue()
		if !ok {
			return failCode[bool](CodeNotBoolean, nil)
		}
		return Ok(b)
	})
}

// AsGUID succeeds when the node is a string-typed scalar holding a GUID.
func AsGUID(n tree.Node) Result[uuid.UUID] {
	return BindResult(AsValue(n), func(v *tree.Value) Result[uuid.UUID] {
		s, ok := v.StringValue()
		if !ok {
			return failCode[uuid.UUID](CodeNotGUID, nil)
		}
		return ResultFromOption(ParseGUID(s), errCode(CodeNotGUID, nil))
	})
}

// AsAbsoluteURI succeeds when the node is a string-typed scalar holding an
// absolute URI. See ParseAbsoluteURI for the host policy.
func AsAbsoluteURI(n tree.Node) Result[*url.URL] {
	return BindResult(AsValue(n), func(v *tree.Value) Result[*url.URL] {
		s, ok := v.StringValue()
		if !ok {
			return failCode[*url.URL](CodeNotAbsoluteURI, nil)
		}
		return ResultFromOption(ParseAbsoluteURI(s), errCode(CodeNotAbsoluteURI, nil))
	})
}

// ParseInt parses a base-10 integer, rejecting any non-integral textual form
// ("42.5", "4e2", "42.0" all yield None).
func ParseInt(s string) Option[int64] {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return None[int64]()
	}
	return Some(i)
}

// ParseGUID parses a GUID in any textual form accepted by uuid.Parse.
func ParseGUID(s string) Option[uuid.UUID] {
	u, err := uuid.Parse(s)
	if err != nil {
		return None[uuid.UUID]()
	}
	return Some(u)
}

// ParseAbsoluteURI parses an absolute URI. Policy: the URI must carry a
// scheme and a non-empty host, so relative references and host-less forms
// like "mailto:x@y" are rejected.
func ParseAbsoluteURI(s string) Option[*url.URL] {
	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return None[*url.URL]()
	}
	return Some(u)
}
