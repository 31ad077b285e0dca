package codec

import (
	"time"

	safejson "github.com/safejson/safejson"
	"github.com/safejson/safejson/tree"
)

// TimeRFC3339 returns a Codec that converts between RFC3339 strings and
// time.Time.
func TimeRFC3339() Codec[string, time.Time] { return rfc3339Codec{} }

type rfc3339Codec struct{}

func (rfc3339Codec) Decode(a string) safejson.Result[time.Time] {
	t, err := time.Parse(time.RFC3339, a)
	if err != nil {
		return safejson.FailMessage[time.Time]("String is not an RFC3339 timestamp.")
	}
	return safejson.Ok(t)
}

func (rfc3339Codec) Encode(b time.Time) safejson.Result[string] {
	return safejson.Ok(b.Format(time.RFC3339))
}

// AsTimeRFC3339 coerces a string-typed node into a time.Time, for use with
// GetTypedProperty.
func AsTimeRFC3339(n tree.Node) safejson.Result[time.Time] {
	return safejson.BindResult(safejson.AsString(n), TimeRFC3339().Decode)
}
