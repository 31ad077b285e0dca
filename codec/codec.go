// Package codec provides bidirectional, Result-based conversions between
// wire strings and domain types, for use with GetTypedProperty.
package codec

import (
	safejson "github.com/safejson/safejson"
)

// Codec performs bidirectional transformation between the wire
// representation A and the domain representation B. Both directions report
// failure through Result rather than a native error.
type Codec[A, B any] interface {
	Decode(a A) safejson.Result[B]
	Encode(b B) safejson.Result[A]
}
