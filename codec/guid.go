package codec

import (
	"github.com/google/uuid"

	safejson "github.com/safejson/safejson"
)

// GUID returns a Codec that converts between GUID strings and uuid.UUID.
// Encode always emits the canonical dashed lower-case form.
func GUID() Codec[string, uuid.UUID] { return guidCodec{} }

type guidCodec struct{}

func (guidCodec) Decode(a string) safejson.Result[uuid.UUID] {
	return safejson.ResultFromOption(
		safejson.ParseGUID(a),
		safejson.ErrorFromMessage("String is not a GUID."),
	)
}

func (guidCodec) Encode(b uuid.UUID) safejson.Result[string] {
	return safejson.Ok(b.String())
}
