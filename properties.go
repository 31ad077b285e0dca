package safejson

import (
	"net/url"

	"github.com/google/uuid"

	"github.com/safejson/safejson/tree"
)

// Per-type property accessors: mechanical compositions of GetTypedProperty
// with the scalar and shape coercions.

// GetStringProperty extracts a required string property.
func GetStringProperty(o *tree.Object, name string) Result[string] {
	return GetTypedProperty(o, name, AsString)
}

// GetIntProperty extracts a required integer property.
func GetIntProperty(o *tree.Object, name string) Result[int64] {
	return GetTypedProperty(o, name, AsInt)
}

// GetBoolProperty extracts a required boolean property.
func GetBoolProperty(o *tree.Object, name string) Result[bool] {
	return GetTypedProperty(o, name, AsBool)
}

// GetGUIDProperty extracts a required GUID property.
func GetGUIDProperty(o *tree.Object, name string) Result[uuid.UUID] {
	return GetTypedProperty(o, name, AsGUID)
}

// GetURIProperty extracts a required absolute-URI property.
func GetURIProperty(o *tree.Object, name string) Result[*url.URL] {
	return GetTypedProperty(o, name, AsAbsoluteURI)
}

// GetObjectProperty extracts a required object-valued property.
func GetObjectProperty(o *tree.Object, name string) Result[*tree.Object] {
	return GetTypedProperty(o, name, AsObject)
}

// GetArrayProperty extracts a required array-valued property.
func GetArrayProperty(o *tree.Object, name string) Result[*tree.Array] {
	return GetTypedProperty(o, name, AsArray)
}

// GetOptionalStringProperty extracts a string property that may be absent.
func GetOptionalStringProperty(o *tree.Object, name string) Option[string] {
	return GetOptionalTypedProperty(o, name, AsString)
}

// GetOptionalIntProperty extracts an integer property that may be absent.
func GetOptionalIntProperty(o *tree.Object, name string) Option[int64] {
	return GetOptionalTypedProperty(o, name, AsInt)
}

// GetOptionalBoolProperty extracts a boolean property that may be absent.
func GetOptionalBoolProperty(o *tree.Object, name string) Option[bool] {
	return GetOptionalTypedProperty(o, name, AsBool)
}

// GetOptionalGUIDProperty extracts a GUID property that may be absent.
func GetOptionalGUIDProperty(o *tree.Object, name string) Option[uuid.UUID] {
	return GetOptionalTypedProperty(o, name, AsGUID)
}

// GetOptionalURIProperty extracts an absolute-URI property that may be absent.
func GetOptionalURIProperty(o *tree.Object, name string) Option[*url.URL] {
	return GetOptionalTypedProperty(o, name, AsAbsoluteURI)
}

// GetOptionalObjectProperty extracts an object-valued property that may be
// absent.
func GetOptionalObjectProperty(o *tree.Object, name string) Option[*tree.Object] {
	return GetOptionalTypedProperty(o, name, AsObject)
}

// GetOptionalArrayProperty extracts an array-valued property that may be
// absent.
func GetOptionalArrayProperty(o *tree.Object, name string) Option[*tree.Array] {
	return GetOptionalTypedProperty(o, name, AsArray)
}
