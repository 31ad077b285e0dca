package engine

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token represents a streaming token with approximate input offset.
type Token struct {
	Kind   Kind
	String string // Stored for key/string tokens.
	Number string // Stored as text so callers keep full precision.
	Bool   bool
	Offset int64 // Byte offset in the input; -1 when unknown.
}

// TokenSource is the minimal interface the tree builder consumes.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64 // byte offset; -1 if unknown
}
