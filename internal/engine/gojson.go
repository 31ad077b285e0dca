package engine

import (
	"bytes"
	"io"
	"strconv"

	j "github.com/goccy/go-json"
)

// TokenSource implementation backed by a goccy/go-json Decoder. Object keys
// arrive in input order, which is what lets the tree keep member order.

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	expectingKey bool
}

type jsonSource struct {
	dec   *j.Decoder
	stack []frame
}

// NewJSONReader wraps an io.Reader into a TokenSource for JSON.
func NewJSONReader(r io.Reader) TokenSource {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &jsonSource{dec: dec}
}

// NewJSONBytes wraps a byte slice into a TokenSource for JSON.
func NewJSONBytes(b []byte) TokenSource { return NewJSONReader(bytes.NewReader(b)) }

// valueSeen flips the enclosing object frame back to key position after a
// complete value.
func (s *jsonSource) valueSeen() {
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.kind == kindObject && !top.expectingKey {
			top.expectingKey = true
		}
	}
}

func (s *jsonSource) NextToken() (Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		if err == io.EOF {
			return Token{}, io.EOF
		}
		return Token{}, err
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.stack = append(s.stack, frame{kind: kindObject, expectingKey: true})
			return Token{Kind: KindBeginObject, Offset: -1}, nil
		case '}':
			if n := len(s.stack); n > 0 {
				s.stack = s.stack[:n-1]
			}
			s.valueSeen()
			return Token{Kind: KindEndObject, Offset: -1}, nil
		case '[':
			s.stack = append(s.stack, frame{kind: kindArray})
			return Token{Kind: KindBeginArray, Offset: -1}, nil
		case ']':
			if n := len(s.stack); n > 0 {
				s.stack = s.stack[:n-1]
			}
			s.valueSeen()
			return Token{Kind: KindEndArray, Offset: -1}, nil
		}
	case string:
		if n := len(s.stack); n > 0 {
			top := &s.stack[n-1]
			if top.kind == kindObject && top.expectingKey {
				top.expectingKey = false
				return Token{Kind: KindKey, String: v, Offset: -1}, nil
			}
		}
		s.valueSeen()
		return Token{Kind: KindString, String: v, Offset: -1}, nil
	case bool:
		s.valueSeen()
		return Token{Kind: KindBool, Bool: v, Offset: -1}, nil
	case j.Number:
		s.valueSeen()
		return Token{Kind: KindNumber, Number: string(v), Offset: -1}, nil
	case float64:
		s.valueSeen()
		return Token{Kind: KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64), Offset: -1}, nil
	case nil:
		s.valueSeen()
		return Token{Kind: KindNull, Offset: -1}, nil
	}
	s.valueSeen()
	return Token{Kind: KindNull, Offset: -1}, nil
}

func (s *jsonSource) Location() int64 { return -1 }
