package tree

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	j "github.com/goccy/go-json"

	eng "github.com/safejson/safejson/internal/engine"
)

// DupPolicy controls how duplicate object keys are handled during decode.
type DupPolicy int

const (
	DupIgnore DupPolicy = iota // Last occurrence wins, silently.
	DupWarn                    // Last occurrence wins; a DupIssue is reported to the sink.
	DupError                   // Decoding fails at the first duplicate.
)

// DupIssue describes one duplicate-key occurrence.
type DupIssue struct {
	Path    string // JSON Pointer of the duplicated key.
	Message string
}

// DecodeOpt bundles decoding options.
type DecodeOpt struct {
	MaxDepth       int   // Maximum container nesting; 0 means unlimited.
	MaxBytes       int64 // Maximum input size; 0 means unlimited.
	OnDuplicateKey DupPolicy
	// IssueSink receives duplicate-key reports under DupWarn. If nil,
	// warnings are dropped.
	IssueSink func(DupIssue)
}

func pickDecodeOpt(opts []DecodeOpt) DecodeOpt {
	if len(opts) > 0 {
		return opts[len(opts)-1]
	}
	return DecodeOpt{}
}

// ErrInvalidJSON reports input rejected by the grammar check.
var ErrInvalidJSON = errors.New("tree: invalid JSON syntax")

// FromJSON decodes a JSON byte slice into a Node, preserving object member
// order. Numbers are kept as json.Number so no precision is lost before a
// coercion decides how to interpret them.
func FromJSON(data []byte, opts ...DecodeOpt) (Node, error) {
	opt := pickDecodeOpt(opts)
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return nil, fmt.Errorf("tree: input exceeds %d bytes", opt.MaxBytes)
	}
	return fromJSONBytes(data, opt)
}

// FromJSONReader decodes JSON from an io.Reader into a Node. The input is
// buffered; the tree is fully materialized anyway.
func FromJSONReader(r io.Reader, opts ...DecodeOpt) (Node, error) {
	opt := pickDecodeOpt(opts)
	if opt.MaxBytes > 0 {
		r = &cappedReader{r: r, remaining: opt.MaxBytes, max: opt.MaxBytes}
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return fromJSONBytes(data, opt)
}

// fromJSONBytes checks the full grammar before the token pass. The token
// stream alone does not reject missing separators or trailing garbage.
func fromJSONBytes(data []byte, opt DecodeOpt) (Node, error) {
	if !j.Valid(data) {
		return nil, ErrInvalidJSON
	}
	return decodeFrom(eng.NewJSONBytes(data), opt)
}

func decodeFrom(src eng.TokenSource, opt DecodeOpt) (Node, error) {
	eopt := eng.EnforceOptions{MaxDepth: opt.MaxDepth}
	switch opt.OnDuplicateKey {
	case DupWarn:
		eopt.OnDuplicate = eng.DupWarn
		if opt.IssueSink != nil {
			sink := opt.IssueSink
			eopt.IssueSink = func(si eng.SimpleIssue) {
				sink(DupIssue{Path: si.Path, Message: si.Message})
			}
		}
	case DupError:
		eopt.OnDuplicate = eng.DupError
	}
	wrapped := eng.WrapWithEnforcement(src, eopt)

	tok, err := wrapped.NextToken()
	if err != nil {
		return nil, decodeErr(err)
	}
	n, err := decodeValue(wrapped, tok)
	if err != nil {
		return nil, decodeErr(err)
	}
	return n, nil
}

func decodeErr(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return fmt.Errorf("tree: %s at %s", ie.Message, ie.Path)
	}
	return err
}

func decodeValue(src eng.TokenSource, tok eng.Token) (Node, error) {
	switch tok.Kind {
	case eng.KindBeginObject:
		return decodeObject(src)
	case eng.KindBeginArray:
		return decodeArray(src)
	case eng.KindString:
		return NewString(tok.String), nil
	case eng.KindNumber:
		return NewNumber(json.Number(tok.Number)), nil
	case eng.KindBool:
		return NewBool(tok.Bool), nil
	case eng.KindNull:
		return Null(), nil
	default:
		return nil, io.ErrUnexpectedEOF
	}
}

func decodeObject(src eng.TokenSource) (Node, error) {
	o := NewObject()
	for {
		tok, err := src.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == eng.KindEndObject {
			return o, nil
		}
		if tok.Kind != eng.KindKey {
			return nil, io.ErrUnexpectedEOF
		}
		vt, err := src.NextToken()
		if err != nil {
			return nil, err
		}
		v, err := decodeValue(src, vt)
		if err != nil {
			return nil, err
		}
		o.setInPlace(tok.String, v)
	}
}

func decodeArray(src eng.TokenSource) (Node, error) {
	a := &Array{}
	for {
		tok, err := src.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == eng.KindEndArray {
			return a, nil
		}
		v, err := decodeValue(src, tok)
		if err != nil {
			return nil, err
		}
		a.elems = append(a.elems, v)
	}
}

// cappedReader fails the read that would push consumption past max.
type cappedReader struct {
	r         io.Reader
	remaining int64
	max       int64
}

func (c *cappedReader) Read(p []byte) (int, error) {
	if c.remaining <= 0 {
		// probe: anything left in the underlying reader means the cap is
		// blown. Readers may legitimately return (0, nil), so keep probing
		// until a byte or an error arrives.
		var probe [1]byte
		for {
			n, err := c.r.Read(probe[:])
			if n > 0 {
				return 0, fmt.Errorf("tree: input exceeds %d bytes", c.max)
			}
			if err != nil {
				return 0, err
			}
		}
	}
	if int64(len(p)) > c.remaining {
		p = p[:c.remaining]
	}
	n, err := c.r.Read(p)
	c.remaining -= int64(n)
	return n, err
}
