package engine

import (
	"strconv"
	"strings"
)

// Enforcement wrapper for TokenSource: duplicate key handling and max depth
// checks applied in a streaming fashion while the tree is being built.

// DuplicateStrictness controls duplicate key handling.
type DuplicateStrictness int

const (
	DupIgnore DuplicateStrictness = iota
	DupWarn
	DupError
)

// SimpleIssue is a minimal issue representation used by enforcement.
type SimpleIssue struct {
	Code    string
	Path    string // JSON Pointer of the offending token.
	Message string
}

// IssueError is a lightweight error carrying a SimpleIssue.
type IssueError struct{ SimpleIssue }

func (e IssueError) Error() string { return e.SimpleIssue.Message }

// EnforceOptions controls runtime enforcement behavior.
type EnforceOptions struct {
	OnDuplicate DuplicateStrictness
	MaxDepth    int
	// IssueSink receives non-fatal issues (duplicate keys under DupWarn).
	// If nil, warn-level issues are dropped.
	IssueSink func(SimpleIssue)
}

type dupFrame struct {
	kind         containerKind
	keys         map[string]struct{}
	expectingKey bool
	path         string
	nextIndex    int
	pendingKey   string
}

// WrapWithEnforcement returns a TokenSource that enforces the duplicate key
// policy and maximum nesting depth.
func WrapWithEnforcement(inner TokenSource, opt EnforceOptions) TokenSource {
	return &enforcingTokenSource{inner: inner, opt: opt}
}

type enforcingTokenSource struct {
	inner TokenSource
	opt   EnforceOptions
	stack []dupFrame
	depth int
}

func (e *enforcingTokenSource) NextToken() (Token, error) {
	tok, err := e.inner.NextToken()
	if err != nil {
		return Token{}, err
	}

	path := e.currentPathForToken(tok)
	npath := normalizeIssuePath(path)

	switch tok.Kind {
	case KindBeginObject:
		e.stack = append(e.stack, dupFrame{kind: kindObject, keys: make(map[string]struct{}), expectingKey: true, path: path})
		if err := e.enterContainer(npath); err != nil {
			return Token{}, err
		}
	case KindBeginArray:
		e.stack = append(e.stack, dupFrame{kind: kindArray, path: path})
		if err := e.enterContainer(npath); err != nil {
			return Token{}, err
		}
	case KindEndObject, KindEndArray:
		if n := len(e.stack); n > 0 {
			e.stack = e.stack[:n-1]
		}
		if e.depth > 0 {
			e.depth--
		}
		e.closeValue()
	case KindKey:
		if n := len(e.stack); n > 0 {
			top := &e.stack[n-1]
			if top.kind == kindObject && top.expectingKey {
				if e.opt.OnDuplicate != DupIgnore {
					if _, ok := top.keys[tok.String]; ok {
						si := SimpleIssue{Code: "duplicate_key", Path: npath, Message: "key '" + tok.String + "' duplicated"}
						if e.opt.IssueSink != nil {
							e.opt.IssueSink(si)
						}
						if e.opt.OnDuplicate == DupError {
							return Token{}, IssueError{si}
						}
					}
				}
				top.keys[tok.String] = struct{}{}
				top.expectingKey = false
				top.pendingKey = tok.String
			}
		}
	case KindString, KindNumber, KindBool, KindNull:
		e.closeValue()
	}

	return tok, nil
}

func (e *enforcingTokenSource) enterContainer(npath string) error {
	e.depth++
	if e.opt.MaxDepth > 0 && e.depth > e.opt.MaxDepth {
		si := SimpleIssue{Code: "parse_error", Path: npath, Message: "max depth exceeded"}
		if e.opt.IssueSink != nil {
			e.opt.IssueSink(si)
		}
		return IssueError{si}
	}
	return nil
}

func (e *enforcingTokenSource) closeValue() {
	if n := len(e.stack); n > 0 {
		top := &e.stack[n-1]
		if top.kind == kindObject && !top.expectingKey {
			top.expectingKey = true
			top.pendingKey = ""
		}
	}
}

func (e *enforcingTokenSource) currentPathForToken(tok Token) string {
	if len(e.stack) == 0 {
		if tok.Kind == KindKey {
			return joinJSONPointer("", tok.String)
		}
		return ""
	}

	top := &e.stack[len(e.stack)-1]
	switch tok.Kind {
	case KindKey:
		return joinJSONPointer(top.path, tok.String)
	case KindBeginObject, KindBeginArray, KindString, KindNumber, KindBool, KindNull:
		if top.kind == kindArray {
			p := joinJSONPointer(top.path, strconv.Itoa(top.nextIndex))
			top.nextIndex++
			return p
		}
		if top.pendingKey != "" || !top.expectingKey {
			return joinJSONPointer(top.path, top.pendingKey)
		}
		return top.path
	default:
		return top.path
	}
}

func normalizeIssuePath(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

func (e *enforcingTokenSource) Location() int64 { return e.inner.Location() }

var jsonPointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func joinJSONPointer(base, token string) string {
	if base == "" {
		return "/" + jsonPointerEscaper.Replace(token)
	}
	return base + "/" + jsonPointerEscaper.Replace(token)
}
