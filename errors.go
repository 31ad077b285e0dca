package safejson

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Diagnostic codes (exported consts for IDE completion and type safety by convention).
// Accessor functions pass these to i18n to render the canonical message text.
const (
	CodeNullNode        = "null_node"
	CodeNullObject      = "null_object"
	CodeNullArray       = "null_array"
	CodeNotObject       = "not_object"
	CodeNotArray        = "not_array"
	CodeNotValue        = "not_value"
	CodeMissingProperty = "missing_property"
	CodeNullProperty    = "null_property"
	CodeInvalidProperty = "invalid_property"
	CodeNotString       = "not_string"
	CodeNotInteger      = "not_integer"
	CodeNotBoolean      = "not_boolean"
	CodeNotGUID         = "not_guid"
	CodeNotAbsoluteURI  = "not_absolute_uri"
	CodeElementKind     = "element_kind"
	CodeInvalidElement  = "invalid_element"
	CodeCanceled        = "canceled"
)

type errorEntry struct {
	msg   string
	cause error // Optional: underlying error for round-tripping via ToErr.
}

// Error is an immutable, deduplicated collection of failure messages. The
// zero value is the empty Error, which is the identity for Combine. Insertion
// order of the first occurrence of each message is preserved, which makes
// FirstMessage deterministic: the first-inserted message wins.
type Error struct {
	entries []errorEntry
}

// ErrorFromMessage returns an Error carrying a single message.
func ErrorFromMessage(msg string) Error {
	return Error{entries: []errorEntry{{msg: msg}}}
}

// ErrorFromMessagef formats a single-message Error.
func ErrorFromMessagef(format string, args ...any) Error {
	return ErrorFromMessage(fmt.Sprintf(format, args...))
}

// ErrorFromErr wraps a native error. Composite errors produced by ToErr are
// unfolded back into their message set, so ErrorFromErr(e.ToErr()) preserves
// e's messages. A nil err yields the empty Error.
func ErrorFromErr(err error) Error {
	if err == nil {
		return Error{}
	}
	var e Error
	if errors.As(err, &e) {
		return e
	}
	var merr *multierror.Error
	if errors.As(err, &merr) {
		out := Error{}
		for _, sub := range merr.Errors {
			out = Combine(out, ErrorFromErr(sub))
		}
		return out
	}
	return Error{entries: []errorEntry{{msg: err.Error(), cause: err}}}
}

// IsEmpty reports whether the Error carries no messages.
func (e Error) IsEmpty() bool { return len(e.entries) == 0 }

// Len returns the number of distinct messages.
func (e Error) Len() int { return len(e.entries) }

// Messages returns the message set in first-insertion order.
func (e Error) Messages() []string {
	out := make([]string, len(e.entries))
	for i, it := range e.entries {
		out[i] = it.msg
	}
	return out
}

// FirstMessage returns one representative message for short-form display, or
// "" for the empty Error. Tie-break rule: first-inserted wins.
func (e Error) FirstMessage() string {
	if len(e.entries) == 0 {
		return ""
	}
	return e.entries[0].msg
}

// HasMessage reports whether msg is in the message set.
func (e Error) HasMessage(msg string) bool {
	for _, it := range e.entries {
		if it.msg == msg {
			return true
		}
	}
	return false
}

// Combine returns the set union of the two message sets. Duplicate messages
// collapse to the first occurrence (its cause is kept). Combine is
// associative and idempotent, and commutative at the message-set level; the
// empty Error is the identity.
func Combine(a, b Error) Error {
	if len(a.entries) == 0 {
		return b
	}
	if len(b.entries) == 0 {
		return a
	}
	seen := make(map[string]struct{}, len(a.entries)+len(b.entries))
	out := make([]errorEntry, 0, len(a.entries)+len(b.entries))
	for _, it := range a.entries {
		if _, ok := seen[it.msg]; ok {
			continue
		}
		seen[it.msg] = struct{}{}
		out = append(out, it)
	}
	for _, it := range b.entries {
		if _, ok := seen[it.msg]; ok {
			continue
		}
		seen[it.msg] = struct{}{}
		out = append(out, it)
	}
	return Error{entries: out}
}

// Prefix returns an Error with every message rewritten to prefix+message.
// Causes are preserved. Used for property-name context enrichment.
func (e Error) Prefix(prefix string) Error {
	if len(e.entries) == 0 || prefix == "" {
		return e
	}
	out := make([]errorEntry, len(e.entries))
	for i, it := range e.entries {
		out[i] = errorEntry{msg: prefix + it.msg, cause: it.cause}
	}
	return Error{entries: out}
}

// Equal reports message-set equality, independent of insertion order.
func (e Error) Equal(other Error) bool {
	if len(e.entries) != len(other.entries) {
		return false
	}
	for _, it := range e.entries {
		if !other.HasMessage(it.msg) {
			return false
		}
	}
	return true
}

// Join renders the full message set as one string.
func (e Error) Join(sep string) string {
	return strings.Join(e.Messages(), sep)
}

// Error summarizes the first few messages. The full set is available via
// Messages or ToErr.
func (e Error) Error() string {
	if len(e.entries) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(e.entries)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(e.entries[i].msg)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// ToErr converts the Error into a native error value: nil for the empty
// Error, the underlying cause (or a plain error) for a single message, and a
// *multierror.Error with one sub-error per message otherwise.
func (e Error) ToErr() error {
	switch len(e.entries) {
	case 0:
		return nil
	case 1:
		return e.entries[0].toErr()
	}
	var merr *multierror.Error
	for _, it := range e.entries {
		merr = multierror.Append(merr, it.toErr())
	}
	return merr
}

func (it errorEntry) toErr() error {
	if it.cause != nil {
		return it.cause
	}
	return errors.New(it.msg)
}
