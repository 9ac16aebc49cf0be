package extract

import (
	"errors"
	"fmt"
)

// Kind classifies extraction failures so callers can decide whether to skip
// a source or reject the whole request
type Kind string

// extraction failure kinds
const (
	KindUnsupportedType  Kind = "unsupported_type"
	KindTooLarge         Kind = "too_large"
	KindEmptyOrTooShort  Kind = "empty_or_too_short"
	KindExtractionFailed Kind = "extraction_failed"
	KindBlocked          Kind = "blocked"
)

// Error is a classified extraction failure
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err is an extraction Error of the given kind
func IsKind(err error, kind Kind) bool {
	var ee *Error
	return errors.As(err, &ee) && ee.Kind == kind
}

func errf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func wrapf(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}
