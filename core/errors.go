package core

import (
	"errors"
	"fmt"
)

// Kind classifies a decoding failure.
type Kind int

const (
	// KindUnknown is the fallback for failures that match no other kind.
	KindUnknown Kind = iota
	// KindFormat indicates a malformed token, bad magic number or unexpected byte.
	KindFormat
	// KindOverflow indicates a number that does not fit in 32 bits.
	KindOverflow
	// KindTruncated indicates the input ended before a mandatory field was read.
	KindTruncated
	// KindIO indicates a failure of the underlying byte source.
	KindIO
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindFormat:
		return "format"
	case KindOverflow:
		return "overflow"
	case KindTruncated:
		return "truncated"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// Sentinel errors, one per kind. Use errors.Is to test a returned error
// against them.
var (
	ErrUnknown   = errors.New("ppm: unknown error")
	ErrFormat    = errors.New("ppm: format error")
	ErrOverflow  = errors.New("ppm: numeric overflow")
	ErrTruncated = errors.New("ppm: truncated input")
	ErrIO        = errors.New("ppm: i/o error")
)

func (k Kind) sentinel() error {
	switch k {
	case KindFormat:
		return ErrFormat
	case KindOverflow:
		return ErrOverflow
	case KindTruncated:
		return ErrTruncated
	case KindIO:
		return ErrIO
	default:
		return ErrUnknown
	}
}

// Error is the error type returned by every stage of the decoder.
type Error struct {
	Kind   Kind
	Offset int64  // byte offset in the stream, -1 if not applicable
	Msg    string // optional detail
	Err    error  // underlying cause, set for KindIO
}

// Error implements the error interface.
func (e *Error) Error() string {
	s := e.Kind.sentinel().Error()
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Offset >= 0 {
		s += fmt.Sprintf(" at offset %d", e.Offset)
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// KindOf returns the kind of err. Errors that did not originate from the
// decoder are reported as KindUnknown, nil as KindUnknown too.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func newError(kind Kind, offset int64, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

func ioError(offset int64, err error) *Error {
	return &Error{Kind: KindIO, Offset: offset, Err: err}
}

// NewError builds an Error of the given kind with no offset.
func NewError(kind Kind, format string, args ...interface{}) *Error {
	return newError(kind, -1, format, args...)
}

// WrapIO wraps err as a KindIO Error. It returns err unchanged if it is
// already an *Error.
func WrapIO(err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return ioError(-1, err)
}
