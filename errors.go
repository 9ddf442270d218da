package ppm

import (
	"github.com/tsawler/ppm/core"
)

// Error is the error type returned by the decoder.
type Error = core.Error

// Kind classifies a decoding failure.
type Kind = core.Kind

// Error kinds.
const (
	KindUnknown   = core.KindUnknown
	KindFormat    = core.KindFormat
	KindOverflow  = core.KindOverflow
	KindTruncated = core.KindTruncated
	KindIO        = core.KindIO
)

// Sentinel errors for use with errors.Is.
var (
	ErrUnknown   = core.ErrUnknown
	ErrFormat    = core.ErrFormat
	ErrOverflow  = core.ErrOverflow
	ErrTruncated = core.ErrTruncated
	ErrIO        = core.ErrIO
)

// KindOf returns the kind of err, or KindUnknown if err did not come from
// the decoder.
func KindOf(err error) Kind {
	return core.KindOf(err)
}

func newFormatError(format string, args ...interface{}) error {
	return core.NewError(core.KindFormat, format, args...)
}

func newTruncatedError(format string, args ...interface{}) error {
	return core.NewError(core.KindTruncated, format, args...)
}
