package core

import (
	"io"
	"iter"
)

// ValueSource produces unsigned integers one at a time. Next returns io.EOF
// once the source is exhausted.
type ValueSource interface {
	Next() (uint32, error)
}

// Values is a lazy stream of the whitespace separated integers read by a
// Scanner. After it returns its first error it is finished and every later
// call to Next returns io.EOF, so a caller can never observe values scanned
// past malformed input.
type Values struct {
	scanner  *Scanner
	finished bool
}

// NewValues creates a value stream over s.
func NewValues(s *Scanner) *Values {
	return &Values{scanner: s}
}

// Next returns the next integer, io.EOF on clean end of input, or an *Error.
func (v *Values) Next() (uint32, error) {
	if v.finished {
		return 0, io.EOF
	}

	if err := v.scanner.SkipWhitespace(); err != nil {
		v.finished = true
		return 0, err
	}

	value, digits, err := v.scanner.ScanNumber()
	if err != nil {
		v.finished = true
		return 0, err
	}
	if digits == 0 {
		// SkipWhitespace stops only at a digit or end of stream, so zero
		// digits means the input is exhausted.
		v.finished = true
		return 0, io.EOF
	}
	return value, nil
}

// All returns an iterator over the remaining values. The iterator yields a
// non-nil error at most once, as its last element.
func (v *Values) All() iter.Seq2[uint32, error] {
	return func(yield func(uint32, error) bool) {
		for {
			value, err := v.Next()
			if err == io.EOF {
				return
			}
			if !yield(value, err) || err != nil {
				return
			}
		}
	}
}
