package core

import (
	"io"
	"math"
)

// Scanner tokenizes the body of a P3 file. It reads from an io.ByteReader
// and keeps at most one pending byte of lookahead, so nothing past the
// last token it was asked for is consumed from the source.
type Scanner struct {
	reader  io.ByteReader
	pending byte
	peeked  bool
	pos     int64 // offset of the next unconsumed byte
}

// NewScanner creates a new scanner
func NewScanner(r io.ByteReader) *Scanner {
	return &Scanner{reader: r}
}

// Offset returns the number of bytes consumed so far.
func (s *Scanner) Offset() int64 {
	return s.pos
}

// peek looks at the next byte without consuming it
func (s *Scanner) peek() (byte, error) {
	if s.peeked {
		return s.pending, nil
	}
	b, err := s.reader.ReadByte()
	if err != nil {
		return 0, err
	}
	s.pending = b
	s.peeked = true
	return b, nil
}

// readByte consumes a single byte and advances position
func (s *Scanner) readByte() (byte, error) {
	b, err := s.peek()
	if err != nil {
		return 0, err
	}
	s.peeked = false
	s.pos++
	return b, nil
}

// ReadMagic reads the next n raw bytes, stopping early at end of stream or
// as soon as check rejects a byte. It returns the bytes accepted so far.
// A nil check accepts every byte.
func (s *Scanner) ReadMagic(n int, check func(i int, b byte) bool) ([]byte, error) {
	buf := make([]byte, 0, n)
	for len(buf) < n {
		b, err := s.readByte()
		if err == io.EOF {
			return buf, nil
		}
		if err != nil {
			return buf, ioError(s.pos, err)
		}
		buf = append(buf, b)
		if check != nil && !check(len(buf)-1, b) {
			return buf, nil
		}
	}
	return buf, nil
}

// SkipWhitespace consumes whitespace up to the first digit. Reaching the
// end of the stream is not an error; any other byte is.
func (s *Scanner) SkipWhitespace() error {
	for {
		b, err := s.peek()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return ioError(s.pos, err)
		}
		switch {
		case IsWhitespace(b):
			s.readByte()
		case IsDigit(b):
			return nil
		default:
			return newError(KindFormat, s.pos, "unexpected byte 0x%02x", b)
		}
	}
}

// ScanNumber accumulates consecutive digits into a value, most significant
// first. It stops without consuming at whitespace or end of stream and
// reports how many digits were read. A value past math.MaxUint32 is a
// KindOverflow error.
func (s *Scanner) ScanNumber() (uint32, int, error) {
	var value uint64
	digits := 0
	start := s.pos

	for {
		b, err := s.peek()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, digits, ioError(s.pos, err)
		}
		if IsWhitespace(b) {
			break
		}
		if !IsDigit(b) {
			return 0, digits, newError(KindFormat, s.pos, "unexpected byte 0x%02x in number", b)
		}

		value = value*10 + uint64(b-'0')
		if value > math.MaxUint32 {
			return 0, digits, newError(KindOverflow, start, "number exceeds %d", uint32(math.MaxUint32))
		}
		s.readByte()
		digits++
	}

	return uint32(value), digits, nil
}

// Helper functions

// IsWhitespace reports whether b separates tokens. Only space and line
// feed qualify; tab and carriage return do not.
func IsWhitespace(b byte) bool {
	return b == ' ' || b == '\n'
}

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
