package filters

import (
	"bufio"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"

	"github.com/tsawler/ppm/format"
)

// sniffLen is the number of leading bytes needed to recognize every
// supported wrapper.
const sniffLen = 4

// ReadCloser is a decompressed stream that also supports byte-at-a-time
// reads.
type ReadCloser interface {
	io.Reader
	io.ByteReader
	io.Closer
}

type readCloser struct {
	*bufio.Reader
	close func() error
}

func (r *readCloser) Close() error {
	if r.close == nil {
		return nil
	}
	return r.close()
}

// NewReader detects the compression of r from its first bytes and returns
// a reader over the decompressed data. Closing the returned reader releases
// decoder resources; it does not close r.
//
// gzip and zstd are recognized by signature. zlib has none that plain text
// cannot match, so it is used only when hint is format.Zlib, typically
// derived from the file name with format.Detect. Any other hint is ignored.
func NewReader(r io.Reader, hint format.Compression) (ReadCloser, error) {
	br := bufio.NewReader(r)

	magic, err := br.Peek(sniffLen)
	if err != nil && err != io.EOF {
		return nil, err
	}

	comp := format.DetectCompression(magic)
	if comp == format.None && hint == format.Zlib {
		comp = format.Zlib
	}
	return Decompress(br, comp)
}

// Decompress wraps r with the decoder for comp.
func Decompress(r io.Reader, comp format.Compression) (ReadCloser, error) {
	switch comp {
	case format.None:
		br, ok := r.(*bufio.Reader)
		if !ok {
			br = bufio.NewReader(r)
		}
		return &readCloser{Reader: br}, nil

	case format.Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return &readCloser{Reader: bufio.NewReader(zr), close: zr.Close}, nil

	case format.Zstd:
		zr, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		return &readCloser{Reader: bufio.NewReader(zr), close: func() error {
			zr.Close()
			return nil
		}}, nil

	case format.Zlib:
		zr, err := zlib.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create zlib reader: %w", err)
		}
		return &readCloser{Reader: bufio.NewReader(zr), close: zr.Close}, nil

	default:
		return nil, fmt.Errorf("unsupported compression: %v", comp)
	}
}
