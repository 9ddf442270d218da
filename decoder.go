package ppm

import (
	"bufio"
	"io"
	"iter"
	"os"

	"github.com/tsawler/ppm/core"
	"github.com/tsawler/ppm/format"
	"github.com/tsawler/ppm/internal/filters"
)

// magic is the P3 magic number. It must be followed by one whitespace byte.
var magic = format.PlainPPM.Magic()

// headerFields names the header values in the order they are read.
var headerFields = [3]string{"width", "height", "depth"}

// Decoder holds a decode policy. Each configuration method returns a new
// Decoder, so a configured Decoder is safe for concurrent use and can be
// shared.
type Decoder struct {
	options DecodeOptions
}

// NewDecoder returns a Decoder with the default policy: zero width, height
// or depth is rejected and no size ceiling applies.
func NewDecoder() *Decoder {
	return &Decoder{options: defaultOptions()}
}

// clone creates a copy of the Decoder.
func (d *Decoder) clone() *Decoder {
	return &Decoder{options: d.options}
}

// ============================================================================
// Configuration Methods (return new Decoder instance)
// ============================================================================

// AllowZeroDimensions accepts headers whose width, height or depth is zero.
//
// Example:
//
//	d := ppm.NewDecoder().AllowZeroDimensions()
func (d *Decoder) AllowZeroDimensions() *Decoder {
	newDec := d.clone()
	newDec.options.rejectZero = false
	return newDec
}

// MaxPixels rejects headers whose width×height exceeds n. Zero removes the
// limit.
//
// Example:
//
//	d := ppm.NewDecoder().MaxPixels(4096 * 4096)
func (d *Decoder) MaxPixels(n uint64) *Decoder {
	newDec := d.clone()
	newDec.options.maxPixels = n
	return newDec
}

// MaxDepth rejects headers whose depth exceeds n. Zero removes the limit.
// Channel values themselves are never compared with the depth.
func (d *Decoder) MaxDepth(n uint32) *Decoder {
	newDec := d.clone()
	newDec.options.maxDepth = n
	return newDec
}

// ============================================================================
// Decoding
// ============================================================================

// Decode reads a P3 image from r with the default policy and returns what
// b builds from it.
func Decode[T any](r io.Reader, b Builder[T]) (T, error) {
	return DecodeWith(NewDecoder(), r, b)
}

// Open opens the file at path, decompressing gzip or zstd wrapped files
// transparently, and decodes it with the default policy. zlib streams are
// recognized only by a ".zz" or ".zlib" extension.
func Open[T any](path string, b Builder[T]) (T, error) {
	return OpenWith(NewDecoder(), path, b)
}

// OpenWith is Open with the policy of d.
func OpenWith[T any](d *Decoder, path string, b Builder[T]) (T, error) {
	var zero T

	f, err := os.Open(path)
	if err != nil {
		return zero, core.WrapIO(err)
	}
	defer f.Close()

	_, comp := format.Detect(path)
	rc, err := filters.NewReader(f, comp)
	if err != nil {
		return zero, core.WrapIO(err)
	}
	defer rc.Close()

	return DecodeWith(d, rc, b)
}

// DecodeWith reads a P3 image from r with the policy of d.
//
// The header is validated first. Then b is called with the header fields
// and a lazy pixel sequence; its result is returned. If b swallows an error
// yielded by the sequence and returns a nil error, that pixel error is
// returned instead, so a failed read never produces a value.
//
// If r does not implement io.ByteReader it is wrapped in a bufio.Reader,
// which may consume bytes beyond the last pixel b pulls.
func DecodeWith[T any](d *Decoder, r io.Reader, b Builder[T]) (T, error) {
	var zero T

	h, values, err := d.readHeader(r)
	if err != nil {
		return zero, err
	}

	chunker := core.NewChunker(values)
	var pixelErr error
	pixels := func(yield func(Pixel, error) bool) {
		for t, err := range chunker.All() {
			if err != nil {
				pixelErr = err
				yield(Pixel{}, err)
				return
			}
			if !yield(Pixel{R: t[0], G: t[1], B: t[2]}, nil) {
				return
			}
		}
	}

	result, err := b.Build(h.Width, h.Height, h.Depth, iter.Seq2[Pixel, error](pixels))
	if err != nil {
		return zero, err
	}
	if pixelErr != nil {
		return zero, pixelErr
	}
	return result, nil
}

// DecodeHeader reads and validates only the header of a P3 image.
func DecodeHeader(r io.Reader) (Header, error) {
	return NewDecoder().DecodeHeader(r)
}

// DecodeHeader reads and validates only the header, with the policy of d.
func (d *Decoder) DecodeHeader(r io.Reader) (Header, error) {
	h, _, err := d.readHeader(r)
	return h, err
}

// readHeader checks the magic number and reads width, height and depth. It
// returns the value stream positioned at the first pixel.
func (d *Decoder) readHeader(r io.Reader) (Header, *core.Values, error) {
	s := core.NewScanner(byteReader(r))

	if err := readMagic(s); err != nil {
		return Header{}, nil, err
	}

	values := core.NewValues(s)
	var fields [3]uint32
	for i := range fields {
		v, err := values.Next()
		if err == io.EOF {
			return Header{}, nil, newTruncatedError("missing %s", headerFields[i])
		}
		if err != nil {
			return Header{}, nil, err
		}
		fields[i] = v
	}

	h := Header{Width: fields[0], Height: fields[1], Depth: fields[2]}
	if err := d.options.validate(h); err != nil {
		return Header{}, nil, err
	}
	return h, values, nil
}

// readMagic consumes "P3" plus the mandatory whitespace byte. A mismatch is
// reported as soon as it is seen, so short inputs that cannot be P3 fail as
// format errors rather than truncation.
func readMagic(s *core.Scanner) error {
	accept := func(i int, b byte) bool {
		if i < len(magic) {
			return b == magic[i]
		}
		return core.IsWhitespace(b)
	}

	got, err := s.ReadMagic(len(magic)+1, accept)
	if err != nil {
		return err
	}

	for i, b := range got {
		if accept(i, b) {
			continue
		}
		if i < len(magic) {
			if f := format.DetectFromMagic(got); f != format.Unknown {
				return newFormatError("%v is not supported", f)
			}
			return newFormatError("bad magic number %q", got)
		}
		return newFormatError("magic number must be followed by whitespace, got 0x%02x", b)
	}

	if len(got) < len(magic)+1 {
		return newTruncatedError("incomplete magic number")
	}
	return nil
}

// byteReader returns r as an io.ByteReader, buffering it only if needed.
func byteReader(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return bufio.NewReader(r)
}
