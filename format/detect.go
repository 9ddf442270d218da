// Package format identifies Netpbm variants and compressed wrappers from
// file names and leading bytes.
package format

import (
	"path/filepath"
	"strings"
)

// Format represents a Netpbm variant.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PlainPBM indicates an ASCII bitmap (P1).
	PlainPBM
	// PlainPGM indicates an ASCII graymap (P2).
	PlainPGM
	// PlainPPM indicates an ASCII pixmap (P3), the only decodable variant.
	PlainPPM
	// PBM indicates a binary bitmap (P4).
	PBM
	// PGM indicates a binary graymap (P5).
	PGM
	// PPM indicates a binary pixmap (P6).
	PPM
	// PAM indicates a portable arbitrary map (P7).
	PAM
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PlainPBM:
		return "plain PBM (P1)"
	case PlainPGM:
		return "plain PGM (P2)"
	case PlainPPM:
		return "plain PPM (P3)"
	case PBM:
		return "binary PBM (P4)"
	case PGM:
		return "binary PGM (P5)"
	case PPM:
		return "binary PPM (P6)"
	case PAM:
		return "PAM (P7)"
	default:
		return "Unknown"
	}
}

// Magic returns the two byte magic number of the format, or nil.
func (f Format) Magic() []byte {
	if f < PlainPBM || f > PAM {
		return nil
	}
	return []byte{'P', byte('0' + int(f))}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PlainPBM, PBM:
		return ".pbm"
	case PlainPGM, PGM:
		return ".pgm"
	case PlainPPM, PPM:
		return ".ppm"
	case PAM:
		return ".pam"
	default:
		return ""
	}
}

// Compression represents a stream wrapper around the image data.
type Compression int

const (
	// None indicates uncompressed data.
	None Compression = iota
	// Gzip indicates a gzip stream.
	Gzip
	// Zstd indicates a Zstandard frame.
	Zstd
	// Zlib indicates a zlib stream.
	Zlib
)

// String returns the string representation of the compression.
func (c Compression) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case Zlib:
		return "zlib"
	default:
		return "none"
	}
}

// Detect determines format and compression from a filename. Both the
// image extension and an optional compression suffix are recognized, for
// example "scan.ppm.gz".
func Detect(filename string) (Format, Compression) {
	name := strings.ToLower(filepath.Base(filename))

	comp := None
	switch filepath.Ext(name) {
	case ".gz", ".gzip":
		comp = Gzip
	case ".zst", ".zstd":
		comp = Zstd
	case ".zz", ".zlib":
		comp = Zlib
	}
	if comp != None {
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}

	switch filepath.Ext(name) {
	case ".ppm", ".pnm":
		return PlainPPM, comp
	case ".pgm":
		return PlainPGM, comp
	case ".pbm":
		return PlainPBM, comp
	case ".pam":
		return PAM, comp
	default:
		return Unknown, comp
	}
}

// DetectFromMagic checks the leading bytes to determine the Netpbm variant.
// Plain and binary variants cannot be told apart by extension, so this is
// the authoritative check.
func DetectFromMagic(data []byte) Format {
	if len(data) < 2 || data[0] != 'P' {
		return Unknown
	}
	if data[1] < '1' || data[1] > '7' {
		return Unknown
	}
	return Format(data[1] - '0')
}

// DetectCompression checks magic bytes for a known compression wrapper.
// Only wrappers with a binary signature are recognized. A zlib header is a
// two byte checksum that plain text can satisfy, so zlib is selected from
// the file name instead (see [Detect]).
func DetectCompression(data []byte) Compression {
	// gzip: 1f 8b
	if len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b {
		return Gzip
	}

	// zstd frame: 28 b5 2f fd
	if len(data) >= 4 && data[0] == 0x28 && data[1] == 0xb5 && data[2] == 0x2f && data[3] == 0xfd {
		return Zstd
	}

	return None
}
