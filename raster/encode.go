package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// OutputFormat is an encoding Encode can write.
type OutputFormat int

const (
	// PNG output (16 bits per channel).
	PNG OutputFormat = iota
	// BMP output (8 bits per channel).
	BMP
	// TIFF output, deflate compressed.
	TIFF
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	switch f {
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

// ParseOutputFormat parses a format name or file extension, case
// insensitively, with or without the leading dot.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.TrimPrefix(strings.ToLower(s), ".") {
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	default:
		return PNG, fmt.Errorf("unsupported output format: %q", s)
	}
}

// FormatFromPath returns the output format implied by a filename extension.
func FormatFromPath(path string) (OutputFormat, bool) {
	f, err := ParseOutputFormat(filepath.Ext(path))
	return f, err == nil
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, f OutputFormat) error {
	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported output format: %v", f)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %v: %w", f, err)
	}
	return nil
}

// ToPNG encodes img as PNG in memory. This is suitable for use with OCR
// engines like Tesseract.
func ToPNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img, PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Scale resamples img by factor using Catmull-Rom interpolation. A factor
// of 1 returns img unchanged.
func Scale(img image.Image, factor float64) (image.Image, error) {
	if factor <= 0 {
		return nil, fmt.Errorf("invalid scale factor: %v", factor)
	}
	if factor == 1 {
		return img, nil
	}

	b := img.Bounds()
	w := int(float64(b.Dx())*factor + 0.5)
	h := int(float64(b.Dy())*factor + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewNRGBA64(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst, nil
}
