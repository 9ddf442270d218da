// Package ppm decodes ASCII Portable Pixmap (P3) images from a byte stream
// without buffering the file.
//
// The decoder validates the header and then hands the pixels to a
// caller-supplied [Builder] as a lazy sequence. The builder decides what
// in-memory image to construct and how many pixels to pull.
//
// Basic usage:
//
//	img, err := ppm.Open("photo.ppm", raster.ImageBuilder{MaxPixels: 1 << 24})
//	if err != nil {
//	    // branch on ppm.KindOf(err)
//	}
//
// From any io.Reader, with policy options:
//
//	img, err := ppm.DecodeWith(ppm.NewDecoder().MaxPixels(1<<24), r, raster.ImageBuilder{MaxPixels: 1 << 24})
//
// # Wire Format
//
// The input is the literal "P3", exactly one whitespace byte, then decimal
// width, height and depth, then red, green and blue values for each pixel
// in row-major order. Only space and line feed count as whitespace.
//
// # Pixel Sequence
//
// The sequence groups values into triples as the builder pulls them. If
// the input ends with one or two values left over, they are dropped
// silently; a builder that needs exactly width×height pixels must count
// them itself. The sequence yields an error at most once and then ends.
package ppm

import (
	"iter"
)

// Pixel is one decoded pixel. Channel values are passed through as read and
// are not checked against the header depth.
type Pixel struct {
	R, G, B uint32
}

// Header holds the three fields that precede the pixel data.
type Header struct {
	Width  uint32
	Height uint32
	Depth  uint32 // declared maximum channel value
}

// Pixels returns Width×Height without overflow.
func (h Header) Pixels() uint64 {
	return uint64(h.Width) * uint64(h.Height)
}

// Builder constructs a value of type T from a decoded header and a lazy
// pixel sequence. It may stop pulling at any time; bytes past the last
// pixel it pulls are never read.
type Builder[T any] interface {
	Build(width, height, depth uint32, pixels iter.Seq2[Pixel, error]) (T, error)
}

// BuilderFunc adapts an ordinary function to the Builder interface.
type BuilderFunc[T any] func(width, height, depth uint32, pixels iter.Seq2[Pixel, error]) (T, error)

// Build calls f.
func (f BuilderFunc[T]) Build(width, height, depth uint32, pixels iter.Seq2[Pixel, error]) (T, error) {
	return f(width, height, depth, pixels)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	img := ppm.Must(ppm.Open("photo.ppm", raster.ImageBuilder{MaxPixels: 1 << 24}))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
