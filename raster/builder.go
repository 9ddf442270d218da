package raster

import (
	"image"
	"iter"
	"math"

	"github.com/tsawler/ppm"
	"github.com/tsawler/ppm/core"
)

// Pixmap is a decoded image with channel values kept as read.
type Pixmap struct {
	Width  int
	Height int
	Depth  uint32
	Pixels []ppm.Pixel // row-major, Width*Height entries
}

// At returns the pixel at column x, row y.
func (p *Pixmap) At(x, y int) ppm.Pixel {
	return p.Pixels[y*p.Width+x]
}

// Default limits for PixmapBuilder. ImageBuilder uses DefaultMaxPixels.
const (
	DefaultMaxWidth  = 0xFFF
	DefaultMaxHeight = 0xFFF
	DefaultMaxPixels = 0xFFFFF
)

// PixmapBuilder builds a *Pixmap. Zero limits fall back to the defaults.
type PixmapBuilder struct {
	MaxWidth  uint32
	MaxHeight uint32
	MaxPixels uint64
}

// Build implements ppm.Builder.
func (b PixmapBuilder) Build(width, height, depth uint32, pixels iter.Seq2[ppm.Pixel, error]) (*Pixmap, error) {
	maxW, maxH, maxN := b.MaxWidth, b.MaxHeight, b.MaxPixels
	if maxW == 0 {
		maxW = DefaultMaxWidth
	}
	if maxH == 0 {
		maxH = DefaultMaxHeight
	}
	if maxN == 0 {
		maxN = DefaultMaxPixels
	}

	n := uint64(width) * uint64(height)
	if width > maxW || height > maxH || n > maxN {
		return nil, core.NewError(core.KindFormat, "%dx%d image exceeds builder limits", width, height)
	}

	pm := &Pixmap{
		Width:  int(width),
		Height: int(height),
		Depth:  depth,
		Pixels: make([]ppm.Pixel, 0, n),
	}
	err := pull(pixels, n, func(_ uint64, p ppm.Pixel) {
		pm.Pixels = append(pm.Pixels, p)
	})
	if err != nil {
		return nil, err
	}
	return pm, nil
}

// ImageBuilder builds an *image.NRGBA64. Channel values are scaled from
// [0, depth] to [0, 0xFFFF]; values above depth are clamped.
//
// The image is allocated from the header before any pixel is read, so a
// ceiling always applies: a zero MaxPixels falls back to DefaultMaxPixels.
type ImageBuilder struct {
	MaxPixels uint64
}

// Build implements ppm.Builder.
func (b ImageBuilder) Build(width, height, depth uint32, pixels iter.Seq2[ppm.Pixel, error]) (*image.NRGBA64, error) {
	if err := checkBounds(width, height); err != nil {
		return nil, err
	}
	maxN := b.MaxPixels
	if maxN == 0 {
		maxN = DefaultMaxPixels
	}
	n := uint64(width) * uint64(height)
	if n > maxN {
		return nil, core.NewError(core.KindFormat, "%dx%d image exceeds the limit of %d pixels", width, height, maxN)
	}
	if depth == 0 {
		return nil, core.NewError(core.KindFormat, "depth is zero")
	}

	img := image.NewNRGBA64(image.Rect(0, 0, int(width), int(height)))
	err := pull(pixels, n, func(i uint64, p ppm.Pixel) {
		off := int(i) * 8
		put16(img.Pix[off:], scale(p.R, depth))
		put16(img.Pix[off+2:], scale(p.G, depth))
		put16(img.Pix[off+4:], scale(p.B, depth))
		put16(img.Pix[off+6:], 0xFFFF)
	})
	if err != nil {
		return nil, err
	}
	return img, nil
}

// checkBounds rejects dimensions an image.Rectangle of NRGBA64 pixels
// cannot hold on any platform.
func checkBounds(width, height uint32) error {
	n := uint64(width) * uint64(height)
	if width > math.MaxInt32 || height > math.MaxInt32 || n > math.MaxInt32/8 {
		return core.NewError(core.KindFormat, "%dx%d image is too large", width, height)
	}
	return nil
}

// pull reads exactly n pixels, calling fn for each one.
func pull(pixels iter.Seq2[ppm.Pixel, error], n uint64, fn func(i uint64, p ppm.Pixel)) error {
	if n == 0 {
		return nil
	}
	var i uint64
	for p, err := range pixels {
		if err != nil {
			return err
		}
		fn(i, p)
		i++
		if i == n {
			return nil
		}
	}
	return core.NewError(core.KindTruncated, "got %d of %d pixels", i, n)
}

// scale maps v in [0, depth] to [0, 0xFFFF], rounding to nearest.
func scale(v, depth uint32) uint16 {
	if v >= depth {
		return 0xFFFF
	}
	return uint16((uint64(v)*0xFFFF + uint64(depth)/2) / uint64(depth))
}

func put16(b []byte, v uint16) {
	b[0] = byte(v >> 8)
	b[1] = byte(v)
}
