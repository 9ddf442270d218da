package raster

import (
	"image"
	"image/color"
	"io"

	"github.com/tsawler/ppm"
)

func init() {
	image.RegisterFormat("ppm", "P3", decode, decodeConfig)
}

// decode uses the default ImageBuilder ceiling. Callers that need larger
// images call ppm.Decode with their own ImageBuilder.
func decode(r io.Reader) (image.Image, error) {
	img, err := ppm.Decode(r, ImageBuilder{})
	if err != nil {
		return nil, err
	}
	return img, nil
}

func decodeConfig(r io.Reader) (image.Config, error) {
	h, err := ppm.DecodeHeader(r)
	if err != nil {
		return image.Config{}, err
	}
	if err := checkBounds(h.Width, h.Height); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.NRGBA64Model,
		Width:      int(h.Width),
		Height:     int(h.Height),
	}, nil
}
