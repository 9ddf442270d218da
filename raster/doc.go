// Package raster provides image builders for the ppm decoder and helpers to
// re-encode and resample the result.
//
// # Builders
//
//   - [ImageBuilder] - builds an *image.NRGBA64, scaling channel values from
//     the declared depth to 16 bits
//   - [PixmapBuilder] - keeps the raw triples in a [Pixmap], with size limits
//
// Both pull exactly width×height pixels and report [ppm.ErrTruncated] if
// the input ends early. Values past the last pixel are left unread.
//
// # Encoding
//
// [Encode] writes PNG, BMP or TIFF:
//
//	img, err := ppm.Open("photo.ppm", raster.ImageBuilder{})
//	if err != nil {
//	    return err
//	}
//	err = raster.Encode(w, img, raster.BMP)
//
// # image.Decode
//
// Importing this package registers the "ppm" format with the standard
// image package, so image.Decode and image.DecodeConfig accept P3 input.
package raster
