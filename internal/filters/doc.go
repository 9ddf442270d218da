// Package filters undoes the compression wrappers a P3 file may be stored
// in.
//
// Netpbm files are plain text and compress well, so they are often kept as
// image.ppm.gz or image.ppm.zst. NewReader sniffs the leading bytes of a
// stream and layers the matching decompressor over it:
//
//	_, comp := format.Detect(path)
//	rc, err := filters.NewReader(f, comp)
//	if err != nil {
//	    return err
//	}
//	defer rc.Close()
//
// # Supported Wrappers
//
//   - gzip (1f 8b)
//   - Zstandard (28 b5 2f fd)
//   - zlib, selected by a .zz or .zlib file name only
//
// Uncompressed input is passed through unchanged.
package filters
