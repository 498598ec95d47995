// Package pixconv converts raw pixel buffers between binary layouts.
//
// # Overview
//
// pixconv translates already-decoded pixel samples between channel orders
// (XYZ and ZYX, i.e. RGB and BGR), alpha placements (leading, trailing,
// none), premultiplication states and storage widths (one byte per sample
// or one uint32 per pixel). Image codecs and scalers use it to move
// scanlines in and out of their working format without allocating.
//
// # Quick Start
//
//	src := []byte{0x03, 0x05, 0x07, 0x13, 0x17, 0x19} // two XYZ pixels
//	dst := make([]byte, 8)
//	if err := pixconv.XYZBytesToAXYZBytes(dst, 0, src, 0, 2); err != nil {
//	    return err
//	}
//	// dst == [0xFF 0x03 0x05 0x07 0xFF 0x13 0x17 0x19]
//
// Any pair of catalog formats can be resolved at run time:
//
//	c, err := pixconv.Lookup(pixconv.FormatAXYZInts, pixconv.FormatZYXAPreBytes)
//	err = c.UnpackWords(dst, 0, words, 0, n)
//
// # Formats
//
// The catalog is closed; see [Format]. Bytes formats are addressed by byte
// index, Ints formats by word index. Offsets and pixel counts are always in
// buffer elements of the respective buffer.
//
// # Arithmetic
//
// Premultiplication rounds c*a/255 to nearest. Un-premultiplication rounds
// c*255/a to nearest and clamps to 255; with alpha 0 the stored color is
// passed through unchanged. Grayscale reduction truncates (c0+c1+c2)/3.
// Formats without alpha read as fully opaque (255).
//
// # Aliasing and Concurrency
//
// Source and destination may be the same buffer. When a destination pixel
// is wider than a source pixel, pixels are converted from last to first,
// which makes an in-place conversion at the same offset safe.
//
// Conversions hold no state. Distinct destination buffers may be converted
// from any number of goroutines; a single destination must not be the
// target of two concurrent conversions.
//
// # Errors
//
// Bounds and argument errors are reported before anything is written.
// Degenerate premultiplied data (alpha 0, or color above alpha) is not an
// error and is processed with the arithmetic above.
package pixconv
