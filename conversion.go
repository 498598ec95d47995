package pixconv

import (
	"fmt"
	"strings"
)

// Sample is a buffer element: a byte for byte-packed formats, a uint32 for
// word-packed formats.
type Sample interface {
	uint8 | uint32
}

// Conversion converts pixels from one format to another.
//
// A Conversion is a fixed composition of channel permutation, alpha
// synthesis or stripping, premultiplication and bit-depth packing, chosen
// once per format pair. It holds no mutable state: the same Conversion may
// run concurrently on distinct destination buffers.
//
// Source and destination may share storage. When the destination is wider
// per pixel than the source, pixels are processed from the last to the
// first so an in-place conversion at the same offset never overwrites
// input it has not read yet.
//
// The zero Conversion is invalid; every method returns ErrInvalidFormat.
type Conversion struct {
	p *plan
}

// Lookup returns the conversion from src to dst.
// Every pair of catalog formats has one; identical formats copy.
func Lookup(src, dst Format) (Conversion, error) {
	if !src.IsValid() {
		return Conversion{}, fmt.Errorf("%w: source %d", ErrInvalidFormat, src)
	}
	if !dst.IsValid() {
		return Conversion{}, fmt.Errorf("%w: destination %d", ErrInvalidFormat, dst)
	}
	return Conversion{p: &plans[src][dst]}, nil
}

// MustLookup is like Lookup but panics on invalid formats.
// Use it for package-level variables.
func MustLookup(src, dst Format) Conversion {
	c, err := Lookup(src, dst)
	if err != nil {
		panic(err)
	}
	return c
}

// Src returns the source format.
func (c Conversion) Src() Format {
	if c.p == nil {
		return formatCount
	}
	return c.p.src
}

// Dst returns the destination format.
func (c Conversion) Dst() Format {
	if c.p == nil {
		return formatCount
	}
	return c.p.dst
}

// String returns "Src->Dst".
func (c Conversion) String() string {
	return c.Src().String() + "->" + c.Dst().String()
}

// Steps returns the building blocks the conversion applies, in order, for
// example ["synthesize-alpha", "pack"].
func (c Conversion) Steps() []string {
	if c.p == nil {
		return nil
	}
	return c.p.steps()
}

// Describe returns String followed by the steps.
func (c Conversion) Describe() string {
	return c.String() + " [" + strings.Join(c.Steps(), ", ") + "]"
}

// Grows reports whether the destination is wider per pixel than the source,
// which makes in-place conversions run from the last pixel to the first.
func (c Conversion) Grows() bool {
	return c.p != nil && c.p.descending
}

// ConvertBytes converts n pixels between two byte-packed buffers.
func (c Conversion) ConvertBytes(dst []byte, dstOff int, src []byte, srcOff, n int) error {
	if err := c.check(StorageBytes, len(dst), dstOff, StorageBytes, len(src), srcOff, n); err != nil {
		return err
	}
	c.p.bytesToBytes(dst, dstOff, src, srcOff, n)
	return nil
}

// PackWords converts n byte-packed pixels into word-packed pixels.
func (c Conversion) PackWords(dst []uint32, dstOff int, src []byte, srcOff, n int) error {
	if err := c.check(StorageWords, len(dst), dstOff, StorageBytes, len(src), srcOff, n); err != nil {
		return err
	}
	c.p.bytesToWords(dst, dstOff, src, srcOff, n)
	return nil
}

// UnpackWords converts n word-packed pixels into byte-packed pixels.
func (c Conversion) UnpackWords(dst []byte, dstOff int, src []uint32, srcOff, n int) error {
	if err := c.check(StorageBytes, len(dst), dstOff, StorageWords, len(src), srcOff, n); err != nil {
		return err
	}
	c.p.wordsToBytes(dst, dstOff, src, srcOff, n)
	return nil
}

// ConvertWords converts n pixels between two word-packed buffers.
func (c Conversion) ConvertWords(dst []uint32, dstOff int, src []uint32, srcOff, n int) error {
	if err := c.check(StorageWords, len(dst), dstOff, StorageWords, len(src), srcOff, n); err != nil {
		return err
	}
	c.p.wordsToWords(dst, dstOff, src, srcOff, n)
	return nil
}

// check validates every argument before anything is written.
func (c Conversion) check(dstStorage Storage, dstLen, dstOff int, srcStorage Storage, srcLen, srcOff, n int) error {
	if c.p == nil {
		return ErrInvalidFormat
	}
	if c.p.src.Storage() != srcStorage {
		return fmt.Errorf("%w: source %v is stored as %v", ErrStorageMismatch, c.p.src, c.p.src.Storage())
	}
	if c.p.dst.Storage() != dstStorage {
		return fmt.Errorf("%w: destination %v is stored as %v", ErrStorageMismatch, c.p.dst, c.p.dst.Storage())
	}
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPixelCount, n)
	}
	if srcOff < 0 {
		return fmt.Errorf("%w: source offset %d", ErrInvalidOffset, srcOff)
	}
	if dstOff < 0 {
		return fmt.Errorf("%w: destination offset %d", ErrInvalidOffset, dstOff)
	}
	if !fits(srcLen, srcOff, n, c.p.in.samples) {
		return fmt.Errorf("%w: source has %d samples, need %d pixels of %d from offset %d",
			ErrBufferTooSmall, srcLen, n, c.p.in.samples, srcOff)
	}
	if !fits(dstLen, dstOff, n, c.p.out.samples) {
		return fmt.Errorf("%w: destination has %d samples, need %d pixels of %d from offset %d",
			ErrBufferTooSmall, dstLen, n, c.p.out.samples, dstOff)
	}
	return nil
}

// fits reports whether n pixels of size samples fit in a buffer of length
// length starting at off, without overflowing.
func fits(length, off, n, samples int) bool {
	if off > length {
		return false
	}
	return n <= (length-off)/samples
}

// Run converts n pixels with c, picking the method that matches the
// element types of dst and src.
func Run[D, S Sample](c Conversion, dst []D, dstOff int, src []S, srcOff, n int) error {
	switch d := any(dst).(type) {
	case []byte:
		switch s := any(src).(type) {
		case []byte:
			return c.ConvertBytes(d, dstOff, s, srcOff, n)
		case []uint32:
			return c.UnpackWords(d, dstOff, s, srcOff, n)
		}
	case []uint32:
		switch s := any(src).(type) {
		case []byte:
			return c.PackWords(d, dstOff, s, srcOff, n)
		case []uint32:
			return c.ConvertWords(d, dstOff, s, srcOff, n)
		}
	}
	return ErrStorageMismatch
}

// Convert converts n pixels of srcFormat at src[srcOff:] into dstFormat at
// dst[dstOff:].
//
// Example:
//
//	src := []byte{0x03, 0x05, 0x07, 0x13, 0x17, 0x19}
//	dst := make([]byte, 8)
//	err := pixconv.Convert(pixconv.FormatAXYZBytes, dst, 0, pixconv.FormatXYZBytes, src, 0, 2)
//	// dst == [0xFF 0x03 0x05 0x07 0xFF 0x13 0x17 0x19]
func Convert[D, S Sample](dstFormat Format, dst []D, dstOff int, srcFormat Format, src []S, srcOff, n int) error {
	c, err := Lookup(srcFormat, dstFormat)
	if err != nil {
		return err
	}
	return Run(c, dst, dstOff, src, srcOff, n)
}
