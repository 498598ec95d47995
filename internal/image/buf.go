// Package image holds whole-image pixel buffers in any pixconv format and
// moves them between formats, codecs and the standard library.
//
// Every per-pixel operation goes through the pixconv conversion engine:
// there is no format-specific code in this package.
package image

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/pixconv"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not in the catalog.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrInvalidStride is returned when stride is less than minimum required.
	ErrInvalidStride = errors.New("image: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")

	// ErrStorageMismatch is returned when a byte format is paired with word
	// storage or the other way round.
	ErrStorageMismatch = errors.New("image: storage does not match format")
)

// ImageBuf is an image buffer in one pixconv format.
//
// Byte formats keep their samples in Data, word formats in Words; the other
// slice is nil. Stride and all offsets are counted in samples of that
// slice: bytes for byte formats, words for word formats.
//
// Thread safety: ImageBuf is safe for concurrent read access. Write operations
// (Set*, Fill, Clear, ConvertInPlace, InvalidatePremulCache) require external
// synchronization.
type ImageBuf struct {
	data   []byte
	words  []uint32
	width  int
	height int
	stride int
	format pixconv.Format

	// Lazy premultiplication cache
	premulMu    sync.RWMutex
	premulReady bool
	premulData  []byte
	premulWords []uint32
}

func checkShape(width, height int, format pixconv.Format) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	if !format.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidFormat, format)
	}
	return nil
}

// NewImageBuf creates a zeroed image buffer with tightly packed rows.
func NewImageBuf(width, height int, format pixconv.Format) (*ImageBuf, error) {
	if err := checkShape(width, height, format); err != nil {
		return nil, err
	}
	return newImageBuf(width, height, format, format.RowSamples(width)), nil
}

// NewImageBufWithStride creates a zeroed image buffer with a custom stride.
// Stride is in samples and must be at least format.RowSamples(width).
func NewImageBufWithStride(width, height int, format pixconv.Format, stride int) (*ImageBuf, error) {
	if err := checkShape(width, height, format); err != nil {
		return nil, err
	}
	if stride < format.RowSamples(width) {
		return nil, ErrInvalidStride
	}
	return newImageBuf(width, height, format, stride), nil
}

func newImageBuf(width, height int, format pixconv.Format, stride int) *ImageBuf {
	b := &ImageBuf{
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}
	if format.Storage() == pixconv.StorageWords {
		b.words = make([]uint32, stride*height)
	} else {
		b.data = make([]byte, stride*height)
	}
	return b
}

// FromRaw wraps existing byte samples without copying.
// The caller must keep data valid for the lifetime of the ImageBuf.
func FromRaw(data []byte, width, height int, format pixconv.Format, stride int) (*ImageBuf, error) {
	if err := checkRaw(len(data), width, height, format, stride, pixconv.StorageBytes); err != nil {
		return nil, err
	}
	return &ImageBuf{
		data:   data[:stride*height],
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// FromRawWords wraps existing word samples without copying.
func FromRawWords(words []uint32, width, height int, format pixconv.Format, stride int) (*ImageBuf, error) {
	if err := checkRaw(len(words), width, height, format, stride, pixconv.StorageWords); err != nil {
		return nil, err
	}
	return &ImageBuf{
		words:  words[:stride*height],
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

func checkRaw(n, width, height int, format pixconv.Format, stride int, storage pixconv.Storage) error {
	if err := checkShape(width, height, format); err != nil {
		return err
	}
	if format.Storage() != storage {
		return fmt.Errorf("%w: %v is stored as %v", ErrStorageMismatch, format, format.Storage())
	}
	if stride < format.RowSamples(width) {
		return ErrInvalidStride
	}
	if n < stride*height {
		return fmt.Errorf("%w: have %d samples, need %d", ErrDataTooSmall, n, stride*height)
	}
	return nil
}

// Clone creates a deep copy of the image buffer.
func (b *ImageBuf) Clone() *ImageBuf {
	c := &ImageBuf{
		width:  b.width,
		height: b.height,
		stride: b.stride,
		format: b.format,
	}
	if b.words != nil {
		c.words = append([]uint32(nil), b.words...)
	} else {
		c.data = append([]byte(nil), b.data...)
	}
	return c
}

// Width returns the image width in pixels.
func (b *ImageBuf) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *ImageBuf) Height() int {
	return b.height
}

// Stride returns the number of samples per row, including padding.
func (b *ImageBuf) Stride() int {
	return b.stride
}

// Format returns the pixel format.
func (b *ImageBuf) Format() pixconv.Format {
	return b.format
}

// Bounds returns the image dimensions as (width, height).
func (b *ImageBuf) Bounds() (int, int) {
	return b.width, b.height
}

// Data returns the byte samples, or nil for a word format.
// Call InvalidatePremulCache after modifying them.
func (b *ImageBuf) Data() []byte {
	return b.data
}

// Words returns the word samples, or nil for a byte format.
// Call InvalidatePremulCache after modifying them.
func (b *ImageBuf) Words() []uint32 {
	return b.words
}

// Row returns the byte samples of row y, or nil if y is out of bounds or
// the format stores words.
func (b *ImageBuf) Row(y int) []byte {
	if y < 0 || y >= b.height || b.data == nil {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.format.RowSamples(b.width)]
}

// RowWords returns the word samples of row y, or nil if y is out of bounds
// or the format stores bytes.
func (b *ImageBuf) RowWords(y int) []uint32 {
	if y < 0 || y >= b.height || b.words == nil {
		return nil
	}
	start := y * b.stride
	return b.words[start : start+b.width]
}

// PixelOffset returns the sample offset of pixel (x, y).
// Returns -1 if coordinates are out of bounds.
func (b *ImageBuf) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.stride + x*b.format.SamplesPerPixel()
}

// rowOffset is the sample offset of the first pixel of row y.
func (b *ImageBuf) rowOffset(y int) int {
	return y * b.stride
}

// GetRGBA returns the straight (non-premultiplied) color at (x, y).
// Gray pixels read as r=g=b; formats without alpha read a=255.
// Returns (0,0,0,0) if coordinates are out of bounds.
func (b *ImageBuf) GetRGBA(x, y int) (r, g, bl, a uint8) {
	off := b.PixelOffset(x, y)
	if off < 0 {
		return 0, 0, 0, 0
	}
	var px [4]byte
	if err := b.runFrom(pixconv.MustLookup(b.format, pixconv.FormatXYZABytes), px[:], off, 1); err != nil {
		return 0, 0, 0, 0
	}
	return px[0], px[1], px[2], px[3]
}

// SetRGBA stores a straight color at (x, y), converting it to the buffer's
// format. Gray formats store the mean of r, g and bl.
func (b *ImageBuf) SetRGBA(x, y int, r, g, bl, a uint8) error {
	off := b.PixelOffset(x, y)
	if off < 0 {
		return ErrOutOfBounds
	}
	px := [4]byte{r, g, bl, a}
	if err := b.runInto(pixconv.MustLookup(pixconv.FormatXYZABytes, b.format), off, px[:], 1); err != nil {
		return err
	}
	b.InvalidatePremulCache()
	return nil
}

// runFrom converts n pixels starting at sample off of b into dst bytes.
func (b *ImageBuf) runFrom(c pixconv.Conversion, dst []byte, off, n int) error {
	if b.words != nil {
		return c.UnpackWords(dst, 0, b.words, off, n)
	}
	return c.ConvertBytes(dst, 0, b.data, off, n)
}

// runInto converts n byte pixels from src into b starting at sample off.
func (b *ImageBuf) runInto(c pixconv.Conversion, off int, src []byte, n int) error {
	if b.words != nil {
		return c.PackWords(b.words, off, src, 0, n)
	}
	return c.ConvertBytes(b.data, off, src, 0, n)
}

// Clear sets every sample to zero.
func (b *ImageBuf) Clear() {
	clear(b.data)
	clear(b.words)
	b.InvalidatePremulCache()
}

// Fill sets every pixel to the given straight color.
func (b *ImageBuf) Fill(r, g, bl, a uint8) {
	if b.width == 0 || b.height == 0 {
		return
	}
	if err := b.SetRGBA(0, 0, r, g, bl, a); err != nil {
		return
	}

	spp := b.format.SamplesPerPixel()
	for y := range b.height {
		start := b.rowOffset(y)
		if b.words != nil {
			fillRow(b.words[start:start+b.width], b.words[:1])
			continue
		}
		fillRow(b.data[start:start+b.width*spp], b.data[:spp])
	}
}

// fillRow repeats px across row, doubling the copied span each step.
func fillRow[S pixconv.Sample](row, px []S) {
	n := copy(row, px)
	for n < len(row) {
		n += copy(row[n:], row[:n])
	}
}

// InvalidatePremulCache marks the premultiplication cache as stale.
// Call this after modifying samples directly via Data, Words or Row.
func (b *ImageBuf) InvalidatePremulCache() {
	b.premulMu.Lock()
	b.premulReady = false
	b.premulMu.Unlock()
}

// PremultipliedData returns the byte samples in the premultiplied version
// of the buffer's format, with the same stride. For formats already
// premultiplied or without alpha it returns Data itself. Word formats
// return nil; use PremultipliedWords.
//
// The result is cached; call InvalidatePremulCache if the original data
// has been modified.
func (b *ImageBuf) PremultipliedData() []byte {
	if b.data == nil {
		return nil
	}
	if b.format.PremultipliedVersion() == b.format {
		return b.data
	}
	b.ensurePremultiplied()
	return b.premulData
}

// PremultipliedWords is PremultipliedData for word formats.
func (b *ImageBuf) PremultipliedWords() []uint32 {
	if b.words == nil {
		return nil
	}
	if b.format.PremultipliedVersion() == b.format {
		return b.words
	}
	b.ensurePremultiplied()
	return b.premulWords
}

func (b *ImageBuf) ensurePremultiplied() {
	b.premulMu.RLock()
	ready := b.premulReady
	b.premulMu.RUnlock()
	if ready {
		return
	}

	b.premulMu.Lock()
	defer b.premulMu.Unlock()

	// Double-check after acquiring write lock
	if b.premulReady {
		return
	}

	c := pixconv.MustLookup(b.format, b.format.PremultipliedVersion())
	if b.words != nil {
		if len(b.premulWords) != len(b.words) {
			b.premulWords = make([]uint32, len(b.words))
		}
		for y := range b.height {
			off := b.rowOffset(y)
			_ = c.ConvertWords(b.premulWords, off, b.words, off, b.width)
		}
	} else {
		if len(b.premulData) != len(b.data) {
			b.premulData = make([]byte, len(b.data))
		}
		for y := range b.height {
			off := b.rowOffset(y)
			_ = c.ConvertBytes(b.premulData, off, b.data, off, b.width)
		}
	}
	b.premulReady = true
}

// IsPremulCached returns true if premultiplied data is currently cached.
func (b *ImageBuf) IsPremulCached() bool {
	b.premulMu.RLock()
	ready := b.premulReady
	b.premulMu.RUnlock()
	return ready
}

// SubImage returns a view into a rectangular region of the image.
// The view shares samples with the original and keeps its stride; its
// capacity ends at the view's last sample, so ConvertInPlace on a view
// never grows into the parent's memory.
// Returns nil if the bounds are invalid or outside the image.
func (b *ImageBuf) SubImage(x, y, width, height int) *ImageBuf {
	if x < 0 || y < 0 || width <= 0 || height <= 0 {
		return nil
	}
	if x+width > b.width || y+height > b.height {
		return nil
	}

	spp := b.format.SamplesPerPixel()
	start := y*b.stride + x*spp
	end := (y+height-1)*b.stride + (x+width)*spp

	sub := &ImageBuf{
		width:  width,
		height: height,
		stride: b.stride,
		format: b.format,
	}
	if b.words != nil {
		sub.words = b.words[start:end:end]
	} else {
		sub.data = b.data[start:end:end]
	}
	return sub
}

// ByteSize returns the size of the samples in bytes.
func (b *ImageBuf) ByteSize() int {
	return len(b.data) + len(b.words)*4
}

// IsEmpty returns true if the image has zero dimensions.
func (b *ImageBuf) IsEmpty() bool {
	return b.width == 0 || b.height == 0
}
