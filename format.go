package pixconv

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"golang.org/x/text/cases"

	"github.com/gogpu/pixconv/internal/alpha"
)

// Format represents a pixel storage format.
//
// X, Y and Z name the three color channels in storage order (XYZ is RGB,
// ZYX is BGR). A leading A means alpha is stored first, a trailing A means
// it is stored last. Pre marks premultiplied alpha. Bytes formats store one
// byte per sample; Ints formats store one uint32 per pixel with the first
// sample in the most significant byte.
type Format uint8

const (
	// FormatGrayBytes is 8-bit grayscale (1 byte per pixel).
	FormatGrayBytes Format = iota

	// FormatXYZBytes is 24-bit color, no alpha (3 bytes per pixel).
	FormatXYZBytes

	// FormatZYXBytes is 24-bit color in reversed order, no alpha.
	FormatZYXBytes

	// FormatAXYZBytes is 32-bit color with leading alpha (4 bytes per pixel).
	FormatAXYZBytes

	// FormatAXYZPreBytes is FormatAXYZBytes with premultiplied alpha.
	FormatAXYZPreBytes

	// FormatAZYXBytes is 32-bit reversed color with leading alpha.
	FormatAZYXBytes

	// FormatAZYXPreBytes is FormatAZYXBytes with premultiplied alpha.
	FormatAZYXPreBytes

	// FormatXYZABytes is 32-bit color with trailing alpha.
	// This is the layout of image.NRGBA.
	FormatXYZABytes

	// FormatXYZAPreBytes is FormatXYZABytes with premultiplied alpha.
	// This is the layout of image.RGBA.
	FormatXYZAPreBytes

	// FormatZYXABytes is 32-bit reversed color with trailing alpha.
	// Common on Windows and some GPU formats.
	FormatZYXABytes

	// FormatZYXAPreBytes is FormatZYXABytes with premultiplied alpha.
	FormatZYXAPreBytes

	// FormatXYZInts is one word per pixel, 0x__XXYYZZ. The top byte is
	// ignored on read and written as 0xFF.
	FormatXYZInts

	// FormatZYXInts is one word per pixel, 0x__ZZYYXX.
	FormatZYXInts

	// FormatAXYZInts is one word per pixel, 0xAAXXYYZZ.
	FormatAXYZInts

	// FormatAXYZPreInts is FormatAXYZInts with premultiplied alpha.
	FormatAXYZPreInts

	// FormatAZYXInts is one word per pixel, 0xAAZZYYXX.
	FormatAZYXInts

	// FormatAZYXPreInts is FormatAZYXInts with premultiplied alpha.
	FormatAZYXPreInts

	// formatCount is the number of formats (for internal use).
	formatCount
)

// Storage is how a format lays pixels out in memory.
type Storage uint8

const (
	// StorageBytes stores one byte per sample in a []byte.
	StorageBytes Storage = iota

	// StorageWords stores one uint32 per pixel in a []uint32.
	StorageWords
)

// String returns a string representation of the storage.
func (s Storage) String() string {
	if s == StorageWords {
		return "Words"
	}
	return "Bytes"
}

// Order is the storage order of the color channels.
type Order uint8

const (
	// OrderXYZ stores X first.
	OrderXYZ Order = iota

	// OrderZYX stores Z first.
	OrderZYX

	// OrderGray stores a single gray sample.
	OrderGray
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// Name is the canonical name, as accepted by ParseFormat.
	Name string

	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// Channels is the number of stored channels, alpha included.
	// Word formats without alpha report 3.
	Channels int

	// Storage is the buffer element type.
	Storage Storage

	// Order is the color channel order.
	Order Order

	// Alpha is the position of the alpha sample.
	Alpha alpha.Position

	// IsPremultiplied indicates if color is premultiplied by alpha.
	IsPremultiplied bool
}

// formatInfoTable contains metadata for each format.
var formatInfoTable = [formatCount]FormatInfo{
	FormatGrayBytes:    {"GrayBytes", 1, 1, StorageBytes, OrderGray, alpha.None, false},
	FormatXYZBytes:     {"XYZBytes", 3, 3, StorageBytes, OrderXYZ, alpha.None, false},
	FormatZYXBytes:     {"ZYXBytes", 3, 3, StorageBytes, OrderZYX, alpha.None, false},
	FormatAXYZBytes:    {"AXYZBytes", 4, 4, StorageBytes, OrderXYZ, alpha.Leading, false},
	FormatAXYZPreBytes: {"AXYZPreBytes", 4, 4, StorageBytes, OrderXYZ, alpha.Leading, true},
	FormatAZYXBytes:    {"AZYXBytes", 4, 4, StorageBytes, OrderZYX, alpha.Leading, false},
	FormatAZYXPreBytes: {"AZYXPreBytes", 4, 4, StorageBytes, OrderZYX, alpha.Leading, true},
	FormatXYZABytes:    {"XYZABytes", 4, 4, StorageBytes, OrderXYZ, alpha.Trailing, false},
	FormatXYZAPreBytes: {"XYZAPreBytes", 4, 4, StorageBytes, OrderXYZ, alpha.Trailing, true},
	FormatZYXABytes:    {"ZYXABytes", 4, 4, StorageBytes, OrderZYX, alpha.Trailing, false},
	FormatZYXAPreBytes: {"ZYXAPreBytes", 4, 4, StorageBytes, OrderZYX, alpha.Trailing, true},
	FormatXYZInts:      {"XYZInts", 4, 3, StorageWords, OrderXYZ, alpha.None, false},
	FormatZYXInts:      {"ZYXInts", 4, 3, StorageWords, OrderZYX, alpha.None, false},
	FormatAXYZInts:     {"AXYZInts", 4, 4, StorageWords, OrderXYZ, alpha.Leading, false},
	FormatAXYZPreInts:  {"AXYZPreInts", 4, 4, StorageWords, OrderXYZ, alpha.Leading, true},
	FormatAZYXInts:     {"AZYXInts", 4, 4, StorageWords, OrderZYX, alpha.Leading, false},
	FormatAZYXPreInts:  {"AZYXPreInts", 4, 4, StorageWords, OrderZYX, alpha.Leading, true},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// SamplesPerPixel returns the number of buffer elements one pixel occupies:
// BytesPerPixel for byte formats, 1 for word formats.
func (f Format) SamplesPerPixel() int {
	info := f.Info()
	if info.Storage == StorageWords {
		return 1
	}
	return info.BytesPerPixel
}

// Channels returns the number of stored channels, alpha included.
func (f Format) Channels() int {
	return f.Info().Channels
}

// Storage returns the buffer element type of this format.
func (f Format) Storage() Storage {
	return f.Info().Storage
}

// Order returns the color channel order.
func (f Format) Order() Order {
	return f.Info().Order
}

// AlphaPosition returns where the alpha sample is stored.
func (f Format) AlphaPosition() alpha.Position {
	return f.Info().Alpha
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().Alpha != alpha.None
}

// IsPremultiplied returns true if alpha is premultiplied.
func (f Format) IsPremultiplied() bool {
	return f.Info().IsPremultiplied
}

// IsGrayscale returns true if this is a grayscale format.
func (f Format) IsGrayscale() bool {
	return f.Info().Order == OrderGray
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// String returns a string representation of the format.
func (f Format) String() string {
	if !f.IsValid() {
		return "Unknown"
	}
	return formatInfoTable[f].Name
}

// RowSamples calculates the number of buffer elements needed for a row of
// the given width.
func (f Format) RowSamples(width int) int {
	return width * f.SamplesPerPixel()
}

// PremultipliedVersion returns the premultiplied version of this format.
// Returns the same format if already premultiplied or has no alpha.
func (f Format) PremultipliedVersion() Format {
	switch f {
	case FormatAXYZBytes, FormatAZYXBytes, FormatXYZABytes, FormatZYXABytes,
		FormatAXYZInts, FormatAZYXInts:
		return f + 1
	default:
		return f
	}
}

// UnpremultipliedVersion returns the non-premultiplied version of this format.
// Returns the same format if already non-premultiplied or has no alpha.
func (f Format) UnpremultipliedVersion() Format {
	switch f {
	case FormatAXYZPreBytes, FormatAZYXPreBytes, FormatXYZAPreBytes, FormatZYXAPreBytes,
		FormatAXYZPreInts, FormatAZYXPreInts:
		return f - 1
	default:
		return f
	}
}

// Formats returns every format in the catalog in declaration order.
func Formats() []Format {
	out := make([]Format, formatCount)
	for i := range out {
		out[i] = Format(i)
	}
	return out
}

// formatByName maps case-folded names to formats.
var formatByName = func() map[string]Format {
	fold := cases.Fold()
	m := make(map[string]Format, formatCount)
	for f := range formatCount {
		m[fold.String(formatInfoTable[f].Name)] = f
	}
	return m
}()

// ParseFormat returns the format with the given name, ignoring case.
// Names match Format.String, for example "AXYZPreInts".
func ParseFormat(name string) (Format, error) {
	if f, ok := formatByName[cases.Fold().String(name)]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, name)
}

// textureFormats maps the formats a GPU texture can hold byte for byte.
// Render targets store premultiplied color, like image.RGBA.
var textureFormats = map[Format]gputypes.TextureFormat{
	FormatGrayBytes:    gputypes.TextureFormatR8Unorm,
	FormatXYZAPreBytes: gputypes.TextureFormatRGBA8Unorm,
	FormatZYXAPreBytes: gputypes.TextureFormatBGRA8Unorm,
}

// TextureFormat returns the texture format with the same memory layout as f.
// The second result is false, with TextureFormatUndefined, when no texture
// format matches.
func (f Format) TextureFormat() (gputypes.TextureFormat, bool) {
	tf, ok := textureFormats[f]
	if !ok {
		return gputypes.TextureFormatUndefined, false
	}
	return tf, true
}

// FormatFromTexture returns the catalog format whose bytes match a texture
// of format tf.
func FormatFromTexture(tf gputypes.TextureFormat) (Format, error) {
	for f, t := range textureFormats {
		if t == tf {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: no format for texture format %d", ErrInvalidFormat, tf)
}
