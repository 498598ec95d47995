package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"github.com/gogpu/pixconv"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the file format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// DefaultJPEGQuality is the quality Encode and Save use for JPEG.
const DefaultJPEGQuality = 90

// Decode decodes a PNG, JPEG, BMP, TIFF or WebP image, detecting the codec
// from the data.
func Decode(r io.Reader) (*ImageBuf, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return fromDecoded(img, name)
}

// fromDecoded converts a decoded image and rejects empty ones.
func fromDecoded(img image.Image, codec string) (*ImageBuf, error) {
	buf := FromStdImage(img)
	if buf.IsEmpty() {
		return nil, fmt.Errorf("image: decode %s: %w", codec, ErrInvalidDimensions)
	}
	slogger().Debug("image: decoded", "codec", codec, "format", buf.format.String(),
		"width", buf.width, "height", buf.height)
	return buf, nil
}

// DecodeBytes decodes an in-memory image, detecting the codec.
func DecodeBytes(data []byte) (*ImageBuf, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// DecodeFile decodes the image at path, detecting the codec from the data.
func DecodeFile(path string) (*ImageBuf, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// DecodeKind decodes r with the codec for k only.
func DecodeKind(r io.Reader, k Kind) (*ImageBuf, error) {
	var (
		img image.Image
		err error
	)
	switch k {
	case KindPNG:
		img, err = png.Decode(r)
	case KindJPEG:
		img, err = jpeg.Decode(r)
	case KindBMP:
		img, err = bmp.Decode(r)
	case KindTIFF:
		img, err = tiff.Decode(r)
	case KindWebP:
		img, err = webp.Decode(r)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, k)
	}
	if err != nil {
		return nil, fmt.Errorf("image: decode %v: %w", k, err)
	}
	return fromDecoded(img, k.String())
}

// Encode writes the image in the given kind. JPEG uses
// DefaultJPEGQuality and drops alpha.
func (b *ImageBuf) Encode(w io.Writer, k Kind) error {
	img := b.ToStdImage()

	var err error
	switch k {
	case KindPNG:
		err = png.Encode(w, img)
	case KindJPEG:
		return b.EncodeJPEG(w, DefaultJPEGQuality)
	case KindBMP:
		err = bmp.Encode(w, img)
	case KindTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: cannot encode %v", ErrUnsupportedFormat, k)
	}
	if err != nil {
		return fmt.Errorf("image: encode %v: %w", k, err)
	}
	return nil
}

// EncodeJPEG writes the image as JPEG with the given quality (1-100).
func (b *ImageBuf) EncodeJPEG(w io.Writer, quality int) error {
	quality = max(1, min(quality, 100))
	if b.format.HasAlpha() {
		slogger().Warn("image: JPEG drops alpha", "format", b.format.String())
	}

	if err := jpeg.Encode(w, b.ToStdImage(), &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("image: encode JPEG: %w", err)
	}
	return nil
}

// Save encodes the image to path, choosing the codec from the extension.
func (b *ImageBuf) Save(path string) error {
	k, err := KindFromPath(path)
	if err != nil {
		return err
	}
	if !k.CanEncode() {
		return fmt.Errorf("%w: cannot encode %v", ErrUnsupportedFormat, k)
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}
	if err := b.Encode(f, k); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("image: close file: %w", err)
	}

	slogger().Info("image: saved", "path", path, "codec", k.String(),
		"width", b.width, "height", b.height)
	return nil
}

// FromStdImage copies a standard library image into an ImageBuf.
//
// *image.NRGBA becomes XYZABytes, *image.RGBA becomes XYZAPreBytes and
// *image.Gray becomes GrayBytes, copied row by row. Any other image is
// first drawn onto an NRGBA canvas.
func FromStdImage(img image.Image) *ImageBuf {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return &ImageBuf{format: pixconv.FormatXYZABytes}
	}

	switch m := img.(type) {
	case *image.NRGBA:
		return copyStdPix(m.Pix, m.Stride, width, height, pixconv.FormatXYZABytes)
	case *image.RGBA:
		return copyStdPix(m.Pix, m.Stride, width, height, pixconv.FormatXYZAPreBytes)
	case *image.Gray:
		return copyStdPix(m.Pix, m.Stride, width, height, pixconv.FormatGrayBytes)
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, xdraw.Src)
	return copyStdPix(nrgba.Pix, nrgba.Stride, width, height, pixconv.FormatXYZABytes)
}

func copyStdPix(pix []byte, stride, width, height int, format pixconv.Format) *ImageBuf {
	buf := newImageBuf(width, height, format, format.RowSamples(width))
	n := format.RowSamples(width)
	for y := range height {
		copy(buf.Row(y), pix[y*stride:y*stride+n])
	}
	return buf
}

// ToStdImage converts the buffer to a standard library image: *image.Gray
// for gray formats, *image.RGBA for premultiplied formats and *image.NRGBA
// for everything else.
func (b *ImageBuf) ToStdImage() image.Image {
	rect := image.Rect(0, 0, b.width, b.height)

	var (
		img    image.Image
		pix    []byte
		stride int
		target pixconv.Format
	)
	switch {
	case b.format.IsGrayscale():
		m := image.NewGray(rect)
		img, pix, stride, target = m, m.Pix, m.Stride, pixconv.FormatGrayBytes
	case b.format.IsPremultiplied():
		m := image.NewRGBA(rect)
		img, pix, stride, target = m, m.Pix, m.Stride, pixconv.FormatXYZAPreBytes
	default:
		m := image.NewNRGBA(rect)
		img, pix, stride, target = m, m.Pix, m.Stride, pixconv.FormatXYZABytes
	}
	if b.IsEmpty() {
		return img
	}

	dst, err := FromRaw(pix, b.width, b.height, target, stride)
	if err != nil {
		return img
	}
	c := pixconv.MustLookup(b.format, target)
	for y := range b.height {
		_ = convertRow(c, dst, y*stride, b, b.rowOffset(y), b.width)
	}
	return img
}
