package image

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Kind identifies an encoded image file format.
type Kind uint8

const (
	KindPNG Kind = iota
	KindJPEG
	KindBMP
	KindTIFF
	// KindWebP can be decoded but not encoded.
	KindWebP
)

var kindNames = [...]string{
	KindPNG:  "png",
	KindJPEG: "jpeg",
	KindBMP:  "bmp",
	KindTIFF: "tiff",
	KindWebP: "webp",
}

var kindByExt = map[string]Kind{
	".png":  KindPNG,
	".jpg":  KindJPEG,
	".jpeg": KindJPEG,
	".bmp":  KindBMP,
	".tif":  KindTIFF,
	".tiff": KindTIFF,
	".webp": KindWebP,
}

// String returns the codec name as registered with the image package.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// CanEncode reports whether images can be written in this kind.
func (k Kind) CanEncode() bool {
	return k <= KindTIFF
}

// KindFromPath picks a Kind from the file extension of path.
func KindFromPath(path string) (Kind, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if k, ok := kindByExt[ext]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
}
