package pixconv

import "errors"

// Conversion errors. All of them are detected before the first sample is
// written; a failed call leaves the destination untouched.
var (
	// ErrInvalidFormat is returned when a format is not in the catalog.
	ErrInvalidFormat = errors.New("pixconv: invalid format")

	// ErrStorageMismatch is returned when a buffer's element type does not
	// match the storage of its format.
	ErrStorageMismatch = errors.New("pixconv: buffer type does not match format storage")

	// ErrInvalidPixelCount is returned when the pixel count is negative.
	ErrInvalidPixelCount = errors.New("pixconv: invalid pixel count")

	// ErrInvalidOffset is returned when a buffer offset is negative.
	ErrInvalidOffset = errors.New("pixconv: invalid offset")

	// ErrBufferTooSmall is returned when a buffer cannot hold the requested
	// pixels starting at its offset.
	ErrBufferTooSmall = errors.New("pixconv: buffer too small")
)
