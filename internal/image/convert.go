package image

import (
	"fmt"

	"github.com/gogpu/pixconv"
	"github.com/gogpu/pixconv/internal/parallel"
)

// Convert returns a new buffer holding the image in format to.
//
// The destination comes from the WithBufferPool pool, or from the package
// pool when none is given; hand it back with PutToDefault once done.
// Rows are independent, so images at least as tall as the parallel
// threshold are split into row ranges when more than one worker is
// configured. Results are identical to a sequential conversion.
func (b *ImageBuf) Convert(to pixconv.Format, opts ...ConvertOption) (*ImageBuf, error) {
	o := defaultConvertOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c, err := pixconv.Lookup(b.format, to)
	if err != nil {
		return nil, fmt.Errorf("image: convert: %w", err)
	}
	if err := checkShape(b.width, b.height, to); err != nil {
		return nil, fmt.Errorf("image: convert: %w", err)
	}

	buffers := o.buffers
	if buffers == nil {
		buffers = defaultPool
	}
	dst := buffers.Get(b.width, b.height, to)

	rows := func(r parallel.RowRange) error {
		for y := r.Start; y < r.End; y++ {
			if err := convertRow(c, dst, dst.rowOffset(y), b, b.rowOffset(y), b.width); err != nil {
				return fmt.Errorf("image: convert row %d: %w", y, err)
			}
		}
		return nil
	}

	pool := o.pool
	if pool != nil && !pool.IsRunning() {
		pool = nil
	}
	if pool == nil && o.workers != 1 && b.height >= o.threshold {
		pool = parallel.NewWorkerPool(o.workers)
		defer pool.Close()
	}

	if pool == nil || b.height < o.threshold {
		err = rows(parallel.RowRange{Start: 0, End: b.height})
	} else {
		slogger().Debug("image: parallel convert",
			"conversion", c.String(),
			"rows", b.height,
			"workers", pool.Workers())
		err = pool.ForEachRows(b.height, 2, rows)
	}
	if err != nil {
		buffers.Put(dst)
		return nil, err
	}
	return dst, nil
}

// convertRow runs c on n pixels between two buffers of any storage.
func convertRow(c pixconv.Conversion, dst *ImageBuf, dstOff int, src *ImageBuf, srcOff, n int) error {
	switch {
	case dst.words == nil && src.words == nil:
		return c.ConvertBytes(dst.data, dstOff, src.data, srcOff, n)
	case dst.words != nil && src.words == nil:
		return c.PackWords(dst.words, dstOff, src.data, srcOff, n)
	case dst.words == nil:
		return c.UnpackWords(dst.data, dstOff, src.words, srcOff, n)
	default:
		return c.ConvertWords(dst.words, dstOff, src.words, srcOff, n)
	}
}

// ConvertInPlace converts the buffer to format to without allocating.
//
// The new format must use the same storage as the current one. When a
// converted row still fits in the current stride, rows stay where they are.
// Otherwise the stride becomes to.RowSamples(width) and the backing array
// must have capacity for it; rows are then converted from the last to the
// first, each from its last pixel to its first, so no unread sample is
// overwritten. In-place conversion is always sequential.
func (b *ImageBuf) ConvertInPlace(to pixconv.Format) error {
	c, err := pixconv.Lookup(b.format, to)
	if err != nil {
		return fmt.Errorf("image: convert in place: %w", err)
	}
	if b.format.Storage() != to.Storage() {
		return fmt.Errorf("%w: %v to %v in place", ErrStorageMismatch, b.format, to)
	}

	// Word formats are all one sample per pixel, so rows never move.
	if b.words != nil {
		for y := range b.height {
			off := b.rowOffset(y)
			if err := c.ConvertWords(b.words, off, b.words, off, b.width); err != nil {
				return fmt.Errorf("image: convert in place row %d: %w", y, err)
			}
		}
		b.format = to
		b.InvalidatePremulCache()
		return nil
	}

	stride := max(b.stride, to.RowSamples(b.width))
	need := max(len(b.data), (b.height-1)*stride+to.RowSamples(b.width))
	if cap(b.data) < need {
		return fmt.Errorf("%w: in place needs %d bytes, have capacity %d", ErrDataTooSmall, need, cap(b.data))
	}
	data := b.data[:need]

	convert := func(y int) error {
		if err := c.ConvertBytes(data, y*stride, data, y*b.stride, b.width); err != nil {
			return fmt.Errorf("image: convert in place row %d: %w", y, err)
		}
		return nil
	}
	if stride > b.stride {
		for y := b.height - 1; y >= 0; y-- {
			if err := convert(y); err != nil {
				return err
			}
		}
	} else {
		for y := range b.height {
			if err := convert(y); err != nil {
				return err
			}
		}
	}

	b.data = data
	b.stride = stride
	b.format = to
	b.InvalidatePremulCache()
	return nil
}
