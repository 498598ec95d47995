package image

import (
	"sync"

	"github.com/gogpu/pixconv"
)

// Pool is a thread-safe pool for reusing ImageBuf instances.
//
// Buffers are bucketed by width, height and format, so a conversion
// pipeline that repeatedly produces frames of one shape reuses the same
// few buffers instead of allocating.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*ImageBuf
	maxSize int // max buffers per bucket
}

type poolKey struct {
	width  int
	height int
	format pixconv.Format
}

// NewPool creates a pool retaining at most maxPerBucket buffers of each
// shape. A maxPerBucket of 0 means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*ImageBuf),
		maxSize: maxPerBucket,
	}
}

// Get returns a zeroed, tightly packed buffer of the given shape, reusing
// a pooled one when available. It returns nil for invalid dimensions or
// formats.
func (p *Pool) Get(width, height int, format pixconv.Format) *ImageBuf {
	key := poolKey{width: width, height: height, format: format}

	p.mu.Lock()
	bucket := p.buckets[key]
	if n := len(bucket); n > 0 {
		buf := bucket[n-1]
		p.buckets[key] = bucket[:n-1]
		p.mu.Unlock()

		slogger().Debug("image: pool reuse", "width", width, "height", height, "format", format.String())
		buf.Clear()
		return buf
	}
	p.mu.Unlock()

	buf, err := NewImageBuf(width, height, format)
	if err != nil {
		return nil
	}
	return buf
}

// Put returns a buffer to the pool. Views from SubImage, buffers with
// padded rows and buffers over a full bucket are discarded.
func (p *Pool) Put(buf *ImageBuf) {
	if buf == nil || buf.stride != buf.format.RowSamples(buf.width) ||
		len(buf.data)+len(buf.words) != buf.stride*buf.height {
		return
	}

	buf.Clear()

	key := poolKey{width: buf.width, height: buf.height, format: buf.format}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, buf)
}

// Len returns the number of pooled buffers across all buckets.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, bucket := range p.buckets {
		n += len(bucket)
	}
	return n
}

var defaultPool = NewPool(8)

// GetFromDefault retrieves a buffer from the package-level pool.
func GetFromDefault(width, height int, format pixconv.Format) *ImageBuf {
	return defaultPool.Get(width, height, format)
}

// PutToDefault returns a buffer to the package-level pool.
func PutToDefault(buf *ImageBuf) {
	defaultPool.Put(buf)
}
