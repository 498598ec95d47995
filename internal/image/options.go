package image

import "github.com/gogpu/pixconv/internal/parallel"

// ConvertOption configures ImageBuf.Convert.
//
// Example:
//
//	// Sequential conversion into a fresh buffer
//	out, err := buf.Convert(pixconv.FormatAXYZPreInts)
//
//	// Parallel rows on a shared pool, destination from a buffer pool
//	out, err := buf.Convert(pixconv.FormatAXYZPreInts,
//	    image.WithWorkerPool(workers),
//	    image.WithBufferPool(buffers))
type ConvertOption func(*convertOptions)

// DefaultParallelThreshold is the minimum number of rows for which Convert
// splits the work across goroutines.
const DefaultParallelThreshold = 64

type convertOptions struct {
	workers   int
	pool      *parallel.WorkerPool
	buffers   *Pool
	threshold int
}

func defaultConvertOptions() convertOptions {
	return convertOptions{
		workers:   1,
		threshold: DefaultParallelThreshold,
	}
}

// WithWorkers converts rows on n goroutines. A pool is started for the
// call and closed afterwards; pass WithWorkerPool to reuse one instead.
// n <= 0 means GOMAXPROCS.
func WithWorkers(n int) ConvertOption {
	return func(o *convertOptions) {
		o.workers = n
	}
}

// WithWorkerPool converts rows on an existing pool. The pool is not closed.
func WithWorkerPool(p *parallel.WorkerPool) ConvertOption {
	return func(o *convertOptions) {
		o.pool = p
	}
}

// WithBufferPool takes the destination buffer from p instead of allocating.
func WithBufferPool(p *Pool) ConvertOption {
	return func(o *convertOptions) {
		o.buffers = p
	}
}

// WithParallelThreshold sets the minimum image height for parallel
// conversion. Smaller images are converted on the calling goroutine.
func WithParallelThreshold(rows int) ConvertOption {
	return func(o *convertOptions) {
		o.threshold = rows
	}
}
