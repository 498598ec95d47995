package parallel

// RowRange is a half-open range of image rows [Start, End).
type RowRange struct {
	Start, End int
}

// Len returns the number of rows in the range.
func (r RowRange) Len() int {
	return r.End - r.Start
}

// SplitRows divides height rows into at most parts contiguous ranges whose
// lengths differ by at most one. It returns nil when height <= 0.
func SplitRows(height, parts int) []RowRange {
	if height <= 0 {
		return nil
	}
	parts = max(1, min(parts, height))

	ranges := make([]RowRange, parts)
	base, extra := height/parts, height%parts
	start := 0
	for i := range ranges {
		n := base
		if i < extra {
			n++
		}
		ranges[i] = RowRange{Start: start, End: start + n}
		start += n
	}
	return ranges
}

// ForEachRows splits height rows into one range per worker (times
// chunksPerWorker) and runs fn on every range. It returns the first
// non-nil error in range order.
func (p *WorkerPool) ForEachRows(height, chunksPerWorker int, fn func(RowRange) error) error {
	ranges := SplitRows(height, p.workers*max(1, chunksPerWorker))
	if len(ranges) == 0 {
		return nil
	}

	errs := make([]error, len(ranges))
	work := make([]func(), len(ranges))
	for i, r := range ranges {
		work[i] = func() {
			errs[i] = fn(r)
		}
	}
	p.ExecuteAll(work)

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
