package moments

import "golang.org/x/sync/errgroup"

type span struct {
	lo, hi int
}

// partition cuts [0,n) into up to workers near-equal contiguous spans.
// It returns nil when a plain sequential fold suffices.
func partition(n, workers int) []span {
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		return nil
	}
	spans := make([]span, 0, workers)
	size := n / workers
	rem := n % workers
	lo := 0
	for i := 0; i < workers; i++ {
		hi := lo + size
		if i < rem {
			hi++
		}
		spans = append(spans, span{lo, hi})
		lo = hi
	}
	return spans
}

// ParallelVarianceOf folds vals like VarianceOf, but splits the input into up
// to workers contiguous partitions, folds each in its own goroutine and
// merges the partial accumulators left to right. The result agrees with the
// sequential fold only up to floating-point rounding; merging is not
// bit-exact associative. workers <= 1 degrades to the sequential fold.
func ParallelVarianceOf(vals []float64, workers int) *Variance {
	parts := partition(len(vals), workers)
	if parts == nil {
		return VarianceOf(vals)
	}
	result := make([]*Variance, len(parts))
	var g errgroup.Group
	for i, p := range parts {
		pos, lo, hi := i, p.lo, p.hi
		g.Go(func() error {
			result[pos] = VarianceOf(vals[lo:hi])
			return nil
		})
	}
	g.Wait()
	out := NewVariance()
	for _, part := range result {
		out.Merge(part)
	}
	return out
}

// ParallelSkewnessOf is ParallelVarianceOf for the three-moment accumulator.
func ParallelSkewnessOf(vals []float64, workers int) *Skewness {
	parts := partition(len(vals), workers)
	if parts == nil {
		return SkewnessOf(vals)
	}
	result := make([]*Skewness, len(parts))
	var g errgroup.Group
	for i, p := range parts {
		pos, lo, hi := i, p.lo, p.hi
		g.Go(func() error {
			result[pos] = SkewnessOf(vals[lo:hi])
			return nil
		})
	}
	g.Wait()
	out := NewSkewness()
	for _, part := range result {
		out.Merge(part)
	}
	return out
}
