// Package moments provides streaming estimators of the mean, variance and
// skewness of a population, without retaining the observed values.
//
// Accumulators update in constant memory per observation using Welford's
// running-moments method, and two accumulators built from disjoint partitions
// of a population can be combined with Merge. A large input can therefore be
// folded partition-per-goroutine and reduced afterwards; see
// ParallelVarianceOf and ParallelSkewnessOf.
package moments

import "math"

// Variance estimates the mean and the variance of a population, and the
// standard error of the mean. It keeps a running count, mean and sum of
// squared deviations from the mean (Welford's M2 term), which avoids the
// catastrophic cancellation a sum-of-squares formulation suffers when the
// mean is large relative to the spread.
//
// The zero value is an empty accumulator, ready for use. An accumulator is
// not safe for concurrent mutation; give each goroutine its own and Merge.
type Variance struct {
	count uint64
	mean  float64
	m2    float64
}

// NewVariance returns an empty accumulator.
func NewVariance() *Variance {
	return &Variance{}
}

// VarianceOf folds vals into a fresh accumulator one value at a time.
func VarianceOf(vals []float64) *Variance {
	v := NewVariance()
	for _, x := range vals {
		v.Add(x)
	}
	return v
}

// step begins an observation: it computes the deviation of x from the current
// mean and increments the count, leaving mean and m2 untouched. It returns
// the deviation, the deviation divided by the new count, and m2 as it was
// before this observation. Composing accumulators need these pre-update
// values for their own moment terms and must call applyDelta afterwards to
// finish the observation.
func (v *Variance) step(x float64) (delta, deltaN, m2 float64) {
	delta = x - v.mean
	v.count++
	return delta, delta / float64(v.count), v.m2
}

// applyDelta folds a deviation computed by step into mean and m2.
// delta*deltaN*(n-1) equals delta*(x - updated mean).
func (v *Variance) applyDelta(delta, deltaN float64) {
	v.mean += deltaN
	v.m2 += delta * deltaN * float64(v.count-1)
}

// Add incorporates one observation. Any float64 is accepted; feeding NaN or
// ±Inf poisons all derived statistics from then on.
func (v *Variance) Add(x float64) {
	delta, deltaN, _ := v.step(x)
	v.applyDelta(delta, deltaN)
}

// Merge absorbs the statistics of other, leaving other unmodified. The two
// accumulators must cover disjoint sets of observations; this is not
// verified, and merging overlapping populations (or an accumulator with
// itself) silently yields meaningless statistics. The result matches a
// single accumulator fed both partitions sequentially, up to floating-point
// rounding.
func (v *Variance) Merge(other *Variance) {
	if other.count == 0 {
		return
	}
	n1 := float64(v.count)
	n2 := float64(other.count)
	n := n1 + n2
	delta := other.mean - v.mean
	v.mean += delta * n2 / n
	v.m2 += other.m2 + delta*delta*n1*n2/n
	v.count += other.count
}

// Count returns the number of observations folded in.
func (v *Variance) Count() uint64 {
	return v.count
}

// IsEmpty reports whether no observations have been folded in.
func (v *Variance) IsEmpty() bool {
	return v.count == 0
}

// Mean returns the running mean, or 0 for an empty accumulator.
func (v *Variance) Mean() float64 {
	return v.mean
}

// SampleVariance returns the unbiased variance estimate, m2/(n-1).
// It returns NaN when fewer than two observations have been folded in.
func (v *Variance) SampleVariance() float64 {
	if v.count < 2 {
		return math.NaN()
	}
	return v.m2 / float64(v.count-1)
}

// PopulationVariance returns the biased variance estimate, m2/n, or 0 for an
// empty accumulator.
func (v *Variance) PopulationVariance() float64 {
	if v.count == 0 {
		return 0
	}
	return v.m2 / float64(v.count)
}

// StandardError estimates the standard error of the mean,
// sqrt(SampleVariance/n). Like SampleVariance it returns NaN when fewer than
// two observations have been folded in.
func (v *Variance) StandardError() float64 {
	return math.Sqrt(v.SampleVariance() / float64(v.count))
}
