package moments

import "math"

// Skewness estimates the mean, the variance and the skewness of a population.
// It owns a Variance accumulator for the first two moments and adds a running
// sum of cubed deviations from the mean (Terriberry's extension of Welford's
// method), so it costs one extra float64 over Variance.
//
// The zero value is an empty accumulator, ready for use.
type Skewness struct {
	avg Variance
	m3  float64
}

// NewSkewness returns an empty accumulator.
func NewSkewness() *Skewness {
	return &Skewness{}
}

// SkewnessOf folds vals into a fresh accumulator one value at a time.
func SkewnessOf(vals []float64) *Skewness {
	s := NewSkewness()
	for _, x := range vals {
		s.Add(x)
	}
	return s
}

// Add incorporates one observation. The cubic term must be computed from the
// deviation off the pre-update mean and the pre-update m2, so the owned
// accumulator's update is split in two: step yields the pre-update terms, the
// cubic update consumes them, and only then applyDelta advances mean and m2.
// Any float64 is accepted; feeding NaN or ±Inf poisons all derived
// statistics from then on.
func (s *Skewness) Add(x float64) {
	delta, deltaN, m2 := s.avg.step(x)
	n := float64(s.avg.count)
	term := delta * deltaN * (n - 1)
	s.m3 += term*deltaN*(n-2) - 3*deltaN*m2
	s.avg.applyDelta(delta, deltaN)
}

// Merge absorbs the statistics of other, leaving other unmodified. The two
// accumulators must cover disjoint sets of observations; this is not
// verified. The cubic terms combine off the pre-merge m2 values, then the
// owned accumulators merge.
func (s *Skewness) Merge(other *Skewness) {
	if other.avg.count == 0 {
		return
	}
	n1 := float64(s.avg.count)
	n2 := float64(other.avg.count)
	delta := other.avg.mean - s.avg.mean
	deltaN := delta / (n1 + n2)
	s.m3 += other.m3 +
		delta*deltaN*deltaN*n1*n2*(n1-n2) +
		3*deltaN*(n1*other.avg.m2-n2*s.avg.m2)
	s.avg.Merge(&other.avg)
}

// Skewness estimates the standardized third moment of the population,
// sqrt(n) * m3 / m2^1.5. It returns 0 whenever the cubic term is exactly 0,
// which covers the empty accumulator and perfectly symmetric populations
// without dividing 0 by 0.
func (s *Skewness) Skewness() float64 {
	if s.m3 == 0 {
		return 0
	}
	n := float64(s.avg.count)
	m2 := s.avg.m2
	return math.Sqrt(n) * s.m3 / math.Sqrt(m2*m2*m2)
}

// Count returns the number of observations folded in.
func (s *Skewness) Count() uint64 {
	return s.avg.Count()
}

// IsEmpty reports whether no observations have been folded in.
func (s *Skewness) IsEmpty() bool {
	return s.avg.IsEmpty()
}

// Mean returns the running mean, or 0 for an empty accumulator.
func (s *Skewness) Mean() float64 {
	return s.avg.Mean()
}

// SampleVariance returns the unbiased variance estimate.
// See Variance.SampleVariance.
func (s *Skewness) SampleVariance() float64 {
	return s.avg.SampleVariance()
}

// PopulationVariance returns the biased variance estimate.
// See Variance.PopulationVariance.
func (s *Skewness) PopulationVariance() float64 {
	return s.avg.PopulationVariance()
}

// StandardError estimates the standard error of the mean.
// See Variance.StandardError.
func (s *Skewness) StandardError() float64 {
	return s.avg.StandardError()
}
