package moments

import (
	"math"
	"math/rand"

	"github.com/google/go-cmp/cmp/cmpopts"
)

// tolerance options for comparing streaming results against direct two-pass
// computations. Sequences riding on a large constant offset get the looser
// bound: both sides then work at whatever precision the offset's ulps leave.
var (
	approx      = cmpopts.EquateApprox(1e-9, 1e-9)
	approxLoose = cmpopts.EquateApprox(1e-6, 1e-4)
)

// 8 values with closed-form moments: mean 5, population variance 4,
// sample variance 32/7, third central moment 42 (skewness 0.65625).
var known = []float64{2, 4, 4, 4, 5, 5, 7, 9}

// directMean is the naive sum/count mean.
func directMean(vals []float64) float64 {
	sum := float64(0)
	for _, x := range vals {
		sum += x
	}
	return sum / float64(len(vals))
}

// centralSum is the two-pass sum of k-th powers of deviations from the mean.
func centralSum(vals []float64, k float64) float64 {
	mean := directMean(vals)
	sum := float64(0)
	for _, x := range vals {
		sum += math.Pow(x-mean, k)
	}
	return sum
}

// directSkewness is sqrt(n) * m3 / m2^1.5 computed the two-pass way.
func directSkewness(vals []float64) float64 {
	m3 := centralSum(vals, 3)
	if m3 == 0 {
		return 0
	}
	m2 := centralSum(vals, 2)
	return math.Sqrt(float64(len(vals))) * m3 / math.Sqrt(m2*m2*m2)
}

// offsetNoise builds n values of the form offset + d, with d a multiple of
// 1/16 in [-64, 64) so the addition is exact for offsets up to ~1e14 and the
// true central moments are those of the noise alone. Deterministic seed.
func offsetNoise(offset float64, n int) []float64 {
	rnd := rand.New(rand.NewSource(42))
	vals := make([]float64, n)
	for i := range vals {
		vals[i] = offset + float64(rnd.Intn(2048)-1024)/16
	}
	return vals
}
