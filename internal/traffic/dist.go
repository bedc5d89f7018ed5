package traffic

import (
	"math/rand/v2"
	"time"
)

// exponential draws an exponentially distributed duration with the given mean.
func exponential(r *rand.Rand, mean time.Duration) time.Duration {
	if mean <= 0 {
		return 0
	}
	return time.Duration(r.ExpFloat64() * float64(mean))
}

// normal draws a normally distributed duration, clamped at zero.
func normal(r *rand.Rand, mean, stddev time.Duration) time.Duration {
	d := time.Duration(r.NormFloat64()*float64(stddev)) + mean
	return max(d, 0)
}

// scale multiplies d by f; a zero or negative factor disables the delay.
func scale(d time.Duration, f float64) time.Duration {
	if f <= 0 {
		return 0
	}
	return time.Duration(float64(d) * f)
}
