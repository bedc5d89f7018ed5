package traffic

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExponential(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	assert.Zero(t, exponential(r, 0))

	const n = 20000
	var sum time.Duration
	for range n {
		d := exponential(r, time.Second)
		assert.GreaterOrEqual(t, d, time.Duration(0))
		sum += d
	}
	mean := sum / n
	assert.InDelta(t, float64(time.Second), float64(mean), float64(50*time.Millisecond))
}

func TestNormal(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	assert.Equal(t, time.Second, normal(r, time.Second, 0))

	for range 1000 {
		// mean far below stddev: negative draws are clamped
		assert.GreaterOrEqual(t, normal(r, 0, time.Second), time.Duration(0))
	}
}

func TestNormal_Deterministic(t *testing.T) {
	a := rand.New(rand.NewPCG(9, 9))
	b := rand.New(rand.NewPCG(9, 9))
	for range 10 {
		assert.Equal(t, normal(a, time.Second, time.Second), normal(b, time.Second, time.Second))
	}
}

func TestScale(t *testing.T) {
	assert.Zero(t, scale(time.Second, 0))
	assert.Zero(t, scale(time.Second, -1))
	assert.Equal(t, 10*time.Millisecond, scale(time.Second, 0.01))
	assert.Equal(t, 2*time.Second, scale(time.Second, 2))
}
