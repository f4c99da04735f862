package dehb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundaryClip(t *testing.T) {
	seed := uint32(5)
	rng := NewRNG(&seed)
	out := boundaryCheck(rng, []float64{-1, 2, 0.5}, BoundaryClip)
	assert.Equal(t, []float64{0, 1, 0.5}, out)
}

func TestBoundaryRandomStaysInUnitInterval(t *testing.T) {
	seed := uint32(6)
	rng := NewRNG(&seed)
	out := boundaryCheck(rng, []float64{-1, 2, 0.5}, BoundaryRandom)
	assert.Equal(t, 0.5, out[2])
	for _, v := range out {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}
