package dehb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrossoverBinAlwaysDiffersFromTarget(t *testing.T) {
	seed := uint32(3)
	rng := NewRNG(&seed)
	target := []float64{0, 0, 0, 0}
	donor := []float64{1, 1, 1, 1}

	for i := 0; i < 20; i++ {
		out := crossoverBin(rng, target, donor, 0.0) // prob 0 forces the fallback path
		differs := false
		for j := range out {
			if out[j] != target[j] {
				differs = true
			}
		}
		assert.True(t, differs, "bin crossover must take at least one donor coordinate")
	}
}

func TestCrossoverExpStaysWithinBounds(t *testing.T) {
	seed := uint32(4)
	rng := NewRNG(&seed)
	target := []float64{0, 0, 0}
	donor := []float64{1, 1, 1}
	out := crossoverExp(rng, target, donor, 0.9)
	assert.Len(t, out, 3)
	for _, v := range out {
		assert.Contains(t, []float64{0, 1}, v)
	}
}

func TestCrossoverExpProbZeroLeavesTargetUnchanged(t *testing.T) {
	// The probability draw is tested before the first copy, so a prob of 0
	// must fail immediately and leave target untouched.
	seed := uint32(7)
	rng := NewRNG(&seed)
	target := []float64{0, 0, 0, 0}
	donor := []float64{1, 1, 1, 1}
	out := crossoverExp(rng, target, donor, 0.0)
	assert.Equal(t, target, out)
}
