package dehb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitStrategy(t *testing.T) {
	mut, xover, ok := splitStrategy("rand1_bin")
	require.True(t, ok)
	assert.Equal(t, mutRand1, mut)
	assert.Equal(t, xoverBin, xover)

	_, _, ok = splitStrategy("bogus")
	assert.False(t, ok)

	_, _, ok = splitStrategy("rand1_nope")
	assert.False(t, ok)
}

func TestMutateRand1(t *testing.T) {
	r1 := []float64{1, 1}
	r2 := []float64{0.5, 0.5}
	r3 := []float64{0.2, 0.2}
	donor := mutate(mutRand1, 0.5, nil, nil, [][]float64{r1, r2, r3})
	assert.InDeltaSlice(t, []float64{1.15, 1.15}, donor, 1e-9)
}

func TestMutateBest1UsesBestVector(t *testing.T) {
	best := []float64{0, 0}
	r1 := []float64{1, 0}
	r2 := []float64{0, 1}
	donor := mutate(mutBest1, 1.0, nil, best, [][]float64{r1, r2})
	assert.InDeltaSlice(t, []float64{1, -1}, donor, 1e-9)
}

func TestMutateCurrentToBest1(t *testing.T) {
	current := []float64{0.2}
	best := []float64{0.8}
	r1 := []float64{0.5}
	r2 := []float64{0.1}
	donor := mutate(mutCurrentToBest1, 0.5, current, best, [][]float64{r1, r2})
	// current + 0.5*(best-current) + 0.5*(r1-r2) = 0.2 + 0.3 + 0.2 = 0.7
	assert.InDelta(t, 0.7, donor[0], 1e-9)
}

func TestMinPopSizeTable(t *testing.T) {
	assert.Equal(t, 3, minPopSize[mutRand1])
	assert.Equal(t, 5, minPopSize[mutRand2])
	assert.Equal(t, 4, minPopSize[mutBest2])
	assert.Equal(t, 2, minPopSize[mutBest1])
	assert.Equal(t, 2, minPopSize[mutCurrentToBest1])
	assert.Equal(t, 3, minPopSize[mutRandToBest1])
	assert.Equal(t, 3, minPopSize[mutRand2Dir])
}

func TestSamplePopulationExtendsWithFallbackWhenSmall(t *testing.T) {
	seed := uint32(1)
	rng := NewRNG(&seed)
	small := [][]float64{{1}}
	fallback := [][]float64{{2}, {3}, {4}}
	sampled := samplePopulation(rng, small, fallback, 3)
	assert.Len(t, sampled, 3)
}
