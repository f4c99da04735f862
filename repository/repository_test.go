package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdsIncreaseMonotonically(t *testing.T) {
	repo := New()
	for i := 0; i < 5; i++ {
		id := repo.AnnounceConfig([]float64{float64(i)}, 1.0)
		assert.Equal(t, int64(i), id)
	}
	assert.Equal(t, int64(5), repo.Len())
}

func TestAnnouncePopulationPreservesOrder(t *testing.T) {
	repo := New()
	vectors := [][]float64{{0.1}, {0.2}, {0.3}}
	ids := repo.AnnouncePopulation(vectors, 1.0)
	for i, id := range ids {
		assert.Equal(t, vectors[i], repo.Vector(id))
	}
}

func TestTellResultAppendsHistory(t *testing.T) {
	repo := New()
	id := repo.AnnounceConfig([]float64{0.5}, 1.0)
	repo.TellResult(id, 1.0, 0.25, 0.1, nil)
	repo.TellResult(id, 2.0, 0.1, 0.2, map[string]any{"note": "ok"})

	results := repo.Results(id)
	assert.Len(t, results, 2)
	assert.Equal(t, 0.25, results[0].Fitness)
	assert.Equal(t, 2.0, results[1].Fidelity)
}

func TestTellResultUnknownIDPanics(t *testing.T) {
	repo := New()
	assert.Panics(t, func() {
		repo.TellResult(42, 1.0, 0.0, 0.0, nil)
	})
}
