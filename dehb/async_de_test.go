package dehb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsyncPadsPopulationBelowMinSize(t *testing.T) {
	// S5: best2 needs 4 distinct parents; with PopSize=2 and the target
	// excluded, sampleAsyncPopulation must pad with fresh random vectors.
	seed := uint32(11)
	opts := DefaultOptions()
	opts.PopSize = 2
	opts.Strategy = "best2_bin"
	opts.AsyncStrategy = AsyncImmediate
	opts.Seed = &seed

	a, err := NewAsync(opts, 1, quadraticObjective)
	require.NoError(t, err)
	require.NoError(t, a.InitEvalPop(context.Background(), 1.0, true))

	sampled := a.sampleAsyncPopulation(0, minPopSize[mutBest2])
	assert.Len(t, sampled, 4)
}

func TestAsyncDeferredMatchesSyncGeneration(t *testing.T) {
	seedA := uint32(55)
	seedB := uint32(55)
	opts := quadraticOptions(seedA)
	opts.AsyncStrategy = AsyncDeferred

	sync, err := New(quadraticOptions(seedB), 1, quadraticObjective)
	require.NoError(t, err)
	syncResult, err := sync.Run(context.Background(), 3, 1.0, false, true)
	require.NoError(t, err)

	async, err := NewAsync(opts, 1, quadraticObjective)
	require.NoError(t, err)
	require.NoError(t, async.InitEvalPop(context.Background(), 1.0, true))
	for i := 0; i < 3; i++ {
		require.NoError(t, async.EvolveGenerationAsync(context.Background(), 1.0))
	}

	assert.InDelta(t, syncResult.Traj[len(syncResult.Traj)-1], async.traj[len(async.traj)-1], 1e-12)
}

func TestAsyncImmediateGenerationRecordsOneEvaluationPerMember(t *testing.T) {
	seed := uint32(99)
	opts := DefaultOptions()
	opts.PopSize = 5
	opts.Strategy = "rand1_bin"
	opts.AsyncStrategy = AsyncImmediate
	opts.Seed = &seed

	a, err := NewAsync(opts, 1, quadraticObjective)
	require.NoError(t, err)
	require.NoError(t, a.InitEvalPop(context.Background(), 1.0, true))
	require.NoError(t, a.EvolveGenerationAsync(context.Background(), 1.0))
	assert.Len(t, a.traj, 10) // 5 init evals + 5 generation evals
}
