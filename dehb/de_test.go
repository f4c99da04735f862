package dehb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quadraticObjective mirrors the canonical f(x) = x^2 walkthrough: the
// vector's single coordinate is read directly (no configuration space).
func quadraticObjective(_ context.Context, cfg any, _ float64) (EvalResult, error) {
	v := cfg.([]float64)
	x := v[0]
	return EvalResult{Fitness: x * x, Cost: 0}, nil
}

func quadraticOptions(seed uint32) Options {
	opts := DefaultOptions()
	opts.PopSize = 10
	opts.MutationFactor = 0.5
	opts.CrossoverProb = 0.5
	opts.Strategy = "rand1_bin"
	opts.Seed = &seed
	return opts
}

func TestDeterminismRunVsAskTell(t *testing.T) {
	// S1: 9 generations via Run must match 100 ask/tell pairs.
	seed := uint32(0)

	runDriver, err := New(quadraticOptions(seed), 1, quadraticObjective)
	require.NoError(t, err)
	runResult, err := runDriver.Run(context.Background(), 9, 1.0, false, true)
	require.NoError(t, err)

	at, err := NewAskTell(quadraticOptions(seed), 1, quadraticObjective)
	require.NoError(t, err)

	var askTellTraj []float64
	for i := 0; i < 100; i++ {
		trial, err := at.Ask(1.0)
		require.NoError(t, err)
		res, err := quadraticObjective(context.Background(), trial.Config, 1.0)
		require.NoError(t, err)
		require.NoError(t, at.Tell(trial, res, 1.0))
		askTellTraj = append(askTellTraj, at.traj[len(at.traj)-1])
	}

	require.Len(t, runResult.Traj, len(askTellTraj))
	for i := range runResult.Traj {
		assert.InDelta(t, runResult.Traj[i], askTellTraj[i], 1e-12, "trajectory diverged at step %d", i)
	}
}

func TestIncumbentMonotonicity(t *testing.T) {
	// S2
	seed := uint32(123)
	d, err := New(quadraticOptions(seed), 1, quadraticObjective)
	require.NoError(t, err)
	result, err := d.Run(context.Background(), 20, 1.0, false, true)
	require.NoError(t, err)

	for i := 1; i < len(result.Traj); i++ {
		assert.LessOrEqual(t, result.Traj[i], result.Traj[i-1])
	}
}

func TestTrajectoryArraysStayAligned(t *testing.T) {
	// Invariant 6: trajectory alignment
	seed := uint32(9)
	d, err := New(quadraticOptions(seed), 1, quadraticObjective)
	require.NoError(t, err)
	result, err := d.Run(context.Background(), 5, 1.0, false, true)
	require.NoError(t, err)

	assert.Equal(t, len(result.Traj), len(result.Runtime))
	assert.Equal(t, len(result.Traj), len(result.History))
}

func TestSelectionTieRuleReplacesOnEquality(t *testing.T) {
	seed := uint32(1)
	pop := newPopulation(1, 1, 100)
	pop.Fitness[0] = 1.0
	pop.Age[0] = 5
	replaced := selectOne(pop, 0, []float64{0.9}, 42, 1.0, 100)
	assert.True(t, replaced)
	assert.Equal(t, int64(42), pop.IDs[0])
	assert.Equal(t, 100, pop.Age[0])
	_ = seed
}

func TestAskPanicsOnDoubleOutstanding(t *testing.T) {
	seed := uint32(2)
	at, err := NewAskTell(quadraticOptions(seed), 1, quadraticObjective)
	require.NoError(t, err)
	_, err = at.Ask(1.0)
	require.NoError(t, err)
	assert.Panics(t, func() {
		_, _ = at.Ask(1.0)
	})
}

func TestConstructionRejectsTooSmallPopulation(t *testing.T) {
	opts := DefaultOptions()
	opts.PopSize = 1
	opts.Strategy = "best2_bin" // requires 4
	_, err := New(opts, 1, quadraticObjective)
	require.Error(t, err)
	var target *ErrInsufficientPopulation
	assert.ErrorAs(t, err, &target)
}
