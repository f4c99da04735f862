package dehb

import (
	"context"
	"fmt"
)

// AsyncDE reuses DE's mutation/crossover/selection operators under one of
// four target-selection policies (§4.9). It embeds *DE so all of DE's
// accessors (Incumbent, Reset, InitEvalPop) are available unchanged.
type AsyncDE struct {
	*DE
	strategy AsyncStrategy
}

// NewAsync builds an AsyncDE driver on top of a freshly constructed DE.
func NewAsync(opts Options, dim int, objective Objective, deOpts ...DEOption) (*AsyncDE, error) {
	strategy := opts.AsyncStrategy
	if strategy == "" {
		strategy = AsyncImmediate
	}
	switch strategy {
	case AsyncDeferred, AsyncImmediate, AsyncRandom, AsyncWorst:
	default:
		return nil, fmt.Errorf("dehb: unknown async strategy %q", opts.AsyncStrategy)
	}
	// The sequential strategies pad undersized parent samples with fresh
	// vectors (sampleAsyncPopulation), so they accept a PopSize below the
	// strategy's minimum; deferred samples like DE and keeps DE's check.
	checked := opts
	if mut, _, ok := splitStrategy(opts.Strategy); ok && strategy != AsyncDeferred && opts.PopSize > 0 && opts.PopSize < minPopSize[mut] {
		checked.PopSize = minPopSize[mut]
	}
	d, err := New(checked, dim, objective, deOpts...)
	if err != nil {
		return nil, err
	}
	d.opts.PopSize = opts.PopSize
	return &AsyncDE{DE: d, strategy: strategy}, nil
}

// sampleAsyncPopulation excludes the target index from the sampling pool
// and pads with fresh random vectors if exclusion underflows the strategy's
// minimum population requirement (§4.4, §8 scenario S5).
func (a *AsyncDE) sampleAsyncPopulation(target int, size int) [][]float64 {
	pool := a.pop.vectorsExcept(target)
	if len(pool) >= size {
		idxs := a.rng.Choice(len(pool), size)
		out := make([][]float64, size)
		for i, idx := range idxs {
			out[i] = pool[idx]
		}
		return out
	}
	out := make([][]float64, len(pool))
	copy(out, pool)
	for len(out) < size {
		out = append(out, a.rng.UniformArray(a.dim, 0, 1))
	}
	return out
}

// Run drives `generations` generations under the configured async strategy.
// It overrides the embedded DE.Run, which would otherwise dispatch to the
// synchronous EvolveGeneration and silently ignore AsyncStrategy.
func (a *AsyncDE) Run(ctx context.Context, generations int, fidelity float64, verbose bool, reset bool) (RunResult, error) {
	if reset || a.pop == nil {
		a.Reset()
		if err := a.InitEvalPop(ctx, fidelity, true); err != nil {
			return RunResult{}, err
		}
	}
	for g := 0; g < generations; g++ {
		if err := a.EvolveGenerationAsync(ctx, fidelity); err != nil {
			return RunResult{}, err
		}
		if verbose && a.logger != nil {
			a.logger.Info().Int("generation", g).Float64("incumbent", a.inc.Score).Msg("generation complete")
		}
	}
	return RunResult{Traj: a.traj, Runtime: a.runtime, History: a.history}, nil
}

// EvolveGenerationAsync runs one generation under the configured strategy.
func (a *AsyncDE) EvolveGenerationAsync(ctx context.Context, fidelity float64) error {
	switch a.strategy {
	case AsyncDeferred:
		return a.DE.EvolveGeneration(ctx, fidelity)
	case AsyncImmediate:
		return a.evolveSequential(ctx, fidelity, func(n int) int { return -1 }, true)
	case AsyncRandom:
		return a.evolveSequential(ctx, fidelity, func(n int) int { return a.rng.Intn(n) }, false)
	case AsyncWorst:
		return a.evolveSequential(ctx, fidelity, func(int) int { return -2 }, false)
	default:
		panic("dehb: unknown async strategy " + string(a.strategy))
	}
}

// evolveSequential builds and commits one trial at a time, so later trials
// in the same generation see earlier replacements. With sequentialIndex set
// the loop counter i is the target and pick is not called (immediate);
// otherwise pick(n) selects the target for each of the N iterations: -2
// means "use current worst" (worst), any other returned index is used
// directly (random).
func (a *AsyncDE) evolveSequential(ctx context.Context, fidelity float64, pick func(n int) int, sequentialIndex bool) error {
	n := a.pop.size()
	for i := 0; i < n; i++ {
		target := i
		if !sequentialIndex {
			idx := pick(n)
			if idx == -2 {
				target = a.pop.worst()
			} else {
				target = idx
			}
		}

		bestVec := a.pop.Vectors[a.pop.best()]
		parents := a.sampleAsyncPopulation(target, minPopSize[a.mut])
		donor := mutate(a.mut, a.opts.MutationFactor, a.pop.Vectors[target], bestVec, parents)
		trial := crossover(a.rng, a.xover, a.pop.Vectors[target], donor, a.opts.CrossoverProb)
		trial = boundaryCheck(a.rng, trial, a.opts.BoundaryFixType)

		trialID := a.repo.AnnounceConfig(trial, fidelity)
		res, err := a.evaluate(ctx, trial, fidelity)
		if err != nil {
			return err
		}
		a.repo.TellResult(trialID, fidelity, res.Fitness, res.Cost, res.Info)

		replaced := selectOne(a.pop, target, trial, trialID, res.Fitness, a.opts.MaxAge)

		// random/worst intentionally do not relink the incumbent's config id
		// on replacement, to preserve trajectory fidelity with the reference
		// implementation's known divergence here (see design notes).
		if a.strategy == AsyncImmediate || a.strategy == AsyncDeferred {
			if replaced {
				a.updateIncumbent(trialID, trial, res.Fitness)
			}
		} else if replaced && res.Fitness < a.inc.Score {
			a.inc.Score = res.Fitness
			a.inc.Vector = append([]float64(nil), trial...)
			a.inc.set = true
			if a.metrics != nil {
				a.metrics.SetIncumbent(a.inc.Score)
			}
		}

		a.record(trial, res.Fitness, fidelity, res.Info, res.Cost)
	}
	return nil
}
