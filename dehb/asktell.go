package dehb

import (
	"fmt"
	"math"
)

// askState replaces the source's hasattr-based lazy initialization with an
// explicit state machine (§9 design note).
type askState int

const (
	stateFresh askState = iota
	stateInit
	stateGeneration
)

// Trial is what Ask hands back: the candidate to evaluate plus the
// bookkeeping Tell needs to apply it.
type Trial struct {
	Config    any // configspace.Configuration, or []float64 without a space
	vector    []float64
	ID        int64
	TargetIdx int
}

// AskTell drives interleaved single-candidate evaluation, producing the
// same trajectory as Run for the same seed and evaluation order (§4.10).
type AskTell struct {
	*DE
	state       askState
	outstanding bool
	initQueue   [][]float64
	initIDs     []int64
	initCursor  int
	genBuf      *genBuffer
}

// NewAskTell wraps a DE driver with the ask/tell surface.
func NewAskTell(opts Options, dim int, objective Objective, deOpts ...DEOption) (*AskTell, error) {
	d, err := New(opts, dim, objective, deOpts...)
	if err != nil {
		return nil, err
	}
	return &AskTell{DE: d, state: stateFresh}, nil
}

// Ask returns the next candidate to evaluate. Panics if a prior Ask's Tell
// has not yet been called (at most one outstanding ask, §4.10).
func (a *AskTell) Ask(fidelity float64) (Trial, error) {
	if a.outstanding {
		panic("dehb: Ask called while a previous trial is still outstanding")
	}

	switch a.state {
	case stateFresh:
		a.pop = newPopulation(a.opts.PopSize, a.dim, a.opts.MaxAge)
		a.initQueue = make([][]float64, a.opts.PopSize)
		for i := range a.initQueue {
			a.initQueue[i] = a.sampleVector()
		}
		a.initIDs = a.repo.AnnouncePopulation(a.initQueue, fidelity)
		for i := range a.initQueue {
			a.pop.Vectors[i] = a.initQueue[i]
			a.pop.IDs[i] = a.initIDs[i]
		}
		a.initCursor = 0
		a.state = stateInit
		fallthrough
	case stateInit:
		idx := a.initCursor
		a.initCursor++
		if a.initCursor >= len(a.initQueue) {
			a.state = stateGeneration
		}
		a.outstanding = true
		return a.trialFor(idx, a.initQueue[idx], a.initIDs[idx]), nil
	case stateGeneration:
		return a.nextGenerationTrial(fidelity)
	default:
		return Trial{}, fmt.Errorf("dehb: unreachable ask state %d", a.state)
	}
}

// genBuffer holds one generation's worth of unissued trials.
type genBuffer struct {
	vectors [][]float64
	ids     []int64
	cursor  int
}

func (a *AskTell) nextGenerationTrial(fidelity float64) (Trial, error) {
	if a.genBuf == nil || a.genBuf.cursor >= len(a.genBuf.vectors) {
		n := a.pop.size()
		bestVec := a.pop.Vectors[a.pop.best()]
		vectors := make([][]float64, n)
		for i := 0; i < n; i++ {
			parents := samplePopulation(a.rng, a.pop.Vectors, nil, minPopSize[a.mut])
			donor := mutate(a.mut, a.opts.MutationFactor, a.pop.Vectors[i], bestVec, parents)
			trial := crossover(a.rng, a.xover, a.pop.Vectors[i], donor, a.opts.CrossoverProb)
			vectors[i] = boundaryCheck(a.rng, trial, a.opts.BoundaryFixType)
		}
		ids := a.repo.AnnouncePopulation(vectors, fidelity)
		a.genBuf = &genBuffer{vectors: vectors, ids: ids}
	}
	idx := a.genBuf.cursor
	a.genBuf.cursor++
	a.outstanding = true
	return a.trialFor(idx, a.genBuf.vectors[idx], a.genBuf.ids[idx]), nil
}

func (a *AskTell) trialFor(targetIdx int, vector []float64, id int64) Trial {
	return Trial{
		Config:    a.toObjectiveArg(vector),
		vector:    vector,
		ID:        id,
		TargetIdx: targetIdx,
	}
}

// Tell reports the evaluation result for a trial previously returned by Ask.
func (a *AskTell) Tell(trial Trial, result EvalResult, fidelity float64) error {
	if !a.outstanding {
		panic("dehb: Tell called with no outstanding ask")
	}
	a.outstanding = false

	if math.IsNaN(result.Fitness) {
		return &ErrInvalidResult{Reason: "fitness is NaN"}
	}
	if result.Cost < 0 {
		return &ErrInvalidResult{Reason: "cost is negative"}
	}
	if a.metrics != nil {
		a.metrics.ObserveEvaluation(result.Fitness, result.Cost)
	}

	a.repo.TellResult(trial.ID, fidelity, result.Fitness, result.Cost, result.Info)
	selectOne(a.pop, trial.TargetIdx, trial.vector, trial.ID, result.Fitness, a.opts.MaxAge)

	// Rescan the full population for the incumbent, matching §4.10's
	// "refresh by scanning" rule rather than a single considerResult call.
	best := a.pop.best()
	a.updateIncumbent(a.pop.IDs[best], a.pop.Vectors[best], a.pop.Fitness[best])

	a.record(trial.vector, result.Fitness, fidelity, result.Info, result.Cost)
	return nil
}
