package dehb

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/hadarshavit/dehb-go/configspace"
	"github.com/hadarshavit/dehb-go/repository"
)

// EvalResult is what an Objective reports for one evaluation: a finite
// Fitness (NaN is rejected), a non-negative Cost, and optional metadata.
type EvalResult struct {
	Fitness float64
	Cost    float64
	Info    map[string]any
}

// Objective is the caller-supplied black-box function. cfg is either a
// configspace.Configuration (when the driver was built with a space) or a
// raw []float64 vector otherwise.
type Objective func(ctx context.Context, cfg any, fidelity float64) (EvalResult, error)

// HistoryEntry records one evaluation for later inspection.
type HistoryEntry struct {
	Vector   []float64
	Fitness  float64
	Fidelity float64
	Info     map[string]any
}

// RunResult is the trajectory produced by Run or accumulated by Ask/Tell.
type RunResult struct {
	Traj    []float64
	Runtime []float64
	History []HistoryEntry
}

// MetricsRecorder is the observability hook §10 wires to Prometheus; it is
// a pure observer and never influences search behavior.
type MetricsRecorder interface {
	ObserveEvaluation(fitness, cost float64)
	SetIncumbent(score float64)
}

// DE is the synchronous Differential Evolution driver.
type DE struct {
	opts      Options
	mut       mutationKind
	xover     crossoverKind
	rng       *RNG
	repo      *repository.Repository
	cs        *configspace.ConfigurationSpace
	objective Objective
	logger    *zerolog.Logger
	metrics   MetricsRecorder

	dim int
	pop *population
	inc incumbent

	traj    []float64
	runtime []float64
	history []HistoryEntry
}

// DEOption configures optional collaborators at construction time.
type DEOption func(*DE)

func WithConfigSpace(cs *configspace.ConfigurationSpace) DEOption {
	return func(d *DE) { d.cs = cs }
}

func WithLogger(l zerolog.Logger) DEOption {
	return func(d *DE) { d.logger = &l }
}

func WithMetrics(m MetricsRecorder) DEOption {
	return func(d *DE) { d.metrics = m }
}

func WithRepository(r *repository.Repository) DEOption {
	return func(d *DE) { d.repo = r }
}

// WithRNG makes the driver draw from r directly instead of a fresh stream
// seeded from Options.Seed.
func WithRNG(r *RNG) DEOption {
	return func(d *DE) { d.rng = r }
}

// New builds a DE driver. dim is the vector dimensionality; when a
// ConfigurationSpace is supplied via WithConfigSpace, dim must equal its Dim.
func New(opts Options, dim int, objective Objective, opts2 ...DEOption) (*DE, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if objective == nil {
		return nil, fmt.Errorf("dehb: objective is required")
	}
	mut, xover, _ := splitStrategy(opts.Strategy)

	d := &DE{
		opts:      opts,
		mut:       mut,
		xover:     xover,
		rng:       NewRNG(opts.Seed),
		repo:      repository.New(),
		objective: objective,
		dim:       dim,
	}
	for _, o := range opts2 {
		o(d)
	}
	if d.cs != nil && d.cs.Dim() != dim {
		return nil, fmt.Errorf("dehb: dim %d does not match configuration space dimension %d", dim, d.cs.Dim())
	}
	return d, nil
}

// Reset clears trajectory state and the incumbent, and reseeds the RNG (and,
// if attached, the configuration space's sampling RNG) from its original
// seed so a fresh Run reproduces a prior one exactly.
func (d *DE) Reset() {
	d.rng.Reset()
	if d.cs != nil {
		d.cs.Reset()
	}
	d.inc = incumbent{}
	d.traj = nil
	d.runtime = nil
	d.history = nil
	d.pop = nil
}

// Incumbent returns the best (score, vector, id) observed so far.
func (d *DE) Incumbent() (score float64, vector []float64, id int64, ok bool) {
	return d.inc.Score, d.inc.Vector, d.inc.ID, d.inc.set
}

func (d *DE) sampleVector() []float64 {
	if d.cs != nil {
		return d.cs.ConfigurationToVector(d.cs.Sample())
	}
	return d.rng.UniformArray(d.dim, 0, 1)
}

func (d *DE) toObjectiveArg(vector []float64) any {
	if d.cs != nil {
		return d.cs.VectorToConfiguration(vector)
	}
	return d.projectVector(vector)
}

// evaluate invokes the objective and validates its result per §6/§7.
func (d *DE) evaluate(ctx context.Context, vector []float64, fidelity float64) (EvalResult, error) {
	res, err := d.objective(ctx, d.toObjectiveArg(vector), fidelity)
	if err != nil {
		return EvalResult{}, wrapObjective(err)
	}
	if math.IsNaN(res.Fitness) {
		return EvalResult{}, &ErrInvalidResult{Reason: "fitness is NaN"}
	}
	if res.Cost < 0 {
		return EvalResult{}, &ErrInvalidResult{Reason: "cost is negative"}
	}
	if d.metrics != nil {
		d.metrics.ObserveEvaluation(res.Fitness, res.Cost)
	}
	return res, nil
}

// updateIncumbent refreshes the incumbent and, if a metrics recorder is
// attached, publishes its current score.
func (d *DE) updateIncumbent(id int64, vector []float64, fitness float64) {
	d.inc.considerResult(id, vector, fitness)
	if d.metrics != nil {
		d.metrics.SetIncumbent(d.inc.Score)
	}
}

func (d *DE) record(vector []float64, fitness, fidelity float64, info map[string]any, cost float64) {
	d.traj = append(d.traj, d.inc.Score)
	d.runtime = append(d.runtime, cost)
	d.history = append(d.history, HistoryEntry{Vector: vector, Fitness: fitness, Fidelity: fidelity, Info: info})
}

// InitEvalPop builds and (optionally) evaluates the initial population.
func (d *DE) InitEvalPop(ctx context.Context, fidelity float64, eval bool) error {
	d.pop = newPopulation(d.opts.PopSize, d.dim, d.opts.MaxAge)
	vectors := make([][]float64, d.opts.PopSize)
	for i := range vectors {
		vectors[i] = d.sampleVector()
	}
	ids := d.repo.AnnouncePopulation(vectors, fidelity)
	for i := range vectors {
		d.pop.Vectors[i] = vectors[i]
		d.pop.IDs[i] = ids[i]
	}
	if !eval {
		return nil
	}
	for i := range vectors {
		res, err := d.evaluate(ctx, vectors[i], fidelity)
		if err != nil {
			return err
		}
		d.pop.Fitness[i] = res.Fitness
		d.repo.TellResult(ids[i], fidelity, res.Fitness, res.Cost, res.Info)
		d.updateIncumbent(ids[i], vectors[i], res.Fitness)
		d.record(vectors[i], res.Fitness, fidelity, res.Info, res.Cost)
	}
	return nil
}

// EvolveGeneration runs one full-batch DE generation: build N trials against
// the current population, evaluate them, then select all N at once.
func (d *DE) EvolveGeneration(ctx context.Context, fidelity float64) error {
	n := d.pop.size()
	trialVectors := make([][]float64, n)
	trialIDs := make([]int64, n)
	bestVec := d.pop.Vectors[d.pop.best()]

	for i := 0; i < n; i++ {
		parents := samplePopulation(d.rng, d.pop.Vectors, nil, minPopSize[d.mut])
		donor := mutate(d.mut, d.opts.MutationFactor, d.pop.Vectors[i], bestVec, parents)
		trial := crossover(d.rng, d.xover, d.pop.Vectors[i], donor, d.opts.CrossoverProb)
		trial = boundaryCheck(d.rng, trial, d.opts.BoundaryFixType)
		trialVectors[i] = trial
	}
	ids := d.repo.AnnouncePopulation(trialVectors, fidelity)
	copy(trialIDs, ids)

	for i := 0; i < n; i++ {
		res, err := d.evaluate(ctx, trialVectors[i], fidelity)
		if err != nil {
			return err
		}
		d.repo.TellResult(trialIDs[i], fidelity, res.Fitness, res.Cost, res.Info)
		selectOne(d.pop, i, trialVectors[i], trialIDs[i], res.Fitness, d.opts.MaxAge)
		d.updateIncumbent(d.pop.IDs[i], d.pop.Vectors[i], d.pop.Fitness[i])
		d.record(trialVectors[i], res.Fitness, fidelity, res.Info, res.Cost)
	}
	return nil
}

// Run drives `generations` full generations, initializing the population
// first if reset is set or no run has happened yet.
func (d *DE) Run(ctx context.Context, generations int, fidelity float64, verbose bool, reset bool) (RunResult, error) {
	if reset || d.pop == nil {
		d.Reset()
		if err := d.InitEvalPop(ctx, fidelity, true); err != nil {
			return RunResult{}, err
		}
	}
	for g := 0; g < generations; g++ {
		if err := d.EvolveGeneration(ctx, fidelity); err != nil {
			return RunResult{}, err
		}
		if verbose && d.logger != nil {
			d.logger.Info().Int("generation", g).Float64("incumbent", d.inc.Score).Msg("generation complete")
		}
	}
	return RunResult{Traj: d.traj, Runtime: d.runtime, History: d.history}, nil
}
