package dehb

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// BoundaryFix names the out-of-range repair policy applied after crossover.
type BoundaryFix string

const (
	BoundaryRandom BoundaryFix = "random"
	BoundaryClip   BoundaryFix = "clip"
)

// AsyncStrategy names one of AsyncDE's four target-selection policies.
type AsyncStrategy string

const (
	AsyncDeferred  AsyncStrategy = "deferred"
	AsyncImmediate AsyncStrategy = "immediate"
	AsyncRandom    AsyncStrategy = "random"
	AsyncWorst     AsyncStrategy = "worst"
)

// Options configures a DE or AsyncDE driver. It is the YAML-loadable
// counterpart of the driver's constructor arguments, so a run can be
// expressed as a config file instead of Go literals.
type Options struct {
	PopSize         int           `yaml:"pop_size"`
	MutationFactor  float64       `yaml:"mutation_factor"`
	CrossoverProb   float64       `yaml:"crossover_prob"`
	Strategy        string        `yaml:"strategy"`
	MaxAge          int           `yaml:"max_age"`
	BoundaryFixType BoundaryFix   `yaml:"boundary_fix_type"`
	Seed            *uint32       `yaml:"seed"`
	OutputPath      string        `yaml:"output_path"`
	AsyncStrategy   AsyncStrategy `yaml:"async_strategy"`

	// Encoding/DimMap optionally project a lower-dimensional search vector
	// onto the space's D dimensions: DimMap[i] lists the input dims that feed
	// output dim i, aggregated by max (mirrors the source's dim_map).
	Encoding bool    `yaml:"encoding"`
	DimMap   [][]int `yaml:"dim_map"`
}

// DefaultOptions returns the source's defaults: rand1_bin strategy, factor
// 0.5, crossover 0.5, unbounded age, random boundary repair.
func DefaultOptions() Options {
	return Options{
		PopSize:         20,
		MutationFactor:  0.5,
		CrossoverProb:   0.5,
		Strategy:        "rand1_bin",
		MaxAge:          math.MaxInt32,
		BoundaryFixType: BoundaryRandom,
		AsyncStrategy:   AsyncImmediate,
	}
}

// LoadOptionsYAML reads Options from a YAML file; fields the file does not
// set keep their DefaultOptions values.
func LoadOptionsYAML(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("dehb: reading options file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("dehb: parsing options file %q: %w", path, err)
	}
	return opts, nil
}

// validate checks Options against the chosen strategy's minimum population
// requirement and returns a constructor-time error rather than panicking,
// per §7's misconfiguration policy.
func (o Options) validate() error {
	mut, _, ok := splitStrategy(o.Strategy)
	if !ok {
		return &ErrInvalidStrategy{Strategy: o.Strategy}
	}
	min := minPopSize[mut]
	if o.PopSize < min {
		return &ErrInsufficientPopulation{Strategy: o.Strategy, PopSize: o.PopSize, MinSize: min}
	}
	if o.CrossoverProb < 0 || o.CrossoverProb > 1 {
		return fmt.Errorf("dehb: crossover_prob must be in [0,1], got %f", o.CrossoverProb)
	}
	return nil
}
