package configspace

import "fmt"

// Configuration is a mapping from parameter name to its typed value. Only
// parameters active under the space's conditions are present.
type Configuration map[string]any

// Condition gates a hyperparameter's activity on another parameter's value.
// It is satisfied when Parent's current value is one of Values.
type Condition struct {
	Child  string
	Parent string
	Values []any
}

func (c Condition) satisfied(cfg Configuration) bool {
	pv, ok := cfg[c.Parent]
	if !ok {
		return false
	}
	for _, v := range c.Values {
		if v == pv {
			return true
		}
	}
	return false
}

// ConfigurationSpace is an ordered set of Hyperparameters plus the
// conditional activation rules between them.
type ConfigurationSpace struct {
	params     []Hyperparameter
	index      map[string]int
	conditions map[string]Condition // keyed by child name
	rng        *RNG
}

// New builds a space from the given parameters in declaration order. Order
// matters: it fixes the dimension index every vector coordinate refers to.
func New(seed any, params ...Hyperparameter) *ConfigurationSpace {
	idx := make(map[string]int, len(params))
	for i, p := range params {
		idx[p.Name()] = i
	}
	return &ConfigurationSpace{
		params:     params,
		index:      idx,
		conditions: make(map[string]Condition),
		rng:        NewRNG(seed),
	}
}

// AddCondition registers a conditional activation rule for an already
// present child parameter.
func (cs *ConfigurationSpace) AddCondition(cond Condition) {
	if _, ok := cs.index[cond.Child]; !ok {
		panic(fmt.Sprintf("configspace: unknown child parameter %q in condition", cond.Child))
	}
	cs.conditions[cond.Child] = cond
}

// Dim is the total number of declared hyperparameters, active or not.
func (cs *ConfigurationSpace) Dim() int { return len(cs.params) }

// Reset reseeds the space's sampling stream from its original seed, mirroring
// the source's cs.seed(original_seed) call in reset().
func (cs *ConfigurationSpace) Reset() { cs.rng.Reset() }

// Names returns the declared parameter names in index order.
func (cs *ConfigurationSpace) Names() []string {
	names := make([]string, len(cs.params))
	for i, p := range cs.params {
		names[i] = p.Name()
	}
	return names
}

// DefaultConfiguration returns every parameter's default value, including
// inactive ones (callers that need only active parameters should call
// DeactivateInactive on the result).
func (cs *ConfigurationSpace) DefaultConfiguration() Configuration {
	cfg := make(Configuration, len(cs.params))
	for _, p := range cs.params {
		cfg[p.Name()] = p.Default()
	}
	return cfg
}

// Sample draws a uniformly random configuration, respecting conditions:
// children whose condition fails are omitted.
func (cs *ConfigurationSpace) Sample() Configuration {
	full := cs.DefaultConfiguration()
	for _, p := range cs.params {
		code := cs.rng.Float64()
		full[p.Name()] = p.Decode(code)
	}
	return cs.DeactivateInactive(full)
}

// SamplePopulation draws n independent configurations via Sample.
func (cs *ConfigurationSpace) SamplePopulation(n int) []Configuration {
	out := make([]Configuration, n)
	for i := range out {
		out[i] = cs.Sample()
	}
	return out
}

// ImputeInactive fills in default values for any parameter missing from cfg
// (typically because DeactivateInactive previously removed it).
func (cs *ConfigurationSpace) ImputeInactive(cfg Configuration) Configuration {
	out := make(Configuration, len(cs.params))
	for _, p := range cs.params {
		if v, ok := cfg[p.Name()]; ok {
			out[p.Name()] = v
		} else {
			out[p.Name()] = p.Default()
		}
	}
	return out
}

// DeactivateInactive removes parameters whose condition is not satisfied by
// the rest of cfg. Unconditioned parameters are always kept.
func (cs *ConfigurationSpace) DeactivateInactive(cfg Configuration) Configuration {
	out := make(Configuration, len(cfg))
	for k, v := range cfg {
		out[k] = v
	}
	for child, cond := range cs.conditions {
		if !cond.satisfied(out) {
			delete(out, child)
		}
	}
	return out
}

// hyperparameter looks up a declared parameter by name; panics if absent,
// matching the package's treat-programmer-error-as-panic convention.
func (cs *ConfigurationSpace) hyperparameter(name string) Hyperparameter {
	i, ok := cs.index[name]
	if !ok {
		panic(fmt.Sprintf("configspace: unknown parameter %q", name))
	}
	return cs.params[i]
}
