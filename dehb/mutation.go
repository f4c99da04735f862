package dehb

import "strings"

// mutationKind names one of the seven donor-vector strategies (§4.4).
type mutationKind string

const (
	mutRand1          mutationKind = "rand1"
	mutRand2          mutationKind = "rand2"
	mutRand2Dir       mutationKind = "rand2dir"
	mutBest1          mutationKind = "best1"
	mutBest2          mutationKind = "best2"
	mutCurrentToBest1 mutationKind = "currenttobest1"
	mutRandToBest1    mutationKind = "randtobest1"
)

// crossoverKind names the recombination operator paired with a mutation.
type crossoverKind string

const (
	xoverBin crossoverKind = "bin"
	xoverExp crossoverKind = "exp"
)

// minPopSize is the minimum number of distinct parent vectors each mutation
// kind needs to sample (the source's hard-coded per-strategy table).
var minPopSize = map[mutationKind]int{
	mutRand1:          3,
	mutRand2:          5,
	mutRand2Dir:       3,
	mutBest1:          2,
	mutBest2:          4,
	mutCurrentToBest1: 2,
	mutRandToBest1:    3,
}

// splitStrategy parses "<mut>_<xover>" into its two parts, reporting
// whether both halves are recognized.
func splitStrategy(strategy string) (mutationKind, crossoverKind, bool) {
	parts := strings.SplitN(strategy, "_", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	mut := mutationKind(parts[0])
	xover := crossoverKind(parts[1])
	if _, ok := minPopSize[mut]; !ok {
		return "", "", false
	}
	if xover != xoverBin && xover != xoverExp {
		return "", "", false
	}
	return mut, xover, true
}

// mutate builds a donor vector from the sampled parents. parents must hold
// at least minPopSize[kind] distinct vectors, in the order the kind needs
// them; best and current are supplied separately since not every kind uses
// them.
func mutate(kind mutationKind, factor float64, current, best []float64, parents [][]float64) []float64 {
	switch kind {
	case mutRand1:
		return combine(parents[0], scale(factor, sub(parents[1], parents[2])))
	case mutRand2:
		return combine(parents[0], scale(factor, sub(parents[1], parents[2])), scale(factor, sub(parents[3], parents[4])))
	case mutRand2Dir:
		return combine(parents[0], scale(factor/2, sub(sub(parents[0], parents[1]), parents[2])))
	case mutBest1:
		return combine(best, scale(factor, sub(parents[0], parents[1])))
	case mutBest2:
		return combine(best, scale(factor, sub(parents[0], parents[1])), scale(factor, sub(parents[2], parents[3])))
	case mutCurrentToBest1:
		return combine(current, scale(factor, sub(best, current)), scale(factor, sub(parents[0], parents[1])))
	case mutRandToBest1:
		return combine(parents[0], scale(factor, sub(best, parents[1])), scale(factor, sub(parents[2], parents[3])))
	default:
		panic("dehb: unknown mutation kind " + string(kind))
	}
}

func sub(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

func scale(f float64, v []float64) []float64 {
	out := make([]float64, len(v))
	for i := range v {
		out[i] = f * v[i]
	}
	return out
}

func combine(base []float64, terms ...[]float64) []float64 {
	out := make([]float64, len(base))
	copy(out, base)
	for _, t := range terms {
		for i := range out {
			out[i] += t[i]
		}
	}
	return out
}

// samplePopulation draws `size` distinct indices without replacement from
// pool via rng, extending pool with fallback first if it is too small (the
// synchronous driver's altPop padding rule, §4.4).
func samplePopulation(rng *RNG, pool [][]float64, fallback [][]float64, size int) [][]float64 {
	if len(pool) < 3 && len(fallback) > 0 {
		extended := make([][]float64, 0, len(pool)+len(fallback))
		extended = append(extended, pool...)
		extended = append(extended, fallback...)
		pool = extended
	}
	idxs := rng.Choice(len(pool), size)
	out := make([][]float64, size)
	for i, idx := range idxs {
		out[i] = pool[idx]
	}
	return out
}
