package dehb

// crossover recombines target and donor per kind. The result is a fresh
// vector; target and donor are never mutated in place.
func crossover(rng *RNG, kind crossoverKind, target, donor []float64, prob float64) []float64 {
	switch kind {
	case xoverBin:
		return crossoverBin(rng, target, donor, prob)
	case xoverExp:
		return crossoverExp(rng, target, donor, prob)
	default:
		panic("dehb: unknown crossover kind " + string(kind))
	}
}

// crossoverBin takes each coordinate from donor with probability prob,
// forcing at least one donor coordinate through if none was selected (§4.5).
func crossoverBin(rng *RNG, target, donor []float64, prob float64) []float64 {
	d := len(target)
	out := make([]float64, d)
	copy(out, target)

	any := false
	for i := 0; i < d; i++ {
		if rng.Float64() < prob {
			out[i] = donor[i]
			any = true
		}
	}
	if !any {
		forced := rng.Intn(d)
		out[forced] = donor[forced]
	}
	return out
}

// crossoverExp walks cyclically from a random start, copying donor
// coordinates while a fresh draw keeps succeeding, up to D coordinates (§4.5).
// The draw is tested before each copy, so a failing first draw leaves target
// unchanged.
func crossoverExp(rng *RNG, target, donor []float64, prob float64) []float64 {
	d := len(target)
	out := make([]float64, d)
	copy(out, target)

	n := rng.Intn(d)
	l := 0
	for l < d {
		if rng.Float64() >= prob {
			break
		}
		idx := (n + l) % d
		out[idx] = donor[idx]
		l++
	}
	return out
}
