package dehb

// boundaryCheck repairs any coordinate of v outside [0,1] according to
// policy, returning a fresh vector (v is never mutated in place).
func boundaryCheck(rng *RNG, v []float64, policy BoundaryFix) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	for i, c := range out {
		if c >= 0 && c <= 1 {
			continue
		}
		switch policy {
		case BoundaryClip:
			if c < 0 {
				out[i] = 0
			} else {
				out[i] = 1
			}
		case BoundaryRandom:
			out[i] = rng.Uniform(0, 1)
		default:
			panic("dehb: unknown boundary policy " + string(policy))
		}
	}
	return out
}
