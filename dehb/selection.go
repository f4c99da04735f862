package dehb

// incumbent tracks the best configuration this driver has ever observed.
// Score only ever decreases; ID is the repository id of Vector.
type incumbent struct {
	Score  float64
	Vector []float64
	ID     int64
	set    bool
}

// considerResult updates the incumbent if fitness is strictly better than
// anything seen so far (§4.7).
func (inc *incumbent) considerResult(id int64, vector []float64, fitness float64) {
	if inc.set && fitness >= inc.Score {
		return
	}
	inc.Score = fitness
	inc.Vector = append([]float64(nil), vector...)
	inc.ID = id
	inc.set = true
}

// selectOne applies the one-to-one tie rule: trial replaces parent when
// trialFitness <= parentFitness (equality matters for landscape exploration,
// §4.7). Returns whether the replacement happened.
func selectOne(p *population, idx int, trialVector []float64, trialID int64, trialFitness float64, maxAge int) bool {
	if trialFitness <= p.Fitness[idx] {
		p.Vectors[idx] = trialVector
		p.IDs[idx] = trialID
		p.Fitness[idx] = trialFitness
		p.Age[idx] = maxAge
		return true
	}
	p.Age[idx]--
	return false
}
