package dehb

import "math"

// population holds a fixed-size set of individuals as parallel slices: the
// structure-of-arrays layout the source itself uses (vectors, ids, fitness,
// age all indexed together), rather than a materialized Individual struct.
type population struct {
	Vectors [][]float64
	IDs     []int64
	Fitness []float64
	Age     []int
}

func newPopulation(size, dim int, maxAge int) *population {
	p := &population{
		Vectors: make([][]float64, size),
		IDs:     make([]int64, size),
		Fitness: make([]float64, size),
		Age:     make([]int, size),
	}
	for i := 0; i < size; i++ {
		p.Vectors[i] = make([]float64, dim)
		p.Fitness[i] = math.Inf(1)
		p.Age[i] = maxAge
	}
	return p
}

func (p *population) size() int { return len(p.Vectors) }

// best returns the index of the minimum-fitness individual.
func (p *population) best() int {
	best := 0
	for i := 1; i < len(p.Fitness); i++ {
		if p.Fitness[i] < p.Fitness[best] {
			best = i
		}
	}
	return best
}

// worst returns the index of the maximum-fitness individual.
func (p *population) worst() int {
	worst := 0
	for i := 1; i < len(p.Fitness); i++ {
		if p.Fitness[i] > p.Fitness[worst] {
			worst = i
		}
	}
	return worst
}

// vectorsExcept returns a copy of Vectors with index exclude omitted (used
// by AsyncDE's target-excluded sampling pool, §4.4).
func (p *population) vectorsExcept(exclude int) [][]float64 {
	out := make([][]float64, 0, len(p.Vectors)-1)
	for i, v := range p.Vectors {
		if i == exclude {
			continue
		}
		out = append(out, v)
	}
	return out
}
