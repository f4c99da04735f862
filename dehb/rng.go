// Package dehb implements the Differential Evolution and AsyncDE kernel:
// population representation, mutation/crossover/selection operators, the
// synchronous and asynchronous drivers, and the ask/tell surface.
package dehb

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand"
	"sync"
)

// RNG is a mutex-guarded deterministic stream. Every sampling operation the
// kernel performs goes through one of its methods, in a single fixed total
// order per run, which is what makes a seeded run reproducible.
type RNG struct {
	mu           sync.Mutex
	src          *mrand.Rand
	OriginalSeed uint32
}

// NewRNG seeds a fresh stream. A nil seed draws 32 bits from crypto/rand and
// records it as OriginalSeed so Reset can replay the same stream later.
func NewRNG(seed *uint32) *RNG {
	var s uint32
	if seed == nil {
		s = freshSeed()
	} else {
		s = *seed
	}
	return &RNG{src: mrand.New(mrand.NewSource(int64(s))), OriginalSeed: s}
}

func freshSeed() uint32 {
	n, err := rand.Int(rand.Reader, big.NewInt(1<<32))
	if err != nil {
		// crypto/rand is not expected to fail on any supported platform;
		// fall back to a fixed value rather than leaving the RNG unseeded.
		return 0
	}
	return uint32(n.Uint64())
}

// Reset reseeds the stream from OriginalSeed, reproducing the exact
// sequence of draws a fresh RNG with that seed would produce.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.src = mrand.New(mrand.NewSource(int64(r.OriginalSeed)))
}

// Float64 returns a uniform draw in [0,1).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Float64()
}

// Uniform returns a uniform draw in [low, high).
func (r *RNG) Uniform(low, high float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return low + (high-low)*r.src.Float64()
}

// UniformArray fills a fresh []float64 of length n with independent uniform
// draws in [low, high).
func (r *RNG) UniformArray(n int, low, high float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = r.Uniform(low, high)
	}
	return out
}

// Intn returns a uniform draw in [0, n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Intn(n)
}

// Choice draws k distinct indices from [0, n) without replacement, in the
// order they are drawn (not sorted).
func (r *RNG) Choice(n, k int) []int {
	if k > n {
		panic("dehb: Choice requested more samples than population size")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	r.src.Shuffle(n, func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	out := make([]int, k)
	copy(out, pool[:k])
	return out
}

// Shuffle permutes indices [0, n) in place via swap.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.src.Shuffle(n, swap)
}
