package configspace

import (
	"math/rand"
	"sync"
)

// RNG is a mutex-guarded deterministic stream, mirroring the pattern the
// teacher's mutation engine uses to make a *rand.Rand safe for concurrent
// samplers while keeping draws in a single, reproducible total order.
type RNG struct {
	mu           sync.Mutex
	src          *rand.Rand
	originalSeed int64
}

// NewRNG seeds a stream from an int64, uint32 or nil (fresh entropy).
func NewRNG(seed any) *RNG {
	var s int64
	switch v := seed.(type) {
	case nil:
		s = rand.Int63()
	case int64:
		s = v
	case int:
		s = int64(v)
	case uint32:
		s = int64(v)
	default:
		s = 0
	}
	return &RNG{src: rand.New(rand.NewSource(s)), originalSeed: s}
}

func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Float64()
}

func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Intn(n)
}

// Reset reseeds the stream from its original seed, replaying the same
// sequence of draws a fresh RNG constructed with that seed would produce.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.src = rand.New(rand.NewSource(r.originalSeed))
}
