// Package repository implements the ConfigRepository: a monotone-id arena
// that remembers every configuration announced to it and the per-fidelity
// results later told back by the driver.
package repository

import (
	"fmt"
	"sync"
)

// Result is one evaluation outcome for a configuration at a given fidelity.
type Result struct {
	Fidelity float64
	Fitness  float64
	Cost     float64
	Info     map[string]any
}

// entry is the per-id arena slot: the announced vector plus its result
// history, one record per fidelity it has been evaluated at.
type entry struct {
	vector  []float64
	results []Result
}

// Repository assigns ids to announced configuration vectors in a strictly
// increasing sequence starting at 0, and records evaluation results against
// those ids. Ids are never reused and entries are never removed.
type Repository struct {
	mu      sync.RWMutex
	entries []entry
}

func New() *Repository {
	return &Repository{}
}

// AnnounceConfig assigns the next id to vector and returns it. fidelity is
// accepted for symmetry with AnnouncePopulation but is opaque here; results
// carry their own fidelity.
func (r *Repository) AnnounceConfig(vector []float64, _ float64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := int64(len(r.entries))
	cp := make([]float64, len(vector))
	copy(cp, vector)
	r.entries = append(r.entries, entry{vector: cp})
	return id
}

// AnnouncePopulation announces each vector in order, returning ids in the
// same order (ids are therefore contiguous for a freshly announced batch).
func (r *Repository) AnnouncePopulation(vectors [][]float64, fidelity float64) []int64 {
	ids := make([]int64, len(vectors))
	for i, v := range vectors {
		ids[i] = r.AnnounceConfig(v, fidelity)
	}
	return ids
}

// TellResult appends a result record for id. id must have been returned by
// a prior Announce call; an unknown id is a programmer error.
func (r *Repository) TellResult(id int64, fidelity, fitness, cost float64, info map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id < 0 || int(id) >= len(r.entries) {
		panic(fmt.Sprintf("repository: TellResult for unknown id %d", id))
	}
	r.entries[id].results = append(r.entries[id].results, Result{
		Fidelity: fidelity,
		Fitness:  fitness,
		Cost:     cost,
		Info:     info,
	})
}

// Vector returns a copy of the vector announced for id.
func (r *Repository) Vector(id int64) []float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id < 0 || int(id) >= len(r.entries) {
		panic(fmt.Sprintf("repository: Vector for unknown id %d", id))
	}
	cp := make([]float64, len(r.entries[id].vector))
	copy(cp, r.entries[id].vector)
	return cp
}

// Results returns a copy of the result history for id, in Tell order.
func (r *Repository) Results(id int64) []Result {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id < 0 || int(id) >= len(r.entries) {
		panic(fmt.Sprintf("repository: Results for unknown id %d", id))
	}
	out := make([]Result, len(r.entries[id].results))
	copy(out, r.entries[id].results)
	return out
}

// Len returns the number of ids ever announced.
func (r *Repository) Len() int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.entries))
}
