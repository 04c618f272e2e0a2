package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// FillRandom seeds g deterministically, each cell alive with probability
// density. Densities at or below 0 leave every cell dead and densities at or
// above 1 make every cell alive.
func FillRandom(g *Grid, seed int64, density float64) {
	rng := NewRNG(seed)
	for i := range g.data {
		g.data[i] = 0
		if rng.Chance(density) {
			g.data[i] = 1
		}
	}
}
