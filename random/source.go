// Package random provides the uniform [0,1) number sources consumed by
// dungeon generation.
//
// Generation never reads ambient randomness. Callers hand a source to every
// generation call, so a fixed seed or a recorded sequence reproduces the
// exact same dungeon.
package random

import (
	"math/rand"
)

// Seeded draws from a math/rand generator initialised with a fixed seed.
type Seeded struct {
	seed int64
	rng  *rand.Rand
}

// NewSeeded creates a source that replays the same stream for the same seed.
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Float64 returns the next draw in [0,1).
func (s *Seeded) Float64() float64 {
	return s.rng.Float64()
}

// Seed returns the seed the source was created with.
func (s *Seeded) Seed() int64 {
	return s.seed
}

// Sequence replays a fixed list of draws, wrapping around when exhausted.
// Tests use it to force specific split axes, offsets and room sizes.
type Sequence struct {
	values []float64
	next   int
}

// NewSequence creates a source over the given draws. Values are clamped into
// [0,1); an empty sequence always yields 0.
func NewSequence(values ...float64) *Sequence {
	clamped := make([]float64, len(values))
	for i, v := range values {
		switch {
		case v < 0 || v != v:
			v = 0
		case v >= 1:
			v = 0.9999999999
		}
		clamped[i] = v
	}
	return &Sequence{values: clamped}
}

// Float64 returns the next recorded draw.
func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	return v
}

// Draws reports how many values have been consumed so far.
func (s *Sequence) Draws() int {
	return s.next
}
