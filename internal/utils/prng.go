// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps a seeded generator so every random decision in a run can be reproduced.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService creates a generator with the given seed.
// A zero seed means "use the current time".
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng:  rand.New(source),
		seed: seed,
	}
}

// Seed returns the seed actually used.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// IntRange returns an int in [min, max], both ends inclusive.
func (s *PRNGService) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

// FloatRange returns a float in [min, max).
func (s *PRNGService) FloatRange(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.rng.Float64()*(max-min)
}

// Chance is a Bernoulli trial that succeeds with probability p.
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}
