package advisor

import (
	"math/rand/v2"
	"sync"
)

// Sampler draws n distinct items from a pool, uniformly and without
// replacement. Implementations must not modify pool.
type Sampler interface {
	Sample(pool []string, n int) []string
}

type randSampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSampler samples from the process-wide random source.
func NewRandomSampler() Sampler {
	return &randSampler{}
}

// NewSeededSampler returns a deterministic sampler, useful for reproducing a
// reply. Safe for concurrent use.
func NewSeededSampler(seed uint64) Sampler {
	return &randSampler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *randSampler) Sample(pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	var perm []int
	if s.rng == nil {
		perm = rand.Perm(len(pool))
	} else {
		s.mu.Lock()
		perm = s.rng.Perm(len(pool))
		s.mu.Unlock()
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = pool[perm[i]]
	}
	return out
}
