package util

import (
	"math/rand"
	"sync"
)

// lockedSource serialises access to a rand.Source64 so the Rand built on it
// can be shared between goroutines.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source64
}

func (s *lockedSource) Int63() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Int63()
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

func (s *lockedSource) Seed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}

// NewThreadsafeRand returns a *rand.Rand that is safe to share across multiple goroutines.
func NewThreadsafeRand(seed int64) *rand.Rand {
	return rand.New(&lockedSource{
		src: rand.NewSource(seed).(rand.Source64),
	})
}
