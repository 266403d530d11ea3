package util

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewThreadsafeRand_Deterministic(t *testing.T) {
	a := NewThreadsafeRand(42)
	b := NewThreadsafeRand(42)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
}

func TestNewThreadsafeRand_ConcurrentUse(t *testing.T) {
	rng := NewThreadsafeRand(1)

	wg := sync.WaitGroup{}
	for range 8 {
		wg.Go(func() {
			for i := 0; i < 1000; i++ {
				_ = rng.Int63()
			}
		})
	}
	wg.Wait()
}
