package rando

import (
	"sync"

	"github.com/tutils/rando/prng"
)

// SyncGenerator is concurrency safe generator
type SyncGenerator struct {
	g  prng.Generator
	mu sync.Mutex
}

func (s *SyncGenerator) Uint32() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.Uint32()
}

// NewSyncGenerator serializes every draw from g. Callers sharing a
// generator between goroutines must go through it.
func NewSyncGenerator(g prng.Generator) prng.Generator {
	return &SyncGenerator{g: g}
}
