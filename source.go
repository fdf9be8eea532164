package rando

import (
	"math/rand"

	"github.com/tutils/rando/prng"
	"github.com/tutils/rando/prng/lcg"
	"github.com/tutils/rando/prng/lfsr"
)

// 验证接口实现
var _ rand.Source = (*Source)(nil)
var _ rand.Source64 = (*Source)(nil)

// Source adapts a generator to math/rand. Each generator output carries 31
// bits, so Int63 consumes three outputs and Uint64 consumes three as well.
type Source struct {
	g     prng.Generator
	newer func(seed int64) prng.Generator
}

// NewSource wraps g. Seed on the result is a no-op because g has no int64
// seeding rule.
func NewSource(g prng.Generator) *Source {
	return &Source{g: g}
}

// NewLCGSource seeds an LCG from the low 32 bits of seed.
func NewLCGSource(seed int64) rand.Source {
	s := &Source{newer: lcgFromInt64}
	s.Seed(seed)
	return s
}

// NewLFSRSource seeds a degree-31 feedback generator from both halves of seed.
func NewLFSRSource(seed int64) rand.Source {
	s := &Source{newer: lfsrFromInt64}
	s.Seed(seed)
	return s
}

func lcgFromInt64(seed int64) prng.Generator {
	return lcg.New(uint32(seed))
}

func lfsrFromInt64(seed int64) prng.Generator {
	g, err := lfsr.New(SpreadSeed(uint32(seed), uint32(uint64(seed)>>32)))
	if err != nil {
		panic(err) // a spread seed is always long enough
	}
	return g
}

// Seed implements rand.Source. It builds a fresh generator rather than
// calling Reseed, so the stream always restarts.
func (s *Source) Seed(seed int64) {
	if s.newer != nil {
		s.g = s.newer(seed)
	}
}

// Uint64 implements rand.Source64.
func (s *Source) Uint64() uint64 {
	hi := uint64(s.g.Uint32()) << 33
	mid := uint64(s.g.Uint32()) << 2
	lo := uint64(s.g.Uint32()) >> 29
	return hi | mid | lo
}

// Int63 implements rand.Source.
func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Uint32 lets a Source stand in as a prng.Generator again.
func (s *Source) Uint32() uint32 {
	return s.g.Uint32()
}
