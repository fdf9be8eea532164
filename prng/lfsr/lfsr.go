// Package lfsr implements the additive feedback generator of the classic
// random() family. Two cursors walk a circular table of words; each step adds
// the rear word into the front word and emits the sum without its low bit.
package lfsr

import (
	"fmt"

	"github.com/tutils/rando/prng"
)

var _ prng.Generator = (*Generator)(nil)

// MinSeedLen is the shortest seed vector the cursor walk stays in bounds for.
const MinSeedLen = 3

const (
	outputMask = 0x7fffffff

	// minimal standard generator used to spread the seed over the table
	seedMultiplier = 16807
	seedModulus    = 2147483647

	discardRounds = 10
)

// tiers maps a seed length to the trinomial used for the table, largest first.
var tiers = []struct {
	minLen int
	degree int
	sep    int
}{
	{64, 63, 1}, // x**63 + x + 1
	{32, 31, 3}, // x**31 + x**3 + 1
	{16, 15, 1}, // x**15 + x + 1
	{8, 7, 3},   // x**7 + x**3 + 1
}

func tier(n int) (degree, sep int) {
	for _, t := range tiers {
		if n >= t.minLen {
			return t.degree, t.sep
		}
	}
	return n - 1, 0
}

// Generator is an additive feedback generator. The zero value is unusable;
// build one with New.
type Generator struct {
	buf    []uint32
	front  int
	rear   int
	end    int
	degree int
	sep    int
}

// New builds a generator from seed and runs it through its warm-up.
// The seed slice is copied.
func New(seed []uint32) (*Generator, error) {
	g := &Generator{}
	if err := g.Reseed(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Reseed replaces the whole table and both cursors, then discards
// (degree+1)*10 outputs. On error the generator is left as it was.
func (g *Generator) Reseed(seed []uint32) error {
	if len(seed) < MinSeedLen {
		return fmt.Errorf("%w: feedback generator needs at least %d words, got %d",
			prng.ErrInvalidSeed, MinSeedLen, len(seed))
	}

	g.load(seed)
	for i := 0; i < (g.degree+1)*discardRounds; i++ {
		g.Uint32()
	}
	return nil
}

// load installs seed without the warm-up.
func (g *Generator) load(seed []uint32) {
	buf := make([]uint32, len(seed))
	copy(buf, seed)

	degree, sep := tier(len(buf))
	for i := 1; i <= degree; i++ {
		buf[i] = (seedMultiplier * buf[i-1]) % seedModulus
	}

	g.buf = buf
	g.degree = degree
	g.sep = sep
	g.front = degree
	g.rear = sep
	g.end = len(buf) - 1
}

// Degree returns the table degree selected for the current seed.
func (g *Generator) Degree() int {
	return g.degree
}

// Separation returns the distance between the two cursors.
func (g *Generator) Separation() int {
	return g.sep
}

// Uint32 implements prng.Generator.
func (g *Generator) Uint32() uint32 {
	g.buf[g.front] += g.buf[g.rear]
	v := (g.buf[g.front] >> 1) & outputMask

	g.front++
	if g.front >= g.end {
		g.front = 0
		g.rear++
	} else {
		g.rear++
		if g.rear >= g.end {
			g.rear = 0
		}
	}
	return v
}
