// Package rando selects a generator by kind and adapts generators to the
// standard library's random interfaces.
package rando

import (
	"fmt"
	"strings"

	"github.com/tutils/rando/prng"
	"github.com/tutils/rando/prng/lcg"
	"github.com/tutils/rando/prng/lfsr"
)

// Kind names a generator algorithm.
type Kind int

const (
	KindLCG Kind = iota
	KindLFSR
)

func (k Kind) String() string {
	switch k {
	case KindLCG:
		return "lcg"
	case KindLFSR:
		return "lfsr"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind accepts the names returned by Kind.String, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lcg":
		return KindLCG, nil
	case "lfsr", "feedback", "additive":
		return KindLFSR, nil
	}
	return 0, fmt.Errorf("unknown generator kind %q", s)
}

// New builds a generator of the given kind. The LCG takes seed[0]; the
// feedback generator takes the whole vector.
func New(kind Kind, seed []uint32) (prng.Generator, error) {
	switch kind {
	case KindLCG:
		if len(seed) == 0 {
			return nil, fmt.Errorf("%w: lcg needs one word", prng.ErrInvalidSeed)
		}
		return lcg.New(seed[0]), nil
	case KindLFSR:
		g, err := lfsr.New(seed)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
	return nil, fmt.Errorf("unknown generator kind %s", kind)
}

// Draw returns the next n outputs of g reduced modulo m. A zero m leaves the
// outputs untouched.
func Draw(g prng.Generator, n int, m uint32) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		v := g.Uint32()
		if m != 0 {
			v %= m
		}
		out[i] = v
	}
	return out
}
