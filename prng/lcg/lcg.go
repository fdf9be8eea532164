package lcg

import "github.com/tutils/rando/prng"

// 验证接口实现
var _ prng.Generator = (*Generator)(nil)

const (
	Multiplier  = 1103515245
	Increment   = 12345
	ModulusMask = 0x7fffffff // 2**31 - 1

	DefaultSeed = 1
)

// Generator is a 32-bit linear congruential generator.
type Generator struct {
	seed  uint32
	state uint32
}

// New uses seed verbatim, zero included.
func New(seed uint32) *Generator {
	return &Generator{seed: seed, state: seed}
}

// NewUnseeded starts from DefaultSeed.
func NewUnseeded() *Generator {
	return New(DefaultSeed)
}

// Reseed records seed, with 0 replaced by 1. It leaves the recurrence
// register alone: the next Uint32 continues from the current state.
func (g *Generator) Reseed(seed uint32) {
	if seed == 0 {
		seed = 1
	}
	g.seed = seed
}

// Seed returns the last recorded seed.
func (g *Generator) Seed() uint32 {
	return g.seed
}

// State returns the recurrence register.
func (g *Generator) State() uint32 {
	return g.state
}

// Uint32 advances the recurrence and returns the new state.
func (g *Generator) Uint32() uint32 {
	g.state = (g.state*Multiplier + Increment) & ModulusMask
	return g.state
}
