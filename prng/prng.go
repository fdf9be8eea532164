package prng

import "errors"

// ErrInvalidSeed is returned when seed material cannot build a generator.
var ErrInvalidSeed = errors.New("invalid seed")

// Generator produces an unbounded deterministic sequence of 31-bit values
// returned as uint32. Implementations are not safe for concurrent use.
type Generator interface {
	Uint32() uint32
}
