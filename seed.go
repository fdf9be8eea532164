package rando

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// spreadTable is the degree-31 table size. Seed words at indices 1..31 are
// overwritten from word 0 during seeding, so only word 0 and the words past
// the table survive.
const spreadTable = 32

// maxSpreadWords keeps a spread vector below the degree-63 tier.
const maxSpreadWords = 31

// SpreadSeed lays words out as a feedback generator seed in which every word
// influences the output: word 0 seeds the table and the rest follow it,
// with one trailing slot that the cursors never visit. At most 31 words are
// used. The first word also serves as an LCG seed.
func SpreadSeed(words ...uint32) []uint32 {
	if len(words) == 0 {
		return nil
	}
	if len(words) > maxSpreadWords {
		words = words[:maxSpreadWords]
	}
	v := make([]uint32, spreadTable+len(words))
	v[0] = words[0]
	copy(v[spreadTable:], words[1:])
	return v
}

// UUIDSeed splits u into four big-endian words and spreads them.
func UUIDSeed(u uuid.UUID) []uint32 {
	words := make([]uint32, len(u)/4)
	for i := range words {
		words[i] = binary.BigEndian.Uint32(u[i*4:])
	}
	return SpreadSeed(words...)
}
