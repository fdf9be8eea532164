package rando

import (
	"io"

	"github.com/tutils/rando/prng"
)

var _ io.Reader = (*Reader)(nil)

// Reader is an endless byte stream drawn from a generator. Every output
// yields three bytes, the top 24 of its 31 bits, high byte first.
type Reader struct {
	g       prng.Generator
	pending [3]byte
	n       int // unread bytes at the tail of pending
}

func NewReader(g prng.Generator) *Reader {
	return &Reader{g: g}
}

// Read always fills p and never returns an error.
func (r *Reader) Read(p []byte) (int, error) {
	i := 0
	for i < len(p) {
		if r.n == 0 {
			v := r.g.Uint32()
			r.pending[0] = byte(v >> 23)
			r.pending[1] = byte(v >> 15)
			r.pending[2] = byte(v >> 7)
			r.n = 3
		}
		c := copy(p[i:], r.pending[3-r.n:])
		r.n -= c
		i += c
	}
	return i, nil
}
