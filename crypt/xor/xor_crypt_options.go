package xor

import (
	"math/rand"

	"github.com/tutils/rando"
	"github.com/tutils/rando/crypt"
)

// DefaultRandomSourceNewer keys the stream with the LCG.
var DefaultRandomSourceNewer RandomSourceNewer = rando.NewLCGSource

type xorEncoderOptions struct {
	sourceNewer RandomSourceNewer
}

func newXorEncoderOptions(opts ...crypt.EncoderOption) *xorEncoderOptions {
	var opt xorEncoderOptions
	for _, o := range opts {
		o(&opt)
	}
	if opt.sourceNewer == nil {
		opt.sourceNewer = DefaultRandomSourceNewer
	}
	return &opt
}

type RandomSourceNewer func(int64) rand.Source

// SourceNewer maps a generator kind to its int64-seeded source.
func SourceNewer(kind rando.Kind) RandomSourceNewer {
	if kind == rando.KindLFSR {
		return rando.NewLFSRSource
	}
	return rando.NewLCGSource
}

func WithEncoderRandomSourceNewer(newer RandomSourceNewer) crypt.EncoderOption {
	return func(opts crypt.EncoderOptions) {
		if o, ok := opts.(*xorEncoderOptions); ok {
			o.sourceNewer = newer
		}
	}
}

type xorDecoderOptions struct {
	sourceNewer RandomSourceNewer
}

func newXorDecoderOptions(opts ...crypt.DecoderOption) *xorDecoderOptions {
	var opt xorDecoderOptions
	for _, o := range opts {
		o(&opt)
	}
	if opt.sourceNewer == nil {
		opt.sourceNewer = DefaultRandomSourceNewer
	}
	return &opt
}

func WithDecoderRandomSourceNewer(newer RandomSourceNewer) crypt.DecoderOption {
	return func(opts crypt.DecoderOptions) {
		if o, ok := opts.(*xorDecoderOptions); ok {
			o.sourceNewer = newer
		}
	}
}
