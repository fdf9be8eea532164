// Package crypt wraps streams in a reversible keystream transform. The
// keystreams come from the generators in this module, which are not
// cryptographically secure: this is obfuscation, not encryption.
package crypt

import (
	"io"
)

// Crypt wrap reader and writer
type Crypt interface {
	NewEncoder(w io.Writer, opts ...EncoderOption) io.Writer
	NewDecoder(r io.Reader, opts ...DecoderOption) io.Reader
}

// EncoderOptions is implemented by each Crypt's private encoder settings.
type EncoderOptions interface{}

type EncoderOption func(opts EncoderOptions)

// DecoderOptions is implemented by each Crypt's private decoder settings.
type DecoderOptions interface{}

type DecoderOption func(opts DecoderOptions)
