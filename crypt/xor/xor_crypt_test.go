package xor

import (
	"bytes"
	"io"
	"testing"

	"github.com/tutils/rando"
)

func TestNewCrypt(t *testing.T) {
	buf := &bytes.Buffer{}
	c := NewCrypt(544141)
	en := c.NewEncoder(buf)
	de := c.NewDecoder(buf)

	plain := []byte("abcdefg")
	en.Write(plain)
	if bytes.Equal(buf.Bytes(), plain) {
		t.Fatalf("encoder left the input unchanged")
	}

	bs, err := io.ReadAll(de)
	if err != nil {
		t.Fatal(err)
	}
	if string(bs) != string(plain) {
		t.Fatalf("expected %q, got %q", plain, bs)
	}
}

func TestNewCrypt_LFSRSource(t *testing.T) {
	buf := &bytes.Buffer{}
	c := NewCrypt(816559)
	newer := WithEncoderRandomSourceNewer(SourceNewer(rando.KindLFSR))
	en := c.NewEncoder(buf, newer)

	plain := bytes.Repeat([]byte("rando "), 100)
	for i := 0; i < len(plain); i += 37 {
		end := i + 37
		if end > len(plain) {
			end = len(plain)
		}
		en.Write(plain[i:end])
	}
	sealed := append([]byte(nil), buf.Bytes()...)

	de := c.NewDecoder(bytes.NewReader(sealed), WithDecoderRandomSourceNewer(SourceNewer(rando.KindLFSR)))
	bs, _ := io.ReadAll(de)
	if !bytes.Equal(bs, plain) {
		t.Fatalf("round trip through lfsr keystream failed")
	}

	// the default LCG keystream must not decode it
	de = c.NewDecoder(bytes.NewReader(sealed))
	bs, _ = io.ReadAll(de)
	if bytes.Equal(bs, plain) {
		t.Fatalf("lcg keystream decoded an lfsr stream")
	}
}
