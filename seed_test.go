package rando

import (
	"testing"

	"github.com/google/uuid"
	"github.com/tutils/rando/prng/lfsr"
)

func TestSpreadSeed(t *testing.T) {
	v := SpreadSeed(7, 8, 9)
	if len(v) != 35 {
		t.Fatalf("expected 35 words, got %d", len(v))
	}
	if v[0] != 7 || v[32] != 8 || v[33] != 9 || v[34] != 0 {
		t.Fatalf("unexpected layout %v", v)
	}

	g, err := lfsr.New(v)
	if err != nil {
		t.Fatal(err)
	}
	if g.Degree() != 31 {
		t.Fatalf("expected degree 31, got %d", g.Degree())
	}

	if SpreadSeed() != nil {
		t.Fatalf("expected nil for no words")
	}

	long := make([]uint32, 40)
	if v := SpreadSeed(long...); len(v) != 63 {
		t.Fatalf("expected 63 words, got %d", len(v))
	}
}

// Every word of a spread seed must change the stream.
func TestSpreadSeed_EveryWordCounts(t *testing.T) {
	base := []uint32{11, 22, 33, 44}
	ref, _ := New(KindLFSR, SpreadSeed(base...))
	want := Draw(ref, 50, 0)

	for i := range base {
		words := append([]uint32(nil), base...)
		words[i]++
		g, _ := New(KindLFSR, SpreadSeed(words...))
		got := Draw(g, 50, 0)

		same := true
		for j := range got {
			if got[j] != want[j] {
				same = false
				break
			}
		}
		if same {
			t.Errorf("changing word %d left the stream unchanged", i)
		}
	}
}

func TestUUIDSeed(t *testing.T) {
	u := uuid.MustParse("00000001-0000-0002-0000-0003deadbeef")
	v := UUIDSeed(u)
	if v[0] != 1 || v[32] != 2 || v[33] != 3 || v[34] != 0xdeadbeef {
		t.Fatalf("unexpected words %v", v)
	}

	g, err := New(KindLCG, v)
	if err != nil {
		t.Fatal(err)
	}
	if g.Uint32() != 1103527590 {
		t.Fatalf("lcg should be seeded by the first word")
	}
}
