package rando

import (
	"sync"
	"testing"
)

func TestSyncGenerator(t *testing.T) {
	g, _ := New(KindLFSR, demoSeed)
	sg := NewSyncGenerator(g)

	const workers, draws = 8, 1000
	var mu sync.Mutex
	seen := make(map[uint32]int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]uint32, draws)
			for i := range local {
				local[i] = sg.Uint32()
			}
			mu.Lock()
			for _, v := range local {
				seen[v]++
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	ref, _ := New(KindLFSR, demoSeed)
	for _, v := range Draw(ref, workers*draws, 0) {
		seen[v]--
	}
	for v, n := range seen {
		if n != 0 {
			t.Fatalf("value %d off by %d", v, n)
		}
	}
}
