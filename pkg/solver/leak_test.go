//go:build test

package solver

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"testing"
)

var testPatterns = []string{
	"c..", "ca.", ".a.", "...",
	"h....", "h.ll.", "...lo",
	"p......", "pr.gr.m",
	"i...........l", "in.e.n.t.on.l",
}

// syntheticWords returns n pseudo random lowercase words of length 3 to 14.
func syntheticWords(n int) []string {
	rng := rand.New(rand.NewSource(42))
	words := make([]string, n)
	buf := make([]byte, 14)
	for i := range words {
		l := 3 + rng.Intn(12)
		for j := 0; j < l; j++ {
			buf[j] = byte('a' + rng.Intn(26))
		}
		words[i] = string(buf[:l])
	}
	return words
}

func TestMemoryLeakBasic(t *testing.T) {
	words := syntheticWords(50000)
	iterations := []int{10, 50, 100}

	for _, iterCount := range iterations {
		t.Run(fmt.Sprintf("iterations_%d", iterCount), func(t *testing.T) {
			runBasicMemoryTest(t, words, iterCount)
		})
	}
}

func TestMemoryLeakConcurrent(t *testing.T) {
	words := syntheticWords(50000)
	configs := []struct {
		workers             int
		iterationsPerWorker int
	}{
		{workers: 1, iterationsPerWorker: 40},
		{workers: 4, iterationsPerWorker: 10},
		{workers: 8, iterationsPerWorker: 5},
	}

	for _, config := range configs {
		t.Run(fmt.Sprintf("workers_%d_iter_%d", config.workers, config.iterationsPerWorker), func(t *testing.T) {
			before := runtime.NumGoroutine()

			var wg sync.WaitGroup
			for w := 0; w < config.workers; w++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for i := 0; i < config.iterationsPerWorker; i++ {
						for _, p := range testPatterns {
							_ = Solve(words, ParsePattern(p, DefaultWildcard), NewLetterSet("xyz"), DefaultOptions())
						}
					}
				}()
			}
			wg.Wait()

			if delta := runtime.NumGoroutine() - before; delta > 2 {
				t.Errorf("goroutine leak detected: %d goroutines leaked", delta)
			}
		})
	}
}

func runBasicMemoryTest(t *testing.T, words []string, iterations int) {
	var baseline runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&baseline)

	for i := 0; i < iterations; i++ {
		for _, p := range testPatterns {
			_ = Solve(words, ParsePattern(p, DefaultWildcard), NewLetterSet("qz"), DefaultOptions())
		}
	}

	var final runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&final)

	memDelta := int64(final.HeapAlloc) - int64(baseline.HeapAlloc)
	totalOps := iterations * len(testPatterns)
	memPerOp := float64(memDelta) / float64(totalOps)

	t.Logf("iterations=%d ops=%d mem_delta=%d bytes mem_per_op=%.2f", iterations, totalOps, memDelta, memPerOp)

	if memPerOp > 1000 {
		t.Errorf("retained memory per operation too high: %.2f bytes", memPerOp)
	}
}

func BenchmarkFilter(b *testing.B) {
	words := syntheticWords(100000)
	p := ParsePattern("c.a..", DefaultWildcard)
	excluded := NewLetterSet("eiou")
	opts := DefaultOptions()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Filter(words, p, excluded, opts)
	}
}

func BenchmarkRankLetters(b *testing.B) {
	words := syntheticWords(100000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = RankLetters(words, NewLetterSet("e"), DefaultTopLetters)
	}
}
