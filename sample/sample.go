// Package sample draws uniform random vertex subsets from a frozen core.Graph.
//
// Goals:
//   - Uniformity: every k-subset of the vertex set is equally likely, and the
//     returned order is an independent uniform permutation of that subset.
//   - Injection: the random source is a parameter (WithRand / WithSeed), so
//     tests are reproducible and no package-level generator is shared.
//   - Freshness: without an injected source every call seeds its own generator,
//     so two calls never silently repeat a fixed default seed.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share one *rand.Rand across
//     goroutines; draw the sample before fanning work out.
package sample

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"

	"github.com/katalvlaran/hopreach/core"
)

// floydRatio is the V/k ratio above which Floyd's set-sampling is preferred
// over a partial Fisher–Yates shuffle of all V indices.
const floydRatio = 4

// Option customizes one Sample call.
type Option func(*config)

type config struct {
	rng *rand.Rand
}

// WithRand injects an explicit generator. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed creates a deterministic generator from seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// Sample returns min(k, g.VertexCount()) distinct vertex IDs chosen uniformly
// at random without replacement, in uniformly random order. k <= 0, a nil
// graph, or an empty graph yield an empty slice. Candidates are taken from the
// sorted vertex list, so a seeded generator gives the same sample for the
// same graph.
//
// Complexity: O(k) expected when k ≪ V, O(V) otherwise.
func Sample(g *core.Graph, k int, opts ...Option) []string {
	if g == nil || k <= 0 || g.VertexCount() == 0 {
		return []string{}
	}
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = fresh()
	}

	picked := Indices(g.VertexCount(), k, c.rng)
	out := make([]string, len(picked))
	for i, idx := range picked {
		out[i] = g.ID(idx)
	}

	return out
}

// Indices returns min(k, n) distinct integers in [0, n) chosen uniformly, in
// random order. It is the index-level form of Sample, also used to shuffle
// batch order. A nil rng draws a fresh generator.
func Indices(n, k int, rng *rand.Rand) []int {
	if n <= 0 || k <= 0 {
		return []int{}
	}
	if rng == nil {
		rng = fresh()
	}
	k = min(k, n)
	var picked []int
	if n/k >= floydRatio {
		picked = floyd(n, k, rng)
	} else {
		picked = partialShuffle(n, k, rng)
	}
	// independent permutation of the selection
	shuffleInts(picked, rng)

	return picked
}

// floyd is Robert Floyd's algorithm: k uniform distinct values from [0, n)
// using k draws and an O(k) set.
func floyd(n, k int, rng *rand.Rand) []int {
	chosen := make(map[int]struct{}, k)
	out := make([]int, 0, k)
	for j := n - k; j < n; j++ {
		t := rng.Intn(j + 1)
		if _, dup := chosen[t]; dup {
			t = j
		}
		chosen[t] = struct{}{}
		out = append(out, t)
	}

	return out
}

// partialShuffle runs the first k steps of Fisher–Yates over 0..n-1.
func partialShuffle(n, k int, rng *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		p[i], p[j] = p[j], p[i]
	}

	return p[:k:k]
}

// shuffleInts performs an in-place Fisher–Yates shuffle of a.
func shuffleInts(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// fresh returns a generator seeded from the OS entropy pool, falling back to
// the wall clock if the pool is unavailable.
func fresh() *rand.Rand {
	var buf [8]byte
	seed := time.Now().UnixNano()
	if _, err := cryptorand.Read(buf[:]); err == nil {
		seed = int64(binary.LittleEndian.Uint64(buf[:]))
	}

	return rand.New(rand.NewSource(seed))
}
