package testutil

import (
	"iter"
	"math/rand/v2"
	"sync"
)

// RNG is a seeded PCG generator that can be rewound. Safe for concurrent
// use.
type RNG struct {
	mu   sync.Mutex
	src  *rand.PCG
	rand *rand.Rand
	seed uint64
}

// NewRNG returns a generator whose sequence depends only on seed.
func NewRNG(seed uint64) *RNG {
	src := rand.NewPCG(seed, seed)
	return &RNG{src: src, rand: rand.New(src), seed: seed}
}

// Reset rewinds the generator to the start of its sequence.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.src.Seed(r.seed, r.seed)
}

// Seed returns the seed the generator was created with.
func (r *RNG) Seed() uint64 { return r.seed }

// Intn returns a value in [0, n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.IntN(n)
}

// Ints returns n pseudo-random values in [0, limit).
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) Ints(n, limit int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.IntN(limit)
	}
	return out
}

// Perm returns a pseudo-random permutation of 0..n-1.
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// Strings returns n pseudo-random lowercase strings of length 1..maxLen.
func (r *RNG) Strings(n, maxLen int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, n)
	for i := range out {
		b := make([]byte, 1+r.rand.IntN(maxLen))
		for j := range b {
			b[j] = byte('a' + r.rand.IntN(26))
		}
		out[i] = string(b)
	}
	return out
}

// Range returns an iterator over start, start+1, ..., end-1.
func Range(start, end int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := start; i < end; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// BoundarySizes returns the element counts around an inline threshold and
// its first doublings: 0, 1, c-1, c, c+1, 2c-1, 2c, 2c+1, 4c+1.
func BoundarySizes(c int) []int {
	return []int{0, 1, c - 1, c, c + 1, 2*c - 1, 2 * c, 2*c + 1, 4*c + 1}
}
