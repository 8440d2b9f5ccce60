// Package testutil provides testing utilities for smolvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic RNG and generators for element sequences
// sized around the inline threshold.
//
// # Random Sequences
//
//	rng := testutil.NewRNG(seed)
//	values := rng.Ints(40, 1000)     // 40 values in [0, 1000)
//	perm := rng.Perm(20)             // distinct values 0..19, shuffled
//
// # Sizes
//
//	for _, n := range testutil.BoundarySizes(smolvec.InlineCapacity) {
//	    // 0, 1, cap-1, cap, cap+1, 2*cap, 2*cap+1, ...
//	}
package testutil
