// SPDX-License-Identifier: MIT
// Package sampler - random source and index selection shared by every pass.
//
// Goals:
//   - Determinism: one *rand.Rand per generation run; the same seed and the
//     same call order give identical draws.
//   - Encapsulation: entropy seeding happens in NewRand only.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. A run owns its generator and
//     threads it through every call explicitly.

package sampler

import (
	"fmt"
	"math/rand"
	"time"
)

// NewRand returns the run generator: seeded from *seed when set, otherwise
// from the wall clock.
func NewRand(seed *int64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewSource(*seed))
	}

	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Choose selects k distinct indices of [0, n) uniformly at random, without
// replacement, by a partial Fisher–Yates pass over 0..n-1. The result is in
// selection order, which callers may rely on to split a selection.
//
// Errors:
//   - ErrNeedRand (rng == nil), ErrBadSize (k < 0 or k > n).
//
// Complexity: O(n) time and space.
func Choose(n, k int, rng *rand.Rand) ([]int, error) {
	if rng == nil {
		return nil, fmt.Errorf("Choose: %w", ErrNeedRand)
	}
	if k < 0 || k > n {
		return nil, fmt.Errorf("Choose(%d of %d): %w", k, n, ErrBadSize)
	}
	if k == 0 {
		return []int{}, nil
	}
	pool := make([]int, n)
	var i, j int
	for i = 0; i < n; i++ {
		pool[i] = i
	}
	for i = 0; i < k; i++ {
		j = i + rng.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:k:k], nil
}

// StandardNormals returns n independent N(0,1) draws.
func StandardNormals(n int, rng *rand.Rand) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.NormFloat64()
	}

	return out
}
