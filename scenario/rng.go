// Package scenario - RNG utilities for deterministic generation.
//
// Goals:
//   - Determinism: same seed ⇒ identical scenarios across platforms.
//   - Encapsulation: one RNG factory; no time-based sources hidden anywhere.
//   - Independence: DeriveSeed yields decorrelated per-job streams so batch
//     runs over many (map, agent-count) pairs never produce correlated
//     placements.
//
// Concurrency: math/rand.Rand is NOT goroutine-safe; derive an independent
// stream per worker instead of sharing one instance.
package scenario

import "math/rand"

// defaultRNGSeed is the fixed seed substituted when callers pass seed==0.
// Arbitrary but stable, to keep the seed==0 default reproducible.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a base seed and a stream identifier into a new 64-bit
// seed using a SplitMix64-style finalizer, so consecutive stream ids yield
// well-separated, uncorrelated streams. Batch drivers use one stream id
// per (map, agent-count) job.
//
// The constants are the canonical SplitMix64 multipliers; they give strong
// bit diffusion, so nearby inputs map to distant outputs.
//
// Complexity: O(1).
func DeriveSeed(base int64, stream uint64) int64 {
	x := uint64(base) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
