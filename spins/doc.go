// Package spins provides the binary spin primitive shared by all maxent
// samplers: a fixed-length vector over {+1,-1} plus the small set of
// helpers the Metropolis engine needs (uniform draws, single-spin flips,
// +1 counts, float export).
//
// 🚀 What is a configuration?
//
//	A Configuration is the state of a spin system with S sites. Each site
//	holds exactly +1 or -1 — never 0, never any other value. The Metropolis
//	chain mutates one configuration in place, one accepted flip at a time.
//
// ✨ Design rules:
//   - Strictly ±1 domain: Validate reports any stray value as ErrInvalidSpin.
//   - Deterministic randomness: Random accepts an explicit *rand.Rand;
//     nil falls back to a fixed default stream (seed policy of the
//     metropolis package), never to process-global state.
//   - No panics, no logging: sentinel errors only.
//   - Allocation-conscious: Flip and PlusCount are O(1)/O(S) with zero
//     allocations; Floats reuses a caller buffer when capacity allows.
//
// Use this package directly only when building custom constraint functions
// or Hamiltonians; the metropolis package drives it for you otherwise.
package spins
