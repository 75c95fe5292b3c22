// Package spins - the ±1 configuration type and its invariant helpers.
//
// This file defines Configuration and every operation the samplers rely on.
// All randomness is injected; all failures are sentinel errors.
package spins

import (
	"errors"
	"math/rand"
)

var (
	// ErrNonPositiveSize indicates a requested configuration size ≤ 0.
	ErrNonPositiveSize = errors.New("spins: size must be > 0")

	// ErrIndexOutOfRange indicates a site index outside [0, S).
	ErrIndexOutOfRange = errors.New("spins: site index out of range")

	// ErrInvalidSpin indicates a configuration entry outside {+1,-1}.
	ErrInvalidSpin = errors.New("spins: entry must be +1 or -1")
)

// defaultSeed is the fixed seed used when Random receives rng==nil.
// Arbitrary but stable, so nil-rng call sites stay reproducible.
const defaultSeed int64 = 1

// Configuration is an ordered sequence of S spins, each strictly +1 or -1.
// It is mutated in place by accepted flips and owned by exactly one chain
// driver at a time; clone before sharing across chains.
type Configuration []int8

// Random draws a configuration uniformly from {+1,-1}^s.
// A nil rng falls back to a fixed deterministic stream; callers that need
// seed control must pass their own *rand.Rand.
//
// Errors: ErrNonPositiveSize for s ≤ 0.
//
// Complexity: O(s) time, O(s) space (the returned configuration).
func Random(s int, rng *rand.Rand) (Configuration, error) {
	if s <= 0 {
		return nil, ErrNonPositiveSize
	}

	r := rng
	if r == nil {
		r = rand.New(rand.NewSource(defaultSeed))
	}

	c := make(Configuration, s)
	var i int
	for i = 0; i < s; i++ {
		// Int63()&1 consumes exactly one draw per site; uniform over {0,1}.
		if r.Int63()&1 == 0 {
			c[i] = -1
		} else {
			c[i] = +1
		}
	}

	return c, nil
}

// Clone returns an independent copy of c. Nil in, nil out.
//
// Complexity: O(S).
func (c Configuration) Clone() Configuration {
	if c == nil {
		return nil
	}
	out := make(Configuration, len(c))
	copy(out, c)

	return out
}

// Flip negates the spin at site k in place.
//
// Errors: ErrIndexOutOfRange when k ∉ [0, S).
//
// Complexity: O(1), zero allocations.
func (c Configuration) Flip(k int) error {
	if k < 0 || k >= len(c) {
		return ErrIndexOutOfRange
	}
	c[k] = -c[k]

	return nil
}

// PlusCount returns Sp, the number of +1 spins. This is the aggregate the
// closed-form Hamiltonian consumes.
//
// Complexity: O(S), zero allocations.
func (c Configuration) PlusCount() int {
	var n int
	for _, s := range c {
		if s > 0 {
			n++
		}
	}

	return n
}

// Magnetization returns Sp − Sm = 2·Sp − S, the signed spin excess.
//
// Complexity: O(S).
func (c Configuration) Magnetization() int {
	return 2*c.PlusCount() - len(c)
}

// Validate checks the ±1 domain invariant over every site.
//
// Errors: ErrNonPositiveSize for an empty configuration,
// ErrInvalidSpin on the first out-of-domain entry.
//
// Complexity: O(S).
func (c Configuration) Validate() error {
	if len(c) == 0 {
		return ErrNonPositiveSize
	}
	for _, s := range c {
		if s != +1 && s != -1 {
			return ErrInvalidSpin
		}
	}

	return nil
}

// Floats writes c into dst as float64 values and returns the slice used.
// When cap(dst) ≥ len(c) the caller's buffer is reused (hot-path contract
// for trajectory row writes); otherwise a fresh slice is allocated.
//
// Complexity: O(S); zero allocations given sufficient capacity.
func (c Configuration) Floats(dst []float64) []float64 {
	if cap(dst) < len(c) {
		dst = make([]float64, len(c))
	}
	dst = dst[:len(c)]
	var i int
	for i = 0; i < len(c); i++ {
		dst[i] = float64(c[i])
	}

	return dst
}
