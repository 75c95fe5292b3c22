// Package maxent - Hamiltonian implementations.
//
// Two strategies behind one interface (see doc.go): Generic evaluates
// arbitrary constraint callables; PairingBias is the closed-form
// pairing+bias model with an O(1) single-flip delta. Chain drivers consume
// only the interface and stay strategy-agnostic.
//
// Contracts:
//   - Energy(c) is a pure function of c given fixed multipliers.
//   - DeltaEnergy(c, k) == Energy(c with site k flipped) − Energy(c),
//     exactly, for every implementation; round-trip tested.
//
// Complexity:
//   - Generic: Energy O(m·S), DeltaEnergy O(m·S).
//   - PairingBias: Energy O(S); DeltaEnergy O(S) (recovers the +1 count),
//     DeltaFromCount O(1) when the caller tracks the count itself.
package maxent

import (
	"errors"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/maxent/spins"
)

var (
	// ErrArityMismatch indicates multipliers and constraint functions of
	// different lengths.
	ErrArityMismatch = errors.New("maxent: multipliers and constraints must have the same length")

	// ErrNoConstraints indicates an empty constraint/multiplier set.
	ErrNoConstraints = errors.New("maxent: at least one constraint is required")
)

// Hamiltonian scores configurations. Lower energy is preferred by the
// Metropolis rule; implementations must keep Energy and DeltaEnergy exactly
// consistent with each other.
type Hamiltonian interface {
	// Energy returns E(c) = Σ_k λ_k · f_k(c).
	Energy(c spins.Configuration) float64

	// DeltaEnergy returns E(c') − E(c) where c' is c with site k flipped.
	// c itself is left unmodified on return. An out-of-range k contributes
	// a zero delta (chain drivers draw k ∈ [0,S) by construction).
	DeltaEnergy(c spins.Configuration, k int) float64
}

// Generic is the callable-backed Hamiltonian: m multipliers paired
// one-to-one with m ConstraintFuncs; energy is their dot product.
type Generic struct {
	multipliers []float64
	funcs       []ConstraintFunc
}

// NewGeneric builds a Generic Hamiltonian from parallel multiplier and
// constraint sequences. Inputs are copied; the multipliers are fixed for
// the lifetime of the returned value.
//
// Errors: ErrNoConstraints for empty inputs, ErrArityMismatch when the
// lengths differ. Violations are setup-time failures; sampling never starts
// on a malformed Hamiltonian.
func NewGeneric(multipliers []float64, funcs []ConstraintFunc) (*Generic, error) {
	if len(multipliers) == 0 || len(funcs) == 0 {
		return nil, ErrNoConstraints
	}
	if len(multipliers) != len(funcs) {
		return nil, ErrArityMismatch
	}
	for _, f := range funcs {
		if f == nil {
			return nil, ErrNilConstraint
		}
	}

	g := &Generic{
		multipliers: make([]float64, len(multipliers)),
		funcs:       make([]ConstraintFunc, len(funcs)),
	}
	copy(g.multipliers, multipliers)
	copy(g.funcs, funcs)

	return g, nil
}

// Energy evaluates every constraint on c and dots the moment vector with
// the multipliers. Stateless: a Generic may be shared by forked chains.
//
// Complexity: O(m·S) time, one O(m) moment buffer per call (m is small;
// the closed form is the hot path, not this).
func (g *Generic) Energy(c spins.Configuration) float64 {
	moments := make([]float64, len(g.funcs))
	var k int
	for k = 0; k < len(g.funcs); k++ {
		moments[k] = g.funcs[k].Evaluate(c)
	}

	return floats.Dot(g.multipliers, moments)
}

// DeltaEnergy computes the energy difference for a trial flip of site k by
// full re-evaluation: flip, evaluate, flip back. Exact by construction for
// arbitrary constraints; c is restored before returning.
//
// Complexity: O(m·S).
func (g *Generic) DeltaEnergy(c spins.Configuration, k int) float64 {
	if k < 0 || k >= len(c) {
		return 0
	}

	before := g.Energy(c)
	c[k] = -c[k]
	after := g.Energy(c)
	c[k] = -c[k]

	return after - before
}

// Multipliers returns a copy of the fixed multiplier vector (diagnostics).
func (g *Generic) Multipliers() []float64 {
	out := make([]float64, len(g.multipliers))
	copy(out, g.multipliers)

	return out
}

// PairingBias is the closed-form Hamiltonian
//
//	E(s) = pairing·(S⁺ − S⁻)² + Σ_k bias_k·s_k,
//
// the analytically tractable special case of the maximum-entropy model: a
// global pairing/variance term over the spin excess plus per-site bias
// terms. Its single-flip delta needs only the current +1 count.
type PairingBias struct {
	pairing float64
	bias    []float64
	size    int
}

// NewPairingBias builds the closed-form model for a system of len(bias)
// sites. bias is copied.
//
// Errors: ErrNoConstraints for an empty bias vector.
func NewPairingBias(pairing float64, bias []float64) (*PairingBias, error) {
	if len(bias) == 0 {
		return nil, ErrNoConstraints
	}

	p := &PairingBias{
		pairing: pairing,
		bias:    make([]float64, len(bias)),
		size:    len(bias),
	}
	copy(p.bias, bias)

	return p, nil
}

// Energy evaluates the full closed form on c. The bias sum pairs bias_k
// with site k; configurations shorter/longer than the model size are a
// programmer error upstream, so only the overlapping prefix is summed.
//
// Complexity: O(S).
func (p *PairingBias) Energy(c spins.Configuration) float64 {
	m := float64(c.Magnetization())
	e := p.pairing * m * m

	n := len(c)
	if n > len(p.bias) {
		n = len(p.bias)
	}
	var k int
	for k = 0; k < n; k++ {
		e += p.bias[k] * float64(c[k])
	}

	return e
}

// DeltaEnergy implements the Hamiltonian interface by recovering the +1
// count from c and delegating to DeltaFromCount. O(S) because of the count;
// drivers that track the count themselves should call DeltaFromCount.
func (p *PairingBias) DeltaEnergy(c spins.Configuration, k int) float64 {
	if k < 0 || k >= len(c) || k >= p.size {
		return 0
	}

	return p.DeltaFromCount(c.PlusCount(), -c[k], k)
}

// DeltaFromCount returns the exact energy change for flipping site k to the
// new value spin, given plus = S⁺ of the configuration BEFORE the flip:
//
//	ΔE = 2·bias_k·spin + 4·pairing·spin·(2·plus − S + spin)
//
// Derivation: the excess P = 2·S⁺ − S changes by 2·spin, so the pairing
// term changes by (P+2·spin)² − P² = 4·spin·(P + spin) using spin² = 1; the
// bias term changes by bias_k·(spin − (−spin)) = 2·bias_k·spin.
//
// Contract: equals Energy(after) − Energy(before) exactly for all valid
// plus ∈ [0,S], spin ∈ {+1,−1}, k ∈ [0,S).
//
// Complexity: O(1), zero allocations. This is the hot path for long chains.
func (p *PairingBias) DeltaFromCount(plus int, spin int8, k int) float64 {
	s := float64(spin)
	excess := float64(2*plus - p.size)

	return 2*p.bias[k]*s + 4*p.pairing*s*(excess+s)
}

// Size returns the number of sites the model was built for.
func (p *PairingBias) Size() int { return p.size }
