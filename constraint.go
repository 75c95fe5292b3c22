// Package maxent - constraint functions and their explicit registry.
//
// A ConstraintFunc maps a full configuration to one scalar moment. The
// built-ins cover the moments of the reference pairing/bias model (mean
// spin, per-site bias, squared spin excess); bespoke moments implement the
// same interface and may be registered by name for lookup-driven setups.
//
// Design:
//   - Capability interface, not untyped function values: every variant is
//     a named, comparable implementation.
//   - Registration is explicit and guarded: no init-time magic, the
//     built-ins are constructed on demand and registered only by the
//     caller. RW-mutex protected, deterministic Names() ordering.
package maxent

import (
	"errors"
	"sort"
	"strconv"
	"sync"

	"github.com/katalvlaran/maxent/spins"
)

var (
	// ErrDuplicateConstraint indicates a Register call with an already-taken name.
	ErrDuplicateConstraint = errors.New("maxent: constraint name already registered")

	// ErrUnknownConstraint indicates a Lookup for a name never registered.
	ErrUnknownConstraint = errors.New("maxent: unknown constraint name")

	// ErrNilConstraint indicates a nil ConstraintFunc or empty name at registration.
	ErrNilConstraint = errors.New("maxent: constraint must be non-nil with a non-empty name")
)

// ConstraintFunc is the "configuration → scalar moment" capability paired
// one-to-one with a Lagrange multiplier in the energy expression.
type ConstraintFunc interface {
	// Name identifies the constraint in the registry and in diagnostics.
	Name() string
	// Evaluate computes the moment of c. Must be pure: no mutation of c,
	// no retained references.
	Evaluate(c spins.Configuration) float64
}

// funcConstraint adapts a pure function plus a name into a ConstraintFunc.
type funcConstraint struct {
	name string
	fn   func(spins.Configuration) float64
}

func (f funcConstraint) Name() string { return f.name }

func (f funcConstraint) Evaluate(c spins.Configuration) float64 { return f.fn(c) }

// NewConstraint wraps an arbitrary pure function as a named ConstraintFunc.
// The wrapper does not register it; call Register explicitly if lookup by
// name is wanted.
func NewConstraint(name string, fn func(spins.Configuration) float64) ConstraintFunc {
	return funcConstraint{name: name, fn: fn}
}

// MeanSpin returns the constraint f(s) = (Σ_i s_i) / S, the mean spin value.
//
// Complexity: O(S) per evaluation.
func MeanSpin() ConstraintFunc {
	return funcConstraint{
		name: "mean_spin",
		fn: func(c spins.Configuration) float64 {
			if len(c) == 0 {
				return 0
			}
			var sum int
			for _, s := range c {
				sum += int(s)
			}

			return float64(sum) / float64(len(c))
		},
	}
}

// SiteBias returns the constraint f(s) = s_i, the raw value of site i.
// Out-of-range sites evaluate to 0 (the pairing with a multiplier then
// contributes nothing; shape errors belong to Hamiltonian construction).
//
// Complexity: O(1) per evaluation.
func SiteBias(i int) ConstraintFunc {
	return funcConstraint{
		name: "site_bias_" + strconv.Itoa(i),
		fn: func(c spins.Configuration) float64 {
			if i < 0 || i >= len(c) {
				return 0
			}

			return float64(c[i])
		},
	}
}

// PairingSquared returns the constraint f(s) = (S⁺ − S⁻)² = (2·Sp − S)²,
// the squared spin excess driving the global pairing/variance term.
//
// Complexity: O(S) per evaluation.
func PairingSquared() ConstraintFunc {
	return funcConstraint{
		name: "pairing_squared",
		fn: func(c spins.Configuration) float64 {
			m := float64(c.Magnetization())

			return m * m
		},
	}
}

// registry holds the named constraint functions. Guarded for concurrent
// registration from parallel test setups; lookups are read-locked.
var registry = struct {
	mu sync.RWMutex
	m  map[string]ConstraintFunc
}{
	m: make(map[string]ConstraintFunc),
}

// Register adds f to the registry under f.Name().
//
// Errors: ErrNilConstraint for nil f or empty name,
// ErrDuplicateConstraint when the name is already taken.
func Register(f ConstraintFunc) error {
	if f == nil || f.Name() == "" {
		return ErrNilConstraint
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	if _, ok := registry.m[f.Name()]; ok {
		return ErrDuplicateConstraint
	}
	registry.m[f.Name()] = f

	return nil
}

// Lookup returns the registered constraint for name.
//
// Errors: ErrUnknownConstraint when name was never registered.
func Lookup(name string) (ConstraintFunc, error) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	f, ok := registry.m[name]
	if !ok {
		return nil, ErrUnknownConstraint
	}

	return f, nil
}

// Names returns all registered constraint names in sorted order, so that
// registry-driven setups iterate deterministically.
func Names() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	out := make([]string, 0, len(registry.m))
	for name := range registry.m {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
