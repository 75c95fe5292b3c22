package maxent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxent"
	"github.com/katalvlaran/maxent/spins"
)

// TestMeanSpin verifies the mean-of-spins moment on hand-checked inputs.
func TestMeanSpin(t *testing.T) {
	f := maxent.MeanSpin()
	assert.Equal(t, "mean_spin", f.Name())

	assert.InDelta(t, 1.0, f.Evaluate(spins.Configuration{+1, +1, +1}), 1e-15)
	assert.InDelta(t, -1.0, f.Evaluate(spins.Configuration{-1, -1}), 1e-15)
	assert.InDelta(t, 0.0, f.Evaluate(spins.Configuration{+1, -1, +1, -1}), 1e-15)
	assert.InDelta(t, 0.5, f.Evaluate(spins.Configuration{+1, +1, +1, -1}), 1e-15)
}

// TestSiteBias verifies the per-site moment and its out-of-range policy.
func TestSiteBias(t *testing.T) {
	c := spins.Configuration{+1, -1, +1}

	assert.InDelta(t, 1.0, maxent.SiteBias(0).Evaluate(c), 1e-15)
	assert.InDelta(t, -1.0, maxent.SiteBias(1).Evaluate(c), 1e-15)
	assert.InDelta(t, 0.0, maxent.SiteBias(7).Evaluate(c), 1e-15, "out-of-range site contributes 0")
	assert.Equal(t, "site_bias_1", maxent.SiteBias(1).Name())
}

// TestPairingSquared verifies (2·Sp − S)² on known counts.
func TestPairingSquared(t *testing.T) {
	f := maxent.PairingSquared()

	// Sp=3, S=3 ⇒ excess 3 ⇒ 9.
	assert.InDelta(t, 9.0, f.Evaluate(spins.Configuration{+1, +1, +1}), 1e-15)
	// Sp=1, S=2 ⇒ excess 0 ⇒ 0.
	assert.InDelta(t, 0.0, f.Evaluate(spins.Configuration{+1, -1}), 1e-15)
	// Sp=1, S=4 ⇒ excess -2 ⇒ 4.
	assert.InDelta(t, 4.0, f.Evaluate(spins.Configuration{+1, -1, -1, -1}), 1e-15)
}

// TestRegistry_RoundTrip exercises Register/Lookup/Names with sentinels.
func TestRegistry_RoundTrip(t *testing.T) {
	f := maxent.NewConstraint("test_round_trip_moment", func(c spins.Configuration) float64 {
		return float64(len(c))
	})

	require.NoError(t, maxent.Register(f))
	assert.ErrorIs(t, maxent.Register(f), maxent.ErrDuplicateConstraint, "second Register must fail")

	got, err := maxent.Lookup("test_round_trip_moment")
	require.NoError(t, err)
	assert.InDelta(t, 3.0, got.Evaluate(spins.Configuration{+1, +1, -1}), 1e-15)

	_, err = maxent.Lookup("never_registered")
	assert.ErrorIs(t, err, maxent.ErrUnknownConstraint)

	assert.Contains(t, maxent.Names(), "test_round_trip_moment")
	assert.IsIncreasing(t, maxent.Names(), "Names must be sorted for deterministic iteration")
}

// TestRegister_Invalid rejects nil and unnamed constraints.
func TestRegister_Invalid(t *testing.T) {
	assert.ErrorIs(t, maxent.Register(nil), maxent.ErrNilConstraint)
	unnamed := maxent.NewConstraint("", func(spins.Configuration) float64 { return 0 })
	assert.ErrorIs(t, maxent.Register(unnamed), maxent.ErrNilConstraint)
}
