// Package metropolis - sampler configuration.
//
// Options follows the package convention: a plain struct with a
// DefaultOptions constructor, defaults declared as package constants
// (single source of truth), and strict eager validation returning sentinel
// errors. Every field changes behavior and is covered by tests.
package metropolis

// WindowPolicy selects how the calibration acceptance-rate window treats
// past outcomes. Two formulations exist in practice and stop burn-in at
// different points; both are supported explicitly rather than leaving the
// choice incidental.
type WindowPolicy int

const (
	// WindowSliding keeps a circular buffer of the last Window outcomes and
	// re-checks the criterion after every proposal. Default.
	WindowSliding WindowPolicy = iota

	// WindowReset evaluates the rate over disjoint batches of Window
	// proposals, clearing the buffer after each check.
	WindowReset
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultWindow is the acceptance-rate memory M.
	DefaultWindow = 100

	// DefaultSampleCount is the number of configurations N per run.
	DefaultSampleCount = 1000

	// DefaultMaxAcceptance is the burn-in stopping threshold: calibration
	// ends once the windowed acceptance rate is ≤ this value.
	DefaultMaxAcceptance = 0.1

	// DefaultMaxCalibrationAttempts caps burn-in proposals so a pathological
	// multiplier/constraint combination surfaces ErrCalibrationBudget
	// instead of looping forever. MaxCalibrationAttempts==0 selects it.
	DefaultMaxCalibrationAttempts = 1_000_000
)

// Options configures one Sampler.
//
// Fields:
//   - Size          — number of spins S per configuration. Required, > 0.
//   - Window        — acceptance-rate memory M, > 0.
//   - SampleCount   — default trajectory length N, > 0 (Sample can override).
//   - MaxAcceptance — burn-in threshold in (0, 1].
//   - Seed          — RNG seed; 0 selects a fixed default stream (see rng.go).
//   - MaxCalibrationAttempts — burn-in proposal cap; 0 ⇒ default, < 0 invalid.
//   - WindowPolicy  — WindowSliding (default) or WindowReset.
//   - RecordHistory — keep the full per-proposal 1/0 log in Stats.History.
//     Off by default: the log grows with the (unbounded) calibration length.
type Options struct {
	Size                   int
	Window                 int
	SampleCount            int
	MaxAcceptance          float64
	Seed                   int64
	MaxCalibrationAttempts int
	WindowPolicy           WindowPolicy
	RecordHistory          bool
}

// DefaultOptions returns the canonical configuration for a system of size
// spins. Validation still happens in New: a non-positive size is reported
// there, not here.
func DefaultOptions(size int) Options {
	return Options{
		Size:                   size,
		Window:                 DefaultWindow,
		SampleCount:            DefaultSampleCount,
		MaxAcceptance:          DefaultMaxAcceptance,
		MaxCalibrationAttempts: DefaultMaxCalibrationAttempts,
		WindowPolicy:           WindowSliding,
	}
}

// validate checks every field eagerly. First violation wins; no partial
// sampling is ever attempted on invalid options.
func (o Options) validate() error {
	if o.Size <= 0 {
		return ErrBadSize
	}
	if o.Window <= 0 {
		return ErrBadWindow
	}
	if o.SampleCount <= 0 {
		return ErrBadSampleCount
	}
	if o.MaxAcceptance <= 0 || o.MaxAcceptance > 1 {
		return ErrBadAcceptance
	}
	if o.MaxCalibrationAttempts < 0 {
		return ErrBadAttemptsCap
	}
	if o.WindowPolicy != WindowSliding && o.WindowPolicy != WindowReset {
		return ErrBadWindowPolicy
	}

	return nil
}

// attemptsCap resolves the effective calibration budget (0 ⇒ default).
func (o Options) attemptsCap() int {
	if o.MaxCalibrationAttempts == 0 {
		return DefaultMaxCalibrationAttempts
	}

	return o.MaxCalibrationAttempts
}
