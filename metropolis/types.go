// Package metropolis - sentinel errors and run diagnostics.
//
// All failures surfaced by this package are errors.Is-comparable sentinels
// declared here; no fmt.Errorf wrapping on hot paths, no panics.
package metropolis

import (
	"errors"

	"gonum.org/v1/gonum/stat"
)

var (
	// ErrBadSize indicates a configured system size S ≤ 0.
	ErrBadSize = errors.New("metropolis: size must be > 0")

	// ErrBadWindow indicates an acceptance-rate window M ≤ 0.
	ErrBadWindow = errors.New("metropolis: window must be > 0")

	// ErrBadSampleCount indicates a sample count N ≤ 0.
	ErrBadSampleCount = errors.New("metropolis: sample count must be > 0")

	// ErrBadAcceptance indicates MaxAcceptance outside (0, 1].
	ErrBadAcceptance = errors.New("metropolis: max acceptance must be in (0,1]")

	// ErrBadAttemptsCap indicates a negative calibration attempts cap.
	ErrBadAttemptsCap = errors.New("metropolis: attempts cap must be >= 0")

	// ErrBadWindowPolicy indicates an unknown WindowPolicy value.
	ErrBadWindowPolicy = errors.New("metropolis: unknown window policy")

	// ErrNoHamiltonian indicates Sample was called before binding a model.
	ErrNoHamiltonian = errors.New("metropolis: no Hamiltonian bound")

	// ErrCalibrationBudget indicates calibration exceeded its attempts cap
	// without reaching the target acceptance rate. A parameter problem, not
	// a sampler bug: loosen MaxAcceptance, shrink Window, or raise the cap.
	ErrCalibrationBudget = errors.New("metropolis: calibration attempts budget exceeded")
)

// Stats carries the diagnostic counters of one Sample run. It is advisory
// state only: trajectory correctness never depends on it.
type Stats struct {
	// CalibrationAttempts is the total number of burn-in proposals made
	// before the acceptance criterion was met.
	CalibrationAttempts int

	// CalibrationAccepted counts accepted burn-in proposals.
	CalibrationAccepted int

	// SampleAccepted / SampleRejected count production-phase outcomes
	// (N−1 proposals in total).
	SampleAccepted int
	SampleRejected int

	// History is the full 1/0 accept/reject log across calibration and
	// production, in proposal order. Populated only when
	// Options.RecordHistory is set; nil otherwise (bounded-memory default).
	History []float64
}

// Attempts returns the total number of proposals made during the run.
func (st Stats) Attempts() int {
	return st.CalibrationAttempts + st.SampleAccepted + st.SampleRejected
}

// AcceptanceRate returns the overall fraction of accepted proposals.
// Uses the recorded History when available, the phase counters otherwise.
func (st Stats) AcceptanceRate() float64 {
	if len(st.History) > 0 {
		return stat.Mean(st.History, nil)
	}

	total := st.Attempts()
	if total == 0 {
		return 0
	}

	return float64(st.CalibrationAccepted+st.SampleAccepted) / float64(total)
}
