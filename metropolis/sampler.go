// Package metropolis - the sampler core: proposal, acceptance, calibration
// controller and sampling driver.
//
// Control flow per run (Sample):
//
//	DRAW_INITIAL → [PROPOSE → ACCEPT/REJECT → CHECK_RATE]* → freeze row 0
//	            → [PROPOSE → ACCEPT/REJECT → RECORD row i]  for i = 1..N−1
//
// Contracts:
//   - The configuration is owned by the running driver; accepted flips
//     mutate it in place, rejected proposals leave it untouched.
//   - RNG consumption order is fixed: exactly one index draw per proposal,
//     plus one uniform draw iff ΔE ≥ 0. Never reordered, so a seed pins the
//     whole trajectory.
//   - Either a complete N×S trajectory is returned or an error with no
//     trajectory at all; rows are never left as zero placeholders.
//
// Complexity: see doc.go. The only allocations per run are the trajectory,
// the initial configuration and the ring buffer.
package metropolis

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/maxent"
	"github.com/katalvlaran/maxent/spins"
)

// Sampler is a single sequential Metropolis-Hastings chain. Not
// goroutine-safe; use Fork for independent parallel chains.
type Sampler struct {
	opts Options
	ham  maxent.Hamiltonian
	rng  *rand.Rand

	rowbuf []float64 // scratch for trajectory row writes
}

// New constructs a Sampler, validating every option eagerly.
//
// Errors: ErrBadSize, ErrBadWindow, ErrBadSampleCount, ErrBadAcceptance,
// ErrBadAttemptsCap, ErrBadWindowPolicy. A failed New never half-configures.
func New(opts Options) (*Sampler, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &Sampler{
		opts:   opts,
		rng:    rngFromSeed(opts.Seed),
		rowbuf: make([]float64, opts.Size),
	}, nil
}

// SetHamiltonian binds a Generic Hamiltonian built from parallel multiplier
// and constraint sequences — the canonical setup path.
//
// Errors: maxent.ErrArityMismatch when the sequences differ in length,
// maxent.ErrNoConstraints / maxent.ErrNilConstraint on malformed input.
// Failures are setup-time: no sampling starts on a mismatched model.
func (s *Sampler) SetHamiltonian(multipliers []float64, funcs []maxent.ConstraintFunc) error {
	h, err := maxent.NewGeneric(multipliers, funcs)
	if err != nil {
		return err
	}
	s.ham = h

	return nil
}

// SetModel binds a prebuilt Hamiltonian (e.g. the closed-form
// maxent.PairingBias). The driver stays strategy-agnostic either way.
func (s *Sampler) SetModel(h maxent.Hamiltonian) {
	s.ham = h
}

// Fork returns a new Sampler with the same options and model but an
// independent RNG stream derived from (Seed, stream). Intended for
// ensembles of parallel chains: forks share no mutable state.
func (s *Sampler) Fork(stream uint64) *Sampler {
	return &Sampler{
		opts:   s.opts,
		ham:    s.ham,
		rng:    deriveRNG(s.opts.Seed, stream),
		rowbuf: make([]float64, s.opts.Size),
	}
}

// Sample runs calibration followed by production sampling and returns the
// trajectory: an n×Size dense matrix whose row i is the configuration
// recorded at step i, every entry strictly ±1. Row 0 is the configuration
// frozen at the end of calibration; a rejected step i repeats row i−1
// exactly. n ≤ 0 selects Options.SampleCount.
//
// Errors: ErrNoHamiltonian before any model is bound; ErrCalibrationBudget
// when burn-in exceeds its attempts cap. On error no trajectory is
// returned, only Stats for the attempts made.
//
// Determinism: two runs from freshly constructed samplers with equal seeds,
// options and models produce bit-identical trajectories. Repeated Sample
// calls on one Sampler continue its RNG stream (independent runs by
// construction, not identical ones).
func (s *Sampler) Sample(n int) (*mat.Dense, Stats, error) {
	var st Stats
	if s.ham == nil {
		return nil, st, ErrNoHamiltonian
	}
	if n <= 0 {
		n = s.opts.SampleCount
	}

	traj := mat.NewDense(n, s.opts.Size, nil)

	// Phase 1 — calibration: burn in until local moves are mostly rejected.
	cfg, err := s.calibrate(&st)
	if err != nil {
		return nil, st, err
	}
	traj.SetRow(0, cfg.Floats(s.rowbuf))

	// Phase 2 — production: N−1 further proposals, recording every outcome.
	var i int
	for i = 1; i < n; i++ {
		if s.step(cfg) {
			st.SampleAccepted++
			s.log(&st, true)
		} else {
			st.SampleRejected++
			s.log(&st, false)
		}
		// Accepted ⇒ cfg advanced; rejected ⇒ cfg untouched and the row
		// duplicates row i−1. Either way row i is written.
		traj.SetRow(i, cfg.Floats(s.rowbuf))
	}

	return traj, st, nil
}

// calibrate draws the initial configuration and loops proposals until at
// least Window outcomes exist and their windowed mean is ≤ MaxAcceptance,
// or the attempts cap trips.
//
// The stopping rule is a burn-in heuristic: early on, moves into the bulk
// of the target distribution are mostly downhill and acceptance is high;
// once local moves are mostly rejected the chain has settled near the
// distribution's mass and the state is usable as a starting point.
func (s *Sampler) calibrate(st *Stats) (spins.Configuration, error) {
	cfg, err := spins.Random(s.opts.Size, s.rng)
	if err != nil {
		return nil, err
	}

	var (
		win    = newAcceptanceWindow(s.opts.Window)
		budget = s.opts.attemptsCap()
	)

	for {
		if st.CalibrationAttempts >= budget {
			return nil, ErrCalibrationBudget
		}

		accepted := s.step(cfg)
		st.CalibrationAttempts++
		if accepted {
			st.CalibrationAccepted++
		}
		win.record(accepted)
		s.log(st, accepted)

		switch s.opts.WindowPolicy {
		case WindowSliding:
			if win.full() && win.rate() <= s.opts.MaxAcceptance {
				return cfg, nil
			}
		case WindowReset:
			if st.CalibrationAttempts%s.opts.Window == 0 {
				if win.rate() <= s.opts.MaxAcceptance {
					return cfg, nil
				}
				win.reset()
			}
		}
	}
}

// step performs one proposal/acceptance cycle on cfg in place and reports
// whether the flip was accepted.
//
// Rule: draw k uniform over [0,S); ΔE < 0 accepts unconditionally;
// otherwise accept iff a uniform P ∈ [0,1) satisfies P < exp(−ΔE).
//
// Numeric edges are absorbed by the branch structure: a very negative ΔE
// never reaches exp (unconditional accept), a very positive ΔE underflows
// exp(−ΔE) to 0 and P < 0 is impossible (certain reject). ΔE == 0 gives
// exp(−ΔE) == 1 and P < 1 always holds (certain accept).
//
// Complexity: O(1) + one Hamiltonian delta; zero allocations.
func (s *Sampler) step(cfg spins.Configuration) bool {
	k := s.rng.Intn(len(cfg))
	dE := s.ham.DeltaEnergy(cfg, k)

	accepted := dE < 0
	if !accepted {
		accepted = s.rng.Float64() < math.Exp(-dE)
	}
	if accepted {
		cfg[k] = -cfg[k]
	}

	return accepted
}

// log appends one outcome to the diagnostic history when enabled.
func (s *Sampler) log(st *Stats, accepted bool) {
	if !s.opts.RecordHistory {
		return
	}
	if accepted {
		st.History = append(st.History, 1)
	} else {
		st.History = append(st.History, 0)
	}
}
