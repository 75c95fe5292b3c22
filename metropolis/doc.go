// Package metropolis runs the Metropolis-Hastings chain over binary spin
// configurations: single-spin-flip proposals, the exponential acceptance
// rule, acceptance-rate-driven calibration (burn-in) and production
// sampling with full trajectory recording.
//
// 🚀 How the chain works
//
//	Starting from a uniformly random configuration, each step draws one
//	site index uniformly, computes the energy change ΔE of flipping it
//	(via a maxent.Hamiltonian), and accepts the flip when ΔE < 0 or with
//	probability exp(−ΔE) otherwise. Calibration repeats this until the
//	acceptance rate over the last Window attempts drops to MaxAcceptance,
//	then freezes the configuration as trajectory row 0; the sampling
//	driver records every subsequent configuration — repeated verbatim on
//	rejection — into an N×S gonum mat.Dense.
//
// ✨ Guarantees:
//   - Shape: Sample(n) returns exactly n rows and Size columns, every row
//     filled, every entry strictly +1 or −1.
//   - Determinism: one explicit RNG stream, consumed in a fixed order (one
//     index draw per proposal; one uniform draw only when ΔE ≥ 0). Same
//     seed ⇒ bit-identical trajectory.
//   - Bounded burn-in: MaxCalibrationAttempts converts a non-terminating
//     calibration into ErrCalibrationBudget instead of a silent hang; no
//     partial trajectory is ever returned.
//   - Numeric safety: exp saturation is handled by branch structure — very
//     negative ΔE accepts unconditionally, very positive ΔE underflows the
//     acceptance probability to 0. No error paths in the acceptance rule.
//
// ⚙️ Usage:
//
//	opts := metropolis.DefaultOptions(4) // S=4 spins
//	opts.Window = 10
//	opts.MaxAcceptance = 0.5
//	opts.Seed = 42
//
//	smp, err := metropolis.New(opts)
//	if err != nil { ... }
//	if err = smp.SetHamiltonian([]float64{1.0}, []maxent.ConstraintFunc{maxent.MeanSpin()}); err != nil { ... }
//
//	traj, stats, err := smp.Sample(5) // 5×4 trajectory, row 0 = calibrated state
//
// Concurrency: a Sampler is a single sequential chain and is not
// goroutine-safe. For independent parallel chains use Fork, which derives a
// decorrelated RNG stream per chain.
//
// Performance:
//   - One proposal: O(1) RNG work + one Hamiltonian delta (O(1) closed
//     form, O(m·S) generic).
//   - Sample(n): calibration attempts + (n−1) proposals + O(n·S) row writes.
//
// See example_test.go for runnable scenarios.
package metropolis
