// Package maxent generates synthetic binary-spin samples from maximum-entropy
// (log-linear) models: a Hamiltonian built as a multiplier-weighted sum of
// constraint moments, sampled with a Metropolis-Hastings Markov chain.
//
// 🚀 What is maxent?
//
//	Given a set of Lagrange multipliers and matching constraint functions
//	(pairwise correlation, per-site bias, mean spin, ...), maxent draws
//	{+1,-1}^S configurations distributed as P(s) ∝ exp(−E(s)). Multipliers
//	are inputs — no fitting, no I/O, no CLI live here.
//
// ✨ Why choose maxent?
//
//   - Deterministic – explicit seeded RNG everywhere; same seed, same trajectory
//   - Two energy strategies – generic constraint callables and an O(1)
//     closed-form incremental delta, behind one interface
//   - Adaptive burn-in – acceptance-rate-driven calibration with a hard
//     attempts guard instead of silent hangs
//   - Pure Go library – sentinel errors only, no panics, no logging
//
// The module is organized as three packages:
//
//	.           — this package: constraint functions, registry, Hamiltonians
//	spins/      — the ±1 configuration primitive and its invariant helpers
//	metropolis/ — the sampler: options, calibration controller, sampling driver
//
// ⚙️ Quick start:
//
//	h, _ := maxent.NewGeneric([]float64{1.0}, []maxent.ConstraintFunc{maxent.MeanSpin()})
//	opts := metropolis.DefaultOptions(4)
//	opts.Seed = 42
//	smp, _ := metropolis.New(opts)
//	smp.SetModel(h)
//	traj, stats, _ := smp.Sample(5) // 5×4 gonum mat.Dense of ±1 rows
//
// This package itself holds the energy side of the model: constraint
// functions (the moments the model is pinned to), their Lagrange
// multipliers, and the Hamiltonian implementations the Metropolis engine
// evaluates. Two interchangeable strategies serve one capability:
//
//   - Generic — arbitrary registered ConstraintFunc callables. Energy is the
//     exact multiplier·moment dot product; DeltaEnergy re-evaluates around a
//     trial flip. Use for bespoke moments. O(m·S) per delta.
//
//   - PairingBias — the closed-form model E = λ₀·(S⁺−S⁻)² + Σ_k b_k·s_k.
//     DeltaFromCount computes an exact single-flip ΔE in O(1) from the
//     current +1 count. Use for long chains; contract-tested to match the
//     generic form bit-for-bit in structure and to 1e-12 numerically.
//
// Both satisfy the Hamiltonian interface, so chain drivers never know which
// strategy is bound. Errors are strict sentinels (ErrArityMismatch,
// ErrNoConstraints, ...); no panics, no logging.
//
//	go get github.com/katalvlaran/maxent
package maxent
