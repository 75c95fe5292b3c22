package metropolis_test

import (
	"fmt"

	"github.com/katalvlaran/maxent"
	"github.com/katalvlaran/maxent/metropolis"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleSampler_Sample
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A 4-spin system constrained on its mean spin with multiplier 1.0 —
//	the smallest non-trivial maximum-entropy model. Calibrate until the
//	windowed acceptance rate over the last 10 attempts drops to 0.5,
//	then record a 5-configuration trajectory.
//
// Options:
//   - Window = 10        (acceptance-rate memory M)
//   - MaxAcceptance = 0.5
//   - Seed = 42          (deterministic trajectory)
//
// Use case:
//
//	Producing synthetic ±1 samples matching a prescribed mean-spin moment.
//
// Complexity: calibration attempts + N−1 proposals, O(N·S) recording.
func ExampleSampler_Sample() {
	opts := metropolis.DefaultOptions(4)
	opts.Window = 10
	opts.MaxAcceptance = 0.5
	opts.Seed = 42

	smp, err := metropolis.New(opts)
	if err != nil {
		fmt.Println("configure:", err)

		return
	}
	if err = smp.SetHamiltonian(
		[]float64{1.0},
		[]maxent.ConstraintFunc{maxent.MeanSpin()},
	); err != nil {
		fmt.Println("hamiltonian:", err)

		return
	}

	traj, _, err := smp.Sample(5)
	if err != nil {
		fmt.Println("sample:", err)

		return
	}

	rows, cols := traj.Dims()
	domainOK := true
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := traj.At(i, j); v != 1 && v != -1 {
				domainOK = false
			}
		}
	}
	fmt.Printf("rows=%d cols=%d all±1=%v\n", rows, cols, domainOK)
	// Output:
	// rows=5 cols=4 all±1=true
}

// ExampleSampler_SetHamiltonian_mismatch shows the eager arity check:
// two multipliers against three constraint functions fail before any
// sampling is attempted.
func ExampleSampler_SetHamiltonian_mismatch() {
	smp, _ := metropolis.New(metropolis.DefaultOptions(4))

	err := smp.SetHamiltonian(
		[]float64{0.5, -0.5},
		[]maxent.ConstraintFunc{maxent.MeanSpin(), maxent.SiteBias(0), maxent.SiteBias(1)},
	)
	fmt.Println(err)
	// Output:
	// maxent: multipliers and constraints must have the same length
}

// ExampleSampler_SetModel binds the closed-form pairing+bias Hamiltonian —
// the O(1)-delta strategy — through the same driver.
func ExampleSampler_SetModel() {
	opts := metropolis.DefaultOptions(6)
	opts.Window = 10
	opts.MaxAcceptance = 0.6
	opts.Seed = 7

	smp, _ := metropolis.New(opts)
	model, err := maxent.NewPairingBias(0.2, []float64{0.5, -0.5, 0.3, -0.3, 0.1, -0.1})
	if err != nil {
		fmt.Println("model:", err)

		return
	}
	smp.SetModel(model)

	traj, stats, err := smp.Sample(8)
	if err != nil {
		fmt.Println("sample:", err)

		return
	}
	rows, cols := traj.Dims()
	fmt.Printf("rows=%d cols=%d proposals=%d\n", rows, cols, stats.SampleAccepted+stats.SampleRejected)
	// Output:
	// rows=8 cols=6 proposals=7
}
