package metropolis_test

import (
	"testing"

	"github.com/katalvlaran/maxent"
	"github.com/katalvlaran/maxent/metropolis"
)

// benchmarkSample runs a full calibrate+sample cycle for size spins and n
// recorded configurations under the given Hamiltonian factory.
func benchmarkSample(b *testing.B, size, n int, bind func(*metropolis.Sampler) error) {
	opts := metropolis.DefaultOptions(size)
	opts.Window = 50
	opts.MaxAcceptance = 0.5
	opts.Seed = 1

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		smp, err := metropolis.New(opts)
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		if err = bind(smp); err != nil {
			b.Fatalf("bind failed: %v", err)
		}
		if _, _, err = smp.Sample(n); err != nil {
			b.Fatalf("Sample failed: %v", err)
		}
	}
}

// bindPairingBias binds the closed-form model: O(S) deltas via the
// interface path (count recovery dominates).
func bindPairingBias(size int) func(*metropolis.Sampler) error {
	bias := make([]float64, size)
	for k := range bias {
		bias[k] = 0.01 * float64(k%7)
	}

	return func(smp *metropolis.Sampler) error {
		model, err := maxent.NewPairingBias(0.05, bias)
		if err != nil {
			return err
		}
		smp.SetModel(model)

		return nil
	}
}

// bindGeneric binds a constraint-callable model of the same shape:
// O(m·S) deltas by double evaluation.
func bindGeneric(size int) func(*metropolis.Sampler) error {
	return func(smp *metropolis.Sampler) error {
		funcs := make([]maxent.ConstraintFunc, 0, size+1)
		mult := make([]float64, 0, size+1)
		funcs = append(funcs, maxent.PairingSquared())
		mult = append(mult, 0.05)
		for k := 0; k < size; k++ {
			funcs = append(funcs, maxent.SiteBias(k))
			mult = append(mult, 0.01*float64(k%7))
		}

		return smp.SetHamiltonian(mult, funcs)
	}
}

// BenchmarkSample_PairingBiasSmall measures the closed-form path, 32 spins.
func BenchmarkSample_PairingBiasSmall(b *testing.B) {
	benchmarkSample(b, 32, 200, bindPairingBias(32))
}

// BenchmarkSample_PairingBiasLarge measures the closed-form path, 512 spins.
func BenchmarkSample_PairingBiasLarge(b *testing.B) {
	benchmarkSample(b, 512, 200, bindPairingBias(512))
}

// BenchmarkSample_GenericSmall measures the callable path, 32 spins.
func BenchmarkSample_GenericSmall(b *testing.B) {
	benchmarkSample(b, 32, 200, bindGeneric(32))
}

// BenchmarkDeltaFromCount isolates the O(1) incremental formula.
func BenchmarkDeltaFromCount(b *testing.B) {
	bias := make([]float64, 512)
	model, err := maxent.NewPairingBias(0.05, bias)
	if err != nil {
		b.Fatalf("NewPairingBias failed: %v", err)
	}

	var sink float64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink += model.DeltaFromCount(200, +1, i%512)
	}
	_ = sink
}
