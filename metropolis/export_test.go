// In-package export shims so the black-box test package can drive selected
// internals (single proposal steps) for property tests. Test builds only.
package metropolis

import "github.com/katalvlaran/maxent/spins"

// Step exposes one proposal/acceptance cycle for acceptance-rule tests.
func (s *Sampler) Step(cfg spins.Configuration) bool { return s.step(cfg) }
