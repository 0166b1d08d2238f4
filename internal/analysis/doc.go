// Package analysis provides diagnostics over field data.
//
// The helpers operate on flat []float64 slices so they work on any grid,
// view or profile:
//
//   - [Max], [Min], [Mean]: basic reductions
//   - [L2Deviation]: root-mean-square distance from the mean
//   - [RelativeL1]: Σ|a-b| / Σ|b|, the relaxation convergence measure
//   - [Divergence], [KineticEnergy]: velocity field diagnostics
//   - [PowerSpectrum]: magnitude spectrum of a 1D profile
//
// # Convergence
//
// Steady solvers stop reporting progress once the relative change between
// sweeps drops below a tolerance:
//
//	if analysis.RelativeL1(p, prev) < 1e-4 {
//	    // converged
//	}
package analysis
