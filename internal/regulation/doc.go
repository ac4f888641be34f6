// Package regulation provides production-rate rules for gene expression.
//
// Each rule implements [grn.Rule], mapping regulator concentration(s) to a
// non-negative instantaneous production rate:
//
//   - [HillActivator], [HillRepressor]: continuous cooperative binding
//   - [LogicActivator], [LogicRepressor]: step-function approximation (n -> inf)
//   - [ANDGate], [ORGate], [SUMGate]: two-regulator input functions
//   - [PhaseRule]: X AND NOT Y with a leaky alternate rate, for
//     incoherent feed-forward logic
//
// Single-input rules also implement [grn.Configurable] for runtime
// parameter adjustment in the live view.
//
// Threshold comparisons are strict on the activation side (X > K fires an
// activator) and PhaseRule engages repression non-strictly at Y >= Ky; the
// convention is uniform across the package.
package regulation
