// Package motif provides prebuilt regulatory circuits for simulation.
//
// Each motif assembles a [grn.Circuit] from a named input signal:
//
//   - [SimpleRegulation]: X -> Y, Hill or logic rule
//   - [Cascade]: X -> Y -> Z threshold chain
//   - [CoherentFFL]: feed-forward loop with AND-gated Z (sign-sensitive delay)
//   - [IncoherentFFL]: feed-forward loop with X AND NOT Y logic (pulse generator)
//
// Motifs implement [grn.Configurable] so their parameters can be adjusted
// from the live view and the CLI.
package motif
