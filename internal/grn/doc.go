// Package grn provides core simulation primitives for gene-regulatory
// network dynamics.
//
// The package defines the fundamental types for discrete-time simulation
// of threshold-regulated gene expression:
//
//   - [Series]: concentration or signal trace indexed by discrete step
//   - [Rule]: production-rate function of the regulator concentrations
//   - [Gene]: one regulated species with a rule, decay rate, and inputs
//   - [Circuit]: orchestrates a multi-gene simulation run
//
// Each gene advances by fixed-step explicit Euler integration:
//
//	c[t+1] = c[t] + dt*(rate(inputs[t]) - alpha*c[t])
//
// # Example
//
//	c := grn.NewCircuit()
//	c.AddSignal("x", pulse)
//	c.AddGene(&grn.Gene{Name: "y", Rule: act, Decay: 0.1, Inputs: []string{"x"}})
//	result, _ := c.Run(ctx, grn.DefaultConfig(len(pulse)))
//
// # Numerical Caveat
//
// The loop is first-order explicit Euler with a fixed step. For decay rate
// alpha and step dt, alpha*dt >= 1 produces oscillation or divergence; this
// is a property of the method, not checked at runtime. Callers choose
// parameters accordingly.
//
// # Thread Safety
//
// Circuit instances are NOT thread-safe. Construct one per simulation run.
package grn
