// Package ssa implements the Gillespie stochastic simulation driver of
// spec.md §4.7: a 32-bit multiplicative-congruential random source
// feeding the exact SSA time-increment/reaction-draw pair, a
// logarithmic trajectory-output ladder, and a sequential runner for
// replicate trajectories (spec.md §5's concurrency model — replicates
// run one after another on a single *fold.Structure, which is reset to
// the starting pairs between them, each writing to its own io.Writer).
package ssa
