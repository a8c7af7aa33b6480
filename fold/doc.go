// Package fold is the loop-indexed reaction engine: the structure state
// of §4.3, the five loop-local ΔG operators of §4.4, the reaction
// enumerator and firing logic of §4.5, and the fenwick partial-sum index
// and nucleation table of §4.6. This is the hard engineering spec.md
// calls out as THE CORE; everything else in this repository is a
// collaborator around it.
//
// No teacher file implements an incremental kinetic engine of this
// shape (the teacher's mfe package performs a global minimum-free-energy
// search, not local move sampling), so this package is grounded directly
// on spec.md §3-4.6, cross-checked against
// _examples/original_source/src/{loop_resum,setupnuc,ssareaction}.py for
// the fenwick recurrence, the nucleation table constants, and the
// driver's draw sequence.
package fold
