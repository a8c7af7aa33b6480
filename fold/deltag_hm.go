package fold

import "github.com/foldkinetics/kfold/energy"

// DeltaGHelixMorph computes ΔG for moving pair (i,j) one step inward to
// (i-1,j+1) while (i,j) itself becomes an internal stacked pair of the
// same helix, per spec.md §4.4.3. Precondition (checked by the caller,
// the enumerator, per the common contract of §4.4): iwc(seq[i-1],
// seq[j+1]) holds, and exactly one of i-1/j+1 is free to receive the new
// closing role — not both paired to external partners, not both
// unpaired (that would be extension, not morphing).
func (s *Structure) DeltaGHelixMorph(i, j int) float64 {
	loopA := s.Loops[s.LoopOf[i]]

	before := s.loopEnergy(loopA) + energy.Stack(s.Table, s.Seq, i, j, i+1, j-1)

	shrunk := shrinkSideSgl(loopA, i, j)
	afterLoop := energy.Multibranch(s.Table, s.Seq, shrunk, s.Model, loopA.IsExternal)
	afterStack := energy.Stack(s.Table, s.Seq, i-1, j+1, i, j)

	return (afterLoop + afterStack) - before
}
