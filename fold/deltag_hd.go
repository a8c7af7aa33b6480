package fold

import "github.com/foldkinetics/kfold/energy"

// DeltaGHelixDiffuse computes ΔG for defect diffusion: swapping one
// single-stranded nucleotide k with the paired partner on the adjacent
// side of pair (i,j), so that (i,j) becomes (k,j) (k in {i-1,i+1}) or
// (i,k) (k in {j-1,j+1}), per spec.md §4.4.4. Precondition: k is
// currently unpaired and iwc(new pair) holds; checked by the caller.
// Net nsgl and nhlx of the enclosing loop are unchanged by the move —
// one nucleotide trades places from paired to unpaired and another
// from unpaired to paired within the same loop — so only the shape of
// the closing/child helix itself needs rescoring.
func (s *Structure) DeltaGHelixDiffuse(i, j, k int) float64 {
	// The loop whose own boundary shifts by one nucleotide is the loop
	// immediately inside (i,j), not the loop outside it: diffusion moves
	// the single-stranded defect across the (i,j) boundary itself.
	loop := s.loopInsideOf(i, j)
	if loop == nil {
		return 0
	}
	before := s.loopEnergyWithClosingPair(loop, i, j)

	var newI, newJ int
	switch k {
	case i - 1, i + 1:
		newI, newJ = k, j
	default:
		newI, newJ = i, k
	}

	after := s.loopEnergyWithClosingPair(loop, newI, newJ)
	return after - before
}

// loopEnergyWithClosingPair re-scores loop l as if its closing pair
// were (i,j) instead of its current one, used by defect diffusion to
// compare a loop's energy before and after its boundary shifts by one
// nucleotide without any change in helix or single-strand counts.
func (s *Structure) loopEnergyWithClosingPair(l *Loop, i, j int) float64 {
	if l.IsExternal {
		return energy.Multibranch(s.Table, s.Seq, loopView(l), s.Model, true)
	}
	switch l.NHlx {
	case 1:
		return energy.Hairpin(s.Table, s.Seq, i, j)
	case 2:
		if oi, oj, ok := l.otherHelix(l.ClosingI, l.ClosingJ); ok {
			return energy.Bulge(s.Table, s.Seq, i, j, oi, oj)
		}
		return 0
	default:
		return energy.Multibranch(s.Table, s.Seq, loopView(l), s.Model, false)
	}
}
