package fold

import "github.com/foldkinetics/kfold/energy"

// DeltaGHelixRetract computes ΔG for removing the pair (i,j) currently
// closing a helix on loop A (outside) and loop B (inside), per spec.md
// §4.4.2. Special-cases the length-1-helix annihilation of B and the
// hairpin-disappears case.
func (s *Structure) DeltaGHelixRetract(i, j int) float64 {
	loopA := s.Loops[s.LoopOf[i]]
	loopB := s.loopInsideOf(i, j)

	// ei: energy of A and B scored with (i,j) present.
	ei := s.loopEnergy(loopA)
	if loopB != nil {
		ei += s.loopEnergy(loopB)
	}

	// ef: energy of the merged A∪B loop scored with (i,j) removed.
	var ef float64
	switch {
	case loopB == nil || loopB.NHlx == 1:
		// (i,j) closed a hairpin, or was the sole pair of a one-helix
		// loop: the inside loop disappears entirely, its nucleotides
		// (plus i and j themselves, now unpaired) join A.
		merged := mergedLoopView(loopA, loopB, i, j)
		ef = energy.Multibranch(s.Table, s.Seq, merged, s.Model, loopA.IsExternal)
	default:
		merged := mergedLoopView(loopA, loopB, i, j)
		ef = energy.Multibranch(s.Table, s.Seq, merged, s.Model, loopA.IsExternal)
	}

	// Per DESIGN.md's resolution of spec.md §9's flagged ambiguity in
	// the source's deltag_hr finalization (own comment there: "IS THIS
	// A BUG? SHOULD \"ei\" BE \"ef\"?"), dg is computed as ef-ei using
	// the two independently-named values above rather than silently
	// reusing whichever variable the source happened to assign last.
	dg := ef - ei

	// Dangles are not scored: loopView leaves ClosingPairs empty, so the
	// Multibranch calls above add no terminal-AU or dangle terms for
	// (i,j), and the enumerator applies no dangle energy for the newly
	// unpaired i and j either.
	return dg
}

// loopInsideOf returns the loop immediately inside the pair (i,j) in
// O(1) via Structure.LoopInside, the handle-reuse index fire.go's
// incremental splice depends on. Returns nil if i is out of range or
// currently unpaired.
func (s *Structure) loopInsideOf(i, j int) *Loop {
	if i < 0 || i >= len(s.LoopInside) {
		return nil
	}
	idx := s.LoopInside[i]
	if idx < 0 || idx >= len(s.Loops) {
		return nil
	}
	if l := s.Loops[idx]; l != nil && l.ClosingI == i && l.ClosingJ == j {
		return l
	}
	return nil
}

// mergedLoopView builds the MultibranchLoop view of loop A after (i,j)
// is removed and loop B (if any) is folded into it: nsgl increases by 2
// for the newly unpaired i,j, helix counts sum minus 2 (both lose the
// (i,j) helix), side_sgl runs are concatenated end to end.
func mergedLoopView(a, b *Loop, i, j int) energy.MultibranchLoop {
	v := loopView(a)
	v.NHlx--
	v.NSgl += 2
	if b != nil {
		v.NHlx += b.NHlx - 1
		v.NSgl += b.NSgl
		v.SideSgl = append(append([]int(nil), v.SideSgl...), b.SideSgl...)
	}
	return v
}
