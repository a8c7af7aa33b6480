package fold

import "github.com/foldkinetics/kfold/energy"

// DeltaGHelixExtend computes ΔG for extending the helix at (i,j) by
// forming (i-1,j+1), per spec.md §4.4.1. Both i-1 and j+1 must
// currently be unpaired; the caller (the enumerator) is responsible for
// that precondition, matching the "reads only current state plus its
// arguments" contract of §4.4's common contract.
func (s *Structure) DeltaGHelixExtend(i, j int) float64 {
	loopA := s.Loops[s.LoopOf[i]]

	before := s.loopEnergy(loopA)

	stack := energy.Stack(s.Table, s.Seq, i-1, j+1, i, j)

	var after float64
	switch {
	case loopA.NHlx == 1:
		// Collapsing case: loop A was a hairpin, now becomes a tighter
		// hairpin closed by (i-1,j+1) plus the new stack.
		after = stack + energy.Hairpin(s.Table, s.Seq, i-1, j+1)
	case loopA.NHlx == 2 && loopA.NSgl == 0:
		// Two helices with nothing between them: the pair becomes a
		// second stack layer, loop A disappears entirely.
		after = stack
	case loopA.NHlx == 2:
		// Two helices with unpaired nucleotides between: becomes a
		// bulge/interior loop closed by (i-1,j+1) against A's other pair.
		otherI, otherJ, ok := loopA.otherHelix(i, j)
		if !ok {
			return 0
		}
		after = stack + energy.Bulge(s.Table, s.Seq, i-1, j+1, otherI, otherJ)
	default:
		shrunk := shrinkSideSgl(loopA, i, j)
		after = stack + energy.Multibranch(s.Table, s.Seq, shrunk, s.Model, loopA.IsExternal)
	}

	return after - before
}

// loopEnergy returns the current energy contribution of loop l alone:
// hairpin energy for a 1-helix loop, stack/bulge energy for a 2-helix
// internal loop, and the emulti composite otherwise (including every
// external loop regardless of its helix count, per DESIGN.md's
// resolution of the MBL-asymmetry-at-the-external-loop question).
func (s *Structure) loopEnergy(l *Loop) float64 {
	if l.IsExternal {
		return energy.Multibranch(s.Table, s.Seq, loopView(l), s.Model, true)
	}
	switch l.NHlx {
	case 1:
		return energy.Hairpin(s.Table, s.Seq, l.ClosingI, l.ClosingJ)
	case 2:
		if oi, oj, ok := l.otherHelix(l.ClosingI, l.ClosingJ); ok {
			return energy.Bulge(s.Table, s.Seq, l.ClosingI, l.ClosingJ, oi, oj)
		}
		return 0
	default:
		return energy.Multibranch(s.Table, s.Seq, loopView(l), s.Model, false)
	}
}

func loopView(l *Loop) energy.MultibranchLoop {
	return energy.MultibranchLoop{NHlx: l.NHlx, NSgl: l.NSgl, SideSgl: append([]int(nil), l.SideSgl...)}
}

// shrinkSideSgl returns loop l's MultibranchLoop view with nsgl reduced
// by 2 and the side_sgl slots adjacent to the extending pair each
// reduced by 1, per spec.md §4.4.1.
func shrinkSideSgl(l *Loop, i, j int) energy.MultibranchLoop {
	v := loopView(l)
	v.NSgl -= 2
	if len(v.SideSgl) > 0 {
		v.SideSgl[0]--
		v.SideSgl[len(v.SideSgl)-1]--
	}
	return v
}
