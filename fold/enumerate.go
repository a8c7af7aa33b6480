package fold

import (
	"math"

	"github.com/foldkinetics/kfold/energy"
	"github.com/foldkinetics/kfold/params"
)

// nucleationWalk calls visit(a, b, rate) for every valid nucleation
// candidate directly owned by loop l, in 5'->3' order by a then b, per
// spec.md §4.5. The walk traverses the loop's whole span rather than one
// gap at a time, stepping over any intervening helix so a and b may sit
// on either side of a child helix of the same loop — grounded on
// _examples/original_source/src/loop_reac.py's nucleation branch, which
// advances past a paired position via kp = rna.ibsp[kp] instead of
// stopping at it. Unlike a helix event's rate, a nucleation rate is
// exactly pnuc[chord]: the source's nucleation branch accumulates
// "x += pnuc[l]" with no ΔG/exp(-βΔG/2) factor, unlike every helix-event
// branch which does compute one.
//
// Each probe from a is bounded by limit, the source's lmx: for an
// internal loop, nt/2+1 with an even-nt parity correction; for the
// external loop, nt-icnt. icnt is the running count of nucleotides (both
// paired and unpaired) traversed so far, ensuring a chord already found
// walking forward from its 5' side is never reached again walking
// forward from its 3' side.
//
// visit returning false stops the walk early (selectReactionInLoop uses
// this once it has found the reaction the draw fell in); nucleationWalk
// itself returns false iff visit did.
func nucleationWalk(s *Structure, l *Loop, visit func(a, b int, rate float64) bool) bool {
	children := l.Helices
	if !l.IsExternal {
		children = l.Helices[1:]
	}
	nt := l.NSgl + 2*len(children)

	type span struct {
		at       int
		unpaired bool
	}
	var walk []span
	for k, gap := range l.GapBounds {
		for p := gap[0]; p <= gap[1]; p++ {
			walk = append(walk, span{p, true})
		}
		if k < len(children) {
			h := children[k]
			walk = append(walk, span{h[0], false}, span{h[1], false})
		}
	}

	for ai, a := range walk {
		if !a.unpaired {
			continue
		}
		icnt := ai
		limit := nt/2 + 1
		if nt%2 == 0 && icnt+1 > limit-1 {
			limit--
		}
		if l.IsExternal {
			limit = nt - icnt
		}

		for bi := ai + 1; bi < len(walk); bi++ {
			if bi-ai+1 > limit {
				break
			}
			b := walk[bi]
			if !b.unpaired {
				continue
			}
			chord := b.at - a.at
			if chord < 4 || chord >= len(s.PNuc) {
				continue
			}
			if !params.IWC(s.Seq[a.at], s.Seq[b.at]) {
				continue
			}
			if !visit(a.at, b.at, s.PNuc[chord]) {
				return false
			}
		}
	}
	return true
}

// EnumerateLoop recomputes every reaction rate whose closing pair or
// nucleation site lies on loop li, per spec.md §4.5's enumerate_loop,
// and stores the result in l.RateTotal (the caller is responsible for
// feeding that into Resum). It reads the current pair table and loop
// decomposition but writes only this loop's RateTotal and the
// WOpen/WExt slots of its own nucleotides; the ΔG operators it calls
// and the internal-open guard also read the loop inside each child pair.
func EnumerateLoop(s *Structure, li int) {
	l := s.Loops[li]
	n := s.N()
	var total float64

	for _, gap := range l.GapBounds {
		for p := gap[0]; p <= gap[1]; p++ {
			s.WOpen[p] = 0
			s.WExt[p] = 0
		}
	}

	nucleationWalk(s, l, func(a, b int, rate float64) bool {
		s.WOpen[a] += rate
		total += rate
		return true
	})

	children := l.Helices
	if !l.IsExternal {
		children = l.Helices[1:]
	}
	for _, h := range children {
		i, j := h[0], h[1]

		if i-1 >= 0 && j+1 < n && s.Pairs[i-1] == unpaired && s.Pairs[j+1] == unpaired &&
			params.IWC(s.Seq[i-1], s.Seq[j+1]) {
			dg := s.DeltaGHelixExtend(i, j)
			rate := energy.RateH * math.Exp(-beta*dg/2)
			s.WExt[i] += rate
			total += rate
		}

		{
			dg := s.DeltaGHelixRetract(i, j)
			rate := energy.RateH * math.Exp(-beta*dg/2)
			s.WOpen[j] += rate
			total += rate
		}

		if i+1 < j-1 && s.Pairs[i+1] == j-1 &&
			i-1 >= 0 && j+1 < n && s.Pairs[i-1] == unpaired && s.Pairs[j+1] == unpaired &&
			params.IWC(s.Seq[i-1], s.Seq[j+1]) {
			dg := s.DeltaGHelixMorph(i, j)
			rate := energy.RateM * math.Exp(-beta*dg/2)
			s.WExt[i] += rate
			total += rate
		}

		for _, k := range [4]int{i - 1, i + 1, j - 1, j + 1} {
			if k < 0 || k >= n || s.Pairs[k] != unpaired {
				continue
			}
			a, b := i, k
			if k == i-1 || k == i+1 {
				a, b = k, j
			}
			if a < 0 || b >= n || a >= b {
				continue
			}
			if !params.IWC(s.Seq[a], s.Seq[b]) {
				continue
			}
			dg := s.DeltaGHelixDiffuse(i, j, k)
			rate := energy.RateD * math.Exp(-beta*dg/2)
			s.WOpen[i] += rate
			total += rate
		}

		// Internal opening needs (i,j) stacked on both sides: inside on
		// (i+1,j-1) (checked via inner, the loop (i,j) itself closes) and
		// outside on (i-1,j+1), which holds only when l — the loop (i,j)
		// is a child of — is itself nothing but that one zero-gap stack
		// level. Without this second check DeltaGHelixInternalOpen's
		// Stack(i-1,j+1,i,j) term reads an (i-1,j+1) that may not be a
		// pair at all.
		if l.NHlx == 2 && l.NSgl == 0 && !l.IsExternal {
			if inner := s.loopInsideOf(i, j); inner != nil && inner.NHlx == 2 && inner.NSgl == 0 {
				dg := s.DeltaGHelixInternalOpen(i, j)
				rate := energy.RateH * math.Exp(-beta*dg/2)
				s.WOpen[i] += rate
				total += rate
			}
		}
	}

	l.RateTotal = total
}
