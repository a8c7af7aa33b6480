package fold

import (
	"math"

	"github.com/foldkinetics/kfold/energy"
	"github.com/foldkinetics/kfold/params"
)

// Reaction describes the single elementary move Fire just applied, for
// the driver's trajectory bookkeeping.
type Reaction struct {
	Kind string // "nucleate", "extend", "retract", "morph", "diffuse", "internal-open"
	I, J int    // the pair Fire formed or removed
	K    int    // the vacated/occupied site, diffuse only
}

// Fire draws the single reaction crossed by amount Atot()*xi (xi in
// [0,1)), applies it to the pair table, and incrementally repairs the
// loop decomposition and partial-sum index, per spec.md §4.5/§9: only
// the loop(s) the move actually touches are re-enumerated, via
// spliceAfter/spliceReenumerate (splice.go), rather than rebuilding the
// whole decomposition from InitLoops on every move.
func (s *Structure) Fire(xi float64) (Reaction, error) {
	atot := s.Atot()
	if atot <= 0 {
		return Reaction{}, violate("no-reactions", "fired with Atot()=%v", atot)
	}
	a := xi * atot
	loopIdx, local := s.Select(a)
	if loopIdx < 0 || loopIdx >= len(s.Loops) || s.Loops[loopIdx] == nil {
		return Reaction{}, violate("select-out-of-range", "Select returned loop %d of %d", loopIdx, len(s.Loops))
	}

	rx, ok := selectReactionInLoop(s, loopIdx, local)
	if !ok {
		return Reaction{}, violate("reaction-not-found", "local amount %v exceeded loop %d's rate_total %v", local, loopIdx, s.Loops[loopIdx].RateTotal)
	}

	s.applyReaction(rx)
	if _, err := s.spliceAfter(rx); err != nil {
		return Reaction{}, err
	}
	return rx, nil
}

func (s *Structure) applyReaction(rx Reaction) {
	switch rx.Kind {
	case "nucleate":
		s.Pairs[rx.I] = rx.J
		s.Pairs[rx.J] = rx.I
	case "extend":
		s.Pairs[rx.I-1] = rx.J + 1
		s.Pairs[rx.J+1] = rx.I - 1
	case "retract":
		s.Pairs[rx.I] = unpaired
		s.Pairs[rx.J] = unpaired
	case "morph":
		s.Pairs[rx.I] = unpaired
		s.Pairs[rx.J] = unpaired
		s.Pairs[rx.I-1] = rx.J + 1
		s.Pairs[rx.J+1] = rx.I - 1
	case "diffuse":
		i, j, k := rx.I, rx.J, rx.K
		s.Pairs[i] = unpaired
		s.Pairs[j] = unpaired
		var newI, newJ int
		switch k {
		case i - 1, i + 1:
			newI, newJ = k, j
		default:
			newI, newJ = i, k
		}
		s.Pairs[newI] = newJ
		s.Pairs[newJ] = newI
	case "internal-open":
		s.Pairs[rx.I] = unpaired
		s.Pairs[rx.J] = unpaired
	}
}

// spliceAfter determines which loop lies immediately outside the pair
// rx just added, removed, or relocated (its owner, whose span needs
// rescanning) and, for a move that removed a pair, which loop used to
// sit immediately inside it (mergedAway, whose handle is freed once the
// rescan no longer needs it), then delegates to spliceReenumerate.
// Every lookup reads s.LoopOf/s.LoopInside, which applyReaction never
// touches, so they still report the pre-move owner even though s.Pairs
// already reflects the post-move state.
func (s *Structure) spliceAfter(rx Reaction) ([]int, error) {
	switch rx.Kind {
	case "nucleate":
		return s.spliceReenumerate(s.LoopOf[rx.I])
	case "extend":
		return s.spliceReenumerate(s.LoopOf[rx.I-1])
	case "retract":
		return s.spliceReenumerate(s.LoopOf[rx.I], s.loopInsideOf(rx.I, rx.J))
	case "morph":
		return s.spliceReenumerate(s.LoopOf[rx.I-1], s.loopInsideOf(rx.I, rx.J))
	case "diffuse":
		return s.spliceReenumerate(s.LoopOf[rx.I], s.loopInsideOf(rx.I, rx.J))
	case "internal-open":
		if s.loopInsideOf(rx.I, rx.J) == nil {
			return nil, violate("splice-owner-missing", "internal-open (%d,%d) has no inner loop to reopen", rx.I, rx.J)
		}
		return s.spliceReenumerate(s.LoopOf[rx.I], s.loopInsideOf(rx.I, rx.J))
	default:
		return nil, violate("unknown-reaction", "Fire produced unrecognised reaction kind %q", rx.Kind)
	}
}

// selectReactionInLoop re-walks loop li's reactions in exactly the order
// EnumerateLoop accumulated them, subtracting each rate from the
// remaining local amount until it goes negative — the reaction it falls
// within is the one that crossed the threshold, per spec.md §4.7 step 5.
func selectReactionInLoop(s *Structure, li int, local float64) (Reaction, bool) {
	l := s.Loops[li]
	n := s.N()
	remaining := local

	var nucleated Reaction
	foundNucleation := false
	nucleationWalk(s, l, func(a, b int, rate float64) bool {
		if remaining < rate {
			nucleated = Reaction{Kind: "nucleate", I: a, J: b}
			foundNucleation = true
			return false
		}
		remaining -= rate
		return true
	})
	if foundNucleation {
		return nucleated, true
	}

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
			if remaining < rate {
				return Reaction{Kind: "extend", I: i, J: j}, true
			}
			remaining -= rate
		}

		{
			dg := s.DeltaGHelixRetract(i, j)
			rate := energy.RateH * math.Exp(-beta*dg/2)
			if remaining < rate {
				return Reaction{Kind: "retract", I: i, J: j}, true
			}
			remaining -= rate
		}

		if i+1 < j-1 && s.Pairs[i+1] == j-1 &&
			i-1 >= 0 && j+1 < n && s.Pairs[i-1] == unpaired && s.Pairs[j+1] == unpaired &&
			params.IWC(s.Seq[i-1], s.Seq[j+1]) {
			dg := s.DeltaGHelixMorph(i, j)
			rate := energy.RateM * math.Exp(-beta*dg/2)
			if remaining < rate {
				return Reaction{Kind: "morph", I: i, J: j}, true
			}
			remaining -= rate
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
			if remaining < rate {
				return Reaction{Kind: "diffuse", I: i, J: j, K: k}, true
			}
			remaining -= rate
		}

		if l.NHlx == 2 && l.NSgl == 0 && !l.IsExternal {
			if inner := s.loopInsideOf(i, j); inner != nil && inner.NHlx == 2 && inner.NSgl == 0 {
				dg := s.DeltaGHelixInternalOpen(i, j)
				rate := energy.RateH * math.Exp(-beta*dg/2)
				if remaining < rate {
					return Reaction{Kind: "internal-open", I: i, J: j}, true
				}
				remaining -= rate
			}
		}
	}

	return Reaction{}, false
}
