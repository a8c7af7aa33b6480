package fold

// Incremental loop-decomposition maintenance after a single fired
// reaction, per spec.md §4.5/§9: only the loop(s) touched by the move
// are re-enumerated, and a destroyed loop's handle is recycled by
// swapping the last active loop into the freed slot rather than leaving
// a hole or renumbering everything. This replaces a full InitLoops
// rebuild on every Fire with work proportional to the loops the move
// actually touches.
//
// Every one of the five elementary moves (plus nucleation) reduces to
// the same shape: an owner loop — the loop lying immediately outside
// whatever pair was added, removed, or relocated — has its span
// rescanned, and at most one mergedAway loop — the loop that used to
// sit immediately inside a pair the move just removed — is freed. A
// single rescan of the owner's span naturally rediscovers the owner's
// unaffected children (reused by identity, not recreated) along with
// whatever the move changed, because Fire always mutates s.Pairs before
// calling spliceAfter: the rescan just reads the resulting pair table
// rather than needing separate add/remove code paths.

// spliceReenumerate rescans ownerIdx's span against the current pair
// table, reusing any of owner's (or a merged-away loop's) existing
// children it encounters instead of recreating them, and frees every
// mergedAway loop via freeLoop once the rescan no longer needs it. It
// returns every loop handle whose rate_total or Fenwick leaf the caller
// must refresh (EnumerateLoop then Resum).
func (s *Structure) spliceReenumerate(ownerIdx int, mergedAway ...*Loop) ([]int, error) {
	owner := s.Loops[ownerIdx]

	reusable := make(map[[2]int]int)
	collectChildren(s, owner, reusable)
	for _, m := range mergedAway {
		if m != nil {
			collectChildren(s, m, reusable)
		}
	}

	lo, hi := owner.ClosingI+1, owner.ClosingJ-1
	if owner.IsExternal {
		lo, hi = 0, s.N()-1
	}

	var created []int
	if err := rescanSpan(s, ownerIdx, lo, hi, reusable, &created); err != nil {
		return nil, err
	}

	touched := append([]int{ownerIdx}, created...)

	for _, m := range mergedAway {
		if m == nil {
			continue
		}
		victim := s.LoopInside[m.ClosingI]
		before, after, moved := freeLoop(s, victim)
		if moved {
			for k, idx := range touched {
				if idx == before {
					touched[k] = after
				}
			}
		}
		touched = append(touched, before, after)
	}

	seen := make(map[int]bool, len(touched))
	unique := touched[:0]
	for _, idx := range touched {
		if !seen[idx] {
			seen[idx] = true
			unique = append(unique, idx)
		}
	}
	touched = unique

	s.ensureCapacity()
	for _, idx := range touched {
		if idx >= 0 && idx < len(s.Loops) {
			EnumerateLoop(s, idx)
		}
	}
	for _, idx := range touched {
		if idx >= 0 && idx < s.NSum {
			s.Resum(idx)
		}
	}
	return touched, nil
}

// collectChildren records every one of l's existing children, keyed by
// their own closing pair, so rescanSpan can reuse them by identity
// instead of allocating a new Loop for a pair that did not actually
// change.
func collectChildren(s *Structure, l *Loop, reusable map[[2]int]int) {
	children := l.Helices
	if !l.IsExternal {
		children = l.Helices[1:]
	}
	for _, h := range children {
		reusable[h] = s.LoopInside[h[0]]
	}
}

// rescanSpan re-walks [lo,hi] exactly as fillLoop does on first load,
// except that a pair found in reusable is reattached as-is rather than
// recreated, and its own interior is left untouched — a reused child's
// subtree cannot have changed, since a single fired reaction only ever
// touches the pair immediately inside or outside itself. Only a
// genuinely new pair is recursed into, because only a new pair's
// interior is unknown to the caller.
func rescanSpan(s *Structure, loopIdx, lo, hi int, reusable map[[2]int]int, created *[]int) error {
	l := s.Loops[loopIdx]
	if !l.IsExternal {
		l.Helices = [][2]int{{l.ClosingI, l.ClosingJ}}
	} else {
		l.Helices = nil
	}
	l.SideSgl = nil
	l.GapBounds = nil

	gapStart := lo
	i := lo
	for i <= hi {
		j := s.Pairs[i]
		if j == unpaired || j <= i {
			i++
			continue
		}
		if j > hi {
			return violate("non-crossing", "pair (%d,%d) escapes its enclosing loop's range [%d,%d]", i, j, lo, hi)
		}
		for p := gapStart; p < i; p++ {
			s.LoopOf[p] = loopIdx
		}
		l.SideSgl = append(l.SideSgl, i-gapStart)
		l.GapBounds = append(l.GapBounds, [2]int{gapStart, i - 1})
		l.Helices = append(l.Helices, [2]int{i, j})
		s.LoopOf[i] = loopIdx
		s.LoopOf[j] = loopIdx

		childIdx, reused := reusable[[2]int{i, j}]
		if reused {
			delete(reusable, [2]int{i, j})
			s.LoopInside[i] = childIdx
		} else {
			child := &Loop{Anchor: i, ClosingI: i, ClosingJ: j}
			s.Loops = append(s.Loops, child)
			childIdx = len(s.Loops) - 1
			s.LoopInside[i] = childIdx
			*created = append(*created, childIdx)
			if err := rescanSpan(s, childIdx, i+1, j-1, reusable, created); err != nil {
				return err
			}
		}

		gapStart = j + 1
		i = j + 1
	}
	for p := gapStart; p <= hi; p++ {
		s.LoopOf[p] = loopIdx
	}
	l.SideSgl = append(l.SideSgl, hi+1-gapStart)
	l.GapBounds = append(l.GapBounds, [2]int{gapStart, hi})

	l.NHlx = len(l.Helices)
	sum := 0
	for _, v := range l.SideSgl {
		sum += v
	}
	l.NSgl = sum
	if l.NHlx > 2 {
		l.HelixIndex = make(map[int]int, l.NHlx)
		for idx, h := range l.Helices {
			l.HelixIndex[h[0]] = idx + 1
		}
	} else {
		l.HelixIndex = nil
	}
	return nil
}

// freeLoop destroys the loop at victim, recycling its handle by moving
// the last active loop into the freed slot (§9's swap-last-into-freed-
// slot convention) rather than leaving a hole that would force every
// later handle to shift. before and after are the Fenwick leaf indices
// the caller must refresh: before (the vacated slot, now one past the
// end) always needs zeroing; after is where the moved loop now lives,
// unless moved is false, in which case before==after and nothing moved.
func freeLoop(s *Structure, victim int) (before, after int, moved bool) {
	dead := s.Loops[victim]
	s.LoopInside[dead.ClosingI] = unpaired

	last := len(s.Loops) - 1
	if victim == last {
		s.Loops = s.Loops[:last]
		return last, last, false
	}

	relocated := s.Loops[last]
	s.Loops[victim] = relocated
	s.Loops = s.Loops[:last]
	retag(s, relocated, victim)
	s.LoopInside[relocated.ClosingI] = victim
	return last, victim, true
}

// retag fixes up s.LoopOf for every nucleotide l itself directly owns —
// its own gap positions and its children's helix endpoints — after l's
// handle moves to idx. l's own closing-pair endpoints are owned by l's
// parent, not by l, and so are untouched by l changing slots; l's
// grandchildren already carry the correct (unchanged) owner in their own
// LoopOf/LoopInside entries since their parent's identity didn't change,
// only its index.
func retag(s *Structure, l *Loop, idx int) {
	for _, gap := range l.GapBounds {
		for p := gap[0]; p <= gap[1]; p++ {
			s.LoopOf[p] = idx
		}
	}
	children := l.Helices
	if !l.IsExternal {
		children = l.Helices[1:]
	}
	for _, h := range children {
		s.LoopOf[h[0]] = idx
		s.LoopOf[h[1]] = idx
	}
}
