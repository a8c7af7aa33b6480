package fold

// Loop discovery from a loaded pair table, grounded on spec.md §4.5's
// init_loops and on _examples/original_source/src/setupnuc.py's initial
// tree walk. Every call replaces Structure.Loops wholesale; this is the
// bulk path used once at load time, not the incremental splice path
// individual moves use after firing (see fire.go).

// InitLoops rebuilds the entire loop decomposition from s.Pairs, then
// enumerates every loop's reactions and resums the partial-sum index.
// Call once after LoadPairs, or any time the pair table changes by a
// means other than the five elementary moves.
func InitLoops(s *Structure) error {
	n := s.N()
	for i := range s.LoopOf {
		s.LoopOf[i] = unpaired
		s.LoopInside[i] = unpaired
	}
	ext := &Loop{Anchor: n - 1, ClosingI: unpaired, ClosingJ: unpaired, IsExternal: true}
	s.Loops = []*Loop{ext}
	if err := fillLoop(s, 0, 0, n-1); err != nil {
		return err
	}
	s.ensureCapacity()
	for idx := range s.Loops {
		EnumerateLoop(s, idx)
	}
	s.ResumAll()
	return nil
}

// fillLoop scans [lo,hi] for top-level base pairs (the children of the
// loop at s.Loops[loopIdx]), recursing into each child's own interior
// before returning. Nucleotides directly owned by this loop — every
// unpaired position in its gaps and both endpoints of each child pair —
// get LoopOf set to loopIdx; this loop's own closing-pair endpoints were
// already set to the parent's index by the caller, and nucleotides inside
// a child helix are left to that child's recursive call.
func fillLoop(s *Structure, loopIdx, lo, hi int) error {
	l := s.Loops[loopIdx]
	if !l.IsExternal {
		l.Helices = [][2]int{{l.ClosingI, l.ClosingJ}}
	}

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

		child := &Loop{Anchor: i, ClosingI: i, ClosingJ: j}
		s.Loops = append(s.Loops, child)
		childIdx := len(s.Loops) - 1
		s.LoopInside[i] = childIdx
		if err := fillLoop(s, childIdx, i+1, j-1); err != nil {
			return err
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
	}
	return nil
}
