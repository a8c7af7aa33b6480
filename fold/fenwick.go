package fold

// Fenwick-style partial-sum tree over loop rate totals (spec.md §4.6.2),
// grounded on _examples/original_source/src/loop_resum.py's LOOP_RESUM.
// psum is sized NSum, the smallest power of two >= the active loop
// count; resumming after any change touches O(log NSum) slots.

// fenwickRoot returns the array index holding the grand total for a
// tree of size nsum. For nsum<=2 there is no internal node above the
// single leaf pair, so the "root" is the odd leaf slot itself — see
// DESIGN.md's resolution of spec.md §9's nsum=2 boundary note.
func fenwickRoot(nsum int) int {
	if nsum <= 2 {
		return 1
	}
	n := 1
	for 2*n < nsum {
		n *= 2
	}
	return n
}

// ensureCapacity grows or shrinks NSum/PSum per spec.md §4.6.2's
// grow/shrink rule, then fully resums.
func (s *Structure) ensureCapacity() {
	loopCount := len(s.Loops)
	nsum := 2
	for nsum < loopCount {
		nsum *= 2
	}
	if nsum < 2 {
		nsum = 2
	}
	if nsum == s.NSum && len(s.PSum) == s.NSum {
		return
	}
	old := s.PSum
	s.NSum = nsum
	s.PSum = make([]float64, nsum)
	copy(s.PSum, old)
	s.ResumAll()
}

// leafRateTotal returns rate_total[i] for loop index i, or 0 past the
// active loop count (the fenwick tree is zero-extended per spec.md
// §4.6.2's grow rule).
func (s *Structure) leafRateTotal(i int) float64 {
	if i < 0 || i >= len(s.Loops) || s.Loops[i] == nil {
		return 0
	}
	return s.Loops[i].RateTotal
}

// Resum recomputes psum along the path from loop index i's leaf pair up
// to the root, per loop_resum.py's recurrence. Call after any change to
// rate_total[i].
func (s *Structure) Resum(i int) {
	if s.NSum <= 2 {
		s.PSum[1] = s.leafRateTotal(0) + s.leafRateTotal(1)
		return
	}
	leaf := i
	if leaf%2 == 1 {
		leaf--
	}
	s.PSum[leaf+1] = s.leafRateTotal(leaf) + s.leafRateTotal(leaf+1)

	n, n1, n2 := 1, 2, 4
	idx := leaf
	for n1 < s.NSum {
		idx = (idx/n2)*n2 + n1
		left := idx - n
		right := idx + n
		s.PSum[idx] = s.PSum[left] + s.PSum[right]
		n, n1, n2 = n1, n2, 2*n2
	}
}

// ResumAll recomputes the entire tree from scratch, used after a
// grow/shrink or bulk load.
func (s *Structure) ResumAll() {
	if s.NSum <= 0 {
		return
	}
	for i := 0; i < s.NSum; i += 2 {
		s.PSum[i+1] = s.leafRateTotal(i) + s.leafRateTotal(i+1)
	}
	n, n1, n2 := 1, 2, 4
	for n1 < s.NSum {
		for idx := n1; idx < s.NSum; idx += n2 {
			left := idx - n
			right := idx + n
			s.PSum[idx] = s.PSum[left] + s.PSum[right]
		}
		n, n1, n2 = n1, n2, 2*n2
	}
}

// Select descends the tree from amount a in [0, Atot) and returns the
// loop index whose partial sum brackets a, along with the remaining
// local amount within that loop (spec.md §4.6.2's selection walk /
// §4.7 step 5).
func (s *Structure) Select(a float64) (loopIndex int, local float64) {
	if s.NSum <= 2 {
		if a < s.leafRateTotal(0) {
			return 0, a
		}
		return 1, a - s.leafRateTotal(0)
	}

	idx := fenwickRoot(s.NSum)
	n := idx
	for n > 1 {
		n /= 2
		left := idx - n
		leftVal := s.PSum[left]
		if a < leftVal {
			idx = left
		} else {
			a -= leftVal
			idx = idx + n
		}
	}
	// idx now names an odd/even leaf-pair slot; resolve the final bit
	// between the two leaves it covers.
	leafBase := idx
	if leafBase%2 == 1 {
		leafBase--
	}
	if a < s.leafRateTotal(leafBase) {
		return leafBase, a
	}
	return leafBase + 1, a - s.leafRateTotal(leafBase)
}
