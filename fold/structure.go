package fold

import "github.com/foldkinetics/kfold/params"

// unpaired is the sentinel value for pairs[i] and loop_of[i] meaning
// "no partner"/"no loop", per spec.md §9's resolution to use -1
// uniformly rather than the source's mixed 0/1-based conventions.
const unpaired = -1

// Loop is the per-loop record of spec.md §3. Handles are indices into
// Structure.Loops and are reused by the splice convention of §4.5/§9:
// destroying a loop swaps the last active loop into the freed slot.
type Loop struct {
	Anchor     int     // representative nucleotide (closing pair's 5' side, or N-1 for the external loop)
	NHlx       int     // number of incident helices, == len(Helices)
	NSgl       int     // total single-stranded nucleotides on this loop
	SideSgl    []int   // ordered unpaired-run lengths between adjacent helices, length nhlx (or nhlx+1 externally)
	RateTotal  float64 // sum of every reaction rate whose closing pair lies on this loop
	IsExternal bool
	ClosingI   int // this loop's own closing pair, as seen from outside; -1 for the external loop
	ClosingJ   int

	// Helices lists every base pair bounding this loop: its own closing
	// pair (if internal) plus every child pair hanging inside it, in
	// 5'->3' walk order. len(Helices) == NHlx.
	Helices [][2]int

	// GapBounds[k] is the inclusive [lo,hi] nucleotide range of the
	// single-stranded run recorded as SideSgl[k], aligned index for
	// index with SideSgl.
	GapBounds [][2]int

	HelixIndex map[int]int // nucleotide -> ordinal 1..NHlx of the helix it closes, populated only when NHlx>2
}

// otherHelix returns the one Helices entry that is not (i,j), used by
// the 2-helix collapse cases in the ΔG operators. ok is false if (i,j)
// is not found or there is not exactly one other helix.
func (l *Loop) otherHelix(i, j int) (oi, oj int, ok bool) {
	if len(l.Helices) != 2 {
		return 0, 0, false
	}
	for _, h := range l.Helices {
		if h[0] == i && h[1] == j {
			continue
		}
		return h[0], h[1], true
	}
	return 0, 0, false
}

// Structure is the mutable state of spec.md §3-4.3: sequence, pair
// table, loop decomposition, and the scratch per-nucleotide rate
// contributions used by the enumerator.
type Structure struct {
	Seq   []int
	Pairs []int

	Loops  []*Loop
	LoopOf []int // nucleotide -> owning loop handle, or unpaired

	// LoopInside[i], for i the 5' side of a current pair, is the handle
	// of the loop whose own closing pair is exactly that pair — i.e. the
	// loop immediately inside it. This is the index loopInsideOf resolves
	// in O(1); Fire's incremental splice (fire.go, splice.go) depends on
	// that being O(1) rather than a scan over every loop.
	LoopInside []int

	WOpen []float64 // per-nucleotide: nucleation rate if unpaired, else retraction/open rate
	WExt  []float64 // per-nucleotide: helix-extension rate, meaningful only at paired positions

	NSum int       // fenwick tree size, a power of two >= len(Loops)
	PSum []float64 // fenwick partial sums, length NSum

	Table *params.Table
	Model params.MBLModel
	PNuc  []float64 // nucleation rate table, index by chord length
}

// New allocates a Structure for a sequence already translated to 0-based
// nucleotide codes, with every position unpaired. Call LoadPairs after
// to install a non-trivial initial structure, then InitLoops once
// either way.
func New(seq []int, table *params.Table, model params.MBLModel) *Structure {
	n := len(seq)
	pairs := make([]int, n)
	loopOf := make([]int, n)
	loopInside := make([]int, n)
	for i := range pairs {
		pairs[i] = unpaired
		loopOf[i] = unpaired
		loopInside[i] = unpaired
	}
	s := &Structure{
		Seq:        seq,
		Pairs:      pairs,
		LoopOf:     loopOf,
		LoopInside: loopInside,
		WOpen:      make([]float64, n),
		WExt:       make([]float64, n),
		Table:      table,
		Model:      model,
	}
	s.PNuc = BuildNucleationTable(n)
	return s
}

// LoadPairs installs pairs in bulk (e.g. from a parsed dot-bracket
// structure) before InitLoops runs. Per spec.md §4.3, this is the only
// sanctioned way to set the pair table outside the five elementary
// moves.
func (s *Structure) LoadPairs(pairs []int) error {
	if len(pairs) != len(s.Pairs) {
		return violate("pair-table-length", "got %d pairs, want %d", len(pairs), len(s.Pairs))
	}
	for i, j := range pairs {
		if j != unpaired && pairs[j] != i {
			return violate("pair-symmetry", "pairs[%d]=%d but pairs[%d]=%d", i, j, j, pairs[j])
		}
	}
	copy(s.Pairs, pairs)
	return nil
}

// Reset reinstalls pairs as the structure's current state and rebuilds
// the loop decomposition, re-using every buffer New already allocated
// (Seq, Pairs, LoopOf, WOpen, WExt, PNuc) instead of allocating a fresh
// Structure. This is how the ensemble runner moves from one replicate
// trajectory to the next: per spec.md §5, "multiple trajectories
// (nsim > 1) run sequentially, re-using the allocated buffers."
func (s *Structure) Reset(pairs []int) error {
	if err := s.LoadPairs(pairs); err != nil {
		return err
	}
	return InitLoops(s)
}

// N returns the sequence length.
func (s *Structure) N() int { return len(s.Seq) }

// CheckInvariants recomputes the universal invariants of spec.md §8 from
// scratch and returns an InvariantViolation on the first mismatch found.
// Intended for debug builds and tests, not the hot path.
func (s *Structure) CheckInvariants() error {
	n := s.N()
	for i := 0; i < n; i++ {
		j := s.Pairs[i]
		if j == unpaired {
			continue
		}
		if j < 0 || j >= n {
			return violate("pair-range", "pairs[%d]=%d out of range", i, j)
		}
		if s.Pairs[j] != i {
			return violate("pair-symmetry", "pairs[%d]=%d but pairs[%d]=%d", i, j, j, s.Pairs[j])
		}
	}
	for i := 0; i < n; i++ {
		j := s.Pairs[i]
		if j <= i {
			continue
		}
		for k := i + 1; k < j; k++ {
			l := s.Pairs[k]
			if l == unpaired {
				continue
			}
			if l < i || l > j {
				return violate("non-crossing", "pairs (%d,%d) crosses (%d,%d)", i, j, k, l)
			}
		}
	}
	var sum float64
	for _, l := range s.Loops {
		if l != nil {
			sum += l.RateTotal
		}
	}
	root := s.Atot()
	if diff := sum - root; diff > 1e-6 || diff < -1e-6 {
		return violate("partial-sum-consistency", "sum(rate_total)=%v but psum[root]=%v", sum, root)
	}
	return nil
}

// Atot returns psum[root], the total reaction rate across the whole
// structure (spec.md §4.6.2, §4.7 step 1).
func (s *Structure) Atot() float64 {
	if len(s.PSum) == 0 {
		return 0
	}
	return s.PSum[fenwickRoot(s.NSum)]
}
