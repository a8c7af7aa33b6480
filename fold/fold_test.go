package fold

import (
	"testing"

	"github.com/foldkinetics/kfold/params"
)

func mustTable(t *testing.T) *params.Table {
	t.Helper()
	table, err := params.Default(params.Turner2004)
	if err != nil {
		t.Fatalf("params.Default: %v", err)
	}
	return table
}

// hairpinStructure builds GGGG-AAAA-CCCC closed as a single stem-loop:
// pairs (0,11)(1,10)(2,9)(3,8), tetraloop AAAA at 4..7.
func hairpinStructure(t *testing.T) *Structure {
	t.Helper()
	table := mustTable(t)
	seq := []int{
		params.G, params.G, params.G, params.G,
		params.A, params.A, params.A, params.A,
		params.C, params.C, params.C, params.C,
	}
	s := New(seq, table, params.MBLClassic)
	pairs := make([]int, len(seq))
	for i := range pairs {
		pairs[i] = unpaired
	}
	for k := 0; k < 4; k++ {
		i, j := k, len(seq)-1-k
		pairs[i] = j
		pairs[j] = i
	}
	if err := s.LoadPairs(pairs); err != nil {
		t.Fatalf("LoadPairs: %v", err)
	}
	if err := InitLoops(s); err != nil {
		t.Fatalf("InitLoops: %v", err)
	}
	return s
}

func TestInitLoopsBuildsStackAndHairpin(t *testing.T) {
	s := hairpinStructure(t)
	if len(s.Loops) != 5 { // external + 4 stacked-pair loops, innermost closes the hairpin
		t.Fatalf("got %d loops, want 5", len(s.Loops))
	}
	innermost := s.Loops[len(s.Loops)-1]
	if innermost.NHlx != 1 {
		t.Errorf("innermost loop nhlx = %d, want 1 (hairpin)", innermost.NHlx)
	}
	if innermost.NSgl != 4 {
		t.Errorf("innermost loop nsgl = %d, want 4", innermost.NSgl)
	}
}

func TestCheckInvariantsPassesOnLoadedStructure(t *testing.T) {
	s := hairpinStructure(t)
	if err := s.CheckInvariants(); err != nil {
		t.Errorf("CheckInvariants: %v", err)
	}
}

func TestLoadPairsRejectsAsymmetricTable(t *testing.T) {
	table := mustTable(t)
	s := New([]int{params.A, params.U}, table, params.MBLClassic)
	if err := s.LoadPairs([]int{1, unpaired}); err == nil {
		t.Errorf("expected a pair-symmetry error, got nil")
	}
}

func TestAtotMatchesSumOfLoopRateTotals(t *testing.T) {
	s := hairpinStructure(t)
	var sum float64
	for _, l := range s.Loops {
		sum += l.RateTotal
	}
	if got := s.Atot(); got != sum {
		t.Errorf("Atot() = %v, want %v", got, sum)
	}
}

func TestFireAppliesAReactionAndPreservesInvariants(t *testing.T) {
	s := hairpinStructure(t)
	if s.Atot() <= 0 {
		t.Fatal("expected a nonzero total rate on a freshly loaded hairpin")
	}
	rx, err := s.Fire(0.0)
	if err != nil {
		t.Fatalf("Fire: %v", err)
	}
	if rx.Kind == "" {
		t.Errorf("expected a non-empty reaction kind")
	}
	if err := s.CheckInvariants(); err != nil {
		t.Errorf("CheckInvariants after Fire: %v", err)
	}
}

func TestFenwickRootBoundary(t *testing.T) {
	if got := fenwickRoot(1); got != 1 {
		t.Errorf("fenwickRoot(1) = %d, want 1", got)
	}
	if got := fenwickRoot(2); got != 1 {
		t.Errorf("fenwickRoot(2) = %d, want 1", got)
	}
	if got := fenwickRoot(8); got != 4 {
		t.Errorf("fenwickRoot(8) = %d, want 4", got)
	}
}

func TestBuildNucleationTableZeroBelowMinimumChord(t *testing.T) {
	pnuc := BuildNucleationTable(10)
	for chord := 0; chord < 4; chord++ {
		if pnuc[chord] != 0 {
			t.Errorf("pnuc[%d] = %v, want 0", chord, pnuc[chord])
		}
	}
	if pnuc[9] <= 0 {
		t.Errorf("pnuc[9] = %v, want > 0", pnuc[9])
	}
}
