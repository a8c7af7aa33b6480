package energy

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

func TestStackIsSymmetricTableLookup(t *testing.T) {
	table := mustTable(t)
	seq := []int{params.G, params.C, params.G, params.C}
	got := Stack(table, seq, 0, 3, 1, 2)
	want := table.Stack[params.G][params.C][params.C][params.G]
	if got != want {
		t.Errorf("Stack = %v, want %v", got, want)
	}
}

func TestHairpinUsesSequenceSpecificBonusWhenPresent(t *testing.T) {
	table := mustTable(t)
	var key string
	for k := range table.Tetraloops {
		key = k
		break
	}
	if key == "" {
		t.Skip("no tetraloop bonuses in embedded defaults")
	}
	seq := make([]int, len(key))
	for i := 0; i < len(key); i++ {
		code, err := params.EncodeNucleotide(key[i])
		if err != nil {
			t.Fatal(err)
		}
		seq[i] = code
	}
	got := Hairpin(table, seq, 0, len(seq)-1)
	want := table.Tetraloops[key]
	if got != want {
		t.Errorf("Hairpin(%s) = %v, want %v", key, got, want)
	}
}

func TestBulgeDispatchesOnShape(t *testing.T) {
	table := mustTable(t)
	seq := []int{params.G, params.A, params.A, params.C, params.A, params.A, params.C}
	// outer pair (0,6), inner pair (3, ... ) synthetic, n1=2,n2=0
	got := Bulge(table, seq, 0, 6, 3, 6-1-0)
	if got == 0 {
		t.Errorf("expected a nonzero bulge energy")
	}
}

func TestMultibranchClassicVsAsymmetry(t *testing.T) {
	table := mustTable(t)
	seq := []int{params.G, params.C, params.G, params.C}
	loop := MultibranchLoop{NHlx: 3, NSgl: 4, SideSgl: []int{1, 1, 2}}
	classic := Multibranch(table, seq, loop, params.MBLClassic, false)
	asym := Multibranch(table, seq, loop, params.MBLAsymmetry, false)
	external := Multibranch(table, seq, loop, params.MBLAsymmetry, true)
	if classic == asym {
		t.Errorf("expected classic and asymmetry models to diverge for this loop shape")
	}
	if external != classic {
		t.Errorf("external loop must always use the classic scoring, got %v want %v", external, classic)
	}
}
