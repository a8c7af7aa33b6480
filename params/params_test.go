package params

import (
	"strings"
	"testing"
)

func TestDefaultParsesAllSets(t *testing.T) {
	for _, set := range []EnergyParamsSet{Turner1999, Turner2004, Andronescu2007} {
		set := set
		t.Run(set.String(), func(t *testing.T) {
			table, err := Default(set)
			if err != nil {
				t.Fatalf("Default(%s): %v", set, err)
			}
			if table.Stack[A][U][A][U] == 0 && table.Stack[C][G][C][G] == 0 {
				t.Fatalf("expected non-zero stack energies to be populated")
			}
		})
	}
}

func TestParseRejectsMissingHeader(t *testing.T) {
	_, err := Parse(strings.NewReader("not a parameter file\n"))
	if err == nil {
		t.Fatalf("expected error for missing header")
	}
}

func TestPairType(t *testing.T) {
	cases := []struct {
		i, j int
		want BasePairType
	}{
		{A, U, AU},
		{U, A, UA},
		{C, G, CG},
		{G, C, GC},
		{G, U, GU},
		{U, G, UG},
		{A, A, NoPair},
		{A, C, NoPair},
	}
	for _, c := range cases {
		if got := PairType(c.i, c.j); got != c.want {
			t.Errorf("PairType(%d,%d) = %v, want %v", c.i, c.j, got, c.want)
		}
	}
}

func TestExtrapolateLoop(t *testing.T) {
	var table [31]float64
	for i := range table {
		table[i] = float64(i)
	}
	if got := ExtrapolateLoop(table, 10, 1.0); got != 10 {
		t.Errorf("ExtrapolateLoop(10) = %v, want 10", got)
	}
	if got := ExtrapolateLoop(table, 60, 1.0); got <= table[30] {
		t.Errorf("ExtrapolateLoop(60) = %v, want > %v", got, table[30])
	}
}
