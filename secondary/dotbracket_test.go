package secondary

import (
	"errors"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

func TestPairTableAndDotBracketRoundTrip(t *testing.T) {
	cases := []string{
		"....",
		"((....))",
		"((((....))))..((....))..",
		"(((.((...)).)))",
	}
	for _, want := range cases {
		pairs, err := PairTable(want)
		if err != nil {
			t.Fatalf("PairTable(%q): %v", want, err)
		}
		got, err := DotBracket(pairs)
		if err != nil {
			t.Fatalf("DotBracket: %v", err)
		}
		if got != want {
			diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
				A:        difflib.SplitLines(want),
				B:        difflib.SplitLines(got),
				FromFile: "want",
				ToFile:   "got",
				Context:  1,
			})
			t.Errorf("round trip mismatch:\n%s", diff)
		}
	}
}

func TestPairTableRejectsUnbalancedStructure(t *testing.T) {
	if _, err := PairTable("((...)"); !errors.Is(err, ErrUnbalancedStructure) {
		t.Errorf("expected ErrUnbalancedStructure, got %v", err)
	}
	if _, err := PairTable("...))"); !errors.Is(err, ErrUnbalancedStructure) {
		t.Errorf("expected ErrUnbalancedStructure, got %v", err)
	}
}
