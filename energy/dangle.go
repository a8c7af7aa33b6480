package energy

import "github.com/foldkinetics/kfold/params"

// Dangle returns the stabilizing contribution of a single unpaired
// nucleotide k stacked on the 3' or 5' face of the pair (i,j), per
// spec.md §4.2's edangle. Returns 0 if k is out of range [0,n).
// threePrime selects which table to use: true means k sits 3' of j
// (dangle3 on j's side), false means k sits 5' of i (dangle5 on i's
// side) — callers determine orientation from the pair geometry, Dangle
// itself is a pure table lookup.
func Dangle(table *params.Table, seq []int, n, i, j, k int, threePrime bool) float64 {
	if k < 0 || k >= n {
		return 0
	}
	if threePrime {
		return table.Dangle3[seq[i]][seq[j]][seq[k]]
	}
	return table.Dangle5[seq[i]][seq[j]][seq[k]]
}

// BestOfTwo implements the "best-of-two" dangle tie-break of spec.md §9:
// when a single unpaired nucleotide sits between two closed pairs and
// could stack on either, the smaller (more stabilizing) of the two
// dangle contributions is taken, never their sum.
func BestOfTwo(e1, e2 float64) float64 {
	if e1 < e2 {
		return e1
	}
	return e2
}
