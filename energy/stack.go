package energy

import "github.com/foldkinetics/kfold/params"

// Stack returns the nearest-neighbor stacking energy of two adjacent
// base pairs (i,j) and (ip,jp), per spec.md §4.2's estack. Precondition:
// (i,j) and (ip,jp) are both pairs with ip=i+1, jp=j-1; callers (fold's
// ΔG operators) are responsible for that invariant, since Stack itself
// has no access to the pair table and cannot check it.
func Stack(table *params.Table, seq []int, i, j, ip, jp int) float64 {
	return table.Stack[seq[i]][seq[j]][seq[ip]][seq[jp]]
}

// StackH returns the first-mismatch stacking energy of a closing pair
// (i,j) over the two nucleotides immediately inside a hairpin loop.
func StackH(table *params.Table, seq []int, i, j, mi, mj int) float64 {
	return table.StackH[seq[i]][seq[j]][seq[mi]][seq[mj]]
}

// StackI returns the first-mismatch stacking energy of a closing pair
// (i,j) over the two nucleotides immediately inside an internal loop.
func StackI(table *params.Table, seq []int, i, j, mi, mj int) float64 {
	return table.StackI[seq[i]][seq[j]][seq[mi]][seq[mj]]
}
