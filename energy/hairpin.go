package energy

import "github.com/foldkinetics/kfold/params"

// Hairpin computes the hairpin loop energy for closing pair (i,j), per
// spec.md §4.2's ehair. Grounded on
// _examples/bebop-poly/mfe/mfe.go's evaluateHairpinLoop: sequence-specific
// tri/tetra/hexaloop bonuses take priority over the generic size-based
// formula, which itself adds a first-mismatch stack for loops longer
// than 3, a poly-C penalty, and a terminal A-U/G-U penalty for the
// tightest (size-3) loops, where no mismatch stack applies.
func Hairpin(table *params.Table, seq []int, i, j int) float64 {
	n := j - i - 1
	if n < 3 {
		return 1e6 // not a physically foldable hairpin; never selected by a real move
	}

	switch n {
	case 3:
		if v, ok := table.Triloops[closureKey(seq, i, j)]; ok {
			return v
		}
	case 4:
		if v, ok := table.Tetraloops[closureKey(seq, i, j)]; ok {
			return v
		}
	case 6:
		if v, ok := table.Hexaloops[closureKey(seq, i, j)]; ok {
			return v
		}
	}

	e := extrapolate(table.Hloop, n)
	if n > 3 {
		e += StackH(table, seq, i, j, i+1, j-1)
		if isPolyC(seq, i+1, j-1) {
			e += table.Bonuses[3]
		}
	} else {
		e += terminalAUPenalty(table, seq, i, j)
		if isPolyC(seq, i+1, j-1) {
			e += table.Bonuses[2]
		}
	}
	e += gggBonus(table, seq, i, j, n)
	return e
}

// gggBonus applies the classic "GGG" closure bonus when the loop opens
// with G-G-G immediately inside the closing pair's 5' side.
func gggBonus(table *params.Table, seq []int, i, j, n int) float64 {
	if n < 3 {
		return 0
	}
	if seq[i+1] == params.G && seq[i+2] == params.G && seq[i+3] == params.G {
		return table.Bonuses[4]
	}
	return 0
}
