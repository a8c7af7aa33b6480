package energy

import "github.com/foldkinetics/kfold/params"

var codeToBase = [4]byte{'A', 'C', 'G', 'U'}

// closureKey renders seq[from..to] (inclusive) as an ACGU string, used
// to look up sequence-specific tri/tetra/hexaloop bonuses.
func closureKey(seq []int, from, to int) string {
	buf := make([]byte, 0, to-from+1)
	for k := from; k <= to; k++ {
		buf = append(buf, codeToBase[seq[k]])
	}
	return string(buf)
}

func isPolyC(seq []int, from, to int) bool {
	if from > to {
		return false
	}
	for k := from; k <= to; k++ {
		if seq[k] != params.C {
			return false
		}
	}
	return true
}

// isAUorGU reports whether the pair (i,j) carries the terminal
// A-U/G-U penalty (i.e. is not a G-C pair).
func isAUorGU(table *params.Table, seq []int, i, j int) bool {
	bp := params.PairType(seq[i], seq[j])
	return bp == params.AU || bp == params.UA || bp == params.GU || bp == params.UG
}

func terminalAUPenalty(table *params.Table, seq []int, i, j int) float64 {
	if isAUorGU(table, seq, i, j) {
		return table.AU
	}
	return 0
}
