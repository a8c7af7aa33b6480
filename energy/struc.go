package energy

import "github.com/foldkinetics/kfold/params"

// LoopView is the minimal read-only projection of a fold.Structure loop
// record Struc needs, kept independent of fold's concrete type the same
// way MultibranchLoop is.
type LoopView struct {
	IsExternal   bool
	IsMultibranch bool
	MultibranchLoop
}

// Struc sums emulti over every multi-branch loop plus estack over every
// stacked pair, the diagnostic §4.2 estruc. Nothing in this repository
// calls it: `kfold energy` sums per-loop energies with its own helper,
// and no test calls it. It is never called from the hot SSA path; fold's
// ΔG operators compute incremental differences directly instead.
func Struc(table *params.Table, seq []int, pairs []int, loops []LoopView, model params.MBLModel) float64 {
	var total float64
	for _, l := range loops {
		if l.IsMultibranch {
			total += Multibranch(table, seq, l.MultibranchLoop, model, l.IsExternal)
		}
	}
	n := len(pairs)
	for i := 0; i < n; i++ {
		j := pairs[i]
		if j <= i {
			continue
		}
		ip, jp := i+1, j-1
		if ip < jp && pairs[ip] == jp {
			total += Stack(table, seq, i, j, ip, jp)
		}
	}
	return total
}
