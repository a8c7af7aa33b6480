package fold

import (
	"math"

	"github.com/foldkinetics/kfold/energy"
)

// Nucleation rate table constants, grounded on
// _examples/original_source/src/setupnuc.py: c and c2 parameterize an
// analytic worm-like-chain fit split at x=4 into a closure-entropy
// regime and a long-chain regime.
const (
	nucC  = 0.178571429
	nucC2 = 392.74668195
)

// beta is energy.Beta under this package's own name, since every rate
// expression in enumerate.go and fire.go reads it unqualified alongside
// energy.RateH/RateM/RateD.
const beta = energy.Beta

// BuildNucleationTable precomputes pnuc[4..n) per spec.md §4.6.1. Index
// 0..3 are left zero since chord lengths below 5 never nucleate
// (spec.md §8's boundary behavior).
func BuildNucleationTable(n int) []float64 {
	pnuc := make([]float64, n)
	for chord := 4; chord < n; chord++ {
		x := nucC * float64(chord-1)
		var e float64
		if x <= 4 {
			e = math.Exp(-7.027/x + 0.492*x)
			pnuc[chord] = (nucC2 * nucC2 / beta) * e
		} else {
			inv := 1 / x
			e = 1 - 0.625*inv - 0.1234375*inv*inv
			pnuc[chord] = (nucC2 * inv * inv / beta) * e
		}
	}
	return pnuc
}
