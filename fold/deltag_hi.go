package fold

import "github.com/foldkinetics/kfold/energy"

// DeltaGHelixInternalOpen computes ΔG for opening the single interior
// pair of a helix that currently stacks on both sides, converting
// stack+stack into a 1x1 internal loop, per spec.md §4.4.5. This is the
// simplest of the five operators: it needs no loop lookups at all,
// since neither adjoining loop's topology changes, only the energy of
// the two affected stacking interactions.
func (s *Structure) DeltaGHelixInternalOpen(i, j int) float64 {
	outer := energy.Stack(s.Table, s.Seq, i-1, j+1, i, j)
	inner := energy.Stack(s.Table, s.Seq, i, j, i+1, j-1)
	bulge := energy.Bulge(s.Table, s.Seq, i-1, j+1, i+1, j-1)
	return bulge - outer - inner
}
