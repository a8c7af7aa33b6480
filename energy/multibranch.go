package energy

import (
	"math"

	"github.com/foldkinetics/kfold/params"
)

// MultibranchLoop carries exactly the fields energy.Multibranch needs
// from a fold.Structure loop record, so this package stays independent
// of fold's concrete loop type.
type MultibranchLoop struct {
	NHlx     int
	NSgl     int
	SideSgl  []int
	ClosingPairs [][2]int // (5' nt, 3' nt) of each incident closing pair, for AU/GU penalties
}

// Multibranch computes the composite multi-branch-loop energy for a
// loop, per spec.md §4.2's emulti. isExternal forces the classic
// nsgl-based scoring regardless of model, per the resolution of the
// open question in DESIGN.md ("the source does not apply asymmetry
// externally").
func Multibranch(table *params.Table, seq []int, loop MultibranchLoop, model params.MBLModel, isExternal bool) float64 {
	var e float64
	switch {
	case model == params.MBLAsymmetry && !isExternal:
		abar := asymmetryScore(loop.SideSgl, loop.NHlx)
		e = table.MBLinit[0] + table.MBLinit[1]*abar + table.MBLinit[2]*float64(loop.NHlx)
		if loop.NHlx == 3 && loop.NSgl < 2 {
			e += table.MBLinit[4]
		}
	case loop.NSgl <= 6:
		e = table.MBLinit[0] + table.MBLinit[1]*float64(loop.NSgl) + table.MBLinit[2]*float64(loop.NHlx)
	default:
		e = table.MBLinit[0] + 6*table.MBLinit[1] + table.MBLinit[2]*float64(loop.NHlx) +
			kTLnOnePointSevenFive*math.Log(float64(loop.NSgl)/6.0)
	}

	for _, cp := range loop.ClosingPairs {
		e += terminalAUPenalty(table, seq, cp[0], cp[1])
	}

	return e
}

// asymmetryScore computes ā = min(2, Σ|side_sgl[k]-side_sgl[k-1]|/nhlx),
// the stiffness proxy of spec.md §4.2 / GLOSSARY "Asymmetry (of a loop)".
func asymmetryScore(sideSgl []int, nhlx int) float64 {
	if nhlx == 0 || len(sideSgl) < 2 {
		return 0
	}
	var sum int
	for k := 1; k < len(sideSgl); k++ {
		sum += absIntUnsigned(sideSgl[k] - sideSgl[k-1])
	}
	abar := float64(sum) / float64(nhlx)
	if abar > 2 {
		return 2
	}
	return abar
}

func absIntUnsigned(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
