package energy

import "github.com/foldkinetics/kfold/params"

// Bulge computes the bulge/interior-loop energy between an outer pair
// (i,j) and an inner pair (ip,jp), per spec.md §4.2's ebulge. n1 =
// ip-i-1 unpaired nucleotides on the 5' side, n2 = j-jp-1 on the 3'
// side. Grounded on _examples/bebop-poly/mfe/mfe.go's
// evaluateStackBulgeInteriorLoop, which dispatches on exactly these
// seven (n1,n2) shapes.
func Bulge(table *params.Table, seq []int, i, j, ip, jp int) float64 {
	n1 := ip - i - 1
	n2 := j - jp - 1

	switch {
	case n1 == 0 && n2 == 0:
		// Not a bulge: the caller should have used Stack directly.
		return Stack(table, seq, i, j, ip, jp)

	case (n1 == 1 && n2 == 0) || (n1 == 0 && n2 == 1):
		return Stack(table, seq, i, j, ip, jp) + extrapolate(table.Bulge, 1)

	case n1 == 0 || n2 == 0:
		nt := n1
		if n2 > nt {
			nt = n2
		}
		return extrapolate(table.Bulge, nt) +
			terminalAUPenalty(table, seq, i, j) +
			terminalAUPenalty(table, seq, jp, ip)

	case n1 == 1 && n2 == 1:
		return interior11(table, seq, i, j, ip, jp)

	case n1 == 1 && n2 == 2:
		return interior12(table, seq, i, j, ip, jp)

	case n1 == 2 && n2 == 1:
		// "Applied to reversed orientation": treat (jp,ip) as the
		// 5'-leading pair of a 1x2 loop walked the other way around.
		return interior12(table, seq, jp, ip, j, i)

	case n1 == 2 && n2 == 2:
		return interior22(table, seq, i, j, ip, jp)

	default:
		return interiorGeneric(table, seq, i, j, ip, jp, n1, n2)
	}
}

func interior11(table *params.Table, seq []int, i, j, ip, jp int) float64 {
	return table.Int11[seq[i]][seq[j]][seq[ip]][seq[jp]][seq[i+1]][seq[j-1]]
}

func interior12(table *params.Table, seq []int, i, j, ip, jp int) float64 {
	// i,j is the pair with exactly one unpaired neighbor (at i+1); ip,jp
	// is the pair with two unpaired neighbors (at jp+1 and j-1).
	return table.Int21[seq[i]][seq[j]][seq[ip]][seq[jp]][seq[i+1]][seq[jp+1]][seq[j-1]]
}

func interior22(table *params.Table, seq []int, i, j, ip, jp int) float64 {
	return table.Int22[seq[i]][seq[j]][seq[ip]][seq[jp]][seq[i+1]][seq[i+2]][seq[jp+1]][seq[jp+2]]
}

// interiorGeneric handles every (n1,n2) not special-cased above: the
// size-dependent table plus both flanking first-mismatch stacks plus
// the asymmetry penalty, with the GAIL simplification (spec.md §4.2)
// substituting an A/A mismatch whenever one side carries exactly one
// unpaired nucleotide and the loop is otherwise asymmetric.
func interiorGeneric(table *params.Table, seq []int, i, j, ip, jp, n1, n2 int) float64 {
	nt := n1 + n2
	e := extrapolate(table.Iloop, nt)

	gail := (n1 == 1 || n2 == 1) && (n1 > 2 || n2 > 2)

	outerMi, outerMj := seq[i+1], seq[j-1]
	innerMi, innerMj := seq[jp+1], seq[ip-1]
	if gail {
		if n1 == 1 {
			outerMi = params.A
		}
		if n2 == 1 {
			outerMj = params.A
		}
		innerMi, innerMj = params.A, params.A
	}

	e += table.StackI[seq[i]][seq[j]][outerMi][outerMj]
	e += table.StackI[seq[jp]][seq[ip]][innerMi][innerMj]

	amin := n1
	if n2 < amin {
		amin = n2
	}
	if amin > 5 {
		amin = 5
	}
	asym := table.Asym[amin] * absInt(n1-n2)
	if asym > table.MaxAsym {
		asym = table.MaxAsym
	}
	e += asym

	return e
}

func absInt(n int) float64 {
	if n < 0 {
		return float64(-n)
	}
	return float64(n)
}
