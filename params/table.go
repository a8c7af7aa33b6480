package params

import "math"

// ln(1.75), the factor of the log-extrapolation slope used once a loop
// exceeds its tabulated size range (spec.md §4.1, §4.2's `emulti`
// long-loop branch); it is not scaled by kT here.
const lnOnePointSevenFive = 0.5596157879354227 // math.Log(1.75)

// Table is the fully expanded, nucleotide-indexed thermodynamic
// parameter store consumed by package energy, shaped exactly per
// spec.md §4.1. It is built once from a rawParams by Build and is
// immutable afterward, safe to share across concurrent readers.
type Table struct {
	Stack  [4][4][4][4]float64 // dG_stack
	StackH [4][4][4][4]float64 // dG_stackh: first-mismatch stack over a hairpin closure
	StackI [4][4][4][4]float64 // dG_stacki: first-mismatch stack over an internal loop

	Dangle3 [4][4][4]float64 // dG_dangle3
	Dangle5 [4][4][4]float64 // dG_dangle5

	Int11 [4][4][4][4][4][4]float64       // dG_int11, 4^6
	Int21 [4][4][4][4][4][4][4]float64     // dG_int21, 4^7
	Int22 [4][4][4][4][4][4][4][4]float64  // dG_int22, 4^8

	Hloop [31]float64 // dG_hloop[1..30], index 0 unused
	Bulge [31]float64 // dG_bulge[1..30]
	Iloop [31]float64 // dG_iloop[1..30]

	Triloops   map[string]float64 // keyed by 5-mer closure sequence
	Tetraloops map[string]float64 // keyed by 6-mer closure sequence
	Hexaloops  map[string]float64 // keyed by 8-mer closure sequence

	AU      float64    // dG_AU: terminal A-U/G-U penalty
	Asym    [6]float64 // dG_asym[0..5]: interior-loop asymmetry penalty by min(n1,n2,5)
	MaxAsym float64    // dG_maxasym
	Bonuses [6]float64 // dG_bonuses[0..5]: polyC / GGG closure bonuses

	MBLinit [5]float64 // a, b, c, d, dG_strain

	LogExtrapolationConstant float64 // ln(1.75) as set by Build, not scaled by kT or β
}

const bigPenalty = 1e6 // disallowed pair/size combination, never selected by a real move

func cell2(t [7][5][5]int, bp BasePairType, x, y int) float64 {
	if bp == NoPair {
		return bigPenalty
	}
	return float64(t[bp][fileNucleotideIndex(x)][fileNucleotideIndex(y)]) / 100.0
}

// Build expands a rawParams (as parsed from a file, base-pair-type
// indexed) into the nucleotide-indexed Table the engine consumes.
func Build(raw *rawParams) *Table {
	t := &Table{
		Triloops:   make(map[string]float64, len(raw.Triloops)),
		Tetraloops: make(map[string]float64, len(raw.Tetraloops)),
		Hexaloops:  make(map[string]float64, len(raw.Hexaloops)),
	}

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			bpIJ := PairType(i, j)
			for ip := 0; ip < 4; ip++ {
				for jp := 0; jp < 4; jp++ {
					bpIpJp := PairType(ip, jp)
					stack := bigPenalty
					if bpIJ != NoPair && bpIpJp != NoPair {
						stack = float64(raw.Stack[bpIJ][bpIpJp]) / 100.0
					}
					t.Stack[i][j][ip][jp] = stack
					t.StackH[i][j][ip][jp] = cell2(raw.MismatchHairpin, bpIJ, ip, jp)
					t.StackI[i][j][ip][jp] = cell2(raw.MismatchInterior, bpIJ, ip, jp)
				}
			}
			for k := 0; k < 4; k++ {
				if bpIJ == NoPair {
					t.Dangle3[i][j][k] = 0
					t.Dangle5[i][j][k] = 0
					continue
				}
				t.Dangle3[i][j][k] = float64(raw.Dangle3[bpIJ][fileNucleotideIndex(k)]) / 100.0
				t.Dangle5[i][j][k] = float64(raw.Dangle5[bpIJ][fileNucleotideIndex(k)]) / 100.0
			}
		}
	}

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			bp1 := PairType(i, j)
			for ip := 0; ip < 4; ip++ {
				for jp := 0; jp < 4; jp++ {
					bp2 := PairType(ip, jp)
					for x := 0; x < 4; x++ {
						for y := 0; y < 4; y++ {
							if bp1 == NoPair || bp2 == NoPair {
								t.Int11[i][j][ip][jp][x][y] = bigPenalty
								continue
							}
							t.Int11[i][j][ip][jp][x][y] =
								float64(raw.Int11[bp1][bp2][fileNucleotideIndex(x)][fileNucleotideIndex(y)]) / 100.0
							for z := 0; z < 4; z++ {
								if bp1 == NoPair || bp2 == NoPair {
									t.Int21[i][j][ip][jp][x][y][z] = bigPenalty
									for w := 0; w < 4; w++ {
										t.Int22[i][j][ip][jp][x][y][z][w] = bigPenalty
									}
									continue
								}
								t.Int21[i][j][ip][jp][x][y][z] =
									float64(raw.Int21[bp1][bp2][fileNucleotideIndex(x)][fileNucleotideIndex(y)][fileNucleotideIndex(z)]) / 100.0
								for w := 0; w < 4; w++ {
									t.Int22[i][j][ip][jp][x][y][z][w] =
										float64(raw.Int22[bp1][bp2][fileNucleotideIndex(x)][fileNucleotideIndex(y)][fileNucleotideIndex(z)][fileNucleotideIndex(w)]) / 100.0
								}
							}
						}
					}
				}
			}
		}
	}

	for n := 1; n <= 30; n++ {
		t.Hloop[n] = float64(raw.Hairpin[n]) / 100.0
		t.Bulge[n] = float64(raw.Bulge[n]) / 100.0
		t.Iloop[n] = float64(raw.Interior[n]) / 100.0
	}

	for k, v := range raw.Triloops {
		t.Triloops[k] = float64(v) / 100.0
	}
	for k, v := range raw.Tetraloops {
		t.Tetraloops[k] = float64(v) / 100.0
	}
	for k, v := range raw.Hexaloops {
		t.Hexaloops[k] = float64(v) / 100.0
	}

	t.AU = float64(raw.Misc[0])
	for i := range t.Asym {
		// The grid format carries no separate 0..5 asymmetry axis, so
		// each Asym[i] is derived from the NINIO per-nucleotide penalty
		// (Ninio[0]) scaled by i+1 rather than read verbatim.
		t.Asym[i] = float64(raw.Ninio[0]) / 100.0 * float64(i+1)
	}
	t.MaxAsym = float64(raw.Ninio[2]) / 100.0
	t.Bonuses = [6]float64{0, 0, -0.9, -0.9, -0.9, -0.9}

	for i := 0; i < 5 && i < len(raw.MLParams); i++ {
		t.MBLinit[i] = float64(raw.MLParams[i]) / 100.0
	}

	t.LogExtrapolationConstant = lnOnePointSevenFive

	return t
}

// ExtrapolateLoop returns the size-n energy for a table sized [1..30],
// extrapolating per spec.md §4.1 beyond the tabulated range:
// V[30] + (kT·ln1.75)·ln(n/30).
func ExtrapolateLoop(table [31]float64, n int, kTLnOnePointSevenFive float64) float64 {
	if n <= 0 {
		return 0
	}
	if n <= 30 {
		return table[n]
	}
	return table[30] + kTLnOnePointSevenFive*math.Log(float64(n)/30.0)
}
