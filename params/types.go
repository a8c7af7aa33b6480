package params

import "fmt"

// Nucleotide codes. The engine consumes only these 0-based codes; parsing
// of external formats may use other conventions but must translate down
// to these before reaching fold or energy.
const (
	A = 0
	C = 1
	G = 2
	U = 3
)

// EncodeNucleotide converts an ASCII base (case-insensitive, with T
// folded to U) into its 0-based code.
func EncodeNucleotide(b byte) (int, error) {
	switch b {
	case 'A', 'a':
		return A, nil
	case 'C', 'c':
		return C, nil
	case 'G', 'g':
		return G, nil
	case 'U', 'u', 'T', 't':
		return U, nil
	default:
		return -1, fmt.Errorf("params: invalid nucleotide byte %q", b)
	}
}

// BasePairType enumerates the six distinguishable Watson-Crick/wobble
// pair identities (plus NoPair) used to index the raw (as-parsed)
// parameter tables, mirroring the layout of real Turner parameter files.
type BasePairType int

const (
	NoPair BasePairType = -1
	CG     BasePairType = 0
	GC     BasePairType = 1
	GU     BasePairType = 2
	UG     BasePairType = 3
	AU     BasePairType = 4
	UA     BasePairType = 5
)

// basePairTypeTable[i][j] gives the BasePairType of the ordered pair
// (i,j) of 0-based nucleotide codes, or NoPair if i and j cannot pair.
// BasePairType zero-values as CG, so this table must be built explicitly
// rather than left to rely on a literal's implicit zero-fill.
var basePairTypeTable [4][4]BasePairType

func init() {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			basePairTypeTable[i][j] = NoPair
		}
	}
	basePairTypeTable[A][U] = AU
	basePairTypeTable[U][A] = UA
	basePairTypeTable[C][G] = CG
	basePairTypeTable[G][C] = GC
	basePairTypeTable[G][U] = GU
	basePairTypeTable[U][G] = UG
}

// PairType reports the BasePairType of nucleotide codes i paired with j,
// or NoPair if the combination cannot form a Watson-Crick or wobble pair.
func PairType(i, j int) BasePairType {
	if i < 0 || i > 3 || j < 0 || j > 3 {
		return NoPair
	}
	return basePairTypeTable[i][j]
}

// IWC reports whether nucleotide codes i and j can form a Watson-Crick or
// G-U wobble pair, the "iwc" predicate referenced throughout spec.md §4.
func IWC(i, j int) bool {
	return PairType(i, j) != NoPair
}

// EnergyParamsSet selects which bundled default parameter table to embed
// when no external parameter file is supplied, matching spec.md §6's
// Configuration table.
type EnergyParamsSet int

const (
	Turner1999 EnergyParamsSet = iota
	Turner2004
	Andronescu2007
)

func (s EnergyParamsSet) String() string {
	switch s {
	case Turner1999:
		return "turner1999"
	case Turner2004:
		return "turner2004"
	case Andronescu2007:
		return "andronescu2007"
	default:
		return fmt.Sprintf("EnergyParamsSet(%d)", int(s))
	}
}

// MBLModel selects the multi-branch loop scoring scheme used by
// energy.Multibranch, a runtime configuration value per spec.md §9, not
// a compile-time choice.
type MBLModel int

const (
	MBLClassic   MBLModel = 1
	MBLAsymmetry MBLModel = 2
)
