package params

// rawParams holds energies exactly as laid out in a Turner-format
// parameter file: indexed by BasePairType (7 rows, NoPair excluded from
// storage but reserved as index -1) and by the file's 5-wide nucleotide
// axis (index 0 is the file's "N"/unknown sentinel, 1..4 are A,C,G,U).
// All values are hundredths of kcal/mol, matching the file's units;
// Build divides by 100 while expanding into the nucleotide-indexed
// form the engine consumes.
//
// Grounded on _examples/bebop-poly/mfe/mfe.go's rawEnergyParams and the
// section layout its rawEnergyParamsFromFile scans for.
type rawParams struct {
	Stack            [7][7]int
	StackEnthalpies  [7][7]int
	MismatchHairpin  [7][5][5]int
	MismatchInterior [7][5][5]int
	MismatchMulti    [7][5][5]int
	MismatchExterior [7][5][5]int
	Dangle5          [7][5]int
	Dangle3          [7][5]int
	Int11            [7][7][5][5]int
	Int21            [7][7][5][5][5]int
	Int22            [7][7][5][5][5][5]int
	Hairpin          [31]int
	Bulge            [31]int
	Interior         [31]int
	Ninio            [3]int
	MLParams         [6]int
	Misc             [4]float64
	Triloops         map[string]int
	Tetraloops       map[string]int
	Hexaloops        map[string]int
}

func newRawParams() *rawParams {
	return &rawParams{
		Triloops:   make(map[string]int),
		Tetraloops: make(map[string]int),
		Hexaloops:  make(map[string]int),
	}
}

// fileNucleotideIndex maps a 0-based nucleotide code (A=0..U=3) to the
// file's 1-based nucleotide axis (0 reserved for "N").
func fileNucleotideIndex(code int) int {
	return code + 1
}
