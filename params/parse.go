package params

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrParameterFileMalformed is returned for any parameter file that is
// missing an expected section, contains a non-numeric cell, or supplies
// the wrong number of values for a section (spec.md §7).
var ErrParameterFileMalformed = errors.New("params: parameter file malformed")

const fileHeader = "## RNAfold parameter file v2.0"

// ParseFile reads and builds a Table from the Turner/Andronescu-style
// parameter file at path.
func ParseFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("params: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// lineSource is a bufio.Scanner with one line of pushback, so a
// section's value reader can look one line ahead to find its terminator
// (the next "# section" header, or EOF) without eating it.
type lineSource struct {
	scanner  *bufio.Scanner
	buf      string
	buffered bool
}

func newLineSource(r io.Reader) *lineSource {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &lineSource{scanner: s}
}

func (ls *lineSource) next() (string, bool) {
	if ls.buffered {
		ls.buffered = false
		return ls.buf, true
	}
	if !ls.scanner.Scan() {
		return "", false
	}
	return ls.scanner.Text(), true
}

func (ls *lineSource) pushback(line string) {
	ls.buf = line
	ls.buffered = true
}

// Parse reads a Turner/Andronescu-style parameter file and builds a
// Table. Grounded on _examples/bebop-poly/mfe/mfe.go's
// rawEnergyParamsFromFile: a scanner walk recognizing
// "## RNAfold parameter file v2.0" and "# <section>" markers, dispatching
// each section's grid to a shape-specific reader.
func Parse(r io.Reader) (*Table, error) {
	ls := newLineSource(r)

	header, ok := ls.next()
	if !ok {
		return nil, fmt.Errorf("%w: empty file", ErrParameterFileMalformed)
	}
	if strings.TrimSpace(header) != fileHeader {
		return nil, fmt.Errorf("%w: missing header %q", ErrParameterFileMalformed, fileHeader)
	}

	raw := newRawParams()
	var sawStack bool

	for {
		line, ok := ls.next()
		if !ok {
			break
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "/*") {
			continue
		}
		if trimmed == "# END" {
			break
		}
		if !strings.HasPrefix(trimmed, "#") {
			continue
		}
		var section string
		if _, err := fmt.Sscanf(trimmed, "# %255s", &section); err != nil {
			return nil, fmt.Errorf("%w: unreadable section header %q", ErrParameterFileMalformed, trimmed)
		}

		var err error
		switch section {
		case "stack":
			err = read2D(ls, &raw.Stack)
			sawStack = true
		case "stack_enthalpies":
			err = read2D(ls, &raw.StackEnthalpies)
		case "mismatch_hairpin":
			err = read3D(ls, &raw.MismatchHairpin)
		case "mismatch_hairpin_enthalpies":
			err = skipGrid(ls, 7*5*5)
		case "mismatch_interior":
			err = read3D(ls, &raw.MismatchInterior)
		case "mismatch_interior_enthalpies":
			err = skipGrid(ls, 7*5*5)
		case "mismatch_multi":
			err = read3D(ls, &raw.MismatchMulti)
		case "mismatch_multi_enthalpies":
			err = skipGrid(ls, 7*5*5)
		case "mismatch_exterior":
			err = read3D(ls, &raw.MismatchExterior)
		case "mismatch_exterior_enthalpies":
			err = skipGrid(ls, 7*5*5)
		case "dangle5":
			err = read2D5(ls, &raw.Dangle5)
		case "dangle5_enthalpies":
			err = skipGrid(ls, 7*5)
		case "dangle3":
			err = read2D5(ls, &raw.Dangle3)
		case "dangle3_enthalpies":
			err = skipGrid(ls, 7*5)
		case "int11":
			err = readInt11(ls, raw)
		case "int11_enthalpies":
			err = skipGrid(ls, 7*7*5*5)
		case "int21":
			err = readInt21(ls, raw)
		case "int21_enthalpies":
			err = skipGrid(ls, 7*7*5*5*5)
		case "int22":
			err = readInt22(ls, raw)
		case "int22_enthalpies":
			err = skipGrid(ls, 7*7*5*5*5*5)
		case "hairpin":
			err = readVector31(ls, &raw.Hairpin)
		case "hairpin_enthalpies":
			err = skipGrid(ls, 31)
		case "bulge":
			err = readVector31(ls, &raw.Bulge)
		case "bulge_enthalpies":
			err = skipGrid(ls, 31)
		case "interior":
			err = readVector31(ls, &raw.Interior)
		case "interior_enthalpies":
			err = skipGrid(ls, 31)
		case "NINIO":
			err = readInts(ls, raw.Ninio[:])
		case "Misc":
			err = readFloats(ls, raw.Misc[:])
		case "ML_params":
			err = readInts(ls, raw.MLParams[:])
		case "Triloops":
			err = readLoopBonuses(ls, raw.Triloops, 5)
		case "Tetraloops":
			err = readLoopBonuses(ls, raw.Tetraloops, 6)
		case "Hexaloops":
			err = readLoopBonuses(ls, raw.Hexaloops, 8)
		default:
			// unrecognized sections are skipped, per spec.md §6.
		}
		if err != nil {
			return nil, fmt.Errorf("%w: section %s: %v", ErrParameterFileMalformed, section, err)
		}
	}
	if err := ls.scanner.Err(); err != nil {
		return nil, fmt.Errorf("params: reading parameter file: %w", err)
	}
	if !sawStack {
		return nil, fmt.Errorf("%w: missing required section \"stack\"", ErrParameterFileMalformed)
	}

	return Build(raw), nil
}

// tokenStream pulls whitespace-separated numeric tokens across lines,
// skipping blank and comment ("/*") lines, stopping (without consuming)
// at the next "# section" header. This mirrors the teacher's
// parseParamValues, which likewise does not assume one row per line.
type tokenStream struct {
	ls      *lineSource
	pending []string
}

func (ts *tokenStream) next() (string, bool) {
	for len(ts.pending) == 0 {
		line, ok := ts.ls.next()
		if !ok {
			return "", false
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "/*") {
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			ts.ls.pushback(line)
			return "", false
		}
		ts.pending = strings.Fields(trimmed)
	}
	tok := ts.pending[0]
	ts.pending = ts.pending[1:]
	return tok, true
}

func readN(ls *lineSource, n int) ([]int, error) {
	ts := &tokenStream{ls: ls}
	out := make([]int, 0, n)
	for len(out) < n {
		tok, ok := ts.next()
		if !ok {
			return nil, fmt.Errorf("expected %d values, got %d", n, len(out))
		}
		if tok == "inf" || tok == "INF" || tok == "DEF" {
			out = append(out, int(bigPenalty*100))
			continue
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("non-numeric cell %q: %w", tok, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func skipGrid(ls *lineSource, n int) error {
	_, err := readN(ls, n)
	return err
}

// read2D reads a flat 7*7 grid, row-major, into dst.
func read2D(ls *lineSource, dst *[7][7]int) error {
	vals, err := readN(ls, 7*7)
	if err != nil {
		return err
	}
	k := 0
	for i := 0; i < 7; i++ {
		for j := 0; j < 7; j++ {
			dst[i][j] = vals[k]
			k++
		}
	}
	return nil
}

// read2D5 reads a flat 7*5 grid, row-major, into dst.
func read2D5(ls *lineSource, dst *[7][5]int) error {
	vals, err := readN(ls, 7*5)
	if err != nil {
		return err
	}
	k := 0
	for i := 0; i < 7; i++ {
		for j := 0; j < 5; j++ {
			dst[i][j] = vals[k]
			k++
		}
	}
	return nil
}

// read3D reads a flat 7*5*5 grid, row-major, into dst.
func read3D(ls *lineSource, dst *[7][5][5]int) error {
	vals, err := readN(ls, 7*5*5)
	if err != nil {
		return err
	}
	k := 0
	for i := 0; i < 7; i++ {
		for j := 0; j < 5; j++ {
			for l := 0; l < 5; l++ {
				dst[i][j][l] = vals[k]
				k++
			}
		}
	}
	return nil
}

func readInt11(ls *lineSource, raw *rawParams) error {
	vals, err := readN(ls, 7*7*5*5)
	if err != nil {
		return err
	}
	k := 0
	for a := 0; a < 7; a++ {
		for b := 0; b < 7; b++ {
			for x := 0; x < 5; x++ {
				for y := 0; y < 5; y++ {
					raw.Int11[a][b][x][y] = vals[k]
					k++
				}
			}
		}
	}
	return nil
}

func readInt21(ls *lineSource, raw *rawParams) error {
	vals, err := readN(ls, 7*7*5*5*5)
	if err != nil {
		return err
	}
	k := 0
	for a := 0; a < 7; a++ {
		for b := 0; b < 7; b++ {
			for x := 0; x < 5; x++ {
				for y := 0; y < 5; y++ {
					for z := 0; z < 5; z++ {
						raw.Int21[a][b][x][y][z] = vals[k]
						k++
					}
				}
			}
		}
	}
	return nil
}

func readInt22(ls *lineSource, raw *rawParams) error {
	vals, err := readN(ls, 7*7*5*5*5*5)
	if err != nil {
		return err
	}
	k := 0
	for a := 0; a < 7; a++ {
		for b := 0; b < 7; b++ {
			for x := 0; x < 5; x++ {
				for y := 0; y < 5; y++ {
					for z := 0; z < 5; z++ {
						for w := 0; w < 5; w++ {
							raw.Int22[a][b][x][y][z][w] = vals[k]
							k++
						}
					}
				}
			}
		}
	}
	return nil
}

func readVector31(ls *lineSource, dst *[31]int) error {
	vals, err := readN(ls, 31)
	if err != nil {
		return err
	}
	copy(dst[:], vals)
	return nil
}

func readInts(ls *lineSource, dst []int) error {
	vals, err := readN(ls, len(dst))
	if err != nil {
		return err
	}
	copy(dst, vals)
	return nil
}

func readFloats(ls *lineSource, dst []float64) error {
	ts := &tokenStream{ls: ls}
	for i := range dst {
		tok, ok := ts.next()
		if !ok {
			return fmt.Errorf("expected %d values, got %d", len(dst), i)
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return fmt.Errorf("non-numeric cell %q: %w", tok, err)
		}
		dst[i] = v
	}
	return nil
}

// readLoopBonuses reads "<key> <dG> <dH>" triplets until a line that
// does not start with a valid key of length keyLen, or a section
// boundary, is reached.
func readLoopBonuses(ls *lineSource, dst map[string]int, keyLen int) error {
	for {
		line, ok := ls.next()
		if !ok {
			return nil
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "/*") {
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			ls.pushback(line)
			return nil
		}
		fields := strings.Fields(trimmed)
		if len(fields) < 2 || len(fields[0]) != keyLen || !isACGU(fields[0]) {
			ls.pushback(line)
			return nil
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("%s: non-numeric dG %q: %w", fields[0], fields[1], err)
		}
		dst[fields[0]] = v
	}
}

func isACGU(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A', 'C', 'G', 'U':
		default:
			return false
		}
	}
	return true
}
