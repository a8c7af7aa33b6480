package config

import (
	"fmt"

	"github.com/foldkinetics/kfold/energy"
	"github.com/foldkinetics/kfold/fold"
	"github.com/foldkinetics/kfold/params"
)

// Config is the single run configuration of spec.md §6: a sequence, an
// optional folding window, a replicate count, a time horizon, a PRNG
// seed, a parameter-set selector, and an MBL scoring model. Validate
// checks the folding window against the sequence length; nothing else
// reads FoldStart or FoldStop, so a simulation always covers the whole
// sequence.
type Config struct {
	Seq          string // raw sequence letters, translated to nucleotide codes by fold.New's caller
	FoldStart    int    // fld_start, 0-based inclusive; -1 means "from the beginning"
	FoldStop     int    // fld_stop, 0-based inclusive; -1 means "to the end"
	NSim         int    // number of independent replicate trajectories
	TMax         float64
	Seed         int32
	ParamFile    string                // path to an external parameter file; empty selects a bundled default
	ParamSet     params.EnergyParamsSet // which bundled default to use when ParamFile is empty
	MBLModel     params.MBLModel
	InitialState string // dot-bracket starting structure; empty means fully unpaired
}

// Default returns a Config with spec.md §6's documented defaults: the
// whole sequence as a single fold window, one replicate, classic MBL
// scoring against the Turner 2004 parameter set.
func Default() Config {
	return Config{
		FoldStart: -1,
		FoldStop:  -1,
		NSim:      1,
		TMax:      1.0,
		ParamSet:  params.Turner2004,
		MBLModel:  params.MBLClassic,
	}
}

// Validate reports the first malformed field found, per spec.md §7's
// construction-time error reporting.
func (c Config) Validate() error {
	if len(c.Seq) == 0 {
		return fmt.Errorf("config: sequence must not be empty")
	}
	n := len(c.Seq)
	if n > energy.MaxNt {
		return fmt.Errorf("%w: %d nucleotides, limit %d", fold.ErrSequenceTooLong, n, energy.MaxNt)
	}
	for i := 0; i < n; i++ {
		if _, err := params.EncodeNucleotide(c.Seq[i]); err != nil {
			return fmt.Errorf("%w: position %d: %v", fold.ErrInvalidSequence, i, err)
		}
	}
	if c.FoldStart != -1 && (c.FoldStart < 0 || c.FoldStart >= n) {
		return fmt.Errorf("config: fld_start %d out of range [0,%d)", c.FoldStart, n)
	}
	if c.FoldStop != -1 && (c.FoldStop < 0 || c.FoldStop >= n) {
		return fmt.Errorf("config: fld_stop %d out of range [0,%d)", c.FoldStop, n)
	}
	if c.FoldStart != -1 && c.FoldStop != -1 && c.FoldStart > c.FoldStop {
		return fmt.Errorf("config: fld_start %d exceeds fld_stop %d", c.FoldStart, c.FoldStop)
	}
	if c.NSim < 1 {
		return fmt.Errorf("config: nsim must be at least 1, got %d", c.NSim)
	}
	if c.TMax <= 0 {
		return fmt.Errorf("config: tmax must be positive, got %v", c.TMax)
	}
	switch c.MBLModel {
	case params.MBLClassic, params.MBLAsymmetry:
	default:
		return fmt.Errorf("config: unrecognized mbl_model %d", c.MBLModel)
	}
	return nil
}
