package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/foldkinetics/kfold/config"
	"github.com/foldkinetics/kfold/energy"
	"github.com/foldkinetics/kfold/fold"
	"github.com/foldkinetics/kfold/params"
	"github.com/foldkinetics/kfold/secondary"
	"github.com/foldkinetics/kfold/ssa"
	"github.com/urfave/cli/v2"
)

// foldCommand runs one or more replicate trajectories, per spec.md §6's
// Configuration table, writing "<out>.<replicate>.traj" per replicate.
func foldCommand() *cli.Command {
	return &cli.Command{
		Name:  "fold",
		Usage: "Simulate folding kinetics for a sequence and write trajectory files.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "seq", Required: true, Usage: "RNA/DNA sequence to fold."},
			&cli.StringFlag{Name: "structure", Usage: "Dot-bracket starting structure. Defaults to fully unpaired."},
			&cli.IntFlag{Name: "start", Value: -1, Usage: "0-based fold window start, inclusive. Only checked against the sequence length; the simulation always covers the whole sequence."},
			&cli.IntFlag{Name: "stop", Value: -1, Usage: "0-based fold window stop, inclusive. Only checked against the sequence length; the simulation always covers the whole sequence."},
			&cli.IntFlag{Name: "nsim", Value: 1, Usage: "Number of independent replicate trajectories."},
			&cli.Float64Flag{Name: "tmax", Value: 1.0, Usage: "Simulated time horizon."},
			&cli.StringFlag{Name: "seed", Usage: "PRNG seed: an integer, or any other text to derive one from."},
			&cli.StringFlag{Name: "params", Usage: "Path to an external Turner-format parameter file. Defaults to the bundled Turner 2004 table."},
			&cli.IntFlag{Name: "mbl-model", Value: int(params.MBLClassic), Usage: "Multi-branch loop scoring model: 1=classic, 2=asymmetry."},
			&cli.StringFlag{Name: "o", Value: "trajectory", Usage: "Output file path prefix."},
		},
		Action: func(c *cli.Context) error {
			return foldAction(c)
		},
	}
}

func foldAction(c *cli.Context) error {
	cfg := config.Default()
	cfg.Seq = c.String("seq")
	cfg.FoldStart = c.Int("start")
	cfg.FoldStop = c.Int("stop")
	cfg.NSim = c.Int("nsim")
	cfg.TMax = c.Float64("tmax")
	cfg.ParamFile = c.String("params")
	cfg.MBLModel = params.MBLModel(c.Int("mbl-model"))
	cfg.InitialState = c.String("structure")
	if seedText := c.String("seed"); seedText != "" {
		if n, err := strconv.ParseInt(seedText, 10, 32); err == nil {
			cfg.Seed = int32(n)
		} else {
			cfg.Seed = ssa.DeriveSeed(seedText)
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	table, err := loadTable(cfg)
	if err != nil {
		return err
	}

	seq, err := encodeSequence(cfg.Seq)
	if err != nil {
		return err
	}

	var initialPairs []int
	if cfg.InitialState != "" {
		initialPairs, err = secondary.PairTable(cfg.InitialState)
		if err != nil {
			return err
		}
	} else {
		initialPairs = make([]int, len(seq))
		for i := range initialPairs {
			initialPairs[i] = -1
		}
	}

	s, err := ssa.NewStructure(seq, table, cfg.MBLModel, initialPairs)
	if err != nil {
		return err
	}

	outPrefix := c.String("o")
	return ssa.RunEnsemble(context.Background(), s, initialPairs, cfg.NSim, cfg.TMax,
		func(replicate int) int32 { return cfg.Seed + int32(replicate) },
		func(replicate int) (io.WriteCloser, error) {
			return os.Create(fmt.Sprintf("%s.%d.traj", outPrefix, replicate))
		},
	)
}

// energyCommand is a diagnostic: it scores a single fixed structure and
// optionally breaks the total down loop by loop, useful for sanity-
// checking a parameter file or a hand-built structure without running
// any kinetics at all.
func energyCommand() *cli.Command {
	return &cli.Command{
		Name:  "energy",
		Usage: "Score a fixed structure's total free energy.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "seq", Required: true},
			&cli.StringFlag{Name: "structure", Required: true, Usage: "Dot-bracket structure to score."},
			&cli.StringFlag{Name: "params", Usage: "Path to an external Turner-format parameter file."},
			&cli.IntFlag{Name: "mbl-model", Value: int(params.MBLClassic)},
			&cli.BoolFlag{Name: "print-contributions", Usage: "Print each loop's individual energy contribution."},
		},
		Action: func(c *cli.Context) error {
			return energyAction(c)
		},
	}
}

func energyAction(c *cli.Context) error {
	cfg := config.Default()
	cfg.Seq = c.String("seq")
	cfg.ParamFile = c.String("params")
	cfg.MBLModel = params.MBLModel(c.Int("mbl-model"))

	table, err := loadTable(cfg)
	if err != nil {
		return err
	}
	seq, err := encodeSequence(cfg.Seq)
	if err != nil {
		return err
	}
	pairs, err := secondary.PairTable(c.String("structure"))
	if err != nil {
		return err
	}

	s := fold.New(seq, table, cfg.MBLModel)
	if err := s.LoadPairs(pairs); err != nil {
		return err
	}
	if err := fold.InitLoops(s); err != nil {
		return err
	}

	var total float64
	for _, l := range s.Loops {
		e := loopEnergy(s, l)
		total += e
		if c.Bool("print-contributions") {
			fmt.Printf("loop anchor=%d nhlx=%d nsgl=%d energy=%.4f\n", l.Anchor, l.NHlx, l.NSgl, e)
		}
	}
	fmt.Printf("total %.4f\n", total)
	return nil
}

// loopEnergy scores loop l the same way fold's ΔG operators do when
// reading a loop's standing contribution, re-exposed here since the
// diagnostic command has no helix move to evaluate a delta for.
func loopEnergy(s *fold.Structure, l *fold.Loop) float64 {
	if l.IsExternal {
		return energyMultibranch(s, l, true)
	}
	switch l.NHlx {
	case 1:
		return energy.Hairpin(s.Table, s.Seq, l.ClosingI, l.ClosingJ)
	case 2:
		if oi, oj, ok := otherHelix(l); ok {
			return energy.Bulge(s.Table, s.Seq, l.ClosingI, l.ClosingJ, oi, oj)
		}
		return 0
	default:
		return energyMultibranch(s, l, false)
	}
}

func otherHelix(l *fold.Loop) (int, int, bool) {
	if len(l.Helices) != 2 {
		return 0, 0, false
	}
	for _, h := range l.Helices {
		if h[0] == l.ClosingI && h[1] == l.ClosingJ {
			continue
		}
		return h[0], h[1], true
	}
	return 0, 0, false
}

func energyMultibranch(s *fold.Structure, l *fold.Loop, isExternal bool) float64 {
	return energy.Multibranch(s.Table, s.Seq, energy.MultibranchLoop{
		NHlx:    l.NHlx,
		NSgl:    l.NSgl,
		SideSgl: append([]int(nil), l.SideSgl...),
	}, s.Model, isExternal)
}

func loadTable(cfg config.Config) (*params.Table, error) {
	if cfg.ParamFile != "" {
		return params.ParseFile(cfg.ParamFile)
	}
	return params.Default(cfg.ParamSet)
}

func encodeSequence(seq string) ([]int, error) {
	codes := make([]int, len(seq))
	for i := 0; i < len(seq); i++ {
		code, err := params.EncodeNucleotide(seq[i])
		if err != nil {
			return nil, err
		}
		codes[i] = code
	}
	return codes, nil
}
