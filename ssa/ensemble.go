package ssa

import (
	"context"
	"fmt"
	"io"

	"github.com/foldkinetics/kfold/fold"
	"github.com/foldkinetics/kfold/params"
	"github.com/foldkinetics/kfold/trajectory"
)

// NewStructure builds the single *fold.Structure the ensemble runner
// folds every replicate trajectory into, with initialPairs loaded and
// decomposed into loops as the starting state of replicate 0.
func NewStructure(seq []int, table *params.Table, model params.MBLModel, initialPairs []int) (*fold.Structure, error) {
	s := fold.New(seq, table, model)
	if err := s.Reset(initialPairs); err != nil {
		return nil, err
	}
	return s, nil
}

// RunEnsemble runs nsim replicate trajectories against one
// *fold.Structure, one after another. Per spec.md §5, "a simulator
// process hosts exactly one trajectory; multiple trajectories
// (nsim > 1) run sequentially, re-using the allocated buffers" — this
// engine does not parallelise simulations (§1's Non-goals). Replicates
// after the first call s.Reset(initialPairs) to restore the starting
// structure in place rather than allocating a new one.
func RunEnsemble(ctx context.Context, s *fold.Structure, initialPairs []int, nsim int, tmax float64, seedFor func(replicate int) int32, newWriter func(replicate int) (io.WriteCloser, error)) error {
	for replicate := 0; replicate < nsim; replicate++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if replicate > 0 {
			if err := s.Reset(initialPairs); err != nil {
				return fmt.Errorf("ssa: replicate %d: resetting structure: %w", replicate, err)
			}
		}

		if err := runOne(ctx, s, replicate, tmax, seedFor, newWriter); err != nil {
			return err
		}
	}
	return nil
}

func runOne(ctx context.Context, s *fold.Structure, replicate int, tmax float64, seedFor func(replicate int) int32, newWriter func(replicate int) (io.WriteCloser, error)) error {
	wc, err := newWriter(replicate)
	if err != nil {
		return fmt.Errorf("ssa: replicate %d: opening output: %w", replicate, err)
	}
	defer wc.Close()

	tw := trajectory.NewWriter(wc)
	driver := NewDriver(s, seedFor(replicate), tmax)
	if err := driver.Run(ctx, tw); err != nil {
		return fmt.Errorf("ssa: replicate %d: %w", replicate, err)
	}
	if _, err := tw.Close(); err != nil {
		return fmt.Errorf("ssa: replicate %d: closing trajectory: %w", replicate, err)
	}
	return nil
}
