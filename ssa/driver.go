package ssa

import (
	"context"
	"fmt"
	"math"

	"github.com/foldkinetics/kfold/fold"
	"github.com/foldkinetics/kfold/secondary"
	"github.com/foldkinetics/kfold/trajectory"
)

// Driver runs the Gillespie loop of spec.md §4.7 against one
// *fold.Structure, writing sampled frames to a *trajectory.Writer. A
// Driver owns its Structure exclusively: spec.md §5's concurrency model
// never shares one across goroutines, so nothing here is safe for
// concurrent use from more than one caller at a time.
type Driver struct {
	Structure *fold.Structure
	RNG       *RNG
	TMax      float64

	time   float64
	ladder *outputLadder
}

// NewDriver constructs a driver ready to Run from time zero.
func NewDriver(s *fold.Structure, seed int32, tmax float64) *Driver {
	return &Driver{
		Structure: s,
		RNG:       NewRNG(seed),
		TMax:      tmax,
		ladder:    newOutputLadder(),
	}
}

// Run executes spec.md §4.7's six-step loop until time exceeds TMax, the
// structure runs out of reactions, or ctx is cancelled, sampling frames
// onto out whenever the logarithmic output ladder comes due.
func (d *Driver) Run(ctx context.Context, out *trajectory.Writer) error {
	if err := d.emit(out); err != nil {
		return err
	}
	for d.time < d.TMax {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		atot := d.Structure.Atot()
		if atot <= 0 {
			break
		}

		r1 := d.RNG.Float64()
		tau := math.Log(1.0/r1) / atot
		d.time += tau

		for d.ladder.due(d.time) {
			if d.ladder.next > d.TMax {
				break
			}
			// Per spec.md §4.7 step 3, the structure sampled at a ladder
			// time is the one that was current just before this step's
			// reaction fires.
			sampleTime := d.ladder.advance()
			if err := d.emitAt(out, sampleTime); err != nil {
				return err
			}
		}
		if d.time > d.TMax {
			d.time = d.TMax
			break
		}

		r2 := d.RNG.Float64()
		if _, err := d.Structure.Fire(r2); err != nil {
			return fmt.Errorf("ssa: fire at t=%v: %w", d.time, err)
		}
	}
	return d.emit(out)
}

func (d *Driver) emit(out *trajectory.Writer) error {
	return d.emitAt(out, d.time)
}

func (d *Driver) emitAt(out *trajectory.Writer, t float64) error {
	db, err := secondary.DotBracket(d.Structure.Pairs)
	if err != nil {
		return fmt.Errorf("ssa: rendering frame at t=%v: %w", t, err)
	}
	return out.WriteFrame(t, db)
}
