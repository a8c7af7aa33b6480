package fold

import (
	"errors"
	"fmt"
)

// Sentinel error kinds, per spec.md §7.
var (
	ErrInvalidSequence        = errors.New("fold: invalid sequence")
	ErrUnbalancedStructure    = errors.New("fold: unbalanced dot-bracket structure")
	ErrSequenceTooLong        = errors.New("fold: sequence exceeds maximum length")
	ErrParameterFileMalformed = errors.New("fold: parameter file malformed")
)

// InvariantViolation marks a programming error detected at runtime
// inside the SSA loop (pair asymmetry, loop-count mismatch, partial-sum
// drift), distinguished from ordinary construction-time errors per
// spec.md §7. It is never expected in correct operation; a caller that
// receives one should abort the trajectory rather than attempt repair.
type InvariantViolation struct {
	Invariant string
	Detail    string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("fold: invariant violated (%s): %s", e.Invariant, e.Detail)
}

func violate(invariant, format string, args ...interface{}) error {
	return &InvariantViolation{Invariant: invariant, Detail: fmt.Sprintf(format, args...)}
}
