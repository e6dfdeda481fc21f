package phasing

import (
	"errors"
	"fmt"

	p "github.com/lithium3141/HaplotypeInference/models/phasing"
)

var (
	ErrIterationLimit = errors.New("iteration limit exceeded")
	ErrNoProgress     = errors.New("consecutive escalations made no forward progress")
)

// NonConvergenceError aborts a run that cannot reach full coverage.
// Reason is ErrIterationLimit or ErrNoProgress.
type NonConvergenceError struct {
	State      p.State
	Reason     error
	Iterations int
	Haplotypes int
	Generated  int
	Genotypes  int
}

func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("%s after %d run(s): haplotype list has %d entries and generates %d of %d genotypes",
		e.Reason, e.Iterations, e.Haplotypes, e.Generated, e.Genotypes)
}

func (e *NonConvergenceError) Unwrap() error {
	return e.Reason
}
