package icp

import "fmt"

// BranchingStrategy selects which heuristic picks the dimension to bisect
// among EvaluateBox's candidates.
type BranchingStrategy uint8

const (
	// MaxDiam always bisects the widest candidate dimension.
	MaxDiam BranchingStrategy = iota
	// GradientDescent prefers the candidate dimension whose partial
	// derivative of a representative residual is steepest, falling back
	// to MaxDiam wherever that residual isn't differentiable.
	GradientDescent
)

func (s BranchingStrategy) String() string {
	switch s {
	case GradientDescent:
		return "GradientDescent"
	default:
		return "MaxDiam"
	}
}

// Config configures one CheckSat run.
type Config struct {
	// Precision is delta: the maximum residual width at which a still-
	// Unknown constraint is accepted as satisfied.
	Precision float64
	// NumberOfJobs is the parallel engine's worker count. 1 runs the
	// sequential engine directly; anything higher runs the parallel engine.
	// Validate rejects 0 and negative counts.
	NumberOfJobs int
	// StackLeftBoxFirst is the initial left/right exploration order; it
	// flips after every branch, a cheap DFS-bias breaker.
	StackLeftBoxFirst bool
	// BranchingStrategy selects the bisection heuristic.
	BranchingStrategy BranchingStrategy
	// UsePolytope additionally runs IbexPolytope (a fixpoint of
	// forward-backward revises over the conjunction's affine atoms) each
	// pass.
	UsePolytope bool
	// UseLocalOptimization is carried in the config but read by neither
	// engine nor Validate; there is no local-optimization pass, so it has
	// no effect.
	UseLocalOptimization bool
	// NLoptFtolRel, NLoptFtolAbs, and NLoptMaxTime are carried in the
	// config likewise; the engine never reads them.
	NLoptFtolRel float64
	NLoptFtolAbs float64
	NLoptMaxTime float64
}

// DefaultConfig returns the engine's out-of-the-box settings.
func DefaultConfig() Config {
	return Config{
		Precision:         1e-3,
		NumberOfJobs:      1,
		StackLeftBoxFirst: true,
		BranchingStrategy: MaxDiam,
		UsePolytope:       true,
	}
}

// Validate rejects configurations the engine cannot run with.
func (c Config) Validate() error {
	if c.Precision <= 0 {
		return fmt.Errorf("icp: precision must be positive, got %v", c.Precision)
	}

	if c.NumberOfJobs == 0 {
		return fmt.Errorf("icp: number of jobs must not be zero")
	}

	if c.NumberOfJobs < 0 {
		return fmt.Errorf("icp: number of jobs must not be negative, got %d", c.NumberOfJobs)
	}

	return nil
}
