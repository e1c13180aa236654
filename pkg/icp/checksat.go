package icp

import "context"

// CheckSat decides whether p's constraints are delta-satisfiable over its
// domain box, to the precision cfg.Precision. cfg.NumberOfJobs selects the
// engine: 1 runs the sequential LIFO search directly on the calling
// goroutine; anything higher runs the shared-stack parallel search with that
// many workers. A count of 0 or below fails cfg.Validate.
func CheckSat(ctx context.Context, p Problem, cfg Config) (Result, SearchStats, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, SearchStats{}, err
	}

	stats := SearchStats{}

	if cfg.NumberOfJobs == 1 {
		result, err := checkSatSequential(ctx, p, cfg, &stats)
		return result, stats, err
	}

	result, err := checkSatParallel(ctx, p, cfg, &stats)

	return result, stats, err
}
