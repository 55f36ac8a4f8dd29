package voting

import "runtime"

// Default player ceilings for the brute-force engines. Banzhaf scans
// 2^n coalitions and Shapley-Shubik brute scans n! orderings, so both
// refuse larger games instead of running unbounded.
const (
	DefaultMaxBrutePlayers       = 20
	DefaultMaxPermutationPlayers = 12
)

// Worker count is capped; past this the scans are memory-bound and extra
// goroutines stop paying for themselves.
const maxWorkers = 8

// Option configures an engine invocation.
type Option func(*config)

type config struct {
	workers  int
	maxBrute int
	maxPerm  int
	progress func(done, total uint64)
}

func newConfig(opts []Option) config {
	cfg := config{
		workers:  defaultWorkers(),
		maxBrute: DefaultMaxBrutePlayers,
		maxPerm:  DefaultMaxPermutationPlayers,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func defaultWorkers() int {
	w := runtime.NumCPU()
	if w > maxWorkers {
		w = maxWorkers
	}
	return w
}

// WithWorkers sets the number of parallel workers. Use 1 for a fully
// sequential scan. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(cfg *config) {
		if n >= 1 {
			cfg.workers = n
		}
	}
}

// WithMaxBrutePlayers overrides the player ceiling for the Banzhaf
// coalition scan.
func WithMaxBrutePlayers(n int) Option {
	return func(cfg *config) {
		if n >= 1 {
			cfg.maxBrute = n
		}
	}
}

// WithMaxPermutationPlayers overrides the player ceiling for the
// Shapley-Shubik permutation scan.
func WithMaxPermutationPlayers(n int) Option {
	return func(cfg *config) {
		if n >= 1 {
			cfg.maxPerm = n
		}
	}
}

// WithProgress registers a callback invoked periodically during long
// scans with the number of units processed so far and the total. The
// callback may be invoked from multiple workers concurrently.
func WithProgress(fn func(done, total uint64)) Option {
	return func(cfg *config) {
		cfg.progress = fn
	}
}
