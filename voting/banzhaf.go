package voting

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Masks processed between context checks and progress reports.
const banzhafBatch = 1 << 14

// Banzhaf computes the Banzhaf power index by exhaustive coalition
// enumeration. Every non-empty subset of players is visited as a bitmask;
// in each winning coalition, every player whose removal drops the weight
// below the quota is counted as critical. Shares are the per-player
// critical counts normalized by the total across players.
//
// The scan is O(2^n * n) and refuses games above the configured player
// ceiling (DefaultMaxBrutePlayers) with an *OverflowError. The bitmask
// range is partitioned across workers, each tallying into its own count
// vector, merged once all workers finish.
func Banzhaf(ctx context.Context, g *Game, opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	n := g.Players()
	if n > cfg.maxBrute {
		return nil, &OverflowError{Engine: "banzhaf", Players: n, Limit: cfg.maxBrute}
	}

	// Masks 1 .. 2^n-1, the non-empty coalitions.
	first := uint64(1)
	last := uint64(1) << uint(n)
	span := last - first

	workers := uint64(cfg.workers)
	if workers > span {
		workers = span
	}

	var done atomic.Uint64
	report := func(delta uint64) {}
	if cfg.progress != nil {
		report = func(delta uint64) {
			cfg.progress(done.Add(delta), span)
		}
	}

	group, ctx := errgroup.WithContext(ctx)
	partials := make([][]int64, workers)
	per := span / workers
	rem := span % workers

	lo := first
	for w := uint64(0); w < workers; w++ {
		size := per
		if w < rem {
			size++
		}
		counts := make([]int64, n)
		partials[w] = counts
		start, end := lo, lo+size
		lo = end

		group.Go(func() error {
			return banzhafWorker(ctx, g, start, end, counts, report)
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	merged := make([]int64, n)
	for _, counts := range partials {
		for i, c := range counts {
			merged[i] += c
		}
	}
	return newResult(countsFromInt64(merged)), nil
}

// banzhafWorker scans the coalition bitmasks in [start, end), tallying
// critical players into counts. The context is checked between batches.
func banzhafWorker(ctx context.Context, g *Game, start, end uint64, counts []int64, report func(uint64)) error {
	n := g.Players()
	quota := g.quota
	weights := g.weights

	sinceCheck := uint64(0)
	for mask := start; mask < end; mask++ {
		if sinceCheck >= banzhafBatch {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			report(sinceCheck)
			sinceCheck = 0
		}
		sinceCheck++

		sum := 0
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				sum += weights[i]
			}
		}
		if sum < quota {
			continue
		}
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 && sum-weights[i] < quota {
				counts[i]++
			}
		}
	}
	report(sinceCheck)
	return nil
}
