package voting

import (
	"context"
	"math/big"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Permutations walked between context checks and progress reports.
const shapleyBatch = 1 << 16

// ShapleyBrute computes the Shapley-Shubik power index by exhaustive
// permutation enumeration. Each of the n! orderings is walked once,
// accumulating weight until the running total reaches the quota; the
// player that tips it over is the pivot for that ordering and the rest of
// the ordering is skipped. Shares are pivotal counts normalized by n!.
//
// The scan is O(n! * n) and refuses games above the configured ceiling
// (DefaultMaxPermutationPlayers) with an *OverflowError; use ShapleyDP
// for larger games. Orderings are partitioned across workers by their
// first player, each worker tallying into its own count vector.
func ShapleyBrute(ctx context.Context, g *Game, opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	n := g.Players()
	if n > cfg.maxPerm {
		return nil, &OverflowError{Engine: "shapley-brute", Players: n, Limit: cfg.maxPerm}
	}

	total := permutationCount(n)

	workers := cfg.workers
	if workers > n {
		workers = n
	}

	var done atomic.Uint64
	report := func(delta uint64) {}
	if cfg.progress != nil {
		report = func(delta uint64) {
			cfg.progress(done.Add(delta), total)
		}
	}

	group, ctx := errgroup.WithContext(ctx)
	partials := make([][]int64, workers)

	for w := 0; w < workers; w++ {
		counts := make([]int64, n)
		partials[w] = counts

		// Round-robin assignment of first players to workers.
		var firsts []int
		for f := w; f < n; f += workers {
			firsts = append(firsts, f)
		}

		group.Go(func() error {
			return shapleyWorker(ctx, g, firsts, counts, report)
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

// shapleyWorker enumerates every ordering that starts with one of the
// given first players and tallies the pivot of each. The orderings of the
// remaining n-1 players are generated iteratively with Heap's algorithm,
// so no recursion depth or intermediate collections are involved.
func shapleyWorker(ctx context.Context, g *Game, firsts []int, counts []int64, report func(uint64)) error {
	n := g.Players()
	quota := g.quota
	weights := g.weights

	rest := make([]int, n-1)
	ctrl := make([]int, n-1)
	sinceCheck := uint64(0)

	for _, f := range firsts {
		k := 0
		for p := 0; p < n; p++ {
			if p != f {
				rest[k] = p
				k++
			}
		}
		for i := range ctrl {
			ctrl[i] = 0
		}

		tally := func() {
			cum := weights[f]
			if cum >= quota {
				counts[f]++
				return
			}
			for _, p := range rest {
				cum += weights[p]
				if cum >= quota {
					counts[p]++
					return
				}
			}
			// Quota unreachable: no pivot in this ordering.
		}

		tally()
		sinceCheck++

		// Iterative Heap's algorithm over rest.
		i := 0
		for i < len(rest) {
			if ctrl[i] < i {
				if i%2 == 0 {
					rest[0], rest[i] = rest[i], rest[0]
				} else {
					rest[ctrl[i]], rest[i] = rest[i], rest[ctrl[i]]
				}
				ctrl[i]++
				i = 0

				if sinceCheck >= shapleyBatch {
					select {
					case <-ctx.Done():
						return ctx.Err()
					default:
					}
					report(sinceCheck)
					sinceCheck = 0
				}
				tally()
				sinceCheck++
			} else {
				ctrl[i] = 0
				i++
			}
		}
	}
	report(sinceCheck)
	return nil
}

// permutationCount returns n! as a uint64. Callers guard n against the
// permutation ceiling first, so this cannot overflow in practice.
func permutationCount(n int) uint64 {
	f := new(big.Int).MulRange(1, int64(n))
	return f.Uint64()
}
