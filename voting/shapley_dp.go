package voting

import (
	"context"
	"math/big"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// The DP tables count subsets of n-1 players in uint64 cells. Subset
// counts are bounded by 2^(n-1), so 63 players is the last size that
// cannot overflow a cell.
const maxDPPlayers = 63

// ShapleyDP computes the Shapley-Shubik power index with a per-player
// subset-sum recurrence instead of factorial enumeration. For every valid
// game it produces exactly the same raw pivotal counts as ShapleyBrute,
// in O(n^2 * quota) time overall.
//
// For each player i, dp[s][t] counts the ways to choose s of the other
// players whose weights sum to exactly t, for t below the quota only;
// larger sums cannot precede a pivot. Player i preceded by such a
// coalition is pivotal exactly when quota-w[i] <= t <= quota-1, and each
// qualifying (s, t) shape accounts for dp[s][t] * s! * (n-s-1)! full
// orderings. The n per-player tables are independent and are computed in
// parallel, one task per player.
func ShapleyDP(ctx context.Context, g *Game, opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	n := g.Players()
	if n > maxDPPlayers {
		return nil, &OverflowError{Engine: "shapley-dp", Players: n, Limit: maxDPPlayers}
	}

	fact := factorials(n)
	counts := make([]*big.Int, n)

	var done atomic.Uint64
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(cfg.workers)

	for i := 0; i < n; i++ {
		group.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			counts[i] = pivotalCount(g, i, fact)
			if cfg.progress != nil {
				cfg.progress(done.Add(1), uint64(n))
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return newResult(counts), nil
}

// pivotalCount returns the number of orderings in which the given player
// is pivotal. The table is a flat (n x quota) buffer allocated per player;
// rows are coalition sizes, columns are weight sums below the quota.
func pivotalCount(g *Game, player int, fact []*big.Int) *big.Int {
	n := g.Players()
	quota := g.quota
	weights := g.weights

	dp := make([]uint64, n*quota)
	dp[0] = 1 // the empty coalition

	for j, wj := range weights {
		if j == player {
			continue
		}
		// A weight at or above the quota can never be part of a
		// preceding coalition that is still below it. Skip explicitly
		// rather than relying on the fold range coming up empty.
		if wj >= quota {
			continue
		}
		// 0/1-knapsack fold: descending s and t so each player is
		// counted at most once per subset.
		for s := n - 2; s >= 0; s-- {
			row := s * quota
			next := (s + 1) * quota
			for t := quota - 1 - wj; t >= 0; t-- {
				if c := dp[row+t]; c != 0 {
					dp[next+t+wj] += c
				}
			}
		}
	}

	// Preceding weight t pivots the player iff quota-w <= t <= quota-1.
	// For a zero-weight player the range is empty: dummies never pivot.
	lo := quota - weights[player]
	if lo < 0 {
		lo = 0
	}

	total := new(big.Int)
	tmp := new(big.Int)
	for s := 0; s < n; s++ {
		row := s * quota
		var shapes uint64 // row sums are bounded by C(n-1, s)
		for t := lo; t < quota; t++ {
			shapes += dp[row+t]
		}
		if shapes == 0 {
			continue
		}
		tmp.SetUint64(shapes)
		tmp.Mul(tmp, fact[s])
		tmp.Mul(tmp, fact[n-s-1])
		total.Add(total, tmp)
	}
	return total
}

// factorials returns 0! through n!.
func factorials(n int) []*big.Int {
	fact := make([]*big.Int, n+1)
	fact[0] = big.NewInt(1)
	for i := 1; i <= n; i++ {
		fact[i] = new(big.Int).Mul(fact[i-1], big.NewInt(int64(i)))
	}
	return fact
}
