// Package voting computes voting power indices for weighted voting games.
//
// A weighted voting game assigns each player an integer weight; a
// coalition of players wins when its combined weight reaches the quota.
// The package implements two classical measures of a priori voting power:
//
//   - Banzhaf: each player's share of "swings", coalitions where the
//     player's departure turns a winning coalition into a losing one.
//   - Shapley-Shubik: each player's share of the orderings of all players
//     in which that player is the one who tips the running total past the
//     quota.
//
// # Basic Usage
//
//	g, err := voting.NewGame([]int{62, 53, 32, 16, 4, 7, 3, 3}, 91)
//	if err != nil {
//	    // weights/quota were malformed
//	}
//	res, err := voting.Banzhaf(ctx, g)
//	// res.Shares[i] is player i's normalized power in [0,1]
//
// # Engines
//
// Banzhaf scans all 2^n-1 coalitions and ShapleyBrute scans all n!
// orderings; both refuse inputs above a configurable player ceiling
// rather than running unbounded. ShapleyDP computes the exact same
// pivotal counts as ShapleyBrute through a per-player subset-sum
// recurrence in O(n^2 * quota) time, and is the engine to reach for on
// anything larger than a dozen players.
//
// All engines are pure functions of an immutable Game and are safe for
// concurrent use. Large scans are split across workers internally; pass
// WithWorkers(1) for a fully sequential run.
package voting
