// Package reference holds an independently written power index
// implementation used by tests to cross-check the voting engines. It
// deliberately shares no code with package voting: Banzhaf swings are
// counted with a size-free generating-function fold and reported on the
// absolute scale, and Shapley-Shubik shares are accumulated as exact
// rationals. Callers must not rely on its normalization matching the
// core's; comparisons renormalize first.
package reference

import "math/big"

// Banzhaf returns the absolute Banzhaf index for each player: the number
// of coalitions of the other players that the player swings, divided by
// 2^(n-1). Note this is a different scale from the core's
// critical-count-normalized shares.
func Banzhaf(weights []int, quota int) []float64 {
	n := len(weights)
	swings := Swings(weights, quota)

	denom := new(big.Int).Lsh(big.NewInt(1), uint(n-1))
	out := make([]float64, n)
	for i, s := range swings {
		out[i], _ = new(big.Rat).SetFrac(s, denom).Float64()
	}
	return out
}

// Swings returns the raw Banzhaf swing counts: for player i, the number
// of subsets S of the other players with w(S) < quota <= w(S) + w(i).
func Swings(weights []int, quota int) []*big.Int {
	n := len(weights)
	out := make([]*big.Int, n)

	for i, w := range weights {
		// ways[t] counts subsets of the other players summing to t;
		// sums at or above the quota are irrelevant to swinging.
		ways := make([]*big.Int, quota)
		for t := range ways {
			ways[t] = new(big.Int)
		}
		ways[0].SetInt64(1)

		for j, wj := range weights {
			if j == i || wj >= quota {
				continue
			}
			for t := quota - 1 - wj; t >= 0; t-- {
				if ways[t].Sign() != 0 {
					ways[t+wj].Add(ways[t+wj], ways[t])
				}
			}
		}

		lo := quota - w
		if lo < 0 {
			lo = 0
		}
		count := new(big.Int)
		for t := lo; t < quota; t++ {
			count.Add(count, ways[t])
		}
		out[i] = count
	}
	return out
}

// ShapleyShubik returns each player's Shapley-Shubik share, the fraction
// of the n! player orderings in which that player is pivotal.
func ShapleyShubik(weights []int, quota int) []float64 {
	n := len(weights)
	fact := make([]*big.Int, n+1)
	fact[0] = big.NewInt(1)
	for i := 1; i <= n; i++ {
		fact[i] = new(big.Int).Mul(fact[i-1], big.NewInt(int64(i)))
	}

	out := make([]float64, n)
	for i, w := range weights {
		// bySize[s][t] counts size-s subsets of the other players
		// summing to t < quota.
		bySize := make([][]*big.Int, n)
		for s := range bySize {
			bySize[s] = make([]*big.Int, quota)
			for t := range bySize[s] {
				bySize[s][t] = new(big.Int)
			}
		}
		bySize[0][0].SetInt64(1)

		for j, wj := range weights {
			if j == i || wj >= quota {
				continue
			}
			for s := n - 2; s >= 0; s-- {
				for t := quota - 1 - wj; t >= 0; t-- {
					if bySize[s][t].Sign() != 0 {
						bySize[s+1][t+wj].Add(bySize[s+1][t+wj], bySize[s][t])
					}
				}
			}
		}

		lo := quota - w
		if lo < 0 {
			lo = 0
		}
		share := new(big.Rat)
		term := new(big.Int)
		for s := 0; s < n; s++ {
			weight := new(big.Int).Mul(fact[s], fact[n-s-1])
			for t := lo; t < quota; t++ {
				if bySize[s][t].Sign() == 0 {
					continue
				}
				term.Mul(bySize[s][t], weight)
				share.Add(share, new(big.Rat).SetFrac(term, fact[n]))
			}
		}
		out[i], _ = share.Float64()
	}
	return out
}
