package voting

import "math/big"

// Result holds the outcome of one power index computation.
//
// Counts is the raw per-player tally: critical-coalition counts for
// Banzhaf, pivotal-ordering counts for Shapley-Shubik. Shares is the
// normalized index, each count divided by the total across players. When
// the quota is unreachable every count is zero and Shares is all zeros as
// well; that is a valid result, not an error.
type Result struct {
	Counts []*big.Int
	Shares []float64
}

// Total returns the sum of the raw counts. For Shapley-Shubik on a
// winnable game this is exactly n!, since every ordering has one pivot.
func (r *Result) Total() *big.Int {
	total := new(big.Int)
	for _, c := range r.Counts {
		total.Add(total, c)
	}
	return total
}

// newResult normalizes raw counts into shares. Exact rational division is
// used so the shares sum to 1 within float rounding.
func newResult(counts []*big.Int) *Result {
	r := &Result{
		Counts: counts,
		Shares: make([]float64, len(counts)),
	}
	total := r.Total()
	if total.Sign() == 0 {
		return r
	}
	for i, c := range counts {
		r.Shares[i], _ = new(big.Rat).SetFrac(c, total).Float64()
	}
	return r
}

// countsFromInt64 lifts per-worker int64 tallies into big integers.
func countsFromInt64(counts []int64) []*big.Int {
	out := make([]*big.Int, len(counts))
	for i, c := range counts {
		out[i] = big.NewInt(c)
	}
	return out
}
