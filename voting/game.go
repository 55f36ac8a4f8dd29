package voting

import "fmt"

// Game is an immutable weighted voting game. Player identity is the index
// into the weight vector; the order carries no other meaning.
type Game struct {
	weights []int
	quota   int
	total   int
}

// NewGame validates weights and quota and returns an immutable game.
// Weights must be non-negative, the quota must be at least 1, and there
// must be at least one player. A quota larger than the total weight is
// legal: no coalition can ever win and every engine reports all-zero
// power for such a game.
func NewGame(weights []int, quota int) (*Game, error) {
	if len(weights) == 0 {
		return nil, &InvalidGameError{Reason: "no players"}
	}
	if quota < 1 {
		return nil, &InvalidGameError{Reason: fmt.Sprintf("quota must be at least 1, got %d", quota)}
	}
	total := 0
	for i, w := range weights {
		if w < 0 {
			return nil, &InvalidGameError{Reason: fmt.Sprintf("player %d has negative weight %d", i, w)}
		}
		total += w
	}
	g := &Game{
		weights: make([]int, len(weights)),
		quota:   quota,
		total:   total,
	}
	copy(g.weights, weights)
	return g, nil
}

// MajorityQuota returns the simple-majority quota for a weight vector:
// strictly more than half of the total weight.
func MajorityQuota(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	return total/2 + 1
}

// Players returns the number of players.
func (g *Game) Players() int { return len(g.weights) }

// Weight returns the weight of player i.
func (g *Game) Weight(i int) int { return g.weights[i] }

// Weights returns a copy of the weight vector.
func (g *Game) Weights() []int {
	w := make([]int, len(g.weights))
	copy(w, g.weights)
	return w
}

// Quota returns the decision threshold.
func (g *Game) Quota() int { return g.quota }

// TotalWeight returns the combined weight of all players.
func (g *Game) TotalWeight() int { return g.total }

// Winnable reports whether the grand coalition reaches the quota. A game
// that is not winnable is degenerate: every power index is zero.
func (g *Game) Winnable() bool { return g.total >= g.quota }
