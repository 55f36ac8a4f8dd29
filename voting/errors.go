package voting

import "fmt"

// InvalidGameError reports a malformed game description at construction
// time: an empty player set, a negative weight, or a non-positive quota.
type InvalidGameError struct {
	Reason string
}

func (e *InvalidGameError) Error() string {
	return "invalid game: " + e.Reason
}

// OverflowError is returned by a brute-force engine when the player count
// exceeds its configured ceiling. The caller can retry with the DP engine
// (for Shapley-Shubik) or reduce the input.
type OverflowError struct {
	Engine  string
	Players int
	Limit   int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s: %d players exceeds the safe limit of %d", e.Engine, e.Players, e.Limit)
}
