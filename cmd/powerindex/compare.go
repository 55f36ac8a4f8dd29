package main

import (
	"context"
	"errors"
	"os"

	"github.com/lox/powerindex/voting"
)

// CompareCmd computes both indices and prints them side by side. When
// the game is small enough it also runs the brute-force Shapley engine
// and verifies the DP counts against it.
type CompareCmd struct {
	gameArgs
}

func (c *CompareCmd) Run(defaults *envDefaults) error {
	logger := setupLogger(c.Verbose)

	players, game, err := c.resolveGame()
	if err != nil {
		return err
	}

	ctx := context.Background()

	banzhaf, err := voting.Banzhaf(ctx, game, c.engineOptions(logger, defaults, "scanning coalitions")...)
	if err != nil {
		return err
	}

	shapley, err := voting.ShapleyDP(ctx, game, c.engineOptions(logger, defaults, "building tables")...)
	if err != nil {
		return err
	}

	// Cross-check against the factorial scan when it is affordable.
	brute, err := voting.ShapleyBrute(ctx, game, c.engineOptions(logger, defaults, "scanning orderings")...)
	switch {
	case err == nil:
		for i := range brute.Counts {
			if brute.Counts[i].Cmp(shapley.Counts[i]) != 0 {
				return errors.New("shapley engines disagree, this is a bug")
			}
		}
		logger.Debug("dp counts verified against permutation scan")
	default:
		var overflow *voting.OverflowError
		if !errors.As(err, &overflow) {
			return err
		}
		logger.Debug("skipping brute-force verification", "reason", err)
	}

	renderComparison(os.Stdout, players, game, banzhaf, shapley)
	return nil
}
