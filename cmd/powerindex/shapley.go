package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lox/powerindex/voting"
)

// ShapleyCmd computes the Shapley-Shubik index. The DP engine is the
// default; --method brute forces the factorial permutation scan, which is
// only viable for small games.
type ShapleyCmd struct {
	gameArgs

	Method string `default:"dp" enum:"dp,brute" help:"Engine: dp (polynomial) or brute (factorial scan)"`
}

func (c *ShapleyCmd) Run(defaults *envDefaults) error {
	logger := setupLogger(c.Verbose)

	players, game, err := c.resolveGame()
	if err != nil {
		return err
	}

	opts := c.engineOptions(logger, defaults, "scanning orderings")

	engine := voting.ShapleyDP
	if c.Method == "brute" {
		engine = voting.ShapleyBrute
	}

	start := time.Now()
	res, err := engine(context.Background(), game, opts...)
	if err != nil {
		return err
	}
	logger.Debug("shapley scan complete",
		"method", c.Method, "players", game.Players(), "took", time.Since(start))

	renderResult(os.Stdout, fmt.Sprintf("shapley-shubik (%s)", c.Method), players, game, res)
	return nil
}
