package main

import (
	"context"
	"os"
	"time"

	"github.com/lox/powerindex/voting"
)

// BanzhafCmd computes the Banzhaf index by exhaustive coalition scan.
type BanzhafCmd struct {
	gameArgs
}

func (c *BanzhafCmd) Run(defaults *envDefaults) error {
	logger := setupLogger(c.Verbose)

	players, game, err := c.resolveGame()
	if err != nil {
		return err
	}

	opts := c.engineOptions(logger, defaults, "scanning coalitions")

	start := time.Now()
	res, err := voting.Banzhaf(context.Background(), game, opts...)
	if err != nil {
		return err
	}
	logger.Debug("banzhaf scan complete", "players", game.Players(), "took", time.Since(start))

	renderResult(os.Stdout, "banzhaf", players, game, res)
	return nil
}
