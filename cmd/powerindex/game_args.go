package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/powerindex/internal/gameconfig"
	"github.com/lox/powerindex/internal/progress"
	"github.com/lox/powerindex/voting"
)

// gameArgs are the flags shared by every command: the game comes either
// from positional weights or from an HCL definition file.
type gameArgs struct {
	Weights []int  `arg:"" optional:"" help:"Player weights, e.g. 62 53 32 16"`
	Quota   int    `short:"q" help:"Decision quota (default: simple majority of the total weight)"`
	Config  string `short:"c" type:"existingfile" help:"HCL game definition file"`
	Game    string `help:"Game name inside the definition file"`
	Workers int    `short:"w" help:"Parallel workers (default: one per CPU, capped)"`
	Verbose bool   `short:"v" help:"Verbose logging with scan progress"`
}

// resolveGame turns the flags into player names and a validated game.
func (a *gameArgs) resolveGame() ([]string, *voting.Game, error) {
	switch {
	case a.Config != "" && len(a.Weights) > 0:
		return nil, nil, fmt.Errorf("--config and positional weights are mutually exclusive")

	case a.Config != "":
		if a.Quota != 0 {
			return nil, nil, fmt.Errorf("--quota belongs in the definition file when --config is used")
		}
		defs, err := gameconfig.Load(a.Config)
		if err != nil {
			return nil, nil, err
		}
		def, err := gameconfig.Find(defs, a.Game)
		if err != nil {
			return nil, nil, err
		}
		return def.Players, def.Game, nil

	case len(a.Weights) > 0:
		quota := a.Quota
		if quota == 0 {
			quota = voting.MajorityQuota(a.Weights)
		}
		g, err := voting.NewGame(a.Weights, quota)
		if err != nil {
			return nil, nil, err
		}
		names := make([]string, len(a.Weights))
		for i := range names {
			names[i] = fmt.Sprintf("P%d", i+1)
		}
		return names, g, nil

	default:
		return nil, nil, fmt.Errorf("provide player weights or --config")
	}
}

// engineOptions assembles the voting engine options from flags, env
// defaults, and an optional progress reporter for verbose runs.
func (a *gameArgs) engineOptions(logger *log.Logger, defaults *envDefaults, label string) []voting.Option {
	var opts []voting.Option

	workers := a.Workers
	if workers == 0 {
		workers = defaults.Workers
	}
	if workers > 0 {
		opts = append(opts, voting.WithWorkers(workers))
	}
	if defaults.MaxBrute > 0 {
		opts = append(opts, voting.WithMaxBrutePlayers(defaults.MaxBrute))
	}
	if defaults.MaxPerm > 0 {
		opts = append(opts, voting.WithMaxPermutationPlayers(defaults.MaxPerm))
	}
	if a.Verbose {
		reporter := progress.New(logger, label, time.Second)
		opts = append(opts, voting.WithProgress(reporter.Update))
	}
	return opts
}
