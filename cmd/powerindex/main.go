package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"V" help:"Show version"`
	Banzhaf BanzhafCmd       `cmd:"" help:"Compute the Banzhaf power index"`
	Shapley ShapleyCmd       `cmd:"" help:"Compute the Shapley-Shubik power index"`
	Compare CompareCmd       `cmd:"" help:"Compute both indices side by side"`
}

// envDefaults are fallbacks applied when the matching flag is not given.
type envDefaults struct {
	Workers  int `env:"POWERINDEX_WORKERS"`
	MaxBrute int `env:"POWERINDEX_MAX_BRUTE_PLAYERS"`
	MaxPerm  int `env:"POWERINDEX_MAX_PERM_PLAYERS"`
}

func main() {
	var defaults envDefaults
	if err := env.Parse(&defaults); err != nil {
		log.Fatal("invalid environment", "err", err)
	}

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("powerindex"),
		kong.Description("Banzhaf and Shapley-Shubik power indices for weighted voting games"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.Bind(&defaults),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func setupLogger(verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{Level: level})
}
