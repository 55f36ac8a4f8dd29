// Package gameconfig loads weighted voting game definitions from HCL
// files. A file holds one or more named games:
//
//	game "peru-1990" {
//	  quota = 91
//
//	  player "FREDEMO" { weight = 62 }
//	  player "APRA"    { weight = 53 }
//	}
//
// Instead of a fixed quota a game may set majority = true to use the
// simple-majority threshold over the declared weights.
package gameconfig

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/powerindex/voting"
)

type fileConfig struct {
	Games []gameBlock `hcl:"game,block"`
}

type gameBlock struct {
	Name     string        `hcl:"name,label"`
	Quota    int           `hcl:"quota,optional"`
	Majority bool          `hcl:"majority,optional"`
	Players  []playerBlock `hcl:"player,block"`
}

type playerBlock struct {
	Name   string `hcl:"name,label"`
	Weight int    `hcl:"weight"`
}

// Definition is a named, validated game together with its player names.
// Player order matches the voting.Game player index.
type Definition struct {
	Name    string
	Players []string
	Game    *voting.Game
}

// Load parses an HCL file and returns every game it defines, validated.
func Load(path string) ([]Definition, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %s", path, diags.Error())
	}

	var cfg fileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %s", path, diags.Error())
	}
	if len(cfg.Games) == 0 {
		return nil, fmt.Errorf("%s defines no games", path)
	}

	defs := make([]Definition, 0, len(cfg.Games))
	for _, block := range cfg.Games {
		def, err := buildDefinition(block)
		if err != nil {
			return nil, fmt.Errorf("game %q: %w", block.Name, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// Find returns the named game from a file, or the only game when name is
// empty and the file defines exactly one.
func Find(defs []Definition, name string) (Definition, error) {
	if name == "" {
		if len(defs) == 1 {
			return defs[0], nil
		}
		names := make([]string, len(defs))
		for i, d := range defs {
			names[i] = d.Name
		}
		return Definition{}, fmt.Errorf("file defines %d games %v, pick one with --game", len(defs), names)
	}
	for _, d := range defs {
		if d.Name == name {
			return d, nil
		}
	}
	return Definition{}, fmt.Errorf("no game named %q", name)
}

func buildDefinition(block gameBlock) (Definition, error) {
	if len(block.Players) == 0 {
		return Definition{}, fmt.Errorf("no players declared")
	}

	names := make([]string, len(block.Players))
	weights := make([]int, len(block.Players))
	for i, p := range block.Players {
		names[i] = p.Name
		weights[i] = p.Weight
	}

	quota := block.Quota
	switch {
	case quota > 0 && block.Majority:
		return Definition{}, fmt.Errorf("quota and majority are mutually exclusive")
	case quota == 0 && block.Majority:
		quota = voting.MajorityQuota(weights)
	case quota == 0:
		return Definition{}, fmt.Errorf("either quota or majority = true is required")
	}

	game, err := voting.NewGame(weights, quota)
	if err != nil {
		return Definition{}, err
	}
	return Definition{Name: block.Name, Players: names, Game: game}, nil
}
