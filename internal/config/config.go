// Package config loads the CLI's HCL configuration file
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete CLI configuration. The blocks are
// pointers so a config file may omit them entirely.
type Config struct {
	LogLevel string            `hcl:"log_level,optional"`
	Game     *GameSettings     `hcl:"game,block"`
	Simulate *SimulateSettings `hcl:"simulate,block"`
}

// GameSettings configures the game being played or simulated
type GameSettings struct {
	Variant string `hcl:"variant,optional"`
	Players int    `hcl:"players,optional"`
}

// SimulateSettings configures batch simulation runs
type SimulateSettings struct {
	Games   int   `hcl:"games,optional"`
	Rounds  int   `hcl:"rounds,optional"`
	Seed    int64 `hcl:"seed,optional"`
	Workers int   `hcl:"workers,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Game: &GameSettings{
			Variant: "ofc",
			Players: 2,
		},
		Simulate: &SimulateSettings{
			Games:   100,
			Rounds:  1,
			Seed:    0,
			Workers: 4,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields
// the defaults; a present but malformed file is an error.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// applyDefaults fills in missing blocks and zero-valued fields
func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	if cfg.Game == nil {
		cfg.Game = &GameSettings{}
	}
	if cfg.Simulate == nil {
		cfg.Simulate = &SimulateSettings{}
	}
	if cfg.Game.Variant == "" {
		cfg.Game.Variant = def.Game.Variant
	}
	if cfg.Game.Players == 0 {
		cfg.Game.Players = def.Game.Players
	}
	if cfg.Simulate.Games == 0 {
		cfg.Simulate.Games = def.Simulate.Games
	}
	if cfg.Simulate.Rounds == 0 {
		cfg.Simulate.Rounds = def.Simulate.Rounds
	}
	if cfg.Simulate.Workers == 0 {
		cfg.Simulate.Workers = def.Simulate.Workers
	}
}
