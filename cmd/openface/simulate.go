package main

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/openfacepoker/engine/internal/config"
	"github.com/openfacepoker/engine/internal/game"
	"github.com/openfacepoker/engine/internal/randutil"
	"github.com/openfacepoker/engine/internal/simulator"
)

// SimulateCmd plays out batches of complete games and reports
// aggregate scoring statistics. Flags override the config file.
type SimulateCmd struct {
	Config  string `kong:"default='openface.hcl',help='Path to HCL config file'"`
	Variant string `kong:"help='Game variant: ofc, pineapple'"`
	Players int    `kong:"help='Number of players (2-4)'"`
	Games   int    `kong:"help='Number of games to play'"`
	Rounds  int    `kong:"help='Rounds per game'"`
	Seed    int64  `kong:"help='Deterministic RNG seed (0 for random)'"`
	Workers int    `kong:"help='Concurrent games'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
}

func (c *SimulateCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Variant != "" {
		cfg.Game.Variant = c.Variant
	}
	if c.Players != 0 {
		cfg.Game.Players = c.Players
	}
	if c.Games != 0 {
		cfg.Simulate.Games = c.Games
	}
	if c.Rounds != 0 {
		cfg.Simulate.Rounds = c.Rounds
	}
	if c.Seed != 0 {
		cfg.Simulate.Seed = c.Seed
	}
	if c.Workers != 0 {
		cfg.Simulate.Workers = c.Workers
	}

	logger := setupLogger(cfg.LogLevel, c.Debug)

	seed := cfg.Simulate.Seed
	if seed == 0 {
		_, seed = randutil.NewFromTime()
	}

	variant := game.Variant(cfg.Game.Variant)
	if !variant.Valid() {
		return fmt.Errorf("unknown variant %q", cfg.Game.Variant)
	}

	logger.Info("starting simulation",
		"variant", variant,
		"players", cfg.Game.Players,
		"games", cfg.Simulate.Games,
		"rounds", cfg.Simulate.Rounds,
		"seed", seed,
		"workers", cfg.Simulate.Workers)

	sim := simulator.New(simulator.Config{
		Variant: variant,
		Players: cfg.Game.Players,
		Rounds:  cfg.Simulate.Rounds,
		Games:   cfg.Simulate.Games,
		Seed:    seed,
		Workers: cfg.Simulate.Workers,
		Logger:  logger,
	})

	start := time.Now()
	results, err := sim.Run(context.Background())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if err := results.Validate(); err != nil {
		return fmt.Errorf("results failed validation: %w", err)
	}

	printResults(results, elapsed)
	return nil
}

func printResults(r *simulator.Results, elapsed time.Duration) {
	fmt.Println(headerStyle.Render("Simulation Results"))
	fmt.Printf("%s %d games, %d rounds in %s\n",
		labelStyle.Render("Played:"), r.Games, r.Rounds, elapsed.Round(time.Millisecond))
	fmt.Printf("%s %d (%.1f%% of hands)\n",
		labelStyle.Render("Fouls:"), r.Fouls, percentage(r.Fouls, r.Rounds*len(r.ScoreTotals)))
	fmt.Printf("%s %d\n", labelStyle.Render("Scoops:"), r.Scoops)

	players := make([]int, 0, len(r.ScoreTotals))
	for player := range r.ScoreTotals {
		players = append(players, player)
	}
	sort.Ints(players)
	for _, player := range players {
		fmt.Printf("%s %+d\n",
			labelStyle.Render(fmt.Sprintf("Player %d net:", player)), r.ScoreTotals[player])
	}
}

func percentage(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return 100 * float64(part) / float64(whole)
}
