// Package simulator plays out complete games using the turn machine,
// splitting each player's 13 dealt cards 5/5/3 into bottom/middle/top.
// It exists for rule validation and scoring statistics, mirroring the
// way the production flow drives the engine.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/openfacepoker/engine/internal/game"
	"github.com/openfacepoker/engine/internal/randutil"
)

// Config holds configuration for a simulation run
type Config struct {
	Variant game.Variant
	Players int
	Rounds  int
	Games   int
	Seed    int64
	Workers int
	Logger  *log.Logger
}

// Results aggregates outcomes across all simulated games
type Results struct {
	Games       int
	Rounds      int
	Fouls       int
	Scoops      int
	ScoreTotals map[int]int

	mu sync.Mutex
}

// add merges one game's outcome into the results
func (r *Results) add(o outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Games++
	r.Rounds += o.rounds
	r.Fouls += o.fouls
	r.Scoops += o.scoops
	for player, score := range o.totals {
		r.ScoreTotals[player] += score
	}
}

// Validate checks point conservation: pairwise transfers are zero-sum,
// so the score totals must sum to zero
func (r *Results) Validate() error {
	sum := 0
	for _, total := range r.ScoreTotals {
		sum += total
	}
	if sum != 0 {
		return fmt.Errorf("score totals sum to %d, expected 0", sum)
	}
	return nil
}

// outcome is a single game's tally
type outcome struct {
	rounds int
	fouls  int
	scoops int
	totals map[int]int
}

// Simulator runs batches of independent games. Each game instance is
// mutated by exactly one goroutine, matching the engine's
// single-threaded contract.
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration
func New(config Config) *Simulator {
	if config.Workers < 1 {
		config.Workers = 1
	}
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	return &Simulator{config: config}
}

// Run executes the simulation and returns aggregated results
func (s *Simulator) Run(ctx context.Context) (*Results, error) {
	results := &Results{ScoreTotals: make(map[int]int)}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)

	for i := 0; i < s.config.Games; i++ {
		gameSeed := s.config.Seed + int64(i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			o, err := s.playGame(gameSeed)
			if err != nil {
				return fmt.Errorf("game with seed %d: %w", gameSeed, err)
			}
			results.add(o)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := results.Validate(); err != nil {
		return nil, err
	}
	return results, nil
}

// playGame plays all configured rounds of one game under its own seed
func (s *Simulator) playGame(seed int64) (outcome, error) {
	g, err := game.New(s.config.Variant, s.config.Players,
		game.WithRNG(randutil.New(seed)),
		game.WithLogger(s.config.Logger),
	)
	if err != nil {
		return outcome{}, err
	}

	o := outcome{totals: make(map[int]int)}
	for round := 0; round < s.config.Rounds; round++ {
		summary, err := s.playRound(g)
		if err != nil {
			return outcome{}, err
		}

		o.rounds++
		for _, fouled := range summary.Fouled {
			if fouled {
				o.fouls++
			}
		}
		for _, msg := range summary.Messages {
			if strings.Contains(msg, "scooped") {
				o.scoops++
			}
		}
		for player, total := range summary.Totals {
			o.totals[player] = total
		}
	}

	return o, nil
}

// playRound deals the round out via the turn machine, places each
// player's cards 5/5/3 and scores via NewRound
func (s *Simulator) playRound(g *game.Game) (*game.RoundSummary, error) {
	for {
		_, err := g.HandleNextAction()
		if errors.Is(err, game.ErrRoundComplete) {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	for _, p := range g.Players() {
		if len(p.Cards) != 13 {
			return nil, fmt.Errorf("player %d holds %d cards, expected 13", p.Number, len(p.Cards))
		}
		err := g.Board().SetPlacements(p.Number, p.Cards[0:5], p.Cards[5:10], p.Cards[10:13])
		if err != nil {
			return nil, err
		}
	}

	return g.NewRound()
}
