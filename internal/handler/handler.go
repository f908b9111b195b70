// Package handler mediates between the external layers and the game
// engine: it compiles games to state records, rebuilds games from
// validated records, and applies submitted placements after checking
// that no player other than the current actor changed anything.
package handler

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/openfacepoker/engine/internal/deck"
	"github.com/openfacepoker/engine/internal/game"
	"github.com/openfacepoker/engine/internal/state"
)

var (
	// ErrNoActionPending rejects a placement submission when no deal
	// has been requested since the last submission
	ErrNoActionPending = errors.New("no action in progress")

	// ErrStateDrift rejects a submission that changed another
	// player's recorded state
	ErrStateDrift = errors.New("game state changed for a non-acting player")
)

// Handler wraps one game instance together with the snapshot record
// last handed out, which submissions are validated against
type Handler struct {
	game     *game.Game
	snapshot *state.Record

	// actor is the player dealt to by the last NextAction and the only
	// player whose state a submission may change; 0 when none pending
	actor int

	logger *log.Logger
}

// New creates a handler around a fresh game
func New(variant game.Variant, playerCount int, logger *log.Logger, opts ...game.Option) (*Handler, error) {
	if logger == nil {
		logger = log.Default()
	}
	opts = append(opts, game.WithLogger(logger))
	g, err := game.New(variant, playerCount, opts...)
	if err != nil {
		return nil, err
	}

	h := &Handler{game: g, logger: logger}
	h.snapshot = CompileState(g)
	return h, nil
}

// Restore rebuilds a handler from a validated state record. The record
// must carry the full deck order; a sanitised copy cannot resume play.
func Restore(rec *state.Record, logger *log.Logger, opts ...game.Option) (*Handler, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	if !rec.HasDeck() {
		return nil, errors.New("cannot resume from a sanitised record: deck missing")
	}
	if logger == nil {
		logger = log.Default()
	}

	gs := rec.GameState
	opts = append(opts,
		game.WithLogger(logger),
		game.WithCounters(gs.RoundNumber, gs.RoundActionNumber, gs.FirstToAct, gs.NextToAct, gs.ActingOrderPointer),
		game.WithDeck(gs.Deck, gs.DeckPointer),
	)
	g, err := game.New(game.Variant(rec.Variant), rec.PlayerCount, opts...)
	if err != nil {
		return nil, err
	}

	for n := 1; n <= rec.PlayerCount; n++ {
		key := strconv.Itoa(n)
		p, err := g.Player(n)
		if err != nil {
			return nil, err
		}
		p.Score = rec.Players[key].Score
		p.Cards, err = deck.ParseAll(rec.Players[key].Cards)
		if err != nil {
			return nil, err
		}

		pl := rec.GameState.Placements[key]
		bottom, middle, top, err := parseRows(pl)
		if err != nil {
			return nil, err
		}
		if err := g.Board().SetPlacements(n, bottom, middle, top); err != nil {
			return nil, err
		}
	}

	h := &Handler{game: g, logger: logger}
	h.snapshot = CompileState(g)
	return h, nil
}

// Game returns the wrapped game
func (h *Handler) Game() *game.Game {
	return h.game
}

// State compiles the current full state record
func (h *Handler) State() *state.Record {
	return CompileState(h.game)
}

// SanitizedState compiles the current state with the deck omitted,
// for client-visible copies
func (h *Handler) SanitizedState() *state.Record {
	return CompileState(h.game).Sanitized()
}

// NextActionResponse is what the external layer relays to the client
// after requesting the next action
type NextActionResponse struct {
	PlayerNumber      int      `json:"playerNumber"`
	RoundActionNumber int      `json:"roundActionNumber"`
	Cards             []string `json:"cards"`
}

// NextAction deals to the next player and refreshes the snapshot the
// following submission will be validated against
func (h *Handler) NextAction() (*NextActionResponse, error) {
	action, err := h.game.HandleNextAction()
	if err != nil {
		return nil, err
	}

	h.actor = action.PlayerNumber
	h.snapshot = CompileState(h.game)

	return &NextActionResponse{
		PlayerNumber:      action.PlayerNumber,
		RoundActionNumber: action.ActionNumber,
		Cards:             deck.Codes(action.Cards),
	}, nil
}

// SubmitPlacements validates a submitted state record against the
// snapshot and, if legitimate, writes the actor's placements and held
// cards. A rejected submission leaves the game untouched.
func (h *Handler) SubmitPlacements(rec *state.Record) error {
	if h.actor == 0 {
		return ErrNoActionPending
	}
	if err := rec.Validate(); err != nil {
		return err
	}
	if rec.PlayerCount != h.snapshot.PlayerCount || rec.Variant != h.snapshot.Variant {
		return fmt.Errorf("submitted record does not match game: %d-player %s",
			h.snapshot.PlayerCount, h.snapshot.Variant)
	}

	for n := 1; n <= h.game.PlayerCount; n++ {
		if n == h.actor {
			continue
		}
		if !playerStateIdentical(h.snapshot, rec, n) {
			return fmt.Errorf("%w: player %d", ErrStateDrift, n)
		}
	}

	key := strconv.Itoa(h.actor)
	bottom, middle, top, err := parseRows(rec.GameState.Placements[key])
	if err != nil {
		return err
	}
	cards, err := deck.ParseAll(rec.Players[key].Cards)
	if err != nil {
		return err
	}

	if err := h.game.Board().SetPlacements(h.actor, bottom, middle, top); err != nil {
		return err
	}
	actor, err := h.game.Player(h.actor)
	if err != nil {
		return err
	}
	actor.Cards = cards

	h.logger.Debug("applied placements", "player", h.actor)
	h.actor = 0
	h.snapshot = CompileState(h.game)
	return nil
}

// playerStateIdentical compares one player's recorded state across two
// records: score, held cards and all three row placements
func playerStateIdentical(prev, next *state.Record, playerNumber int) bool {
	key := strconv.Itoa(playerNumber)
	po, pn := prev.Players[key], next.Players[key]
	if po.Score != pn.Score || !slices.Equal(po.Cards, pn.Cards) {
		return false
	}

	lo, ln := prev.GameState.Placements[key], next.GameState.Placements[key]
	return slices.Equal(lo.BottomRow, ln.BottomRow) &&
		slices.Equal(lo.MiddleRow, ln.MiddleRow) &&
		slices.Equal(lo.TopRow, ln.TopRow)
}

// parseRows decodes a placement record's three rows
func parseRows(p state.PlacementRecord) (bottom, middle, top []deck.Card, err error) {
	if bottom, err = deck.ParseAll(p.BottomRow); err != nil {
		return nil, nil, nil, err
	}
	if middle, err = deck.ParseAll(p.MiddleRow); err != nil {
		return nil, nil, nil, err
	}
	if top, err = deck.ParseAll(p.TopRow); err != nil {
		return nil, nil, nil, err
	}
	return bottom, middle, top, nil
}

// CompileState serializes a game into a state record
func CompileState(g *game.Game) *state.Record {
	rec := &state.Record{
		PlayerCount: g.PlayerCount,
		Variant:     string(g.Variant),
		Players:     make(map[string]state.PlayerRecord, g.PlayerCount),
		GameState: state.GameStateRecord{
			RoundNumber:        g.RoundNumber,
			RoundActionNumber:  g.RoundActionNumber,
			FirstToAct:         g.FirstToAct,
			NextToAct:          g.NextToAct,
			ActingOrderPointer: g.ActingOrderPointer(),
			Deck:               g.Board().Deck().Codes(),
			DeckPointer:        g.Board().Deck().Dealt(),
			Placements:         make(map[string]state.PlacementRecord, g.PlayerCount),
		},
	}

	for _, p := range g.Players() {
		key := strconv.Itoa(p.Number)
		rec.Players[key] = state.PlayerRecord{
			PlayerNumber: p.Number,
			Score:        p.Score,
			Cards:        deck.Codes(p.Cards),
		}

		placement, _ := g.Board().Placement(p.Number)
		rows := placement.Rows()
		rec.GameState.Placements[key] = state.PlacementRecord{
			PlayerNumber: p.Number,
			BottomRow:    deck.Codes(rows[0].Cards()),
			MiddleRow:    deck.Codes(rows[1].Cards()),
			TopRow:       deck.Codes(rows[2].Cards()),
		}
	}

	return rec
}
