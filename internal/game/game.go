// Package game implements the turn-based rules engine for the 13-card
// open-face game: dealing driven by the acting-order rotation, round
// bookkeeping, and end-of-round scoring. The engine is single-threaded;
// callers serialize mutations per game instance.
package game

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/openfacepoker/engine/internal/board"
	"github.com/openfacepoker/engine/internal/deck"
)

// actionsPerRound is the number of dealing slots per player per round:
// slot 1 deals 5 cards, slots 2-9 deal 1 each, 13 cards total
const actionsPerRound = 9

var (
	// ErrRoundComplete signals that all dealing slots for the round are
	// spent and a scoring transition must happen before further actions
	ErrRoundComplete = errors.New("all action for this round has finished")

	// ErrAlreadyDealt rejects a first-hand deal to a player who already
	// holds cards this round
	ErrAlreadyDealt = errors.New("player already has cards dealt")
)

// Game aggregates the board, the players and the turn state. Turn
// state and cumulative player scores persist across rounds; the board
// is rebuilt fresh each round.
type Game struct {
	Variant     Variant
	PlayerCount int

	RoundNumber       int
	RoundActionNumber int
	FirstToAct        int
	NextToAct         int

	actingOrder        []int
	actingOrderPointer int

	board   *board.Board
	players []*Player
	scorer  *Scorer

	rng    *rand.Rand
	logger *log.Logger
}

// Option configures a Game during construction
type Option func(*Game) error

// WithLogger sets the logger the engine reports notable conditions to
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) error {
		g.logger = logger
		return nil
	}
}

// WithRNG sets the RNG used for deck shuffles
func WithRNG(rng *rand.Rand) Option {
	return func(g *Game) error {
		g.rng = rng
		return nil
	}
}

// WithCounters restores the round and turn counters, used when
// rebuilding a game from a serialized state record
func WithCounters(roundNumber, roundActionNumber, firstToAct, nextToAct, actingOrderPointer int) Option {
	return func(g *Game) error {
		g.RoundNumber = roundNumber
		g.RoundActionNumber = roundActionNumber
		g.FirstToAct = firstToAct
		g.NextToAct = nextToAct
		g.actingOrderPointer = actingOrderPointer
		return nil
	}
}

// WithDeck restores an explicit deck order and cursor, used when
// rebuilding a game from a serialized state record
func WithDeck(codes []string, dealt int) Option {
	return func(g *Game) error {
		d, err := deck.FromCodes(codes, dealt)
		if err != nil {
			return err
		}
		b, err := board.WithDeck(g.PlayerCount, d)
		if err != nil {
			return err
		}
		g.board = b
		return nil
	}
}

// New creates a game for the given variant and player count. All
// counters start at round 1, action 1, player 1 to act first unless
// overridden by options.
func New(variant Variant, playerCount int, opts ...Option) (*Game, error) {
	cfg, err := variant.Config()
	if err != nil {
		return nil, err
	}
	if playerCount < 2 || playerCount > 4 {
		return nil, fmt.Errorf("player count %d out of range 2-4", playerCount)
	}
	if playerCount > cfg.MaxPlayers {
		return nil, fmt.Errorf("%s supports at most %d players, got %d",
			variant, cfg.MaxPlayers, playerCount)
	}

	g := &Game{
		Variant:           variant,
		PlayerCount:       playerCount,
		RoundNumber:       1,
		RoundActionNumber: 1,
		FirstToAct:        1,
		NextToAct:         1,
	}

	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}

	if g.logger == nil {
		g.logger = log.Default()
	}
	if g.FirstToAct < 1 || g.FirstToAct > playerCount {
		return nil, fmt.Errorf("first to act %d out of range 1-%d", g.FirstToAct, playerCount)
	}

	g.actingOrder = generateActingOrder(g.FirstToAct, playerCount)
	if g.actingOrderPointer < 0 || g.actingOrderPointer >= playerCount {
		return nil, fmt.Errorf("acting order pointer %d out of range 0-%d",
			g.actingOrderPointer, playerCount-1)
	}
	if g.NextToAct != g.actingOrder[g.actingOrderPointer] {
		return nil, fmt.Errorf("next to act %d inconsistent with acting order %v at pointer %d",
			g.NextToAct, g.actingOrder, g.actingOrderPointer)
	}

	if g.board == nil {
		b, err := board.New(playerCount, g.rng)
		if err != nil {
			return nil, err
		}
		g.board = b
	}

	g.players = make([]*Player, playerCount)
	for i := range g.players {
		p, err := NewPlayer(i + 1)
		if err != nil {
			return nil, err
		}
		g.players[i] = p
	}

	g.scorer = NewScorer(cfg.Royalties, g.logger)
	return g, nil
}

// generateActingOrder builds the clockwise rotation of player numbers
// starting at firstToAct, wrapping around to 1
func generateActingOrder(firstToAct, playerCount int) []int {
	order := make([]int, 0, playerCount)
	for i := firstToAct; i <= playerCount; i++ {
		order = append(order, i)
	}
	for i := 1; i < firstToAct; i++ {
		order = append(order, i)
	}
	return order
}

// Board returns the current round's board
func (g *Game) Board() *board.Board {
	return g.board
}

// Players returns all players in player-number order
func (g *Game) Players() []*Player {
	return g.players
}

// Player returns the player with the given number
func (g *Game) Player(number int) (*Player, error) {
	if number < 1 || number > g.PlayerCount {
		return nil, fmt.Errorf("player number %d out of range 1-%d", number, g.PlayerCount)
	}
	return g.players[number-1], nil
}

// ActingOrder returns the acting rotation for the current round
func (g *Game) ActingOrder() []int {
	return g.actingOrder
}

// ActingOrderPointer returns the index of the next actor in the
// acting order
func (g *Game) ActingOrderPointer() int {
	return g.actingOrderPointer
}

// NextAction describes one dealing action: who acted, in which action
// slot, and the cards they received
type NextAction struct {
	PlayerNumber int
	ActionNumber int
	Cards        []deck.Card
}

// HandleNextAction deals to whoever acts next: 5 cards in action slot
// 1, a single card in slots 2-9. Beyond slot 9 the round's dealing is
// exhausted and ErrRoundComplete is returned.
func (g *Game) HandleNextAction() (NextAction, error) {
	action := NextAction{
		PlayerNumber: g.NextToAct,
		ActionNumber: g.RoundActionNumber,
	}

	switch {
	case g.RoundActionNumber == 1:
		cards, err := g.dealFirstHand(g.NextToAct)
		if err != nil {
			return NextAction{}, err
		}
		action.Cards = cards

	case g.RoundActionNumber <= actionsPerRound:
		card, err := g.board.Deck().DealOne()
		if err != nil {
			return NextAction{}, err
		}
		g.players[g.NextToAct-1].Cards = append(g.players[g.NextToAct-1].Cards, card)
		g.advanceTurn()
		action.Cards = []deck.Card{card}

	default:
		return NextAction{}, ErrRoundComplete
	}

	g.logger.Debug("dealt cards",
		"player", action.PlayerNumber,
		"action", action.ActionNumber,
		"cards", deck.Codes(action.Cards))
	return action, nil
}

// dealFirstHand deals the opening 5 cards to a player who must not
// already hold cards this round
func (g *Game) dealFirstHand(playerNumber int) ([]deck.Card, error) {
	p := g.players[playerNumber-1]
	if len(p.Cards) > 0 {
		return nil, fmt.Errorf("%w: player %d", ErrAlreadyDealt, playerNumber)
	}

	cards, err := g.board.Deck().DealN(5)
	if err != nil {
		return nil, err
	}
	p.Cards = append(p.Cards, cards...)
	g.advanceTurn()
	return cards, nil
}

// advanceTurn moves the acting pointer; once every seated player has
// acted in the current slot it wraps and the action number increments
func (g *Game) advanceTurn() {
	if g.actingOrderPointer == len(g.actingOrder)-1 {
		g.actingOrderPointer = 0
		g.NextToAct = g.actingOrder[0]
		g.RoundActionNumber++
	} else {
		g.actingOrderPointer++
		g.NextToAct = g.actingOrder[g.actingOrderPointer]
	}
}

// RoundSummary is the outcome of scoring one round
type RoundSummary struct {
	RoundNumber int
	Messages    []string
	Fouled      map[int]bool
	Totals      map[int]int
}

// ScoreBoard scores the current board without ending the round: every
// pairwise transfer is applied to the players' cumulative scores and
// each player's Result is populated
func (g *Game) ScoreBoard() (*RoundSummary, error) {
	messages, err := g.scorer.ScoreAll(g.board, g.players)
	if err != nil {
		return nil, err
	}

	summary := &RoundSummary{
		RoundNumber: g.RoundNumber,
		Messages:    messages,
		Fouled:      make(map[int]bool, len(g.players)),
		Totals:      make(map[int]int, len(g.players)),
	}
	for _, p := range g.players {
		summary.Fouled[p.Number] = p.Result.Fouled
		summary.Totals[p.Number] = p.Score
	}
	return summary, nil
}

// InterpretScores scores the board and renders the advisory score
// report: one line per pair plus each player's running total
func (g *Game) InterpretScores() (string, error) {
	summary, err := g.ScoreBoard()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, msg := range summary.Messages {
		b.WriteString(msg)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	for _, p := range g.players {
		fmt.Fprintf(&b, "Player %d's total score after this round = %d\n", p.Number, p.Score)
	}
	return b.String(), nil
}

// NewRound scores the current board, resets it with a fresh deck and
// empty placements, advances the round number and rotates the acting
// order to start from the next player
func (g *Game) NewRound() (*RoundSummary, error) {
	summary, err := g.ScoreBoard()
	if err != nil {
		return nil, err
	}

	b, err := board.New(g.PlayerCount, g.rng)
	if err != nil {
		return nil, err
	}
	g.board = b

	for _, p := range g.players {
		p.Cards = nil
		p.Result = nil
	}

	g.RoundNumber++
	g.RoundActionNumber = 1
	g.FirstToAct = g.FirstToAct%g.PlayerCount + 1
	g.NextToAct = g.FirstToAct
	g.actingOrder = generateActingOrder(g.FirstToAct, g.PlayerCount)
	g.actingOrderPointer = 0

	g.logger.Debug("new round", "round", g.RoundNumber, "firstToAct", g.FirstToAct)
	return summary, nil
}
