package board

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/openfacepoker/engine/internal/deck"
)

// Board owns the round's deck and one placement per seated player
type Board struct {
	playerCount int
	deck        *deck.Deck
	placements  []*Placement
}

// New creates a board for 2-4 players with a freshly shuffled deck
func New(playerCount int, rng *rand.Rand) (*Board, error) {
	return WithDeck(playerCount, deck.New(rng))
}

// WithDeck creates a board around an existing deck, used when resuming
// a serialized game
func WithDeck(playerCount int, d *deck.Deck) (*Board, error) {
	if playerCount < 2 || playerCount > 4 {
		return nil, fmt.Errorf("player count %d out of range 2-4", playerCount)
	}

	b := &Board{
		playerCount: playerCount,
		deck:        d,
		placements:  make([]*Placement, playerCount),
	}
	for i := range b.placements {
		b.placements[i] = NewPlacement(i + 1)
	}
	return b, nil
}

// PlayerCount returns the number of seated players
func (b *Board) PlayerCount() int {
	return b.playerCount
}

// Deck returns the board's deck
func (b *Board) Deck() *deck.Deck {
	return b.deck
}

// Placement returns the placement for the given player number
func (b *Board) Placement(playerNumber int) (*Placement, error) {
	if playerNumber < 1 || playerNumber > b.playerCount {
		return nil, fmt.Errorf("player number %d out of range 1-%d", playerNumber, b.playerCount)
	}
	return b.placements[playerNumber-1], nil
}

// Placements returns all placements in player-number order
func (b *Board) Placements() []*Placement {
	return b.placements
}

// SetPlacements writes a full set of row assignments for one player.
// This is the single entry point the external layer uses to push
// placements; each row follows SetRow's leading-replace semantics.
func (b *Board) SetPlacements(playerNumber int, bottom, middle, top []deck.Card) error {
	p, err := b.Placement(playerNumber)
	if err != nil {
		return err
	}

	if err := p.SetRow(Bottom, bottom); err != nil {
		return err
	}
	if err := p.SetRow(Middle, middle); err != nil {
		return err
	}
	return p.SetRow(Top, top)
}

// RandomlyPopulate deals 13 cards to every placement and fills
// top(3), middle(5), bottom(5) in that order. Simulation and testing
// aid, not part of the production turn flow.
func (b *Board) RandomlyPopulate() error {
	for _, p := range b.placements {
		cards, err := b.deck.DealN(13)
		if err != nil {
			return err
		}
		if err := p.SetRow(Top, cards[0:3]); err != nil {
			return err
		}
		if err := p.SetRow(Middle, cards[3:8]); err != nil {
			return err
		}
		if err := p.SetRow(Bottom, cards[8:13]); err != nil {
			return err
		}
	}
	return nil
}
