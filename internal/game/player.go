package game

import (
	"fmt"

	"github.com/openfacepoker/engine/internal/board"
	"github.com/openfacepoker/engine/internal/deck"
	"github.com/openfacepoker/engine/internal/eval"
)

// Player is one seat at the table. Score is cumulative across rounds;
// Cards holds the cards dealt this round that are not yet placed.
type Player struct {
	Number int
	Score  int
	Cards  []deck.Card

	// Result caches this round's scoring outcome once the board has
	// been scored; nil until then
	Result *RoundResult
}

// NewPlayer creates a player with a zero score
func NewPlayer(number int) (*Player, error) {
	if number < 1 || number > 4 {
		return nil, fmt.Errorf("player number %d out of range 1-4", number)
	}
	return &Player{Number: number}, nil
}

// RoundResult is a player's evaluated round: the foul flag and each
// row's hand text, score tuple and classification. When the player
// fouled the row score tuples are nullified for royalty and row-win
// purposes, but the hand text and classification are kept.
type RoundResult struct {
	Fouled bool
	Bottom board.RowScore
	Middle board.RowScore
	Top    board.RowScore
}

// Row returns the named row's score record
func (r *RoundResult) Row(name board.RowName) board.RowScore {
	switch name {
	case board.Bottom:
		return r.Bottom
	case board.Middle:
		return r.Middle
	default:
		return r.Top
	}
}

// nullify zeroes all row score tuples, used for fouled players
func (r *RoundResult) nullify() {
	r.Bottom.Score = eval.Nullified()
	r.Middle.Score = eval.Nullified()
	r.Top.Score = eval.Nullified()
}
