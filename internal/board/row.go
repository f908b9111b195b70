// Package board holds the per-player card placement model: fixed
// capacity rows grouped into placements, grouped into a board that owns
// the deck. The board is rebuilt fresh each round.
package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/openfacepoker/engine/internal/deck"
	"github.com/openfacepoker/engine/internal/eval"
)

// RowName identifies one of the three rows of a placement
type RowName string

const (
	Top    RowName = "top"
	Middle RowName = "middle"
	Bottom RowName = "bottom"
)

// Capacity returns the number of card slots for the row
func (n RowName) Capacity() int {
	if n == Top {
		return 3
	}
	return 5
}

// Valid reports whether the row name is one of top/middle/bottom
func (n RowName) Valid() bool {
	return n == Top || n == Middle || n == Bottom
}

// ErrIncompleteRow is returned when hand text is requested for a row
// with empty slots
var ErrIncompleteRow = errors.New("row has empty slots")

// Row is a fixed-capacity ordered sequence of card slots. A slot is
// either empty or holds exactly one card; a filled slot is only
// rewritten when the caller forces an overwrite.
type Row struct {
	name  RowName
	slots []deck.Card
}

// RowScore is a row's evaluated result: the concatenated hand text,
// its score tuple and the human readable classification
type RowScore struct {
	Hand  string
	Score eval.Score
	Class string
}

// NewRow creates an empty row for the given name
func NewRow(name RowName) *Row {
	return &Row{
		name:  name,
		slots: make([]deck.Card, name.Capacity()),
	}
}

// Name returns the row's name
func (r *Row) Name() RowName {
	return r.name
}

// Size returns the row's slot capacity
func (r *Row) Size() int {
	return len(r.slots)
}

// SetPlacement writes a card into the 1-based position. Without force
// only an empty slot may be written, which guards against double
// placement; force overwrites.
func (r *Row) SetPlacement(c deck.Card, position int, force bool) error {
	if !c.IsValid() {
		return fmt.Errorf("invalid card for %s row", r.name)
	}
	if position < 1 || position > len(r.slots) {
		return fmt.Errorf("position %d out of range 1-%d for %s row", position, len(r.slots), r.name)
	}
	if !force && r.slots[position-1].IsValid() {
		return fmt.Errorf("%s row position %d already holds %s", r.name, position, r.slots[position-1])
	}
	r.slots[position-1] = c
	return nil
}

// Card returns the card at the 1-based position and whether the slot
// is filled
func (r *Row) Card(position int) (deck.Card, bool) {
	if position < 1 || position > len(r.slots) {
		return deck.Card{}, false
	}
	c := r.slots[position-1]
	return c, c.IsValid()
}

// Cards returns the filled slots in slot order
func (r *Row) Cards() []deck.Card {
	cards := make([]deck.Card, 0, len(r.slots))
	for _, c := range r.slots {
		if c.IsValid() {
			cards = append(cards, c)
		}
	}
	return cards
}

// HandText concatenates each slot's canonical code in order, producing
// the hand string the evaluator consumes. Fails if any slot is empty.
func (r *Row) HandText() (string, error) {
	var b strings.Builder
	for i, c := range r.slots {
		if !c.IsValid() {
			return "", fmt.Errorf("%w: %s row position %d", ErrIncompleteRow, r.name, i+1)
		}
		b.WriteString(c.Code())
	}
	return b.String(), nil
}

// ScoreAndClassify evaluates the completed row, dispatching to the
// 3-card or 5-card evaluator by capacity
func (r *Row) ScoreAndClassify() (RowScore, error) {
	hand, err := r.HandText()
	if err != nil {
		return RowScore{}, err
	}

	var score eval.Score
	if len(r.slots) == 3 {
		score, err = eval.Score3(hand)
	} else {
		score, err = eval.Score5(hand)
	}
	if err != nil {
		return RowScore{}, err
	}

	class, err := eval.Classify(score)
	if err != nil {
		return RowScore{}, err
	}

	return RowScore{Hand: hand, Score: score, Class: class}, nil
}
