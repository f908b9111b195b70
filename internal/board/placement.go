package board

import (
	"fmt"

	"github.com/openfacepoker/engine/internal/deck"
)

// Placement is one player's three rows
type Placement struct {
	playerNumber int
	bottom       *Row
	middle       *Row
	top          *Row
}

// NewPlacement creates an empty placement for the given player number
func NewPlacement(playerNumber int) *Placement {
	return &Placement{
		playerNumber: playerNumber,
		bottom:       NewRow(Bottom),
		middle:       NewRow(Middle),
		top:          NewRow(Top),
	}
}

// PlayerNumber returns the owning player's number
func (p *Placement) PlayerNumber() int {
	return p.playerNumber
}

// Row returns the named row
func (p *Placement) Row(name RowName) (*Row, error) {
	switch name {
	case Bottom:
		return p.bottom, nil
	case Middle:
		return p.middle, nil
	case Top:
		return p.top, nil
	default:
		return nil, fmt.Errorf("unknown row %q", name)
	}
}

// SetRow writes cards into the named row's slots in order starting at
// position 1. Only the supplied leading positions are replaced;
// trailing slots keep whatever was previously set, so callers must
// supply a full row to define it completely.
func (p *Placement) SetRow(name RowName, cards []deck.Card) error {
	row, err := p.Row(name)
	if err != nil {
		return err
	}
	if len(cards) > row.Size() {
		return fmt.Errorf("%d cards exceed %s row capacity %d", len(cards), name, row.Size())
	}
	for _, c := range cards {
		if !c.IsValid() {
			return fmt.Errorf("invalid card in %s row", name)
		}
	}

	for i, c := range cards {
		if err := row.SetPlacement(c, i+1, true); err != nil {
			return err
		}
	}
	return nil
}

// Rows returns the three rows in bottom, middle, top order
func (p *Placement) Rows() [3]*Row {
	return [3]*Row{p.bottom, p.middle, p.top}
}
