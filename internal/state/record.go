// Package state defines the serializable game-state record exchanged
// with the external layers. Records are strictly validated before any
// Game is constructed from them: malformed records are rejected whole,
// never partially interpreted.
package state

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/openfacepoker/engine/internal/board"
	"github.com/openfacepoker/engine/internal/deck"
	"github.com/openfacepoker/engine/internal/game"
)

// Record is the full serializable game state
type Record struct {
	PlayerCount int                     `json:"playerCount"`
	Variant     string                  `json:"variant"`
	Players     map[string]PlayerRecord `json:"players"`
	GameState   GameStateRecord         `json:"gameState"`
}

// PlayerRecord is one player's serialized state
type PlayerRecord struct {
	PlayerNumber int      `json:"playerNumber"`
	Score        int      `json:"score"`
	Cards        []string `json:"cards"`
}

// GameStateRecord carries the turn state, the deck and the placements
type GameStateRecord struct {
	RoundNumber        int                        `json:"roundNumber"`
	RoundActionNumber  int                        `json:"roundActionNumber"`
	FirstToAct         int                        `json:"firstToAct"`
	NextToAct          int                        `json:"nextToAct"`
	ActingOrderPointer int                        `json:"actingOrderPointer"`
	Deck               []string                   `json:"deck,omitempty"`
	DeckPointer        int                        `json:"deckPointer"`
	Placements         map[string]PlacementRecord `json:"placements"`
}

// PlacementRecord is one player's serialized rows. Row lists are
// shorter than capacity while unfilled.
type PlacementRecord struct {
	PlayerNumber int      `json:"playerNumber"`
	BottomRow    []string `json:"bottomRow"`
	MiddleRow    []string `json:"middleRow"`
	TopRow       []string `json:"topRow"`
}

// Decode parses and validates a JSON record. Unknown fields are
// rejected, as is any structural or card-code violation.
func Decode(data []byte) (*Record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var rec Record
	if err := dec.Decode(&rec); err != nil {
		return nil, fmt.Errorf("decoding game state: %w", err)
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Encode renders the record as JSON
func (r *Record) Encode() ([]byte, error) {
	return json.Marshal(r)
}

// Validate checks every field and canonicalizes card codes in place.
// A record without a deck (a sanitised copy) is otherwise valid but
// cannot be used to resume a game.
func (r *Record) Validate() error {
	if r.PlayerCount < 2 || r.PlayerCount > 4 {
		return fmt.Errorf("player count %d out of range 2-4", r.PlayerCount)
	}
	if !game.Variant(r.Variant).Valid() {
		return fmt.Errorf("unknown variant %q", r.Variant)
	}

	gs := &r.GameState
	if gs.RoundNumber < 1 {
		return fmt.Errorf("round number %d must be >= 1", gs.RoundNumber)
	}
	if gs.RoundActionNumber < 1 {
		return fmt.Errorf("round action number %d must be >= 1", gs.RoundActionNumber)
	}
	if gs.FirstToAct < 1 || gs.FirstToAct > r.PlayerCount {
		return fmt.Errorf("first to act %d out of range 1-%d", gs.FirstToAct, r.PlayerCount)
	}
	if gs.NextToAct < 1 || gs.NextToAct > r.PlayerCount {
		return fmt.Errorf("next to act %d out of range 1-%d", gs.NextToAct, r.PlayerCount)
	}
	if gs.ActingOrderPointer < 0 || gs.ActingOrderPointer >= r.PlayerCount {
		return fmt.Errorf("acting order pointer %d out of range 0-%d", gs.ActingOrderPointer, r.PlayerCount-1)
	}
	if gs.DeckPointer < 0 || gs.DeckPointer > 52 {
		return fmt.Errorf("deck pointer %d out of range 0-52", gs.DeckPointer)
	}

	if gs.Deck != nil {
		if len(gs.Deck) != 52 {
			return fmt.Errorf("deck must contain exactly 52 cards, got %d", len(gs.Deck))
		}
		seen := make(map[deck.Card]bool, 52)
		for i, code := range gs.Deck {
			c, err := deck.Parse(code)
			if err != nil {
				return fmt.Errorf("deck position %d: %w", i, err)
			}
			if seen[c] {
				return fmt.Errorf("duplicate card %s in deck", c)
			}
			seen[c] = true
			gs.Deck[i] = c.Code()
		}
	}

	if err := r.validatePlayers(); err != nil {
		return err
	}
	return r.validatePlacements()
}

func (r *Record) validatePlayers() error {
	if len(r.Players) != r.PlayerCount {
		return fmt.Errorf("expected %d player entries, got %d", r.PlayerCount, len(r.Players))
	}
	for n := 1; n <= r.PlayerCount; n++ {
		key := strconv.Itoa(n)
		p, ok := r.Players[key]
		if !ok {
			return fmt.Errorf("missing player entry %q", key)
		}
		if p.PlayerNumber != n {
			return fmt.Errorf("player entry %q has player number %d", key, p.PlayerNumber)
		}
		if err := canonicalizeCodes(p.Cards); err != nil {
			return fmt.Errorf("player %d cards: %w", n, err)
		}
	}
	return nil
}

func (r *Record) validatePlacements() error {
	placements := r.GameState.Placements
	if len(placements) != r.PlayerCount {
		return fmt.Errorf("expected %d placement entries, got %d", r.PlayerCount, len(placements))
	}
	for n := 1; n <= r.PlayerCount; n++ {
		key := strconv.Itoa(n)
		p, ok := placements[key]
		if !ok {
			return fmt.Errorf("missing placement entry %q", key)
		}
		if p.PlayerNumber != n {
			return fmt.Errorf("placement entry %q has player number %d", key, p.PlayerNumber)
		}

		rows := []struct {
			name  board.RowName
			cards []string
		}{
			{board.Bottom, p.BottomRow},
			{board.Middle, p.MiddleRow},
			{board.Top, p.TopRow},
		}
		for _, row := range rows {
			if len(row.cards) > row.name.Capacity() {
				return fmt.Errorf("player %d %s row holds %d cards, capacity %d",
					n, row.name, len(row.cards), row.name.Capacity())
			}
			if err := canonicalizeCodes(row.cards); err != nil {
				return fmt.Errorf("player %d %s row: %w", n, row.name, err)
			}
		}
	}
	return nil
}

// canonicalizeCodes validates each card code and rewrites it in
// canonical upper-case form
func canonicalizeCodes(codes []string) error {
	for i, code := range codes {
		c, err := deck.Parse(code)
		if err != nil {
			return err
		}
		codes[i] = c.Code()
	}
	return nil
}

// HasDeck reports whether the record carries the full deck order
// (false for sanitised copies)
func (r *Record) HasDeck() bool {
	return r.GameState.Deck != nil
}

// Sanitized returns a deep copy with the deck order removed, safe to
// hand to a client without exposing undealt cards
func (r *Record) Sanitized() *Record {
	out := &Record{
		PlayerCount: r.PlayerCount,
		Variant:     r.Variant,
		Players:     make(map[string]PlayerRecord, len(r.Players)),
		GameState:   r.GameState,
	}
	out.GameState.Deck = nil
	out.GameState.Placements = make(map[string]PlacementRecord, len(r.GameState.Placements))

	for k, p := range r.Players {
		p.Cards = append([]string(nil), p.Cards...)
		out.Players[k] = p
	}
	for k, p := range r.GameState.Placements {
		p.BottomRow = append([]string(nil), p.BottomRow...)
		p.MiddleRow = append([]string(nil), p.MiddleRow...)
		p.TopRow = append([]string(nil), p.TopRow...)
		out.GameState.Placements[k] = p
	}
	return out
}
