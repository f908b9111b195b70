package state

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfacepoker/engine/internal/deck"
	"github.com/openfacepoker/engine/internal/randutil"
)

// validRecord builds a consistent 2-player mid-round record
func validRecord(t *testing.T) *Record {
	t.Helper()
	d := deck.New(randutil.New(1))
	codes := d.Codes()

	return &Record{
		PlayerCount: 2,
		Variant:     "ofc",
		Players: map[string]PlayerRecord{
			"1": {PlayerNumber: 1, Score: 6, Cards: append([]string(nil), codes[0:5]...)},
			"2": {PlayerNumber: 2, Score: -6, Cards: append([]string(nil), codes[5:10]...)},
		},
		GameState: GameStateRecord{
			RoundNumber:        1,
			RoundActionNumber:  2,
			FirstToAct:         1,
			NextToAct:          1,
			ActingOrderPointer: 0,
			Deck:               append([]string(nil), codes...),
			DeckPointer:        10,
			Placements: map[string]PlacementRecord{
				"1": {PlayerNumber: 1, BottomRow: []string{codes[0]}, MiddleRow: nil, TopRow: nil},
				"2": {PlayerNumber: 2, BottomRow: nil, MiddleRow: []string{codes[5]}, TopRow: nil},
			},
		},
	}
}

func TestRecordRoundTrip(t *testing.T) {
	rec := validRecord(t)

	data, err := rec.Encode()
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, rec.PlayerCount, decoded.PlayerCount)
	assert.Equal(t, rec.Variant, decoded.Variant)
	assert.Equal(t, rec.Players, decoded.Players)
	assert.Equal(t, rec.GameState.Deck, decoded.GameState.Deck)
	assert.Equal(t, rec.GameState.DeckPointer, decoded.GameState.DeckPointer)
	assert.Equal(t, rec.GameState.Placements, decoded.GameState.Placements)
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	rec := validRecord(t)
	data, err := rec.Encode()
	require.NoError(t, err)

	var loose map[string]any
	require.NoError(t, json.Unmarshal(data, &loose))
	loose["extraField"] = true
	data, err = json.Marshal(loose)
	require.NoError(t, err)

	_, err = Decode(data)
	assert.Error(t, err)
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	_, err := Decode([]byte(`{"playerCount": 2,`))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Record)
	}{
		{"player count too high", func(r *Record) { r.PlayerCount = 5 }},
		{"player count too low", func(r *Record) { r.PlayerCount = 1 }},
		{"unknown variant", func(r *Record) { r.Variant = "badugi" }},
		{"round number zero", func(r *Record) { r.GameState.RoundNumber = 0 }},
		{"action number zero", func(r *Record) { r.GameState.RoundActionNumber = 0 }},
		{"first to act out of range", func(r *Record) { r.GameState.FirstToAct = 3 }},
		{"next to act out of range", func(r *Record) { r.GameState.NextToAct = 0 }},
		{"pointer out of range", func(r *Record) { r.GameState.ActingOrderPointer = 2 }},
		{"deck pointer out of range", func(r *Record) { r.GameState.DeckPointer = 53 }},
		{"short deck", func(r *Record) { r.GameState.Deck = r.GameState.Deck[:51] }},
		{"duplicate in deck", func(r *Record) { r.GameState.Deck[1] = r.GameState.Deck[0] }},
		{"bad card in deck", func(r *Record) { r.GameState.Deck[0] = "ZZ" }},
		{"missing player entry", func(r *Record) { delete(r.Players, "2") }},
		{"player entry key mismatch", func(r *Record) {
			p := r.Players["1"]
			p.PlayerNumber = 2
			r.Players["1"] = p
		}},
		{"bad card in hand", func(r *Record) {
			p := r.Players["1"]
			p.Cards = []string{"XX"}
			r.Players["1"] = p
		}},
		{"missing placement entry", func(r *Record) { delete(r.GameState.Placements, "1") }},
		{"placement key mismatch", func(r *Record) {
			p := r.GameState.Placements["2"]
			p.PlayerNumber = 1
			r.GameState.Placements["2"] = p
		}},
		{"top row over capacity", func(r *Record) {
			p := r.GameState.Placements["1"]
			p.TopRow = []string{"2H", "3H", "4H", "5H"}
			r.GameState.Placements["1"] = p
		}},
		{"bad card in row", func(r *Record) {
			p := r.GameState.Placements["1"]
			p.BottomRow = []string{"1H"}
			r.GameState.Placements["1"] = p
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecord(t)
			tt.mutate(rec)
			assert.Error(t, rec.Validate())
		})
	}
}

func TestValidateCanonicalizes(t *testing.T) {
	rec := validRecord(t)
	lower := make([]string, len(rec.GameState.Deck))
	for i, code := range rec.GameState.Deck {
		lower[i] = string(code[0]|0x20) + string(code[1]|0x20)
	}
	canonical := append([]string(nil), rec.GameState.Deck...)
	rec.GameState.Deck = lower

	require.NoError(t, rec.Validate())
	assert.Equal(t, canonical, rec.GameState.Deck)
}

func TestValidateWithoutDeck(t *testing.T) {
	rec := validRecord(t)
	rec.GameState.Deck = nil

	// a sanitised record is structurally valid
	require.NoError(t, rec.Validate())
	assert.False(t, rec.HasDeck())
}

func TestSanitized(t *testing.T) {
	rec := validRecord(t)
	require.True(t, rec.HasDeck())

	clean := rec.Sanitized()
	assert.False(t, clean.HasDeck())
	assert.Equal(t, rec.PlayerCount, clean.PlayerCount)
	assert.Equal(t, rec.Players, clean.Players)

	// deep copy: mutating the copy leaves the original alone
	p := clean.Players["1"]
	p.Cards[0] = "??"
	assert.NotEqual(t, "??", rec.Players["1"].Cards[0])

	pl := clean.GameState.Placements["1"]
	pl.BottomRow[0] = "??"
	assert.NotEqual(t, "??", rec.GameState.Placements["1"].BottomRow[0])

	// the sanitised encoding omits the deck entirely
	data, err := clean.Encode()
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"deck"`)
}
