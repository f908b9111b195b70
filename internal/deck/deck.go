package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// ErrExhausted is returned when dealing past the 52nd card
var ErrExhausted = errors.New("deck exhausted")

// Deck is an ordered sequence of the 52 unique cards plus a cursor
// marking how many have been dealt. The cursor only moves forward.
type Deck struct {
	cards [52]Card
	next  int
}

// New creates a deck containing all 52 rank/suit combinations,
// shuffled with the provided RNG. A nil RNG uses the global source.
func New(rng *rand.Rand) *Deck {
	d := &Deck{}

	i := 0
	for suit := Hearts; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards[i] = NewCard(rank, suit)
			i++
		}
	}

	d.shuffle(rng)
	return d
}

// FromCodes rebuilds a deck from an explicit 52-card order and a dealt
// count, for deterministic replay or resuming a serialized game. The
// codes must form exactly one of each of the 52 cards.
func FromCodes(codes []string, dealt int) (*Deck, error) {
	if len(codes) != 52 {
		return nil, fmt.Errorf("deck must contain exactly 52 cards, got %d", len(codes))
	}
	if dealt < 0 || dealt > 52 {
		return nil, fmt.Errorf("deck cursor out of range: %d", dealt)
	}

	d := &Deck{next: dealt}
	seen := make(map[Card]bool, 52)
	for i, code := range codes {
		c, err := Parse(code)
		if err != nil {
			return nil, err
		}
		if seen[c] {
			return nil, fmt.Errorf("duplicate card %s in deck", c)
		}
		seen[c] = true
		d.cards[i] = c
	}

	return d, nil
}

// shuffle performs a Fisher-Yates shuffle over the full deck
func (d *Deck) shuffle(rng *rand.Rand) {
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if rng != nil {
			j = rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// DealOne returns the card at the cursor and advances it
func (d *Deck) DealOne() (Card, error) {
	if d.next >= len(d.cards) {
		return Card{}, ErrExhausted
	}
	card := d.cards[d.next]
	d.next++
	return card, nil
}

// DealN deals n cards via repeated DealOne. If the deck runs out
// partway no cards are returned, but the cursor is not rolled back for
// cards already consumed (single-caller usage model).
func (d *Deck) DealN(n int) ([]Card, error) {
	cards := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		c, err := d.DealOne()
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Dealt returns the cursor position (number of cards dealt)
func (d *Deck) Dealt() int {
	return d.next
}

// Remaining returns the number of cards left to deal
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}

// Codes returns the full 52-card order as canonical codes,
// including cards already dealt
func (d *Deck) Codes() []string {
	return Codes(d.cards[:])
}
