package deck

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Spades
	Clubs
)

// String returns the canonical one-character suit code
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Spades:
		return "S"
	case Clubs:
		return "C"
	default:
		return "?"
	}
}

// Rank represents a card rank. Aces are always high (14).
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the canonical one-character rank code
func (r Rank) String() string {
	switch r {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		if r >= Two && r <= Nine {
			return fmt.Sprintf("%d", int(r))
		}
		return "?"
	}
}

// Card represents a playing card. Cards are immutable values; two cards
// are equal when their rank and suit are equal.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Code returns the canonical two-character code (e.g. "AH", "TS")
func (c Card) Code() string {
	return c.Rank.String() + c.Suit.String()
}

// String returns the canonical two-character code
func (c Card) String() string {
	return c.Code()
}

// IsValid reports whether rank and suit are within the 13x4 alphabet
func (c Card) IsValid() bool {
	return c.Rank >= Two && c.Rank <= Ace && c.Suit >= Hearts && c.Suit <= Clubs
}

// Parse decodes a two-character card code. Input is case-insensitive;
// output cards encode back to the canonical upper-case form.
func Parse(code string) (Card, error) {
	if len(code) != 2 {
		return Card{}, fmt.Errorf("invalid card code %q: must be 2 characters", code)
	}

	var rank Rank
	switch code[0] {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		rank = Rank(code[0] - '0')
	case 'T', 't':
		rank = Ten
	case 'J', 'j':
		rank = Jack
	case 'Q', 'q':
		rank = Queen
	case 'K', 'k':
		rank = King
	case 'A', 'a':
		rank = Ace
	default:
		return Card{}, fmt.Errorf("invalid card code %q: bad rank %q", code, code[0])
	}

	var suit Suit
	switch code[1] {
	case 'H', 'h':
		suit = Hearts
	case 'D', 'd':
		suit = Diamonds
	case 'S', 's':
		suit = Spades
	case 'C', 'c':
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("invalid card code %q: bad suit %q", code, code[1])
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseAll decodes a list of two-character card codes
func ParseAll(codes []string) ([]Card, error) {
	cards := make([]Card, 0, len(codes))
	for _, code := range codes {
		c, err := Parse(code)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Codes encodes a list of cards to their canonical two-character codes
func Codes(cards []Card) []string {
	codes := make([]string, len(cards))
	for i, c := range cards {
		codes[i] = c.Code()
	}
	return codes
}
