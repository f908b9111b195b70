package eval

import (
	"slices"
	"testing"
)

func TestScore5(t *testing.T) {
	tests := []struct {
		name     string
		hand     string
		expected Score
	}{
		{
			name:     "royal straight flush",
			hand:     "ACKCQCJCTC",
			expected: Score{StraightFlush, 14},
		},
		{
			name:     "six high straight flush",
			hand:     "2H3H4H5H6H",
			expected: Score{StraightFlush, 6},
		},
		{
			name:     "four of a kind",
			hand:     "9H9D9S9C2H",
			expected: Score{FourOfAKind, 9, 2},
		},
		{
			name:     "full house",
			hand:     "KHKDKSQCQH",
			expected: Score{FullHouse, 13, 12},
		},
		{
			name:     "flush",
			hand:     "AH9H7H5H3H",
			expected: Score{Flush, 14, 9},
		},
		{
			name:     "ten high straight",
			hand:     "TH9D8S7C6H",
			expected: Score{Straight, 10},
		},
		{
			name:     "ace high straight",
			hand:     "AHKDQSJCTH",
			expected: Score{Straight, 14},
		},
		{
			// the ace always plays high, so the wheel is only a high card
			name:     "ace low is not a straight",
			hand:     "AH2D3S4C5H",
			expected: Score{HighCard, 14, 5, 2},
		},
		{
			// third element is the lowest remaining rank, not the next highest
			name:     "three of a kind",
			hand:     "7H7D7SKC2H",
			expected: Score{ThreeOfAKind, 7, 13, 2},
		},
		{
			name:     "two pair",
			hand:     "JHJD4S4CAH",
			expected: Score{TwoPair, 11, 4, 14},
		},
		{
			name:     "pair",
			hand:     "8H8DKSQC2H",
			expected: Score{Pair, 8, 13, 2},
		},
		{
			name:     "high card",
			hand:     "AHKD9S5C3H",
			expected: Score{HighCard, 14, 13, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Score5(tt.hand)
			if err != nil {
				t.Fatalf("Score5(%q) failed: %v", tt.hand, err)
			}
			if !slices.Equal(got, tt.expected) {
				t.Errorf("Score5(%q) = %v, want %v", tt.hand, got, tt.expected)
			}
		})
	}
}

func TestScore5Errors(t *testing.T) {
	for _, hand := range []string{"", "AH", "AHKDQSJC", "XHKDQSJCTH", "AXKDQSJCTH"} {
		if _, err := Score5(hand); err == nil {
			t.Errorf("Score5(%q) should fail", hand)
		}
	}
}

func TestScore3(t *testing.T) {
	tests := []struct {
		name     string
		hand     string
		expected Score
	}{
		{
			// trips carry only the rank
			name:     "three of a kind",
			hand:     "2H2D2C",
			expected: Score{ThreeOfAKind, 2},
		},
		{
			name:     "pair of aces",
			hand:     "AHAD9C",
			expected: Score{Pair, 14, 9},
		},
		{
			name:     "high card",
			hand:     "KH9D2C",
			expected: Score{HighCard, 13, 9, 2},
		},
		{
			// a flush-shaped 3-card hand is still only high card
			name:     "suited high card",
			hand:     "AHKHQH",
			expected: Score{HighCard, 14, 13, 12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Score3(tt.hand)
			if err != nil {
				t.Fatalf("Score3(%q) failed: %v", tt.hand, err)
			}
			if !slices.Equal(got, tt.expected) {
				t.Errorf("Score3(%q) = %v, want %v", tt.hand, got, tt.expected)
			}
		})
	}
}

func TestScoreHandDispatch(t *testing.T) {
	if s, err := ScoreHand("2H2D2C"); err != nil || s.Category() != ThreeOfAKind {
		t.Errorf("ScoreHand 6 chars = %v, %v", s, err)
	}
	if s, err := ScoreHand("ACKCQCJCTC"); err != nil || s.Category() != StraightFlush {
		t.Errorf("ScoreHand 10 chars = %v, %v", s, err)
	}
	if _, err := ScoreHand("AHKDQS2C"); err == nil {
		t.Error("ScoreHand should reject 8-character hands")
	}
}

// Hands listed weakest first; every later hand must beat every earlier
// one, which also exercises transitivity of Compare.
func TestScoreOrdering(t *testing.T) {
	hands := []string{
		"7H5D4S3C2H", // high card 7
		"AHKD9S5C3H", // high card A
		"2H2DKSQC3H", // pair of 2s
		"8H8DKSQC2H", // pair of 8s
		"4H4D3S3CAH", // two pair 4s and 3s
		"JHJD4S4CAH", // two pair Js and 4s
		"2H2D2SKCQH", // trip 2s
		"7H7D7SKC2H", // trip 7s
		"6H5D4S3C2H", // straight 6 high
		"AHKDQSJCTH", // straight A high
		"7H6H5H3H2H", // flush 7 high
		"AH9H7H5H3H", // flush A high
		"2H2D2S3C3H", // full house 2s over 3s
		"KHKDKSQCQH", // full house Ks over Qs
		"9H9D9S9C2H", // quad 9s
		"AHADASAC2H", // quad As
		"2H3H4H5H6H", // straight flush 6 high
		"ACKCQCJCTC", // straight flush A high
	}

	scores := make([]Score, len(hands))
	for i, hand := range hands {
		s, err := Score5(hand)
		if err != nil {
			t.Fatalf("Score5(%q) failed: %v", hand, err)
		}
		scores[i] = s
	}

	for i := range scores {
		if scores[i].Compare(scores[i]) != 0 {
			t.Errorf("hand %q does not tie with itself", hands[i])
		}
		for j := i + 1; j < len(scores); j++ {
			if !scores[j].Beats(scores[i]) {
				t.Errorf("%q (%v) should beat %q (%v)", hands[j], scores[j], hands[i], scores[i])
			}
			if scores[i].Compare(scores[j]) != -1 {
				t.Errorf("%q should lose to %q", hands[i], hands[j])
			}
		}
	}
}

func TestScoreCompareAcrossLengths(t *testing.T) {
	// A nullified row loses to any real hand and ties another
	// nullified row
	nul := Nullified()
	high, err := Score5("7H5D4S3C2H")
	if err != nil {
		t.Fatal(err)
	}
	if !high.Beats(nul) {
		t.Error("any hand should beat a nullified score")
	}
	if nul.Compare(Nullified()) != 0 {
		t.Error("nullified scores should tie")
	}

	// Equal prefixes with different lengths order by length
	if (Score{5, 10}).Compare(Score{5}) != 1 {
		t.Error("longer tuple with equal prefix should win")
	}
}

func TestRankConversion(t *testing.T) {
	for val := 2; val <= 14; val++ {
		c, err := RankChar(val)
		if err != nil {
			t.Fatalf("RankChar(%d) failed: %v", val, err)
		}
		back, err := RankVal(c[0])
		if err != nil {
			t.Fatalf("RankVal(%q) failed: %v", c, err)
		}
		if back != val {
			t.Errorf("round trip %d -> %q -> %d", val, c, back)
		}
	}

	if _, err := RankChar(15); err == nil {
		t.Error("RankChar(15) should fail")
	}
	if _, err := RankVal('1'); err == nil {
		t.Error("RankVal('1') should fail")
	}
}
