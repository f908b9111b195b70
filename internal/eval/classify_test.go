package eval

import "testing"

func TestClassifyHand(t *testing.T) {
	tests := []struct {
		hand     string
		expected string
	}{
		{"ACKCQCJCTC", "Straight Flush A high"},
		{"9H9D9S9C2H", "Four of a Kind 9s, 2 kicker"},
		{"KHKDKSQCQH", "Full House Ks full of Qs"},
		{"AH9H7H5H3H", "Flush A high, 9 kicker"},
		{"TH9D8S7C6H", "Straight T high"},
		{"7H7D7SKC2H", "Three of a Kind 7s, K kicker"},
		{"JHJD4S4CAH", "Two Pair Js and 4s, A kicker"},
		{"8H8DKSQC2H", "Pair of 8s, K kicker"},
		{"AHKD9S5C3H", "High Card: A, kickers: K, 3"},
		{"2H2D2C", "Three of a Kind 2s"},
		{"AHAD9C", "Pair of As, 9 kicker"},
		{"KH9D2C", "High Card: K, kickers: 9, 2"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			got, err := ClassifyHand(tt.hand)
			if err != nil {
				t.Fatalf("ClassifyHand(%q) failed: %v", tt.hand, err)
			}
			if got != tt.expected {
				t.Errorf("ClassifyHand(%q) = %q, want %q", tt.hand, got, tt.expected)
			}
		})
	}
}

func TestClassifyNullified(t *testing.T) {
	if _, err := Classify(Nullified()); err == nil {
		t.Error("nullified score should not classify")
	}
}
