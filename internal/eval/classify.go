package eval

import "fmt"

// Classify renders a score tuple as a fixed-format human-readable
// classification, e.g. "Full House Ks full of Qs" or
// "Pair of As, 7 kicker". Works for both 3-card and 5-card scores.
func Classify(s Score) (string, error) {
	switch s.Category() {
	case StraightFlush:
		return fmt.Sprintf("Straight Flush %s high", mustRankChar(s[1])), nil
	case FourOfAKind:
		return fmt.Sprintf("Four of a Kind %ss, %s kicker", mustRankChar(s[1]), mustRankChar(s[2])), nil
	case FullHouse:
		return fmt.Sprintf("Full House %ss full of %ss", mustRankChar(s[1]), mustRankChar(s[2])), nil
	case Flush:
		return fmt.Sprintf("Flush %s high, %s kicker", mustRankChar(s[1]), mustRankChar(s[2])), nil
	case Straight:
		return fmt.Sprintf("Straight %s high", mustRankChar(s[1])), nil
	case ThreeOfAKind:
		// 3-card trips carry no kickers
		if len(s) == 2 {
			return fmt.Sprintf("Three of a Kind %ss", mustRankChar(s[1])), nil
		}
		return fmt.Sprintf("Three of a Kind %ss, %s kicker", mustRankChar(s[1]), mustRankChar(s[2])), nil
	case TwoPair:
		return fmt.Sprintf("Two Pair %ss and %ss, %s kicker",
			mustRankChar(s[1]), mustRankChar(s[2]), mustRankChar(s[3])), nil
	case Pair:
		return fmt.Sprintf("Pair of %ss, %s kicker", mustRankChar(s[1]), mustRankChar(s[2])), nil
	case HighCard:
		return fmt.Sprintf("High Card: %s, kickers: %s, %s",
			mustRankChar(s[1]), mustRankChar(s[2]), mustRankChar(s[3])), nil
	default:
		return "", fmt.Errorf("cannot classify score %v", s)
	}
}

// ClassifyHand scores raw hand text and classifies the result
func ClassifyHand(hand string) (string, error) {
	s, err := ScoreHand(hand)
	if err != nil {
		return "", err
	}
	return Classify(s)
}
