package main

import (
	"fmt"
	"strings"

	"github.com/openfacepoker/engine/internal/deck"
	"github.com/openfacepoker/engine/internal/eval"
)

// ScoreCmd evaluates a hand string like "ACKCQCJCTC" or "AH AD 9C"
// and prints its score vector and classification.
type ScoreCmd struct {
	Hand []string `kong:"arg,help='Hand as card codes, joined or space separated'"`
}

func (c *ScoreCmd) Run() error {
	hand := strings.ToUpper(strings.Join(c.Hand, ""))

	cards, err := deck.ParseAll(splitCodes(hand))
	if err != nil {
		return err
	}

	score, err := eval.ScoreHand(hand)
	if err != nil {
		return err
	}
	class, err := eval.Classify(score)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", labelStyle.Render("Hand: "), renderCards(deck.Codes(cards)))
	fmt.Printf("%s %v\n", labelStyle.Render("Score:"), []int(score))
	fmt.Printf("%s %s\n", labelStyle.Render("Class:"), class)
	return nil
}

// splitCodes chops a joined hand string into two-character card codes
func splitCodes(hand string) []string {
	codes := make([]string, 0, len(hand)/2)
	for i := 0; i+1 < len(hand); i += 2 {
		codes = append(codes, hand[i:i+2])
	}
	return codes
}
