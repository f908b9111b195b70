// Package eval scores and classifies the 3-card and 5-card poker hands
// used by the row placements. Hands are the concatenated two-character
// card codes produced by a row (6 chars for 3 cards, 10 for 5).
//
// The evaluator is histogram driven: pair-type categories fall straight
// out of rank frequencies, and straights/flushes are only checked for
// 5-card hands whose top frequency is 1. The straight test is
// max-min == 4 over the five distinct ranks, so an ace always plays
// high: A-2-3-4-5 is not a straight here and scores as high card.
package eval

import "fmt"

// nRanks is the size of the rank-frequency histogram (ranks 2-14)
const nRanks = 13

// Score5 scores a 5-card hand given as a 10-character string
func Score5(hand string) (Score, error) {
	hist, err := histogram(hand, 5)
	if err != nil {
		return nil, err
	}

	maxFreq, maxRank := highestFrequency(hist)
	secondFreq, secondRank := secondFrequency(hist, maxRank)

	var thirdKicker int
	if maxFreq <= 3 && secondFreq <= 2 {
		thirdKicker = lowestRemaining(hist, maxRank, secondRank)
	}

	switch {
	case maxFreq == 4:
		return Score{FourOfAKind, maxRank, secondRank}, nil

	case maxFreq == 3:
		if secondFreq == 2 {
			return Score{FullHouse, maxRank, secondRank}, nil
		}
		return Score{ThreeOfAKind, maxRank, secondRank, thirdKicker}, nil

	case maxFreq == 2:
		if secondFreq == 2 {
			return Score{TwoPair, maxRank, secondRank, thirdKicker}, nil
		}
		return Score{Pair, maxRank, secondRank, thirdKicker}, nil

	default:
		// All ranks distinct: the only candidates for straights and flushes
		if s := checkStraightFlush(hand); s != nil {
			return s, nil
		}
		return Score{HighCard, maxRank, secondRank, thirdKicker}, nil
	}
}

// Score3 scores a 3-card hand given as a 6-character string
func Score3(hand string) (Score, error) {
	hist, err := histogram(hand, 3)
	if err != nil {
		return nil, err
	}

	maxFreq, maxRank := highestFrequency(hist)

	if maxFreq == 3 {
		return Score{ThreeOfAKind, maxRank}, nil
	}

	_, secondRank := secondFrequency(hist, maxRank)
	if maxFreq == 2 {
		return Score{Pair, maxRank, secondRank}, nil
	}

	thirdKicker := lowestRemaining(hist, maxRank, secondRank)
	return Score{HighCard, maxRank, secondRank, thirdKicker}, nil
}

// ScoreHand dispatches on hand length: 6 characters to the 3-card
// evaluator, 10 to the 5-card evaluator
func ScoreHand(hand string) (Score, error) {
	switch len(hand) {
	case 6:
		return Score3(hand)
	case 10:
		return Score5(hand)
	default:
		return nil, fmt.Errorf("invalid hand %q: must be 6 or 10 characters", hand)
	}
}

// histogram builds the 13-bucket rank-frequency histogram for a hand of
// the given card count, validating every rank and suit character.
// Bucket i holds the frequency of rank value i+2.
func histogram(hand string, cards int) ([nRanks]int, error) {
	var hist [nRanks]int
	if len(hand) != cards*2 {
		return hist, fmt.Errorf("invalid hand %q: expected %d characters", hand, cards*2)
	}

	for i := 0; i < cards; i++ {
		rank, err := RankVal(hand[i*2])
		if err != nil {
			return hist, fmt.Errorf("invalid hand %q: %w", hand, err)
		}
		switch hand[i*2+1] {
		case 'H', 'D', 'S', 'C':
		default:
			return hist, fmt.Errorf("invalid hand %q: bad suit %q", hand, hand[i*2+1])
		}
		hist[rank-2]++
	}

	return hist, nil
}

// highestFrequency returns the top frequency and its rank value,
// breaking frequency ties toward the higher rank
func highestFrequency(hist [nRanks]int) (freq, rank int) {
	for i := 0; i < nRanks; i++ {
		if hist[i] >= freq {
			freq = hist[i]
			rank = i + 2
		}
	}
	return freq, rank
}

// secondFrequency returns the next-highest frequency and rank among the
// ranks other than exclude, again breaking ties toward the higher rank
func secondFrequency(hist [nRanks]int, exclude int) (freq, rank int) {
	for i := 0; i < nRanks; i++ {
		if i+2 != exclude && hist[i] >= freq {
			freq = hist[i]
			rank = i + 2
		}
	}
	return freq, rank
}

// lowestRemaining returns the lowest rank present in the hand outside
// the two already-consumed ranks, or 0 if none remain
func lowestRemaining(hist [nRanks]int, used1, used2 int) int {
	for i := 0; i < nRanks; i++ {
		rank := i + 2
		if rank != used1 && rank != used2 && hist[i] > 0 {
			return rank
		}
	}
	return 0
}

// checkStraightFlush evaluates the straight/flush categories for a
// 5-card hand with five distinct ranks. Returns nil when neither holds.
func checkStraightFlush(hand string) Score {
	var ranks [5]int
	for i := 0; i < 5; i++ {
		ranks[i], _ = RankVal(hand[i*2])
	}
	// insertion sort ascending
	for i := 1; i < 5; i++ {
		for j := i; j > 0 && ranks[j-1] > ranks[j]; j-- {
			ranks[j-1], ranks[j] = ranks[j], ranks[j-1]
		}
	}

	flush := true
	for i := 3; i < 10; i += 2 {
		if hand[i] != hand[1] {
			flush = false
			break
		}
	}
	straight := ranks[4]-ranks[0] == 4

	switch {
	case flush && straight:
		return Score{StraightFlush, ranks[4]}
	case flush:
		return Score{Flush, ranks[4], ranks[3]}
	case straight:
		return Score{Straight, ranks[4]}
	default:
		return nil
	}
}
