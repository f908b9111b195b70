package eval

import "fmt"

// rankValToChar maps the non-digit rank values to their characters.
// Digit ranks (2-9) map to their decimal digit.
var rankValToChar = map[int]string{
	10: "T",
	11: "J",
	12: "Q",
	13: "K",
	14: "A",
}

// rankCharToVal is the inverse mapping for the non-digit characters
var rankCharToVal = map[byte]int{
	'T': 10,
	'J': 11,
	'Q': 12,
	'K': 13,
	'A': 14,
}

// RankChar converts a rank value (2-14) to its character form,
// e.g. 14 -> "A". Conversion is total over the 13 rank values.
func RankChar(rank int) (string, error) {
	if rank < 2 || rank > 14 {
		return "", fmt.Errorf("rank value %d out of range 2-14", rank)
	}
	if c, ok := rankValToChar[rank]; ok {
		return c, nil
	}
	return fmt.Sprintf("%d", rank), nil
}

// RankVal converts a rank character to its value, e.g. 'A' -> 14
func RankVal(c byte) (int, error) {
	if v, ok := rankCharToVal[c]; ok {
		return v, nil
	}
	if c >= '2' && c <= '9' {
		return int(c - '0'), nil
	}
	return 0, fmt.Errorf("invalid rank character %q", c)
}

// mustRankChar is RankChar for rank values already validated by the
// evaluator; it panics on values outside 2-14.
func mustRankChar(rank int) string {
	c, err := RankChar(rank)
	if err != nil {
		panic(err)
	}
	return c
}
