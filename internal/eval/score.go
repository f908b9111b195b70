package eval

// Hand category ranks. Higher is better. The 3-card evaluator only
// produces HighCard, Pair and ThreeOfAKind; the shared values keep row
// scores comparable for foul detection.
const (
	HighCard      = 1
	Pair          = 2
	TwoPair       = 3
	ThreeOfAKind  = 4
	Straight      = 5
	Flush         = 6
	FullHouse     = 7
	FourOfAKind   = 8
	StraightFlush = 9
)

// Score is a hand score tuple: the category rank first, then tie-break
// rank values most significant first. A nullified (fouled) row scores
// as the zero tuple {0, 0}.
type Score []int

// Nullified is the score a fouled player's rows contribute
func Nullified() Score {
	return Score{0, 0}
}

// Category returns the hand-category rank, or 0 for a nullified score
func (s Score) Category() int {
	if len(s) == 0 {
		return 0
	}
	return s[0]
}

// Compare orders two score tuples lexicographically: 1 if s beats o,
// -1 if o beats s, 0 for a tie. Within a category tuples have equal
// length, so the prefix rule only matters across categories.
func (s Score) Compare(o Score) int {
	for i := 0; i < len(s) && i < len(o); i++ {
		if s[i] > o[i] {
			return 1
		}
		if s[i] < o[i] {
			return -1
		}
	}
	if len(s) > len(o) {
		return 1
	}
	if len(s) < len(o) {
		return -1
	}
	return 0
}

// Beats reports whether s strictly beats o
func (s Score) Beats(o Score) bool {
	return s.Compare(o) > 0
}
