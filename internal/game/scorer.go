package game

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/openfacepoker/engine/internal/board"
	"github.com/openfacepoker/engine/internal/eval"
)

// RoyaltySchedule maps hand categories to bonus points per row.
// The top row uses the pair/trips rules rather than a table.
type RoyaltySchedule struct {
	Bottom      map[int]int
	Middle      map[int]int
	RoyalBottom int
	RoyalMiddle int
	TopPairMin  int
	TopTripsAdd int
}

// scoopBonus is the extra transfer for winning all three rows in a
// pairwise comparison
const scoopBonus = 3

// DefaultRoyalties returns the standard royalty schedule
func DefaultRoyalties() *RoyaltySchedule {
	return &RoyaltySchedule{
		Bottom: map[int]int{
			eval.Straight:      2,
			eval.Flush:         4,
			eval.FullHouse:     6,
			eval.FourOfAKind:   10,
			eval.StraightFlush: 15,
		},
		Middle: map[int]int{
			eval.ThreeOfAKind:  2,
			eval.Straight:      4,
			eval.Flush:         8,
			eval.FullHouse:     12,
			eval.FourOfAKind:   20,
			eval.StraightFlush: 30,
		},
		RoyalBottom: 25,
		RoyalMiddle: 50,
		TopPairMin:  6,
		TopTripsAdd: 8,
	}
}

// RowRoyalty returns the bonus the given row score earns. Nullified
// scores and categories absent from the row's table earn nothing.
func (rs *RoyaltySchedule) RowRoyalty(row board.RowName, s eval.Score) int {
	cat := s.Category()
	if cat == 0 {
		return 0
	}

	switch row {
	case board.Bottom:
		if cat == eval.StraightFlush && s[1] == 14 {
			return rs.RoyalBottom
		}
		return rs.Bottom[cat]

	case board.Middle:
		if cat == eval.StraightFlush && s[1] == 14 {
			return rs.RoyalMiddle
		}
		return rs.Middle[cat]

	case board.Top:
		switch cat {
		case eval.Pair:
			if s[1] < rs.TopPairMin {
				return 0
			}
			return s[1] - rs.TopPairMin + 1
		case eval.ThreeOfAKind:
			return rs.TopTripsAdd + s[1]
		}
		return 0
	}

	return 0
}

// Scorer evaluates a completed board: per-player foul detection, then
// pairwise row wins, royalties and scoop bonuses across all player
// pairs, applied to the players' cumulative scores.
type Scorer struct {
	royalties *RoyaltySchedule
	logger    *log.Logger
}

// NewScorer creates a scorer. A nil schedule uses the defaults.
func NewScorer(royalties *RoyaltySchedule, logger *log.Logger) *Scorer {
	if royalties == nil {
		royalties = DefaultRoyalties()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Scorer{royalties: royalties, logger: logger}
}

// ScoreAll scores every player's placement and applies the pairwise
// point transfers. It returns one human-readable summary line per
// player pair; the lines are advisory output, not state.
func (s *Scorer) ScoreAll(b *board.Board, players []*Player) ([]string, error) {
	for _, p := range players {
		result, err := s.scorePlayer(b, p)
		if err != nil {
			return nil, fmt.Errorf("scoring player %d: %w", p.Number, err)
		}
		if result.Fouled {
			s.logger.Debug("player fouled", "player", p.Number)
			result.nullify()
		}
		p.Result = result
	}

	messages := make([]string, 0, len(players)*(len(players)-1)/2)
	for i := 0; i < len(players); i++ {
		for j := i + 1; j < len(players); j++ {
			msg := s.scorePair(players[i], players[j])
			s.logger.Debug(msg)
			messages = append(messages, msg)
		}
	}

	return messages, nil
}

// scorePlayer evaluates all three rows and flags a foul unless the
// scores satisfy bottom >= middle >= top
func (s *Scorer) scorePlayer(b *board.Board, p *Player) (*RoundResult, error) {
	placement, err := b.Placement(p.Number)
	if err != nil {
		return nil, err
	}

	result := &RoundResult{}
	for _, name := range []board.RowName{board.Bottom, board.Middle, board.Top} {
		row, err := placement.Row(name)
		if err != nil {
			return nil, err
		}
		rs, err := row.ScoreAndClassify()
		if err != nil {
			return nil, err
		}
		switch name {
		case board.Bottom:
			result.Bottom = rs
		case board.Middle:
			result.Middle = rs
		case board.Top:
			result.Top = rs
		}
	}

	if result.Bottom.Score.Compare(result.Middle.Score) < 0 ||
		result.Middle.Score.Compare(result.Top.Score) < 0 {
		result.Fouled = true
	}

	return result, nil
}

// scorePair applies one pairwise comparison and returns its summary
// line. Point transfers are symmetric: whatever p1 gains p2 loses.
func (s *Scorer) scorePair(p1, p2 *Player) string {
	if p1.Result.Fouled && p2.Result.Fouled {
		return fmt.Sprintf("Player %d and Player %d did not win any points from each other",
			p1.Number, p2.Number)
	}

	won := s.rowWins(p1, p2) + s.royaltyNet(p1, p2)

	scoopMessage := ""
	if sweeps(p1, p2) {
		p1.Score += scoopBonus
		p2.Score -= scoopBonus
		scoopMessage = fmt.Sprintf(" and scooped for +%d points!", scoopBonus)
	} else if sweeps(p2, p1) {
		p1.Score -= scoopBonus
		p2.Score += scoopBonus
		scoopMessage = fmt.Sprintf(" and scooped for +%d points!", scoopBonus)
	}

	p1.Score += won
	p2.Score -= won

	switch {
	case won > 0:
		return fmt.Sprintf("Player %d won %d points from Player %d", p1.Number, won, p2.Number) + scoopMessage
	case won < 0:
		return fmt.Sprintf("Player %d won %d points from Player %d", p2.Number, -won, p1.Number) + scoopMessage
	default:
		return fmt.Sprintf("Neither Player %d nor Player %d won any points from each other",
			p1.Number, p2.Number)
	}
}

// rowWins compares corresponding rows and returns the net points p1
// won: one point per strictly higher row, nothing on ties
func (s *Scorer) rowWins(p1, p2 *Player) int {
	won := 0
	for _, name := range []board.RowName{board.Bottom, board.Middle, board.Top} {
		switch p1.Result.Row(name).Score.Compare(p2.Result.Row(name).Score) {
		case 1:
			won++
		case -1:
			won--
		}
	}
	return won
}

// royaltyNet returns the difference between the two players' summed
// row royalties, positive when p1 earned more
func (s *Scorer) royaltyNet(p1, p2 *Player) int {
	net := 0
	for _, name := range []board.RowName{board.Bottom, board.Middle, board.Top} {
		net += s.royalties.RowRoyalty(name, p1.Result.Row(name).Score)
		net -= s.royalties.RowRoyalty(name, p2.Result.Row(name).Score)
	}
	return net
}

// sweeps reports whether a strictly beats b on all three rows
func sweeps(a, b *Player) bool {
	for _, name := range []board.RowName{board.Bottom, board.Middle, board.Top} {
		if a.Result.Row(name).Score.Compare(b.Result.Row(name).Score) <= 0 {
			return false
		}
	}
	return true
}
