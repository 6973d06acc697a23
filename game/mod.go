package game

import "fmt"

const (
	Files = 9
	Ranks = 9

	// Promotion zone depth, counted from the far edge of each side.
	PromotionRanks = 3
)

// Side is one of the two players. Black (sente) moves first and starts on
// ranks 7-9; White (gote) starts on ranks 1-3.
type Side int8

const (
	Black Side = iota
	White
)

func (s Side) Opponent() Side {
	return 1 - s
}

func (s Side) String() string {
	if s == Black {
		return "black"
	}
	return "white"
}

// Square is a file/rank pair. Files run 9..1 from left to right as seen from
// Black; rank 1 is White's back rank.
type Square struct {
	File int
	Rank int
}

func (sq Square) Valid() bool {
	return sq.File >= 1 && sq.File <= Files && sq.Rank >= 1 && sq.Rank <= Ranks
}

// Distance is the Manhattan distance between two squares.
func (sq Square) Distance(other Square) int {
	return abs(sq.File-other.File) + abs(sq.Rank-other.Rank)
}

// String renders the square in USI notation, e.g. "7g".
func (sq Square) String() string {
	if !sq.Valid() {
		return "--"
	}
	return fmt.Sprintf("%d%c", sq.File, 'a'+sq.Rank-1)
}

func (sq Square) index() int {
	return (sq.Rank-1)*Files + (sq.File - 1)
}

func squareAt(index int) Square {
	return Square{File: index%Files + 1, Rank: index/Files + 1}
}

// RelativeRank maps a rank to the side's point of view: 1 is always the
// opponent's back rank and 9 the side's own.
func RelativeRank(side Side, rank int) int {
	if side == Black {
		return rank
	}
	return Ranks + 1 - rank
}

// InPromotionZone reports whether the square lies in the side's promotion zone
// (the opponent's territory).
func InPromotionZone(side Side, sq Square) bool {
	return RelativeRank(side, sq.Rank) <= PromotionRanks
}

// Evaluate scores a position in favour of the given side.
type Evaluate func(p Position, self Side) int

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
