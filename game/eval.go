package game

// EvaluateMaterial tallies material from self's point of view: pieces on the
// board at full value, pieces in hand at 80% since they need a move to deploy.
// Positive favours self.
func EvaluateMaterial(p Position, self Side) int {
	score := 0
	for _, piece := range p.board {
		if piece.Empty() {
			continue
		}
		if piece.Side == self {
			score += piece.Kind.Value()
		} else {
			score -= piece.Kind.Value()
		}
	}

	for i, kind := range HandKinds {
		score += handValue(kind) * int(p.hands[self][i])
		score -= handValue(kind) * int(p.hands[self.Opponent()][i])
	}
	return score
}

func handValue(kind PieceKind) int {
	return kind.Value() * 4 / 5
}

// PositionValue is a static bonus for a piece of the given kind standing on the
// square. It favours the centre and adds a per-kind term; ranks are read from
// the owner's point of view.
func PositionValue(kind PieceKind, side Side, sq Square) int {
	center := Square{File: 5, Rank: 5}
	base := max(0, 40-sq.Distance(center)*5)
	rank := RelativeRank(side, sq.Rank)
	file := sq.File
	if side == White {
		file = Files + 1 - sq.File
	}

	switch kind {
	case Pawn:
		// Pawns gain value as they advance
		return base + (Ranks-rank)*15
	case Lance:
		if sq.File == 1 || sq.File == Files {
			return base + 30
		}
	case Knight:
		if abs(sq.File-5) <= 2 {
			return base + 25
		}
	case Silver:
		if rank <= 6 {
			return base + 20
		}
	case Gold:
		return base + 15
	case Bishop:
		// Long diagonals
		if abs(file-rank) <= 1 {
			return base + 35
		}
	case Rook:
		if sq.File == 5 || rank == 5 {
			return base + 40
		}
	}
	return base
}
