package searcher

import "shogi/game"

// Heuristic weights for single-ply move scoring.
const (
	CaptureMultiplier = 2
	PromotionBonus    = 300
	AttackBonus       = 150 // Destination within AttackRange of the enemy king
	DropBonus         = 200
	DropEdgeBonus     = 100 // Drop on either side's back three ranks
	TerritoryBonus    = 120
	CheckBonus        = 500
	DefenseBonus      = 250
	KingShieldPenalty = 100 // Moving a piece away from next to the own king
	MaxJitter         = 20

	AttackRange = 3
	ShieldRange = 2
)

// Scorer ranks moves by a one-ply composite of material, promotion, king
// pressure, king safety and a positional table, without looking ahead.
type Scorer struct {
	rng Random
}

func NewScorer(rng Random) *Scorer {
	return &Scorer{rng: rng}
}

// SelectMove returns the highest scoring move. A small random jitter breaks
// ties.
func (s *Scorer) SelectMove(moves []game.Move, p game.Position) (game.Move, error) {
	if len(moves) == 0 {
		return game.Move{}, ErrNoMoves
	}
	var best ScoredMove
	for i, m := range moves {
		score := s.Score(m, p) + s.rng.Intn(MaxJitter)
		if i == 0 || score > best.Score {
			best = ScoredMove{Move: m, Score: score}
		}
	}
	return best.Move, nil
}

// Score is the deterministic part of the composite. King terms are skipped
// for a side whose king is not on the board.
func (s *Scorer) Score(m game.Move, p game.Position) int {
	self := p.Turn()
	score := 0

	if m.IsCapture() {
		score += m.Capture.Value() * CaptureMultiplier
	}
	if m.Promote {
		score += PromotionBonus
	}
	if m.IsDrop() {
		score += DropBonus
		if m.To.Rank <= game.PromotionRanks || m.To.Rank > game.Ranks-game.PromotionRanks {
			score += DropEdgeBonus
		}
	}
	score += game.PositionValue(m.Piece, self, m.To)
	if game.InPromotionZone(self, m.To) {
		score += TerritoryBonus
	}

	if enemyKing, ok := p.KingSquare(self.Opponent()); ok {
		d := m.To.Distance(enemyKing)
		if d <= AttackRange {
			score += AttackBonus
		}
		// Landing next to the king is treated as giving check
		if d == 1 {
			score += CheckBonus
		}
	}

	if ownKing, ok := p.KingSquare(self); ok {
		if d := m.To.Distance(ownKing); d > 0 && d <= ShieldRange {
			score += DefenseBonus
		}
		if !m.IsDrop() && m.From.Distance(ownKing) <= ShieldRange {
			score -= KingShieldPenalty
		}
	}
	return score
}
