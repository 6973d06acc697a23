package game

import "fmt"

// StandardRules generates moves the way the game's rule library does: every
// pseudo-legal board move and drop, without filtering moves that leave the
// own king attacked. The game ends when a king is captured or when the side to
// move has nothing to play. Drop restrictions such as double pawns or
// checkmate by pawn drop are not enforced.
type StandardRules struct{}

func NewStandardRules() *StandardRules {
	return &StandardRules{}
}

func (sr *StandardRules) LegalMoves(p Position) []Move {
	if kingCaptured(p) {
		return nil
	}
	moves := make([]Move, 0, 64)
	for i, piece := range p.board {
		if piece.Empty() || piece.Side != p.turn {
			continue
		}
		moves = sr.appendMovesFrom(moves, p, squareAt(i), piece)
	}
	return sr.appendDrops(moves, p)
}

func (sr *StandardRules) Apply(p Position, m Move) (Position, error) {
	if kingCaptured(p) {
		return p, fmt.Errorf("%w: game is over", ErrIllegalMove)
	}
	side := p.turn
	if m.Drop {
		if err := sr.checkDrop(p, m); err != nil {
			return p, err
		}
		next := p
		next.AddToHand(side, m.Piece, -1)
		next.Put(m.To, Piece{Kind: m.Piece, Side: side})
		next.turn = side.Opponent()
		return next, nil
	}

	piece, ok := p.PieceAt(m.From)
	if !ok || piece.Side != side {
		return p, fmt.Errorf("%w: no %s piece on %s", ErrIllegalMove, side, m.From)
	}
	if !containsMove(sr.appendMovesFrom(nil, p, m.From, piece), m) {
		return p, fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}

	next := p
	if m.Capture != NoKind {
		next.AddToHand(side, m.Capture.Demote(), 1)
	}
	kind := piece.Kind
	if m.Promote {
		kind = kind.Promote()
	}
	next.Put(m.From, Piece{})
	next.Put(m.To, Piece{Kind: kind, Side: side})
	next.turn = side.Opponent()
	return next, nil
}

func (sr *StandardRules) IsTerminal(p Position) bool {
	return len(sr.LegalMoves(p)) == 0
}

func (sr *StandardRules) Winner(p Position) (Side, bool) {
	if _, ok := p.KingSquare(Black); !ok {
		return White, true
	}
	if _, ok := p.KingSquare(White); !ok {
		return Black, true
	}
	if len(sr.LegalMoves(p)) == 0 {
		// The side to move has no way out
		return p.turn.Opponent(), true
	}
	return Black, false
}

func (sr *StandardRules) appendMovesFrom(moves []Move, p Position, from Square, piece Piece) []Move {
	dir := 1
	if piece.Side == White {
		dir = -1
	}
	mv := movements[piece.Kind]
	for _, st := range mv.steps {
		to := Square{File: from.File + st.df*dir, Rank: from.Rank + st.dr*dir}
		moves = appendBoardMove(moves, p, from, to, piece)
	}
	for _, st := range mv.slides {
		to := Square{File: from.File + st.df*dir, Rank: from.Rank + st.dr*dir}
		for to.Valid() {
			target, occupied := p.PieceAt(to)
			if occupied && target.Side == piece.Side {
				break
			}
			moves = appendBoardMove(moves, p, from, to, piece)
			if occupied {
				break
			}
			to = Square{File: to.File + st.df*dir, Rank: to.Rank + st.dr*dir}
		}
	}
	return moves
}

func appendBoardMove(moves []Move, p Position, from, to Square, piece Piece) []Move {
	if !to.Valid() {
		return moves
	}
	target, occupied := p.PieceAt(to)
	if occupied && target.Side == piece.Side {
		return moves
	}
	m := Move{From: from, To: to, Piece: piece.Kind, Capture: target.Kind}

	canPromote := piece.Kind.CanPromote() &&
		(InPromotionZone(piece.Side, from) || InPromotionZone(piece.Side, to))
	if canPromote {
		promoted := m
		promoted.Promote = true
		moves = append(moves, promoted)
	}
	if !mustPromote(piece.Kind, RelativeRank(piece.Side, to.Rank)) {
		moves = append(moves, m)
	}
	return moves
}

func (sr *StandardRules) appendDrops(moves []Move, p Position) []Move {
	side := p.turn
	for i, kind := range HandKinds {
		if p.hands[side][i] == 0 {
			continue
		}
		for j, target := range p.board {
			if !target.Empty() {
				continue
			}
			to := squareAt(j)
			if mustPromote(kind, RelativeRank(side, to.Rank)) {
				continue
			}
			moves = append(moves, Move{To: to, Piece: kind, Drop: true})
		}
	}
	return moves
}

func (sr *StandardRules) checkDrop(p Position, m Move) error {
	side := p.turn
	switch {
	case m.Promote || m.Capture != NoKind:
		return fmt.Errorf("%w: drop cannot promote or capture: %s", ErrIllegalMove, m)
	case p.InHand(side, m.Piece) == 0:
		return fmt.Errorf("%w: %s has no %s in hand", ErrIllegalMove, side, m.Piece)
	case !m.To.Valid():
		return fmt.Errorf("%w: drop off the board: %s", ErrIllegalMove, m)
	case mustPromote(m.Piece, RelativeRank(side, m.To.Rank)):
		return fmt.Errorf("%w: piece would have no move: %s", ErrIllegalMove, m)
	}
	if _, occupied := p.PieceAt(m.To); occupied {
		return fmt.Errorf("%w: drop on occupied square %s", ErrIllegalMove, m.To)
	}
	return nil
}

func kingCaptured(p Position) bool {
	_, black := p.KingSquare(Black)
	_, white := p.KingSquare(White)
	return !black || !white
}

func containsMove(moves []Move, m Move) bool {
	for _, candidate := range moves {
		if candidate == m {
			return true
		}
	}
	return false
}
