package game

// Position is a complete game state: piece placement, both reserves and the
// side to move. It is a plain value, so copies are independent and two
// positions compare equal with == exactly when they describe the same state.
type Position struct {
	board [Files * Ranks]Piece
	hands [2][len(HandKinds)]uint8
	turn  Side
}

// NewPosition returns the standard starting position with Black to move.
func NewPosition() Position {
	var p Position
	backRank := [...]PieceKind{Lance, Knight, Silver, Gold, King, Gold, Silver, Knight, Lance}
	for i, kind := range backRank {
		file := Files - i
		p.Put(Square{File: file, Rank: 9}, Piece{Kind: kind, Side: Black})
		p.Put(Square{File: file, Rank: 1}, Piece{Kind: kind, Side: White})
	}
	for file := 1; file <= Files; file++ {
		p.Put(Square{File: file, Rank: 7}, Piece{Kind: Pawn, Side: Black})
		p.Put(Square{File: file, Rank: 3}, Piece{Kind: Pawn, Side: White})
	}
	p.Put(Square{File: 8, Rank: 8}, Piece{Kind: Bishop, Side: Black})
	p.Put(Square{File: 2, Rank: 8}, Piece{Kind: Rook, Side: Black})
	p.Put(Square{File: 2, Rank: 2}, Piece{Kind: Bishop, Side: White})
	p.Put(Square{File: 8, Rank: 2}, Piece{Kind: Rook, Side: White})
	return p
}

func (p Position) Turn() Side {
	return p.turn
}

func (p *Position) SetTurn(side Side) {
	p.turn = side
}

// PieceAt returns the piece on the square, or false when it is empty or off the
// board.
func (p Position) PieceAt(sq Square) (Piece, bool) {
	if !sq.Valid() {
		return Piece{}, false
	}
	piece := p.board[sq.index()]
	return piece, !piece.Empty()
}

// Put places a piece on the square; an empty Piece clears it.
func (p *Position) Put(sq Square, piece Piece) {
	if !sq.Valid() {
		return
	}
	p.board[sq.index()] = piece
}

// Reserve returns the side's hand as kind -> count. Kinds not held are absent.
func (p Position) Reserve(side Side) map[PieceKind]int {
	reserve := make(map[PieceKind]int)
	for i, kind := range HandKinds {
		if n := p.hands[side][i]; n > 0 {
			reserve[kind] = int(n)
		}
	}
	return reserve
}

// InHand is the number of pieces of the kind in the side's reserve.
func (p Position) InHand(side Side, kind PieceKind) int {
	i := handIndex(kind)
	if i < 0 {
		return 0
	}
	return int(p.hands[side][i])
}

// AddToHand adjusts the side's reserve by delta, never going below zero.
func (p *Position) AddToHand(side Side, kind PieceKind, delta int) {
	i := handIndex(kind.Demote())
	if i < 0 {
		return
	}
	n := int(p.hands[side][i]) + delta
	if n < 0 {
		n = 0
	}
	p.hands[side][i] = uint8(n)
}

// KingSquare finds the side's king. A captured king reports false.
func (p Position) KingSquare(side Side) (Square, bool) {
	for i, piece := range p.board {
		if piece.Kind == King && piece.Side == side {
			return squareAt(i), true
		}
	}
	return Square{}, false
}

// Pieces calls fn for every occupied square in board order.
func (p Position) Pieces(fn func(sq Square, piece Piece)) {
	for i, piece := range p.board {
		if !piece.Empty() {
			fn(squareAt(i), piece)
		}
	}
}

// Flip returns the mirrored position: the board rotated by 180 degrees with
// every piece, hand and the turn handed to the other side.
func (p Position) Flip() Position {
	var flipped Position
	for i, piece := range p.board {
		if piece.Empty() {
			continue
		}
		sq := squareAt(i)
		mirror := Square{File: Files + 1 - sq.File, Rank: Ranks + 1 - sq.Rank}
		flipped.Put(mirror, Piece{Kind: piece.Kind, Side: piece.Side.Opponent()})
	}
	flipped.hands[Black] = p.hands[White]
	flipped.hands[White] = p.hands[Black]
	flipped.turn = p.turn.Opponent()
	return flipped
}
