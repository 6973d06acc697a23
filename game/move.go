package game

import "fmt"

// Move is either a board move or a drop from the reserve. Moves are produced by
// a Rules implementation and treated as immutable values everywhere else.
type Move struct {
	From    Square    // Zero for drops
	To      Square    // Destination square
	Piece   PieceKind // Moving kind before promotion, or the dropped kind
	Drop    bool      // Placed from the reserve
	Promote bool      // Piece promotes on arrival
	Capture PieceKind // Captured kind, NoKind if the destination was empty
}

func (m Move) IsDrop() bool {
	return m.Drop
}

func (m Move) IsCapture() bool {
	return m.Capture != NoKind
}

// String renders the move in USI notation: "7g7f", "8h2b+", "P*5e".
func (m Move) String() string {
	if m.Drop {
		return fmt.Sprintf("%s*%s", m.Piece, m.To)
	}
	if m.Promote {
		return fmt.Sprintf("%s%s+", m.From, m.To)
	}
	return fmt.Sprintf("%s%s", m.From, m.To)
}
