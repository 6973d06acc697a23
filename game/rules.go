package game

import "errors"

var ErrIllegalMove = errors.New("illegal move")

// Rules is the authority on legality. Search and move selection only ever pick
// among the moves it reports and never decide legality themselves.
type Rules interface {
	// LegalMoves lists the moves available to the side to move.
	LegalMoves(p Position) []Move
	// Apply plays a move and returns the resulting position. The input
	// position is left untouched.
	Apply(p Position, m Move) (Position, error)
	// IsTerminal reports whether the game is over.
	IsTerminal(p Position) bool
	// Winner returns the winning side of a finished game.
	Winner(p Position) (Side, bool)
}
