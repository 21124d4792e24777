package engine

import (
	"time"

	"github.com/dylhunn/dragontoothmg"
)

// Move is the board library's packed from/to/promotion move.
type Move = dragontoothmg.Move

// NoMove is returned when there is nothing to play.
const NoMove Move = 0

// Position is everything the search needs from a board. Moves must be made
// and undone in stack order.
type Position interface {
	// LegalMoves returns all legal moves, or only the captures when capturesOnly is set.
	LegalMoves(capturesOnly bool) []Move
	MakeMove(m Move)
	UndoMove(m Move)
	// MakeNullMove passes the turn to the opponent.
	MakeNullMove()
	UndoNullMove()

	Hash() uint64
	WhiteToMove() bool
	InCheck() bool
	IsRepetition() bool
	IsInsufficientMaterial() bool
	FiftyMoveCounter() int
	Pieces(white bool) dragontoothmg.Bitboards
}

// Clock reports time for the decision being made.
type Clock interface {
	// Elapsed is the time spent on the current decision.
	Elapsed() time.Duration
	// Remaining is what is left on the side to move's clock.
	Remaining() time.Duration
}
