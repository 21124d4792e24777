package engine

import (
	"github.com/dylhunn/dragontoothmg"
)

type move struct {
	move    Move
	score   int32
	capture bool
}
type moveList struct {
	moves []move
}

// Most Valuable Victim - Least Valuable Aggressor; used to score & sort captures
var mvvLva [7][7]int32 = [7][7]int32{
	{0, 0, 0, 0, 0, 0, 0},
	{0, 15, 14, 13, 12, 11, 10}, // victim Pawn
	{0, 25, 24, 23, 22, 21, 20}, // victim Knight
	{0, 35, 34, 33, 32, 31, 30}, // victim Bishop
	{0, 45, 44, 43, 42, 41, 40}, // victim Rook
	{0, 55, 54, 53, 52, 51, 50}, // victim Queen
	{0, 0, 0, 0, 0, 0, 0},       // victim King
}

/*
Move ordering offsets, highest searched first:
  - the TT move for this position
  - captures and promotions by MVV/LVA
  - the killer for this ply
  - history score; quiet moves without history stay at 0
*/
var ttMoveOffset int32 = 1_000_000
var captureOffset int32 = 200_000
var killerOffset int32 = 100_000

// Ordering the moves one at a time, at index given
func orderNextMove(currIndex int, moves *moveList) {
	bestIndex := currIndex
	bestScore := moves.moves[bestIndex].score

	for index := bestIndex + 1; index < len(moves.moves); index++ {
		if moves.moves[index].score > bestScore {
			bestIndex = index
			bestScore = moves.moves[index].score
		}
	}

	moves.moves[currIndex], moves.moves[bestIndex] = moves.moves[bestIndex], moves.moves[currIndex]
}

// captureInfo reports the moving piece and, for captures, the victim.
// A pawn changing file onto an empty square is an en passant capture.
func captureInfo(m Move, own, opp *dragontoothmg.Bitboards) (attacker, victim dragontoothmg.Piece, isCapture bool) {
	attacker, _ = GetPieceTypeAtPosition(m.From(), own)
	victim, isCapture = GetPieceTypeAtPosition(m.To(), opp)
	if !isCapture && attacker == dragontoothmg.Pawn && m.From()%8 != m.To()%8 {
		return attacker, dragontoothmg.Pawn, true
	}
	return attacker, victim, isCapture
}

func (s *Searcher) scoreMovesList(pos Position, moves []Move, ply int, ttMove Move) (movesList moveList) {
	whiteToMove := pos.WhiteToMove()
	bitboardsOwn := pos.Pieces(whiteToMove)
	bitboardsOpponent := pos.Pieces(!whiteToMove)

	movesList.moves = make([]move, len(moves))
	for i, m := range moves {
		attacker, victim, isCapture := captureInfo(m, &bitboardsOwn, &bitboardsOpponent)
		promotePiece := m.Promote()

		var moveEval int32
		if m == ttMove {
			moveEval = ttMoveOffset
		} else if isCapture {
			moveEval = captureOffset + mvvLva[victim][attacker]
			if promotePiece != 0 {
				moveEval += pieceValueMG[promotePiece] / 10
			}
		} else if promotePiece != 0 {
			// A quiet promotion wins the promoted piece; rank it like capturing one with a pawn.
			moveEval = captureOffset + mvvLva[promotePiece][dragontoothmg.Pawn]
		} else if s.killers.IsKiller(m, ply) {
			moveEval = killerOffset
		} else {
			moveEval = s.history.Score(whiteToMove, attacker, m.To())
		}

		movesList.moves[i].move = m
		movesList.moves[i].score = moveEval
		movesList.moves[i].capture = isCapture
	}
	return movesList
}

// orderedMoves returns moves sorted by search priority, for callers that
// want the whole order at once.
func (s *Searcher) orderedMoves(pos Position, moves []Move, ply int, ttMove Move) []Move {
	list := s.scoreMovesList(pos, moves, ply, ttMove)
	ordered := make([]Move, len(list.moves))
	for i := range list.moves {
		orderNextMove(i, &list)
		ordered[i] = list.moves[i].move
	}
	return ordered
}
