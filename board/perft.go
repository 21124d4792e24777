package board

import "github.com/dylhunn/dragontoothmg"

// Perft counts the leaf nodes of the legal move tree to depth, going through
// the same make/undo path the search uses.
func Perft(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.LegalMoves(false)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		b.MakeMove(m)
		nodes += Perft(b, depth-1)
		b.UndoMove(m)
	}
	return nodes
}

// PerftDivide splits the depth count by root move.
func PerftDivide(b *Board, depth int) map[dragontoothmg.Move]uint64 {
	div := make(map[dragontoothmg.Move]uint64)
	for _, m := range b.LegalMoves(false) {
		b.MakeMove(m)
		div[m] = Perft(b, depth-1)
		b.UndoMove(m)
	}
	return div
}
