package engine

import "github.com/dylhunn/dragontoothmg"

/*
HISTORY MOVES
If a quiet move caused a beta cutoff we credit (side, moved piece, target square)
with depth*depth, so deep cutoffs count for more. Scores stay below historyMaxVal,
which keeps history ordering under killers and captures.
*/
const historyMaxVal = 50000

type HistoryTable struct {
	scores [2][7][64]int32
}

func sideIndex(whiteToMove bool) int {
	if whiteToMove {
		return 0
	}
	return 1
}

func (h *HistoryTable) Score(whiteToMove bool, piece dragontoothmg.Piece, to uint8) int32 {
	return h.scores[sideIndex(whiteToMove)][piece][to]
}

// Increment the history score for the given move if it caused a beta-cutoff and is quiet.
func (h *HistoryTable) incrementHistoryScore(whiteToMove bool, piece dragontoothmg.Piece, to uint8, depth int8) {
	side := sideIndex(whiteToMove)
	h.scores[side][piece][to] += int32(depth) * int32(depth)
	if h.scores[side][piece][to] >= historyMaxVal {
		h.ageHistoryTable(side)
	}
}

// Age the values in the history table by halving them.
func (h *HistoryTable) ageHistoryTable(side int) {
	for piece := range h.scores[side] {
		for sq := range h.scores[side][piece] {
			h.scores[side][piece][sq] /= 2
		}
	}
}

// Clear the values in the history table.
func (h *HistoryTable) ClearHistoryTable() {
	h.scores = [2][7][64]int32{}
}
