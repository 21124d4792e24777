package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func TestMoveOrderingTiers(t *testing.T) {
	s := newTestSearcher(t, nil)
	// White can take a knight with the pawn or the queen, or push a pawn to promote.
	pos := mustBoard(t, "k7/6P1/8/3n4/4P3/8/8/3QK3 w - - 0 1")

	ttMove := findMove(t, pos, "d1d2")
	killer := findMove(t, pos, "e1f1")
	s.killers.InsertKiller(killer, 0)
	historyMove := findMove(t, pos, "e1f2")
	s.history.incrementHistoryScore(true, dragontoothmg.King, historyMove.To(), 4)

	ordered := s.orderedMoves(pos, pos.LegalMoves(false), 0, ttMove)
	at := make(map[string]int, len(ordered))
	for i, m := range ordered {
		at[m.String()] = i
	}

	if at["d1d2"] != 0 {
		t.Fatalf("expected the TT move first, got it at %d", at["d1d2"])
	}
	if at["g7g8q"] != 1 {
		t.Fatalf("expected the queen promotion second, got it at %d", at["g7g8q"])
	}
	// The cheaper attacker goes first.
	if at["e4d5"] > at["d1d5"] {
		t.Fatalf("expected exd5 before Qxd5, got %d and %d", at["e4d5"], at["d1d5"])
	}
	if at["e1f1"] != at["d1d5"]+1 {
		t.Fatalf("expected the killer right after the last capture, got %d (Qxd5 at %d)", at["e1f1"], at["d1d5"])
	}
	if at["e1f2"] != at["e1f1"]+1 {
		t.Fatalf("expected the history move right after the killer, got %d", at["e1f2"])
	}
}

func TestOrderNextMoveMatchesFullSort(t *testing.T) {
	list := moveList{moves: []move{
		{move: 1, score: 5}, {move: 2, score: 50}, {move: 3, score: -3}, {move: 4, score: 20},
	}}
	want := []Move{2, 4, 1, 3}
	for i := range list.moves {
		orderNextMove(i, &list)
		if list.moves[i].move != want[i] {
			t.Fatalf("index %d: expected move %v, got %v", i, want[i], list.moves[i].move)
		}
	}
}

func TestKillerTable(t *testing.T) {
	var k KillerTable
	k.InsertKiller(Move(42), 3)
	if !k.IsKiller(Move(42), 3) || k.IsKiller(Move(42), 4) {
		t.Fatalf("killer stored at the wrong ply")
	}
	k.InsertKiller(Move(43), 3)
	if k.IsKiller(Move(42), 3) {
		t.Fatalf("expected the newer killer to replace the old one")
	}
	k.ClearKillers()
	if k.IsKiller(Move(43), 3) {
		t.Fatalf("expected killers to be cleared")
	}
}

func TestHistoryAging(t *testing.T) {
	var h HistoryTable
	h.incrementHistoryScore(true, dragontoothmg.Knight, 21, 3)
	if got := h.Score(true, dragontoothmg.Knight, 21); got != 9 {
		t.Fatalf("expected depth squared 9, got %d", got)
	}
	if got := h.Score(false, dragontoothmg.Knight, 21); got != 0 {
		t.Fatalf("black's table should be untouched, got %d", got)
	}

	for i := 0; i < 10_000; i++ {
		h.incrementHistoryScore(true, dragontoothmg.Rook, 0, 20)
		if got := h.Score(true, dragontoothmg.Rook, 0); got >= historyMaxVal {
			t.Fatalf("history reached %d, cap is %d", got, historyMaxVal)
		}
	}

	h.ClearHistoryTable()
	if got := h.Score(true, dragontoothmg.Rook, 0); got != 0 {
		t.Fatalf("expected cleared history, got %d", got)
	}
}
