package engine

import (
	"testing"

	"chess-search/board"
)

var _ Position = (*board.Board)(nil)

func mustBoard(t *testing.T, fen string) *board.Board {
	t.Helper()
	b, err := board.FromFEN(fen)
	if err != nil {
		t.Fatalf("parse FEN %q: %v", fen, err)
	}
	return b
}

func findMove(t *testing.T, pos Position, uci string) Move {
	t.Helper()
	for _, m := range pos.LegalMoves(false) {
		if m.String() == uci {
			return m
		}
	}
	t.Fatalf("move %s is not legal here", uci)
	return NoMove
}

// newTestSearcher builds a searcher with a small table; tweak adjusts the config.
func newTestSearcher(t *testing.T, tweak func(*Config)) *Searcher {
	t.Helper()
	cfg := DefaultConfig()
	cfg.HashMegabytes = 4
	if tweak != nil {
		tweak(&cfg)
	}
	s, err := NewSearcher(cfg)
	if err != nil {
		t.Fatalf("new searcher: %v", err)
	}
	return s
}

func withoutPruning(cfg *Config) {
	cfg.NullMove = false
	cfg.ReverseFutility = false
	cfg.Futility = false
}

func withoutPruningOrTT(cfg *Config) {
	withoutPruning(cfg)
	cfg.UseTT = false
}
