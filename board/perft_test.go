package board

import "testing"

func TestPerft(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  uint64
	}{
		{"initial", Startpos, 3, 8902},
		{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 2, 2039},
		{"rook endgame", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3, 2812},
		{"promotions", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 2, 264},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustFEN(t, tt.fen)
			if got := Perft(b, tt.depth); got != tt.want {
				t.Fatalf("perft depth %d: got %d want %d", tt.depth, got, tt.want)
			}
			if b.FEN() != tt.fen {
				t.Fatalf("perft left the board at %s", b.FEN())
			}
		})
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	b := StartPosition()
	div := PerftDivide(b, 3)
	if len(div) != 20 {
		t.Fatalf("expected 20 root moves, got %d", len(div))
	}
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if sum != 8902 {
		t.Fatalf("divide total: got %d want %d", sum, 8902)
	}
}

func benchPerft(b *testing.B, fen string, depth int) {
	board, err := FromFEN(fen)
	if err != nil {
		b.Fatalf("FromFEN: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Perft(board, depth)
	}
}

func BenchmarkPerft_Initial_D4(b *testing.B) {
	benchPerft(b, Startpos, 4)
}

func BenchmarkPerft_Kiwipete_D3(b *testing.B) {
	benchPerft(b, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 3)
}
