package engine

import (
	"context"
	"testing"
	"time"
)

type fakeClock struct {
	elapsed, remaining time.Duration
}

func (c *fakeClock) Elapsed() time.Duration   { return c.elapsed }
func (c *fakeClock) Remaining() time.Duration { return c.remaining }

func TestEstimateMovesRemaining(t *testing.T) {
	if got := estimateMovesRemaining(TotalPhase); got != 45 {
		t.Fatalf("expected 45 moves left in the opening, got %d", got)
	}
	if got := estimateMovesRemaining(0); got != 20 {
		t.Fatalf("expected 20 moves left in a pawn ending, got %d", got)
	}
	if got := estimateMovesRemaining(100); got != 45 {
		t.Fatalf("expected phase to be capped, got %d", got)
	}
}

func TestAllocateMoveTime(t *testing.T) {
	tests := []struct {
		remaining time.Duration
		phase     int32
		want      time.Duration
	}{
		{45 * time.Second, TotalPhase, time.Second},
		{20 * time.Second, 0, time.Second},
		{20 * time.Millisecond, 0, minMoveTime},
		{0, TotalPhase, minMoveTime},
	}
	for _, tt := range tests {
		if got := allocateMoveTime(tt.remaining, tt.phase); got != tt.want {
			t.Errorf("allocateMoveTime(%v, %d) = %v, want %v", tt.remaining, tt.phase, got, tt.want)
		}
	}
}

func TestTimeHandler(t *testing.T) {
	clock := &fakeClock{remaining: 45 * time.Second}
	var th TimeHandler
	th.StartTime(context.Background(), clock, TotalPhase, 0)
	if th.Budget() != time.Second {
		t.Fatalf("expected a 1s budget, got %v", th.Budget())
	}

	clock.elapsed = 400 * time.Millisecond
	if th.TimeStatus() || th.SoftTimeExceeded() {
		t.Fatalf("nothing should be exceeded at %v", clock.elapsed)
	}
	clock.elapsed = 600 * time.Millisecond
	if th.TimeStatus() || !th.SoftTimeExceeded() {
		t.Fatalf("only the soft limit should be exceeded at %v", clock.elapsed)
	}
	clock.elapsed = time.Second
	if !th.TimeStatus() {
		t.Fatalf("budget should be spent at %v", clock.elapsed)
	}

	th.StartTime(context.Background(), clock, TotalPhase, 3*time.Second)
	if th.Budget() != 3*time.Second {
		t.Fatalf("expected the fixed move time to win, got %v", th.Budget())
	}

	ctx, cancel := context.WithCancel(context.Background())
	clock.elapsed = 0
	th.StartTime(ctx, clock, TotalPhase, 0)
	cancel()
	if !th.TimeStatus() {
		t.Fatalf("expected a cancelled context to stop the search")
	}
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score int32
		want  string
	}{
		{31, "cp 31"},
		{-250, "cp -250"},
		{MateScore - 1, "mate 1"},
		{MateScore - 3, "mate 2"},
		{-MateScore + 2, "mate -1"},
		{-MateScore + 4, "mate -2"},
	}
	for _, tt := range tests {
		if got := FormatScore(tt.score); got != tt.want {
			t.Errorf("FormatScore(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	cfg := DefaultConfig()
	cfg.MaxDepth = MaxPly
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected depth %d to be rejected", MaxPly)
	}
	cfg = DefaultConfig()
	cfg.HashMegabytes = 0
	if _, err := NewSearcher(cfg); err == nil {
		t.Fatalf("expected a zero sized table to be rejected")
	}
}
