package engine

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Config holds the knobs of a Searcher. Start from DefaultConfig.
type Config struct {
	// HashMegabytes sizes the transposition table.
	HashMegabytes int
	// MaxDepth caps iterative deepening.
	MaxDepth int
	// MoveTime, when set, replaces the budget derived from the clock.
	MoveTime time.Duration
	// AspirationWindow is the half-width of the window around the previous score.
	AspirationWindow int32

	UseTT           bool
	NullMove        bool
	ReverseFutility bool
	Futility        bool

	Logger zerolog.Logger
}

func DefaultConfig() Config {
	return Config{
		HashMegabytes:    64,
		MaxDepth:         64,
		AspirationWindow: 35,
		UseTT:            true,
		NullMove:         true,
		ReverseFutility:  true,
		Futility:         true,
		Logger:           zerolog.Nop(),
	}
}

func (c Config) Validate() error {
	if c.HashMegabytes <= 0 {
		return errors.Errorf("hash size must be positive, got %d MB", c.HashMegabytes)
	}
	if c.MaxDepth < 1 || c.MaxDepth >= MaxPly {
		return errors.Errorf("max depth must be in [1, %d), got %d", MaxPly, c.MaxDepth)
	}
	if c.MoveTime < 0 {
		return errors.Errorf("move time must not be negative, got %v", c.MoveTime)
	}
	if c.AspirationWindow <= 0 {
		return errors.Errorf("aspiration window must be positive, got %d", c.AspirationWindow)
	}
	return nil
}
