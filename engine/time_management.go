package engine

import (
	"context"
	"time"
)

// Engine-side safety knobs
const (
	overheadTime = 30 * time.Millisecond // reserve for the caller's own bookkeeping
	minMoveTime  = 5 * time.Millisecond
	maxFrac      = 0.7 // never spend more than this share of the remaining clock
)

// TimeHandler turns the clock into a budget for one decision and answers
// "should we stop?" while searching.
type TimeHandler struct {
	ctx    context.Context
	clock  Clock
	budget time.Duration
}

func (th *TimeHandler) StartTime(ctx context.Context, clock Clock, phase int32, moveTime time.Duration) {
	th.ctx = ctx
	th.clock = clock
	if moveTime > 0 {
		th.budget = moveTime
		return
	}
	th.budget = allocateMoveTime(clock.Remaining(), phase)
}

// allocateMoveTime spends a fraction of the remaining time, fewer moves
// expected to remain the further the game has progressed.
func allocateMoveTime(remaining time.Duration, phase int32) time.Duration {
	movesLeft := estimateMovesRemaining(phase)
	moveTime := remaining / time.Duration(movesLeft)

	moveTime = min(moveTime, time.Duration(float64(remaining)*maxFrac))
	moveTime = min(moveTime, remaining-overheadTime)
	return max(moveTime, minMoveTime)
}

func estimateMovesRemaining(phase int32) int32 {
	// Linearly interpolate between 20 (endgame) and 45 (opening/midgame)
	return (clamp(phase, 0, TotalPhase)*25)/TotalPhase + 20
}

func (th *TimeHandler) Budget() time.Duration {
	return th.budget
}

// TimeStatus is true once the budget is spent or the caller cancelled.
// A handler without a clock never runs out.
func (th *TimeHandler) TimeStatus() bool {
	if th.ctx != nil && th.ctx.Err() != nil {
		return true
	}
	return th.clock != nil && th.clock.Elapsed() >= th.budget
}

// SoftTimeExceeded is true when another iteration is unlikely to finish in time.
func (th *TimeHandler) SoftTimeExceeded() bool {
	if th.ctx != nil && th.ctx.Err() != nil {
		return true
	}
	return th.clock != nil && th.clock.Elapsed() >= th.budget/2
}
