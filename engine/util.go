package engine

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	Infinity      int32 = 32500
	MateScore     int32 = 32000
	MateThreshold int32 = MateScore - MaxPly
	DrawScore     int32 = 0

	MaxPly = 100
)

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// clamp restricts f to the inclusive range [low, high].
func clamp[T constraints.Ordered](f, low, high T) T {
	if f < low {
		return low
	}
	if f > high {
		return high
	}
	return f
}

// IsMateScore reports whether a score means a forced mate for either side.
func IsMateScore(score int32) bool {
	return abs(score) >= MateThreshold
}

// FormatScore renders a score the way engines report it: "cp 31" or "mate -2".
func FormatScore(score int32) string {
	if score >= MateThreshold {
		pliesToMate := max(MateScore-score, 0)
		return fmt.Sprintf("mate %d", (pliesToMate+1)/2)
	} else if score <= -MateThreshold {
		pliesToMate := max(MateScore+score, 0)
		return fmt.Sprintf("mate %d", -(pliesToMate+1)/2)
	}
	return fmt.Sprintf("cp %d", score)
}
