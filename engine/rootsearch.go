package engine

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// ErrNoLegalMoves is returned when asked to move in a mated or stalemated position.
var ErrNoLegalMoves = errors.New("no legal moves in position")

// Window widening gives up and opens fully past this delta.
const aspirationGiveUp int32 = 1000

// Result describes one decision.
type Result struct {
	Move    Move
	Score   int32 // from the side to move; zero when no iteration completed
	Depth   int   // deepest fully completed iteration
	Nodes   uint64
	Elapsed time.Duration
	Stats   CutStatistics
}

// ChooseMove picks the move to play in pos within the time the clock allows.
func (s *Searcher) ChooseMove(ctx context.Context, pos Position, clock Clock) (Move, error) {
	res, err := s.Search(ctx, pos, clock)
	if err != nil {
		return NoMove, err
	}
	return res.Move, nil
}

// Search runs iterative deepening until the budget, MaxDepth or a forced
// mate stops it. Only fully completed iterations change the answer; if none
// completes the best-ordered legal move is returned. pos is left as it was
// given.
func (s *Searcher) Search(ctx context.Context, pos Position, clock Clock) (Result, error) {
	rootMoves := pos.LegalMoves(false)
	if len(rootMoves) == 0 {
		return Result{}, ErrNoLegalMoves
	}

	s.newDecision()
	white, black := pos.Pieces(true), pos.Pieces(false)
	s.timeHandler.StartTime(ctx, clock, GetPiecePhase(&white, &black), s.cfg.MoveTime)

	result := Result{Move: s.fallbackMove(pos, rootMoves)}
	if len(rootMoves) == 1 {
		s.log.Debug().Str("move", result.Move.String()).Msg("single-legal-move")
		result.Elapsed = clock.Elapsed()
		return result, nil
	}

	alpha, beta := -Infinity, Infinity
	for depth := 1; depth <= s.cfg.MaxDepth; depth++ {
		if depth > 1 && s.timeHandler.SoftTimeExceeded() {
			break
		}

		score, ok := s.aspirationSearch(pos, depth, alpha, beta)
		if !ok {
			s.log.Debug().Int("depth", depth).Msg("iteration-aborted")
			break
		}

		result.Move = s.rootBestMove
		result.Score = score
		result.Depth = depth

		elapsed := clock.Elapsed()
		s.log.Info().
			Int("depth", depth).
			Str("score", FormatScore(score)).
			Uint64("nodes", s.nodesChecked).
			Uint64("nps", nodesPerSecond(s.nodesChecked, elapsed)).
			Dur("elapsed", elapsed).
			Str("move", result.Move.String()).
			Msg("iteration-complete")

		if IsMateScore(score) {
			break
		}

		window := s.cfg.AspirationWindow
		alpha = max(score-window, -Infinity)
		beta = min(score+window, Infinity)
	}

	result.Nodes = s.nodesChecked
	result.Elapsed = clock.Elapsed()
	result.Stats = s.stats
	s.log.Info().
		Int("depth", result.Depth).
		Str("score", FormatScore(result.Score)).
		Str("move", result.Move.String()).
		Uint64("nodes", result.Nodes).
		Dur("elapsed", result.Elapsed).
		Msg("decision")
	s.log.Debug().Str("cuts", s.stats.String()).Str("tt", s.tt.Stats()).Msg("search-stats")
	return result, nil
}

// aspirationSearch searches the root inside [alpha, beta], widening the side
// that failed with a doubling delta until the score lands strictly inside.
// ok is false when time ran out first.
func (s *Searcher) aspirationSearch(pos Position, depth int, alpha, beta int32) (score int32, ok bool) {
	delta := s.cfg.AspirationWindow
	for {
		score = s.negamax(pos, int8(depth), 0, alpha, beta, false)
		if s.aborted {
			return 0, false
		}
		if score > alpha && score < beta {
			return score, true
		}

		s.log.Debug().
			Int("depth", depth).
			Int32("alpha", alpha).
			Int32("beta", beta).
			Int32("score", score).
			Msg("aspiration-fail")

		delta *= 2
		if score <= alpha {
			alpha = max(min(alpha, score)-delta, -Infinity)
		} else {
			beta = min(max(beta, score)+delta, Infinity)
		}
		if delta > aspirationGiveUp {
			alpha, beta = -Infinity, Infinity
		}
	}
}

// SearchDepth runs one full-window search to a fixed depth with no time
// limit and returns the score and the root move. depth is clamped to
// [0, MaxPly).
func (s *Searcher) SearchDepth(pos Position, depth int) (int32, Move) {
	depth = min(max(depth, 0), MaxPly-1)
	s.newDecision()
	s.timeHandler = TimeHandler{}
	score := s.negamax(pos, int8(depth), 0, -Infinity, Infinity, false)
	return score, s.rootBestMove
}

// Nodes is the node count of the last decision.
func (s *Searcher) Nodes() uint64 {
	return s.nodesChecked
}

// fallbackMove is what we play if not even depth 1 completes: the stored move
// if it is legal here, otherwise the first move in ordering.
func (s *Searcher) fallbackMove(pos Position, rootMoves []Move) Move {
	var ttMove Move
	if entry, ok := s.tt.Probe(pos.Hash()); ok && lo.Contains(rootMoves, entry.Move) {
		ttMove = entry.Move
	}
	return s.orderedMoves(pos, rootMoves, 0, ttMove)[0]
}

func nodesPerSecond(nodes uint64, elapsed time.Duration) uint64 {
	if elapsed <= 0 {
		return 0
	}
	return uint64(float64(nodes) / elapsed.Seconds())
}

// Stats are the cut counters of the last decision.
func (s *Searcher) Stats() CutStatistics {
	return s.stats
}
