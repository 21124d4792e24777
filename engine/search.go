package engine

import (
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// =============================================================================
// MARGINS
// =============================================================================
var FutilityMargins = [4]int32{0, 120, 220, 320}
var RFPMargin int32 = 100 // per ply of remaining depth
var RFPMaxDepth int8 = 6
var NullMoveMinDepth int8 = 3

// Searcher owns the tables of one bot: the transposition table persists for
// its lifetime, killers and history are reset for every decision. It is not
// safe for concurrent use.
type Searcher struct {
	cfg Config
	log zerolog.Logger

	tt          *TransTable
	killers     KillerTable
	history     HistoryTable
	timeHandler TimeHandler
	stats       CutStatistics

	nodesChecked uint64
	// aborted is set once time runs out; every score computed after that is garbage.
	aborted      bool
	rootBestMove Move
}

func NewSearcher(cfg Config) (*Searcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid search config")
	}
	s := &Searcher{
		cfg: cfg,
		tt:  NewTransTable(cfg.HashMegabytes),
	}
	s.log = cfg.Logger.With().Str("session", uuid.NewString()).Logger()
	s.log.Debug().
		Int("entries", s.tt.Capacity()).
		Str("size", humanize.IBytes(s.tt.SizeBytes())).
		Msg("transposition-table-ready")
	return s, nil
}

// newDecision resets everything that must not leak from one move to the next.
func (s *Searcher) newDecision() {
	s.killers.ClearKillers()
	s.history.ClearHistoryTable()
	s.stats = CutStatistics{}
	s.nodesChecked = 0
	s.aborted = false
	s.rootBestMove = NoMove
}

// checkTime counts the node and polls the clock every 1024 nodes.
func (s *Searcher) checkTime() {
	s.nodesChecked++
	if s.nodesChecked&1023 == 0 && s.timeHandler.TimeStatus() {
		s.aborted = true
	}
}

// negamax is an alpha-beta search; the score is always from the point of
// view of the side to move. Results outside (alpha, beta) are bounds only.
func (s *Searcher) negamax(pos Position, depth int8, ply int, alpha int32, beta int32, didNull bool) int32 {
	s.checkTime()
	if s.aborted {
		return 0
	}

	isRoot := ply == 0
	isPVNode := beta-alpha > 1

	if !isRoot {
		if pos.IsRepetition() || pos.IsInsufficientMaterial() || pos.FiftyMoveCounter() >= 100 {
			return DrawScore
		}
		if ply >= MaxPly {
			return Evaluate(pos)
		}
	}

	// Check extension
	inCheck := pos.InCheck()
	if inCheck {
		depth++
	}

	/*
		TRANSPOSITION TABLE LOOKUP
	*/
	posHash := pos.Hash()
	var ttMove Move
	if s.cfg.UseTT {
		if ttEntry, ttHit := s.tt.Probe(posHash); ttHit {
			ttMove = ttEntry.Move
			if !isRoot {
				if ttScore, usable := s.tt.Lookup(ttEntry, depth, ply, alpha, beta); usable {
					s.stats.TTCutoffs++
					return ttScore
				}
			}
		}
	}

	// Quiescence at leaf nodes
	if depth <= 0 {
		return s.quiescence(pos, alpha, beta, ply)
	}

	canPrune := !inCheck && !isPVNode && !isRoot
	var staticScore int32
	if canPrune {
		staticScore = Evaluate(pos)
	}

	/*
		If our position is so good that even after giving a margin to the opponent,
		we still beat beta, we can safely prune.
	*/
	if canPrune && s.cfg.ReverseFutility && depth <= RFPMaxDepth && abs(beta) < MateThreshold {
		if staticScore-RFPMargin*int32(depth) >= beta {
			s.stats.StaticNullCutoffs++
			return beta
		}
	}

	/*
		NULL MOVE PRUNING
		Pass the turn; if the opponent still can't get below beta with a free
		move, a real move will do at least as well. Skipped without pieces to
		avoid zugzwang.
	*/
	if canPrune && s.cfg.NullMove && !didNull && depth >= NullMoveMinDepth && staticScore >= beta && hasMinorOrMajorPiece(pos) {
		var R int8 = 2
		if depth > 6 {
			R++
		}

		pos.MakeNullMove()
		score := -s.negamax(pos, depth-1-R, ply+1, -beta, -beta+1, true)
		pos.UndoNullMove()
		if s.aborted {
			return 0
		}

		if score >= beta {
			s.stats.NullMoveCutoffs++
			return beta
		}
	}

	// Quiet moves that can't lift a hopeless static score to alpha are skipped below.
	futile := canPrune && s.cfg.Futility && int(depth) < len(FutilityMargins) &&
		abs(alpha) < MateThreshold && staticScore+FutilityMargins[depth] <= alpha

	allMoves := pos.LegalMoves(false)

	// Checkmate/stalemate check
	if len(allMoves) == 0 {
		if inCheck {
			return -MateScore + int32(ply)
		}
		return DrawScore
	}

	whiteToMove := pos.WhiteToMove()
	ownPieces := pos.Pieces(whiteToMove)
	moveList := s.scoreMovesList(pos, allMoves, ply, ttMove)

	alphaOrig := alpha
	bestScore := -Infinity
	bestMove := NoMove
	searched := 0
	pruned := false

	for index := range moveList.moves {
		orderNextMove(index, &moveList)
		move := moveList.moves[index].move
		quiet := !moveList.moves[index].capture && move.Promote() == 0

		pos.MakeMove(move)

		if futile && quiet && searched > 0 && !pos.InCheck() {
			pos.UndoMove(move)
			s.stats.FutilityPrunes++
			pruned = true
			continue
		}

		score := -s.negamax(pos, depth-1, ply+1, -beta, -alpha, false)
		pos.UndoMove(move)
		if s.aborted {
			return 0
		}
		searched++

		if score > bestScore {
			bestScore = score
			bestMove = move
		}
		if score > alpha {
			alpha = score
		}

		// Beta cutoff
		if alpha >= beta {
			s.stats.BetaCutoffs++
			if quiet {
				s.killers.InsertKiller(move, ply)
				piece, _ := GetPieceTypeAtPosition(move.From(), &ownPieces)
				s.history.incrementHistoryScore(whiteToMove, piece, move.To(), depth)
			}
			break
		}
	}

	// Skipped moves were only assumed to stay below alpha.
	if pruned && bestScore < alphaOrig {
		bestScore = alphaOrig
	}

	ttFlag := Exact
	if bestScore >= beta {
		ttFlag = LowerBound
	} else if bestScore <= alphaOrig {
		ttFlag = UpperBound
	}
	if s.cfg.UseTT {
		s.tt.Store(posHash, bestMove, depth, ply, bestScore, ttFlag)
	}
	if isRoot {
		s.rootBestMove = bestMove
	}

	return bestScore
}

func hasMinorOrMajorPiece(pos Position) bool {
	bb := pos.Pieces(pos.WhiteToMove())
	return bb.Bishops|bb.Knights|bb.Rooks|bb.Queens != 0
}
