package engine

// quiescence resolves captures until the position is quiet so that leaves
// are not scored in the middle of an exchange. In check every evasion is
// tried and there is no stand-pat.
func (s *Searcher) quiescence(pos Position, alpha int32, beta int32, ply int) int32 {
	s.checkTime()
	if s.aborted {
		return 0
	}
	if ply >= MaxPly {
		return Evaluate(pos)
	}

	inCheck := pos.InCheck()

	// Stand-pat pruning (not when in check)
	if !inCheck {
		standpat := Evaluate(pos)
		if standpat >= beta {
			s.stats.QStandPatCutoffs++
			return beta
		}
		if standpat > alpha {
			alpha = standpat
		}
	}

	moves := pos.LegalMoves(!inCheck)
	if inCheck && len(moves) == 0 {
		return -MateScore + int32(ply)
	}

	moveList := s.scoreMovesList(pos, moves, ply, NoMove)
	for index := range moveList.moves {
		orderNextMove(index, &moveList)
		move := moveList.moves[index].move

		pos.MakeMove(move)
		score := -s.quiescence(pos, -beta, -alpha, ply+1)
		pos.UndoMove(move)
		if s.aborted {
			return 0
		}

		if score >= beta {
			s.stats.QBetaCutoffs++
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}
