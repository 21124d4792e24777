package engine

// KillerTable remembers, per ply, the last quiet move that caused a beta cutoff.
type KillerTable struct {
	KillerMoves [MaxPly + 1]Move
}

func (k *KillerTable) InsertKiller(move Move, ply int) {
	k.KillerMoves[ply] = move
}

func (k *KillerTable) IsKiller(move Move, ply int) bool {
	return move != NoMove && k.KillerMoves[ply] == move
}

// Clear the killer moves table.
func (k *KillerTable) ClearKillers() {
	for ply := range k.KillerMoves {
		k.KillerMoves[ply] = NoMove
	}
}
