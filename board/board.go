package board

import (
	"math/bits"
	"strings"

	"github.com/dylhunn/dragontoothmg"
	"github.com/notnil/chess"
	"github.com/pkg/errors"
)

const Startpos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrIllegalPosition is wrapped by FromFEN for positions that parse but can
// not arise in a game the move generator could continue.
var ErrIllegalPosition = errors.New("illegal position")

// State is what UndoMove needs back, plus the hash for repetition detection.
type State struct {
	Hash uint64

	unapply func()
	// saved is the whole board before a null move.
	saved *dragontoothmg.Board
	// repFloor is the oldest stack index a repetition may be found at.
	repFloor int
}

// Board adapts dragontoothmg to the search's Position.
type Board struct {
	pos      dragontoothmg.Board
	repFloor int

	// stateStack[0] is the position the board was created from.
	stateStack []State
}

// FromFEN validates fen and sets up a board from it.
func FromFEN(fen string) (*Board, error) {
	fen = strings.TrimSpace(fen)
	if _, err := chess.FEN(fen); err != nil {
		return nil, errors.Wrapf(err, "invalid fen %q", fen)
	}
	if len(strings.Fields(fen)) < 4 {
		return nil, errors.Errorf("invalid fen %q: expected at least 4 fields", fen)
	}

	b := &Board{pos: dragontoothmg.ParseFen(fen)}
	if err := b.checkLegal(); err != nil {
		return nil, errors.Wrapf(err, "invalid fen %q", fen)
	}
	b.stateStack = append(b.stateStack, State{Hash: b.pos.Hash()})
	return b, nil
}

// checkLegal rejects what the move generator can't handle: a missing or
// extra king, or a king that could be taken right away.
func (b *Board) checkLegal() error {
	if bits.OnesCount64(b.pos.White.Kings) != 1 || bits.OnesCount64(b.pos.Black.Kings) != 1 {
		return errors.Wrap(ErrIllegalPosition, "each side needs exactly one king")
	}
	passed := dragontoothmg.ParseFen(passFEN(b.pos.ToFen()))
	if passed.OurKingInCheck() {
		return errors.Wrap(ErrIllegalPosition, "side not to move is in check")
	}
	return nil
}

func StartPosition() *Board {
	b, err := FromFEN(Startpos)
	if err != nil {
		panic(err)
	}
	return b
}

// Play makes the legal move written in UCI notation, e.g. "e2e4" or "a7a8q".
func (b *Board) Play(uci string) error {
	for _, m := range b.pos.GenerateLegalMoves() {
		if m.String() == uci {
			b.MakeMove(m)
			return nil
		}
	}
	return errors.Errorf("illegal move %q in %s", uci, b.FEN())
}

func (b *Board) LegalMoves(capturesOnly bool) []dragontoothmg.Move {
	moves := b.pos.GenerateLegalMoves()
	if !capturesOnly {
		return moves
	}
	captures := moves[:0]
	for _, m := range moves {
		if dragontoothmg.IsCapture(m, &b.pos) {
			captures = append(captures, m)
		}
	}
	return captures
}

func (b *Board) MakeMove(m dragontoothmg.Move) {
	st := State{repFloor: b.repFloor}
	st.unapply = b.pos.Apply(m)
	// The library resets the clock on pawn moves and captures; nothing
	// before them can repeat.
	if b.pos.Halfmoveclock == 0 {
		b.repFloor = len(b.stateStack)
	}
	b.pushState(st)
}

func (b *Board) UndoMove(m dragontoothmg.Move) {
	st := b.popState()
	st.unapply()
	b.repFloor = st.repFloor
}

// MakeNullMove hands the move to the opponent. dragontoothmg has no null
// move, so the board is rebuilt from its own FEN with the side flipped.
func (b *Board) MakeNullMove() {
	saved := b.pos
	st := State{repFloor: b.repFloor, saved: &saved}

	b.pos = dragontoothmg.ParseFen(passFEN(saved.ToFen()))
	b.pos.Halfmoveclock = saved.Halfmoveclock + 1
	b.repFloor = len(b.stateStack)
	b.pushState(st)
}

func (b *Board) UndoNullMove() {
	st := b.popState()
	b.pos = *st.saved
	b.repFloor = st.repFloor
}

// passFEN is fen with the other side to move and no en passant square.
func passFEN(fen string) string {
	fields := strings.Fields(fen)
	if fields[1] == "w" {
		fields[1] = "b"
	} else {
		fields[1] = "w"
	}
	fields[3] = "-"
	return strings.Join(fields, " ")
}

// pushState records the position just reached; st carries what undo restores.
func (b *Board) pushState(st State) {
	st.Hash = b.pos.Hash()
	b.stateStack = append(b.stateStack, st)
}

func (b *Board) popState() State {
	st := b.stateStack[len(b.stateStack)-1]
	b.stateStack = b.stateStack[:len(b.stateStack)-1]
	return st
}

func (b *Board) Hash() uint64 {
	return b.pos.Hash()
}

func (b *Board) WhiteToMove() bool {
	return b.pos.Wtomove
}

func (b *Board) InCheck() bool {
	return b.pos.OurKingInCheck()
}

func (b *Board) FiftyMoveCounter() int {
	return int(b.pos.Halfmoveclock)
}

func (b *Board) Pieces(white bool) dragontoothmg.Bitboards {
	if white {
		return b.pos.White
	}
	return b.pos.Black
}

// IsRepetition reports whether the current position already occurred since
// the last irreversible move or null move, with the same side to move.
func (b *Board) IsRepetition() bool {
	n := len(b.stateStack) - 1
	curr := b.stateStack[n].Hash
	for i := n - 2; i >= b.repFloor; i -= 2 {
		if b.stateStack[i].Hash == curr {
			return true
		}
	}
	return false
}

const lightSquares uint64 = 0x55AA55AA55AA55AA

// IsInsufficientMaterial covers K v K, a single minor piece, and bishops
// that all stand on one square color.
func (b *Board) IsInsufficientMaterial() bool {
	w, bl := &b.pos.White, &b.pos.Black
	if w.Pawns|bl.Pawns|w.Rooks|bl.Rooks|w.Queens|bl.Queens != 0 {
		return false
	}
	knights := w.Knights | bl.Knights
	bishops := w.Bishops | bl.Bishops
	if knights != 0 {
		return bits.OnesCount64(knights|bishops) == 1
	}
	return bishops&lightSquares == 0 || bishops&^lightSquares == 0
}

// FEN renders the current position.
func (b *Board) FEN() string {
	return b.pos.ToFen()
}
