package chess

// MoveFlag is an OR-able bitmask describing special move properties, per
// spec.md §4.2. A move can be, for example, both a CAPTURE and a PROMO.
type MoveFlag uint8

const (
	FlagQuiet     MoveFlag = 1 << 0
	FlagCapture   MoveFlag = 1 << 1
	FlagPromo     MoveFlag = 1 << 2
	FlagEnPassant MoveFlag = 1 << 3
	FlagCastle    MoveFlag = 1 << 4
	FlagDouble    MoveFlag = 1 << 5
)

// Move is a single chess move, per spec.md §4.2's Move tuple.
type Move struct {
	From     Square
	To       Square
	Piece    Piece
	Promo    Piece // NoPiece unless Flags&FlagPromo
	Captured Piece // NoPiece unless Flags&FlagCapture
	Flags    MoveFlag
}

// MoveList is a fixed-capacity slice of moves, matching spec.md §4.2's
// capacity requirement (>=256) without per-move heap allocation in the
// generator's hot path.
type MoveList struct {
	moves [256]Move
	n     int
}

// Len returns the number of moves currently stored.
func (ml *MoveList) Len() int { return ml.n }

// At returns the i'th move.
func (ml *MoveList) At(i int) Move { return ml.moves[i] }

// Slice returns the stored moves as a plain slice backed by the list's
// internal array; callers must not retain it past the next Reset/Add.
func (ml *MoveList) Slice() []Move { return ml.moves[:ml.n] }

// Reset empties the list for reuse.
func (ml *MoveList) Reset() { ml.n = 0 }

// Add appends m to the list. The caller is responsible for not exceeding
// capacity; 256 comfortably bounds any reachable chess position's move
// count.
func (ml *MoveList) Add(m Move) {
	ml.moves[ml.n] = m
	ml.n++
}

// promoPieceTypes is the fixed underpromotion order used when generating
// promotion moves: queen, rook, bishop, knight.
var promoPieceTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

// String renders m in UCI long-algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Flags&FlagPromo != 0 {
		s += string(promoLetter(m.Promo.Type()))
	}
	return s
}

func promoLetter(t PieceType) byte {
	switch t {
	case Queen:
		return 'q'
	case Rook:
		return 'r'
	case Bishop:
		return 'b'
	case Knight:
		return 'n'
	}
	return '?'
}

// Undo captures the state needed to reverse MakeMove, per spec.md §4.4.
type Undo struct {
	Castling       CastlingRights
	EnPassant      Square
	HalfmoveClock  int
	FullmoveNumber int
	Captured       Piece
	Hash           uint64
}
