package chess

import "errors"

// Position is the full bitboard state of a chess position, per spec.md §4.1.
type Position struct {
	bb       [12]Bitboard // indexed by Piece
	occWhite Bitboard
	occBlack Bitboard
	occAll   Bitboard
	squares  [64]Piece // redundant mailbox cache, NoPiece where empty

	side           Side
	castling       CastlingRights
	epSquare       Square
	halfmoveClock  int
	fullmoveNumber int

	hash uint64
}

// ErrInvalidPosition is returned by Validate when an invariant is broken.
var ErrInvalidPosition = errors.New("chess: invalid position")

// NewEmpty returns a Position with no pieces, White to move, no castling
// rights, no en-passant square, and move counters at their defaults.
func NewEmpty() *Position {
	p := &Position{side: White, epSquare: NoSquare, fullmoveNumber: 1}
	for i := range p.squares {
		p.squares[i] = NoPiece
	}
	return p
}

// NewStartPos returns the standard starting position.
func NewStartPos() *Position {
	p, err := ParseFEN(StartFEN)
	if err != nil {
		panic("chess: start FEN failed to parse: " + err.Error())
	}
	return p
}

// StartFEN is the standard chess starting position in FEN.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func (p *Position) PieceAt(sq Square) Piece { return p.squares[sq] }

func (p *Position) SideToMove() Side { return p.side }

func (p *Position) Castling() CastlingRights { return p.castling }

func (p *Position) EnPassantSquare() Square { return p.epSquare }

func (p *Position) HalfmoveClock() int { return p.halfmoveClock }

func (p *Position) FullmoveNumber() int { return p.fullmoveNumber }

func (p *Position) Hash() uint64 { return p.hash }

// Occupancy returns the full-board occupancy bitboard.
func (p *Position) Occupancy() Bitboard { return p.occAll }

// SideOccupancy returns the occupancy of side s.
func (p *Position) SideOccupancy(s Side) Bitboard {
	if s == White {
		return p.occWhite
	}
	return p.occBlack
}

// PieceBB returns the bitboard for a single concrete piece.
func (p *Position) PieceBB(pc Piece) Bitboard { return p.bb[pc] }

// KingSquare returns the square of side s's king.
func (p *Position) KingSquare(s Side) Square {
	return p.bb[MakePiece(s, King)].LSB()
}

// addPiece places pc on sq, updating all caches and the incremental hash.
// sq must currently be empty.
func (p *Position) addPiece(pc Piece, sq Square) {
	p.bb[pc] |= bit(sq)
	p.squares[sq] = pc
	if pc.Side() == White {
		p.occWhite |= bit(sq)
	} else {
		p.occBlack |= bit(sq)
	}
	p.occAll |= bit(sq)
	p.hash ^= zobristPiece[pc][sq]
}

// removePiece removes pc from sq, updating all caches and the incremental
// hash. pc must match the piece actually occupying sq.
func (p *Position) removePiece(pc Piece, sq Square) {
	p.bb[pc] &^= bit(sq)
	p.squares[sq] = NoPiece
	if pc.Side() == White {
		p.occWhite &^= bit(sq)
	} else {
		p.occBlack &^= bit(sq)
	}
	p.occAll &^= bit(sq)
	p.hash ^= zobristPiece[pc][sq]
}

// movePiece relocates pc from one empty-destination square to another.
func (p *Position) movePiece(pc Piece, from, to Square) {
	p.removePiece(pc, from)
	p.addPiece(pc, to)
}

// IsSquareAttacked reports whether sq is attacked by side `by` in this
// position.
func (p *Position) IsSquareAttacked(sq Square, by Side) bool {
	return IsSquareAttacked(sq, by, p.occAll, &p.bb)
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool {
	return p.IsSquareAttacked(p.KingSquare(p.side), p.side.Opponent())
}

// Validate checks internal consistency of the position's caches and a few
// structural invariants (exactly one king per side, no pawns on back
// ranks, occupancy caches match the per-piece bitboards). It is a
// diagnostic used by tests, not part of move generation's hot path.
func (p *Position) Validate() error {
	var white, black, all Bitboard
	for pc := Piece(0); pc < 12; pc++ {
		// Every one of the twelve piece bitboards must be pairwise
		// disjoint, not merely the two color unions: overlap within a
		// color (e.g. bb[WP]&bb[WQ] != 0) is just as invalid.
		if p.bb[pc]&all != 0 {
			return ErrInvalidPosition
		}
		all |= p.bb[pc]
		if pc.Side() == White {
			white |= p.bb[pc]
		} else {
			black |= p.bb[pc]
		}
	}
	if white != p.occWhite || black != p.occBlack || all != p.occAll {
		return ErrInvalidPosition
	}
	if p.bb[WK].Popcount() != 1 || p.bb[BK].Popcount() != 1 {
		return ErrInvalidPosition
	}
	if p.bb[WP]&(RankMask(1)|RankMask(8)) != 0 {
		return ErrInvalidPosition
	}
	if p.bb[BP]&(RankMask(1)|RankMask(8)) != 0 {
		return ErrInvalidPosition
	}
	for sq := Square(0); sq < 64; sq++ {
		pc := p.squares[sq]
		if pc == NoPiece {
			if all.Test(sq) {
				return ErrInvalidPosition
			}
			continue
		}
		if !p.bb[pc].Test(sq) {
			return ErrInvalidPosition
		}
	}
	if computeZobrist(p) != p.hash {
		return ErrInvalidPosition
	}
	return nil
}

// Clone returns a deep copy of p, suitable for making moves on a copy
// without touching p. The legality filter does not use it: it makes and
// unmakes each move on p itself.
func (p *Position) Clone() *Position {
	cp := *p
	return &cp
}
