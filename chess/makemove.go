package chess

// MakeMove applies m to p and returns the Undo record needed to reverse
// it, following the ordering in spec.md §4.4: snapshot undo state, remove
// any captured piece (including the en-passant victim), relocate the
// moving piece (promoting it if applicable), relocate the castling rook,
// update castling rights, set the new en-passant square, advance the move
// counters, and toggle the side to move.
func MakeMove(p *Position, m Move) Undo {
	undo := Undo{
		Castling:       p.castling,
		EnPassant:      p.epSquare,
		HalfmoveClock:  p.halfmoveClock,
		FullmoveNumber: p.fullmoveNumber,
		Captured:       m.Captured,
		Hash:           p.hash,
	}

	side := p.side

	if p.epSquare != NoSquare {
		p.hash ^= zobristEnPassant[p.epSquare.File()]
	}
	p.hash ^= zobristCastling[p.castling]

	if m.Flags&FlagCapture != 0 {
		if m.Flags&FlagEnPassant != 0 {
			capSq := EnPassantCapturedSquare(m.To, side)
			p.removePiece(m.Captured, capSq)
		} else {
			p.removePiece(m.Captured, m.To)
		}
	}

	p.removePiece(m.Piece, m.From)
	if m.Flags&FlagPromo != 0 {
		p.addPiece(m.Promo, m.To)
	} else {
		p.addPiece(m.Piece, m.To)
	}

	if m.Flags&FlagCastle != 0 {
		switch m.To {
		case 62: // White king side, rook h1->f1
			p.movePiece(WR, 63, 61)
		case 58: // White queen side, rook a1->d1
			p.movePiece(WR, 56, 59)
		case 6: // Black king side, rook h8->f8
			p.movePiece(BR, 7, 5)
		case 2: // Black queen side, rook a8->d8
			p.movePiece(BR, 0, 3)
		}
	}

	p.castling &^= castlingLossMask(m.From) | castlingLossMask(m.To)

	if m.Flags&FlagDouble != 0 {
		p.epSquare = Square((int(m.From) + int(m.To)) / 2)
	} else {
		p.epSquare = NoSquare
	}

	p.hash ^= zobristCastling[p.castling]
	if p.epSquare != NoSquare {
		p.hash ^= zobristEnPassant[p.epSquare.File()]
	}
	p.hash ^= zobristSideWhite

	if m.Piece.Type() == Pawn || m.Flags&FlagCapture != 0 {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}
	if side == Black {
		p.fullmoveNumber++
	}

	p.side = side.Opponent()

	return undo
}

// castlingLossMask returns the castling rights that are forfeited when a
// piece departs from, or a capture lands on, sq. This implements the
// movement-through-home-squares rule of spec.md §4.4 step 8: rights are
// cleared by observing the four home squares, not by tracking piece
// identity.
func castlingLossMask(sq Square) CastlingRights {
	switch sq {
	case whiteKingHome:
		return WhiteKingSide | WhiteQueenSide
	case whiteRookKSide:
		return WhiteKingSide
	case whiteRookQSide:
		return WhiteQueenSide
	case blackKingHome:
		return BlackKingSide | BlackQueenSide
	case blackRookKSide:
		return BlackKingSide
	case blackRookQSide:
		return BlackQueenSide
	}
	return 0
}

// UnmakeMove reverses m using the Undo record MakeMove returned for it. p
// must be in the exact post-move state MakeMove left it in.
func UnmakeMove(p *Position, m Move, u Undo) {
	side := m.Piece.Side()
	p.side = side

	if m.Flags&FlagCastle != 0 {
		switch m.To {
		case 62:
			p.movePiece(WR, 61, 63)
		case 58:
			p.movePiece(WR, 59, 56)
		case 6:
			p.movePiece(BR, 5, 7)
		case 2:
			p.movePiece(BR, 3, 0)
		}
	}

	if m.Flags&FlagPromo != 0 {
		p.removePiece(m.Promo, m.To)
	} else {
		p.removePiece(m.Piece, m.To)
	}
	p.addPiece(m.Piece, m.From)

	if m.Flags&FlagCapture != 0 {
		if m.Flags&FlagEnPassant != 0 {
			capSq := EnPassantCapturedSquare(m.To, side)
			p.addPiece(m.Captured, capSq)
		} else {
			p.addPiece(m.Captured, m.To)
		}
	}

	p.castling = u.Castling
	p.epSquare = u.EnPassant
	p.halfmoveClock = u.HalfmoveClock
	p.fullmoveNumber = u.FullmoveNumber
	p.hash = u.Hash
}

// MakeNullMove flips the side to move and clears the en-passant square
// without moving any piece, returning the Undo needed to reverse it. It
// is not called anywhere in the search package; it exists as a chess-level
// primitive for embedders, exercised only by its own round-trip test.
func MakeNullMove(p *Position) Undo {
	u := Undo{
		Castling:      p.castling,
		EnPassant:     p.epSquare,
		HalfmoveClock: p.halfmoveClock,
		Hash:          p.hash,
	}
	if p.epSquare != NoSquare {
		p.hash ^= zobristEnPassant[p.epSquare.File()]
	}
	p.hash ^= zobristSideWhite
	p.epSquare = NoSquare
	p.side = p.side.Opponent()
	return u
}

// UnmakeNullMove reverses MakeNullMove.
func UnmakeNullMove(p *Position, u Undo) {
	p.side = p.side.Opponent()
	p.castling = u.Castling
	p.epSquare = u.EnPassant
	p.halfmoveClock = u.HalfmoveClock
	p.hash = u.Hash
}
