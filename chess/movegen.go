package chess

// GeneratePseudoLegal appends all pseudo-legal moves for the side to move
// in p into ml, in the fixed order required by spec.md §4.3: pawns,
// knights, bishops, rooks, queens, king, then castling. Pseudo-legal
// moves may leave the mover's own king in check; GenerateLegal filters
// those out.
func GeneratePseudoLegal(p *Position, ml *MoveList) {
	genPawnMoves(p, ml)
	genKnightMoves(p, ml)
	genSliderMoves(p, ml, Bishop)
	genSliderMoves(p, ml, Rook)
	genSliderMoves(p, ml, Queen)
	genKingMoves(p, ml)
	genCastlingMoves(p, ml)
}

// pawnOffsets holds the from->to square-index deltas for a pawn push and
// its two diagonal captures, signed so that from+offset == to.
type pawnOffsets struct {
	push, capEast, capWest int
}

func offsetsFor(side Side) pawnOffsets {
	if side == White {
		// North decreases the square index (rank 8 is index 0).
		return pawnOffsets{push: -8, capEast: -7, capWest: -9}
	}
	return pawnOffsets{push: 8, capEast: 9, capWest: 7}
}

func genPawnMoves(p *Position, ml *MoveList) {
	side := p.side
	pawn := MakePiece(side, Pawn)
	pawns := p.bb[pawn]
	empty := ^p.occAll
	enemy := p.SideOccupancy(side.Opponent())
	off := offsetsFor(side)

	var push func(Bitboard) Bitboard
	var promoRank Bitboard
	var doublePushFrom Bitboard
	var east, west func(Bitboard) Bitboard
	if side == White {
		push, east, west = shiftNorth, shiftNE, shiftNW
		promoRank = RankMask(8)
		doublePushFrom = RankMask(2)
	} else {
		push, east, west = shiftSouth, shiftSE, shiftSW
		promoRank = RankMask(1)
		doublePushFrom = RankMask(7)
	}

	// Ordering per the fixed generation pass: quiet single-pushes, then
	// double-pushes, then promotion pushes, each as its own emission pass
	// so a low-indexed promotion destination never sorts ahead of a
	// higher-indexed quiet one within the same bitboard walk.
	singlePush := push(pawns) & empty
	addPawnTargets(ml, pawn, singlePush&^promoRank, off.push, FlagQuiet)

	doublePushFromBB := pawns & doublePushFrom
	doublePush := push(push(doublePushFromBB)&empty) & empty
	addPawnTargets(ml, pawn, doublePush, off.push*2, FlagQuiet|FlagDouble)

	addPawnPromotions(ml, pawn, singlePush&promoRank, off.push, NoPiece, FlagQuiet)

	// Captures (left then right), then capture-promotions (left then
	// right), each pass covering only its own (non-promoting or
	// promoting) destination squares.
	capEast := east(pawns) & enemy
	capWest := west(pawns) & enemy
	addPawnCaptures(p, ml, pawn, capEast&^promoRank, off.capEast)
	addPawnCaptures(p, ml, pawn, capWest&^promoRank, off.capWest)
	addPawnCapturePromotions(p, ml, pawn, capEast&promoRank, off.capEast)
	addPawnCapturePromotions(p, ml, pawn, capWest&promoRank, off.capWest)

	if p.epSquare != NoSquare {
		epBB := bit(p.epSquare)
		if east(pawns)&epBB != 0 {
			addEnPassant(p, ml, pawn, side, Square(int(p.epSquare)-off.capEast))
		}
		if west(pawns)&epBB != 0 {
			addEnPassant(p, ml, pawn, side, Square(int(p.epSquare)-off.capWest))
		}
	}
}

// addPawnTargets adds non-promoting, non-capturing moves landing on each
// set bit of dests.
func addPawnTargets(ml *MoveList, pawn Piece, dests Bitboard, offset int, flags MoveFlag) {
	bb := dests
	for bb != 0 {
		to := popLSB(&bb)
		from := Square(int(to) - offset)
		ml.Add(Move{From: from, To: to, Piece: pawn, Promo: NoPiece, Captured: NoPiece, Flags: flags})
	}
}

// addPawnPromotions adds the four promotion moves (Q,R,B,N) for each set
// bit of dests, a non-capturing promotion push.
func addPawnPromotions(ml *MoveList, pawn Piece, dests Bitboard, offset int, captured Piece, flags MoveFlag) {
	bb := dests
	for bb != 0 {
		to := popLSB(&bb)
		from := Square(int(to) - offset)
		for _, pt := range promoPieceTypes {
			ml.Add(Move{From: from, To: to, Piece: pawn, Promo: MakePiece(pawn.Side(), pt), Captured: captured, Flags: flags | FlagPromo})
		}
	}
}

// addPawnCaptures adds non-promoting captures landing on each set bit of
// dests.
func addPawnCaptures(p *Position, ml *MoveList, pawn Piece, dests Bitboard, offset int) {
	bb := dests
	for bb != 0 {
		to := popLSB(&bb)
		captured := p.squares[to]
		from := Square(int(to) - offset)
		ml.Add(Move{From: from, To: to, Piece: pawn, Promo: NoPiece, Captured: captured, Flags: FlagCapture})
	}
}

// addPawnCapturePromotions adds the four capture-promotion moves (Q,R,B,N)
// for each set bit of dests.
func addPawnCapturePromotions(p *Position, ml *MoveList, pawn Piece, dests Bitboard, offset int) {
	bb := dests
	for bb != 0 {
		to := popLSB(&bb)
		captured := p.squares[to]
		from := Square(int(to) - offset)
		for _, pt := range promoPieceTypes {
			ml.Add(Move{From: from, To: to, Piece: pawn, Promo: MakePiece(pawn.Side(), pt), Captured: captured, Flags: FlagCapture | FlagPromo})
		}
	}
}

// EnPassantCapturedSquare returns the square of the pawn captured by an
// en-passant move landing on ep, for the mover's side.
func EnPassantCapturedSquare(ep Square, mover Side) Square {
	if mover == White {
		return Square(int(ep) + 8)
	}
	return Square(int(ep) - 8)
}

func addEnPassant(p *Position, ml *MoveList, pawn Piece, side Side, from Square) {
	ml.Add(Move{
		From: from, To: p.epSquare, Piece: pawn, Promo: NoPiece,
		Captured: MakePiece(side.Opponent(), Pawn), Flags: FlagCapture | FlagEnPassant,
	})
}

func genKnightMoves(p *Position, ml *MoveList) {
	side := p.side
	piece := MakePiece(side, Knight)
	own := p.SideOccupancy(side)
	bb := p.bb[piece]
	for bb != 0 {
		from := popLSB(&bb)
		targets := knightAttacks[from] &^ own
		addLeaperMoves(p, ml, piece, from, targets)
	}
}

func genKingMoves(p *Position, ml *MoveList) {
	side := p.side
	piece := MakePiece(side, King)
	own := p.SideOccupancy(side)
	from := p.bb[piece].LSB()
	targets := kingAttacks[from] &^ own
	addLeaperMoves(p, ml, piece, from, targets)
}

func addLeaperMoves(p *Position, ml *MoveList, piece Piece, from Square, targets Bitboard) {
	bb := targets
	for bb != 0 {
		to := popLSB(&bb)
		captured := p.squares[to]
		if captured == NoPiece {
			ml.Add(Move{From: from, To: to, Piece: piece, Promo: NoPiece, Captured: NoPiece, Flags: FlagQuiet})
		} else {
			ml.Add(Move{From: from, To: to, Piece: piece, Promo: NoPiece, Captured: captured, Flags: FlagCapture})
		}
	}
}

func genSliderMoves(p *Position, ml *MoveList, t PieceType) {
	side := p.side
	piece := MakePiece(side, t)
	own := p.SideOccupancy(side)
	bb := p.bb[piece]
	for bb != 0 {
		from := popLSB(&bb)
		var attacks Bitboard
		switch t {
		case Bishop:
			attacks = BishopAttacks(from, p.occAll)
		case Rook:
			attacks = RookAttacks(from, p.occAll)
		case Queen:
			attacks = QueenAttacks(from, p.occAll)
		}
		targets := attacks &^ own
		addLeaperMoves(p, ml, piece, from, targets)
	}
}

func genCastlingMoves(p *Position, ml *MoveList) {
	side := p.side
	opp := side.Opponent()
	occ := p.occAll

	if side == White {
		if p.castling&WhiteKingSide != 0 &&
			!occ.Test(61) && !occ.Test(62) &&
			!p.IsSquareAttacked(60, opp) && !p.IsSquareAttacked(61, opp) && !p.IsSquareAttacked(62, opp) {
			ml.Add(Move{From: 60, To: 62, Piece: WK, Promo: NoPiece, Captured: NoPiece, Flags: FlagCastle})
		}
		if p.castling&WhiteQueenSide != 0 &&
			!occ.Test(59) && !occ.Test(58) && !occ.Test(57) &&
			!p.IsSquareAttacked(60, opp) && !p.IsSquareAttacked(59, opp) && !p.IsSquareAttacked(58, opp) {
			ml.Add(Move{From: 60, To: 58, Piece: WK, Promo: NoPiece, Captured: NoPiece, Flags: FlagCastle})
		}
	} else {
		if p.castling&BlackKingSide != 0 &&
			!occ.Test(5) && !occ.Test(6) &&
			!p.IsSquareAttacked(4, opp) && !p.IsSquareAttacked(5, opp) && !p.IsSquareAttacked(6, opp) {
			ml.Add(Move{From: 4, To: 6, Piece: BK, Promo: NoPiece, Captured: NoPiece, Flags: FlagCastle})
		}
		if p.castling&BlackQueenSide != 0 &&
			!occ.Test(3) && !occ.Test(2) && !occ.Test(1) &&
			!p.IsSquareAttacked(4, opp) && !p.IsSquareAttacked(3, opp) && !p.IsSquareAttacked(2, opp) {
			ml.Add(Move{From: 4, To: 2, Piece: BK, Promo: NoPiece, Captured: NoPiece, Flags: FlagCastle})
		}
	}
}
