package chess

// GenerateLegal appends every legal move for the side to move in p into
// ml, per spec.md §4.5: generate pseudo-legal moves, make each on p,
// reject it if it leaves the mover's own king attacked, then unmake.
func GenerateLegal(p *Position, ml *MoveList) {
	var pseudo MoveList
	GeneratePseudoLegal(p, &pseudo)

	mover := p.side
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		u := MakeMove(p, m)
		kingSq := p.KingSquare(mover)
		if !p.IsSquareAttacked(kingSq, mover.Opponent()) {
			ml.Add(m)
		}
		UnmakeMove(p, m, u)
	}
}

// HasLegalMoves reports whether the side to move has at least one legal
// move, without building the full list.
func HasLegalMoves(p *Position) bool {
	var pseudo MoveList
	GeneratePseudoLegal(p, &pseudo)
	mover := p.side
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.At(i)
		u := MakeMove(p, m)
		ok := !p.IsSquareAttacked(p.KingSquare(mover), mover.Opponent())
		UnmakeMove(p, m, u)
		if ok {
			return true
		}
	}
	return false
}

// InCheckmate reports whether the side to move is checkmated.
func InCheckmate(p *Position) bool {
	return p.InCheck() && !HasLegalMoves(p)
}

// InStalemate reports whether the side to move is stalemated.
func InStalemate(p *Position) bool {
	return !p.InCheck() && !HasLegalMoves(p)
}
