package chess

import "testing"

// assertRoundTrip makes every legal move from p, confirms the position
// afterwards validates, then unmakes it and confirms byte-for-byte
// restoration via FEN comparison.
func assertRoundTrip(t *testing.T, fen string) {
	t.Helper()
	p, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	before := p.ToFEN()

	var ml MoveList
	GenerateLegal(p, &ml)
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		u := MakeMove(p, m)
		if err := p.Validate(); err != nil {
			t.Fatalf("%s: move %s left an invalid position: %v", fen, m, err)
		}
		UnmakeMove(p, m, u)
		after := p.ToFEN()
		if after != before {
			t.Fatalf("%s: move %s did not round-trip: got %q want %q", fen, m, after, before)
		}
	}
}

func TestMakeUnmakeRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
		"1n5k/P7/8/8/8/8/8/7K w - - 0 1",
	}
	for _, fen := range fens {
		assertRoundTrip(t, fen)
	}
}

func TestEnPassantCapture(t *testing.T) {
	p, err := ParseFEN("k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m, err := ParseUCIMove(p, "e5d6")
	if err != nil {
		t.Fatalf("ParseUCIMove: %v", err)
	}
	if m.Flags&FlagEnPassant == 0 {
		t.Fatalf("e5d6 should be flagged en passant")
	}
	MakeMove(p, m)
	d5, _ := SquareFromName("d5")
	if p.PieceAt(d5) != NoPiece {
		t.Fatalf("captured pawn on d5 should be removed")
	}
}

func TestCastlingRightsLostOnRookCapture(t *testing.T) {
	// Black rook captures White's rook on h1, which must strip White's
	// kingside right even though White's own king and rook never moved.
	p, err := ParseFEN("4k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m, err := ParseUCIMove(p, "h8h1")
	if err != nil {
		t.Fatalf("ParseUCIMove h8h1: %v", err)
	}
	MakeMove(p, m)
	if p.Castling()&WhiteKingSide != 0 {
		t.Fatalf("white kingside right should be lost after rook capture on h1")
	}
}

func TestPromotion(t *testing.T) {
	p, err := ParseFEN("1n5k/P7/8/8/8/8/8/7K w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m, err := ParseUCIMove(p, "a7a8q")
	if err != nil {
		t.Fatalf("ParseUCIMove a7a8q: %v", err)
	}
	MakeMove(p, m)
	a8, _ := SquareFromName("a8")
	if p.PieceAt(a8) != WQ {
		t.Fatalf("a7a8q should place a white queen on a8, got %v", p.PieceAt(a8))
	}
}

func TestNullMoveRoundTrip(t *testing.T) {
	p := NewStartPos()
	before := p.ToFEN()
	u := MakeNullMove(p)
	if p.SideToMove() != Black {
		t.Fatalf("null move should flip side to move")
	}
	UnmakeNullMove(p, u)
	if p.ToFEN() != before {
		t.Fatalf("null move did not round-trip: got %q want %q", p.ToFEN(), before)
	}
}

func TestCheckmateAndStalemate(t *testing.T) {
	// Back-rank mate setup with White to move: Ra8 would mate, but White
	// is not in check here, so this is not checkmate.
	mate, err := ParseFEN("6k1/5ppp/8/8/8/8/8/R6K w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if InCheckmate(mate) {
		t.Fatalf("this position should not be checkmate (king can be shielded by own pawns, not in check)")
	}

	stalemate, err := ParseFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if !InStalemate(stalemate) {
		t.Fatalf("expected stalemate")
	}
}
