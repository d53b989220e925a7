package chess

import "testing"

func TestSquareNotation(t *testing.T) {
	cases := map[Square]string{0: "a8", 7: "h8", 56: "a1", 63: "h1", 52: "e2", 44: "e3"}
	for sq, want := range cases {
		if got := sq.String(); got != want {
			t.Errorf("Square(%d).String() = %q, want %q", sq, got, want)
		}
		parsed, ok := SquareFromName(want)
		if !ok || parsed != sq {
			t.Errorf("SquareFromName(%q) = %d,%v want %d,true", want, parsed, ok, sq)
		}
	}
}

func TestPieceTypeAndSide(t *testing.T) {
	if WP.Type() != Pawn || WP.Side() != White {
		t.Fatalf("WP should be White Pawn")
	}
	if BK.Type() != King || BK.Side() != Black {
		t.Fatalf("BK should be Black King")
	}
	if MakePiece(White, Queen) != WQ {
		t.Fatalf("MakePiece(White, Queen) should be WQ")
	}
	if MakePiece(Black, Knight) != BN {
		t.Fatalf("MakePiece(Black, Knight) should be BN")
	}
}

func TestStartPosValidate(t *testing.T) {
	p := NewStartPos()
	if err := p.Validate(); err != nil {
		t.Fatalf("start position failed Validate: %v", err)
	}
	if p.SideToMove() != White {
		t.Fatalf("start position should have White to move")
	}
	if p.Castling() != WhiteKingSide|WhiteQueenSide|BlackKingSide|BlackQueenSide {
		t.Fatalf("start position should have all castling rights")
	}
}

func TestKnightAttacksCorner(t *testing.T) {
	a8, _ := SquareFromName("a8")
	attacks := KnightAttacks(a8)
	if attacks.Popcount() != 2 {
		t.Fatalf("knight on a8 should have 2 attacks, got %d", attacks.Popcount())
	}
	b6, _ := SquareFromName("b6")
	c7, _ := SquareFromName("c7")
	if !attacks.Test(b6) || !attacks.Test(c7) {
		t.Fatalf("knight on a8 should attack b6 and c7")
	}
}

func TestRookAttacksBlocked(t *testing.T) {
	p := NewStartPos()
	a1, _ := SquareFromName("a1")
	attacks := RookAttacks(a1, p.Occupancy())
	// Rook on a1 in the start position is blocked immediately by its own
	// pawn (a2) and its own knight (b1); both blocker squares are
	// included in the attack set (capture-or-blocked semantics).
	a2, _ := SquareFromName("a2")
	b1, _ := SquareFromName("b1")
	if attacks.Popcount() != 2 || !attacks.Test(a2) || !attacks.Test(b1) {
		t.Fatalf("rook on a1 at start should see exactly a2,b1, got popcount=%d", attacks.Popcount())
	}
}
