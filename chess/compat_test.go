package chess

import "testing"

func TestBitboardsCompatShape(t *testing.T) {
	p := NewStartPos()
	w := p.WhiteBitboards()
	if Bitboard(w.Pawns) != p.PieceBB(WP) {
		t.Fatalf("WhiteBitboards().Pawns should match PieceBB(WP)")
	}
	b := p.BlackBitboards()
	if Bitboard(b.Kings) != p.PieceBB(BK) {
		t.Fatalf("BlackBitboards().Kings should match PieceBB(BK)")
	}
}
