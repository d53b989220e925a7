package chess

import "testing"

func TestMoveStringFormat(t *testing.T) {
	p := NewStartPos()
	m, err := ParseUCIMove(p, "e2e4")
	if err != nil {
		t.Fatalf("ParseUCIMove: %v", err)
	}
	if m.String() != "e2e4" {
		t.Fatalf("String() = %q, want e2e4", m.String())
	}
}

func TestParseUCIMoveRejectsIllegal(t *testing.T) {
	p := NewStartPos()
	cases := []string{"e2e5", "e1e2", "zz99", "", "e2e4q"}
	for _, s := range cases {
		if _, err := ParseUCIMove(p, s); err == nil {
			t.Errorf("ParseUCIMove(%q) should have failed", s)
		}
	}
}

func TestParseUCIMoveCastle(t *testing.T) {
	p, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m, err := ParseUCIMove(p, "e1g1")
	if err != nil {
		t.Fatalf("ParseUCIMove e1g1: %v", err)
	}
	if m.Flags&FlagCastle == 0 {
		t.Fatalf("e1g1 should be flagged as castle")
	}
}
