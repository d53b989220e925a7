package chess

import "testing"

// Perft counts from spec.md §8, reproduced from the standard perft
// reference positions (Chess Programming Wiki) and cross-checked against
// the reference engine's own perft test table.

func TestPerftStartPos(t *testing.T) {
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
		{4, 197281},
	}
	for _, c := range cases {
		p := NewStartPos()
		if got := Perft(p, c.depth); got != c.want {
			t.Errorf("startpos depth %d: got %d want %d", c.depth, got, c.want)
		}
	}
}

func TestPerftStartPosDeep(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping depth 5 perft in short mode")
	}
	p := NewStartPos()
	if got := Perft(p, 5); got != 4865609 {
		t.Errorf("startpos depth 5: got %d want 4865609", got)
	}
}

func TestPerftKiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	p, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
	}
	for _, c := range cases {
		p2, _ := ParseFEN(fen)
		if got := Perft(p2, c.depth); got != c.want {
			t.Errorf("kiwipete depth %d: got %d want %d", c.depth, got, c.want)
		}
	}
	_ = p
}

func TestPerftKiwipeteDepth4(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping depth 4 kiwipete perft in short mode")
	}
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	p, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if got := Perft(p, 4); got != 4085603 {
		t.Errorf("kiwipete depth 4: got %d want 4085603", got)
	}
}

func TestPerftPosition3(t *testing.T) {
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 14},
		{2, 191},
		{3, 2812},
	}
	for _, c := range cases {
		p, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN: %v", err)
		}
		if got := Perft(p, c.depth); got != c.want {
			t.Errorf("position3 depth %d: got %d want %d", c.depth, got, c.want)
		}
	}
}

func TestPerftPosition3Depth5(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping depth 5 position3 perft in short mode")
	}
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	p, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if got := Perft(p, 5); got != 674624 {
		t.Errorf("position3 depth 5: got %d want 674624", got)
	}
}

func TestPerftEnPassantPosition(t *testing.T) {
	fen := "k7/8/8/3pP3/8/8/8/7K w - d6 0 2"
	p, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if got := Perft(p, 1); got != 5 {
		t.Errorf("ep depth 1: got %d want 5", got)
	}
	p2, _ := ParseFEN(fen)
	if got := Perft(p2, 2); got != 19 {
		t.Errorf("ep depth 2: got %d want 19", got)
	}
}

func TestPerftPromotionPosition(t *testing.T) {
	fen := "1n5k/P7/8/8/8/8/8/7K w - - 0 1"
	p, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if got := Perft(p, 1); got != 11 {
		t.Errorf("promotion depth 1: got %d want 11", got)
	}
}

func TestPerftDivideSumsToTotal(t *testing.T) {
	p := NewStartPos()
	entries := PerftDivide(p, 3)
	var sum uint64
	for _, e := range entries {
		sum += e.Nodes
	}
	if sum != 8902 {
		t.Errorf("perft divide depth 3 sum: got %d want 8902", sum)
	}
	if len(entries) != 20 {
		t.Errorf("perft divide depth 3 root move count: got %d want 20", len(entries))
	}
}
