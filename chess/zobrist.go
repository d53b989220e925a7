package chess

import "math/rand"

// Incremental Zobrist hashing, kept per SPEC_FULL.md §12 purely as a
// cross-validation aid for Validate; nothing in this repository feeds it
// into a transposition table.
var (
	zobristPiece     [12][64]uint64
	zobristCastling  [16]uint64
	zobristEnPassant [8]uint64 // indexed by file
	zobristSideWhite uint64
)

func init() {
	r := rand.New(rand.NewSource(0xC0DE))
	for pc := 0; pc < 12; pc++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[pc][sq] = r.Uint64()
		}
	}
	for i := range zobristCastling {
		zobristCastling[i] = r.Uint64()
	}
	for i := range zobristEnPassant {
		zobristEnPassant[i] = r.Uint64()
	}
	zobristSideWhite = r.Uint64()
}

// computeZobrist recomputes the hash for p from scratch, used only to
// cross-check the incrementally maintained Position.hash in Validate.
func computeZobrist(p *Position) uint64 {
	var h uint64
	for sq := Square(0); sq < 64; sq++ {
		pc := p.squares[sq]
		if pc != NoPiece {
			h ^= zobristPiece[pc][sq]
		}
	}
	h ^= zobristCastling[p.castling]
	if p.epSquare != NoSquare {
		h ^= zobristEnPassant[p.epSquare.File()]
	}
	if p.side == White {
		h ^= zobristSideWhite
	}
	return h
}
