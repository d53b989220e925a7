package chess

import "github.com/dylhunn/dragontoothmg"

// Bitboards returns side s's per-piece-type bitboards in dragontoothmg's
// own Bitboards layout (github.com/dylhunn/dragontoothmg), for embedders
// already written against that vocabulary. It is a read-only view: no
// dragontoothmg value ever flows back into a Position, and nothing in
// this package's algorithms consumes it.
func (p *Position) Bitboards(s Side) dragontoothmg.Bitboards {
	return dragontoothmg.Bitboards{
		Pawns:   uint64(p.bb[MakePiece(s, Pawn)]),
		Bishops: uint64(p.bb[MakePiece(s, Bishop)]),
		Knights: uint64(p.bb[MakePiece(s, Knight)]),
		Rooks:   uint64(p.bb[MakePiece(s, Rook)]),
		Queens:  uint64(p.bb[MakePiece(s, Queen)]),
		Kings:   uint64(p.bb[MakePiece(s, King)]),
		All:     uint64(p.SideOccupancy(s)),
	}
}

// WhiteBitboards returns White's bitboards.
func (p *Position) WhiteBitboards() dragontoothmg.Bitboards { return p.Bitboards(White) }

// BlackBitboards returns Black's bitboards.
func (p *Position) BlackBitboards() dragontoothmg.Bitboards { return p.Bitboards(Black) }
