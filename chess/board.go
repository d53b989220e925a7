package chess

import (
	"strconv"
	"strings"
)

// String renders p as an 8x8 ASCII board with rank/file labels, grounded
// on the original print_board layout. This is adapter-level convenience
// (the UCI "d" command, CLI diagnostics) and is not part of the tested
// move-generation/make-unmake contract.
func (p *Position) String() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for rank := 0; rank < 8; rank++ {
		sb.WriteString(strconv.Itoa(8 - rank))
		for file := 0; file < 8; file++ {
			sq := Square(rank*8 + file)
			pc := p.squares[sq]
			sb.WriteByte(' ')
			sb.WriteString(pc.String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a  b  c  d  e  f  g  h\n\n")
	if p.side == White {
		sb.WriteString("White to move\n")
	} else {
		sb.WriteString("Black to move\n")
	}
	return sb.String()
}
