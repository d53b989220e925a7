package chess

import (
	"errors"
	"strconv"
	"strings"
)

// FEN parsing/emission errors, per spec.md §7's boolean/sentinel failure
// contract: ParseFEN never panics on malformed input, it returns one of
// these.
var (
	ErrFENFieldCount   = errors.New("chess: fen: wrong number of fields")
	ErrFENRankCount    = errors.New("chess: fen: wrong number of ranks")
	ErrFENRankLength   = errors.New("chess: fen: rank does not sum to 8 files")
	ErrFENPieceChar    = errors.New("chess: fen: invalid piece character")
	ErrFENSideChar     = errors.New("chess: fen: invalid side-to-move field")
	ErrFENCastling     = errors.New("chess: fen: invalid castling field")
	ErrFENEnPassant    = errors.New("chess: fen: invalid en-passant field")
	ErrFENHalfmove     = errors.New("chess: fen: invalid halfmove clock")
	ErrFENFullmove     = errors.New("chess: fen: invalid fullmove number")
)

var fenPieceFromChar = map[byte]Piece{
	'P': WP, 'R': WR, 'N': WN, 'B': WB, 'Q': WQ, 'K': WK,
	'p': BP, 'r': BR, 'n': BN, 'b': BB, 'q': BQ, 'k': BK,
}

// ParseFEN parses a Forsyth-Edwards Notation string into a Position, per
// spec.md §7. It validates field count, rank structure, piece characters,
// side-to-move, castling rights, en-passant target, and the two move
// counters; halfmove clock and fullmove number default to 0 and 1 when
// the FEN omits them, matching the reference engine's lenient parser.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return nil, ErrFENFieldCount
	}

	p := NewEmpty()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, ErrFENRankCount
	}
	for rankIdx, rankStr := range ranks {
		file := 0
		for i := 0; i < len(rankStr); i++ {
			c := rankStr[i]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			pc, ok := fenPieceFromChar[c]
			if !ok {
				return nil, ErrFENPieceChar
			}
			if file >= 8 {
				return nil, ErrFENRankLength
			}
			sq := Square(rankIdx*8 + file)
			p.addPiece(pc, sq)
			file++
		}
		if file != 8 {
			return nil, ErrFENRankLength
		}
	}

	switch fields[1] {
	case "w":
		p.side = White
	case "b":
		p.side = Black
	default:
		return nil, ErrFENSideChar
	}

	var castling CastlingRights
	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				castling |= WhiteKingSide
			case 'Q':
				castling |= WhiteQueenSide
			case 'k':
				castling |= BlackKingSide
			case 'q':
				castling |= BlackQueenSide
			default:
				return nil, ErrFENCastling
			}
		}
	}
	p.castling = castling

	if fields[3] == "-" {
		p.epSquare = NoSquare
	} else {
		sq, ok := SquareFromName(fields[3])
		if !ok {
			return nil, ErrFENEnPassant
		}
		p.epSquare = sq
	}

	p.halfmoveClock = 0
	p.fullmoveNumber = 1
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, ErrFENHalfmove
		}
		p.halfmoveClock = n
	}
	if len(fields) == 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, ErrFENFullmove
		}
		p.fullmoveNumber = n
	}

	p.hash = computeZobrist(p)
	return p, nil
}

// ToFEN renders p as a Forsyth-Edwards Notation string, with castling
// rights emitted in canonical "KQkq" order and "-" sentinels for absent
// castling/en-passant fields.
func (p *Position) ToFEN() string {
	var sb strings.Builder
	for rank := 0; rank < 8; rank++ {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := Square(rank*8 + file)
			pc := p.squares[sq]
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank != 7 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.side.String())

	sb.WriteByte(' ')
	if p.castling == 0 {
		sb.WriteByte('-')
	} else {
		if p.castling&WhiteKingSide != 0 {
			sb.WriteByte('K')
		}
		if p.castling&WhiteQueenSide != 0 {
			sb.WriteByte('Q')
		}
		if p.castling&BlackKingSide != 0 {
			sb.WriteByte('k')
		}
		if p.castling&BlackQueenSide != 0 {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	if p.epSquare == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(p.epSquare.String())
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullmoveNumber))

	return sb.String()
}
