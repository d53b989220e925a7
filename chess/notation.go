package chess

import "errors"

// ErrUnknownMove is returned by ParseUCIMove when the given string does
// not name any currently legal move.
var ErrUnknownMove = errors.New("chess: move string does not match a legal move")

// ParseUCIMove decodes a UCI long-algebraic move string (e.g. "e2e4",
// "e7e8q") against p's current legal move list, per spec.md §6. Resolving
// against the legal list (rather than synthesizing a Move from the
// string alone) guarantees the returned Move carries the correct
// captured piece, flags, and promotion piece for the position it was
// parsed in.
func ParseUCIMove(p *Position, s string) (Move, error) {
	if len(s) < 4 || len(s) > 5 {
		return Move{}, ErrUnknownMove
	}
	from, ok := SquareFromName(s[0:2])
	if !ok {
		return Move{}, ErrUnknownMove
	}
	to, ok := SquareFromName(s[2:4])
	if !ok {
		return Move{}, ErrUnknownMove
	}
	var promo byte
	if len(s) == 5 {
		promo = s[4]
	}

	var ml MoveList
	GenerateLegal(p, &ml)
	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		if m.From != from || m.To != to {
			continue
		}
		if m.Flags&FlagPromo != 0 {
			if promo == 0 || promoLetter(m.Promo.Type()) != promo {
				continue
			}
		} else if promo != 0 {
			continue
		}
		return m, nil
	}
	return Move{}, ErrUnknownMove
}
