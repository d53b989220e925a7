// Package search implements a naive iterative-deepening negamax
// alpha-beta search over the chess package's move generator, plus a
// material-only evaluator. No transposition table, quiescence search,
// move ordering heuristics, or pruning beyond alpha-beta itself is used.
package search

import "github.com/dogw4t3r/ffp/chess"

// Piece values, in centipawns, per spec.md §4.7. Package-level vars
// rather than untyped constants so tests can override them, mirroring
// the reference engine's eval_defaults.go tuning-table pattern.
var PieceValue = map[chess.PieceType]int{
	chess.Pawn:   100,
	chess.Rook:   500,
	chess.Knight: 320,
	chess.Bishop: 330,
	chess.Queen:  900,
	chess.King:   20000,
}

// Mate is the base mate score magnitude; a position from which the side
// to move is checkmated scores -Mate+ply, so shorter mates score further
// from zero than longer ones (see SPEC_FULL.md §13).
const Mate = 20000

// Evaluate returns a material-only score for p from the perspective of
// the side to move: positive means the side to move is materially ahead.
func Evaluate(p *chess.Position) int {
	var score int
	for pt, v := range PieceValue {
		white := p.PieceBB(chess.MakePiece(chess.White, pt)).Popcount()
		black := p.PieceBB(chess.MakePiece(chess.Black, pt)).Popcount()
		score += (white - black) * v
	}
	if p.SideToMove() == chess.Black {
		score = -score
	}
	return score
}
