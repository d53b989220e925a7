package search

import (
	"cmp"
	"slices"
	"time"

	"github.com/dogw4t3r/ffp/chess"
)

// SearchLimits bounds a search, per spec.md §4.7. Any zero limit is
// treated as unbounded for that dimension except MaxDepth, which
// defaults to DefaultMaxDepth when zero.
type SearchLimits struct {
	MaxDepth  int
	TimeMS    int
	NodeLimit uint64
	// StopFlag, if non-nil, is polled cooperatively; a true value aborts
	// the search at the next safe point exactly like a time/node limit.
	StopFlag *bool
}

// DefaultMaxDepth is the depth used when SearchLimits.MaxDepth is zero.
const DefaultMaxDepth = 4

// SearchResult is the outcome of a Search call, per spec.md §4.7.
type SearchResult struct {
	BestMove    chess.Move
	HasBestMove bool
	DepthReached int
	Score       int
	Nodes       uint64
	Aborted     bool
}

// searchState carries the mutable, per-call state threaded through the
// negamax recursion: node/time bookkeeping and the sticky abort flag.
// Grounded on the reference engine's abort-polling shape in
// engine/search.go, stripped of everything beyond plain alpha-beta.
type searchState struct {
	limits  SearchLimits
	nodes   uint64
	deadline time.Time
	hasDeadline bool
	aborted bool
}

func (s *searchState) shouldAbort() bool {
	if s.aborted {
		return true
	}
	if s.limits.StopFlag != nil && *s.limits.StopFlag {
		s.aborted = true
		return true
	}
	if s.limits.NodeLimit != 0 && s.nodes >= s.limits.NodeLimit {
		s.aborted = true
		return true
	}
	if s.hasDeadline && time.Now().After(s.deadline) {
		s.aborted = true
		return true
	}
	return false
}

// Search runs iterative deepening from the root position p up to
// limits.MaxDepth (or DefaultMaxDepth if zero), returning the best move
// found and search statistics, per spec.md §4.7. p is not mutated once
// Search returns: every make is paired with an unmake.
func Search(p *chess.Position, limits SearchLimits) SearchResult {
	maxDepth := limits.MaxDepth
	if maxDepth == 0 {
		maxDepth = DefaultMaxDepth
	}

	st := &searchState{limits: limits}
	if limits.TimeMS > 0 {
		st.deadline = time.Now().Add(time.Duration(limits.TimeMS) * time.Millisecond)
		st.hasDeadline = true
	}

	var result SearchResult
	for depth := 1; depth <= maxDepth; depth++ {
		best, score, aborted := rootSearch(p, depth, st)
		result.Nodes = st.nodes
		if aborted && depth > 1 {
			// Keep the previous (shallower) iteration's result; a
			// partially searched deeper iteration is not trustworthy.
			result.Aborted = true
			break
		}
		result.DepthReached = depth
		result.Score = score
		if best.HasBestMove {
			result.BestMove = best.BestMove
			result.HasBestMove = true
		}
		if aborted {
			result.Aborted = true
			break
		}
	}
	return result
}

// rootSearch searches every legal root move to `depth` plies and returns
// the best one found, its score, and whether the search was aborted
// before finishing all root moves (in which case the result is partial:
// Search discards it in favor of the prior iteration, except at depth 1,
// where it keeps it as the only result it has).
func rootSearch(p *chess.Position, depth int, st *searchState) (SearchResult, int, bool) {
	var ml chess.MoveList
	chess.GenerateLegal(p, &ml)
	moves := ml.Slice()

	// Sort root moves by their UCI string for deterministic iteration
	// order; with no move-ordering heuristics, this is the only thing
	// standing between "first move found" ties and a consistent choice.
	sorted := make([]chess.Move, len(moves))
	copy(sorted, moves)
	slices.SortFunc(sorted, func(a, b chess.Move) int {
		return cmp.Compare(a.String(), b.String())
	})

	var result SearchResult
	bestScore := -infinity
	for _, m := range sorted {
		u := chess.MakeMove(p, m)
		st.nodes++
		score := -negamax(p, depth-1, 1, -infinity, infinity, st)
		chess.UnmakeMove(p, m, u)

		// Record this move as the best seen so far before checking for
		// abort: the root must always return a legal move once one has
		// been searched, even if that search was cut short, so that an
		// abort on the very first move never yields HasBestMove=false.
		if score > bestScore {
			bestScore = score
			result.BestMove = m
			result.HasBestMove = true
		}
		if st.aborted {
			return result, bestScore, true
		}
	}
	if !result.HasBestMove {
		// No legal moves: checkmate or stalemate at the root.
		if p.InCheck() {
			bestScore = -Mate
		} else {
			bestScore = 0
		}
	}
	return result, bestScore, false
}

const infinity = 1 << 30

// negamax performs fail-hard alpha-beta search to `depth` plies below the
// current position p, with ply counting plies from the search root so
// mate scores are adjusted as -Mate+ply (SPEC_FULL.md §13), not relative
// to the remaining depth.
func negamax(p *chess.Position, depth, ply int, alpha, beta int, st *searchState) int {
	st.nodes++
	if st.shouldAbort() {
		return 0
	}

	// A side to move with no king has just had it captured, which can
	// follow only from a root position that left that king attacked; it
	// is scored as mated.
	if p.PieceBB(chess.MakePiece(p.SideToMove(), chess.King)) == 0 {
		return -Mate + ply
	}

	var ml chess.MoveList
	chess.GenerateLegal(p, &ml)
	if ml.Len() == 0 {
		if p.InCheck() {
			return -Mate + ply
		}
		return 0
	}

	if depth == 0 {
		return Evaluate(p)
	}

	for i := 0; i < ml.Len(); i++ {
		m := ml.At(i)
		u := chess.MakeMove(p, m)
		score := -negamax(p, depth-1, ply+1, -beta, -alpha, st)
		chess.UnmakeMove(p, m, u)

		if st.aborted {
			return 0
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}
