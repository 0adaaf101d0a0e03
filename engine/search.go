package engine

import (
	"fmt"
	"time"

	"qubic/board"
	"qubic/book"
)

// Result carries the chosen move and how it was found. When TimeAbort is
// true no depth completed before the deadline and the move triple is
// meaningless.
type Result struct {
	X, Y, Z   uint8
	Score     int
	Depth     int
	Nodes     int64
	Time      time.Duration
	TimeAbort bool
	FromBook  bool
	Forced    bool
}

// Cell returns the linear index of the chosen move.
func (r Result) Cell() int {
	return board.CellIndex(int(r.X), int(r.Y), int(r.Z))
}

func (r Result) String() string {
	if r.TimeAbort {
		return "no move (time abort)"
	}
	return fmt.Sprintf("(%d,%d,%d) score %d depth %d", r.X, r.Y, r.Z, r.Score, r.Depth)
}

func moveResult(cell, score, depth int) Result {
	x, y, z := board.Coords(cell)
	return Result{X: uint8(x), Y: uint8(y), Z: uint8(z), Score: score, Depth: depth}
}

// sideMasks splits the position into the masks of the given side and its
// opponent.
func sideMasks(p1, p2 board.Bitboard, p1Side bool) (me, opp board.Bitboard) {
	if p1Side {
		return p1, p2
	}
	return p2, p1
}

// applyMove places a stone for the side to move and returns the child masks.
func applyMove(p1, p2 board.Bitboard, p1ToMove bool, cell int) (board.Bitboard, board.Bitboard) {
	bit := board.Bitboard(1) << cell
	if p1ToMove {
		return p1 | bit, p2
	}
	return p1, p2 | bit
}

// Search runs a fixed-depth search on the default session with no practical
// time limit.
func Search(p1, p2 board.Bitboard, engineIsP1 bool, depth int) (Result, bool) {
	return getDefaultSession().SearchDepth(p1, p2, engineIsP1, depth, time.Now().Add(24*time.Hour))
}

// SearchWithTime runs iterative deepening on the default session.
func SearchWithTime(p1, p2 board.Bitboard, engineIsP1 bool, limit time.Duration, progress Progress) (Result, bool) {
	return getDefaultSession().SearchWithTime(p1, p2, engineIsP1, limit, progress)
}

// SearchDepth runs a single fixed-depth search against an absolute deadline.
// The second return value is false when the engine has no legal move (full
// board). A deadline hit before the depth completes yields TimeAbort.
func (s *Session) SearchDepth(p1, p2 board.Bitboard, engineIsP1 bool, depth int, deadline time.Time) (Result, bool) {
	ctx := NewSearchContext(deadline)

	if time.Now().After(deadline) {
		return Result{TimeAbort: true}, true
	}

	if mv, ok := book.Move(p1, p2, engineIsP1); ok {
		r := moveResult(mv, WinScore, 0)
		r.FromBook = true
		return r, true
	}

	me, opp := sideMasks(p1, p2, engineIsP1)
	if mv, ok := ForcedMove(me, opp); ok {
		r := moveResult(mv, WinScore, 0)
		r.Forced = true
		return r, true
	}

	root := s.searchRootDepth(p1, p2, engineIsP1, depth, ctx)
	if root.noMoves {
		return Result{}, false
	}
	if !root.completed {
		return Result{TimeAbort: true, Nodes: ctx.nodes, Time: ctx.Elapsed()}, true
	}

	r := moveResult(root.move, root.score, depth)
	r.Nodes = ctx.nodes
	r.Time = ctx.Elapsed()
	return r, true
}

// rootResult is the outcome of one fixed-depth pass over the root moves.
type rootResult struct {
	move      int
	score     int
	noMoves   bool
	completed bool
}

// searchRootDepth searches every root move to the given depth. An abort
// mid-pass marks the result incomplete; the caller discards it.
func (s *Session) searchRootDepth(p1, p2 board.Bitboard, engineIsP1 bool, depth int, ctx *SearchContext) rootResult {
	ttMove := noTTMove
	if entry, ok := s.TT.Probe(PositionKey(p1, p2, engineIsP1)); ok {
		ttMove = int(entry.BestMove)
	}

	var moves [64]uint8
	count := sortedMoves(p1, p2, ttMove, &moves)
	if count == 0 {
		return rootResult{noMoves: true, completed: true}
	}

	bestMove := int(moves[0])
	bestScore := -Infinity
	alpha := -Infinity
	beta := Infinity

	for i := 0; i < count; i++ {
		m := int(moves[i])
		np1, np2 := applyMove(p1, p2, engineIsP1, m)
		score := -s.negamax(np1, np2, depth-1, -beta, -alpha, !engineIsP1, ctx)

		if ctx.stopped.Load() {
			return rootResult{completed: false}
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
	}

	return rootResult{move: bestMove, score: bestScore, completed: true}
}

// negamax returns the score of the position from the perspective of the
// side to move. Aborted frames return 0 and their value is never used.
func (s *Session) negamax(p1, p2 board.Bitboard, depth, alpha, beta int, p1ToMove bool, ctx *SearchContext) int {
	// Increment node counter and check the clock every 2048 nodes
	ctx.nodes++
	if ctx.nodes&timeCheckInterval == 0 {
		ctx.checkTimeout()
	}
	if ctx.stopped.Load() {
		return 0
	}

	me, opp := sideMasks(p1, p2, p1ToMove)

	// Losing now is worse than losing later: the depth term makes the
	// engine prefer long losses and short wins.
	if board.CheckWin(opp) {
		return -WinScore - depth
	}
	if depth <= 0 {
		return Evaluate(me, opp)
	}

	origAlpha, origBeta := alpha, beta

	key := PositionKey(p1, p2, p1ToMove)
	ttMove := noTTMove
	if entry, ok := s.TT.Probe(key); ok {
		ttMove = int(entry.BestMove)
		if int(entry.Depth) >= depth {
			score := int(entry.Score)
			switch entry.Flag {
			case TTFlagExact:
				return score
			case TTFlagLower:
				if score > alpha {
					alpha = score
				}
			case TTFlagUpper:
				if score < beta {
					beta = score
				}
			}
			if alpha >= beta {
				return score
			}
		}
	}

	var moves [64]uint8
	count := 0
	forced := false

	if fm, ok := ForcedMove(me, opp); ok {
		moves[0] = uint8(fm)
		count = 1
		forced = true
	} else {
		count = sortedMoves(p1, p2, ttMove, &moves)
	}

	if count == 0 {
		return 0 // Full board: draw.
	}

	// A forced reply keeps the nominal depth so the horizon follows the
	// forcing sequence. Every ply fills a cell, so the extension is
	// bounded by the number of empties.
	childDepth := depth - 1
	if forced {
		childDepth = depth
	}

	bestScore := -Infinity
	bestMove := moves[0]

	for i := 0; i < count; i++ {
		m := moves[i]
		np1, np2 := applyMove(p1, p2, p1ToMove, int(m))
		score := -s.negamax(np1, np2, childDepth, -beta, -alpha, !p1ToMove, ctx)

		if ctx.stopped.Load() {
			return 0
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			break
		}
	}

	// Fail-soft: the bound flag comes from the original window, not the
	// TT-narrowed one.
	flag := TTFlagExact
	if bestScore <= origAlpha {
		flag = TTFlagUpper
	} else if bestScore >= origBeta {
		flag = TTFlagLower
	}
	s.TT.Store(key, int32(bestScore), int8(depth), flag, bestMove)

	return bestScore
}
