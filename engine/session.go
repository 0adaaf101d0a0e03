package engine

import (
	"fmt"
	"time"

	"qubic/board"
	"qubic/book"
)

// Session holds per-game state that should be isolated between concurrent
// games: each session owns its transposition table, so unrelated callers
// never see each other's cached scores.
type Session struct {
	TT          *TranspositionTable
	debugLogger *Logger // Optional logger for per-depth search info
	maxDepth    int
}

// NewSession creates a new game session with its own transposition table.
// hashSizeMB specifies the size of the transposition table in megabytes.
func NewSession(hashSizeMB int) *Session {
	return &Session{
		TT:       NewTranspositionTable(hashSizeMB),
		maxDepth: DefaultMaxDepth,
	}
}

// SetMaxDepth caps iterative deepening. Values are clamped to 1..64.
func (s *Session) SetMaxDepth(depth int) {
	if depth < 1 {
		depth = 1
	}
	if depth > 64 {
		depth = 64
	}
	s.maxDepth = depth
}

// ClearTT drops all cached entries.
func (s *Session) ClearTT() {
	if s.TT != nil {
		s.TT.Clear()
	}
}

// Clear resets the session state for a new game.
func (s *Session) Clear() {
	s.ClearTT()
}

// ResizeTT creates a new transposition table with the given size.
func (s *Session) ResizeTT(sizeMB int) {
	s.TT = NewTranspositionTable(sizeMB)
}

// SetDebugLogger sets an optional logger for detailed search information.
func (s *Session) SetDebugLogger(logger *Logger) {
	s.debugLogger = logger
}

// Progress is invoked between completed iterative-deepening depths. It must
// not re-enter the engine.
type Progress func(depth, score int)

// SearchWithTime picks a move for the engine side by iterative deepening
// within the given time budget.
//
// Book and forced moves short-circuit with a WinScore sentinel so the
// caller treats them as definitive. A depth interrupted by the deadline is
// discarded wholesale and the previous depth's move stands. The second
// return value is false when the engine has no legal move (full board).
func (s *Session) SearchWithTime(p1, p2 board.Bitboard, engineIsP1 bool, limit time.Duration, progress Progress) (Result, bool) {
	deadline := time.Now().Add(limit)
	ctx := NewSearchContext(deadline)

	if mv, ok := book.Move(p1, p2, engineIsP1); ok {
		r := moveResult(mv, WinScore, 0)
		r.FromBook = true
		s.logResult(p1, p2, "Book", r, ctx)
		return r, true
	}

	me, opp := sideMasks(p1, p2, engineIsP1)
	if mv, ok := ForcedMove(me, opp); ok {
		r := moveResult(mv, WinScore, 0)
		r.Forced = true
		s.logResult(p1, p2, "Forced", r, ctx)
		return r, true
	}

	var best Result
	haveResult := false

	for depth := 1; depth <= s.maxDepth; depth++ {
		if time.Now().After(deadline) {
			break
		}

		root := s.searchRootDepth(p1, p2, engineIsP1, depth, ctx)
		if root.noMoves {
			return Result{}, false
		}

		// A depth cut short by the deadline is discarded entirely;
		// partial subtree values never reach the answer.
		if !root.completed {
			break
		}

		best = moveResult(root.move, root.score, depth)
		best.Nodes = ctx.nodes
		best.Time = ctx.Elapsed()
		haveResult = true

		if s.debugLogger != nil {
			s.debugLogger.Log(LogInfo{
				Timestamp: time.Now(),
				Position:  positionTag(p1, p2),
				Move:      fmt.Sprintf("D%d:%d,%d,%d", depth, best.X, best.Y, best.Z),
				Source:    "Search",
				Score:     fmt.Sprintf("%+d", best.Score),
				Depth:     depth,
				Nodes:     ctx.nodes,
				Duration:  ctx.Elapsed(),
			})
		}

		if progress != nil {
			progress(depth, root.score)
		}

		// Forced win found: deeper search cannot improve on it.
		if root.score >= WinScore-100 {
			break
		}
	}

	if !haveResult {
		r := Result{TimeAbort: true, Nodes: ctx.nodes, Time: ctx.Elapsed()}
		s.logResult(p1, p2, "Abort", r, ctx)
		return r, true
	}

	s.logResult(p1, p2, "Search", best, ctx)
	return best, true
}

func (s *Session) logResult(p1, p2 board.Bitboard, source string, r Result, ctx *SearchContext) {
	if s.debugLogger == nil {
		return
	}
	move := "-"
	if !r.TimeAbort {
		move = fmt.Sprintf("%d,%d,%d", r.X, r.Y, r.Z)
	}
	s.debugLogger.Log(LogInfo{
		Timestamp: time.Now(),
		Position:  positionTag(p1, p2),
		Move:      move,
		Source:    source,
		Score:     fmt.Sprintf("%+d", r.Score),
		Depth:     r.Depth,
		Nodes:     r.Nodes,
		Duration:  ctx.Elapsed(),
	})
}

func positionTag(p1, p2 board.Bitboard) string {
	return fmt.Sprintf("%s/%s", p1.Hex(), p2.Hex())
}
