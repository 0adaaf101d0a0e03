package engine

import (
	"sync/atomic"
	"time"
)

// SearchContext holds the per-root-search state: the absolute deadline, the
// throttled node counter and the cooperative abort flag. It is created at
// the root and discarded when the root returns.
type SearchContext struct {
	startTime time.Time
	deadline  time.Time
	nodes     int64
	stopped   atomic.Bool
}

// NewSearchContext creates a context that aborts past the given deadline.
func NewSearchContext(deadline time.Time) *SearchContext {
	return &SearchContext{
		startTime: time.Now(),
		deadline:  deadline,
	}
}

// checkTimeout reads the clock and latches the abort flag past the deadline.
// Called every timeCheckInterval+1 nodes.
func (ctx *SearchContext) checkTimeout() bool {
	if ctx.stopped.Load() {
		return true
	}
	if time.Now().After(ctx.deadline) {
		ctx.stopped.Store(true)
		return true
	}
	return false
}

// Stop signals the search to abort cooperatively.
func (ctx *SearchContext) Stop() {
	ctx.stopped.Store(true)
}

// Elapsed returns time elapsed since the search started.
func (ctx *SearchContext) Elapsed() time.Duration {
	return time.Since(ctx.startTime)
}
