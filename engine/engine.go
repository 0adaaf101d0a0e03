// Package engine implements the search core: evaluation, forced-move
// detection, move ordering, transposition table and the negamax driver.
package engine

import (
	"sync"

	"qubic/board"
)

const (
	// WinScore is the reserved band for decided positions; static
	// evaluation never reaches it.
	WinScore = 30000

	// Infinity bounds the alpha-beta window.
	Infinity = 50000

	// DefaultMaxDepth caps iterative deepening.
	DefaultMaxDepth = 14

	// timeCheckInterval throttles clock reads to one per 2048 nodes.
	// Must be a power of two minus one so masking replaces modulo.
	timeCheckInterval = 2047
)

// positionalWeights holds the strategic value of each cell: cube corners
// and the inner core dominate, face cells beat edge cells.
var positionalWeights [64]int

func init() {
	for i := range positionalWeights {
		x, y, z := board.Coords(i)
		extremes := 0
		for _, c := range []int{x, y, z} {
			if c == 0 || c == 3 {
				extremes++
			}
		}
		switch extremes {
		case 0:
			positionalWeights[i] = 50
		case 1:
			positionalWeights[i] = 10
		case 2:
			positionalWeights[i] = 5
		default:
			positionalWeights[i] = 200
		}
	}
}

var (
	defaultSession     *Session
	defaultSessionOnce sync.Once
)

// getDefaultSession returns the shared session backing the package-level
// search functions.
func getDefaultSession() *Session {
	defaultSessionOnce.Do(func() {
		defaultSession = NewSession(DefaultHashMB)
	})
	return defaultSession
}

// ClearTranspositionTable drops every cached entry of the default session.
func ClearTranspositionTable() {
	getDefaultSession().ClearTT()
}
