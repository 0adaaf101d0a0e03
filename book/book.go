// Package book provides the fixed opening hints for the first two plies.
// Anything past that is left to the search, which recovers the same choices
// from depth 4 onward.
package book

import "qubic/board"

// cornersMask covers the 8 cube corners.
const cornersMask board.Bitboard = 0x9009000000009009

// Inner-core replies to a corner opening, in preference order.
const (
	centerA = 21 // (1,1,1)
	centerB = 42 // (2,2,2)
)

// Move returns a book move for the engine side, if one applies.
//
// Ply 1: the first player takes a corner. Ply 2: if the opponent opened on
// a corner, the second player takes the centre core to blunt corner forks.
func Move(p1, p2 board.Bitboard, engineIsP1 bool) (int, bool) {
	count := (p1 | p2).PopCount()

	if count == 0 {
		return 0, true
	}

	if count == 1 && !engineIsP1 && p1&cornersMask != 0 {
		if !p1.IsBitSet(centerA) {
			return centerA, true
		}
		if !p1.IsBitSet(centerB) {
			return centerB, true
		}
	}

	return 0, false
}
