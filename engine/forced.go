package engine

import (
	"math/bits"

	"qubic/board"
)

// ForcedMove scans for a move that must be played right now: completing an
// own line wins on the spot, and an opponent three with an open completion
// must be blocked. Wins take precedence over blocks; within each pass the
// first line in table order decides.
func ForcedMove(me, opp board.Bitboard) (int, bool) {
	lines := board.Lines()
	occupied := me | opp

	for _, line := range lines {
		if (me&line).PopCount() == 3 && opp&line == 0 {
			return bits.TrailingZeros64(uint64(line &^ occupied)), true
		}
	}

	for _, line := range lines {
		if (opp&line).PopCount() == 3 && me&line == 0 {
			return bits.TrailingZeros64(uint64(line &^ occupied)), true
		}
	}

	return 0, false
}
