package engine

import (
	"testing"

	"qubic/board"

	"github.com/stretchr/testify/assert"
)

func TestForcedMoveWin(t *testing.T) {
	// Three in a row on the bottom-front edge: cell 3 completes it.
	me := board.Bitboard(0b111)
	opp := board.Bitboard(0b11) << 16

	mv, ok := ForcedMove(me, opp)
	assert.True(t, ok)
	assert.Equal(t, 3, mv)

	x, y, z := board.Coords(mv)
	assert.Equal(t, [3]int{3, 0, 0}, [3]int{x, y, z})
}

func TestForcedMoveBlock(t *testing.T) {
	// Same stones from the other side: cell 3 is the only block.
	me := board.Bitboard(0b11) << 16
	opp := board.Bitboard(0b111)

	mv, ok := ForcedMove(me, opp)
	assert.True(t, ok)
	assert.Equal(t, 3, mv)
}

func TestForcedMoveWinBeatsBlock(t *testing.T) {
	// Both sides have an open three; completing our own wins on the spot.
	me := board.Bitboard(0b111)
	opp := board.Bitboard(0b111) << 16

	mv, ok := ForcedMove(me, opp)
	assert.True(t, ok)
	assert.Equal(t, 3, mv)
}

func TestForcedMoveNone(t *testing.T) {
	testCases := []struct {
		name string
		me   board.Bitboard
		opp  board.Bitboard
	}{
		{"empty board", 0, 0},
		{"open two only", 0b11, 1 << 21},
		{"three already blocked", 0b111, 1 << 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := ForcedMove(tc.me, tc.opp)
			assert.False(t, ok)
		})
	}
}

func TestForcedMovePlayingItWins(t *testing.T) {
	// Property: a reported winning completion really completes a line.
	me := board.Bitboard(1<<5 | 1<<21 | 1<<53)
	// Pillar at x=1 z=1: cells 5, 21, 37, 53; cell 37 is missing.
	mv, ok := ForcedMove(me, 0)
	assert.True(t, ok)
	assert.Equal(t, 37, mv)

	var after = me
	after.SetBit(mv)
	assert.True(t, board.CheckWin(after))
}
