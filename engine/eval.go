package engine

import (
	"math/bits"

	"qubic/board"
)

// Line contribution scale: an open three dominates, double threats through
// a single cell come right behind it.
const (
	threeWeight = 5000
	forkWeight  = 3000
	twoWeight   = 200
	oneWeight   = 10
)

// Evaluate scores a non-terminal position from the perspective of `me`.
// It is pure and antisymmetric: Evaluate(a, b) == -Evaluate(b, a).
//
// Lines holding stones from both sides are dead and contribute nothing.
// A live line scores by its stone count; the empty completions of every
// live two-line are tallied per cell, and any cell completing two or more
// such lines for one side is a fork worth an extra bonus.
func Evaluate(me, opp board.Bitboard) int {
	// Search resolves decided positions before evaluating; handle them
	// anyway so the function is total.
	if board.CheckWin(me) {
		return WinScore
	}
	if board.CheckWin(opp) {
		return -WinScore
	}

	score := 0
	var myForks, oppForks [64]uint8

	for _, line := range board.Lines() {
		mc := (me & line).PopCount()
		oc := (opp & line).PopCount()

		if mc > 0 && oc > 0 {
			continue
		}

		if oc == 0 {
			switch mc {
			case 3:
				score += threeWeight
			case 2:
				score += twoWeight
				markForkCells(line&^me, &myForks)
			case 1:
				score += oneWeight
			}
		} else {
			switch oc {
			case 3:
				score -= threeWeight
			case 2:
				score -= twoWeight
				markForkCells(line&^opp, &oppForks)
			case 1:
				score -= oneWeight
			}
		}
	}

	for i := 0; i < 64; i++ {
		if myForks[i] >= 2 {
			score += forkWeight
		}
		if oppForks[i] >= 2 {
			score -= forkWeight
		}

		if me.IsBitSet(i) {
			score += positionalWeights[i]
		}
		if opp.IsBitSet(i) {
			score -= positionalWeights[i]
		}
	}

	return score
}

// markForkCells bumps the per-cell counter for every cell in mask.
func markForkCells(mask board.Bitboard, counts *[64]uint8) {
	for m := uint64(mask); m != 0; m &= m - 1 {
		counts[bits.TrailingZeros64(m)]++
	}
}
