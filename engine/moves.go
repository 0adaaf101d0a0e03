package engine

import (
	"slices"

	"qubic/board"
)

// ttMoveBonus lifts the cached best move above any positional score.
const ttMoveBonus = 100000

// noTTMove marks the absence of a move-ordering hint.
const noTTMove = -1

type scoredMove struct {
	cell  uint8
	score int
}

// sortedMoves fills out with the empty cells ordered for search: the TT
// hint first, then by descending positional weight, ties by ascending cell
// index. Returns the move count.
func sortedMoves(p1, p2 board.Bitboard, ttMove int, out *[64]uint8) int {
	occupied := p1 | p2
	var scored [64]scoredMove
	count := 0

	for i := 0; i < 64; i++ {
		if occupied.IsBitSet(i) {
			continue
		}
		score := positionalWeights[i]
		if i == ttMove {
			score += ttMoveBonus
		}
		scored[count] = scoredMove{cell: uint8(i), score: score}
		count++
	}

	slices.SortFunc(scored[:count], func(a, b scoredMove) int {
		if a.score != b.score {
			return b.score - a.score
		}
		return int(a.cell) - int(b.cell)
	})

	for i := 0; i < count; i++ {
		out[i] = scored[i].cell
	}
	return count
}
