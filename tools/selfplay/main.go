// Command selfplay runs engine-vs-engine matches and prints aggregate
// results. Useful for sanity-checking search changes: the deeper side
// should not lose a series.
package main

import (
	"flag"
	"fmt"
	"time"

	"qubic/board"
	"qubic/engine"
)

func main() {
	games := flag.Int("games", 10, "number of games to play")
	depthA := flag.Int("deptha", 6, "search depth of engine A")
	depthB := flag.Int("depthb", 4, "search depth of engine B")
	hashMB := flag.Int("hash", 32, "transposition table size per engine in MB")
	flag.Parse()

	var aWins, bWins, draws int

	start := time.Now()
	for game := 0; game < *games; game++ {
		// Alternate who moves first between games.
		aIsP1 := game%2 == 0
		winner := playGame(*depthA, *depthB, aIsP1, *hashMB)

		switch winner {
		case 1:
			aWins++
		case 2:
			bWins++
		default:
			draws++
		}
		fmt.Printf("game %2d: %s\n", game+1, outcomeString(winner, aIsP1))
	}

	fmt.Printf("\nA (depth %d) vs B (depth %d): +%d -%d =%d in %s\n",
		*depthA, *depthB, aWins, bWins, draws, time.Since(start).Round(time.Millisecond))
}

// playGame returns 1 if engine A won, 2 if engine B won, 0 on a draw.
func playGame(depthA, depthB int, aIsP1 bool, hashMB int) int {
	sessionA := engine.NewSession(hashMB)
	sessionB := engine.NewSession(hashMB)

	pos := board.NewPosition()
	deadline := time.Now().Add(time.Hour)

	for {
		aToMove := pos.P1ToMove == aIsP1

		var result engine.Result
		var ok bool
		if aToMove {
			result, ok = sessionA.SearchDepth(pos.P1, pos.P2, pos.P1ToMove, depthA, deadline)
		} else {
			result, ok = sessionB.SearchDepth(pos.P1, pos.P2, pos.P1ToMove, depthB, deadline)
		}
		if !ok || result.TimeAbort {
			return 0
		}

		pos.Apply(result.Cell())

		aMask, bMask := pos.P1, pos.P2
		if !aIsP1 {
			aMask, bMask = pos.P2, pos.P1
		}
		switch {
		case board.CheckWin(aMask):
			return 1
		case board.CheckWin(bMask):
			return 2
		case pos.Empties() == 0:
			return 0
		}
	}
}

func outcomeString(winner int, aIsP1 bool) string {
	first := "A"
	if !aIsP1 {
		first = "B"
	}
	switch winner {
	case 1:
		return fmt.Sprintf("A wins (%s moved first)", first)
	case 2:
		return fmt.Sprintf("B wins (%s moved first)", first)
	default:
		return fmt.Sprintf("draw (%s moved first)", first)
	}
}
