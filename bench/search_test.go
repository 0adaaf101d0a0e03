package bench

import (
	"fmt"
	"testing"
	"time"

	"qubic/board"
	"qubic/engine"
)

// TestSearchDepthBenchmark measures search performance at different depths.
// Run with: go test ./bench -run TestSearchDepthBenchmark -v
func TestSearchDepthBenchmark(t *testing.T) {
	// Early midgame: four stones, no immediate tactics.
	pos, err := board.ParsePosition(
		"x...o.........../.....x........../..........o...../................")
	if err != nil {
		t.Fatal(err)
	}

	session := engine.NewSession(32)
	deadline := time.Now().Add(time.Hour)

	fmt.Println("\n=== Search Depth Benchmark ===")
	fmt.Printf("%-7s %-10s %-12s %-15s\n", "Depth", "Move", "Nodes", "Time")
	fmt.Println("----------------------------------------------")

	for depth := 1; depth <= 8; depth++ {
		start := time.Now()
		result, ok := session.SearchDepth(pos.P1, pos.P2, pos.P1ToMove, depth, deadline)
		elapsed := time.Since(start)

		if !ok {
			t.Fatal("no legal moves in benchmark position")
		}

		fmt.Printf("%-7d (%d,%d,%d)    %-12d %-15v\n",
			depth, result.X, result.Y, result.Z, result.Nodes, elapsed)

		// Stop if taking too long
		if elapsed > 10*time.Second {
			fmt.Println("Stopping - exceeded 10s threshold")
			break
		}
	}
}

// TestSearchTacticalBenchmark measures search on a position with an open two
// through the centre core.
func TestSearchTacticalBenchmark(t *testing.T) {
	// P1 has an open two on the main space diagonal through the centre core;
	// P2's two stones share no line.
	pos, err := board.ParsePosition(
		"x..............o/.....x........../......ox......../................")
	if err != nil {
		t.Fatal(err)
	}

	session := engine.NewSession(32)
	deadline := time.Now().Add(time.Hour)

	fmt.Println("\n=== Tactical Position Benchmark ===")
	fmt.Printf("%-7s %-10s %-12s %-15s\n", "Depth", "Move", "Nodes", "Time")
	fmt.Println("----------------------------------------------")

	for depth := 1; depth <= 8; depth++ {
		start := time.Now()
		result, ok := session.SearchDepth(pos.P1, pos.P2, pos.P1ToMove, depth, deadline)
		elapsed := time.Since(start)

		if !ok {
			t.Fatal("no legal moves in benchmark position")
		}

		fmt.Printf("%-7d (%d,%d,%d)    %-12d %-15v\n",
			depth, result.X, result.Y, result.Z, result.Nodes, elapsed)

		if elapsed > 10*time.Second {
			fmt.Println("Stopping - exceeded 10s threshold")
			break
		}
	}
}

// BenchmarkNegamaxDepth6 pins down nodes-per-second for profiling runs.
func BenchmarkNegamaxDepth6(b *testing.B) {
	pos, err := board.ParsePosition(
		"x...o.........../.....x........../..........o...../................")
	if err != nil {
		b.Fatal(err)
	}
	deadline := time.Now().Add(time.Hour)

	for i := 0; i < b.N; i++ {
		session := engine.NewSession(32)
		if _, ok := session.SearchDepth(pos.P1, pos.P2, pos.P1ToMove, 6, deadline); !ok {
			b.Fatal("no legal moves")
		}
	}
}
