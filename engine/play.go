package engine

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"qubic/board"
	"qubic/config"
	"qubic/storage"

	"github.com/fatih/color"
)

// Play starts an interactive game against the engine in the terminal.
func Play(cfg config.Config) {
	session := NewSession(cfg.HashMB)
	session.SetMaxDepth(cfg.MaxDepth)

	if cfg.LogFile != "" {
		logger, err := NewLogger(cfg.LogFile)
		if err != nil {
			fmt.Printf("Warning: Could not create logger: %v\n", err)
		} else {
			defer logger.Close()
			session.SetDebugLogger(logger)
			logger.LogGameStart(fmt.Sprintf("hash=%dMB depth=%d time=%dms", cfg.HashMB, cfg.MaxDepth, cfg.MoveTimeMs))
			fmt.Printf("Logging moves to %s\n", cfg.LogFile)
		}
	}

	store, err := storage.OpenDefault()
	if err != nil {
		fmt.Printf("Warning: Could not open statistics store: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	prefs := storage.DefaultPreferences()
	if store != nil {
		if loaded, err := store.LoadPreferences(); err == nil {
			prefs = loaded
		}
	}

	moveTime := time.Duration(cfg.MoveTimeMs) * time.Millisecond

	fmt.Println("=== Qubic: four in a row on the 4x4x4 cube ===")
	fmt.Println("Enter moves as 'x y z' with each coordinate 0..3")
	fmt.Println("Commands: 'quit', 'board', 'stats'")
	fmt.Println()

	pos := board.NewPosition()
	humanIsP1 := prefs.PlayerIsFirst
	reader := bufio.NewReader(os.Stdin)
	start := time.Now()

	render := func() {
		fmt.Println(renderPosition(pos, cfg.Colors))
	}

	finish := func(humanWon, draw bool) {
		switch {
		case draw:
			fmt.Println("Board full: draw.")
		case humanWon:
			fmt.Println("You made four in a row. You win!")
		default:
			fmt.Println("The engine made four in a row. You lose.")
		}
		if store != nil {
			if err := store.RecordGame(storage.GameResult{Won: humanWon, Draw: draw, Duration: time.Since(start)}); err != nil {
				fmt.Printf("Warning: Could not record game: %v\n", err)
			}
		}
	}

	render()
	for {
		humanTurn := pos.P1ToMove == humanIsP1

		if humanTurn {
			fmt.Print("your move> ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return
			}
			input := strings.TrimSpace(line)

			switch input {
			case "quit":
				return
			case "board":
				render()
				continue
			case "stats":
				printStats(store)
				continue
			}

			cell, err := parseMove(input)
			if err != nil {
				fmt.Println(err)
				continue
			}
			if pos.Occupied().IsBitSet(cell) {
				fmt.Println("That cell is taken.")
				continue
			}
			pos.Apply(cell)
		} else {
			result, ok := session.SearchWithTime(pos.P1, pos.P2, !humanIsP1, moveTime, func(depth, score int) {
				fmt.Printf("  depth %d score %d\n", depth, score)
			})
			if !ok {
				finish(false, true)
				return
			}
			if result.TimeAbort {
				fmt.Println("Engine ran out of time before depth 1; try a larger move_time_ms.")
				return
			}
			fmt.Printf("engine plays %s\n", result)
			pos.Apply(result.Cell())
		}

		render()

		humanMask, engineMask := pos.P1, pos.P2
		if !humanIsP1 {
			humanMask, engineMask = pos.P2, pos.P1
		}
		switch {
		case board.CheckWin(humanMask):
			finish(true, false)
			return
		case board.CheckWin(engineMask):
			finish(false, false)
			return
		case pos.Empties() == 0:
			finish(false, true)
			return
		}
	}
}

// parseMove reads "x y z" (also accepts commas) into a cell index.
func parseMove(input string) (int, error) {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ' ' || r == ','
	})
	if len(fields) != 3 {
		return 0, fmt.Errorf("expected three coordinates, e.g. '1 2 0'")
	}

	coords := [3]int{}
	for i, f := range fields {
		var v int
		if _, err := fmt.Sscanf(f, "%d", &v); err != nil || v < 0 || v > 3 {
			return 0, fmt.Errorf("coordinate %q must be 0..3", f)
		}
		coords[i] = v
	}
	return board.CellIndex(coords[0], coords[1], coords[2]), nil
}

// renderPosition draws the four layers, optionally colouring the marks.
func renderPosition(pos board.Position, colors bool) string {
	p1Mark, p2Mark := "x", "o"
	if colors {
		p1Mark = color.New(color.FgHiRed).Sprint("x")
		p2Mark = color.New(color.FgHiBlue).Sprint("o")
	}

	var sb strings.Builder
	for y := 0; y < 4; y++ {
		fmt.Fprintf(&sb, "  y=%d      ", y)
	}
	sb.WriteString("\n")
	for z := 3; z >= 0; z-- {
		for y := 0; y < 4; y++ {
			sb.WriteString("  ")
			for x := 0; x < 4; x++ {
				index := board.CellIndex(x, y, z)
				switch {
				case pos.P1.IsBitSet(index):
					sb.WriteString(p1Mark + " ")
				case pos.P2.IsBitSet(index):
					sb.WriteString(p2Mark + " ")
				default:
					sb.WriteString(". ")
				}
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func printStats(store *storage.Storage) {
	if store == nil {
		fmt.Println("Statistics store unavailable.")
		return
	}
	stats, err := store.LoadStats()
	if err != nil {
		fmt.Printf("Could not load stats: %v\n", err)
		return
	}
	fmt.Printf("Games: %d  W/L/D: %d/%d/%d  Win rate: %.1f%%  Best streak: %d\n",
		stats.GamesPlayed, stats.Wins, stats.Losses, stats.Draws, stats.WinRate(), stats.LongestWinStrk)
}
