// Command impasse plays a game of Impasse: the computer against a human
// at the terminal, using iterative-deepening negamax with a
// transposition table for its own moves.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/arborian-games/impasse/internal/board"
	"github.com/arborian-games/impasse/internal/config"
	"github.com/arborian-games/impasse/internal/gamelog"
	"github.com/arborian-games/impasse/internal/impasse"
	"github.com/arborian-games/impasse/internal/search"
	"github.com/arborian-games/impasse/internal/version"
)

// hashSeed matches the reference implementation's fixed seed so that a
// run's search is reproducible.
const hashSeed = 420

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		printHelp()
		os.Exit(1)
	}
	if args[0] == "--version" || args[0] == "-v" {
		printVersion()
		return
	}

	cfg := parseArgs(config.LoadConfig(), args)
	run(cfg)
}

func printVersion() {
	fmt.Printf("impasse %s\n", version.Version)
	fmt.Printf("Build date: %s\n", version.BuildDate)
	fmt.Printf("Git commit: %s\n", version.GitCommit)
}

func parseArgs(cfg config.Config, args []string) config.Config {
	if len(args) >= 1 {
		if v, err := strconv.ParseBool(args[0]); err == nil {
			cfg.ComputerStarts = v
		} else {
			cfg.ComputerStarts = true
		}
	}
	if len(args) >= 2 {
		if v, err := strconv.ParseUint(args[1], 10, 64); err == nil {
			cfg.MoveTime = time.Duration(v) * time.Millisecond
		}
	}
	if len(args) >= 3 {
		if v, err := strconv.ParseBool(args[2]); err == nil {
			cfg.SaveGameLog = v
		} else {
			cfg.SaveGameLog = true
		}
	}
	return cfg
}

func printHelp() {
	fmt.Println("This is the help menu of the game")
	fmt.Println("=================================")
	fmt.Println("The arguments are structured as following")
	fmt.Println("impasse <starting:bool> <set_time_ms:uint> <save_game:bool>")
	fmt.Println("impasse --version")
	fmt.Println()
	fmt.Println("Arguments:")
	fmt.Println("\tstarting   -> true: the computer plays MAX and moves first; false: the human does")
	fmt.Println("\tset_time_ms -> per-move search budget in milliseconds (default 200)")
	fmt.Println("\tsave_game  -> whether to write Game.txt at the end (default true)")
	fmt.Println()
	fmt.Println("Default Values:")
	fmt.Println("\tstarting = true")
	fmt.Println("\tset_time_ms = 200")
	fmt.Println("\tsave_game = true")
}

func run(cfg config.Config) {
	hashes := impasse.NewHashField(hashSeed)
	current := impasse.New(hashes)
	table := search.NewTable[impasse.Move]()
	color := search.MAX

	var history []gamelog.Entry[impasse.Move]
	var colorTimeMs, otherTimeMs int64
	var moveCount int

	reader := bufio.NewReader(os.Stdin)
	totalStart := time.Now()

	for !current.IsTerminal() {
		if color == search.MAX {
			fmt.Println("O is thinking")
		} else {
			fmt.Println("X is thinking")
		}
		moveCount++
		fmt.Print(board.Render(current, board.Config{UseColors: cfg.UseColors, ShowCoords: cfg.ShowCoords}))

		computerToMove := (color == search.MAX) == cfg.ComputerStarts

		moveStart := time.Now()
		var m impasse.Move
		if computerToMove {
			m = computerMove(current, cfg.MoveTime, color, table)
		} else {
			m = humanMove(reader, current, color)
		}
		elapsed := time.Since(moveStart)

		history = append(history, gamelog.Entry[impasse.Move]{Move: m, Color: color})
		current = current.Apply(m)
		fmt.Println(m)

		if color == search.MAX {
			colorTimeMs += elapsed.Milliseconds()
		} else {
			otherTimeMs += elapsed.Milliseconds()
		}
		printElapsed(elapsed)

		color = color.Flip()
	}

	totalElapsed := time.Since(totalStart)

	if color == search.MAX {
		fmt.Println("X wins")
	} else {
		fmt.Println("O wins")
	}
	fmt.Printf("stopped with %d turns\n", moveCount)
	fmt.Printf("total time played: %ds\n", int(totalElapsed.Seconds()))
	fmt.Printf("'O' time: %ds\n", colorTimeMs/1000)
	fmt.Printf("'X' time: %ds\n", otherTimeMs/1000)

	if cfg.SaveGameLog {
		if err := gamelog.WriteFile("Game.txt", history); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func printElapsed(d time.Duration) {
	switch {
	case d > 2*time.Second:
		fmt.Printf("time: %ds\n", int(d.Seconds()))
	case d > 2*time.Millisecond:
		fmt.Printf("time: %dms\n", d.Milliseconds())
	default:
		fmt.Printf("time: %dus\n", d.Microseconds())
	}
	fmt.Println()
}

// computerMove runs the live iterative-deepening agent: negamax with a
// transposition table, budgeted to cfg's move time, tracking the best
// move found across completed depths.
func computerMove(state impasse.Board, maxTime time.Duration, color search.Color, table *search.Table[impasse.Move]) impasse.Move {
	return search.FindBestMoveTTTID(state, maxTime, color, table, search.NegaWithTable[impasse.Board, impasse.Move])
}

// humanMove prints the legal moves with a 1-based index and reads the
// chosen index from stdin. Newline handling tolerates both \n and \r\n.
func humanMove(reader *bufio.Reader, state impasse.Board, color search.Color) impasse.Move {
	children := state.Children(color)
	for i, m := range children {
		fmt.Printf("%sindex:%d\n\n", m, i+1)
	}

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Fprintln(os.Stderr, "failed to read move:", err)
			os.Exit(1)
		}
		line = strings.TrimRight(line, "\r\n")

		index, err := strconv.Atoi(line)
		if err != nil || index < 1 || index > len(children) {
			fmt.Println("enter a number between 1 and", len(children))
			continue
		}
		return children[index-1]
	}
}
