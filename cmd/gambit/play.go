package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/seekerror/logw"

	"github.com/waxwing/gambit/pkg/engine"
)

// runPlay implements an interactive console loop: read a line, treat it as
// a command or, failing that, as a move; print the board after every
// change. It is a plain synchronous loop -- there is no UCI/console
// protocol negotiation in scope here, only one human at a terminal.
func runPlay(ctx context.Context, cfg fileConfig, args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	depth := fs.Int("depth", cfg.Search.Depth, "Search depth limit")
	weights := fs.String("weights", cfg.Search.WeightsPath, "Path to a trained best_params.txt (optional)")
	fs.Parse(args)

	if *depth == 0 {
		*depth = 4
	}
	cfg.Search.WeightsPath = *weights

	e := engine.New(ctx, engine.Options{Depth: *depth, Weights: weightsFromConfig(ctx, cfg)})
	fmt.Println(e.Name())
	printBoard(e)

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)

		if len(fields) == 0 {
			fmt.Print("> ")
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "quit", "exit", "q":
			return

		case "print", "p":
			printBoard(e)

		case "reset", "r":
			pos := fields[1:]
			if len(pos) == 0 {
				e = engine.New(ctx, engine.Options{Depth: *depth, Weights: weightsFromConfig(ctx, cfg)})
			} else if err := e.Reset(ctx, strings.Join(pos, " ")); err != nil {
				fmt.Println("invalid position:", err)
			}
			printBoard(e)

		case "go", "g":
			v, err := e.Play(ctx)
			if err != nil {
				fmt.Println("no legal move:", err)
				break
			}
			fmt.Println("played:", v)
			printBoard(e)

		case "eval", "e":
			fmt.Println("evaluation:", e.Evaluate())

		default:
			if err := e.Move(ctx, fields[0]); err != nil {
				fmt.Println("invalid move:", err)
			} else {
				printBoard(e)
			}
		}

		fmt.Print("> ")
	}

	logw.Infof(ctx, "Input stream closed")
}

func printBoard(e *engine.Engine) {
	gs := e.State()
	fmt.Println()
	fmt.Println(&gs.Position)
	fmt.Printf("turn: %v  halfmove: %v  ply: %v\n\n", gs.SideToMove, gs.HalfmoveClock, gs.PlyCount)
}
