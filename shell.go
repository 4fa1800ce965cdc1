package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/pegsol/board"
	"github.com/domino14/pegsol/config"
	"github.com/domino14/pegsol/move"
	"github.com/domino14/pegsol/movegen"
	"github.com/domino14/pegsol/solver"
)

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func renderSolution(moves []move.Move) string {
	lines := lo.Map(moves, func(m move.Move, i int) string {
		return fmt.Sprintf("%2d. %s", i+1, m.ShortDescription())
	})
	return strings.Join(lines, "\n")
}

// runSolve searches from the solver's current position, cancelling on
// SIGINT, and leaves the board back at the starting position so that
// the solution can be stepped through.
func runSolve(sol *solver.Solver, sig chan os.Signal, w io.Writer) []move.Move {
	startPos := sol.Board().Copy()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		select {
		case <-sig:
			cancel()
		case <-done:
		}
	}()

	tstart := time.Now()
	seq, err := sol.Solve(ctx)
	close(done)
	cancel()
	elapsed := time.Since(tstart)

	sol.Board().CopyFrom(startPos)
	if err != nil {
		if err == solver.ErrNoSolution {
			showMessage(fmt.Sprintf("no solution exists from this position (%v)", elapsed), w)
		} else {
			showMessage("search interrupted: "+err.Error(), w)
		}
		return nil
	}
	showMessage(fmt.Sprintf("solved in %d moves (%v)", len(seq), elapsed), w)
	showMessage(renderSolution(seq), w)
	return seq
}

func shellLoop(cfg *config.Config, sig chan os.Signal) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mpegsol>\033[0m ",
		HistoryFile:     "/tmp/readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})

	if err != nil {
		panic(err)
	}
	defer l.Close()

	sol := solver.New()
	sol.SetThreads(cfg.Threads)
	sol.SetMemFraction(cfg.DeadSetMemFraction)

	var solution []move.Move
	var turn int

	showMessage("Welcome to pegsol, a cross-board marble solitaire solver.", l.Stderr())
	showMessage("Type `help` for a list of commands.", l.Stderr())
	showMessage(sol.Board().ToDisplayText(), l.Stderr())

readlineLoop:
	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields, err := shellquote.Split(line)
		if err != nil {
			showMessage("Error: "+err.Error(), l.Stderr())
			continue
		}

		switch fields[0] {
		case "show":
			showMessage(sol.Board().ToDisplayText(), l.Stderr())

		case "reset":
			sol.Reset()
			solution, turn = nil, 0
			showMessage(sol.Board().ToDisplayText(), l.Stderr())

		case "solve":
			solution = runSolve(sol, sig, l.Stderr())
			turn = 0

		case "n":
			if solution == nil {
				showMessage("Please find a solution first with the `solve` command", l.Stderr())
				break
			}
			if turn >= len(solution) {
				showMessage("End of solution.", l.Stderr())
				break
			}
			m := solution[turn]
			if err := movegen.Validate(sol.Board(), m); err != nil {
				showMessage("Error: "+err.Error(), l.Stderr())
				break
			}
			movegen.Apply(sol.Board(), m)
			turn++
			showMessage(fmt.Sprintf("%d. %s", turn, m.ShortDescription()), l.Stderr())
			showMessage(sol.Board().ToDisplayText(), l.Stderr())

		case "b":
			if solution == nil || turn == 0 {
				showMessage("Nothing to take back.", l.Stderr())
				break
			}
			turn--
			movegen.Unapply(sol.Board(), solution[turn])
			showMessage(sol.Board().ToDisplayText(), l.Stderr())

		case "setup":
			if len(fields) < 2 {
				showMessage("Usage: setup <7 rows of 7 cells>", l.Stderr())
				break
			}
			if err := sol.Board().SetFromPlaintext(fields[1:]); err != nil {
				showMessage("Error: "+err.Error(), l.Stderr())
				break
			}
			solution, turn = nil, 0
			showMessage(sol.Board().ToDisplayText(), l.Stderr())

		case "remove":
			if len(fields) != 3 {
				showMessage("Usage: remove <x> <y>", l.Stderr())
				break
			}
			x, errX := strconv.Atoi(fields[1])
			y, errY := strconv.Atoi(fields[2])
			if errX != nil || errY != nil {
				showMessage("Coordinates must be numbers in [0, 6]", l.Stderr())
				break
			}
			c := board.Coord{X: int8(x), Y: int8(y)}
			if !c.InBounds() || sol.Board().Get(c) != board.Full {
				showMessage("No marble there.", l.Stderr())
				break
			}
			sol.Board().Set(c, board.Open)
			solution, turn = nil, 0
			showMessage(sol.Board().ToDisplayText(), l.Stderr())

		case "threads":
			if len(fields) != 2 {
				showMessage("Usage: threads <n>", l.Stderr())
				break
			}
			n, err := strconv.Atoi(fields[1])
			if err != nil {
				showMessage("Error: "+err.Error(), l.Stderr())
				break
			}
			sol.SetThreads(n)
			showMessage(fmt.Sprintf("threads set to %d", n), l.Stderr())

		case "bye", "exit":
			break readlineLoop

		case "help":
			usage(l.Stderr())

		default:
			log.Debug().Msgf("you said: %v", strconv.Quote(line))
			showMessage("Unknown command; type `help`.", l.Stderr())
		}
	}
	log.Debug().Msg("Exiting readline loop...")
}
