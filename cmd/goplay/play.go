package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dodgebc/weiqi-rules/game"
	"github.com/dodgebc/weiqi-rules/weiqi"
)

const help = `commands:
  c,r      place a stone at column c, row r (0-18)
  pd       place a stone at an SGF point
  pass     pass, two passes in a row end the game
  moves    list the moves played
  quit     stop playing
`

// boardPrinter draws every state it is sent
type boardPrinter struct {
	w io.Writer
}

func (b boardPrinter) Notify(state weiqi.Serialized) {
	s, err := weiqi.FromSerializable(state)
	if err != nil {
		fmt.Fprintf(b.w, "unreadable state: %s\n", err)
		return
	}
	fmt.Fprint(b.w, s.String())
}

func parseInput(line string) (weiqi.Position, error) {
	if strings.Contains(line, ",") {
		return weiqi.ParsePosition(line)
	}
	return weiqi.ParseSGFPoint(line)
}

// play reads commands from in until quit, the end of input or the end of the game
func play(g *game.Game, in io.Reader, out io.Writer) error {
	g.Subscribe(boardPrinter{w: out})

	scanner := bufio.NewScanner(in)
	for !g.State().GameOver() {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))

		var r weiqi.MoveResult
		var err error
		switch line {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "help", "?":
			fmt.Fprint(out, help)
			continue
		case "moves":
			for i, m := range g.Moves() {
				fmt.Fprintf(out, "%d. %s\n", i+1, m)
			}
			continue
		case "pass":
			r, err = g.Pass()
		default:
			var p weiqi.Position
			if p, err = parseInput(line); err == nil {
				r, err = g.Select(p)
			}
		}

		switch {
		case errors.Is(err, weiqi.ErrOutsideBoard):
			fmt.Fprintf(out, "outside the board: %s\n", line)
		case err != nil:
			fmt.Fprintf(out, "%s, type help for commands\n", err)
		case !r.Legal:
			fmt.Fprintf(out, "illegal: %s\n", r.Reason)
		case len(r.Captured) > 0:
			fmt.Fprintf(out, "captured %d\n", len(r.Captured))
		}
	}
	return scanner.Err()
}
