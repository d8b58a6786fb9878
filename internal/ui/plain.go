package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ctchen222/tictactoe-solo/internal/events"
	"ctchen222/tictactoe-solo/internal/game"
	"ctchen222/tictactoe-solo/internal/room"
	"ctchen222/tictactoe-solo/internal/validator"

	"github.com/muesli/termenv"
)

// Plain is the line-mode front end: cell numbers in, a colored board out.
type Plain struct {
	board  *game.Board
	game   Game
	in     io.Reader
	out    *termenv.Output
	events chan events.Event
}

// NewPlain reads moves from in and writes the board to out.
func NewPlain(board *game.Board, in io.Reader, out io.Writer, opts ...termenv.OutputOption) *Plain {
	return &Plain{
		board:  board,
		in:     in,
		out:    termenv.NewOutput(out, opts...),
		events: make(chan events.Event, 32),
	}
}

// Bind attaches the room moves are played into.
func (p *Plain) Bind(g Game) {
	p.game = g
}

// HandleEvent is the room listener.
func (p *Plain) HandleEvent(ev events.Event) {
	p.events <- ev
}

// Run plays rounds until the input ends, the user types q or ctx is cancelled.
func (p *Plain) Run(ctx context.Context) error {
	if p.game == nil {
		return ErrUnbound
	}

	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(p.in)
		for sc.Scan() {
			select {
			case lines <- strings.TrimSpace(sc.Text()):
			case <-ctx.Done():
				return
			}
		}
	}()

	p.render()
	for {
		p.printf("Your move (1-9, q quits): ")
		line, ok := next(ctx, lines)
		if !ok || line == "q" {
			return nil
		}

		index, err := parseCell(line)
		if err != nil {
			p.printf("%s\n", p.out.String("Enter a number from 1 to 9.").Faint())
			continue
		}
		if err := p.game.Play(ctx, index); err != nil {
			if errors.Is(err, room.ErrCellOccupied) {
				p.printf("%s\n", p.out.String(fmt.Sprintf("Cell %d is taken.", index+1)).Faint())
			}
			continue
		}

		status, ok := p.awaitTurn(ctx)
		if !ok {
			return nil
		}
		p.render()
		if !status.Over {
			continue
		}

		p.printf("%s: %s\n", GameOverTitle, p.out.String(Outcome(status)).Bold())
		p.printf("Press Enter to play again.")
		line, ok = next(ctx, lines)
		if !ok || line == "q" {
			return nil
		}
		p.game.Reset(ctx)
		if !p.awaitReset(ctx) {
			return nil
		}
		p.printf("\n")
		p.render()
	}
}

// awaitTurn consumes events until the opponent has replied or the game ended.
func (p *Plain) awaitTurn(ctx context.Context) (game.Status, bool) {
	for {
		select {
		case <-ctx.Done():
			return game.Status{}, false
		case ev := <-p.events:
			switch {
			case ev.Type == events.GameOver:
				return game.Status{Winner: ev.Winner, Over: true}, true
			case ev.Type == events.MoveApplied && ev.Mark == room.OpponentMark:
				// A winning reply is followed by game_over in the same batch.
				if s := p.board.Status(); !s.Over {
					return s, true
				}
			}
		}
	}
}

func (p *Plain) awaitReset(ctx context.Context) bool {
	for {
		select {
		case <-ctx.Done():
			return false
		case ev := <-p.events:
			if ev.Type == events.GameReset {
				return true
			}
		}
	}
}

func (p *Plain) render() {
	grid := game.Render(p.board.Cells(), func(i int, c game.CellStatus) string {
		return " " + p.styleCell(i, c) + " "
	}, "│", "───┼───┼───")
	p.printf("\n%s\n\n", grid)
}

func (p *Plain) styleCell(index int, c game.CellStatus) string {
	switch c {
	case game.X:
		return p.out.String(cellLabel(c)).Foreground(p.out.Color("2")).Bold().String()
	case game.O:
		return p.out.String(cellLabel(c)).Foreground(p.out.Color("1")).Bold().String()
	}
	return p.out.String(strconv.Itoa(index + 1)).Faint().String()
}

func (p *Plain) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func next(ctx context.Context, lines <-chan string) (string, bool) {
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-lines:
		return line, ok
	}
}

// parseCell turns a 1-based cell number into a board index.
func parseCell(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if err := validator.GetValidator().Var(n, "min=1,max=9"); err != nil {
		return 0, err
	}
	return n - 1, nil
}
