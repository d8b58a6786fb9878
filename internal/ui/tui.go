package ui

import (
	"context"
	"errors"
	"log/slog"

	"ctchen222/tictactoe-solo/internal/events"
	"ctchen222/tictactoe-solo/internal/game"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	boardPage    = "board"
	gameOverPage = "gameover"
)

// ErrUnbound is returned by Run when no game was bound.
var ErrUnbound = errors.New("ui: no game bound")

// TUI is the full-screen front end: a 3x3 grid of buttons, one per cell.
type TUI struct {
	app     *tview.Application
	pages   *tview.Pages
	hint    *tview.TextView
	buttons [game.CellCount]*tview.Button
	board   *game.Board
	game    Game
	ctx     context.Context
	cancels []func()
	over    bool
}

// NewTUI builds the widgets for board. Bind must be called before Run.
func NewTUI(board *game.Board) *TUI {
	t := &TUI{
		app:   tview.NewApplication(),
		pages: tview.NewPages(),
		hint:  tview.NewTextView().SetTextAlign(tview.AlignCenter),
		board: board,
		ctx:   context.Background(),
	}

	grid := tview.NewGrid().
		SetRows(3, 3, 3).
		SetColumns(7, 7, 7).
		SetGap(0, 0)
	for i := range t.buttons {
		btn := tview.NewButton(cellLabel(board.Cell(i)))
		btn.SetSelectedFunc(func() { t.play(i) })
		t.buttons[i] = btn
		grid.AddItem(btn, i/3, i%3, 1, 1, 0, 0, i == 0)

		// Watch callbacks can fire while the event loop is busy, so the redraw is queued
		// from a fresh goroutine and reads the cell at draw time.
		t.cancels = append(t.cancels, board.Watch(i, func(index int, _ game.CellStatus) {
			go t.app.QueueUpdateDraw(func() {
				t.buttons[index].SetLabel(cellLabel(t.board.Cell(index)))
			})
		}))
	}

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().
			AddItem(nil, 0, 1, false).
			AddItem(grid, 21, 0, true).
			AddItem(nil, 0, 1, false), 9, 0, true).
		AddItem(t.hint, 2, 0, false).
		AddItem(nil, 0, 1, false)
	t.pages.AddPage(boardPage, layout, true, true)

	t.app.SetInputCapture(t.handleKey)
	t.refreshHint()
	return t
}

// Bind attaches the room the buttons play into.
func (t *TUI) Bind(g Game) {
	t.game = g
}

// HandleEvent is the room listener. It only queues UI work.
func (t *TUI) HandleEvent(ev events.Event) {
	switch ev.Type {
	case events.MoveApplied, events.GameReset:
		// Queued updates may run in any order, so the hint is read from the room when drawn.
		go t.app.QueueUpdateDraw(t.refreshHint)
	case events.GameOver:
		text := Outcome(game.Status{Winner: ev.Winner, Over: true})
		go t.app.QueueUpdateDraw(func() { t.showGameOver(text) })
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	if t.game == nil {
		return ErrUnbound
	}
	t.ctx = ctx
	defer func() {
		for _, cancel := range t.cancels {
			cancel()
		}
	}()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			t.app.Stop()
		case <-done:
		}
	}()

	return t.app.SetRoot(t.pages, true).EnableMouse(true).Run()
}

func (t *TUI) play(index int) {
	if t.over {
		return
	}
	if err := t.game.Play(t.ctx, index); err != nil {
		slog.DebugContext(t.ctx, "tap ignored", "move.index", index, "reason", err)
	}
}

func (t *TUI) showGameOver(text string) {
	t.over = true
	modal := tview.NewModal().
		SetText(GameOverTitle + "\n\n" + text).
		AddButtons([]string{"Ok"}).
		SetDoneFunc(func(int, string) {
			t.pages.RemovePage(gameOverPage)
			t.over = false
			t.game.Reset(t.ctx)
			t.refreshHint()
			t.app.SetFocus(t.buttons[0])
		})
	t.pages.AddPage(gameOverPage, modal, false, true)
	t.app.SetFocus(modal)
}

func (t *TUI) refreshHint() {
	pending := t.game != nil && t.game.Pending()
	t.hint.SetText(hintText(pending, t.board.Status()))
}

// hintText is the status line under the grid.
func hintText(pending bool, s game.Status) string {
	switch {
	case s.Over:
		return GameOverTitle + "."
	case pending:
		return "AI is thinking..."
	}
	return "Your move (X). Keys 1-9 or arrows + Enter, q quits."
}

func (t *TUI) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	if t.over {
		return ev
	}
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r == 'q' {
			t.app.Stop()
			return nil
		}
		if index, ok := keyToIndex(r); ok {
			t.app.SetFocus(t.buttons[index])
			t.play(index)
			return nil
		}
		return ev
	}

	focused := t.focusedCell()
	if focused < 0 {
		return ev
	}
	if next, ok := moveFocus(focused, ev.Key()); ok {
		t.app.SetFocus(t.buttons[next])
		return nil
	}
	return ev
}

func (t *TUI) focusedCell() int {
	for i, b := range t.buttons {
		if b.HasFocus() {
			return i
		}
	}
	return -1
}

// keyToIndex maps '1'..'9' to cells 0..8, row-major from the top left.
func keyToIndex(r rune) (int, bool) {
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '1'), true
}

// moveFocus returns the cell an arrow key moves to from index, clamped to the grid.
func moveFocus(index int, key tcell.Key) (int, bool) {
	row, col := index/3, index%3
	switch key {
	case tcell.KeyUp:
		row--
	case tcell.KeyDown:
		row++
	case tcell.KeyLeft:
		col--
	case tcell.KeyRight:
		col++
	default:
		return 0, false
	}
	if row < 0 || row > 2 || col < 0 || col > 2 {
		return index, true
	}
	return row*3 + col, true
}
