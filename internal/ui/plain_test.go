package ui

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"ctchen222/tictactoe-solo/internal/bot"
	"ctchen222/tictactoe-solo/internal/game"
	"ctchen222/tictactoe-solo/internal/room"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlainGame(t *testing.T, input string, opts ...room.Option) (*Plain, *game.Board, *bytes.Buffer) {
	t.Helper()
	board := game.NewBoard()
	out := &bytes.Buffer{}
	p := NewPlain(board, strings.NewReader(input), out, termenv.WithProfile(termenv.Ascii))
	opts = append([]room.Option{room.WithDelay(0), room.WithListener(p.HandleEvent)}, opts...)
	r := room.NewRoom(board, bot.NewRandomOpponent(7), opts...)
	t.Cleanup(r.Close)
	p.Bind(r)
	return p, board, out
}

func TestPlain_QuitImmediately(t *testing.T) {
	p, _, out := newPlainGame(t, "q\n")

	require.NoError(t, p.Run(context.Background()))

	assert.Contains(t, out.String(), " 1 │ 2 │ 3 ")
	assert.Contains(t, out.String(), "Your move (1-9, q quits)")
}

func TestPlain_InvalidInputGetsHint(t *testing.T) {
	p, board, out := newPlainGame(t, "abc\n0\n10\nq\n")

	require.NoError(t, p.Run(context.Background()))

	assert.Equal(t, 3, strings.Count(out.String(), "Enter a number from 1 to 9."))
	assert.Len(t, board.EmptyCells(), game.CellCount)
}

func TestPlain_MoveAndReply(t *testing.T) {
	p, board, out := newPlainGame(t, "5\nq\n")

	require.NoError(t, p.Run(context.Background()))

	assert.Equal(t, game.X, board.Cell(4))
	assert.Len(t, board.EmptyCells(), game.CellCount-2)
	assert.Contains(t, out.String(), " X ")
	assert.Contains(t, out.String(), " 0 ")
}

func TestPlain_OccupiedCell(t *testing.T) {
	p, _, out := newPlainGame(t, "5\n5\nq\n")

	require.NoError(t, p.Run(context.Background()))

	assert.Contains(t, out.String(), "Cell 5 is taken.")
}

func TestPlain_FullGameThenReset(t *testing.T) {
	// Playing every cell in order always finishes the round. The line after
	// game over is taken as the Enter that starts a new round.
	p, _, out := newPlainGame(t, "1\n2\n3\n4\n5\n6\n7\n8\n9\n\nq\n")

	require.NoError(t, p.Run(context.Background()))

	text := out.String()
	require.Contains(t, text, "Game Over: ")
	assert.True(t, containsAny(text, "You Win!", "AI Wins!", "Parity"))

	idx := strings.Index(text, "Press Enter to play again.")
	require.GreaterOrEqual(t, idx, 0)
	assert.Contains(t, text[idx:], " 1 │ 2 │ 3 \n───┼───┼───\n 4 │ 5 │ 6 ", "an empty board is drawn after the reset")
}

func TestPlain_DelayedOpponent(t *testing.T) {
	p, board, _ := newPlainGame(t, "1\nq\n", room.WithDelay(10*time.Millisecond))

	require.NoError(t, p.Run(context.Background()))

	assert.Len(t, board.EmptyCells(), game.CellCount-2)
}

func TestPlain_ContextCancelled(t *testing.T) {
	board := game.NewBoard()
	p := NewPlain(board, blockingReader{}, &bytes.Buffer{}, termenv.WithProfile(termenv.Ascii))
	p.Bind(room.NewRoom(board, bot.NewRandomOpponent(1), room.WithDelay(0)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestPlain_Unbound(t *testing.T) {
	p := NewPlain(game.NewBoard(), strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorIs(t, p.Run(context.Background()), ErrUnbound)
}

func TestParseCell(t *testing.T) {
	for _, tt := range []struct {
		in    string
		index int
		ok    bool
	}{
		{"1", 0, true},
		{"9", 8, true},
		{"0", 0, false},
		{"10", 0, false},
		{"-3", 0, false},
		{"x", 0, false},
		{"", 0, false},
	} {
		index, err := parseCell(tt.in)
		if !tt.ok {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.index, index)
	}
}

type blockingReader struct{}

func (blockingReader) Read([]byte) (int, error) {
	select {}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
