// Package ui renders the board in the terminal and forwards the player's moves to a room.
package ui

import (
	"context"

	"ctchen222/tictactoe-solo/internal/game"
)

// GameOverTitle heads the end-of-game dialog.
const GameOverTitle = "Game Over"

// Game is the part of a room the presentation layer drives.
type Game interface {
	Play(ctx context.Context, index int) error
	Reset(ctx context.Context)
	Pending() bool
}

// Outcome returns the dialog text for a finished board, or "" while the game is on.
func Outcome(s game.Status) string {
	if !s.Over {
		return ""
	}
	switch s.Winner {
	case game.X:
		return "You Win!"
	case game.O:
		return "AI Wins!"
	}
	return "Parity"
}

// cellLabel is what a cell shows on screen. O is drawn as a zero.
func cellLabel(c game.CellStatus) string {
	switch c {
	case game.X:
		return "X"
	case game.O:
		return "0"
	}
	return " "
}
