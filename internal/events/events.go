package events

import "ctchen222/tictactoe-solo/internal/game"

// Type names a room lifecycle event.
type Type string

const (
	MoveApplied Type = "move_applied"
	GameOver    Type = "game_over"
	GameReset   Type = "game_reset"
)

// Event is emitted by a room after its state changed.
type Event struct {
	Type    Type            `json:"event"`
	RoomID  string          `json:"room_id"`
	RoundID string          `json:"round_id"`
	Index   int             `json:"index"`
	Mark    game.CellStatus `json:"mark,omitempty"`
	Winner  game.CellStatus `json:"winner,omitempty"`
}

// Listener receives room events. It is called outside the room lock.
type Listener func(Event)
