package room

import (
	"context"

	"ctchen222/tictactoe-solo/internal/events"
	"ctchen222/tictactoe-solo/internal/game"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Board returns the room's board.
func (r *Room) Board() *game.Board {
	return r.board
}

// Status returns the current board status.
func (r *Room) Status() game.Status {
	return r.board.Status()
}

// RoundID identifies the current game. It changes on every Reset.
func (r *Room) RoundID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.roundID
}

// Pending reports whether an opponent move is scheduled.
func (r *Room) Pending() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pending
}

func (r *Room) event(t events.Type, index int, mark game.CellStatus) events.Event {
	return events.Event{
		Type:    t,
		RoomID:  r.ID,
		RoundID: r.roundID,
		Index:   index,
		Mark:    mark,
	}
}

// emitUnlock releases r.mu and delivers evs to every listener. emitMu is taken
// before r.mu is released so events reach listeners in state order.
func (r *Room) emitUnlock(evs []events.Event) {
	r.emitMu.Lock()
	r.mu.Unlock()
	defer r.emitMu.Unlock()

	for _, ev := range evs {
		for _, l := range r.listeners {
			l(ev)
		}
	}
}

func (r *Room) countMove(ctx context.Context, mark game.CellStatus, accepted bool) {
	if r.moves == nil {
		return
	}
	r.moves.Add(ctx, 1, metricAttrs(
		attribute.String("player", mark.String()),
		attribute.Bool("accepted", accepted),
	))
}

func metricAttrs(kv ...attribute.KeyValue) metric.AddOption {
	return metric.WithAttributes(kv...)
}

func outcomeLabel(s game.Status) string {
	switch s.Winner {
	case game.X:
		return "x"
	case game.O:
		return "o"
	}
	return "draw"
}
