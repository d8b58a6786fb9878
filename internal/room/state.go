package room

import (
	"context"
	"log/slog"

	"ctchen222/tictactoe-solo/internal/events"
	"ctchen222/tictactoe-solo/internal/game"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Reset cancels any pending opponent move, clears the board and starts a new round.
func (r *Room) Reset(ctx context.Context) {
	ctx, span := tracer.Start(ctx, "room.Reset", trace.WithAttributes(
		attribute.String("room.id", r.ID),
	))
	defer span.End()

	r.mu.Lock()
	r.cancelPendingLocked()
	r.board.Reset()
	old := r.roundID
	r.roundID = uuid.NewString()
	span.SetAttributes(attribute.String("round.id", r.roundID))
	slog.InfoContext(ctx, "room reset for a new round", "room.id", r.ID, "round.previous", old, "round.id", r.roundID)

	r.emitUnlock([]events.Event{r.event(events.GameReset, -1, game.Empty)})
}

// Close stops any pending opponent move. Further moves return ErrClosed.
func (r *Room) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancelPendingLocked()
	r.closed = true
}

func (r *Room) cancelPendingLocked() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	r.pending = false
}
