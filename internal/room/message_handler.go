package room

import (
	"context"
	"log/slog"
	"time"

	"ctchen222/tictactoe-solo/internal/events"
	"ctchen222/tictactoe-solo/internal/game"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Play applies the human's move at index and schedules the opponent's reply.
// Rejected moves leave the board untouched.
func (r *Room) Play(ctx context.Context, index int) error {
	ctx, span := tracer.Start(ctx, "room.Play", trace.WithAttributes(
		attribute.String("room.id", r.ID),
		attribute.Int("move.index", index),
	))
	defer span.End()

	r.mu.Lock()
	if err := r.checkPlayableLocked(); err != nil {
		r.mu.Unlock()
		r.rejectMove(ctx, span, index, err)
		return err
	}
	if !r.board.ApplyMove(index, HumanMark) {
		r.mu.Unlock()
		r.rejectMove(ctx, span, index, ErrCellOccupied)
		return ErrCellOccupied
	}
	span.SetAttributes(attribute.Bool("move.valid", true))
	r.countMove(ctx, HumanMark, true)

	round := r.roundID
	evs := []events.Event{r.event(events.MoveApplied, index, HumanMark)}
	status := r.board.Status()
	if status.Over {
		evs = append(evs, r.finishLocked(ctx, status))
		r.emitUnlock(evs)
		return nil
	}

	r.pending = true
	if r.delay > 0 {
		// Detached from ctx cancellation, the move still belongs to this trace.
		bg := context.WithoutCancel(ctx)
		r.timer = time.AfterFunc(r.delay, func() {
			r.opponentMove(bg, round)
		})
		r.emitUnlock(evs)
		return nil
	}

	r.emitUnlock(evs)
	r.opponentMove(ctx, round)
	return nil
}

// opponentMove is the scheduled task. It does nothing if the round it was
// scheduled for has been reset or the board is already finished.
func (r *Room) opponentMove(ctx context.Context, round string) {
	ctx, span := tracer.Start(ctx, "room.opponentMove", trace.WithAttributes(
		attribute.String("room.id", r.ID),
		attribute.String("round.id", round),
	))
	defer span.End()

	r.mu.Lock()
	if r.closed || round != r.roundID {
		r.mu.Unlock()
		slog.DebugContext(ctx, "stale opponent move dropped", "room.id", r.ID, "round.id", round)
		span.SetAttributes(attribute.Bool("move.stale", true))
		return
	}
	r.pending = false
	r.timer = nil

	if r.board.Status().Over {
		r.mu.Unlock()
		slog.WarnContext(ctx, "opponent move fired on a finished board", "room.id", r.ID, "round.id", round)
		return
	}

	var evs []events.Event
	index, ok := r.opponent.MakeMove(ctx, r.board, OpponentMark)
	if ok {
		span.SetAttributes(attribute.Int("move.index", index))
		r.countMove(ctx, OpponentMark, true)
		evs = append(evs, r.event(events.MoveApplied, index, OpponentMark))
	} else {
		slog.WarnContext(ctx, "opponent found no move", "room.id", r.ID, "round.id", round)
		span.SetStatus(codes.Error, "Opponent found no move")
	}

	if status := r.board.Status(); status.Over {
		evs = append(evs, r.finishLocked(ctx, status))
	}
	r.emitUnlock(evs)
}

func (r *Room) checkPlayableLocked() error {
	switch {
	case r.closed:
		return ErrClosed
	case r.board.Status().Over:
		return ErrGameOver
	case r.pending:
		return ErrNotYourTurn
	}
	return nil
}

func (r *Room) rejectMove(ctx context.Context, span trace.Span, index int, err error) {
	slog.DebugContext(ctx, "move rejected", "room.id", r.ID, "move.index", index, "reason", err)
	span.SetAttributes(attribute.Bool("move.valid", false))
	span.RecordError(err)
	span.SetStatus(codes.Error, "Invalid move")
	r.countMove(ctx, HumanMark, false)
}

// finishLocked records the end of the round and returns the game_over event.
func (r *Room) finishLocked(ctx context.Context, status game.Status) events.Event {
	outcome := outcomeLabel(status)
	if r.games != nil {
		r.games.Add(ctx, 1, metricAttrs(attribute.String("outcome", outcome)))
	}
	slog.InfoContext(ctx, "game over", "room.id", r.ID, "round.id", r.roundID, "outcome", outcome, "board", r.board.String())

	ev := r.event(events.GameOver, -1, game.Empty)
	ev.Winner = status.Winner
	return ev
}
