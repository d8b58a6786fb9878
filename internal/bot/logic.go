package bot

import (
	"context"
	"log/slog"

	"ctchen222/tictactoe-solo/internal/game"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// MakeMove places mark on a random free cell of b by rejection sampling over all
// nine cells. It reports false without touching the board if the game is over.
func (r *RandomOpponent) MakeMove(ctx context.Context, b *game.Board, mark game.CellStatus) (index int, ok bool) {
	ctx, span := tracer.Start(ctx, "bot.MakeMove", trace.WithAttributes(
		attribute.String("bot.mark", mark.String()),
	))
	defer span.End()

	if b.Status().Over {
		slog.DebugContext(ctx, "board already finished, opponent skips its move")
		span.SetAttributes(attribute.Bool("move.skipped", true))
		return -1, false
	}

	attempts := 0
	for {
		index = r.rng.IntN(game.CellCount)
		attempts++
		if b.ApplyMove(index, mark) {
			ok = true
			break
		}
		if b.Status().Over {
			index = -1
			break
		}
	}

	if r.attempts != nil {
		r.attempts.Record(ctx, int64(attempts))
	}
	span.SetAttributes(
		attribute.Int("move.index", index),
		attribute.Int("move.attempts", attempts),
	)
	slog.DebugContext(ctx, "opponent moved", "move.index", index, "move.attempts", attempts)
	return index, ok
}
