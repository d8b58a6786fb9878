package bot

import (
	"log/slog"
	"math/rand/v2"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	tracer = otel.Tracer("bot")
	meter  = otel.Meter("bot")
)

// RandomOpponent picks cells uniformly at random until one is free.
type RandomOpponent struct {
	rng      *rand.Rand
	attempts metric.Int64Histogram
}

// NewRandomOpponent creates an opponent backed by a PCG source.
// A zero seed draws a random one.
func NewRandomOpponent(seed uint64) *RandomOpponent {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return NewRandomOpponentWithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// NewRandomOpponentWithRand creates an opponent drawing from rng.
func NewRandomOpponentWithRand(rng *rand.Rand) *RandomOpponent {
	attempts, err := meter.Int64Histogram(
		"tictactoe.opponent.attempts",
		metric.WithDescription("Random draws needed to find a free cell"),
	)
	if err != nil {
		slog.Error("failed to create opponent attempts histogram", "error", err)
	}
	return &RandomOpponent{rng: rng, attempts: attempts}
}
