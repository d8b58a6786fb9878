package room

//go:generate mockgen -source=room.go -destination=mock_room_test.go -package=room

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"ctchen222/tictactoe-solo/internal/events"
	"ctchen222/tictactoe-solo/internal/game"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const defaultOpponentDelay = 500 * time.Millisecond

// Marks used by the two seats.
const (
	HumanMark    = game.X
	OpponentMark = game.O
)

var (
	tracer = otel.Tracer("room")
	meter  = otel.Meter("room")
)

var (
	ErrCellOccupied = errors.New("cell already occupied")
	ErrGameOver     = errors.New("game already finished")
	ErrNotYourTurn  = errors.New("opponent is still thinking")
	ErrClosed       = errors.New("room closed")
)

// Opponent computes and applies the computer's move on the board.
type Opponent interface {
	MakeMove(ctx context.Context, b *game.Board, mark game.CellStatus) (index int, ok bool)
}

// Option configures a Room.
type Option func(*Room)

// WithDelay sets the opponent's thinking time. Zero runs the opponent synchronously.
func WithDelay(d time.Duration) Option {
	return func(r *Room) {
		r.delay = d
	}
}

// WithListener registers a listener for room events.
func WithListener(l events.Listener) Option {
	return func(r *Room) {
		r.listeners = append(r.listeners, l)
	}
}

// Room is a single human (X) playing against the computer (O).
// Board watchers and listeners must not call back into the room synchronously.
type Room struct {
	ID        string
	board     *game.Board
	opponent  Opponent
	delay     time.Duration
	listeners []events.Listener

	mu      sync.Mutex
	emitMu  sync.Mutex
	roundID string
	pending bool
	timer   *time.Timer
	closed  bool

	moves metric.Int64Counter
	games metric.Int64Counter
}

// NewRoom creates a room around board with opponent playing O.
func NewRoom(board *game.Board, opponent Opponent, opts ...Option) *Room {
	r := &Room{
		ID:       uuid.NewString(),
		board:    board,
		opponent: opponent,
		delay:    defaultOpponentDelay,
		roundID:  uuid.NewString(),
	}
	for _, opt := range opts {
		opt(r)
	}

	var err error
	r.moves, err = meter.Int64Counter("tictactoe.moves", metric.WithDescription("Moves attempted, by player and outcome"))
	if err != nil {
		slog.Error("failed to create moves counter", "error", err)
	}
	r.games, err = meter.Int64Counter("tictactoe.games", metric.WithDescription("Finished games, by outcome"))
	if err != nil {
		slog.Error("failed to create games counter", "error", err)
	}

	slog.Info("room created", "room.id", r.ID, "round.id", r.roundID, "opponent.delay", r.delay)
	return r
}
