package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ctchen222/tictactoe-solo/internal/bot"
	"ctchen222/tictactoe-solo/internal/config"
	"ctchen222/tictactoe-solo/internal/events"
	"ctchen222/tictactoe-solo/internal/game"
	"ctchen222/tictactoe-solo/internal/logger"
	"ctchen222/tictactoe-solo/internal/room"
	"ctchen222/tictactoe-solo/internal/telemetry"
	"ctchen222/tictactoe-solo/internal/ui"
)

type frontend interface {
	Bind(g ui.Game)
	HandleEvent(ev events.Event)
	Run(ctx context.Context) error
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize logging. The TUI owns stdout, so logs go to a file by default.
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to parse log level: %v", err)
	}
	sink, err := logger.OpenSink(cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to open log file: %v", err)
	}
	defer sink.Close()
	logger.Init(sink, level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, cfg.Telemetry)
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	board := game.NewBoard()

	var front frontend
	switch cfg.UI {
	case "plain":
		front = ui.NewPlain(board, os.Stdin, os.Stdout)
	default:
		front = ui.NewTUI(board)
	}

	r := room.NewRoom(board, bot.NewRandomOpponent(cfg.Opponent.Seed),
		room.WithDelay(cfg.Opponent.Delay),
		room.WithListener(front.HandleEvent),
		room.WithListener(func(ev events.Event) {
			slog.Debug("room event", "event", ev)
		}),
	)
	defer r.Close()
	front.Bind(r)

	slog.InfoContext(ctx, "game started", "ui", cfg.UI, "room.id", r.ID, "opponent.delay", cfg.Opponent.Delay)
	if err := front.Run(ctx); err != nil {
		slog.ErrorContext(ctx, "ui stopped with error", "error", err)
		log.Printf("ui: %v", err)
	}
	slog.Info("game exiting")
}
