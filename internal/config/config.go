package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"ctchen222/tictactoe-solo/internal/validator"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is read from an optional YAML file and overridden by the environment.
type Config struct {
	LogLevel  string    `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"info" validate:"loglevel"`
	LogFile   string    `yaml:"log-file" env:"TTT_LOG_FILE" env-default:"tictactoe.log" validate:"required"`
	UI        string    `yaml:"ui" env:"TTT_UI" env-default:"tui" validate:"oneof=tui plain"`
	Opponent  Opponent  `yaml:"opponent"`
	Telemetry Telemetry `yaml:"telemetry"`
}

type Opponent struct {
	Delay time.Duration `yaml:"delay" env:"TTT_OPPONENT_DELAY" env-default:"500ms" validate:"gte=0s,lte=10s"`
	Seed  uint64        `yaml:"seed" env:"TTT_OPPONENT_SEED" env-default:"0"`
}

type Telemetry struct {
	Endpoint  string `yaml:"endpoint" env:"TTT_OTEL_ENDPOINT" validate:"omitempty,hostname_port"`
	TraceFile string `yaml:"trace-file" env:"TTT_TRACE_FILE"`
}

// ErrConfigNotFound is returned when an explicit config path does not exist.
var ErrConfigNotFound = errors.New("config file not found")

// Load reads the config at path. An empty path falls back to the environment
// and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	var err error
	switch {
	case path == "":
		err = cleanenv.ReadEnv(cfg)
	case !fileExists(path):
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	default:
		err = cleanenv.ReadConfig(path, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err := validator.GetValidator().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// MustLoad is like Load but panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, os.ErrNotExist)
}
