package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/user/samadhi-tracker/internal/config"
)

// New builds the application logger. Development gets a human-readable console
// writer, everything else structured JSON.
func New(cfg *config.AppConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stdout
	if cfg.AppEnv == "development" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("app", cfg.AppName).
		Logger()
}
