package app

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// NewLogger returns a configured slog.Logger based on configuration.
func NewLogger(cfg *Config) *slog.Logger {
	return newLogger(os.Stdout, cfg)
}

func newLogger(w io.Writer, cfg *Config) *slog.Logger {
	level, _ := cfg.Level()
	if cfg != nil && cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{AddSource: true, Level: level}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		AddSource:  true,
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    w != os.Stdout,
	}))
}
