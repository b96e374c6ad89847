package logger

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

var Logger *slog.Logger

func init() {
	// Safe default so packages can log before Init runs (tests, tooling).
	Logger = slog.New(tint.NewHandler(os.Stdout, &tint.Options{NoColor: true}))
}

// Init configures the process-wide logger. Level is one of
// debug/info/warn/error; anything else falls back to info.
func Init(level string) {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}

	noColor := !isatty.IsTerminal(os.Stdout.Fd())

	Logger = slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      lvl,
		TimeFormat: time.DateTime,
		NoColor:    noColor,
	}))
	slog.SetDefault(Logger)
}
