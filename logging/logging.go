// Package logging configures zerolog the way cmd/shell/main.go does: a
// human-readable ConsoleWriter on a TTY, structured JSON otherwise, with a
// per-invocation request ID attached the way worker/worker.go attaches a
// job ID to every log line it emits.
package logging

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup installs the global zerolog logger at the given level ("debug",
// "info", "warn", "error"); falsy/unknown levels fall back to info.
func Setup(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if fi, err := os.Stderr.Stat(); err == nil && fi.Mode()&os.ModeCharDevice == 0 {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
}

// WithSearchID returns a logger carrying a fresh correlation ID, the way
// worker.AnalysisWorker correlates every line in one job's log output by
// "job-id" — here it's "search-id", scoped to one driver.Solve call.
func WithSearchID() (zerolog.Logger, string) {
	id := uuid.NewString()
	return log.With().Str("search-id", id).Logger(), id
}
