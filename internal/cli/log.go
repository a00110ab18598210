// Package cli implements the docrtf command-line interface.
//
// The render command converts a single document to RTF without running the
// HTTP service; members prints the declaration sections of a member
// manifest. All commands accept --verbose (-v) for debug logging.
package cli

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing timestamped lines to w at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs the elapsed time of an operation when it completes.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// slogger adapts the context logger for packages that take a *slog.Logger.
func slogger(ctx context.Context) *slog.Logger {
	return slog.New(loggerFromContext(ctx))
}
