// Package cli implements the factorygraph command-line interface.
//
// Every query command loads the classes table and the recipe export named
// by the configuration, builds the item/recipe graph and prints the answer
// as styled text or, with --json, as JSON. The serve command exposes the
// same queries over HTTP.
//
// # Commands
//
//   - info, items, item, recipes, recipe: inspect the graph
//   - search, between, chain, loops: recipe and production chain queries
//   - graph: render an item's neighbourhood as DOT or SVG
//   - serve: run the JSON API
//
// # Logging
//
// --verbose (-v) switches every command to debug-level logging. The logger
// travels in the command context, so the loader and the server write to it
// as well.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns a logger writing to w at level, stamped "15:04:05.00".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs one info line when a step finishes, e.g.
// "Loaded 312 items and 587 recipes (41ms)".
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

// loggerFromContext returns the logger attached by the root command, or
// log.Default() outside a command run.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
