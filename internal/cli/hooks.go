package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/factorygraph/pkg/observability"
)

// logHooks reports data loading through the CLI logger at debug level.
type logHooks struct {
	observability.NoopBuildHooks
	logger *log.Logger
}

// LogHooks returns build hooks that log per-file load timings to logger.
// They only produce output when logger is at debug level (--verbose).
func LogHooks(logger *log.Logger) observability.BuildHooks {
	return &logHooks{logger: logger}
}

func (h *logHooks) OnLoadComplete(_ context.Context, kind, path string, records int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("load failed", "kind", kind, "path", path, "err", err)
		return
	}
	h.logger.Debug("loaded", "kind", kind, "path", path, "records", records, "duration", d.Round(time.Microsecond))
}
