package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/factorygraph/pkg/buildinfo"
	"github.com/matzehuels/factorygraph/pkg/observability"
)

const (
	// RequestIDHeader carries the request ID in both directions.
	RequestIDHeader = "X-Request-ID"

	// RenderCacheHeader is "hit" or "miss" on rendered SVG responses.
	RenderCacheHeader = "X-Render-Cache"
)

type ctxKey int

const requestIDKey ctxKey = 0

// RequestID returns the ID assigned to the request carrying ctx.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// requestID adopts the caller's X-Request-ID or generates one. The ID is
// echoed in the response so clients can correlate log lines.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// requestLogFormatter reports each request to the HTTP hooks and the server
// logger through chi's request logger.
type requestLogFormatter struct {
	logger *log.Logger
}

func (f requestLogFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)
	return &requestLogEntry{logger: f.logger, r: r}
}

type requestLogEntry struct {
	logger *log.Logger
	r      *http.Request
}

func (e *requestLogEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ any) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx := e.r.Context()
	observability.HTTP().OnResponse(ctx, e.r.Method, e.r.URL.Path, status, elapsed)

	logf := e.logger.Debug
	if status >= http.StatusInternalServerError {
		logf = e.logger.Error
	} else if status >= http.StatusBadRequest {
		logf = e.logger.Warn
	}
	logf("request",
		"method", e.r.Method,
		"path", e.r.URL.Path,
		"status", status,
		"bytes", bytes,
		"duration", elapsed.Round(time.Microsecond),
		"request_id", RequestID(ctx))
}

// Panic is called by middleware.Recoverer before it answers 500.
func (e *requestLogEntry) Panic(v any, stack []byte) {
	e.logger.Error("panic",
		"method", e.r.Method,
		"path", e.r.URL.Path,
		"panic", v,
		"request_id", RequestID(e.r.Context()),
		"stack", string(stack))
}

func serverHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Server", buildinfo.Short())
		next.ServeHTTP(w, r)
	})
}
