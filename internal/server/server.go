// Package server exposes a built recipe graph as a read-only HTTP JSON API.
//
// The graph is never mutated after construction, so handlers share it
// without locking.
package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/factorygraph/pkg/buildinfo"
	"github.com/matzehuels/factorygraph/pkg/cache"
	"github.com/matzehuels/factorygraph/pkg/recipe"
)

const shutdownTimeout = 5 * time.Second

// DefaultMaxDepth bounds the depth query parameter when Options.MaxDepth is
// unset. Trees through production loops grow exponentially with depth.
const DefaultMaxDepth = 8

// Options configures a [Server].
type Options struct {
	// Logger receives one line per request. nil discards.
	Logger *log.Logger

	// Depth is the default depth of tree and diagram endpoints.
	Depth int

	// MaxDepth is the largest depth a request may ask for. Larger values
	// are rejected with INVALID_INPUT. Zero means [DefaultMaxDepth].
	MaxDepth int

	// MaxListed bounds the ingredients and products expanded by the recipe
	// tree endpoint. Zero expands none, a negative value expands all.
	MaxListed int

	// Cache stores rendered SVG diagrams. nil disables caching.
	Cache cache.Cache
}

// Server serves queries against one graph.
type Server struct {
	graph  *recipe.Graph
	opts   Options
	logger *log.Logger
	router chi.Router
}

// New creates a server for g.
func New(g *recipe.Graph, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	opts.Depth = min(opts.Depth, opts.MaxDepth)
	if opts.Cache == nil {
		opts.Cache = cache.NewNullCache()
	}
	s := &Server{graph: g, opts: opts, logger: logger}
	s.router = s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(
		s.requestID,
		middleware.RequestLogger(requestLogFormatter{logger: s.logger}),
		middleware.Recoverer,
		serverHeader,
	)

	r.Get("/healthz", s.handleHealth)

	r.Route("/items", func(r chi.Router) {
		r.Get("/", s.handleItems)
		r.Get("/{class}", s.handleItem)
		r.Get("/{class}/tree", s.handleItemTree)
		r.Get("/{class}/graph", s.handleItemGraph)
	})
	r.Route("/recipes", func(r chi.Router) {
		r.Get("/", s.handleRecipes)
		r.Get("/{class}", s.handleRecipe)
		r.Get("/{class}/tree", s.handleRecipeTree)
	})

	r.Get("/search", s.handleSearch)
	r.Get("/between", s.handleBetween)
	r.Get("/chain", s.handleChain)
	r.Get("/loops", s.handleLoops)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, errNotFoundRoute(r.URL.Path))
	})
	return r
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr, "version", buildinfo.Version)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return ctx.Err()
	}
}
