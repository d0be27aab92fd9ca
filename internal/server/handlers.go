package server

import (
	"bytes"
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/factorygraph/pkg/buildinfo"
	"github.com/matzehuels/factorygraph/pkg/cache"
	fgerrors "github.com/matzehuels/factorygraph/pkg/errors"
	pkgio "github.com/matzehuels/factorygraph/pkg/io"
	"github.com/matzehuels/factorygraph/pkg/observability"
	"github.com/matzehuels/factorygraph/pkg/recipe"
	"github.com/matzehuels/factorygraph/pkg/render/nodelink"
)

type health struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	BuildID any    `json:"build_id,omitempty"`
	Items   int    `json:"items"`
	Recipes int    `json:"recipes"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, health{
		Status:  "ok",
		Version: buildinfo.Version,
		BuildID: s.graph.Meta()[pkgio.MetaBuildID],
		Items:   s.graph.ItemCount(),
		Recipes: s.graph.RecipeCount(),
	})
}

func (s *Server) handleItems(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	items := s.graph.FilterItems(r.URL.Query().Get("q"))
	observability.Query().OnQuery(r.Context(), "items", len(items), time.Since(start), nil)
	writeJSON(w, http.StatusOK, pkgio.ItemViews(items))
}

func (s *Server) handleItem(w http.ResponseWriter, r *http.Request) {
	n, err := s.findItem(chi.URLParam(r, "class"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (s *Server) handleItemTree(w http.ResponseWriter, r *http.Request) {
	n, err := s.findItem(chi.URLParam(r, "class"))
	if err != nil {
		writeError(w, err)
		return
	}
	dir, err := recipe.ParseDirection(r.URL.Query().Get("dir"))
	if err != nil {
		writeError(w, err)
		return
	}
	depth, err := s.depth(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := s.graph.WriteItem(&buf, n, dir, depth); err != nil {
		writeError(w, fgerrors.Wrap(fgerrors.ErrCodeInternal, err, "render tree"))
		return
	}
	writeText(w, "text/plain; charset=utf-8", buf.Bytes())
}

func (s *Server) handleItemGraph(w http.ResponseWriter, r *http.Request) {
	n, err := s.findItem(chi.URLParam(r, "class"))
	if err != nil {
		writeError(w, err)
		return
	}
	q := r.URL.Query()
	dir, err := recipe.ParseDirection(q.Get("dir"))
	if err != nil {
		writeError(w, err)
		return
	}
	depth, err := s.depth(r)
	if err != nil {
		writeError(w, err)
		return
	}

	dot := nodelink.ToDOT(s.graph, n, nodelink.Options{Direction: dir, Depth: depth, Detailed: q.Has("detailed")})
	switch format := q.Get("format"); format {
	case "", "dot":
		writeText(w, "text/vnd.graphviz; charset=utf-8", []byte(dot))
	case "svg":
		svg, err := s.renderSVG(r.Context(), w, dot)
		if err != nil {
			writeError(w, fgerrors.Wrap(fgerrors.ErrCodeInternal, err, "render svg"))
			return
		}
		writeText(w, "image/svg+xml", svg)
	default:
		writeError(w, fgerrors.New(fgerrors.ErrCodeInvalidInput, "unknown format %q (want dot or svg)", format))
	}
}

// renderSVG renders dot through the render cache and reports the outcome in
// the X-Render-Cache header.
func (s *Server) renderSVG(ctx context.Context, w http.ResponseWriter, dot string) ([]byte, error) {
	key := cache.Key("svg", []byte(dot))
	if svg, ok, err := s.opts.Cache.Get(ctx, key); err == nil && ok {
		w.Header().Set(RenderCacheHeader, "hit")
		return svg, nil
	}

	svg, err := nodelink.RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	if err := s.opts.Cache.Set(ctx, key, svg, 0); err != nil {
		s.logger.Warn("cache svg", "err", err)
	}
	w.Header().Set(RenderCacheHeader, "miss")
	return svg, nil
}

func (s *Server) handleRecipes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, pkgio.RecipeViews(s.graph.Recipes()))
}

func (s *Server) handleRecipe(w http.ResponseWriter, r *http.Request) {
	rec, err := s.findRecipe(chi.URLParam(r, "class"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleRecipeTree(w http.ResponseWriter, r *http.Request) {
	rec, err := s.findRecipe(chi.URLParam(r, "class"))
	if err != nil {
		writeError(w, err)
		return
	}
	depth, err := s.depth(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := s.graph.WriteRecipeLimit(&buf, rec, depth, s.opts.MaxListed); err != nil {
		writeError(w, fgerrors.Wrap(fgerrors.ErrCodeInternal, err, "render tree"))
		return
	}
	writeText(w, "text/plain; charset=utf-8", buf.Bytes())
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	q := r.URL.Query()

	n, err := s.findItem(q.Get("item"))
	if err != nil {
		writeError(w, err)
		return
	}
	roles, err := rolesFrom(q.Get("ingredient"), q.Get("product"))
	if err != nil {
		writeError(w, err)
		return
	}

	found := s.graph.Search(n, roles)
	observability.Query().OnQuery(r.Context(), "search", len(found), time.Since(start), nil)
	writeJSON(w, http.StatusOK, pkgio.RecipeViews(found))
}

func (s *Server) handleBetween(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	from, to, err := s.pair(r)
	if err != nil {
		writeError(w, err)
		return
	}
	found := s.graph.Between(from, to)
	observability.Query().OnQuery(r.Context(), "between", len(found), time.Since(start), nil)
	writeJSON(w, http.StatusOK, pkgio.RecipeViews(found))
}

func (s *Server) handleChain(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	from, to, err := s.pair(r)
	if err != nil {
		writeError(w, err)
		return
	}
	hops, err := s.graph.Chain(from.ID, to.ID)
	observability.Query().OnQuery(r.Context(), "chain", len(hops), time.Since(start), err)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pkgio.HopViews(hops))
}

func (s *Server) handleLoops(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	loops := s.graph.Loops()
	observability.Query().OnQuery(r.Context(), "loops", len(loops), time.Since(start), nil)
	writeJSON(w, http.StatusOK, pkgio.LoopViews(loops))
}

// findItem resolves a class or display name from the request.
func (s *Server) findItem(ref string) (*recipe.Item, error) {
	if err := fgerrors.ValidateID("item", ref); err != nil {
		return nil, err
	}
	n, ok := s.graph.FindItem(ref)
	if !ok {
		return nil, fgerrors.New(fgerrors.ErrCodeItemNotFound, "item %q not found", ref)
	}
	return n, nil
}

func (s *Server) findRecipe(ref string) (*recipe.Recipe, error) {
	if err := fgerrors.ValidateID("recipe", ref); err != nil {
		return nil, err
	}
	rec, ok := s.graph.FindRecipe(ref)
	if !ok {
		return nil, fgerrors.New(fgerrors.ErrCodeRecipeNotFound, "recipe %q not found", ref)
	}
	return rec, nil
}

func (s *Server) pair(r *http.Request) (*recipe.Item, *recipe.Item, error) {
	q := r.URL.Query()
	from, err := s.findItem(q.Get("from"))
	if err != nil {
		return nil, nil, err
	}
	to, err := s.findItem(q.Get("to"))
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

func (s *Server) depth(r *http.Request) (int, error) {
	v := r.URL.Query().Get("depth")
	if v == "" {
		return s.opts.Depth, nil
	}
	d, err := strconv.Atoi(v)
	if err != nil || d < 0 {
		return 0, fgerrors.New(fgerrors.ErrCodeInvalidInput, "depth must be a non-negative integer, got %q", v)
	}
	if d > s.opts.MaxDepth {
		return 0, fgerrors.New(fgerrors.ErrCodeInvalidInput, "depth %d exceeds the maximum of %d", d, s.opts.MaxDepth)
	}
	return d, nil
}

// rolesFrom turns the ingredient/product query flags into a role set.
// With neither flag given both roles are searched.
func rolesFrom(ingredient, product string) (recipe.Role, error) {
	if ingredient == "" && product == "" {
		return recipe.AnyRole, nil
	}
	var roles recipe.Role
	for _, f := range []struct {
		value string
		role  recipe.Role
	}{{ingredient, recipe.AsIngredient}, {product, recipe.AsProduct}} {
		if f.value == "" {
			continue
		}
		on, err := strconv.ParseBool(f.value)
		if err != nil {
			return 0, fgerrors.New(fgerrors.ErrCodeInvalidInput, "invalid boolean %q", f.value)
		}
		if on {
			roles |= f.role
		}
	}
	return roles, nil
}

func writeText(w http.ResponseWriter, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
