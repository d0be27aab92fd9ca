package io

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/factorygraph/pkg/observability"
	"github.com/matzehuels/factorygraph/pkg/recipe"
)

// Graph metadata keys set by [Load].
const (
	MetaBuildID     = "build_id"
	MetaClassesPath = "classes_path"
	MetaRecipesPath = "recipes_path"
	MetaBuiltAt     = "built_at"
)

// Options configures [Load].
type Options struct {
	ClassesPath string
	RecipesPath string
	Logger      *log.Logger // nil discards log output
}

// Load reads the classes CSV and the recipe JSON concurrently and builds the
// graph from them. The first read error is returned. It cancels the shared
// context, so a read that has not started yet is skipped; a read already in
// progress runs to completion and its result is discarded.
//
// Every load gets a fresh build ID, which is stored in the graph metadata
// along with the source paths and the build time and is passed to the
// registered [observability.BuildHooks].
func Load(ctx context.Context, opts Options) (*recipe.Graph, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	hooks := observability.Build()

	var (
		classes []recipe.ClassRow
		recipes *recipe.RecipeTable
	)
	eg, egctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		rows, err := timedLoad(egctx, "classes", opts.ClassesPath, func() ([]recipe.ClassRow, int, error) {
			rows, err := ImportClasses(opts.ClassesPath)
			return rows, len(rows), err
		})
		classes = rows
		return err
	})
	eg.Go(func() error {
		table, err := timedLoad(egctx, "recipes", opts.RecipesPath, func() (*recipe.RecipeTable, int, error) {
			table, err := ImportRecipes(opts.RecipesPath)
			if err != nil {
				return nil, 0, err
			}
			return table, table.Len(), nil
		})
		recipes = table
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	buildID := uuid.NewString()
	start := time.Now()
	hooks.OnBuildStart(ctx, buildID)

	g, err := recipe.Precompute(classes, recipes)
	if err != nil {
		hooks.OnBuildComplete(ctx, buildID, 0, 0, time.Since(start), err)
		return nil, err
	}
	meta := g.Meta()
	meta[MetaBuildID] = buildID
	meta[MetaClassesPath] = opts.ClassesPath
	meta[MetaRecipesPath] = opts.RecipesPath
	meta[MetaBuiltAt] = start.UTC().Format(time.RFC3339)

	elapsed := time.Since(start)
	hooks.OnBuildComplete(ctx, buildID, g.ItemCount(), g.RecipeCount(), elapsed, nil)
	logger.Debug("built graph",
		"build", buildID,
		"items", g.ItemCount(),
		"recipes", g.RecipeCount(),
		"duration", elapsed)

	return g, nil
}

func timedLoad[T any](ctx context.Context, kind, path string, read func() (T, int, error)) (T, error) {
	hooks := observability.Build()
	start := time.Now()
	hooks.OnLoadStart(ctx, kind, path)

	var zero T
	if err := ctx.Err(); err != nil {
		hooks.OnLoadComplete(ctx, kind, path, 0, time.Since(start), err)
		return zero, err
	}
	v, n, err := read()
	hooks.OnLoadComplete(ctx, kind, path, n, time.Since(start), err)
	if err != nil {
		return zero, err
	}
	return v, nil
}
