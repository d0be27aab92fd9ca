// Package pkg provides the libraries behind factorygraph, a tool for exploring
// Satisfactory production recipes.
//
// # Overview
//
// factorygraph turns a game data export into a bipartite graph of items and
// the recipes that convert them, then answers questions about it: which
// recipes consume or produce an item, which recipes lead from one item to
// another and what the shortest production chain between two items is. The
// pkg directory is organized into four areas:
//
//  1. [recipe] - Domain model (items, recipes, graph construction, queries)
//  2. [io] - Reading the data export and JSON views of query results
//  3. [render/nodelink] - Graphviz diagrams of an item's neighbourhood
//  4. Infrastructure ([config], [errors], [observability], [cache], [buildinfo])
//
// # Architecture
//
// The typical data flow:
//
//	classes.csv + recipes.json
//	         ↓
//	    [io] package (read both files concurrently)
//	         ↓
//	    [recipe] package (Precompute the linked graph)
//	         ↓
//	    queries, debug trees, DOT/SVG diagrams, JSON
//
// # Quick Start
//
// Load a data set and find the recipes that use iron ingots:
//
//	import (
//	    "context"
//	    pkgio "github.com/matzehuels/factorygraph/pkg/io"
//	    "github.com/matzehuels/factorygraph/pkg/recipe"
//	)
//
//	g, err := pkgio.Load(context.Background(), pkgio.Options{
//	    ClassesPath: "data/classes.csv",
//	    RecipesPath: "data/recipes.json",
//	})
//	if err != nil {
//	    return err
//	}
//	ingot, _ := g.FindItem("Iron Ingot")
//	for _, r := range g.Search(ingot, recipe.AsIngredient) {
//	    fmt.Println(r.Name)
//	}
//
// # Main Packages
//
// [recipe] - Items, recipes and the [recipe.Graph] that owns them. Recipes
// derive the item relations: every ingredient of a recipe gets every product
// as a child. The package also implements the recipe search, shortest
// production chains and loop detection on top of gonum graph algorithms.
//
// [io] - CSV and JSON readers for the classes table and the recipe export,
// the concurrent [io.Load] entry point and the JSON listing views shared by
// the CLI and the HTTP server.
//
// [render/nodelink] - DOT generation for the items around one item, and SVG
// rendering through an embedded Graphviz.
//
// [config] - Layered configuration from defaults, a TOML file, FACTORYGRAPH_*
// environment variables and command-line flags.
//
// [errors] - Error codes shared by every package, plus validation of user
// supplied identifiers and paths.
//
// [observability] - Hook interfaces for loading, queries and HTTP traffic
// with no-op defaults.
//
// [cache] - In-memory store for rendered diagrams.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All library tests
//	go test ./pkg/recipe/...    # Specific package
//	go test -run Example ./...  # Examples only
//
// [recipe]: https://pkg.go.dev/github.com/matzehuels/factorygraph/pkg/recipe
// [io]: https://pkg.go.dev/github.com/matzehuels/factorygraph/pkg/io
// [io.Load]: https://pkg.go.dev/github.com/matzehuels/factorygraph/pkg/io#Load
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/factorygraph/pkg/render/nodelink
// [config]: https://pkg.go.dev/github.com/matzehuels/factorygraph/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/factorygraph/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/factorygraph/pkg/observability
// [cache]: https://pkg.go.dev/github.com/matzehuels/factorygraph/pkg/cache
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/factorygraph/pkg/buildinfo
// [recipe.Graph]: https://pkg.go.dev/github.com/matzehuels/factorygraph/pkg/recipe#Graph
package pkg
