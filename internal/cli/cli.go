package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/factorygraph/pkg/config"
	fgerrors "github.com/matzehuels/factorygraph/pkg/errors"
	pkgio "github.com/matzehuels/factorygraph/pkg/io"
	"github.com/matzehuels/factorygraph/pkg/recipe"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display and completion scripts.
const appName = "factorygraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	jsonOut    bool
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Graph Loading
// =============================================================================

// loadGraph resolves the configuration for cmd and builds the graph from the
// configured data files.
func (c *CLI) loadGraph(cmd *cobra.Command) (*config.Config, *recipe.Graph, error) {
	cfg, err := config.Load(c.configPath, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}

	logger := loggerFromContext(cmd.Context())
	logger.Debug("loading data", "classes", cfg.Data.Classes, "recipes", cfg.Data.Recipes)

	prog := newProgress(logger)
	g, err := pkgio.Load(cmd.Context(), pkgio.Options{
		ClassesPath: cfg.Data.Classes,
		RecipesPath: cfg.Data.Recipes,
		Logger:      logger,
	})
	if err != nil {
		return nil, nil, err
	}
	prog.done(fmt.Sprintf("Loaded %d items and %d recipes", g.ItemCount(), g.RecipeCount()))
	return cfg, g, nil
}

// findItem resolves a command-line item reference (class or display name).
func findItem(g *recipe.Graph, ref string) (*recipe.Item, error) {
	if err := fgerrors.ValidateID("item", ref); err != nil {
		return nil, err
	}
	n, ok := g.FindItem(ref)
	if !ok {
		return nil, fgerrors.New(fgerrors.ErrCodeItemNotFound, "item %q not found", ref)
	}
	return n, nil
}

func findRecipe(g *recipe.Graph, ref string) (*recipe.Recipe, error) {
	if err := fgerrors.ValidateID("recipe", ref); err != nil {
		return nil, err
	}
	r, ok := g.FindRecipe(ref)
	if !ok {
		return nil, fgerrors.New(fgerrors.ErrCodeRecipeNotFound, "recipe %q not found", ref)
	}
	return r, nil
}
