package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/factorygraph/pkg/buildinfo"
	pkgio "github.com/matzehuels/factorygraph/pkg/io"
	"github.com/matzehuels/factorygraph/pkg/recipe"
)

// infoCommand prints where the graph came from and how big it is.
func (c *CLI) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the loaded data files and graph size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := c.loadGraph(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			meta := g.Meta()
			if c.jsonOut {
				return pkgio.WriteJSON(out, meta)
			}

			fmt.Fprintln(out, StyleTitle.Render(buildinfo.Short()))
			printKeyValue(out, "classes", fmt.Sprint(meta[pkgio.MetaClassesPath]))
			printKeyValue(out, "recipes", fmt.Sprint(meta[pkgio.MetaRecipesPath]))
			printKeyValue(out, "build", fmt.Sprint(meta[pkgio.MetaBuildID]))
			printKeyValue(out, "built", fmt.Sprint(meta[pkgio.MetaBuiltAt]))
			printStats(out, g.ItemCount(), g.RecipeCount())
			return nil
		},
	}
}

// itemsCommand lists items, optionally filtered by a substring.
func (c *CLI) itemsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "items [query]",
		Short: "List items whose class or name contains query",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := c.loadGraph(cmd)
			if err != nil {
				return err
			}
			var query string
			if len(args) == 1 {
				query = args[0]
			}
			return c.writeItems(cmd.OutOrStdout(), g.FilterItems(query))
		},
	}
}

// itemCommand prints the debug tree of one item.
func (c *CLI) itemCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "item <class-or-name>",
		Short: "Show an item and the items it leads to",
		Long: `Show an item and the items it leads to.

With --dir down (the default) the tree follows children: items produced by
recipes that consume this item. With --dir up it follows parents: the
ingredients of the recipes that produce it. --depth limits the recursion.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, g, err := c.loadGraph(cmd)
			if err != nil {
				return err
			}
			n, err := findItem(g, args[0])
			if err != nil {
				return err
			}
			if c.jsonOut {
				return pkgio.WriteJSON(cmd.OutOrStdout(), n)
			}
			d, err := recipe.ParseDirection(dir)
			if err != nil {
				return err
			}
			return g.WriteItem(cmd.OutOrStdout(), n, d, cfg.Debug.Depth)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "down", "relation to follow: down (children) or up (parents)")
	cmd.Flags().Int("depth", 1, "levels of related items to expand")
	return cmd
}

// recipesCommand lists all recipes.
func (c *CLI) recipesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "recipes",
		Short: "List all recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := c.loadGraph(cmd)
			if err != nil {
				return err
			}
			return c.writeRecipes(cmd.OutOrStdout(), g.Recipes())
		},
	}
}

// recipeCommand prints the debug view of one recipe.
func (c *CLI) recipeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipe <class-or-name>",
		Short: "Show a recipe with its ingredients and products",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, g, err := c.loadGraph(cmd)
			if err != nil {
				return err
			}
			r, err := findRecipe(g, args[0])
			if err != nil {
				return err
			}
			if c.jsonOut {
				return pkgio.WriteJSON(cmd.OutOrStdout(), r)
			}
			return g.WriteRecipeLimit(cmd.OutOrStdout(), r, cfg.Debug.Depth, cfg.Debug.MaxListed)
		},
	}

	cmd.Flags().Int("depth", 1, "levels of related items to expand")
	cmd.Flags().Int("max-listed", recipe.MaxListed, "ingredients and products to expand (-1 for all, 0 for none)")
	return cmd
}

// searchCommand finds the recipes using or producing an item.
func (c *CLI) searchCommand() *cobra.Command {
	var ingredient, product bool

	cmd := &cobra.Command{
		Use:   "search <item>",
		Short: "Find recipes that use or produce an item",
		Long: `Find recipes that use or produce an item.

--ingredient restricts the result to recipes consuming the item, --product to
recipes producing it. Without either flag both are searched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := c.loadGraph(cmd)
			if err != nil {
				return err
			}
			n, err := findItem(g, args[0])
			if err != nil {
				return err
			}
			roles := recipe.AnyRole
			if ingredient || product {
				roles = 0
				if ingredient {
					roles |= recipe.AsIngredient
				}
				if product {
					roles |= recipe.AsProduct
				}
			}
			loggerFromContext(cmd.Context()).Debug("search", "item", n.ID, "roles", roles)
			return c.writeRecipes(cmd.OutOrStdout(), g.Search(n, roles))
		},
	}

	cmd.Flags().BoolVar(&ingredient, "ingredient", false, "match recipes consuming the item")
	cmd.Flags().BoolVar(&product, "product", false, "match recipes producing the item")
	return cmd
}

// betweenCommand lists the recipes that turn one item into another.
func (c *CLI) betweenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "between <from> <to>",
		Short: "List recipes consuming one item and producing another",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := c.loadGraph(cmd)
			if err != nil {
				return err
			}
			from, to, err := findPair(g, args[0], args[1])
			if err != nil {
				return err
			}
			return c.writeRecipes(cmd.OutOrStdout(), g.Between(from, to))
		},
	}
}

// chainCommand prints the shortest production chain between two items.
func (c *CLI) chainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chain <from> <to>",
		Short: "Show the shortest production chain between two items",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := c.loadGraph(cmd)
			if err != nil {
				return err
			}
			from, to, err := findPair(g, args[0], args[1])
			if err != nil {
				return err
			}
			hops, err := g.Chain(from.ID, to.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if c.jsonOut {
				return pkgio.WriteJSON(out, pkgio.HopViews(hops))
			}
			if len(hops) == 0 {
				printInfo(out, "%s is already %s", from.Name(), to.Name())
				return nil
			}
			fmt.Fprintln(out, StyleHighlight.Render(from.Name()))
			for _, h := range hops {
				names := make([]string, len(h.Recipes))
				for i, r := range h.Recipes {
					names[i] = r.Name
				}
				printDetail(out, "%s %s", iconArrow, strings.Join(names, ", "))
				fmt.Fprintln(out, StyleHighlight.Render(h.To.Name()))
			}
			return nil
		},
	}
}

// loopsCommand lists groups of items that can be produced from each other.
func (c *CLI) loopsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "loops",
		Short: "List production loops",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := c.loadGraph(cmd)
			if err != nil {
				return err
			}
			loops := g.Loops()

			out := cmd.OutOrStdout()
			if c.jsonOut {
				return pkgio.WriteJSON(out, pkgio.LoopViews(loops))
			}
			if len(loops) == 0 {
				printInfo(out, "No production loops")
				return nil
			}
			for _, loop := range loops {
				names := make([]string, len(loop))
				for i, n := range loop {
					names[i] = n.Name()
				}
				printInfo(out, "%s", StyleWarning.Render(strings.Join(names, " "+iconArrow+" ")))
			}
			printCount(out, len(loops), "loop")
			return nil
		},
	}
}

func findPair(g *recipe.Graph, fromRef, toRef string) (*recipe.Item, *recipe.Item, error) {
	from, err := findItem(g, fromRef)
	if err != nil {
		return nil, nil, err
	}
	to, err := findItem(g, toRef)
	if err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

func (c *CLI) writeItems(w io.Writer, items []*recipe.Item) error {
	if c.jsonOut {
		return pkgio.WriteJSON(w, pkgio.ItemViews(items))
	}
	rows := make([][]string, len(items))
	for i, n := range items {
		rows[i] = []string{n.ID, n.Name()}
	}
	printTable(w, []string{"Class", "Name"}, rows)
	printCount(w, len(items), "item")
	return nil
}

func (c *CLI) writeRecipes(w io.Writer, recipes []*recipe.Recipe) error {
	if c.jsonOut {
		return pkgio.WriteJSON(w, pkgio.RecipeViews(recipes))
	}
	rows := make([][]string, len(recipes))
	for i, r := range recipes {
		rows[i] = []string{r.Class, r.Name, r.Machine}
	}
	printTable(w, []string{"Class", "Name", "Machine"}, rows)
	printCount(w, len(recipes), "recipe")
	return nil
}
