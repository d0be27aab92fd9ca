package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/factorygraph/pkg/buildinfo"
	"github.com/matzehuels/factorygraph/pkg/config"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Data locations come from --classes and --recipes, the FACTORYGRAPH_*
// environment and the TOML file named by --config, in that order of
// priority. --verbose lowers the log level to debug, and the CLI logger is
// attached to the command context before any subcommand runs.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "factorygraph explores Satisfactory production recipes",
		Long: `factorygraph builds a graph of items and the recipes that convert them
from a classes table and a recipe export, and answers questions about it:
which recipes use or make an item, how items are connected and which
production chains lead from one item to another.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "", "config file (default: ./"+config.DefaultFile+" if present)")
	flags.String("classes", "", "classes CSV file")
	flags.String("recipes", "", "recipe JSON file")
	flags.BoolVar(&c.jsonOut, "json", false, "print JSON instead of text")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	// Register all subcommands
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.itemsCommand())
	root.AddCommand(c.itemCommand())
	root.AddCommand(c.recipesCommand())
	root.AddCommand(c.recipeCommand())
	root.AddCommand(c.searchCommand())
	root.AddCommand(c.betweenCommand())
	root.AddCommand(c.chainCommand())
	root.AddCommand(c.loopsCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}
