package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	fgerrors "github.com/matzehuels/factorygraph/pkg/errors"
	"github.com/matzehuels/factorygraph/pkg/recipe"
	"github.com/matzehuels/factorygraph/pkg/render/nodelink"
)

const (
	formatDOT = "dot" // Graphviz source
	formatSVG = "svg" // rendered with the embedded Graphviz
)

// renderOpts holds the command-line flags for the graph command.
type renderOpts struct {
	output   string // output file; "-" or empty writes DOT to stdout
	format   string // "dot" or "svg"; inferred from output when empty
	dir      string // relation to follow: "down" or "up"
	detailed bool   // show classes and edge recipes
}

// graphCommand renders the neighbourhood of an item as a node-link diagram.
func (c *CLI) graphCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "graph <item>",
		Short: "Render the items around an item as a DOT or SVG diagram",
		Long: `Render the items around an item as a node-link diagram.

Edges point from ingredient to product. Without --output the DOT source is
written to stdout; with --output the format follows the file extension
unless --format is given.`,
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
			dir, err := recipe.ParseDirection(opts.dir)
			if err != nil {
				return err
			}
			dot := nodelink.ToDOT(g, n, nodelink.Options{
				Direction: dir,
				Depth:     cfg.Debug.Depth,
				Detailed:  opts.detailed,
			})
			return c.runRender(cmd, dot, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: dot, svg")
	cmd.Flags().StringVar(&opts.dir, "dir", "down", "relation to follow: down (products) or up (ingredients)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show item classes and label edges with recipes")
	cmd.Flags().Int("depth", 1, "levels of related items to include")

	return cmd
}

// runRender writes dot, or the SVG rendered from it, to the requested output.
func (c *CLI) runRender(cmd *cobra.Command, dot string, opts renderOpts) error {
	format, err := resolveFormat(opts.format, opts.output)
	if err != nil {
		return err
	}

	data := []byte(dot)
	if format == formatSVG {
		data, err = renderSVG(cmd.Context(), cmd, dot)
		if err != nil {
			return err
		}
	}

	if opts.output == "" || opts.output == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", opts.output, err)
	}

	out := cmd.OutOrStdout()
	printSuccess(out, "Rendered %s", strings.ToUpper(format))
	printFile(out, opts.output)
	if format == formatDOT {
		printNextStep(out, "Render", "dot -Tsvg "+opts.output)
	}
	return nil
}

func renderSVG(ctx context.Context, cmd *cobra.Command, dot string) ([]byte, error) {
	spinner := newSpinnerWithContext(ctx, cmd.ErrOrStderr(), "Rendering SVG...")
	spinner.Start()
	svg, err := nodelink.RenderSVG(ctx, dot)
	spinner.Stop()
	if err != nil {
		return nil, fgerrors.Wrap(fgerrors.ErrCodeInternal, err, "render svg")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return svg, nil
}

// resolveFormat picks the output format from the flag or, failing that, the
// output file extension.
func resolveFormat(format, output string) (string, error) {
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), ".")
		if format == "" || output == "-" {
			format = formatDOT
		}
	}
	switch format {
	case formatDOT, "gv":
		return formatDOT, nil
	case formatSVG:
		return formatSVG, nil
	default:
		return "", fgerrors.New(fgerrors.ErrCodeInvalidInput, "unsupported format %q (want dot or svg)", format)
	}
}
