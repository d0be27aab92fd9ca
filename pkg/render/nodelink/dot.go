package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/factorygraph/pkg/recipe"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Direction selects which relation is followed from the root:
	// recipe.Down for products, recipe.Up for ingredients.
	Direction recipe.Direction

	// Depth limits how many relation steps are followed. Zero renders the
	// root item alone.
	Depth int

	// Detailed adds the item class below the display name and labels edges
	// with the names of the linking recipes.
	Detailed bool
}

type edge struct{ from, to *recipe.Item }

// ToDOT converts the neighbourhood of root to Graphviz DOT format.
// Edges always point from ingredient to product, whichever direction was
// followed, and the root is highlighted. Items appear in breadth-first
// order so the output is stable for a given graph.
func ToDOT(g *recipe.Graph, root *recipe.Item, opts Options) string {
	nodes, edges := collect(g, root, opts)

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range nodes {
		attrs := []string{fmt.Sprintf("label=%q", fmtLabel(n, opts.Detailed))}
		if n == root {
			attrs = append(attrs, "fillcolor=lightblue")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range edges {
		if !opts.Detailed {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.from.ID, e.to.ID)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.from.ID, e.to.ID, recipeNames(g.Between(e.from, e.to)))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// collect walks the graph breadth-first from root up to opts.Depth steps.
func collect(g *recipe.Graph, root *recipe.Item, opts Options) ([]*recipe.Item, []edge) {
	nodes := []*recipe.Item{root}
	seen := map[string]bool{root.ID: true}
	seenEdge := make(map[edge]bool)
	var edges []edge

	frontier := []*recipe.Item{root}
	for step := 0; step < opts.Depth && len(frontier) > 0; step++ {
		var next []*recipe.Item
		for _, n := range frontier {
			related := g.Children(n.ID)
			if opts.Direction == recipe.Up {
				related = g.Parents(n.ID)
			}
			for _, m := range related {
				e := edge{from: n, to: m}
				if opts.Direction == recipe.Up {
					e = edge{from: m, to: n}
				}
				if !seenEdge[e] {
					seenEdge[e] = true
					edges = append(edges, e)
				}
				if !seen[m.ID] {
					seen[m.ID] = true
					nodes = append(nodes, m)
					next = append(next, m)
				}
			}
		}
		frontier = next
	}
	return nodes, edges
}

func fmtLabel(n *recipe.Item, detailed bool) string {
	if !detailed || n.Name() == n.ID {
		return n.Name()
	}
	return n.Name() + "\n" + n.ID
}

func recipeNames(rs []*recipe.Recipe) string {
	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = r.Name
	}
	return strings.Join(names, ", ")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root tag so the SVG scales with its
// container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
