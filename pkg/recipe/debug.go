package recipe

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	fgerrors "github.com/matzehuels/factorygraph/pkg/errors"
)

// Direction selects which relation a debug tree follows.
type Direction int

const (
	// Down follows children: what the item is used for.
	Down Direction = iota
	// Up follows parents: what the item is made from.
	Up
)

// String returns "down" or "up".
func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// ParseDirection parses "down"/"children" or "up"/"parents".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "", "down", "children":
		return Down, nil
	case "up", "parents":
		return Up, nil
	}
	return Down, fgerrors.New(fgerrors.ErrCodeInvalidInput, "unknown direction %q (want up or down)", s)
}

// MaxListed is how many ingredients and products [Graph.WriteRecipe] expands.
const MaxListed = 5

const indentStep = 4

// treeWriter remembers the first write error so rendering code can stay
// linear.
type treeWriter struct {
	w   io.Writer
	err error
}

func (t *treeWriter) line(indent int, format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, "%s%s\n", strings.Repeat(" ", indent), fmt.Sprintf(format, args...))
}

// WriteItem writes an indented dump of n: its attributes with sorted keys,
// the size of the followed relation, and then recursively the related items
// down to depth levels. Depth 0 renders n alone.
//
// Related IDs are resolved through g; IDs that g does not know are printed
// as "<id> (unresolved)". g may be nil, in which case nothing resolves.
func (g *Graph) WriteItem(w io.Writer, n *Item, dir Direction, depth int) error {
	tw := &treeWriter{w: w}
	g.writeItem(tw, n, dir, depth, 0)
	return tw.err
}

func (g *Graph) writeItem(tw *treeWriter, n *Item, dir Direction, depth, indent int) {
	tw.line(indent, "%s [%s]", n.Name(), n.ID)
	if n.Data == nil {
		tw.line(indent+2, "data: <none>")
	}
	for _, key := range slices.Sorted(maps.Keys(n.Data)) {
		tw.line(indent+2, "%s: %v", key, n.Data[key])
	}

	related, label := n.children, "children"
	if dir == Up {
		related, label = n.parents, "parents"
	}
	tw.line(indent+2, "%s: %d", label, len(related))

	if depth <= 0 {
		return
	}
	for _, id := range related {
		next, ok := g.Item(id)
		if !ok {
			tw.line(indent+indentStep, "%s (unresolved)", id)
			continue
		}
		g.writeItem(tw, next, dir, depth-1, indent+indentStep)
	}
}

// WriteRecipe writes the recipe's scalar fields and list sizes, followed by
// up to [MaxListed] ingredients and products rendered by [Graph.WriteItem]
// with the given depth (ingredients upwards, products downwards).
func (g *Graph) WriteRecipe(w io.Writer, r *Recipe, depth int) error {
	return g.WriteRecipeLimit(w, r, depth, MaxListed)
}

// WriteRecipeLimit is [Graph.WriteRecipe] with a custom number of expanded
// ingredients and products. A negative limit expands all of them.
func (g *Graph) WriteRecipeLimit(w io.Writer, r *Recipe, depth, limit int) error {
	if limit < 0 {
		limit = max(len(r.ingredients), len(r.products))
	}
	tw := &treeWriter{w: w}
	tw.line(0, "%s [%s]", r.Name, r.Class)
	tw.line(2, "machine: %s", r.Machine)
	tw.line(2, "rate: %s", formatAmount(r.Rate))
	tw.line(2, "ingredients: %d", len(r.ingredients))
	tw.line(2, "products: %d", len(r.products))

	for _, in := range r.ingredients[:min(len(r.ingredients), limit)] {
		tw.line(2, "ingredient x%s:", formatAmount(in.Amount))
		g.writeItem(tw, in.Item, Up, depth, indentStep)
	}
	for _, out := range r.products[:min(len(r.products), limit)] {
		tw.line(2, "product x%s:", formatAmount(out.Amount))
		g.writeItem(tw, out.Item, Down, depth, indentStep)
	}
	return tw.err
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
