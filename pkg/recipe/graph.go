package recipe

import (
	"maps"
	"slices"
	"strings"

	fgerrors "github.com/matzehuels/factorygraph/pkg/errors"
)

// Graph is the arena that owns every item and recipe of one data set.
//
// Items are addressed by ID and additionally receive a dense arena index in
// insertion order, which the path and loop algorithms use as node identity.
// Recipes are keyed by class. Both collections remember insertion order so
// listings and "first match" lookups are deterministic.
//
// The zero value is not usable - use [New] or [Precompute].
// A Graph is built by a single goroutine. Once construction is finished it
// must not be mutated again; from then on all query methods are safe for
// concurrent use.
type Graph struct {
	items       map[string]*Item
	arena       []*Item // arena[i].index == i
	recipes     map[string]*Recipe
	recipeOrder []string
	meta        Metadata
}

// New creates an empty graph with optional graph-level metadata.
func New(meta Metadata) *Graph {
	if meta == nil {
		meta = Metadata{}
	}
	return &Graph{
		items:   make(map[string]*Item),
		recipes: make(map[string]*Recipe),
		meta:    meta,
	}
}

// Meta returns the graph-level metadata map. It is never nil.
func (g *Graph) Meta() Metadata { return g.meta }

// AddItem adds n to the arena. It returns INVALID_INPUT for an empty ID and
// DUPLICATE_ITEM when an item with the same ID is already present.
func (g *Graph) AddItem(n *Item) error {
	if n == nil || n.ID == "" {
		return fgerrors.New(fgerrors.ErrCodeInvalidInput, "item id must not be empty")
	}
	if _, exists := g.items[n.ID]; exists {
		return fgerrors.New(fgerrors.ErrCodeDuplicateItem, "duplicate item id %q", n.ID)
	}
	n.index = int64(len(g.arena))
	g.items[n.ID] = n
	g.arena = append(g.arena, n)
	return nil
}

// AddRecipe stores r under its class. A recipe with the same class is
// replaced in place, keeping its original position, and AddRecipe reports
// true. Relations contributed by the replaced recipe stay on the items until
// the graph is relinked; [Precompute] takes care of that.
func (g *Graph) AddRecipe(r *Recipe) (replaced bool) {
	if _, replaced = g.recipes[r.Class]; !replaced {
		g.recipeOrder = append(g.recipeOrder, r.Class)
	}
	g.recipes[r.Class] = r
	return replaced
}

// relink recomputes every item relation from the stored recipes.
func (g *Graph) relink() {
	for _, n := range g.arena {
		n.clearRelations()
	}
	for _, class := range g.recipeOrder {
		g.recipes[class].RedrawNodes()
	}
}

// Item returns the item with the given ID.
func (g *Graph) Item(id string) (*Item, bool) {
	if g == nil {
		return nil, false
	}
	n, ok := g.items[id]
	return n, ok
}

// Recipe returns the recipe stored under class.
func (g *Graph) Recipe(class string) (*Recipe, bool) {
	r, ok := g.recipes[class]
	return r, ok
}

// Items returns all items in insertion order. The slice is a copy; the items
// are the graph's own.
func (g *Graph) Items() []*Item { return slices.Clone(g.arena) }

// Recipes returns all recipes in insertion order.
func (g *Graph) Recipes() []*Recipe {
	out := make([]*Recipe, len(g.recipeOrder))
	for i, class := range g.recipeOrder {
		out[i] = g.recipes[class]
	}
	return out
}

// ItemMap returns a copy of the ID -> item mapping.
func (g *Graph) ItemMap() map[string]*Item { return maps.Clone(g.items) }

// RecipeMap returns a copy of the class -> recipe mapping, the shape
// accepted by [Search] and [Between].
func (g *Graph) RecipeMap() map[string]*Recipe { return maps.Clone(g.recipes) }

// ItemCount returns the number of items.
func (g *Graph) ItemCount() int { return len(g.arena) }

// RecipeCount returns the number of recipes.
func (g *Graph) RecipeCount() int { return len(g.recipeOrder) }

// Children resolves the child IDs of id to items. IDs that are not part of
// the graph are skipped.
func (g *Graph) Children(id string) []*Item {
	n, ok := g.items[id]
	if !ok {
		return nil
	}
	return g.resolve(n.children)
}

// Parents resolves the parent IDs of id to items.
func (g *Graph) Parents(id string) []*Item {
	n, ok := g.items[id]
	if !ok {
		return nil
	}
	return g.resolve(n.parents)
}

func (g *Graph) resolve(ids []string) []*Item {
	out := make([]*Item, 0, len(ids))
	for _, id := range ids {
		if n, ok := g.items[id]; ok {
			out = append(out, n)
		}
	}
	return out
}

// ItemByClass returns the item whose class is class.
func (g *Graph) ItemByClass(class string) (*Item, bool) {
	return g.Item(class)
}

// ItemByName returns the first item, in insertion order, whose display name
// equals name.
func (g *Graph) ItemByName(name string) (*Item, bool) {
	for _, n := range g.arena {
		if n.Name() == name {
			return n, true
		}
	}
	return nil, false
}

// RecipeByClass returns the recipe stored under class.
func (g *Graph) RecipeByClass(class string) (*Recipe, bool) {
	return g.Recipe(class)
}

// RecipeByName returns the first recipe, in insertion order, named name.
func (g *Graph) RecipeByName(name string) (*Recipe, bool) {
	for _, class := range g.recipeOrder {
		if r := g.recipes[class]; r.Name == name {
			return r, true
		}
	}
	return nil, false
}

// FindItem resolves a user-supplied reference: an exact class, then an exact
// display name, then a case-insensitive display name.
func (g *Graph) FindItem(ref string) (*Item, bool) {
	if n, ok := g.ItemByClass(ref); ok {
		return n, true
	}
	if n, ok := g.ItemByName(ref); ok {
		return n, true
	}
	for _, n := range g.arena {
		if strings.EqualFold(n.Name(), ref) {
			return n, true
		}
	}
	return nil, false
}

// FindRecipe resolves a recipe reference the same way [Graph.FindItem] does.
func (g *Graph) FindRecipe(ref string) (*Recipe, bool) {
	if r, ok := g.RecipeByClass(ref); ok {
		return r, true
	}
	if r, ok := g.RecipeByName(ref); ok {
		return r, true
	}
	for _, class := range g.recipeOrder {
		if r := g.recipes[class]; strings.EqualFold(r.Name, ref) {
			return r, true
		}
	}
	return nil, false
}

// FilterItems returns the items whose class or display name contains query,
// ignoring case, in insertion order. An empty query matches everything.
func (g *Graph) FilterItems(query string) []*Item {
	if query == "" {
		return g.Items()
	}
	q := strings.ToLower(query)
	var out []*Item
	for _, n := range g.arena {
		if strings.Contains(strings.ToLower(n.ID), q) || strings.Contains(strings.ToLower(n.Name()), q) {
			out = append(out, n)
		}
	}
	return out
}
