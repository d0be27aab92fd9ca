package recipe

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	fgerrors "github.com/matzehuels/factorygraph/pkg/errors"
)

// Hop is one step of a production chain: some recipe in Recipes consumes
// From and produces To.
type Hop struct {
	From    *Item
	To      *Item
	Recipes []*Recipe
}

// directed builds a gonum view of the child relation. Node IDs are arena
// indices. Self edges are dropped since simple graphs reject them.
// The view is rebuilt on every call so the graph itself is never written
// during queries.
func (g *Graph) directed() *simple.DirectedGraph {
	dg := simple.NewDirectedGraph()
	for _, n := range g.arena {
		dg.AddNode(simple.Node(n.index))
	}
	for _, n := range g.arena {
		for _, id := range n.children {
			child, ok := g.items[id]
			if !ok || child == n {
				continue
			}
			dg.SetEdge(dg.NewEdge(simple.Node(n.index), simple.Node(child.index)))
		}
	}
	return dg
}

// Chain finds a shortest production chain from the item with ID from to the
// item with ID to, following child relations. Every hop lists the recipes
// linking its two items. A chain from an item to itself is empty.
//
// Returns ITEM_NOT_FOUND when either ID is unknown and NO_ROUTE when to
// cannot be produced from from.
func (g *Graph) Chain(from, to string) ([]Hop, error) {
	src, ok := g.items[from]
	if !ok {
		return nil, fgerrors.New(fgerrors.ErrCodeItemNotFound, "item %q not found", from)
	}
	dst, ok := g.items[to]
	if !ok {
		return nil, fgerrors.New(fgerrors.ErrCodeItemNotFound, "item %q not found", to)
	}
	if src == dst {
		return []Hop{}, nil
	}

	shortest := path.DijkstraFrom(simple.Node(src.index), g.directed())
	nodes, _ := shortest.To(dst.index)
	if len(nodes) == 0 {
		return nil, fgerrors.New(fgerrors.ErrCodeNoRoute, "%q cannot be made from %q", to, from)
	}

	hops := make([]Hop, 0, len(nodes)-1)
	for i := 1; i < len(nodes); i++ {
		a, b := g.arena[nodes[i-1].ID()], g.arena[nodes[i].ID()]
		hops = append(hops, Hop{From: a, To: b, Recipes: g.Between(a, b)})
	}
	return hops, nil
}

// Loops returns the production loops of the graph: groups of items that can
// each be made, directly or indirectly, from every other member. A single
// item forms a loop when some recipe both consumes and produces it. Members
// and groups are ordered by item insertion order.
func (g *Graph) Loops() [][]*Item {
	var loops [][]*Item
	for _, scc := range topo.TarjanSCC(g.directed()) {
		if len(scc) == 1 {
			n := g.arena[scc[0].ID()]
			if !n.HasChild(n.ID) {
				continue
			}
		}
		members := make([]*Item, len(scc))
		for i, n := range scc {
			members[i] = g.arena[n.ID()]
		}
		slices.SortFunc(members, byIndex)
		loops = append(loops, members)
	}
	slices.SortFunc(loops, func(a, b []*Item) int { return byIndex(a[0], b[0]) })
	return loops
}

func byIndex(a, b *Item) int { return cmp.Compare(a.index, b.index) }
