package recipe

import (
	"maps"
	"slices"

	fgerrors "github.com/matzehuels/factorygraph/pkg/errors"
)

// Metadata stores arbitrary key-value pairs attached to items or the graph.
// Items built by [Precompute] always carry [KeyClass] and [KeyName].
type Metadata map[string]any

// Attribute keys set by [Precompute].
const (
	KeyClass = "class"
	KeyName  = "name"
)

// Item is the graph node for one craftable or raw resource.
//
// Relations are stored as item IDs, never as pointers: children are the items
// this item is an ingredient for, parents are the items it is produced from.
// Both lists are ordered by first insertion and never contain an ID twice.
//
// Data may be nil, in which case the item is a placeholder without
// attributes and [Item.AddData] fails.
type Item struct {
	ID   string   // Stable identifier (the item class)
	Data Metadata // Attributes; nil for a no-data placeholder

	index    int64 // arena slot in the owning Graph, -1 when detached
	children []string
	parents  []string
}

// Quantity pairs an item with an amount. Recipes list their ingredients and
// products as quantities; two quantities are equal when they reference the
// same item ID with the same amount.
type Quantity struct {
	Item   *Item
	Amount float64
}

func (q Quantity) equal(o Quantity) bool {
	return sameItem(q.Item, o.Item) && q.Amount == o.Amount
}

func sameItem(a, b *Item) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a == b || a.ID == b.ID
}

// NewItem creates a detached item. data may be nil.
func NewItem(id string, data Metadata) *Item {
	return &Item{ID: id, Data: data, index: -1}
}

// Name returns the display name stored under [KeyName], or the ID when the
// item has no name attribute.
func (n *Item) Name() string {
	if s, ok := n.Data[KeyName].(string); ok && s != "" {
		return s
	}
	return n.ID
}

// Get returns the attribute stored under key.
func (n *Item) Get(key string) (any, bool) {
	v, ok := n.Data[key]
	return v, ok
}

// AddData stores a single attribute. It returns a NO_DATA error when the item
// is a placeholder without a data map.
func (n *Item) AddData(key string, value any) error {
	if n.Data == nil {
		return fgerrors.New(fgerrors.ErrCodeNoData, "item %q has no data", n.ID)
	}
	n.Data[key] = value
	return nil
}

// SetData replaces the whole attribute map. Passing nil turns the item into a
// placeholder.
func (n *Item) SetData(data Metadata) {
	n.Data = data
}

// AddChildren links the given items as children. Items already present (by
// ID) are skipped, so calling it repeatedly with the same quantities leaves
// the list unchanged. Amounts are not recorded on the relation.
func (n *Item) AddChildren(children ...Quantity) {
	n.children = appendMissing(n.children, children)
}

// AddParents is the parent-side counterpart of [Item.AddChildren].
func (n *Item) AddParents(parents ...Quantity) {
	n.parents = appendMissing(n.parents, parents)
}

func appendMissing(ids []string, qs []Quantity) []string {
	for _, q := range qs {
		if q.Item == nil || slices.Contains(ids, q.Item.ID) {
			continue
		}
		ids = append(ids, q.Item.ID)
	}
	return ids
}

// SetChildren replaces the child list wholesale. No de-duplication happens.
func (n *Item) SetChildren(ids ...string) {
	n.children = slices.Clone(ids)
}

// SetParents replaces the parent list wholesale. No de-duplication happens.
func (n *Item) SetParents(ids ...string) {
	n.parents = slices.Clone(ids)
}

// ChildIDs returns a copy of the child ID list in insertion order.
func (n *Item) ChildIDs() []string { return slices.Clone(n.children) }

// ParentIDs returns a copy of the parent ID list in insertion order.
func (n *Item) ParentIDs() []string { return slices.Clone(n.parents) }

// HasChild reports whether id is among the children.
func (n *Item) HasChild(id string) bool { return slices.Contains(n.children, id) }

// HasParent reports whether id is among the parents.
func (n *Item) HasParent(id string) bool { return slices.Contains(n.parents, id) }

// Copy duplicates the item. With dataOnly set the copy carries a cloned data
// map and no relations, so it can be modified without touching the shared
// graph. Otherwise the relation lists are cloned as well. The copy is always
// detached from any Graph.
func (n *Item) Copy(dataOnly bool) *Item {
	c := NewItem(n.ID, maps.Clone(n.Data))
	if !dataOnly {
		c.children = slices.Clone(n.children)
		c.parents = slices.Clone(n.parents)
	}
	return c
}

func (n *Item) clearRelations() {
	n.children = nil
	n.parents = nil
}
