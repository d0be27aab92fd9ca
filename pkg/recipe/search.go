package recipe

// Role selects which side of a recipe an item is matched against.
type Role uint8

const (
	// AsIngredient matches recipes that consume the item.
	AsIngredient Role = 1 << iota
	// AsProduct matches recipes that produce the item.
	AsProduct

	// AnyRole matches either side.
	AnyRole = AsIngredient | AsProduct
)

// String returns "ingredient", "product", "any" or "none".
func (r Role) String() string {
	switch r & AnyRole {
	case AsIngredient:
		return "ingredient"
	case AsProduct:
		return "product"
	case AnyRole:
		return "any"
	}
	return "none"
}

// Matches reports whether item appears on any side of r selected by roles.
func (r *Recipe) Matches(item *Item, roles Role) bool {
	if roles&AsIngredient != 0 && r.IsIngredient(item) {
		return true
	}
	return roles&AsProduct != 0 && r.IsProduct(item)
}

// Search returns the subset of recipes that consume item (when roles has
// [AsIngredient]) or produce it (when roles has [AsProduct]). Keys are kept
// as given. A zero roles value matches nothing.
func Search(item *Item, recipes map[string]*Recipe, roles Role) map[string]*Recipe {
	out := make(map[string]*Recipe)
	for key, r := range recipes {
		if r.Matches(item, roles) {
			out[key] = r
		}
	}
	return out
}

// Between returns the recipes that consume from and produce to: the
// intersection of an ingredient search for from and a product search for to.
func Between(from, to *Item, recipes map[string]*Recipe) map[string]*Recipe {
	return Search(to, Search(from, recipes, AsIngredient), AsProduct)
}

// Search is the ordered form of the package-level [Search] over all recipes
// of the graph.
func (g *Graph) Search(item *Item, roles Role) []*Recipe {
	var out []*Recipe
	for _, class := range g.recipeOrder {
		if r := g.recipes[class]; r.Matches(item, roles) {
			out = append(out, r)
		}
	}
	return out
}

// Between is the ordered form of the package-level [Between].
func (g *Graph) Between(from, to *Item) []*Recipe {
	var out []*Recipe
	for _, class := range g.recipeOrder {
		if r := g.recipes[class]; r.IsIngredient(from) && r.IsProduct(to) {
			out = append(out, r)
		}
	}
	return out
}
