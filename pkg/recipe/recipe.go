package recipe

import "slices"

// NoMachine is the machine recorded for recipes whose export lists no
// production building.
const NoMachine = "None"

// Recipe is one crafting transformation: it consumes its ingredients and
// yields its products on Machine at Rate.
//
// A recipe owns no items. Its quantities point at items shared with every
// other recipe that mentions them, and adding quantities updates those items'
// relation lists.
type Recipe struct {
	Class   string  // Stable identifier, the key in a Graph
	Name    string  // Display name
	Machine string  // Production building class, or NoMachine
	Rate    float64 // Opaque production rate from the export

	ingredients []Quantity
	products    []Quantity
}

// NewRecipe creates a recipe without ingredients or products.
func NewRecipe(class, name, machine string, rate float64) *Recipe {
	return &Recipe{Class: class, Name: name, Machine: machine, Rate: rate}
}

// Ingredients returns a copy of the ingredient list in insertion order.
func (r *Recipe) Ingredients() []Quantity { return slices.Clone(r.ingredients) }

// Products returns a copy of the product list in insertion order.
func (r *Recipe) Products() []Quantity { return slices.Clone(r.products) }

// AddIngredients appends quantities that are not already listed. Each new
// ingredient is linked to the products known at call time before it is
// appended; products added later are linked by [Recipe.AddProducts] or
// [Recipe.RedrawNodes].
func (r *Recipe) AddIngredients(ingredients ...Quantity) {
	for _, in := range ingredients {
		if in.Item == nil || containsQuantity(r.ingredients, in) {
			continue
		}
		in.Item.AddChildren(r.products...)
		r.ingredients = append(r.ingredients, in)
	}
}

// AddProducts appends quantities that are not already listed and then
// redraws all ingredient/product relations.
func (r *Recipe) AddProducts(products ...Quantity) {
	for _, out := range products {
		if out.Item == nil || containsQuantity(r.products, out) {
			continue
		}
		r.products = append(r.products, out)
	}
	r.RedrawNodes()
}

// RedrawNodes links every ingredient to every product in both directions.
// Relation lists de-duplicate, so calling it again is a no-op.
func (r *Recipe) RedrawNodes() {
	for _, in := range r.ingredients {
		for _, out := range r.products {
			in.Item.AddChildren(out)
			out.Item.AddParents(in)
		}
	}
}

// IsIngredient reports whether item is consumed by the recipe.
func (r *Recipe) IsIngredient(item *Item) bool { return listsItem(r.ingredients, item) }

// IsProduct reports whether item is produced by the recipe.
func (r *Recipe) IsProduct(item *Item) bool { return listsItem(r.products, item) }

// Copy duplicates the recipe. A shallow copy gets fresh quantity slices that
// still point at the shared items. A deep copy points at data-only copies of
// the items instead, one copy per distinct source item, and leaves them
// without relations.
func (r *Recipe) Copy(deep bool) *Recipe {
	c := NewRecipe(r.Class, r.Name, r.Machine, r.Rate)
	if !deep {
		c.ingredients = slices.Clone(r.ingredients)
		c.products = slices.Clone(r.products)
		return c
	}

	copies := make(map[*Item]*Item)
	clone := func(qs []Quantity) []Quantity {
		if qs == nil {
			return nil
		}
		out := make([]Quantity, len(qs))
		for i, q := range qs {
			dup, ok := copies[q.Item]
			if !ok {
				dup = q.Item.Copy(true)
				copies[q.Item] = dup
			}
			out[i] = Quantity{Item: dup, Amount: q.Amount}
		}
		return out
	}
	c.ingredients = clone(r.ingredients)
	c.products = clone(r.products)
	return c
}

func containsQuantity(qs []Quantity, q Quantity) bool {
	return slices.ContainsFunc(qs, q.equal)
}

func listsItem(qs []Quantity, item *Item) bool {
	if item == nil {
		return false
	}
	return slices.ContainsFunc(qs, func(q Quantity) bool { return sameItem(q.Item, item) })
}
