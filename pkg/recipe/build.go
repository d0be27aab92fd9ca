package recipe

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	fgerrors "github.com/matzehuels/factorygraph/pkg/errors"
)

// ClassRow is one entry of the classes table: an item class and its display
// name. The loader has already dropped the header row.
type ClassRow struct {
	ID   string
	Name string
}

// RecipeRecord mirrors one entry of the recipe export.
type RecipeRecord struct {
	RecipeInfo  RecipeInfo     `json:"recipeInfo"`
	Machine     MachineInfo    `json:"machine"`
	Rate        float64        `json:"rate"`
	Ingredients []AmountRecord `json:"ingredients"`
	Products    []AmountRecord `json:"products"`
}

// RecipeInfo identifies a recipe record.
type RecipeInfo struct {
	Class string `json:"class"`
	Name  string `json:"name"`
}

// MachineInfo lists the buildings able to run a recipe.
type MachineInfo struct {
	Class []string `json:"class"`
}

// AmountRecord references an item class with a quantity.
type AmountRecord struct {
	Item   string  `json:"item"`
	Amount float64 `json:"amount"`
}

// RecipeTable maps record IDs to records in document order, which decides
// which record wins when two share a recipe class.
type RecipeTable = orderedmap.OrderedMap[string, RecipeRecord]

// NewRecipeTable returns an empty table.
func NewRecipeTable() *RecipeTable {
	return orderedmap.New[string, RecipeRecord]()
}

// machineOf picks the first listed building; alternatives are dropped.
func machineOf(m MachineInfo) string {
	if len(m.Class) == 0 {
		return NoMachine
	}
	return m.Class[0]
}

// Precompute builds the item/recipe graph from the two input tables.
//
// Every class row becomes an item with data {class, name}; a repeated class
// keeps its first position and takes the last row's name. Every recipe
// record becomes a recipe keyed by its own recipeInfo.class, not by the
// record ID, so a later record with the same class replaces the earlier one.
// When that happens all item relations are recomputed from the surviving
// recipes.
//
// Ingredients and products are added one at a time and the recipe is
// redrawn afterwards, so every ingredient ends up linked to every product.
//
// A record that references an item missing from classes fails the whole
// build with an UNKNOWN_ITEM error; no partial graph is returned.
func Precompute(classes []ClassRow, recipes *RecipeTable) (*Graph, error) {
	g := New(nil)

	for i, row := range classes {
		data := Metadata{KeyClass: row.ID, KeyName: row.Name}
		if n, ok := g.items[row.ID]; ok {
			n.SetData(data)
			continue
		}
		if err := g.AddItem(NewItem(row.ID, data)); err != nil {
			return nil, fgerrors.Wrap(fgerrors.ErrCodeInvalidInput, err, "class row %d", i+1)
		}
	}

	if recipes == nil {
		return g, nil
	}

	relink := false
	for pair := recipes.Oldest(); pair != nil; pair = pair.Next() {
		r, err := g.buildRecipe(pair.Value)
		if err != nil {
			return nil, err
		}
		if g.AddRecipe(r) {
			relink = true
		}
	}
	if relink {
		g.relink()
	}

	return g, nil
}

func (g *Graph) buildRecipe(rec RecipeRecord) (*Recipe, error) {
	r := NewRecipe(rec.RecipeInfo.Class, rec.RecipeInfo.Name, machineOf(rec.Machine), rec.Rate)

	for _, in := range rec.Ingredients {
		q, err := g.quantity(r.Class, in)
		if err != nil {
			return nil, err
		}
		r.AddIngredients(q)
	}
	for _, out := range rec.Products {
		q, err := g.quantity(r.Class, out)
		if err != nil {
			return nil, err
		}
		r.AddProducts(q)
	}
	r.RedrawNodes()

	return r, nil
}

func (g *Graph) quantity(recipeClass string, a AmountRecord) (Quantity, error) {
	n, ok := g.items[a.Item]
	if !ok {
		return Quantity{}, fgerrors.New(fgerrors.ErrCodeUnknownItem,
			"unknown item id %q in recipe %q", a.Item, recipeClass)
	}
	return Quantity{Item: n, Amount: a.Amount}, nil
}
