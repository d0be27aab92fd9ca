package recipe

import "encoding/json"

type itemJSON struct {
	Class    string   `json:"class"`
	Name     string   `json:"name"`
	Data     Metadata `json:"data"`
	Children []string `json:"children"`
	Parents  []string `json:"parents"`
}

type quantityJSON struct {
	Item   string  `json:"item"`
	Amount float64 `json:"amount"`
}

type recipeJSON struct {
	Class       string         `json:"class"`
	Name        string         `json:"name"`
	Machine     string         `json:"machine"`
	Rate        float64        `json:"rate"`
	Ingredients []quantityJSON `json:"ingredients"`
	Products    []quantityJSON `json:"products"`
}

// MarshalJSON encodes the item with its relations as ID lists. Lists are
// always arrays, never null.
func (n *Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(itemJSON{
		Class:    n.ID,
		Name:     n.Name(),
		Data:     n.Data,
		Children: nonNil(n.children),
		Parents:  nonNil(n.parents),
	})
}

// MarshalJSON encodes the recipe with its quantities referencing item IDs.
func (r *Recipe) MarshalJSON() ([]byte, error) {
	return json.Marshal(recipeJSON{
		Class:       r.Class,
		Name:        r.Name,
		Machine:     r.Machine,
		Rate:        r.Rate,
		Ingredients: quantitiesJSON(r.ingredients),
		Products:    quantitiesJSON(r.products),
	})
}

func quantitiesJSON(qs []Quantity) []quantityJSON {
	out := make([]quantityJSON, len(qs))
	for i, q := range qs {
		out[i] = quantityJSON{Item: q.Item.ID, Amount: q.Amount}
	}
	return out
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
