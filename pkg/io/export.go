package io

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/factorygraph/pkg/recipe"
)

// ItemView is the JSON shape of an item listing entry.
type ItemView struct {
	Class string `json:"class"`
	Name  string `json:"name"`
}

// RecipeView is the JSON shape of a recipe listing entry.
type RecipeView struct {
	Class   string `json:"class"`
	Name    string `json:"name"`
	Machine string `json:"machine"`
}

// HopView is the JSON shape of one production chain step.
type HopView struct {
	From    string   `json:"from"`
	To      string   `json:"to"`
	Recipes []string `json:"recipes"`
}

// ItemViews converts items to listing entries.
func ItemViews(items []*recipe.Item) []ItemView {
	out := make([]ItemView, len(items))
	for i, n := range items {
		out[i] = ItemView{Class: n.ID, Name: n.Name()}
	}
	return out
}

// RecipeViews converts recipes to listing entries.
func RecipeViews(recipes []*recipe.Recipe) []RecipeView {
	out := make([]RecipeView, len(recipes))
	for i, r := range recipes {
		out[i] = RecipeView{Class: r.Class, Name: r.Name, Machine: r.Machine}
	}
	return out
}

// HopViews converts a production chain to its JSON form.
func HopViews(hops []recipe.Hop) []HopView {
	out := make([]HopView, len(hops))
	for i, h := range hops {
		classes := make([]string, len(h.Recipes))
		for j, r := range h.Recipes {
			classes[j] = r.Class
		}
		out[i] = HopView{From: h.From.ID, To: h.To.ID, Recipes: classes}
	}
	return out
}

// LoopViews converts production loops to lists of item classes.
func LoopViews(loops [][]*recipe.Item) [][]string {
	out := make([][]string, len(loops))
	for i, loop := range loops {
		ids := make([]string, len(loop))
		for j, n := range loop {
			ids[j] = n.ID
		}
		out[i] = ids
	}
	return out
}

// WriteJSON encodes v as indented JSON and writes it to w. It is the single
// encoder used for CLI --json output and HTTP responses, so both surfaces
// print identical documents.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
