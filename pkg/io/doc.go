// Package io reads the game data export and turns it into a recipe graph.
//
// # Overview
//
// A data set consists of two files:
//
//   - a classes table (CSV) mapping item classes to display names
//   - a recipe export (JSON) describing every crafting recipe
//
// [Load] reads both concurrently and hands them to [recipe.Precompute].
// The individual readers are exported for callers that already hold the data
// in memory.
//
// # Classes Table
//
// The first row is a header and is skipped. Every other row needs at least
// two fields:
//
//	class,name
//	Desc_OreIron_C,Iron Ore
//	Desc_IronIngot_C,Iron Ingot
//
// Use [ImportClasses] for a file path or [ReadClasses] for any io.Reader.
//
// # Recipe Export
//
// The export is a JSON object keyed by record ID. Object key order matters:
// when two records share a recipe class the later one wins, so the decoder
// keeps document order:
//
//	{
//	  "Recipe_IngotIron_C": {
//	    "recipeInfo": {"class": "Recipe_IngotIron_C", "name": "Iron Ingot"},
//	    "machine": {"class": ["Build_SmelterMk1_C"]},
//	    "rate": 30,
//	    "ingredients": [{"item": "Desc_OreIron_C", "amount": 1}],
//	    "products": [{"item": "Desc_IronIngot_C", "amount": 1}]
//	  }
//	}
//
// Use [ImportRecipes] for a file path or [ReadRecipes] for any io.Reader.
//
// # Output
//
// [WriteJSON] and the view helpers ([ItemViews], [RecipeViews], [HopViews],
// [LoopViews]) define the JSON documents printed by the CLI and served by
// the HTTP API.
//
// # Errors
//
// Missing files yield FILE_NOT_FOUND and malformed content INVALID_FORMAT
// errors from package errors, wrapped with the offending path.
//
// [recipe.Precompute]: github.com/matzehuels/factorygraph/pkg/recipe.Precompute
package io
