// Package recipe models Satisfactory crafting data as a bipartite graph of
// items and recipes.
//
// # Overview
//
// Every craftable or raw resource is an [Item]. Every crafting
// transformation is a [Recipe] that consumes ingredient quantities and yields
// product quantities. Recipes induce a derived relation between items: each
// ingredient of a recipe gets every product of the same recipe as a child,
// and each product gets every ingredient as a parent. Walking children answers
// "what can I make from this"; walking parents answers "what is this made
// from".
//
// # Building a Graph
//
// [Precompute] takes the two tables of a game data export, the class rows
// (item class and display name) and the recipe records, and returns a fully
// linked [Graph]:
//
//	classes := []recipe.ClassRow{{ID: "Desc_OreIron_C", Name: "Iron Ore"}, ...}
//	recipes := recipe.NewRecipeTable()
//	recipes.Set("Recipe_IngotIron_C", recipe.RecipeRecord{...})
//	g, err := recipe.Precompute(classes, recipes)
//
// Items are identified by their class. Recipes are keyed by their own class,
// so a later record with the same class replaces the earlier one and the
// relations are recomputed. A record referencing an unknown item class fails
// the build with an UNKNOWN_ITEM error from [errors].
//
// # Relations
//
// Items store relations as ID lists, never as pointers. The lists keep first
// insertion order and never hold the same ID twice, so re-adding a recipe's
// quantities or calling [Recipe.RedrawNodes] again is a no-op. Use
// [Graph.Children] and [Graph.Parents] to resolve IDs back to items.
//
// # Queries
//
// [Search] and [Between] filter a recipe map by item role and mirror the
// input keys. [Graph.Search] and [Graph.Between] do the same over the whole
// graph and keep recipe insertion order.
//
// [Graph.Chain] finds a shortest production chain between two items and
// [Graph.Loops] lists the groups of items that can be produced from each
// other. Both run on a gonum view of the child relation that is built per
// call.
//
// # Debug Output
//
// [Graph.WriteItem] and [Graph.WriteRecipe] print indented trees for
// inspecting the data by hand. Attributes are printed with sorted keys so the
// output is stable.
//
// # Concurrency
//
// A Graph is built by one goroutine and is read-only afterwards. Once
// [Precompute] returns, all query methods may be called concurrently.
//
// [errors]: github.com/matzehuels/factorygraph/pkg/errors
package recipe
