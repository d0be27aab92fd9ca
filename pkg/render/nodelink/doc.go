// Package nodelink renders item neighbourhoods as node-link diagrams.
//
// # Overview
//
// Starting from one item, the package follows products (or ingredients) up
// to a fixed depth and emits a Graphviz graph whose boxes are items and whose
// arrows point from ingredient to product.
//
// # Usage
//
// Convert a neighbourhood to DOT, then optionally render it to SVG:
//
//	dot := nodelink.ToDOT(g, plate, nodelink.Options{Direction: recipe.Up, Depth: 2})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
//   - Direction: recipe.Down follows products, recipe.Up follows ingredients
//   - Depth: number of relation steps from the root
//   - Detailed: adds item classes to labels and recipe names to edges
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is needed.
package nodelink
