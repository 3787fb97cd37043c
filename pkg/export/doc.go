// Package export writes laid-out view trees in formats other tools read.
//
// Every exporter takes the [view.Snapshot] list produced after a scene was
// applied, so cached results can be exported without rebuilding views.
//
//   - [ToDOT] writes Graphviz source with each view pinned at its frame
//   - [RenderSVG] and [RenderPNG] render that source in process
//   - [ToJSON] writes the frames as a JSON document
//   - [ToText] draws the frames as boxes on a character grid
//
// # Coordinates
//
// Layout coordinates grow downward from the top-left corner. Graphviz
// grows upward, so [ToDOT] flips Y against the root height and scales
// layout units to points.
//
// # Dependencies
//
// Rendering uses [github.com/goccy/go-graphviz], which embeds Graphviz
// as WebAssembly; no system installation is needed.
package export
