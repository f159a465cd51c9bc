// Package render contains the visualization renderers.
//
// Two visualizations are supported:
//
//   - [floor]: the primary output. A top-down raster drawing of the plan,
//     rooms filled by category color, labeled, drawn to a fixed scale.
//     The [floor/sink] subpackage encodes a rendering to PNG, SVG or JSON.
//   - [adjacency]: a Graphviz diagram of which rooms share walls, useful
//     for checking a generated layout's structure at a glance.
//
// Renderers are deterministic: the same plan always produces byte-identical
// output, so artifacts can be cached and diffed.
package render
