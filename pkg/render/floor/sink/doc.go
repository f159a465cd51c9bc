// Package sink encodes a rendered floor plan into output formats.
//
// The raster PNG is the primary artifact; SVG and JSON sinks re-express
// the same pixel-space layout for vector display and programmatic use.
package sink
