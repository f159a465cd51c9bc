// Package pkg provides the core libraries for Planforge floor plan generation.
//
// # Overview
//
// Planforge turns a natural-language description of a building into a scaled,
// color-coded floor plan drawing. The pkg directory is organized into five
// main areas:
//
//  1. [plan] - Layout payload decoding and validation
//  2. [render] - Raster and diagram rendering (floor, adjacency)
//  3. [integrations] - External API clients (Gemini)
//  4. [cache] - Generation response caching (file, redis, mongo)
//  5. [pipeline] - Orchestration (generate → decode → render)
//
// # Architecture
//
// The typical data flow through Planforge:
//
//	Description
//	         ↓
//	    [integrations/gemini] package (generate a layout payload)
//	         ↓
//	    [plan] package (decode + validate)
//	         ↓
//	    [render/floor] package (draw rooms to scale)
//	         ↓
//	    PNG/SVG/JSON output
//
// # Quick Start
//
// Decode a layout payload and render it:
//
//	import (
//	    "github.com/matzehuels/planforge/pkg/plan"
//	    "github.com/matzehuels/planforge/pkg/render/floor"
//	    "github.com/matzehuels/planforge/pkg/render/floor/sink"
//	)
//
//	// 1. Decode the payload
//	p, _ := plan.Decode(payload)
//
//	// 2. Render the floor plan
//	r, _ := floor.Render(p)
//
//	// 3. Encode to PNG
//	png, _ := sink.EncodePNG(r)
//
// Or run the whole pipeline, model call included, through [pipeline.Runner].
//
// # Supporting Packages
//
//   - [errors]: typed errors with machine-readable codes
//   - [config]: TOML + environment configuration
//   - [observability]: optional instrumentation hooks
//   - [buildinfo]: build-time version information
package pkg
