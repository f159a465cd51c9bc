// Package pipeline provides the core floor plan pipeline for Planforge.
//
// This package implements the complete generate → decode → render pipeline
// that can be used by CLI and server components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Generate: Obtain a layout payload from a text-generation model
//     (or accept a pre-made payload and skip this stage entirely)
//  2. Decode: Parse and validate the payload into a plan
//  3. Render: Produce output artifacts in various formats (PNG, SVG, JSON)
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(client, cache, nil, logger)
//	opts := pipeline.Options{
//	    Description: "a two bedroom apartment with a large kitchen",
//	    Model:       "gemini-2.5-flash",
//	    Formats:     []string{"png"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["floor.png"]
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/planforge/pkg/plan"
	"github.com/matzehuels/planforge/pkg/render/floor"
)

// Format constants for output formats.
const (
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// Visualization type constants.
const (
	VizFloor     = "floor"
	VizAdjacency = "adjacency"
)

// DefaultVizType is the default visualization type.
const DefaultVizType = VizFloor

// DefaultThumbWidth is the thumbnail width in pixels when thumbnails
// are requested without an explicit width.
const DefaultThumbWidth = 320

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:  true,
	FormatSVG:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizFloor:     true,
	VizAdjacency: true,
}

// vizFormats maps each visualization type to the formats it can produce.
// Requesting an unsupported combination is not an error: the combination
// is skipped so one Options value can drive several visualizations.
var vizFormats = map[string]map[string]bool{
	VizFloor: {
		FormatPNG:  true,
		FormatSVG:  true,
		FormatJSON: true,
	},
	VizAdjacency: {
		FormatSVG: true,
		FormatDOT: true,
	},
}

// Options contains all configuration for the floor plan pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Generate options
	Description string `json:"description,omitempty"`
	Model       string `json:"model,omitempty"`
	Refresh     bool   `json:"refresh,omitempty"`

	// Payload skips the generate stage: the given text is decoded and
	// rendered directly. Used for offline rendering of saved payloads.
	Payload string `json:"payload,omitempty"`

	// Render options
	VizTypes   []string `json:"viz_types,omitempty"`
	Formats    []string `json:"formats,omitempty"`
	Detailed   bool     `json:"detailed,omitempty"` // Annotate adjacency nodes with sizes
	Thumbnail  bool     `json:"thumbnail,omitempty"`
	ThumbWidth int      `json:"thumb_width,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Payload is the raw layout text the plan was decoded from.
	Payload string

	// PayloadHash is the content hash of the payload.
	PayloadHash string

	// Plan is the decoded layout.
	Plan *plan.Plan

	// Report describes the fate of each room during rendering.
	Report floor.Report

	// Artifacts contains rendered outputs keyed by "<viz>.<format>",
	// e.g. "floor.png" or "adjacency.svg". A thumbnail, when requested,
	// lands under "floor.thumb.png".
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks whether the generation stage hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RoomCount    int
	DrawnCount   int
	SkippedCount int
	GenerateTime time.Duration
	DecodeTime   time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for the pipeline.
type CacheInfo struct {
	GenerateHit bool // Whether the generation response came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: png, svg, json, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return fmt.Errorf("invalid viz_type: %q (must be one of: floor, adjacency)", vizType)
	}
	return nil
}

// ValidateVizTypes checks that all visualization types are valid.
func ValidateVizTypes(vizTypes []string) error {
	for _, v := range vizTypes {
		if err := ValidateVizType(v); err != nil {
			return err
		}
	}
	return nil
}

// Supports reports whether a visualization type can produce a format.
func Supports(vizType, format string) bool {
	return vizFormats[vizType][format]
}

// ValidateAndSetDefaults checks required fields and applies defaults for
// the full pipeline. This method is idempotent - calling it multiple times
// has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Description == "" && o.Payload == "" {
		return fmt.Errorf("description or payload is required")
	}
	o.SetRenderDefaults()
	if err := ValidateVizTypes(o.VizTypes); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.VizTypes) == 0 {
		o.VizTypes = []string{DefaultVizType}
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPNG}
	}
	if o.Thumbnail && o.ThumbWidth == 0 {
		o.ThumbWidth = DefaultThumbWidth
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ArtifactName builds the Artifacts map key for a viz/format pair.
func ArtifactName(vizType, format string) string {
	return vizType + "." + format
}
