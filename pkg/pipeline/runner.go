package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/planforge/pkg/cache"
	"github.com/matzehuels/planforge/pkg/observability"
	"github.com/matzehuels/planforge/pkg/plan"
	"github.com/matzehuels/planforge/pkg/render/adjacency"
	"github.com/matzehuels/planforge/pkg/render/floor"
	"github.com/matzehuels/planforge/pkg/render/floor/sink"
)

// Generator produces a layout payload from a natural-language description.
// The pipeline treats the response as opaque text until the decode stage.
type Generator interface {
	// GeneratePlan generates a layout payload for the description.
	GeneratePlan(ctx context.Context, description string) (string, error)

	// Model identifies the underlying model, used for cache keys.
	Model() string
}

// Runner encapsulates pipeline execution with caching.
// Both CLI and server can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the generator, cache and logger - it
// doesn't store pipeline results. Multiple goroutines can safely use the
// same Runner with different options.
type Runner struct {
	Generator Generator
	Cache     cache.Cache
	Keyer     cache.Keyer
	Logger    *log.Logger
}

// NewRunner creates a runner with the given generator and cache.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// The generator may be nil for payload-only rendering.
func NewRunner(gen Generator, c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Generator: gen,
		Cache:     c,
		Keyer:     keyer,
		Logger:    logger,
	}
}

// Execute runs the complete generate → decode → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Generate (or accept a pre-made payload)
	generateStart := time.Now()
	observability.Pipeline().OnGenerateStart(ctx, r.model())
	payload, generateHit, err := r.GenerateWithCacheInfo(ctx, opts)
	observability.Pipeline().OnGenerateComplete(ctx, r.model(), generateHit, time.Since(generateStart), err)
	if err != nil {
		return nil, err
	}
	result.Payload = payload
	result.PayloadHash = cache.Hash([]byte(payload))
	result.Stats.GenerateTime = time.Since(generateStart)
	result.CacheInfo.GenerateHit = generateHit

	if opts.Payload == "" {
		r.Logger.Info("generated layout",
			"model", r.Generator.Model(),
			"cached", generateHit,
			"duration", result.Stats.GenerateTime)
	}

	// Stage 2: Decode
	decodeStart := time.Now()
	p, err := plan.Decode(payload)
	if err != nil {
		observability.Pipeline().OnDecodeComplete(ctx, 0, err)
		return nil, err
	}
	observability.Pipeline().OnDecodeComplete(ctx, len(p.Rooms), nil)
	result.Plan = p
	result.Stats.DecodeTime = time.Since(decodeStart)
	result.Stats.RoomCount = len(p.Rooms)

	r.Logger.Info("decoded plan",
		"length", p.Dimensions.Length,
		"breadth", p.Dimensions.Breadth,
		"rooms", len(p.Rooms))

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.VizTypes, opts.Formats)
	err = r.render(p, opts, result)
	observability.Pipeline().OnRenderComplete(ctx,
		result.Stats.DrawnCount, result.Stats.SkippedCount, time.Since(renderStart), err)
	if err != nil {
		return nil, err
	}
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"artifacts", len(result.Artifacts),
		"drawn", result.Stats.DrawnCount,
		"skipped", result.Stats.SkippedCount,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// GenerateWithCacheInfo obtains the layout payload, from the options'
// pre-made payload, the cache, or the generator, and reports whether the
// response came from cache.
func (r *Runner) GenerateWithCacheInfo(ctx context.Context, opts Options) (string, bool, error) {
	if opts.Payload != "" {
		return opts.Payload, false, nil
	}
	if r.Generator == nil {
		return "", false, fmt.Errorf("no generator configured (pass a payload to render offline)")
	}

	cacheKey := r.Keyer.GenerationKey(r.Generator.Model(), opts.Description)

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "gen")
			return string(data), true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "gen")
	}

	text, err := r.Generator.GeneratePlan(ctx, opts.Description)
	if err != nil {
		return "", false, err
	}

	_ = r.Cache.Set(ctx, cacheKey, []byte(text), cache.TTLGeneration)
	observability.Cache().OnCacheSet(ctx, "gen", len(text))

	return text, false, nil
}

// model names the generator's model, or "payload" when the runner has no
// generator.
func (r *Runner) model() string {
	if r.Generator == nil {
		return "payload"
	}
	return r.Generator.Model()
}

// render fills result.Artifacts and result.Report for the requested
// visualization/format pairs. Unsupported pairs are skipped.
func (r *Runner) render(p *plan.Plan, opts Options, result *Result) error {
	for _, viz := range opts.VizTypes {
		switch viz {
		case VizFloor:
			if err := r.renderFloor(p, opts, result); err != nil {
				return err
			}
		case VizAdjacency:
			if err := r.renderAdjacency(p, opts, result); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Runner) renderFloor(p *plan.Plan, opts Options, result *Result) error {
	rendering, err := floor.Render(p)
	if err != nil {
		return err
	}
	result.Report = rendering.Report
	result.Stats.DrawnCount = rendering.Report.DrawnCount()
	result.Stats.SkippedCount = len(rendering.Report.Skipped())

	for _, warning := range rendering.Report.Warnings() {
		r.Logger.Warn(warning)
	}

	for _, format := range opts.Formats {
		if !Supports(VizFloor, format) {
			r.Logger.Debug("skipping unsupported combination", "viz", VizFloor, "format", format)
			continue
		}

		var data []byte
		switch format {
		case FormatPNG:
			data, err = sink.EncodePNG(rendering)
		case FormatSVG:
			data = sink.RenderSVG(rendering)
		case FormatJSON:
			data, err = sink.RenderJSON(rendering)
		}
		if err != nil {
			return fmt.Errorf("render %s: %w", format, err)
		}
		result.Artifacts[ArtifactName(VizFloor, format)] = data
	}

	if opts.Thumbnail {
		thumb, err := sink.EncodeThumbnailPNG(rendering, opts.ThumbWidth)
		if err != nil {
			return fmt.Errorf("render thumbnail: %w", err)
		}
		result.Artifacts["floor.thumb.png"] = thumb
	}

	return nil
}

func (r *Runner) renderAdjacency(p *plan.Plan, opts Options, result *Result) error {
	dot := adjacency.ToDOT(p, adjacency.Options{Detailed: opts.Detailed})

	for _, format := range opts.Formats {
		if !Supports(VizAdjacency, format) {
			r.Logger.Debug("skipping unsupported combination", "viz", VizAdjacency, "format", format)
			continue
		}

		switch format {
		case FormatDOT:
			result.Artifacts[ArtifactName(VizAdjacency, FormatDOT)] = []byte(dot)
		case FormatSVG:
			svg, err := adjacency.RenderSVG(dot)
			if err != nil {
				return fmt.Errorf("render adjacency: %w", err)
			}
			result.Artifacts[ArtifactName(VizAdjacency, FormatSVG)] = svg
		}
	}

	return nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
