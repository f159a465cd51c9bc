package pipeline

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/planforge/pkg/cache"
	"github.com/matzehuels/planforge/pkg/errors"
)

const testPayload = `{
	"dimensions": {"length": 30, "breadth": 20},
	"rooms": [
		{"name": "Bedroom", "type": "bedroom", "x": 0, "y": 0, "width": 12, "height": 10},
		{"name": "Kitchen", "type": "kitchen", "x": 12, "y": 0, "width": 18, "height": 10},
		{"type": "door", "x": 11, "y": 4, "width": 1, "height": 2}
	]
}`

// fakeGenerator returns a canned payload and counts calls.
type fakeGenerator struct {
	payload string
	err     error
	calls   int
}

func (g *fakeGenerator) GeneratePlan(ctx context.Context, description string) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return g.payload, nil
}

func (g *fakeGenerator) Model() string { return "fake-model" }

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"png", false},
		{"svg", false},
		{"json", false},
		{"dot", false},
		{"pdf", true},
		{"", true},
		{"PNG", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			err := ValidateFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestValidateVizType(t *testing.T) {
	if err := ValidateVizType("floor"); err != nil {
		t.Errorf("ValidateVizType(floor) error = %v", err)
	}
	if err := ValidateVizType("adjacency"); err != nil {
		t.Errorf("ValidateVizType(adjacency) error = %v", err)
	}
	if err := ValidateVizType("tower"); err == nil {
		t.Error("ValidateVizType(tower) expected error")
	}
}

func TestOptionsValidateAndSetDefaults(t *testing.T) {
	opts := Options{Description: "a studio"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}
	if len(opts.VizTypes) != 1 || opts.VizTypes[0] != VizFloor {
		t.Errorf("VizTypes = %v, want [floor]", opts.VizTypes)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatPNG {
		t.Errorf("Formats = %v, want [png]", opts.Formats)
	}

	empty := Options{}
	if err := empty.ValidateAndSetDefaults(); err == nil {
		t.Error("ValidateAndSetDefaults() with no description or payload expected error")
	}

	bad := Options{Description: "x", Formats: []string{"pdf"}}
	if err := bad.ValidateAndSetDefaults(); err == nil {
		t.Error("ValidateAndSetDefaults() with bad format expected error")
	}
}

func TestOptionsThumbnailDefault(t *testing.T) {
	opts := Options{Description: "x", Thumbnail: true}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}
	if opts.ThumbWidth != DefaultThumbWidth {
		t.Errorf("ThumbWidth = %d, want %d", opts.ThumbWidth, DefaultThumbWidth)
	}
}

func TestSupports(t *testing.T) {
	if !Supports(VizFloor, FormatPNG) {
		t.Error("Supports(floor, png) = false")
	}
	if Supports(VizFloor, FormatDOT) {
		t.Error("Supports(floor, dot) = true")
	}
	if !Supports(VizAdjacency, FormatDOT) {
		t.Error("Supports(adjacency, dot) = false")
	}
	if Supports(VizAdjacency, FormatPNG) {
		t.Error("Supports(adjacency, png) = true")
	}
}

func TestArtifactName(t *testing.T) {
	if got := ArtifactName(VizFloor, FormatPNG); got != "floor.png" {
		t.Errorf("ArtifactName() = %q, want %q", got, "floor.png")
	}
}

func TestRunnerExecute(t *testing.T) {
	gen := &fakeGenerator{payload: testPayload}
	runner := NewRunner(gen, nil, nil, quietLogger())

	result, err := runner.Execute(context.Background(), Options{
		Description: "a small apartment",
		Formats:     []string{"png", "json"},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if result.Plan == nil {
		t.Fatal("Execute() returned nil plan")
	}
	if result.Stats.RoomCount != 3 {
		t.Errorf("RoomCount = %d, want 3", result.Stats.RoomCount)
	}
	if result.Stats.DrawnCount != 3 {
		t.Errorf("DrawnCount = %d, want 3", result.Stats.DrawnCount)
	}
	if result.PayloadHash == "" {
		t.Error("Execute() returned empty payload hash")
	}

	png, ok := result.Artifacts["floor.png"]
	if !ok || len(png) == 0 {
		t.Error("Execute() produced no floor.png artifact")
	}
	if !strings.HasPrefix(string(png), "\x89PNG") {
		t.Error("floor.png artifact is not a PNG")
	}
	if _, ok := result.Artifacts["floor.json"]; !ok {
		t.Error("Execute() produced no floor.json artifact")
	}
}

func TestRunnerExecutePayload(t *testing.T) {
	// No generator: the payload is decoded and rendered directly.
	runner := NewRunner(nil, nil, nil, quietLogger())

	result, err := runner.Execute(context.Background(), Options{
		Payload: "```json\n" + testPayload + "\n```",
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if _, ok := result.Artifacts["floor.png"]; !ok {
		t.Error("Execute() produced no floor.png artifact")
	}
	if result.CacheInfo.GenerateHit {
		t.Error("GenerateHit = true for a pre-made payload")
	}
}

func TestRunnerExecuteNoGenerator(t *testing.T) {
	runner := NewRunner(nil, nil, nil, quietLogger())

	_, err := runner.Execute(context.Background(), Options{Description: "a loft"})
	if err == nil {
		t.Fatal("Execute() without generator or payload expected error")
	}
}

func TestRunnerExecuteMalformed(t *testing.T) {
	gen := &fakeGenerator{payload: "this is not json"}
	runner := NewRunner(gen, nil, nil, quietLogger())

	_, err := runner.Execute(context.Background(), Options{Description: "x"})
	if !errors.Is(err, errors.ErrCodeMalformedResponse) {
		t.Errorf("Execute() error = %v, want MALFORMED_RESPONSE", err)
	}
}

func TestRunnerExecuteIncompleteSchema(t *testing.T) {
	gen := &fakeGenerator{payload: `{"rooms": []}`}
	runner := NewRunner(gen, nil, nil, quietLogger())

	_, err := runner.Execute(context.Background(), Options{Description: "x"})
	if !errors.Is(err, errors.ErrCodeIncompleteSchema) {
		t.Errorf("Execute() error = %v, want INCOMPLETE_SCHEMA", err)
	}
}

func TestRunnerExecuteGeneratorError(t *testing.T) {
	gen := &fakeGenerator{err: fmt.Errorf("quota exceeded")}
	runner := NewRunner(gen, nil, nil, quietLogger())

	_, err := runner.Execute(context.Background(), Options{Description: "x"})
	if err == nil {
		t.Fatal("Execute() expected error from generator")
	}
}

func TestRunnerGenerationCache(t *testing.T) {
	gen := &fakeGenerator{payload: testPayload}
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	runner := NewRunner(gen, fc, nil, quietLogger())
	opts := Options{Description: "a cached apartment"}

	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if first.CacheInfo.GenerateHit {
		t.Error("first run reported a cache hit")
	}

	second, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !second.CacheInfo.GenerateHit {
		t.Error("second run did not hit the cache")
	}
	if gen.calls != 1 {
		t.Errorf("generator called %d times, want 1", gen.calls)
	}

	// Refresh bypasses the cache and re-generates.
	opts.Refresh = true
	third, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if third.CacheInfo.GenerateHit {
		t.Error("refresh run reported a cache hit")
	}
	if gen.calls != 2 {
		t.Errorf("generator called %d times, want 2", gen.calls)
	}
}

func TestRunnerAdjacencyDOT(t *testing.T) {
	gen := &fakeGenerator{payload: testPayload}
	runner := NewRunner(gen, nil, nil, quietLogger())

	result, err := runner.Execute(context.Background(), Options{
		Description: "x",
		VizTypes:    []string{VizAdjacency},
		Formats:     []string{FormatDOT},
	})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	dot, ok := result.Artifacts["adjacency.dot"]
	if !ok {
		t.Fatal("Execute() produced no adjacency.dot artifact")
	}
	if !strings.Contains(string(dot), "graph floorplan") {
		t.Errorf("adjacency.dot missing graph header: %s", dot)
	}
	if _, ok := result.Artifacts["adjacency.png"]; ok {
		t.Error("Execute() produced an unsupported adjacency.png artifact")
	}
}

func TestRunnerSkippedRooms(t *testing.T) {
	payload := `{
		"dimensions": {"length": 20, "breadth": 20},
		"rooms": [
			{"name": "Good", "type": "bedroom", "x": 0, "y": 0, "width": 10, "height": 10},
			{"name": "Broken", "type": "kitchen", "x": 10, "y": 0, "width": 10}
		]
	}`
	gen := &fakeGenerator{payload: payload}
	runner := NewRunner(gen, nil, nil, quietLogger())

	result, err := runner.Execute(context.Background(), Options{Description: "x"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.Stats.DrawnCount != 1 {
		t.Errorf("DrawnCount = %d, want 1", result.Stats.DrawnCount)
	}
	if result.Stats.SkippedCount != 1 {
		t.Errorf("SkippedCount = %d, want 1", result.Stats.SkippedCount)
	}
	if len(result.Report.Warnings()) != 1 {
		t.Errorf("Warnings() = %v, want one entry", result.Report.Warnings())
	}
}
