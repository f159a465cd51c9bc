package sink

import (
	"bytes"
	"encoding/json"
	"image/png"
	"strings"
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/matzehuels/planforge/pkg/plan"
	"github.com/matzehuels/planforge/pkg/render/floor"
)

func f(v float64) *float64 { return &v }

func testRendering(t *testing.T) *floor.Rendering {
	t.Helper()
	p := &plan.Plan{
		Dimensions: plan.Dimensions{Length: 10, Breadth: 10},
		Rooms: []plan.Room{
			{Name: "Room A", Type: "bedroom", X: f(0), Y: f(0), Width: f(6), Height: f(10)},
			{Type: "door", X: f(6), Y: f(4), Width: f(1), Height: f(2)},
			{Name: "Broken", Type: "kitchen", X: f(6), Y: f(0)}, // no extent
		},
	}
	r, err := floor.Render(p, floor.WithFontFace(basicfont.Face7x13))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return r
}

func TestEncodePNG(t *testing.T) {
	r := testRendering(t)

	data, err := EncodePNG(r)
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 200 {
		t.Errorf("decoded size = %v, want 200x200", img.Bounds())
	}

	// Deterministic encoding.
	again, err := EncodePNG(r)
	if err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	if !bytes.Equal(data, again) {
		t.Error("EncodePNG should be deterministic")
	}
}

func TestEncodeThumbnailPNG(t *testing.T) {
	r := testRendering(t)

	data, err := EncodeThumbnailPNG(r, 100)
	if err != nil {
		t.Fatalf("EncodeThumbnailPNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 100 {
		t.Errorf("thumb width = %d, want 100", img.Bounds().Dx())
	}
}

func TestRenderSVG(t *testing.T) {
	r := testRendering(t)
	svg := string(RenderSVG(r))

	if !strings.Contains(svg, `viewBox="0 0 200 200"`) {
		t.Errorf("missing viewBox: %s", svg[:100])
	}
	if !strings.Contains(svg, "#c8c8ff") {
		t.Error("bedroom fill color missing from SVG")
	}
	if !strings.Contains(svg, ">Room A</text>") {
		t.Error("room label missing from SVG")
	}
	// The door rect strokes in its own fill color, and doors carry no label.
	if !strings.Contains(svg, `stroke="#643200"`) {
		t.Error("door outline should use the door fill color")
	}
	if strings.Count(svg, "<text") != 1 {
		t.Errorf("want exactly one label, got %d", strings.Count(svg, "<text"))
	}
	// The broken room contributes nothing.
	if strings.Count(svg, "<rect") != 4 { // background + border + 2 rooms
		t.Errorf("want 4 rects, got %d", strings.Count(svg, "<rect"))
	}
}

func TestRenderSVGEscapesLabels(t *testing.T) {
	p := &plan.Plan{
		Dimensions: plan.Dimensions{Length: 5, Breadth: 5},
		Rooms: []plan.Room{
			{Name: "Bed & <Breakfast>", Type: "bedroom", X: f(0), Y: f(0), Width: f(5), Height: f(5)},
		},
	}
	r, err := floor.Render(p, floor.WithFontFace(basicfont.Face7x13))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	svg := string(RenderSVG(r))
	if strings.Contains(svg, "<Breakfast>") {
		t.Error("label must be XML-escaped")
	}
	if !strings.Contains(svg, "&amp;") {
		t.Error("ampersand should be escaped")
	}
}

func TestRenderJSON(t *testing.T) {
	r := testRendering(t)

	data, err := RenderJSON(r)
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	var out struct {
		Width   int     `json:"width"`
		Height  int     `json:"height"`
		Scale   float64 `json:"scale"`
		Boxes   []struct {
			Name string  `json:"name"`
			X    float64 `json:"x"`
			Fill string  `json:"fill"`
			Door bool    `json:"door"`
		} `json:"boxes"`
		Skipped []struct {
			Index  int    `json:"index"`
			Reason string `json:"reason"`
		} `json:"skipped"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if out.Width != 200 || out.Height != 200 || out.Scale != 20 {
		t.Errorf("header = %+v", out)
	}
	if len(out.Boxes) != 2 {
		t.Fatalf("boxes = %d, want 2", len(out.Boxes))
	}
	if out.Boxes[0].Fill != "#c8c8ff" {
		t.Errorf("box 0 fill = %q", out.Boxes[0].Fill)
	}
	if !out.Boxes[1].Door {
		t.Error("box 1 should be a door")
	}
	if len(out.Skipped) != 1 || out.Skipped[0].Index != 2 {
		t.Errorf("skipped = %+v", out.Skipped)
	}
}
