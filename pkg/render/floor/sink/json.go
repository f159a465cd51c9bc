package sink

import (
	"encoding/json"

	"github.com/matzehuels/planforge/pkg/render/floor"
)

// jsonBox is a Box with the fill color expressed as a hex string.
type jsonBox struct {
	floor.Box
	Fill string `json:"fill"`
}

// jsonLayout is the serialized form of a rendered layout plus the
// per-room results.
type jsonLayout struct {
	Width   int                `json:"width"`
	Height  int                `json:"height"`
	Scale   float64            `json:"scale"`
	Boxes   []jsonBox          `json:"boxes"`
	Skipped []floor.RoomResult `json:"skipped,omitempty"`
}

// RenderJSON serializes the pixel-space layout and the per-room report
// for programmatic consumers. Output is deterministic.
func RenderJSON(r *floor.Rendering) ([]byte, error) {
	out := jsonLayout{
		Width:   r.Layout.Width,
		Height:  r.Layout.Height,
		Scale:   floor.Scale,
		Boxes:   make([]jsonBox, 0, len(r.Layout.Boxes)),
		Skipped: r.Report.Skipped(),
	}
	for _, b := range r.Layout.Boxes {
		out.Boxes = append(out.Boxes, jsonBox{Box: b, Fill: floor.HexColor(b.Fill)})
	}
	return json.MarshalIndent(out, "", "  ")
}
