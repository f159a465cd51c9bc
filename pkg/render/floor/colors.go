package floor

import (
	"fmt"
	"image/color"
	"maps"
	"slices"
)

// DefaultFill is the fill used when a room's type is absent or unrecognized.
var DefaultFill = color.RGBA{240, 240, 240, 255}

// palette maps room categories to their designated fill colors.
var palette = map[string]color.RGBA{
	"living_room": {255, 200, 200, 255},
	"kitchen":     {200, 255, 200, 255},
	"bedroom":     {200, 200, 255, 255},
	"bathroom":    {255, 255, 200, 255},
	"door":        {100, 50, 0, 255},
	"hallway":     {230, 230, 230, 255},
}

// Fill resolves a room category to its fill color. The lookup is total:
// every category, known or not, resolves to a color.
func Fill(roomType string) color.RGBA {
	if c, ok := palette[roomType]; ok {
		return c
	}
	return DefaultFill
}

// Categories returns the recognized room categories in sorted order.
func Categories() []string {
	return slices.Sorted(maps.Keys(palette))
}

// HexColor formats a color as a #rrggbb string for SVG and JSON output.
func HexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
