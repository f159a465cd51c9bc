package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/planforge/pkg/render/floor"
)

// RenderSVG re-expresses a rendered layout as an SVG document with the
// same draw policy as the raster: white background, black border, filled
// room rectangles (doors outlined in their own fill color), labels inset
// from the top-left corner. Output is deterministic.
func RenderSVG(r *floor.Rendering) []byte {
	var buf bytes.Buffer
	w, h := r.Layout.Width, r.Layout.Height

	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n", w, h, w, h)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%d" height="%d" fill="white"/>`+"\n", w, h)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%d" height="%d" fill="none" stroke="black" stroke-width="%g"/>`+"\n",
		w, h, floor.BorderWidth)

	for _, b := range r.Layout.Boxes {
		stroke := "black"
		if b.Door {
			stroke = floor.HexColor(b.Fill)
		}
		fmt.Fprintf(&buf, `  <rect x="%g" y="%g" width="%g" height="%g" fill="%s" stroke="%s" stroke-width="%g"/>`+"\n",
			b.X, b.Y, b.W, b.H, floor.HexColor(b.Fill), stroke, floor.OutlineWidth)

		if b.Labeled {
			fmt.Fprintf(&buf, `  <text x="%g" y="%g" fill="black" font-size="%g" font-family="sans-serif" dominant-baseline="hanging">%s</text>`+"\n",
				b.X+floor.LabelMargin, b.Y+floor.LabelMargin, floor.FontSize(floor.Scale), escapeXML(b.Name))
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
