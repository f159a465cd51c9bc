// Package adjacency renders a floor plan's room-adjacency graph.
//
// Rooms become nodes and shared wall segments become edges, giving a
// quick structural view of a generated layout: which rooms connect, and
// whether the plan is one connected unit. Door markers are drawn in their
// category color so doorways stand out from plain wall contact.
package adjacency

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/planforge/pkg/plan"
	"github.com/matzehuels/planforge/pkg/render/floor"
)

// contactEps tolerates floating-point jitter in generated coordinates
// when deciding whether two walls touch.
const contactEps = 1e-6

// Options configures adjacency diagram generation.
type Options struct {
	// Detailed includes each room's plan-space rectangle in its label.
	Detailed bool
}

// ToDOT converts a plan to Graphviz DOT format. Rooms without usable
// geometry are left out; the raster renderer is the place that reports
// them.
func ToDOT(p *plan.Plan, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph floorplan {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=12, margin=\"0.15,0.08\"];\n")
	buf.WriteString("\n")

	type placed struct {
		id   string
		rect plan.Rect
		door bool
	}
	var rooms []placed

	for i := range p.Rooms {
		room := &p.Rooms[i]
		rect, err := room.Rect()
		if err != nil {
			continue
		}
		id := fmt.Sprintf("room_%d", i)
		rooms = append(rooms, placed{id: id, rect: rect, door: room.IsDoor()})

		label := room.Name
		if label == "" {
			label = room.Type
		}
		if label == "" {
			label = id
		}
		if opts.Detailed {
			label = fmt.Sprintf("%s\n%gx%g @ (%g,%g)", label, rect.W, rect.H, rect.X, rect.Y)
		}

		fill := floor.HexColor(floor.Fill(room.Type))
		attrs := fmt.Sprintf("label=%q, fillcolor=%q", label, fill)
		if room.IsDoor() {
			attrs += `, shape=ellipse, fontcolor=white`
		}
		fmt.Fprintf(&buf, "  %s [%s];\n", id, attrs)
	}

	buf.WriteString("\n")
	for i := 0; i < len(rooms); i++ {
		for j := i + 1; j < len(rooms); j++ {
			if sharesWall(rooms[i].rect, rooms[j].rect) {
				fmt.Fprintf(&buf, "  %s -- %s;\n", rooms[i].id, rooms[j].id)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// sharesWall reports whether two rectangles touch along a wall segment of
// positive length. Corner-only contact does not count.
func sharesWall(a, b plan.Rect) bool {
	// Vertical walls: a's right edge on b's left edge or vice versa.
	if near(a.X+a.W, b.X) || near(b.X+b.W, a.X) {
		if overlap(a.Y, a.Y+a.H, b.Y, b.Y+b.H) {
			return true
		}
	}
	// Horizontal walls.
	if near(a.Y+a.H, b.Y) || near(b.Y+b.H, a.Y) {
		if overlap(a.X, a.X+a.W, b.X, b.X+b.W) {
			return true
		}
	}
	return false
}

func near(a, b float64) bool {
	d := a - b
	return d < contactEps && d > -contactEps
}

func overlap(a1, a2, b1, b2 float64) bool {
	lo, hi := max(a1, b1), min(a2, b2)
	return hi-lo > contactEps
}

// RenderSVG renders a DOT graph to SVG using in-process Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
