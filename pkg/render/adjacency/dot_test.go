package adjacency

import (
	"strings"
	"testing"

	"github.com/matzehuels/planforge/pkg/plan"
)

func f(v float64) *float64 { return &v }

func TestSharesWall(t *testing.T) {
	tests := []struct {
		name string
		a, b plan.Rect
		want bool
	}{
		{"side by side", plan.Rect{X: 0, Y: 0, W: 10, H: 10}, plan.Rect{X: 10, Y: 0, W: 10, H: 10}, true},
		{"stacked", plan.Rect{X: 0, Y: 0, W: 10, H: 10}, plan.Rect{X: 0, Y: 10, W: 10, H: 5}, true},
		{"partial overlap wall", plan.Rect{X: 0, Y: 0, W: 10, H: 10}, plan.Rect{X: 10, Y: 5, W: 5, H: 10}, true},
		{"corner contact only", plan.Rect{X: 0, Y: 0, W: 10, H: 10}, plan.Rect{X: 10, Y: 10, W: 5, H: 5}, false},
		{"apart", plan.Rect{X: 0, Y: 0, W: 10, H: 10}, plan.Rect{X: 20, Y: 0, W: 5, H: 5}, false},
		{"overlapping interiors", plan.Rect{X: 0, Y: 0, W: 10, H: 10}, plan.Rect{X: 5, Y: 5, W: 10, H: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sharesWall(tt.a, tt.b); got != tt.want {
				t.Errorf("sharesWall(%+v, %+v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Symmetric.
			if got := sharesWall(tt.b, tt.a); got != tt.want {
				t.Errorf("sharesWall not symmetric for %s", tt.name)
			}
		})
	}
}

func TestToDOT(t *testing.T) {
	p := &plan.Plan{
		Dimensions: plan.Dimensions{Length: 20, Breadth: 10},
		Rooms: []plan.Room{
			{Name: "Living Room", Type: "living_room", X: f(0), Y: f(0), Width: f(10), Height: f(10)},
			{Name: "Kitchen", Type: "kitchen", X: f(10), Y: f(0), Width: f(10), Height: f(10)},
			{Type: "door", X: f(9.5), Y: f(4), Width: f(1), Height: f(2)},
			{Name: "Broken", Type: "bedroom"}, // no geometry
		},
	}

	dot := ToDOT(p, Options{})

	if !strings.Contains(dot, "graph floorplan {") {
		t.Error("missing graph header")
	}
	if !strings.Contains(dot, `room_0 [label="Living Room"`) {
		t.Errorf("missing living room node:\n%s", dot)
	}
	if !strings.Contains(dot, "room_0 -- room_1;") {
		t.Errorf("living room and kitchen share a wall:\n%s", dot)
	}
	if strings.Contains(dot, "room_3") {
		t.Error("room without geometry should be left out")
	}
	if !strings.Contains(dot, "shape=ellipse") {
		t.Error("door should be drawn as an ellipse")
	}
}

func TestToDOTDetailed(t *testing.T) {
	p := &plan.Plan{
		Rooms: []plan.Room{
			{Name: "Bath", Type: "bathroom", X: f(2), Y: f(3), Width: f(5), Height: f(4)},
		},
	}

	dot := ToDOT(p, Options{Detailed: true})
	if !strings.Contains(dot, "5x4 @ (2,3)") {
		t.Errorf("detailed label missing geometry:\n%s", dot)
	}
}
