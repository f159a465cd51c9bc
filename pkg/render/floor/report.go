package floor

import "fmt"

// Status classifies the outcome of drawing one room.
type Status int

const (
	// StatusDrawn means the room was painted onto the canvas.
	StatusDrawn Status = iota
	// StatusSkipped means the room could not be drawn and was left out.
	StatusSkipped
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusDrawn:
		return "drawn"
	case StatusSkipped:
		return "skipped"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// RoomResult is the per-room outcome of a render. A skipped room carries
// the reason it was left out; room-level failures never escalate beyond
// this record.
type RoomResult struct {
	Index  int    `json:"index"`
	Name   string `json:"name,omitempty"`
	Type   string `json:"type,omitempty"`
	Status Status `json:"-"`
	Reason string `json:"reason,omitempty"`
}

// Report accumulates per-room results for one render call.
type Report struct {
	Results []RoomResult
}

// Skipped returns the results for rooms that were not drawn.
func (r Report) Skipped() []RoomResult {
	var out []RoomResult
	for _, res := range r.Results {
		if res.Status == StatusSkipped {
			out = append(out, res)
		}
	}
	return out
}

// DrawnCount returns the number of rooms painted onto the canvas.
func (r Report) DrawnCount() int {
	n := 0
	for _, res := range r.Results {
		if res.Status == StatusDrawn {
			n++
		}
	}
	return n
}

// Warnings formats the skipped results as user-facing warning strings.
func (r Report) Warnings() []string {
	var out []string
	for _, res := range r.Skipped() {
		label := res.Name
		if label == "" {
			label = res.Type
		}
		if label == "" {
			label = "unnamed"
		}
		out = append(out, fmt.Sprintf("room %d (%s): %s", res.Index, label, res.Reason))
	}
	return out
}
