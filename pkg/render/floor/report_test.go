package floor

import (
	"strings"
	"testing"
)

func TestReportWarnings(t *testing.T) {
	r := Report{Results: []RoomResult{
		{Index: 0, Name: "Living Room", Status: StatusDrawn},
		{Index: 1, Name: "Kitchen", Status: StatusSkipped, Reason: `missing field "x"`},
		{Index: 2, Type: "bathroom", Status: StatusSkipped, Reason: "non-positive extent 0x5"},
		{Index: 3, Status: StatusSkipped, Reason: "bad entry"},
	}}

	if r.DrawnCount() != 1 {
		t.Errorf("DrawnCount = %d, want 1", r.DrawnCount())
	}
	if got := len(r.Skipped()); got != 3 {
		t.Errorf("len(Skipped) = %d, want 3", got)
	}

	warnings := r.Warnings()
	if len(warnings) != 3 {
		t.Fatalf("Warnings = %v", warnings)
	}
	if !strings.Contains(warnings[0], "Kitchen") || !strings.Contains(warnings[0], "room 1") {
		t.Errorf("warning 0 = %q", warnings[0])
	}
	// Falls back to the type, then to "unnamed".
	if !strings.Contains(warnings[1], "bathroom") {
		t.Errorf("warning 1 = %q", warnings[1])
	}
	if !strings.Contains(warnings[2], "unnamed") {
		t.Errorf("warning 2 = %q", warnings[2])
	}
}

func TestStatusString(t *testing.T) {
	if StatusDrawn.String() != "drawn" || StatusSkipped.String() != "skipped" {
		t.Errorf("Status strings: %v %v", StatusDrawn, StatusSkipped)
	}
}

func TestEmptyReport(t *testing.T) {
	var r Report
	if r.DrawnCount() != 0 || len(r.Skipped()) != 0 || len(r.Warnings()) != 0 {
		t.Error("empty report should have no drawn, skipped, or warnings")
	}
}
