// Package floor renders a validated floor plan onto a raster canvas.
//
// Rendering is deterministic: the same plan (and label face) always yields
// byte-identical output. Plan-space coordinates in feet are converted to
// pixel-space by the fixed Scale factor. Rooms are painted in plan order,
// so later rooms occlude earlier ones where they overlap. A room whose
// geometry is missing or unusable is skipped and recorded in the Report;
// a single bad room never aborts the whole plan's render.
package floor

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/matzehuels/planforge/pkg/errors"
	"github.com/matzehuels/planforge/pkg/plan"
)

const (
	// Scale converts plan-space feet to pixels.
	Scale = 20.0

	// BorderWidth is the stroke width of the canvas border.
	BorderWidth = 3.0

	// OutlineWidth is the stroke width of room outlines.
	OutlineWidth = 1.0

	// LabelMargin is the inward offset of room labels from the room's
	// top-left corner, in pixels.
	LabelMargin = 5.0
)

var (
	colorWhite = color.RGBA{255, 255, 255, 255}
	colorBlack = color.RGBA{0, 0, 0, 255}
)

// Box is one room resolved to pixel-space, ready for any sink.
type Box struct {
	Index   int     `json:"index"`
	Name    string  `json:"name,omitempty"`
	Type    string  `json:"type,omitempty"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	W       float64 `json:"w"`
	H       float64 `json:"h"`
	Door    bool    `json:"door,omitempty"`
	Labeled bool    `json:"labeled,omitempty"`

	Fill color.RGBA `json:"-"`
}

// Layout is the pixel-space geometry of a rendered plan.
type Layout struct {
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Boxes  []Box `json:"boxes"`
}

// Rendering is the output of one render call: the raster image, the
// pixel-space layout that produced it, and the per-room report.
type Rendering struct {
	Image  *image.RGBA
	Layout Layout
	Report Report
}

// Option configures a render call.
type Option func(*renderer)

type renderer struct {
	face font.Face
}

// WithFontFace overrides the label face. Used by callers that need a
// fixed face (for reproducible output across machines) and by tests.
func WithFontFace(face font.Face) Option {
	return func(r *renderer) { r.face = face }
}

// Render rasterizes a plan.
//
// It fails only at the plan level: a nil plan or missing/non-positive
// dimensions (the validator's structural boundary, re-checked here).
// Everything room-level is contained in the returned Report.
func Render(p *plan.Plan, opts ...Option) (*Rendering, error) {
	if p == nil {
		return nil, errors.New(errors.ErrCodeIncompleteSchema, "no plan to render")
	}
	if p.Dimensions.Length <= 0 || p.Dimensions.Breadth <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidDimensions,
			"dimensions must be positive, got %gx%g", p.Dimensions.Length, p.Dimensions.Breadth)
	}

	r := renderer{}
	for _, opt := range opts {
		opt(&r)
	}
	if r.face == nil {
		r.face = LoadFace(Scale)
	}

	width := int(p.Dimensions.Length * Scale)
	height := int(p.Dimensions.Breadth * Scale)

	dc := gg.NewContext(width, height)
	dc.SetColor(colorWhite)
	dc.Clear()

	dc.SetColor(colorBlack)
	dc.SetLineWidth(BorderWidth)
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	dc.Stroke()

	dc.SetFontFace(r.face)

	out := &Rendering{
		Layout: Layout{Width: width, Height: height},
	}
	for i := range p.Rooms {
		room := &p.Rooms[i]
		result := RoomResult{Index: i, Name: room.Name, Type: room.Type}

		box, err := drawRoom(dc, i, room)
		if err != nil {
			result.Status = StatusSkipped
			result.Reason = errors.UserMessage(err)
		} else {
			result.Status = StatusDrawn
			out.Layout.Boxes = append(out.Layout.Boxes, box)
		}
		out.Report.Results = append(out.Report.Results, result)
	}

	out.Image = dc.Image().(*image.RGBA)
	return out, nil
}

// drawRoom paints a single room and returns its pixel-space box. Any
// failure, including a panicking drawing step, is returned as an error so
// the caller records a skip and moves on.
func drawRoom(dc *gg.Context, index int, room *plan.Room) (box Box, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = errors.New(errors.ErrCodeInternal, "drawing step failed: %v", p)
		}
	}()

	rect, err := room.Rect()
	if err != nil {
		return Box{}, err
	}

	box = Box{
		Index: index,
		Name:  room.Name,
		Type:  room.Type,
		X:     rect.X * Scale,
		Y:     rect.Y * Scale,
		W:     rect.W * Scale,
		H:     rect.H * Scale,
		Door:  room.IsDoor(),
		Fill:  Fill(room.Type),
	}
	box.Labeled = room.Name != "" && !box.Door

	dc.DrawRectangle(box.X, box.Y, box.W, box.H)
	dc.SetColor(box.Fill)
	if box.Door {
		// Doors are solid blocks: fill color doubles as outline color.
		dc.FillPreserve()
		dc.SetLineWidth(OutlineWidth)
		dc.Stroke()
	} else {
		dc.FillPreserve()
		dc.SetColor(colorBlack)
		dc.SetLineWidth(OutlineWidth)
		dc.Stroke()
	}

	if box.Labeled {
		dc.SetColor(colorBlack)
		dc.DrawStringAnchored(room.Name, box.X+LabelMargin, box.Y+LabelMargin, 0, 1)
	}
	return box, nil
}

// Summary returns a one-line description of the rendering for logs.
func (r *Rendering) Summary() string {
	return fmt.Sprintf("%dx%d px, %d drawn, %d skipped",
		r.Layout.Width, r.Layout.Height, r.Report.DrawnCount(), len(r.Report.Skipped()))
}
