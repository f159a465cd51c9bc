// Package plan defines the floor-plan data model and its validation rules.
//
// A Plan is the normalized form of the structured payload produced by the
// text-generation collaborator: overall dimensions in feet plus an ordered
// list of rectangular rooms. Validation is deliberately two-staged:
//
//   - [Decode] rejects a payload only when it cannot be parsed at all or
//     when one of the two required top-level sections (dimensions, rooms)
//     is absent. These are plan-level failures.
//   - Per-room field problems (missing or mistyped geometry) are not fatal.
//     They are carried inside the Room and surface at render time as a
//     skipped room, so one bad entry never sinks the whole plan.
package plan

import (
	"encoding/json"

	"github.com/matzehuels/planforge/pkg/errors"
)

// TypeDoor is the special room category rendered as a solid unlabeled
// block (fill color doubles as the outline color).
const TypeDoor = "door"

// Dimensions is the overall footprint of the plan in feet.
type Dimensions struct {
	Length  float64 `json:"length"`
	Breadth float64 `json:"breadth"`
}

// Plan is a validated floor plan ready for rendering.
//
// Rooms keep their payload order; the renderer paints them in that order,
// so later rooms occlude earlier ones where they overlap. Non-overlap is a
// best-effort property of the generated payload, not an invariant this
// package checks.
type Plan struct {
	Dimensions Dimensions `json:"dimensions"`
	Rooms      []Room     `json:"rooms"`
}

// Room is one rectangular element of a Plan.
//
// Geometry fields are pointers because the payload may omit them; whether
// a room is drawable is decided per room at render time via [Room.Rect].
type Room struct {
	Name   string   `json:"name,omitempty"`
	Type   string   `json:"type,omitempty"`
	X      *float64 `json:"x,omitempty"`
	Y      *float64 `json:"y,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`

	// decodeErr records an entry that could not be decoded at all.
	// The room survives so the renderer can report it as skipped.
	decodeErr error
}

// roomAlias mirrors Room for decoding without recursing into UnmarshalJSON.
type roomAlias struct {
	Name   string   `json:"name"`
	Type   string   `json:"type"`
	X      *float64 `json:"x"`
	Y      *float64 `json:"y"`
	Width  *float64 `json:"width"`
	Height *float64 `json:"height"`
}

// UnmarshalJSON decodes a room entry tolerantly: a malformed entry is kept
// with its decode error recorded instead of failing the surrounding plan.
func (r *Room) UnmarshalJSON(data []byte) error {
	var a roomAlias
	if err := json.Unmarshal(data, &a); err != nil {
		r.decodeErr = err
		return nil
	}
	r.Name = a.Name
	r.Type = a.Type
	r.X, r.Y, r.Width, r.Height = a.X, a.Y, a.Width, a.Height
	return nil
}

// MarshalJSON encodes the room without the internal decode state.
func (r Room) MarshalJSON() ([]byte, error) {
	return json.Marshal(roomAlias{
		Name: r.Name, Type: r.Type,
		X: r.X, Y: r.Y, Width: r.Width, Height: r.Height,
	})
}

// Rect is a room's rectangle in plan-space (feet).
type Rect struct {
	X, Y, W, H float64
}

// Rect returns the room's plan-space rectangle, or an error describing why
// the room is not drawable: a failed entry decode, a missing geometry
// field, or a non-positive extent.
func (r *Room) Rect() (Rect, error) {
	if r.decodeErr != nil {
		return Rect{}, errors.Wrap(errors.ErrCodeInvalidInput, r.decodeErr, "room entry is not an object of the expected shape")
	}
	switch {
	case r.X == nil:
		return Rect{}, errors.New(errors.ErrCodeInvalidInput, "missing field %q", "x")
	case r.Y == nil:
		return Rect{}, errors.New(errors.ErrCodeInvalidInput, "missing field %q", "y")
	case r.Width == nil:
		return Rect{}, errors.New(errors.ErrCodeInvalidInput, "missing field %q", "width")
	case r.Height == nil:
		return Rect{}, errors.New(errors.ErrCodeInvalidInput, "missing field %q", "height")
	}
	if *r.Width <= 0 || *r.Height <= 0 {
		return Rect{}, errors.New(errors.ErrCodeInvalidInput, "non-positive extent %gx%g", *r.Width, *r.Height)
	}
	return Rect{X: *r.X, Y: *r.Y, W: *r.Width, H: *r.Height}, nil
}

// IsDoor reports whether the room is a doorway marker.
func (r *Room) IsDoor() bool {
	return r.Type == TypeDoor
}
