package ui

import "github.com/samdwyer/tuskwalk/internal/world"

// Camera follows the player across a world larger than the terminal.
// It implements entity.Focuser.
type Camera struct {
	center world.GridCoordinates
	target world.GridCoordinates
	speed  int // Cells per frame the camera may move toward its target
}

// NewCamera creates a camera that eases toward its target at speed cells per frame.
func NewCamera(speed int) *Camera {
	if speed < 1 {
		speed = 1
	}
	return &Camera{speed: speed}
}

// Focus sets the point to follow. snap jumps straight to it.
func (c *Camera) Focus(pos world.GridCoordinates, snap bool) {
	c.target = pos
	if snap {
		c.center = pos
	}
}

// Center returns where the camera currently looks.
func (c *Camera) Center() world.GridCoordinates { return c.center }

// Step moves the camera one frame toward its target.
func (c *Camera) Step() {
	c.center.X = approach(c.center.X, c.target.X, c.speed)
	c.center.Z = approach(c.center.Z, c.target.Z, c.speed)
}

// Viewport maps grid coordinates onto a view of the given size.
// North is up, so higher z values are drawn on lower rows.
type Viewport struct {
	Left   int // Leftmost visible x
	Bottom int // Lowest visible z
	Width  int
	Height int
}

// Viewport returns the visible window for a view of viewW by viewH cells
// over a world of worldW by worldH, clamped so it never shows past the edges.
func (c *Camera) Viewport(viewW, viewH, worldW, worldH int) Viewport {
	return Viewport{
		Left:   clampInt(c.center.X-viewW/2, 0, max(0, worldW-viewW)),
		Bottom: clampInt(c.center.Z-viewH/2, 0, max(0, worldH-viewH)),
		Width:  viewW,
		Height: viewH,
	}
}

// ToScreen converts coordinates to a column and row inside the view.
func (v Viewport) ToScreen(pos world.GridCoordinates) (col, row int, ok bool) {
	col = pos.X - v.Left
	row = v.Height - 1 - (pos.Z - v.Bottom)
	ok = col >= 0 && col < v.Width && row >= 0 && row < v.Height
	return col, row, ok
}

// ToGrid converts a view column and row back to grid coordinates.
func (v Viewport) ToGrid(col, row int) world.GridCoordinates {
	return world.GridCoordinates{X: v.Left + col, Z: v.Bottom + v.Height - 1 - row}
}

func approach(from, to, step int) int {
	switch {
	case to > from+step:
		return from + step
	case to < from-step:
		return from - step
	default:
		return to
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
