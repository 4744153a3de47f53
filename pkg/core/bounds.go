// Package core holds the shared types and error taxonomy for the gesture layer.
package core

// Point represents a coordinate in viewport pixels.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Bounds represents element position and size as reported by the driver.
// Bounds are ephemeral: elements may move or resize between queries, so
// callers must not cache them across driver calls.
type Bounds struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Center returns the center point of the bounds.
// Midpoints use floor division to match driver coordinate semantics.
func (b Bounds) Center() Point {
	return Point{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

// Contains checks if a point is within the bounds.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// Empty reports whether the bounds have zero or negative area.
func (b Bounds) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}
