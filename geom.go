package stagefit

import "math"

// Size is a width/height pair. Design sizes are measured in design units,
// viewport and display sizes in physical pixels.
type Size struct {
	Width, Height float64
}

// Valid reports whether both components are finite and strictly positive.
func (s Size) Valid() bool {
	return validDimension(s.Width) && validDimension(s.Height)
}

func validDimension(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Vec2 is a 2D point in either design or physical coordinates.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle with its origin at the top-left.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies in r, edges included. Hosts use it to
// hit-test pointer positions against DesignViewport.
func (r Rect) Contains(x, y float64) bool {
	dx, dy := x-r.X, y-r.Y
	return dx >= 0 && dy >= 0 && dx <= r.Width && dy <= r.Height
}
