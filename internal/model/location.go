package model

import "math"

// Location is a point on the combat plane.
// Value type, passed by value.
type Location struct {
	X float64
	Y float64
}

// NewLocation creates a Location.
func NewLocation(x, y float64) Location {
	return Location{X: x, Y: y}
}

// Offset returns a new Location moved by dx, dy.
func (l Location) Offset(dx, dy float64) Location {
	l.X += dx
	l.Y += dy
	return l
}

// DistanceSquared returns the squared distance to other (no sqrt).
func (l Location) DistanceSquared(other Location) float64 {
	dx := l.X - other.X
	dy := l.Y - other.Y
	return dx*dx + dy*dy
}

// DistanceTo returns the euclidean distance to other.
func (l Location) DistanceTo(other Location) float64 {
	return math.Sqrt(l.DistanceSquared(other))
}
