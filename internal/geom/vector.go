// Package geom provides the vector and bounding-box primitives shared by the
// world model and the collision kernel. It has no dependency on networking
// or game rules so it stays trivially unit-testable.
package geom

import "math"

// Vector2D is a point or displacement in the world's coordinate plane.
type Vector2D struct {
	X, Y float64
}

// Add returns v+other.
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v-other.
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns v scaled by s.
func (v Vector2D) Scale(s float64) Vector2D {
	return Vector2D{X: v.X * s, Y: v.Y * s}
}

// Length returns the Euclidean length of v.
func (v Vector2D) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalized returns v scaled to unit length, or the zero vector if v is
// itself the zero vector.
func (v Vector2D) Normalized() Vector2D {
	l := v.Length()
	if l == 0 {
		return Vector2D{}
	}
	return v.Scale(1 / l)
}

// Dot returns the dot product of v and other.
func (v Vector2D) Dot(other Vector2D) float64 {
	return v.X*other.X + v.Y*other.Y
}

// IsCardinalOpposite reports whether v and other are unit cardinal vectors
// pointing in exactly opposite directions (dot product -1, both axes
// aligned). Used to reject instant U-turns through a snake's own neck.
func (v Vector2D) IsCardinalOpposite(other Vector2D) bool {
	return v.Dot(other) == -1
}

// Equal reports whether v and other have identical coordinates.
func (v Vector2D) Equal(other Vector2D) bool {
	return v.X == other.X && v.Y == other.Y
}

// Cardinal unit directions, the only four directions a snake may move in.
var (
	Up    = Vector2D{X: 0, Y: -1}
	Down  = Vector2D{X: 0, Y: 1}
	Left  = Vector2D{X: -1, Y: 0}
	Right = Vector2D{X: 1, Y: 0}
)
