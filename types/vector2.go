package types

// Vector2 represents a position in 2D Cartesian space.
//
// Coordinates use 32-bit float precision, matching the tuned tolerances
// used throughout the predicates package. Equality is bitwise on
// components, not tolerance-based.
//
// Example:
//
//	p := types.Vector2{X: 1.5, Y: 2.3}
//	q := types.Vector2{X: 0.0, Y: 0.0}
type Vector2 struct {
	X float32
	Y float32
}

// Add returns the componentwise sum of v and w.
func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the componentwise difference v - w.
func (v Vector2) Sub(w Vector2) Vector2 {
	return Vector2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns v scaled by s.
func (v Vector2) Scale(s float32) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Div returns v with each component divided by s.
func (v Vector2) Div(s float32) Vector2 {
	return Vector2{X: v.X / s, Y: v.Y / s}
}

// Dot returns the dot product of v and w.
func (v Vector2) Dot(w Vector2) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the z-component of the 3D cross product of v and w,
// treating both as lying in the z=0 plane.
func (v Vector2) Cross(w Vector2) float32 {
	return v.X*w.Y - v.Y*w.X
}

// Midpoint returns the point halfway between v and w.
func (v Vector2) Midpoint(w Vector2) Vector2 {
	return Vector2{X: (v.X + w.X) / 2, Y: (v.Y + w.Y) / 2}
}
