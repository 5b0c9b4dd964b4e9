package types

// AABB represents an axis-aligned bounding box in 2D space, used to
// normalise a point cloud into the unit square and to denormalise
// output triangles back to the caller's coordinate frame.
//
// The bounds are inclusive on all sides. An AABB is valid when
// Min.X <= Max.X and Min.Y <= Max.Y.
type AABB struct {
	Min Vector2
	Max Vector2
}

// Width returns the AABB's extent along X.
func (b AABB) Width() float32 {
	return b.Max.X - b.Min.X
}

// Height returns the AABB's extent along Y.
func (b AABB) Height() float32 {
	return b.Max.Y - b.Min.Y
}

// BoundingBox computes the axis-aligned bounds of a non-empty point set.
func BoundingBox(points []Vector2) AABB {
	b := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		if p.X < b.Min.X {
			b.Min.X = p.X
		}
		if p.Y < b.Min.Y {
			b.Min.Y = p.Y
		}
		if p.X > b.Max.X {
			b.Max.X = p.X
		}
		if p.Y > b.Max.Y {
			b.Max.Y = p.Y
		}
	}
	return b
}
