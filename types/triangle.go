package types

// TriangleInfo is the mesh-internal representation of a triangle: three
// vertex indices in counter-clockwise order, plus the adjacent triangle
// across each edge.
//
// Adjacents[i] is the triangle sharing edge (Vertices[i], Vertices[i+1 mod 3]),
// or NilTri if that edge currently has no neighbour. Only the outer
// boundary of the super-triangle carries NilTri adjacency; removing the
// super-triangle and hole triangles from the output does not change
// the mesh's adjacency.
type TriangleInfo struct {
	Vertices  [3]VertexID
	Adjacents [3]TriIndex
}

// Edge returns the endpoints of the triangle's local edge i, directed
// the same way the triangle's winding is (Vertices[i] -> Vertices[i+1]).
func (t TriangleInfo) Edge(i int) (VertexID, VertexID) {
	return t.Vertices[i], t.Vertices[(i+1)%3]
}

// IndexOf returns the local vertex slot (0, 1, or 2) of v, or -1 if t
// does not have v as a vertex.
func (t TriangleInfo) IndexOf(v VertexID) int {
	for i, vv := range t.Vertices {
		if vv == v {
			return i
		}
	}
	return -1
}

// Triangle is a finished output triangle: three points by value,
// counter-clockwise, already denormalised to the caller's coordinate
// frame. This is the shape emitted by the top-level triangulation API.
type Triangle struct {
	A, B, C Vector2
}

// Vertices returns the triangle's three corners as an array, in order.
func (t Triangle) Vertices() [3]Vector2 {
	return [3]Vector2{t.A, t.B, t.C}
}
