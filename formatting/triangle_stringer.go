package formatting

import (
	"fmt"
	"io"

	"github.com/hatchtri/delaunay/types"
)

// TriangleInfoString renders a mesh triangle record's vertex and
// adjacency indices.
func TriangleInfoString(t types.TriangleInfo) string {
	return fmt.Sprintf("TriangleInfo{vertices: [%d, %d, %d], adjacents: [%s, %s, %s]}",
		t.Vertices[0], t.Vertices[1], t.Vertices[2],
		TriIndexString(t.Adjacents[0]), TriIndexString(t.Adjacents[1]), TriIndexString(t.Adjacents[2]))
}

// TriangleString renders an output triangle's corner coordinates.
func TriangleString(t types.Triangle) string {
	return fmt.Sprintf("Triangle{%s, %s, %s}", Vector2String(t.A), Vector2String(t.B), Vector2String(t.C))
}

// WriteTriangle writes an output triangle to a writer.
func WriteTriangle(w io.Writer, t types.Triangle) error {
	_, err := io.WriteString(w, TriangleString(t))
	return err
}
