package formatting

import (
	"fmt"

	"github.com/hatchtri/delaunay/types"
)

// VertexIDString renders a vertex index, or "nil" for types.NilVertex.
func VertexIDString(v types.VertexID) string {
	if v == types.NilVertex {
		return "nil"
	}
	return fmt.Sprintf("%d", int(v))
}

// TriIndexString renders a triangle index, or "nil" for types.NilTri.
func TriIndexString(t types.TriIndex) string {
	if t == types.NilTri {
		return "nil"
	}
	return fmt.Sprintf("%d", int(t))
}
