package formatting

import (
	"fmt"
	"io"

	"github.com/hatchtri/delaunay/types"
)

// EdgeString renders an edge in canonical form.
func EdgeString(e types.Edge) string {
	return fmt.Sprintf("Edge{%d, %d}", e.V1(), e.V2())
}

// WriteEdge writes an edge to a writer.
func WriteEdge(w io.Writer, e types.Edge) error {
	_, err := io.WriteString(w, EdgeString(e))
	return err
}
