package formatting

import (
	"fmt"
	"io"

	"github.com/hatchtri/delaunay/types"
)

// Vector2String returns a concise string representation of a point.
func Vector2String(p types.Vector2) string {
	return fmt.Sprintf("(%.6g, %.6g)", p.X, p.Y)
}

// WriteVector2 writes a verbose representation of a point to a writer.
func WriteVector2(w io.Writer, p types.Vector2) error {
	_, err := fmt.Fprintf(w, "Vector2{X: %v, Y: %v}", p.X, p.Y)
	return err
}
