// Command triangulate-svg triangulates a JSON point set and renders the
// result as an SVG image, for visually inspecting a triangulation.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ajstarks/svgo"
	"github.com/hatchtri/delaunay"
	"github.com/hatchtri/delaunay/types"
)

var (
	output      = flag.String("output", "", "Output SVG file (default: input.svg)")
	width       = flag.Int("width", 1024, "Output image width")
	height      = flag.Int("height", 1024, "Output image height")
	maxArea     = flag.Float64("max-area", 0, "Maximum triangle area for refinement (0 disables)")
	drawVerts   = flag.Bool("vertices", true, "Draw vertices")
	triangleFill = flag.String("fill", "none", "Triangle fill color")
)

// pointSet is the on-disk JSON shape accepted by this tool: a list of
// outer points plus zero or more hole loops.
type pointSet struct {
	Points [][2]float64   `json:"points"`
	Holes  [][][2]float64 `json:"holes"`
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <points.json>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Triangulates a point set and writes an SVG rendering.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	inputFile := flag.Arg(0)
	outputFile := *output
	if outputFile == "" {
		outputFile = trimExt(inputFile) + ".svg"
	}

	log.Printf("Loading points from %s...", inputFile)
	ps, err := loadPointSet(inputFile)
	if err != nil {
		log.Fatalf("Failed to load point set: %v", err)
	}

	points := toVectors(ps.Points)
	holes := make([][]types.Vector2, len(ps.Holes))
	for i, h := range ps.Holes {
		holes[i] = toVectors(h)
	}

	var opts []delaunay.Option
	if *maxArea > 0 {
		opts = append(opts, delaunay.WithMaxTriangleArea(float32(*maxArea)))
	}

	log.Printf("Triangulating %d points, %d holes...", len(points), len(holes))
	triangles, err := delaunay.Triangulate(points, holes, opts...)
	if err != nil {
		log.Fatalf("Triangulation failed: %v", err)
	}
	log.Printf("Produced %d triangles", len(triangles))

	out, err := os.Create(outputFile)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer out.Close()

	bounds := types.BoundingBox(points)
	canvas := svg.New(out)
	canvas.Start(*width, *height)
	canvas.Rect(0, 0, *width, *height, "fill:white")

	projector := newProjector(bounds, *width, *height)

	for _, t := range triangles {
		xs := []int{projector.x(t.A.X), projector.x(t.B.X), projector.x(t.C.X)}
		ys := []int{projector.y(t.A.Y), projector.y(t.B.Y), projector.y(t.C.Y)}
		style := fmt.Sprintf("fill:%s;stroke:black;stroke-width:1", *triangleFill)
		canvas.Polygon(xs, ys, style)
	}

	if *drawVerts {
		for _, p := range points {
			canvas.Circle(projector.x(p.X), projector.y(p.Y), 3, "fill:blue")
		}
	}

	canvas.End()
	log.Printf("✓ Wrote %s", outputFile)
}

type projector struct {
	bounds        types.AABB
	width, height int
}

func newProjector(bounds types.AABB, width, height int) projector {
	return projector{bounds: bounds, width: width, height: height}
}

func (p projector) x(v float32) int {
	w := p.bounds.Width()
	if w == 0 {
		w = 1
	}
	return int((v - p.bounds.Min.X) / w * float32(p.width))
}

func (p projector) y(v float32) int {
	h := p.bounds.Height()
	if h == 0 {
		h = 1
	}
	// SVG y grows downward; flip so the image matches Cartesian input.
	return p.height - int((v-p.bounds.Min.Y)/h*float32(p.height))
}

func loadPointSet(filename string) (pointSet, error) {
	file, err := os.Open(filename)
	if err != nil {
		return pointSet{}, err
	}
	defer file.Close()

	var ps pointSet
	if err := json.NewDecoder(file).Decode(&ps); err != nil {
		return pointSet{}, err
	}
	return ps, nil
}

func toVectors(pts [][2]float64) []types.Vector2 {
	out := make([]types.Vector2, len(pts))
	for i, p := range pts {
		out[i] = types.Vector2{X: float32(p[0]), Y: float32(p[1])}
	}
	return out
}

func trimExt(filename string) string {
	for i := len(filename) - 1; i >= 0 && filename[i] != '/'; i-- {
		if filename[i] == '.' {
			return filename[:i]
		}
	}
	return filename
}
