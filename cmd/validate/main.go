// Command validate checks a JSON point set (and any hole polygons) for
// triangulation-readiness without running the full triangulation.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hatchtri/delaunay/types"
	"github.com/hatchtri/delaunay/validation"
)

var (
	requireCCW = flag.Bool("require-ccw", true, "Require hole polygons to be wound CCW")
	minArea    = flag.Float64("min-area", 0, "Minimum hole polygon area")
)

type pointSet struct {
	Points [][2]float64   `json:"points"`
	Holes  [][][2]float64 `json:"holes"`
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <points.json>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Validates a point set's hole polygons.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	filename := flag.Arg(0)
	log.Printf("Loading point set from %s...", filename)

	file, err := os.Open(filename)
	if err != nil {
		log.Fatalf("Failed to open file: %v", err)
	}
	defer file.Close()

	var ps pointSet
	if err := json.NewDecoder(file).Decode(&ps); err != nil {
		log.Fatalf("Failed to parse JSON: %v", err)
	}

	log.Printf("Loaded %d points, %d hole(s)", len(ps.Points), len(ps.Holes))

	if len(ps.Points) < 3 {
		log.Printf("❌ At least 3 outer points are required, got %d", len(ps.Points))
		os.Exit(1)
	}

	var opts []validation.PolygonOption
	opts = append(opts, validation.WithRequireCCW(*requireCCW))
	if *minArea > 0 {
		opts = append(opts, validation.WithPolygonMinArea(float32(*minArea)))
	}

	failures := 0
	for i, hole := range ps.Holes {
		poly := toVectors(hole)
		result := validation.HolePolygonDetailed(poly, opts...)
		if result.Valid {
			log.Printf("✓ Hole #%d: %s", i, result)
		} else {
			failures++
			log.Printf("❌ Hole #%d: %s", i, result)
		}
	}

	if failures > 0 {
		log.Printf("\n❌ %d of %d hole polygon(s) failed validation", failures, len(ps.Holes))
		os.Exit(1)
	}
	log.Println("\n✓ Point set is valid")
}

func toVectors(pts [][2]float64) []types.Vector2 {
	out := make([]types.Vector2, len(pts))
	for i, p := range pts {
		out[i] = types.Vector2{X: float32(p[0]), Y: float32(p[1])}
	}
	return out
}
