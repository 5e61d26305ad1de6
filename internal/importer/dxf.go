package importer

import (
	"fmt"
	"math"

	"github.com/Salmanisco/silicon-calc/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// point is a 2D coordinate in drawing units.
type point struct {
	x, y float64
}

// seg is a line segment between two points, used for chaining disconnected
// LINE entities into closed openings.
type seg struct {
	start point
	end   point
}

// chainTolerance is the maximum endpoint distance (in drawing units) for two
// segments to be considered connected.
const chainTolerance = 0.01

// ImportDXF reads window openings from a DXF elevation drawing. Every closed
// LWPOLYLINE, and every closed loop chained from LINE entities, becomes a
// window sized by its bounding box. unitsPerMeter converts drawing units to
// meters (1000 for mm drawings, 100 for cm, 1 for meters). Openings with
// identical rounded dimensions are merged into a single entry with an
// increased quantity.
func ImportDXF(path string, unitsPerMeter float64) ImportResult {
	result := ImportResult{}

	if unitsPerMeter <= 0 {
		result.Errors = append(result.Errors, "Drawing units per meter must be positive")
		return result
	}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var loops [][]point
	var segments []seg
	skipped := 0

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			pts := make([]point, 0, len(e.Vertices))
			for _, v := range e.Vertices {
				pts = append(pts, point{x: v[0], y: v[1]})
			}
			if len(pts) >= 3 {
				loops = append(loops, pts)
			} else {
				result.Warnings = append(result.Warnings,
					"Skipped LWPOLYLINE with fewer than 3 vertices")
			}

		case *entity.Line:
			segments = append(segments, seg{
				start: point{x: e.Start[0], y: e.Start[1]},
				end:   point{x: e.End[0], y: e.End[1]},
			})

		default:
			// Circles, arcs, text, and other entities do not describe
			// rectangular openings
			skipped++
		}
	}

	if skipped > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Skipped %d unsupported entities", skipped))
	}

	loops = append(loops, chainSegments(segments, chainTolerance)...)

	if len(loops) == 0 {
		result.Errors = append(result.Errors, "No closed shapes found in DXF file")
		return result
	}

	// Aggregate openings with the same rounded size into one entry.
	// Sizes are keyed at centimeter resolution.
	type size struct {
		w, h int
	}
	counts := map[size]int{}
	var order []size

	for _, loop := range loops {
		minX, minY, maxX, maxY := bounds(loop)
		width := (maxX - minX) / unitsPerMeter
		height := (maxY - minY) / unitsPerMeter

		if width < 0.01 || height < 0.01 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped degenerate shape (%.3f x %.3f m)", width, height))
			continue
		}

		key := size{w: int(math.Round(width * 100)), h: int(math.Round(height * 100))}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	if len(order) == 0 {
		result.Errors = append(result.Errors, "No usable openings found in DXF file")
		return result
	}

	for i, key := range order {
		result.Entries = append(result.Entries, model.NewWindowEntry(
			fmt.Sprintf("Opening %d", i+1),
			float64(key.w)/100,
			float64(key.h)/100,
			counts[key],
		))
	}

	return result
}

// bounds returns the bounding box of a point loop.
func bounds(pts []point) (minX, minY, maxX, maxY float64) {
	minX, minY = pts[0].x, pts[0].y
	maxX, maxY = pts[0].x, pts[0].y
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.x)
		minY = math.Min(minY, p.y)
		maxX = math.Max(maxX, p.x)
		maxY = math.Max(maxY, p.y)
	}
	return minX, minY, maxX, maxY
}

func near(a, b point, tol float64) bool {
	return math.Abs(a.x-b.x) <= tol && math.Abs(a.y-b.y) <= tol
}

// chainSegments connects individual LINE segments into closed loops.
// Open chains are discarded; only loops that return to their starting point
// within the tolerance are kept.
func chainSegments(segs []seg, tol float64) [][]point {
	used := make([]bool, len(segs))
	var loops [][]point

	for i := range segs {
		if used[i] {
			continue
		}
		used[i] = true
		chain := []point{segs[i].start, segs[i].end}

		for {
			tail := chain[len(chain)-1]
			extended := false

			for j := range segs {
				if used[j] {
					continue
				}
				switch {
				case near(segs[j].start, tail, tol):
					chain = append(chain, segs[j].end)
					used[j] = true
					extended = true
				case near(segs[j].end, tail, tol):
					chain = append(chain, segs[j].start)
					used[j] = true
					extended = true
				}
				if extended {
					break
				}
			}

			if !extended {
				break
			}
			if near(chain[len(chain)-1], chain[0], tol) {
				break
			}
		}

		if len(chain) >= 4 && near(chain[len(chain)-1], chain[0], tol) {
			loops = append(loops, chain[:len(chain)-1])
		}
	}

	return loops
}
