package regularize

import (
	"math"
	"sort"

	"github.com/arl/meetpoint/internal/geom"
	"github.com/arl/meetpoint/internal/navmesh"
)

// buildGrid partitions the 2D bounding box of old's areas into
// granularity x granularity cells and classifies every area against
// every overlapping cell as either one of its primaries (every area
// whose polygon contains the cell's center — spec.md §4.D allows more
// than one, since overlapping floors at different heights commonly
// share the same 2D footprint) or one of its extras (areas that overlap
// the cell without containing its center). Cells with no overlapping
// area at all are dropped.
func buildGrid(old map[uint32]*navmesh.NavArea, granularity int) []*tile {
	minX, maxX, minY, maxY := boundingBox(old)
	width := (maxX - minX) / float64(granularity)
	height := (maxY - minY) / float64(granularity)

	// Iterate areas in a fixed order so that, for a cell overlapped by
	// several areas, which ones land in primaries vs extras is
	// deterministic across runs; map iteration order is not.
	ids := make([]uint32, 0, len(old))
	for id := range old {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var tiles []*tile
	for row := 0; row < granularity; row++ {
		for col := 0; col < granularity; col++ {
			r := rect{
				minX: minX + float64(col)*width,
				maxX: minX + float64(col+1)*width,
				minY: minY + float64(row)*height,
				maxY: minY + float64(row+1)*height,
			}
			cx, cy := (r.minX+r.maxX)/2, (r.minY+r.maxY)/2

			t := &tile{rect: r}
			for _, id := range ids {
				area := old[id]
				if area.Contains(geom.NewPosition(cx, cy, 0)) {
					t.primaries = append(t.primaries, area)
				} else if polygonIntersectsRect(area.Corners, r) {
					t.extras = append(t.extras, area)
				}
			}

			if len(t.primaries) == 0 {
				if len(t.extras) == 0 {
					continue
				}
				promoted := closestByCentroid(t.extras, cx, cy)
				t.extras = removeArea(t.extras, promoted)
				t.primaries = []*navmesh.NavArea{promoted}
			}

			tiles = append(tiles, t)
		}
	}
	return tiles
}

func boundingBox(areas map[uint32]*navmesh.NavArea) (minX, maxX, minY, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, area := range areas {
		for _, c := range area.Corners {
			minX, maxX = math.Min(minX, c.X), math.Max(maxX, c.X)
			minY, maxY = math.Min(minY, c.Y), math.Max(maxY, c.Y)
		}
	}
	return
}

func closestByCentroid(candidates []*navmesh.NavArea, x, y float64) *navmesh.NavArea {
	best := candidates[0]
	bestDist := best.CentroidDistance2D(geom.NewPosition(x, y, best.Centroid().Z))
	for _, c := range candidates[1:] {
		d := c.CentroidDistance2D(geom.NewPosition(x, y, c.Centroid().Z))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func removeArea(areas []*navmesh.NavArea, target *navmesh.NavArea) []*navmesh.NavArea {
	out := areas[:0]
	for _, a := range areas {
		if a != target {
			out = append(out, a)
		}
	}
	return out
}
