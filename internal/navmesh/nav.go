package navmesh

import (
	"math"

	"github.com/arl/assertgo"
	"github.com/arl/meetpoint/internal/constants"
	"github.com/arl/meetpoint/internal/geom"
)

// Nav is a navigation mesh: a set of areas plus the directed, time-weighted
// graph mirroring their connection lists. It is built once from a mapping
// of area id to NavArea and is read-only thereafter.
type Nav struct {
	Version    uint32
	SubVersion uint32
	IsAnalyzed bool
	Areas      map[uint32]*NavArea

	graph *graph
}

// New builds a Nav over areas, deriving the graph's edges from each area's
// Connections list. Edge weight from u to v is the 2D distance between
// centroids, divided by the average of the two endpoints' relative speed
// (CROUCHING_SPEED/RUNNING_SPEED if that endpoint requires crouch, else
// 1.0) — reproducing the reference weighting exactly, including crediting
// the slowdown from both endpoints rather than just the traversed one.
//
// New asserts that every connection id is a known area: spec.md classifies
// this as a programmer error (component error category (d)), not a
// recoverable input fault.
func New(version, subVersion uint32, areas map[uint32]*NavArea, isAnalyzed bool) *Nav {
	g := newGraph()
	for id := range areas {
		g.addNode(id)
	}

	for id, area := range areas {
		for _, connID := range area.Connections {
			other, ok := areas[connID]
			assert.True(ok, "area %d has a connection to unknown area %d", id, connID)

			dist := area.Centroid().Distance2D(other.Centroid())
			relSpeed := func(a *NavArea) float64 {
				if a.RequiresCrouch() {
					return constants.CrouchingSpeed / constants.RunningSpeed
				}
				return 1.0
			}
			avgRelSpeed := (relSpeed(area) + relSpeed(other)) / 2
			g.addEdge(id, connID, dist/avgRelSpeed)
		}
	}

	return &Nav{
		Version:    version,
		SubVersion: subVersion,
		IsAnalyzed: isAnalyzed,
		Areas:      areas,
		graph:      g,
	}
}

// FindArea returns the area whose polygon contains position, preferring,
// among all such areas, the one whose centroid z is closest to position.z.
func (n *Nav) FindArea(position geom.Position) (*NavArea, bool) {
	var best *NavArea
	bestDZ := math.Inf(1)
	for _, a := range n.Areas {
		if !a.Contains(position) {
			continue
		}
		dz := math.Abs(a.Centroid().Z - position.Z)
		if dz < bestDZ {
			bestDZ = dz
			best = a
		}
	}
	return best, best != nil
}

// FindClosestAreaByCentroid returns the area whose centroid is 2D-closest
// to position. Areas must be non-empty.
func (n *Nav) FindClosestAreaByCentroid(position geom.Position) *NavArea {
	assert.True(len(n.Areas) > 0, "FindClosestAreaByCentroid requires at least one area")

	var best *NavArea
	bestDist := math.Inf(1)
	for _, a := range n.Areas {
		d := a.CentroidDistance2D(position)
		if d < bestDist {
			bestDist = d
			best = a
		}
	}
	return best
}

// resolveArea resolves an AreaIdent to a concrete area id: Id idents pass
// through unchanged, Pos idents resolve via polygon containment, falling
// back to the closest area by centroid distance.
func (n *Nav) resolveArea(ident AreaIdent) uint32 {
	if !ident.isPos {
		return ident.id
	}
	if a, ok := n.FindArea(ident.pos); ok {
		return a.ID
	}
	return n.FindClosestAreaByCentroid(ident.pos).ID
}

func (n *Nav) distHeuristic(a, b uint32) float64 {
	return n.Areas[a].Centroid().Distance2D(n.Areas[b].Centroid())
}

// pathCost sums edge weights over consecutive windows of ids.
func (n *Nav) pathCost(ids []uint32) float64 {
	var total float64
	for i := 0; i+1 < len(ids); i++ {
		w, ok := n.graph.edgeWeight(ids[i], ids[i+1])
		assert.True(ok, "missing edge weight for %d -> %d", ids[i], ids[i+1])
		total += w
	}
	return total
}

// PathResult is the outcome of FindPath: the ordered area ids on the path
// and a distance, tie-aware per spec.md §4.C.
type PathResult struct {
	Path     []uint32
	Distance float64
}

// FindPath finds the shortest path between start and end, each given
// either as an area id or a raw position. If no path exists, it returns an
// empty path and +Inf distance.
//
// The returned Distance favors whatever literal coordinates the caller
// supplied over the discretized area centroids. For paths of at most two
// areas it is the 2D distance between the two positions when both are
// positions, between the position and the other area's centroid when
// exactly one is, and the A* cost when both are ids. For longer paths it
// is a start segment (start position to the second area's centroid, or
// the first edge cost for an id), plus the edge costs between the second
// and the second-to-last area, plus an end segment (second-to-last
// area's centroid to the end position; an id end adds nothing, since its
// window holds a single area). This "windows" rule is reproduced verbatim
// from spec.md; its asymmetric treatment of the two end segments is a
// deliberate Open Question resolution, not a bug.
func (n *Nav) FindPath(start, end AreaIdent) PathResult {
	startID := n.resolveArea(start)
	endID := n.resolveArea(end)

	path, cost, ok := aStar(n.graph, startID, endID, func(id uint32) float64 {
		return n.distHeuristic(id, endID)
	})
	if !ok {
		return PathResult{Path: nil, Distance: math.Inf(1)}
	}

	var totalDistance float64
	if len(path) <= 2 {
		switch {
		case start.isPos && end.isPos:
			totalDistance = start.pos.Distance2D(end.pos)
		case !start.isPos && !end.isPos:
			totalDistance = cost
		case start.isPos && !end.isPos:
			totalDistance = start.pos.Distance2D(n.Areas[endID].Centroid())
		default: // !start.isPos && end.isPos
			totalDistance = n.Areas[startID].Centroid().Distance2D(end.pos)
		}
	} else {
		var startDistance float64
		if start.isPos {
			startDistance = start.pos.Distance2D(n.Areas[path[1]].Centroid())
		} else {
			startDistance = n.pathCost(path[0:2])
		}

		middleDistance := n.pathCost(path[1 : len(path)-1])

		var endDistance float64
		if end.isPos {
			endDistance = n.Areas[path[len(path)-2]].Centroid().Distance2D(end.pos)
		} else {
			endDistance = n.pathCost(path[len(path)-2 : len(path)-1])
		}

		totalDistance = startDistance + middleDistance + endDistance
	}

	return PathResult{Path: path, Distance: totalDistance}
}
