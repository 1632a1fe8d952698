package regularize

import (
	"sort"

	"github.com/arl/meetpoint/internal/navmesh"
)

// preserveInterAreaConnections walks every connection A -> B in the
// original mesh and, unless some child tile of A already reaches some
// child tile of B, reconnects the three closest child-tile pairs (by 2D
// centroid distance) across the two old areas. Old areas that claimed no
// tile after regularization (because every cell they overlapped picked
// a different primary) contribute no connections and are silently
// skipped, matching the spec's documented non-error for that case.
func preserveInterAreaConnections(old map[uint32]*navmesh.NavArea, newAreas map[uint32]*navmesh.NavArea, oldToNew map[uint32]map[uint32]struct{}) {
	for _, a := range old {
		childrenA := oldToNew[a.ID]
		if len(childrenA) == 0 {
			continue
		}

		for _, bID := range a.Connections {
			b, ok := old[bID]
			if !ok {
				continue
			}
			childrenB := oldToNew[b.ID]
			if len(childrenB) == 0 {
				continue
			}

			if anyConnected(newAreas, childrenA, childrenB) {
				continue
			}

			reconnectClosest(newAreas, childrenA, childrenB)
		}
	}
}

func anyConnected(areas map[uint32]*navmesh.NavArea, from, to map[uint32]struct{}) bool {
	for cA := range from {
		tile := areas[cA]
		for _, conn := range tile.Connections {
			if _, ok := to[conn]; ok {
				return true
			}
		}
	}
	return false
}

type tilePair struct {
	a, b uint32
	dist float64
}

// reconnectClosest adds directed connections for the three closest child
// pairs across from and to (fewer if not enough pairs exist).
func reconnectClosest(areas map[uint32]*navmesh.NavArea, from, to map[uint32]struct{}) {
	var pairs []tilePair
	for cA := range from {
		for cB := range to {
			if cA == cB {
				continue
			}
			d := areas[cA].CentroidDistance2D(areas[cB].Centroid())
			pairs = append(pairs, tilePair{a: cA, b: cB, dist: d})
		}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].dist < pairs[j].dist })

	n := 3
	if len(pairs) < n {
		n = len(pairs)
	}
	for _, p := range pairs[:n] {
		areas[p.a].Connections = append(areas[p.a].Connections, p.b)
	}
}
