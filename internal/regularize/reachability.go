package regularize

import (
	"github.com/arl/meetpoint/internal/navmesh"
	"github.com/arl/meetpoint/internal/viscache"
)

// addReachabilityConnections links every ordered pair of distinct tiles
// (a, b) for which either a ladder segment is shared, or a can
// ballistically jump to b and the precomputed walkability cache clears
// the double-lift test between them (spec.md §4.D step 3, backed by the
// all-pairs cache of §4.E rather than a fresh bvh.Tree query per pair).
//
// The jump predicate is not symmetric (it depends on the destination's z
// relative to the jump apex), so this tests both (a, b) and (b, a)
// independently rather than treating the pair as unordered; the
// walkability cache itself is symmetric (the double-lift segments it
// tests don't depend on direction), so a single cache lookup serves
// both orderings.
func addReachabilityConnections(areas map[uint32]*navmesh.NavArea, walkability *viscache.Cache) {
	for aID, a := range areas {
		for bID, b := range areas {
			if aID == bID {
				continue
			}
			if laddersOverlap(a, b) || canReach(a, b, aID, bID, walkability) {
				a.Connections = append(a.Connections, bID)
			}
		}
	}
}

func laddersOverlap(a, b *navmesh.NavArea) bool {
	return idSetsIntersect(a.LaddersAbove, b.LaddersBelow) ||
		idSetsIntersect(a.LaddersBelow, b.LaddersAbove)
}

func canReach(a, b *navmesh.NavArea, aID, bID uint32, walkability *viscache.Cache) bool {
	if !a.Centroid().CanJumpTo(b.Centroid()) {
		return false
	}
	clear, _ := walkability.Get(aID, bID)
	return clear
}

func idSetsIntersect(xs, ys []uint32) bool {
	if len(xs) == 0 || len(ys) == 0 {
		return false
	}
	set := make(map[uint32]struct{}, len(xs))
	for _, x := range xs {
		set[x] = struct{}{}
	}
	for _, y := range ys {
		if _, ok := set[y]; ok {
			return true
		}
	}
	return false
}
