package viscache

import (
	"github.com/arl/meetpoint/internal/bvh"
	"github.com/arl/meetpoint/internal/constants"
	"github.com/arl/meetpoint/internal/navmesh"
	"github.com/arl/meetpoint/internal/reach"
)

func areaIDs(areas map[uint32]*navmesh.NavArea) []uint32 {
	ids := make([]uint32, 0, len(areas))
	for id := range areas {
		ids = append(ids, id)
	}
	return ids
}

// BuildVisibility computes the all-pairs line-of-sight cache: centroid a
// sees centroid b when the segment between them, raised to eye level, is
// unobstructed in the visibility BVH.
func BuildVisibility(areas map[uint32]*navmesh.NavArea, visibility *bvh.Tree) (*Cache, error) {
	predicate := func(a, b uint32) bool {
		ca, cb := areas[a].Centroid(), areas[b].Centroid()
		from := ca
		from.Z += constants.PlayerEyeLevel
		to := cb
		to.Z += constants.PlayerEyeLevel
		return visibility.ConnectionUnobstructed(from, to)
	}
	return Build(areaIDs(areas), predicate)
}

// BuildWalkability computes the all-pairs double-lift walkability cache
// used by the regularizer's reachability pass.
func BuildWalkability(areas map[uint32]*navmesh.NavArea, walkability *bvh.Tree) (*Cache, error) {
	predicate := func(a, b uint32) bool {
		return reach.DoubleLiftClear(areas[a], areas[b], walkability)
	}
	return Build(areaIDs(areas), predicate)
}
