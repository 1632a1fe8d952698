// Package regularize turns an irregular polygonal nav mesh into a uniform
// grid of tiles, reconstructing per-tile heights by inverse-distance
// weighting and rebuilding connectivity from scratch: the spec's
// component D.
package regularize

import (
	"fmt"

	"github.com/arl/assertgo"
	"github.com/arl/meetpoint/internal/bvh"
	"github.com/arl/meetpoint/internal/navmesh"
	"github.com/arl/meetpoint/internal/viscache"
)

// tile is a single cell of the regularized grid, still indexed by its
// grid position while under construction. A cell may carry more than
// one primary (overlapping floors at different heights commonly share
// the same 2D footprint); each primary emits its own tile.
type tile struct {
	rect      rect
	primaries []*navmesh.NavArea
	extras    []*navmesh.NavArea
}

// BuildTiles rebuilds old's irregular areas into a gridGranularity x
// gridGranularity grid of uniform tiles, reconstructing each tile's z by
// IDW over its primary area's corners (spec.md §4.D steps 1-2). It does not
// yet reconnect the tiles: Connect does that once a walkability cache
// over the returned areas is available, since spec.md §4.E keys that
// cache by the regularized areas' own ids and expects it to be built
// once per (map, granularity) and reused across runs.
func BuildTiles(old map[uint32]*navmesh.NavArea, gridGranularity int) (map[uint32]*navmesh.NavArea, map[uint32]map[uint32]struct{}) {
	assert.True(gridGranularity > 0, "grid granularity must be positive, got %d", gridGranularity)

	tiles := buildGrid(old, gridGranularity)
	return materializeTiles(tiles)
}

// Connect rebuilds connectivity over newAreas from jump reachability
// cleared against walkability, ladder overlap, and the inter-area
// preservation rule (spec.md §4.D steps 3-4). walkability must be a
// cache keyed by newAreas's own ids, as built by viscache.BuildWalkability
// over newAreas (spec.md §4.E) — the caller is expected to load it from
// disk if a prior run already computed it for this (map, granularity)
// pair, or build and persist it otherwise.
func Connect(old map[uint32]*navmesh.NavArea, newAreas map[uint32]*navmesh.NavArea, oldToNew map[uint32]map[uint32]struct{}, walkability *viscache.Cache) {
	addReachabilityConnections(newAreas, walkability)
	preserveInterAreaConnections(old, newAreas, oldToNew)
}

// Regularize is a convenience wrapper around BuildTiles and Connect for
// callers that don't need the walkability cache persisted across runs
// (tests, ad-hoc tooling): it builds the cache over the regularized
// areas in memory via viscache.BuildWalkability and discards it once
// reconnection is done. The CLI pipeline (cmd/nav-analysis) calls
// BuildTiles and Connect directly instead, so it can load a cache a
// previous run already saved.
func Regularize(old map[uint32]*navmesh.NavArea, gridGranularity int, walkability *bvh.Tree) (map[uint32]*navmesh.NavArea, error) {
	newAreas, oldToNew := BuildTiles(old, gridGranularity)

	cache, err := viscache.BuildWalkability(newAreas, walkability)
	if err != nil {
		return nil, fmt.Errorf("regularize: %w", err)
	}

	Connect(old, newAreas, oldToNew, cache)
	return newAreas, nil
}
