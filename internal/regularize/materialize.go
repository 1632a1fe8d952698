package regularize

import (
	"math"

	"github.com/arl/meetpoint/internal/constants"
	"github.com/arl/meetpoint/internal/geom"
	"github.com/arl/meetpoint/internal/navmesh"
)

// materializeTiles reconstructs, for every primary of every tile, a z by
// inverse-distance weighting over that primary's own corners, absorbs
// extras whose centroid z is within a jump's reach of that
// reconstructed height, and emits one flat, four-cornered NavArea per
// primary (spec.md §4.D step 1: "multiple primaries per cell are
// allowed... each emits its own tile"), reindexed 0..N-1. It also
// returns, for every original area id, the set of new tile indices that
// claimed it — needed by the inter-area preservation pass.
func materializeTiles(tiles []*tile) (map[uint32]*navmesh.NavArea, map[uint32]map[uint32]struct{}) {
	newAreas := make(map[uint32]*navmesh.NavArea)
	oldToNew := make(map[uint32]map[uint32]struct{})

	claim := func(oldID, newID uint32) {
		set, ok := oldToNew[oldID]
		if !ok {
			set = make(map[uint32]struct{})
			oldToNew[oldID] = set
		}
		set[newID] = struct{}{}
	}

	var newID uint32
	for _, t := range tiles {
		cx, cy := (t.rect.minX+t.rect.maxX)/2, (t.rect.minY+t.rect.maxY)/2

		for _, primary := range t.primaries {
			samples := make([]geom.WeightedSample, len(primary.Corners))
			for i, c := range primary.Corners {
				samples[i] = geom.WeightedSample{X: c.X, Y: c.Y, Z: c.Z}
			}
			repLevel := math.Round(geom.InverseDistanceWeighting(samples, cx, cy)*100) / 100

			orig := map[uint32]struct{}{primary.ID: {}}
			var ladAbove, ladBelow []uint32
			ladAbove = append(ladAbove, primary.LaddersAbove...)
			ladBelow = append(ladBelow, primary.LaddersBelow...)

			for _, extra := range t.extras {
				if math.Abs(extra.Centroid().Z-repLevel) <= constants.JumpHeight {
					orig[extra.ID] = struct{}{}
					ladAbove = append(ladAbove, extra.LaddersAbove...)
					ladBelow = append(ladBelow, extra.LaddersBelow...)
				}
			}

			corners := []geom.Position{
				geom.NewPosition(t.rect.minX, t.rect.minY, repLevel),
				geom.NewPosition(t.rect.maxX, t.rect.minY, repLevel),
				geom.NewPosition(t.rect.maxX, t.rect.maxY, repLevel),
				geom.NewPosition(t.rect.minX, t.rect.maxY, repLevel),
			}
			area := navmesh.NewNavArea(newID, primary.DynamicAttributeFlags, corners)
			area.LaddersAbove = ladAbove
			area.LaddersBelow = ladBelow
			newAreas[newID] = area

			for oldID := range orig {
				claim(oldID, newID)
			}

			newID++
		}
	}

	return newAreas, oldToNew
}
