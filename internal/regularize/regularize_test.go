package regularize

import (
	"math"
	"testing"

	"github.com/arl/meetpoint/internal/bvh"
	"github.com/arl/meetpoint/internal/geom"
	"github.com/arl/meetpoint/internal/navmesh"
)

func flatSquare(id uint32, minX, minY, maxX, maxY, z float64) *navmesh.NavArea {
	corners := []geom.Position{
		geom.NewPosition(minX, minY, z),
		geom.NewPosition(maxX, minY, z),
		geom.NewPosition(maxX, maxY, z),
		geom.NewPosition(minX, maxY, z),
	}
	return navmesh.NewNavArea(id, 0, corners)
}

// TestRegularizeZReconstruction reproduces spec.md §8 scenario 6: a flat,
// z=0 square area regularized at a coarse granularity reconstructs a tile
// z of 0.00 via IDW.
func TestRegularizeZReconstruction(t *testing.T) {
	old := map[uint32]*navmesh.NavArea{
		1: flatSquare(1, -100, -100, 100, 100, 0),
	}
	empty := bvh.New(nil)

	result, err := Regularize(old, 2, empty)
	if err != nil {
		t.Fatalf("Regularize: %v", err)
	}
	if len(result) == 0 {
		t.Fatal("expected at least one tile")
	}
	for _, area := range result {
		if math.Abs(area.Centroid().Z) > 1e-9 {
			t.Errorf("tile z = %v, want 0", area.Centroid().Z)
		}
	}
}

func TestRegularizeProducesContiguousIDs(t *testing.T) {
	old := map[uint32]*navmesh.NavArea{
		1: flatSquare(1, -50, -50, 50, 50, 0),
	}
	empty := bvh.New(nil)

	result, err := Regularize(old, 3, empty)
	if err != nil {
		t.Fatalf("Regularize: %v", err)
	}
	for i := uint32(0); i < uint32(len(result)); i++ {
		if _, ok := result[i]; !ok {
			t.Errorf("missing tile id %d in a %d-tile result", i, len(result))
		}
	}
}

// TestRegularizeReachabilityWithinJumpRange verifies that two adjacent
// flat tiles at the same height end up connected by the reachability
// pass (their centroids are well within jump range and the walkability
// tree has no triangles to occlude the clearance lifts).
func TestRegularizeReachabilityWithinJumpRange(t *testing.T) {
	old := map[uint32]*navmesh.NavArea{
		1: flatSquare(1, -100, -100, 100, 100, 0),
	}
	empty := bvh.New(nil)

	result, err := Regularize(old, 2, empty)
	if err != nil {
		t.Fatalf("Regularize: %v", err)
	}

	connected := false
	for _, a := range result {
		if len(a.Connections) > 0 {
			connected = true
			break
		}
	}
	if !connected {
		t.Error("expected at least one reachability connection among adjacent flat tiles")
	}
}

// TestRegularizePreservesInterAreaConnection verifies the fallback
// reconnection rule: two original areas joined by a connection, but far
// enough apart that no child tile pair is in jump range, still end up
// with at least one connection between their respective tile sets after
// regularization.
func TestRegularizePreservesInterAreaConnection(t *testing.T) {
	a := flatSquare(1, -50, -50, 50, 50, 0)
	b := flatSquare(2, 950, -50, 1050, 50, 0)
	a.Connections = []uint32{2}
	old := map[uint32]*navmesh.NavArea{1: a, 2: b}
	empty := bvh.New(nil)

	result, err := Regularize(old, 4, empty)
	if err != nil {
		t.Fatalf("Regularize: %v", err)
	}

	leftIDs, rightIDs := map[uint32]struct{}{}, map[uint32]struct{}{}
	for id, area := range result {
		if area.Centroid().X < 500 {
			leftIDs[id] = struct{}{}
		} else {
			rightIDs[id] = struct{}{}
		}
	}

	found := false
	for id := range leftIDs {
		for _, conn := range result[id].Connections {
			if _, ok := rightIDs[conn]; ok {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected inter-area preservation to reconnect the two far-apart areas")
	}
}

// TestRegularizeEmitsOneTilePerOverlappingFloor covers spec.md §4.D step
// 1's "multiple primaries per cell are allowed... each emits its own
// tile": two floors sharing the same 2D footprint at different heights
// must both survive regularization as distinct tiles, not have one
// silently dropped by whichever area a map iteration happened to visit
// last.
func TestRegularizeEmitsOneTilePerOverlappingFloor(t *testing.T) {
	lower := flatSquare(1, -50, -50, 50, 50, 0)
	upper := flatSquare(2, -50, -50, 50, 50, 300)
	old := map[uint32]*navmesh.NavArea{1: lower, 2: upper}
	empty := bvh.New(nil)

	result, err := Regularize(old, 1, empty)
	if err != nil {
		t.Fatalf("Regularize: %v", err)
	}

	var sawLow, sawHigh bool
	for _, area := range result {
		switch {
		case math.Abs(area.Centroid().Z-0) < 1e-6:
			sawLow = true
		case math.Abs(area.Centroid().Z-300) < 1e-6:
			sawHigh = true
		}
	}
	if !sawLow || !sawHigh {
		t.Errorf("expected both the z=0 and z=300 floors to survive as separate tiles, got %d tile(s)", len(result))
	}
}
