package spawn

import (
	"math"
	"strings"
	"testing"

	"github.com/arl/meetpoint/internal/geom"
	"github.com/arl/meetpoint/internal/navmesh"
)

func square(id uint32, cx, cy float64, conns []uint32) *navmesh.NavArea {
	corners := []geom.Position{
		geom.NewPosition(cx-5, cy-5, 0),
		geom.NewPosition(cx+5, cy-5, 0),
		geom.NewPosition(cx+5, cy+5, 0),
		geom.NewPosition(cx-5, cy+5, 0),
	}
	a := navmesh.NewNavArea(id, 0, corners)
	a.Connections = conns
	return a
}

func TestLoadSpawnsJSON(t *testing.T) {
	r := strings.NewReader(`{"CT": [{"X":1,"Y":2,"Z":3}], "T": [{"X":4,"Y":5,"Z":6}]}`)
	spawns, err := LoadSpawnsJSON(r)
	if err != nil {
		t.Fatalf("LoadSpawnsJSON: %v", err)
	}
	if len(spawns.CT) != 1 || len(spawns.T) != 1 {
		t.Fatalf("unexpected spawn counts: %+v", spawns)
	}
	if spawns.CT[0] != geom.NewPosition(1, 2, 3) {
		t.Errorf("CT[0] = %+v", spawns.CT[0])
	}
}

func TestComputeSpawnDistancesSortedAscending(t *testing.T) {
	areas := map[uint32]*navmesh.NavArea{
		1: square(1, 0, 0, []uint32{2}),
		2: square(2, 20, 0, []uint32{1, 3}),
		3: square(3, 40, 0, []uint32{2}),
	}
	nav := navmesh.New(0, 0, areas, false)

	spawns := &Spawns{CT: []geom.Position{geom.NewPosition(0, 0, 0)}}

	got, err := ComputeSpawnDistances(nav, spawns)
	if err != nil {
		t.Fatalf("ComputeSpawnDistances: %v", err)
	}
	if len(got.CT) != 3 {
		t.Fatalf("len(CT) = %d, want 3", len(got.CT))
	}
	for i := 1; i < len(got.CT); i++ {
		if got.CT[i].Distance < got.CT[i-1].Distance {
			t.Errorf("CT distances not ascending: %+v", got.CT)
		}
	}
	if got.CT[0].AreaID != 1 || got.CT[0].Distance != 0 {
		t.Errorf("closest area should be 1 at distance 0, got %+v", got.CT[0])
	}
}

func TestComputeSpawnDistancesNoSpawnsIsInfinite(t *testing.T) {
	areas := map[uint32]*navmesh.NavArea{
		1: square(1, 0, 0, nil),
	}
	nav := navmesh.New(0, 0, areas, false)
	spawns := &Spawns{}

	got, err := ComputeSpawnDistances(nav, spawns)
	if err != nil {
		t.Fatalf("ComputeSpawnDistances: %v", err)
	}
	if !math.IsInf(got.CT[0].Distance, 1) {
		t.Errorf("Distance = %v, want +Inf", got.CT[0].Distance)
	}
	if len(got.CT[0].Path) != 0 {
		t.Errorf("Path = %v, want empty", got.CT[0].Path)
	}
}
