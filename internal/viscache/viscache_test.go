package viscache

import (
	"path/filepath"
	"testing"

	"github.com/arl/meetpoint/internal/bvh"
	"github.com/arl/meetpoint/internal/geom"
	"github.com/arl/meetpoint/internal/navmesh"
)

func TestNewKeyIsOrderInsensitive(t *testing.T) {
	if newKey(1, 2) != newKey(2, 1) {
		t.Error("newKey should normalize order")
	}
}

func TestBuildCoversEveryUnorderedPair(t *testing.T) {
	ids := []uint32{1, 2, 3}
	seen := make(map[AreaPairKey]bool)

	cache, err := Build(ids, func(a, b uint32) bool {
		seen[newKey(a, b)] = true
		return a+b > 3
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	want := []AreaPairKey{{1, 2}, {1, 3}, {2, 3}}
	for _, k := range want {
		if _, ok := seen[k]; !ok {
			t.Errorf("pair %+v was never evaluated", k)
		}
	}
	if cache.Len() != 3 {
		t.Errorf("Len() = %d, want 3", cache.Len())
	}
}

func TestGetMissingPair(t *testing.T) {
	cache, err := Build([]uint32{1, 2}, func(a, b uint32) bool { return true })
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, ok := cache.Get(1, 99); ok {
		t.Error("expected a miss for an unknown pair")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cache, err := Build([]uint32{1, 2, 3}, func(a, b uint32) bool { return a == 1 })
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	path := filepath.Join(t.TempDir(), "cache.gob")
	if err := cache.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Len() != cache.Len() {
		t.Fatalf("Len() = %d, want %d", loaded.Len(), cache.Len())
	}
	for k, v := range cache.entries {
		got, ok := loaded.Get(k.A, k.B)
		if !ok || got != v {
			t.Errorf("Get(%d, %d) = %v, %v, want %v, true", k.A, k.B, got, ok, v)
		}
	}
}

func squareArea(id uint32, cx, cy float64) *navmesh.NavArea {
	corners := []geom.Position{
		geom.NewPosition(cx-5, cy-5, 0),
		geom.NewPosition(cx+5, cy-5, 0),
		geom.NewPosition(cx+5, cy+5, 0),
		geom.NewPosition(cx-5, cy+5, 0),
	}
	return navmesh.NewNavArea(id, 0, corners)
}

func TestBuildVisibilityEmptyTreeAllVisible(t *testing.T) {
	areas := map[uint32]*navmesh.NavArea{
		1: squareArea(1, 0, 0),
		2: squareArea(2, 100, 0),
	}
	cache, err := BuildVisibility(areas, bvh.New(nil))
	if err != nil {
		t.Fatalf("BuildVisibility: %v", err)
	}
	v, ok := cache.Get(1, 2)
	if !ok || !v {
		t.Error("expected areas to be mutually visible with an empty occlusion tree")
	}
}

func TestBuildWalkabilityEmptyTreeAllClear(t *testing.T) {
	areas := map[uint32]*navmesh.NavArea{
		1: squareArea(1, 0, 0),
		2: squareArea(2, 50, 0),
	}
	cache, err := BuildWalkability(areas, bvh.New(nil))
	if err != nil {
		t.Fatalf("BuildWalkability: %v", err)
	}
	v, ok := cache.Get(1, 2)
	if !ok || !v {
		t.Error("expected areas to be walkable with an empty occlusion tree")
	}
}
