// Package spawn computes, for every area of a nav mesh, the shortest
// path distance from each team's nearest spawn point: the spec's
// component F, grounded directly on the original get_distances_from_spawns
// routine.
package spawn

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/arl/meetpoint/internal/geom"
	"github.com/arl/meetpoint/internal/navmesh"
)

// Team distinguishes the two sides a spawn point belongs to.
type Team int

const (
	CT Team = iota
	T
)

// Spawns holds the spawn points for both teams, as decoded from the
// textual spawn format.
type Spawns struct {
	CT []geom.Position
	T  []geom.Position
}

type spawnsJSON struct {
	CT []positionJSON `json:"CT"`
	T  []positionJSON `json:"T"`
}

type positionJSON struct {
	X, Y, Z float64
}

// LoadSpawnsJSON reads the {CT: [...], T: [...]} spawn point format.
func LoadSpawnsJSON(r io.Reader) (*Spawns, error) {
	var doc spawnsJSON
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("spawn: decode spawns: %w", err)
	}
	return &Spawns{CT: toPositions(doc.CT), T: toPositions(doc.T)}, nil
}

func toPositions(ps []positionJSON) []geom.Position {
	out := make([]geom.Position, len(ps))
	for i, p := range ps {
		out[i] = geom.NewPosition(p.X, p.Y, p.Z)
	}
	return out
}

// SpawnDistance is the shortest-path distance and route from the
// nearest spawn point of one team to one area.
type SpawnDistance struct {
	AreaID   uint32
	Distance float64
	Path     []uint32
}

// SpawnDistances holds every area's SpawnDistance for both teams,
// sorted ascending by distance.
type SpawnDistances struct {
	CT []SpawnDistance
	T  []SpawnDistance
}

// ComputeSpawnDistances computes, for every area of nav and each team,
// the minimum-distance path from any of that team's spawn points, in
// parallel across areas.
func ComputeSpawnDistances(nav *navmesh.Nav, spawns *Spawns) (*SpawnDistances, error) {
	areaIDs := make([]uint32, 0, len(nav.Areas))
	for id := range nav.Areas {
		areaIDs = append(areaIDs, id)
	}

	ctDistances := make([]SpawnDistance, len(areaIDs))
	tDistances := make([]SpawnDistance, len(areaIDs))

	group := new(errgroup.Group)
	group.SetLimit(runtime.GOMAXPROCS(0))
	for i, id := range areaIDs {
		i, id := i, id
		group.Go(func() error {
			ctDistances[i] = nearestSpawnDistance(nav, spawns.CT, id)
			tDistances[i] = nearestSpawnDistance(nav, spawns.T, id)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("spawn: compute distances: %w", err)
	}

	sortByDistance(ctDistances)
	sortByDistance(tDistances)

	return &SpawnDistances{CT: ctDistances, T: tDistances}, nil
}

func nearestSpawnDistance(nav *navmesh.Nav, spawnPoints []geom.Position, areaID uint32) SpawnDistance {
	best := navmesh.PathResult{Distance: math.Inf(1)}
	for _, sp := range spawnPoints {
		res := nav.FindPath(navmesh.ByPos(sp), navmesh.ByID(areaID))
		if res.Distance < best.Distance {
			best = res
		}
	}
	return SpawnDistance{AreaID: areaID, Distance: best.Distance, Path: best.Path}
}

func sortByDistance(ds []SpawnDistance) {
	sort.SliceStable(ds, func(i, j int) bool { return ds[i].Distance < ds[j].Distance })
}
