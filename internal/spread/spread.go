// Package spread merges two per-team spawn-distance frontiers into a
// sequence of frames, each reporting newly reached areas and any
// freshly discovered visibility pairs between the two sides: the spec's
// component G, the "spread generator".
package spread

import (
	"math"

	"github.com/arl/meetpoint/internal/spawn"
)

// Style selects a visibility-reporting policy for the generator.
type Style int

const (
	// Rough suppresses visibility pairs downstream of an
	// already-spotted chokepoint on the reaching path, and never clears
	// its accumulated visibility_connections between frames.
	Rough Style = iota
	// Fine reports every non-redundant pair at full time resolution
	// and clears visibility_connections on every emitted frame.
	Fine
)

// VisibilityChecker answers whether two areas see each other. A
// *viscache.Cache satisfies this via CacheChecker.
type VisibilityChecker interface {
	Visible(a, b uint32) bool
}

// AreaRef names one area reached along one team's path to it.
type AreaRef struct {
	Area uint32   `json:"area"`
	Path []uint32 `json:"path"`
}

// VisibilityConnection is one (owner, spotted) pair: owner is the side
// whose newly reached area made the spotted area visible.
type VisibilityConnection [2]AreaRef

// SpreadFrame is one step of the merged CT/T frontier advance.
type SpreadFrame struct {
	NewMarkedAreasCT      []uint32               `json:"new_marked_areas_ct"`
	NewMarkedAreasT       []uint32               `json:"new_marked_areas_t"`
	VisibilityConnections []VisibilityConnection `json:"visibility_connections"`
}

// Generate merges ctList and tList (each sorted ascending by distance,
// as produced by spawn.ComputeSpawnDistances) into a sequence of
// SpreadFrames under the given visibility policy.
func Generate(ctList, tList []spawn.SpawnDistance, cache VisibilityChecker, style Style) []SpreadFrame {
	var frames []SpreadFrame

	iCT, iT := 0, 0
	var prevCT, prevT []spawn.SpawnDistance
	spottedCT := make(map[uint32]bool)
	spottedT := make(map[uint32]bool)
	var lastPlotted float64

	var newMarkedCT, newMarkedT []uint32
	var visibilityConnections []VisibilityConnection

	for iCT < len(ctList) || iT < len(tList) {
		var cur spawn.SpawnDistance
		ctTurn := false
		switch {
		case iT >= len(tList):
			ctTurn = true
		case iCT >= len(ctList):
			ctTurn = false
		default:
			ctTurn = ctList[iCT].Distance <= tList[iT].Distance
		}

		if ctTurn {
			cur = ctList[iCT]
			iCT++
		} else {
			cur = tList[iT]
			iT++
		}

		var ownSpotted, oppSpotted map[uint32]bool
		var ownPrev, oppPrev *[]spawn.SpawnDistance
		if ctTurn {
			newMarkedCT = append(newMarkedCT, cur.AreaID)
			ownSpotted, oppSpotted = spottedCT, spottedT
			ownPrev, oppPrev = &prevCT, &prevT
		} else {
			newMarkedT = append(newMarkedT, cur.AreaID)
			ownSpotted, oppSpotted = spottedT, spottedCT
			ownPrev, oppPrev = &prevT, &prevCT
		}
		*ownPrev = append(*ownPrev, cur)

		if len(cur.Path) >= 2 {
			penultimate := cur.Path[len(cur.Path)-2]
			if ownSpotted[penultimate] {
				ownSpotted[cur.AreaID] = true
			}
		}

		var visible []spawn.SpawnDistance
		if style == Rough {
			visible = roughVisible(cur, *oppPrev, ownSpotted, cache)
		} else {
			visible = fineVisible(cur, *oppPrev, ownSpotted, oppSpotted, cache)
		}

		for _, v := range visible {
			oppSpotted[v.AreaID] = true
			visibilityConnections = append(visibilityConnections, VisibilityConnection{
				{Area: cur.AreaID, Path: cur.Path},
				{Area: v.AreaID, Path: v.Path},
			})
		}
		if len(visible) > 0 {
			ownSpotted[cur.AreaID] = true
		}

		if len(visible) > 0 || cur.Distance > lastPlotted+100 {
			frames = append(frames, SpreadFrame{
				NewMarkedAreasCT:      newMarkedCT,
				NewMarkedAreasT:       newMarkedT,
				VisibilityConnections: visibilityConnections,
			})
			newMarkedCT, newMarkedT = nil, nil
			if style == Fine {
				visibilityConnections = nil
			}
			lastPlotted = 100 * math.Ceil(cur.Distance/100)
		}
	}

	frames = append(frames, SpreadFrame{
		NewMarkedAreasCT:      newMarkedCT,
		NewMarkedAreasT:       newMarkedT,
		VisibilityConnections: visibilityConnections,
	})

	return frames
}

// roughVisible implements the Rough policy: if cur's own path already
// runs through a spotted area, the whole path is compromised upstream
// and nothing new is reported. Otherwise every opposing previously
// reached area the cache marks visible is returned, in the ascending
// distance order oppPrev is already kept in.
func roughVisible(cur spawn.SpawnDistance, oppPrev []spawn.SpawnDistance, ownSpotted map[uint32]bool, cache VisibilityChecker) []spawn.SpawnDistance {
	for _, id := range cur.Path {
		if ownSpotted[id] {
			return nil
		}
	}

	var visible []spawn.SpawnDistance
	for _, o := range oppPrev {
		if cache.Visible(cur.AreaID, o.AreaID) {
			visible = append(visible, o)
		}
	}
	return visible
}

// fineVisible implements the Fine policy: every opposing previously
// reached area is reported unless both cur and it are already spotted
// by each other's side, and the cache marks them visible. Reads no
// mutable state beyond what's passed in, so a caller may run this over
// disjoint cur values concurrently.
func fineVisible(cur spawn.SpawnDistance, oppPrev []spawn.SpawnDistance, ownSpotted, oppSpotted map[uint32]bool, cache VisibilityChecker) []spawn.SpawnDistance {
	curSpotted := ownSpotted[cur.AreaID]

	var visible []spawn.SpawnDistance
	for _, o := range oppPrev {
		if curSpotted && oppSpotted[o.AreaID] {
			continue
		}
		if cache.Visible(cur.AreaID, o.AreaID) {
			visible = append(visible, o)
		}
	}
	return visible
}
