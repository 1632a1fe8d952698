package navmesh

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/arl/meetpoint/internal/geom"
)

// positionJSON mirrors the {x, y, z} corner records of the nav mesh
// format.
type positionJSON struct {
	X, Y, Z float64
}

type navAreaJSON struct {
	AreaID               uint32         `json:"area_id"`
	HullIndex            uint32         `json:"hull_index"`
	DynamicAttributeFlags uint32        `json:"dynamic_attribute_flags"`
	Corners              []positionJSON `json:"corners"`
	Connections          []uint32       `json:"connections"`
	LaddersAbove         []uint32       `json:"ladders_above"`
	LaddersBelow         []uint32       `json:"ladders_below"`
	Centroid             *positionJSON  `json:"centroid,omitempty"`
}

type navJSON struct {
	Version    uint32                 `json:"version"`
	SubVersion uint32                 `json:"sub_version"`
	IsAnalyzed bool                   `json:"is_analyzed"`
	Areas      map[string]navAreaJSON `json:"areas"`
}

// DecodeJSON reads the textual nav mesh format described in spec.md §6:
// version/sub_version/is_analyzed plus an `areas` map keyed by decimal
// string id. Unknown JSON fields are tolerated (encoding/json ignores them
// by default); missing optional fields (hull_index, connections,
// ladders_above/below) default to their zero values.
func DecodeJSON(r io.Reader) (*Nav, error) {
	var doc navJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode nav mesh: %w", err)
	}

	areas := make(map[uint32]*NavArea, len(doc.Areas))
	for key, raw := range doc.Areas {
		id, err := strconv.ParseUint(key, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("decode nav mesh: area key %q is not a decimal id: %w", key, err)
		}
		if uint32(id) != raw.AreaID {
			return nil, fmt.Errorf("decode nav mesh: area key %q does not match area_id %d", key, raw.AreaID)
		}

		corners := make([]geom.Position, len(raw.Corners))
		for i, c := range raw.Corners {
			corners[i] = geom.NewPosition(c.X, c.Y, c.Z)
		}

		area := &NavArea{
			ID:                    raw.AreaID,
			HullIndex:             raw.HullIndex,
			DynamicAttributeFlags: raw.DynamicAttributeFlags,
			Corners:               corners,
			Connections:           raw.Connections,
			LaddersAbove:          raw.LaddersAbove,
			LaddersBelow:          raw.LaddersBelow,
		}
		if raw.Centroid != nil {
			area.centroid = geom.NewPosition(raw.Centroid.X, raw.Centroid.Y, raw.Centroid.Z)
		} else {
			area.RecomputeCentroid()
		}
		areas[uint32(id)] = area
	}

	return New(doc.Version, doc.SubVersion, areas, doc.IsAnalyzed), nil
}
