// Package navmesh models navigation areas and the directed, time-weighted
// graph over them, and solves shortest paths with A*: the spec's
// component C.
package navmesh

import (
	"github.com/arl/assertgo"
	"github.com/arl/meetpoint/internal/constants"
	"github.com/arl/meetpoint/internal/geom"
)

// NavArea is one polygonal walkable region of a navigation mesh.
type NavArea struct {
	ID                    uint32
	HullIndex             uint32
	DynamicAttributeFlags uint32
	Corners               []geom.Position
	Connections           []uint32
	LaddersAbove          []uint32
	LaddersBelow          []uint32

	centroid geom.Position
}

// NewNavArea builds a NavArea and computes its centroid from corners.
func NewNavArea(id uint32, flags uint32, corners []geom.Position) *NavArea {
	a := &NavArea{ID: id, DynamicAttributeFlags: flags, Corners: corners}
	a.RecomputeCentroid()
	return a
}

// RecomputeCentroid recomputes the cached centroid from Corners. Call this
// after mutating Corners directly (e.g. after JSON deserialization, when
// no precomputed centroid field was present).
func (a *NavArea) RecomputeCentroid() {
	if len(a.Corners) == 0 {
		a.centroid = geom.Position{}
		return
	}
	var sum geom.Position
	for _, c := range a.Corners {
		sum = sum.Add(c)
	}
	a.centroid = sum.Scale(1 / float64(len(a.Corners)))
}

// Centroid returns the cached centroid, the arithmetic mean of Corners.
func (a *NavArea) Centroid() geom.Position {
	return a.centroid
}

// RequiresCrouch reports whether this area's dynamic attribute flags mark
// it as crouch-only. The comparison is exact equality against the crouch
// flag constant, not a bitmask test — see constants.CrouchingAttributeFlag.
func (a *NavArea) RequiresCrouch() bool {
	return a.DynamicAttributeFlags == constants.CrouchingAttributeFlag
}

// Contains reports whether point, projected to (x, y), lies inside the
// area's corner polygon. Uses the standard even-odd ray-casting rule; the
// polygon is assumed simple, per the NavArea invariant.
func (a *NavArea) Contains(point geom.Position) bool {
	return pointInPolygon(a.Corners, point.X, point.Y)
}

// CentroidDistance2D returns the 2D distance from the area's centroid to
// point.
func (a *NavArea) CentroidDistance2D(point geom.Position) float64 {
	return a.centroid.Distance2D(point)
}

// pointInPolygon implements the even-odd ray-casting rule over a polygon's
// corners, projected to (x, y). No library in the retrieved corpus offers
// 2D point-in-polygon containment for float64 coordinates (the teacher's
// gogeo package operates on float32, and adopting it would force a lossy
// precision downcast throughout this package); ray-casting over Corners is
// a handful of lines and avoids that downcast entirely.
func pointInPolygon(corners []geom.Position, x, y float64) bool {
	assert.True(len(corners) >= 3, "polygon must have at least 3 corners")

	inside := false
	n := len(corners)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := corners[i].X, corners[i].Y
		xj, yj := corners[j].X, corners[j].Y
		if (yi > y) != (yj > y) &&
			x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}
