package bvh

import (
	"math"

	"github.com/arl/meetpoint/internal/geom"
)

// AABB is an axis-aligned bounding box: MinPoint <= MaxPoint componentwise.
type AABB struct {
	MinPoint, MaxPoint geom.Position
}

// fromTriangle returns the AABB enclosing a triangle's three vertices.
func fromTriangle(t geom.Triangle) AABB {
	min := geom.NewPosition(
		minOf3(t.P1.X, t.P2.X, t.P3.X),
		minOf3(t.P1.Y, t.P2.Y, t.P3.Y),
		minOf3(t.P1.Z, t.P2.Z, t.P3.Z),
	)
	max := geom.NewPosition(
		maxOf3(t.P1.X, t.P2.X, t.P3.X),
		maxOf3(t.P1.Y, t.P2.Y, t.P3.Y),
		maxOf3(t.P1.Z, t.P2.Z, t.P3.Z),
	)
	return AABB{MinPoint: min, MaxPoint: max}
}

// union returns the AABB enclosing both a and b.
func (a AABB) union(b AABB) AABB {
	return AABB{
		MinPoint: geom.NewPosition(
			math.Min(a.MinPoint.X, b.MinPoint.X),
			math.Min(a.MinPoint.Y, b.MinPoint.Y),
			math.Min(a.MinPoint.Z, b.MinPoint.Z),
		),
		MaxPoint: geom.NewPosition(
			math.Max(a.MaxPoint.X, b.MaxPoint.X),
			math.Max(a.MaxPoint.Y, b.MaxPoint.Y),
			math.Max(a.MaxPoint.Z, b.MaxPoint.Z),
		),
	}
}

// checkAxis implements one axis of the ray/AABB slab test. It returns the
// interval of ray parameters t for which the ray lies within [minVal,
// maxVal] along this axis; a direction too close to zero collapses to
// either the unbounded interval (origin already inside the slab) or the
// empty interval (origin outside it, and the ray never enters since it
// runs parallel to the slab).
func checkAxis(origin, direction, minVal, maxVal, epsilon float64) (tMin, tMax float64) {
	if math.Abs(direction) < epsilon {
		if origin < minVal || origin > maxVal {
			return math.Inf(1), math.Inf(-1)
		}
		return math.Inf(-1), math.Inf(1)
	}
	t1 := (minVal - origin) / direction
	t2 := (maxVal - origin) / direction
	return math.Min(t1, t2), math.Max(t1, t2)
}

// intersectsRay reports whether the ray from origin along direction overlaps
// this AABB at some non-negative parameter t (an origin inside the box
// counts as a hit).
func (a AABB) intersectsRay(origin, direction geom.Position) bool {
	const epsilon = 1e-6

	txMin, txMax := checkAxis(origin.X, direction.X, a.MinPoint.X, a.MaxPoint.X, epsilon)
	tyMin, tyMax := checkAxis(origin.Y, direction.Y, a.MinPoint.Y, a.MaxPoint.Y, epsilon)
	tzMin, tzMax := checkAxis(origin.Z, direction.Z, a.MinPoint.Z, a.MaxPoint.Z, epsilon)

	tEnter := math.Max(txMin, math.Max(tyMin, tzMin))
	tExit := math.Min(txMax, math.Min(tyMax, tzMax))

	return tEnter <= tExit && tExit >= 0
}

func minOf3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
func maxOf3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }
