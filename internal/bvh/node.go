package bvh

import (
	"sort"

	"github.com/arl/meetpoint/internal/geom"
)

// Node is a bounding-volume hierarchy node. A leaf owns exactly one
// triangle; an inner node owns exactly two children. The tree is built
// once and never mutated afterwards.
type Node struct {
	AABB     AABB
	Triangle *geom.Triangle
	Left     *Node
	Right    *Node
}

func (n *Node) isLeaf() bool {
	return n.Triangle != nil
}

// Build constructs a BVH over triangles by recursive median split: at each
// level the axis with the largest spread of triangle centroids is chosen
// (ties broken x, then y, then z), triangles are sorted along that axis by
// centroid coordinate, and the set is split at the midpoint. This mirrors
// the teacher's chunky-trimesh subdivision scheme, generalized from a 2D
// broad-phase grid to a true 3D binary tree. It does not attempt SAH or
// any cost-based split; median split is all the spec calls for.
//
// Build panics if triangles is empty; an empty triangle soup has no BVH to
// build, and callers (Tree) special-case that before calling Build.
func Build(triangles []geom.Triangle) *Node {
	if len(triangles) == 1 {
		t := triangles[0]
		return &Node{AABB: fromTriangle(t), Triangle: &t}
	}

	centroids := make([]geom.Position, len(triangles))
	for i, t := range triangles {
		centroids[i] = t.Centroid()
	}

	minX, maxX := spread(centroids, func(p geom.Position) float64 { return p.X })
	minY, maxY := spread(centroids, func(p geom.Position) float64 { return p.Y })
	minZ, maxZ := spread(centroids, func(p geom.Position) float64 { return p.Z })

	xSpread := maxX - minX
	ySpread := maxY - minY
	zSpread := maxZ - minZ

	var axis func(geom.Position) float64
	switch {
	case xSpread >= ySpread && xSpread >= zSpread:
		axis = func(p geom.Position) float64 { return p.X }
	case ySpread >= zSpread:
		axis = func(p geom.Position) float64 { return p.Y }
	default:
		axis = func(p geom.Position) float64 { return p.Z }
	}

	sorted := make([]geom.Triangle, len(triangles))
	copy(sorted, triangles)
	sort.SliceStable(sorted, func(i, j int) bool {
		return axis(sorted[i].Centroid()) < axis(sorted[j].Centroid())
	})

	mid := len(sorted) / 2
	left := Build(sorted[:mid])
	right := Build(sorted[mid:])

	return &Node{
		AABB:  left.AABB.union(right.AABB),
		Left:  left,
		Right: right,
	}
}

func spread(pts []geom.Position, coord func(geom.Position) float64) (min, max float64) {
	min, max = coord(pts[0]), coord(pts[0])
	for _, p := range pts[1:] {
		if c := coord(p); c < min {
			min = c
		} else if c > max {
			max = c
		}
	}
	return min, max
}

// rayTriangleIntersection implements the Möller-Trumbore algorithm. It
// returns the hit distance and true if the ray hits the triangle at a
// strictly positive parameter (t=0 is treated as a miss, to avoid
// self-intersection when the ray origin lies on a surface).
func rayTriangleIntersection(origin, direction geom.Position, tri geom.Triangle) (float64, bool) {
	const epsilon = 1e-6

	edge1 := tri.P2.Sub(tri.P1)
	edge2 := tri.P3.Sub(tri.P1)
	h := direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -epsilon && a < epsilon {
		return 0, false
	}

	f := 1 / a
	s := origin.Sub(tri.P1)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := f * direction.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := f * edge2.Dot(q)
	if t > epsilon {
		return t, true
	}
	return 0, false
}

// hitsWithin reports whether the ray from origin along direction strikes
// any triangle under n at a distance <= maxDistance. It visits both
// children unconditionally once the node's AABB is hit; no traversal
// ordering is required for correctness, only for early-exit performance,
// which this spec does not require.
func (n *Node) hitsWithin(origin, direction geom.Position, maxDistance float64) bool {
	if !n.AABB.intersectsRay(origin, direction) {
		return false
	}
	if n.isLeaf() {
		t, ok := rayTriangleIntersection(origin, direction, *n.Triangle)
		return ok && t <= maxDistance
	}
	return n.Left.hitsWithin(origin, direction, maxDistance) ||
		n.Right.hitsWithin(origin, direction, maxDistance)
}
