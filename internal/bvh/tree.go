package bvh

import "github.com/arl/meetpoint/internal/geom"

// Tree is a read-only BVH over a fixed triangle soup, answering
// segment-occlusion queries. The same Tree type backs both the visibility
// BVH and the walkability BVH described in the spec; which one a given
// Tree represents is purely a matter of which .tri file it was built from.
type Tree struct {
	NumTriangles int
	root         *Node
}

// New builds a Tree over triangles. An empty triangle soup is a valid,
// degenerate tree: every segment query against it is unobstructed.
func New(triangles []geom.Triangle) *Tree {
	t := &Tree{NumTriangles: len(triangles)}
	if len(triangles) > 0 {
		t.root = Build(triangles)
	}
	return t
}

// ConnectionUnobstructed reports whether the line segment from a to b is
// clear of every triangle in the tree. A degenerate segment (endpoints
// closer than 1e-6) is trivially unobstructed, as is any query against an
// empty triangle soup.
func (t *Tree) ConnectionUnobstructed(a, b geom.Position) bool {
	direction := b.Sub(a)
	length := direction.Length()
	if length < 1e-6 {
		return true
	}
	if t.root == nil {
		return true
	}
	direction = direction.Normalize()
	return !t.root.hitsWithin(a, direction, length)
}
