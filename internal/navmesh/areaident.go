package navmesh

import "github.com/arl/meetpoint/internal/geom"

// AreaIdent identifies an area either by its id or by a raw position to be
// resolved against the mesh. FindPath accepts either kind for its
// endpoints.
type AreaIdent struct {
	isPos bool
	id    uint32
	pos   geom.Position
}

// ByID identifies an area directly by its id.
func ByID(id uint32) AreaIdent {
	return AreaIdent{id: id}
}

// ByPos identifies an area indirectly, to be resolved from a raw position.
func ByPos(pos geom.Position) AreaIdent {
	return AreaIdent{isPos: true, pos: pos}
}
