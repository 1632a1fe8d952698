// Package reach implements the "anything with a centroid and a crouch
// flag" capability contract shared by the regularizer's
// reachability pass and the walkability cache (spec.md §9's "trait-like
// polymorphism" note) — a narrow interface rather than a concrete shared
// base type, so both the irregular and regularized NavArea shapes satisfy
// it for free.
package reach

import (
	"math"

	"github.com/arl/meetpoint/internal/bvh"
	"github.com/arl/meetpoint/internal/constants"
	"github.com/arl/meetpoint/internal/geom"
)

// Locatable is satisfied by anything with a centroid and a crouch flag.
type Locatable interface {
	Centroid() geom.Position
	RequiresCrouch() bool
}

// DoubleLiftClear implements the walkability clearance test shared by the
// regularizer's reachability-connection step (spec.md §4.D-3) and the
// walkability cache (spec.md §4.E): two parallel vertical lifts, offset
// perpendicular to the line between a and b by 0.45*PLAYER_WIDTH in the xy
// plane, raised to PLAYER_HEIGHT (or PLAYER_CROUCH_HEIGHT if either
// endpoint requires crouch). Both lifts must be unobstructed.
func DoubleLiftClear(a, b Locatable, tree *bvh.Tree) bool {
	height := constants.PlayerHeight
	if a.RequiresCrouch() || b.RequiresCrouch() {
		height = constants.PlayerCrouchHeight
	}

	ca, cb := a.Centroid(), b.Centroid()
	dx, dy := cb.X-ca.X, cb.Y-ca.Y
	length := math.Hypot(dx, dy)

	var px, py float64
	if length > 1e-9 {
		px, py = -dy/length, dx/length
	}

	offset := 0.45 * constants.PlayerWidth
	liftA1 := geom.NewPosition(ca.X+px*offset, ca.Y+py*offset, ca.Z+height)
	liftB1 := geom.NewPosition(cb.X+px*offset, cb.Y+py*offset, cb.Z+height)
	liftA2 := geom.NewPosition(ca.X-px*offset, ca.Y-py*offset, ca.Z+height)
	liftB2 := geom.NewPosition(cb.X-px*offset, cb.Y-py*offset, cb.Z+height)

	return tree.ConnectionUnobstructed(liftA1, liftB1) &&
		tree.ConnectionUnobstructed(liftA2, liftB2)
}
