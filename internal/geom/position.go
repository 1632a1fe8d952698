// Package geom provides the 3D/2D position type shared by every other
// package in this module, along with the jump-reachability predicate and
// inverse-distance-weighted z reconstruction used by the mesh regularizer.
package geom

import (
	"math"

	"github.com/arl/meetpoint/internal/constants"
)

// Position is a double-precision 3D point.
type Position struct {
	X, Y, Z float64
}

// NewPosition builds a Position from its coordinates.
func NewPosition(x, y, z float64) Position {
	return Position{X: x, Y: y, Z: z}
}

// Add returns p+o.
func (p Position) Add(o Position) Position {
	return Position{p.X + o.X, p.Y + o.Y, p.Z + o.Z}
}

// Sub returns p-o.
func (p Position) Sub(o Position) Position {
	return Position{p.X - o.X, p.Y - o.Y, p.Z - o.Z}
}

// Scale returns p scaled by s.
func (p Position) Scale(s float64) Position {
	return Position{p.X * s, p.Y * s, p.Z * s}
}

// Distance returns the 3D Euclidean distance between p and o.
func (p Position) Distance(o Position) float64 {
	return p.Sub(o).Length()
}

// Distance2D returns the Euclidean distance between p and o, ignoring z.
func (p Position) Distance2D(o Position) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// Dot returns the 3D dot product of p and o.
func (p Position) Dot(o Position) float64 {
	return p.X*o.X + p.Y*o.Y + p.Z*o.Z
}

// Cross returns the 3D cross product p x o.
func (p Position) Cross(o Position) Position {
	return Position{
		p.Y*o.Z - p.Z*o.Y,
		p.Z*o.X - p.X*o.Z,
		p.X*o.Y - p.Y*o.X,
	}
}

// Length returns the 3D length of p, treated as a vector from the origin.
func (p Position) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
}

// Normalize returns p scaled to unit length. The zero vector normalizes to
// itself rather than producing NaNs.
func (p Position) Normalize() Position {
	l := p.Length()
	if l == 0 {
		return Position{}
	}
	return Position{p.X / l, p.Y / l, p.Z / l}
}

// To2D drops the z coordinate.
func (p Position) To2D() (x, y float64) {
	return p.X, p.Y
}

// CanJumpTo reports whether a ballistic jump starting at p, with initial
// vertical speed constants.JumpSpeed() and horizontal speed
// constants.RunningSpeed, can reach other.
//
// The 2D horizontal distance is first reduced by a foothold allowance of
// 1.15*PlayerWidth; a non-positive remainder is an automatic pass. Flight
// time is never shorter than the time to the jump's apex, so a jump with a
// small horizontal distance still gets credit for its full vertical rise.
// The crouch-jump height gain is always added, matching the reference
// behavior of crediting the bonus regardless of whether the destination
// area itself requires crouching.
func (p Position) CanJumpTo(other Position) bool {
	allowance := 1.15 * constants.PlayerWidth
	h := p.Distance2D(other) - allowance
	if h <= 0 {
		return true
	}

	jumpSpeed := constants.JumpSpeed()
	t := math.Max(h/constants.RunningSpeed, jumpSpeed/constants.Gravity)
	zAtDest := p.Z + jumpSpeed*t - 0.5*constants.Gravity*t*t + constants.CrouchJumpHeightGain
	return zAtDest >= other.Z
}

// WeightedSample is one (x, y, z) sample point used by
// InverseDistanceWeighting.
type WeightedSample struct {
	X, Y, Z float64
}

// InverseDistanceWeighting reconstructs a z value at (x, y) from a set of
// known samples, weighting each sample by the inverse square of its 2D
// distance to the query point. If the query point coincides with a sample
// (distance below 1e-10) that sample's z is returned directly, avoiding a
// division by (near) zero.
func InverseDistanceWeighting(samples []WeightedSample, x, y float64) float64 {
	var weightSum, weightedZSum float64
	for _, s := range samples {
		d := math.Hypot(s.X-x, s.Y-y)
		if d < 1e-10 {
			return s.Z
		}
		w := 1 / (d * d)
		weightSum += w
		weightedZSum += w * s.Z
	}
	if weightSum == 0 {
		return 0
	}
	return weightedZSum / weightSum
}
