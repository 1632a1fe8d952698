// Package constants holds the physical constants shared by every stage of
// the pipeline: geometry, the jump predicate, the navmesh graph weights and
// the regularizer's reconnection heuristics all read from here rather than
// repeating magic numbers locally.
package constants

import "math"

// Movement speeds, in game units per second.
const (
	RunningSpeed   = 250.0
	CrouchingSpeed = 85.0
)

// Ballistics.
const (
	Gravity              = 800.0
	JumpHeight           = 55.83
	CrouchJumpHeightGain = 10.19
)

// Player bounding geometry.
const (
	PlayerWidth        = 32.0
	PlayerHeight       = 72.0
	PlayerCrouchHeight = 54.0
	PlayerEyeLevel     = 64.093811
)

// CrouchingAttributeFlag is the dynamic-attribute bit pattern that marks an
// area as requiring crouch. It must be compared by exact equality, not by
// bitwise mask: that is how the reference implementation does it, and a
// mask-based comparison would silently accept other flag combinations that
// happen to have this bit set. This may itself be a latent bug upstream;
// we reproduce it rather than "fix" it.
const CrouchingAttributeFlag = 65536

// JumpSpeed is the initial vertical speed of a standing jump, derived from
// energy conservation: 0.5*v^2 = g*h  =>  v = sqrt(2*g*h).
func JumpSpeed() float64 {
	return math.Sqrt(2 * Gravity * JumpHeight)
}
