package devour

import "math"

// Role distinguishes the single eater disc from the target discs it consumes.
type Role uint8

const (
	RoleEater  Role = iota // the growing disc; unique per scene
	RoleTarget             // a consumable disc
)

// Vec2 is a 2D vector used for ball centers and movement deltas. The
// coordinate system has its origin at the top-left, Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Dist returns the Euclidean distance between v and other.
func (v Vec2) Dist(other Vec2) float64 {
	return math.Hypot(v.X-other.X, v.Y-other.Y)
}

// Ball is a disc in a scene. EatenOrder is -1 until the eater consumes the
// ball, after which it holds the zero-based position in the solved order.
type Ball struct {
	Radius     float64
	Center     Vec2
	Role       Role
	Visible    bool
	EatenOrder int
}

// Scene is a static snapshot of one moment: the eater plus every target with
// its current visibility. Scenes are what the renderer and exporter consume;
// they carry no behavior.
type Scene struct {
	Eater   Ball
	Targets []Ball
}
