package pinchpad

import "math"

// Vec2 is a 2D point or vector in surface-local coordinates. The coordinate
// system has its origin at the top-left, with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Mul returns v scaled by s.
func (v Vec2) Mul(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Angle returns the angle of v in radians, measured from the positive X axis.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Mid returns the midpoint of a and b.
func Mid(a, b Vec2) Vec2 {
	return Vec2{(a.X + b.X) / 2, (a.Y + b.Y) / 2}
}

// Posture selects the platform pointer policy. Desktop keeps a released
// mouse pointer's history in the pool; touch sweeps inactive pointers on
// every new contact, since lifted fingers never come back under the same id.
type Posture uint8

const (
	PostureDesktop Posture = iota
	PostureTouch
)

// String returns "desktop" or "touch".
func (p Posture) String() string {
	if p == PostureTouch {
		return "touch"
	}
	return "desktop"
}

// Port names used by the built-in units. The Main passthrough unit of a
// Graph exposes the raw platform ports; the internal ones connect tracker,
// engine, and renderer.
const (
	PortPointer  = "pointer"  // raw PointerEvent into the graph
	PortWheel    = "wheel"    // raw WheelEvent into the graph
	PortInit     = "init"     // one-time Surface signal into the graph
	PortPointers = "pointers" // Pool emitted by the tracker
	PortState    = "state"    // State emitted by the engine
	PortSet      = "set"      // Affine overriding the engine's live transform
	PortUpdate   = "update"   // State into the renderer
)
