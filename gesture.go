package pinchpad

import "sort"

const (
	// wheelZoomRate converts a wheel deltaY (browser-style units, ~120 per
	// notch) into a zoom step.
	wheelZoomRate = 5e-4
	// minPinchMag is the smallest gesture-start pinch distance that scales.
	// Below it the scale factor is held at 1 until the gesture restarts.
	minPinchMag = 1e-9
)

// WheelEvent is a raw wheel event at cursor (X, Y). DeltaY is positive when
// scrolling down (zoom out).
type WheelEvent struct {
	DeltaY float64
	X, Y   float64
}

// State is the externally visible snapshot: the pointer pool plus the
// current global transform. Emitted as a unit on every update and treated
// as immutable by consumers.
type State struct {
	Pointers  Pool
	Transform Affine
}

// NewEngine returns the gesture/transform unit. It consumes the pointer
// pool on PortPointers and wheel events on PortWheel, and emits a State on
// PortState after every input.
//
// Continuous gestures (pan with one active pointer, pinch/rotate/pan with
// two) are recomputed each update as a full delta against the transform
// snapshotted at gesture start, rather than accumulating per-frame
// increments, so rounding error does not drift over a long drag. With zero
// active pointers, or more than two, the transform is frozen but the pool
// is still emitted.
//
// Wheel zoom composes directly onto the live transform, pivoted at the
// cursor, with the step normalized by the current scale so zooming feels
// linear at any zoom level.
//
// PortSet overwrites the live transform and emits; the animated view reset
// drives it.
func NewEngine() *Unit {
	var (
		transform = Identity()
		base      = Identity() // transform as of gesture start
		p0        Vec2         // gesture-start anchor
		r0        float64      // gesture-start pinch angle
		mag0      float64      // gesture-start pinch distance
		last      int          // active count seen on the previous update
		pool      Pool
	)
	return NewUnit(func(emit EmitFunc) map[string]Handler {
		snapshot := func() State {
			return State{Pointers: pool, Transform: transform}
		}
		update := func(next Pool) {
			pool = next
			act := activePointers(pool)
			switch len(act) {
			case 2:
				a := act[0].Positions[0]
				b := act[1].Positions[0]
				mid := Mid(a, b)
				d := b.Sub(a)
				if last != 2 {
					base = transform
					p0 = mid
					r0 = d.Angle()
					mag0 = d.Len()
				} else {
					s := 1.0
					if mag0 > minPinchMag {
						s = d.Len() / mag0
					}
					t := FixAt(TRS(mid.Sub(p0), d.Angle()-r0, Vec2{s, s}), p0)
					Compose(&transform, &t, &base)
				}
			case 1:
				cur := act[0].Positions[0]
				if last != 1 {
					base = transform
					p0 = cur
				} else {
					t := Translate(cur.Sub(p0))
					Compose(&transform, &t, &base)
				}
			}
			last = len(act)
			emit(PortState, snapshot())
		}
		return map[string]Handler{
			PortPointers: func(v any) {
				if next, ok := v.(Pool); ok {
					update(next)
				}
			},
			PortWheel: func(v any) {
				ev, ok := v.(WheelEvent)
				if !ok {
					return
				}
				s := ev.DeltaY * wheelZoomRate
				sx := 1 - s/transform[0]
				sy := 1 - s/transform[3]
				t := FixAt(Scale(Vec2{sx, sy}), Vec2{ev.X, ev.Y})
				Compose(&transform, &t, &transform)
				emit(PortState, snapshot())
			},
			PortSet: func(v any) {
				m, ok := v.(Affine)
				if !ok {
					return
				}
				transform = m
				base = m
				emit(PortState, snapshot())
			},
		}
	})
}

// activePointers returns the pool's active pointers sorted by id ascending,
// so gesture anchors are deterministic regardless of map iteration order.
func activePointers(pool Pool) []*Pointer {
	var act []*Pointer
	for _, p := range pool {
		if p.Active && len(p.Positions) > 0 {
			act = append(act, p)
		}
	}
	sort.Slice(act, func(i, j int) bool { return act[i].ID < act[j].ID })
	return act
}
