package pinchpad

// maxPositions bounds each pointer's position history.
const maxPositions = 30

// ButtonPrimary is the bit set in PointerEvent.Buttons while the primary
// button or touch contact is held.
const ButtonPrimary = 1

// Kind is the raw pointer event kind.
type Kind uint8

const (
	KindDown Kind = iota
	KindMove
	KindUp
	KindCancel
)

// PointerEvent is a raw platform pointer event in surface-local coordinates.
type PointerEvent struct {
	ID      int
	X, Y    float64
	Buttons int // bitmask; bit 0 = primary
	Kind    Kind
}

// Pointer is the tracked history for one pointer identity.
type Pointer struct {
	ID int
	// Positions holds the most recent sample points, newest first, at most
	// maxPositions entries.
	Positions []Vec2
	// Active is true while the primary button or contact is held.
	Active bool
	// Trail holds points sampled while active, newest first. Cleared on
	// every down transition.
	Trail []Vec2
}

// Pool maps pointer id to its tracked state. It is mutated only by the
// tracker unit and must be treated as read-only by consumers.
type Pool map[int]*Pointer

// NewTracker returns a unit that ingests raw PointerEvents on PortPointer
// and emits the updated Pool on PortPointers after every event.
//
// Under PostureTouch, every down event sweeps currently-inactive pointers
// from the pool. Desktop never sweeps, so a single mouse pointer keeps its
// history across presses. Unknown event kinds record position and active
// state and nothing else.
func NewTracker(posture Posture) *Unit {
	pool := Pool{}
	return NewUnit(func(emit EmitFunc) map[string]Handler {
		return map[string]Handler{
			PortPointer: func(v any) {
				ev, ok := v.(PointerEvent)
				if !ok {
					return
				}
				p := pool[ev.ID]
				if p == nil {
					p = &Pointer{ID: ev.ID}
					pool[ev.ID] = p
				}
				p.Active = ev.Buttons&ButtonPrimary != 0

				pt := Vec2{ev.X, ev.Y}
				p.Positions = prependBounded(p.Positions, pt, maxPositions)
				// Unknown kinds record position and active state only.
				if ev.Kind > KindCancel {
					emit(PortPointers, pool)
					return
				}
				if p.Active {
					p.Trail = prepend(p.Trail, pt)
				}
				// The down-clear runs after the active append so the trail
				// is empty immediately after a down transition.
				if ev.Kind == KindDown {
					p.Trail = p.Trail[:0]
					if posture == PostureTouch {
						for id, q := range pool {
							if !q.Active {
								delete(pool, id)
							}
						}
					}
				}
				emit(PortPointers, pool)
			},
		}
	})
}

// prepend inserts pt at the front of s.
func prepend(s []Vec2, pt Vec2) []Vec2 {
	s = append(s, Vec2{})
	copy(s[1:], s)
	s[0] = pt
	return s
}

// prependBounded inserts pt at the front of s, evicting the oldest entry
// once s holds limit points.
func prependBounded(s []Vec2, pt Vec2, limit int) []Vec2 {
	if len(s) < limit {
		s = append(s, Vec2{})
	}
	copy(s[1:], s)
	s[0] = pt
	return s
}
