package pinchpad

import "testing"

// sinkRecorder collects everything routed to a render-adapter-shaped sink.
type sinkRecorder struct {
	unit    *Unit
	inits   []Surface
	updates []State
}

func newSinkRecorder() *sinkRecorder {
	r := &sinkRecorder{}
	r.unit = NewUnit(func(EmitFunc) map[string]Handler {
		return map[string]Handler{
			PortInit: func(v any) {
				if s, ok := v.(Surface); ok {
					r.inits = append(r.inits, s)
				}
			},
			PortUpdate: func(v any) {
				if s, ok := v.(State); ok {
					r.updates = append(r.updates, s)
				}
			},
		}
	})
	return r
}

func TestGraphEndToEnd(t *testing.T) {
	sink := newSinkRecorder()
	g := NewGraph(PostureDesktop, sink.unit)

	g.Main.Dispatch(PortInit, Surface{Width: 640, Height: 480, Scale: 2})
	g.Main.Dispatch(PortPointer, PointerEvent{ID: 0, X: 10, Y: 10, Buttons: buttonsLeft, Kind: KindDown})
	g.Main.Dispatch(PortPointer, PointerEvent{ID: 0, X: 50, Y: 30, Buttons: buttonsLeft, Kind: KindMove})

	if len(sink.inits) != 1 || sink.inits[0].Width != 640 {
		t.Fatalf("init signals = %v, want one 640x480 surface", sink.inits)
	}
	if len(sink.updates) != 2 {
		t.Fatalf("updates = %d, want 2 (one per pointer event)", len(sink.updates))
	}

	last := sink.updates[len(sink.updates)-1]
	assertMatrix(t, "sink transform", last.Transform, Translate(Vec2{40, 20}))
	assertMatrix(t, "observable transform", g.State.Get().Transform, Translate(Vec2{40, 20}))
	if last.Pointers[0] == nil {
		t.Error("pointer 0 missing from routed state")
	}
}

func TestGraphWheelBypassesTracker(t *testing.T) {
	sink := newSinkRecorder()
	g := NewGraph(PostureDesktop, sink.unit)

	g.Main.Dispatch(PortWheel, WheelEvent{DeltaY: -120, X: 30, Y: 40})

	if len(sink.updates) != 1 {
		t.Fatalf("updates = %d, want 1", len(sink.updates))
	}
	m := sink.updates[0].Transform
	if m[0] <= 1 {
		t.Errorf("scale = %v, want > 1", m[0])
	}
	assertVec(t, "cursor fixed", m.Apply(Vec2{30, 40}), Vec2{30, 40})
	if len(sink.updates[0].Pointers) != 0 {
		t.Errorf("pool = %v, want empty before any pointer event", sink.updates[0].Pointers)
	}
}

func TestGraphStateDefault(t *testing.T) {
	g := NewGraph(PostureDesktop)
	st := g.State.Get()
	assertMatrix(t, "default transform", st.Transform, Identity())
	if st.Pointers != nil {
		t.Errorf("default pool = %v, want nil", st.Pointers)
	}
}

func TestGraphMultipleSinks(t *testing.T) {
	a := newSinkRecorder()
	b := newSinkRecorder()
	g := NewGraph(PostureTouch, a.unit, b.unit)

	g.Main.Dispatch(PortPointer, PointerEvent{ID: 1, X: 5, Y: 5, Buttons: buttonsLeft, Kind: KindDown})

	if len(a.updates) != 1 || len(b.updates) != 1 {
		t.Errorf("updates = (%d, %d), want (1, 1)", len(a.updates), len(b.updates))
	}
}
