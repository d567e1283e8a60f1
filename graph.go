package pinchpad

// Graph owns the wired pipeline: a passthrough entry unit feeding the
// pointer tracker and the gesture engine. Construct one with NewGraph at
// startup; afterwards the host only dispatches raw input on Main.
//
// Wiring:
//
//	Main "pointer" -> Tracker "pointer"
//	Main "wheel"   -> Engine  "wheel"
//	Tracker "pointers" -> Engine "pointers"
//	Engine "state" -> each sink's "update"
//	Main "init"    -> each sink's "init"
type Graph struct {
	Main    *Unit
	Tracker *Unit
	Engine  *Unit

	// State reads the latest engine snapshot without participating in the
	// graph. Before the first event it holds a zero pool and the identity
	// transform.
	State *Value[State]
}

// NewGraph wires the pipeline once and returns the owned graph. Sinks are
// typically render adapter units (see Renderer.Unit); they receive every
// State snapshot on "update" and the one-time Surface signal on "init".
func NewGraph(posture Posture, sinks ...*Unit) *Graph {
	g := &Graph{
		Main:    Passthrough(PortPointer, PortWheel, PortInit),
		Tracker: NewTracker(posture),
		Engine:  NewEngine(),
	}

	g.Main.Route(g.Tracker, map[string]string{PortPointer: PortPointer})
	g.Main.Route(g.Engine, map[string]string{PortWheel: PortWheel})
	g.Tracker.Route(g.Engine, map[string]string{PortPointers: PortPointers})
	for _, sink := range sinks {
		g.Engine.Route(sink, map[string]string{PortState: PortUpdate})
		g.Main.Route(sink, map[string]string{PortInit: PortInit})
	}

	g.State = FromPort(g.Engine, PortState, State{Transform: Identity()})
	return g
}
