package pinchpad

// EmitFunc publishes a value on one of the owning unit's named output ports.
// Emission is synchronous: every handler routed from the port runs before
// the call returns.
type EmitFunc func(port string, v any)

// Handler processes a value arriving on a unit's named input port.
type Handler func(v any)

// Factory builds a unit's input handlers. It runs exactly once, at unit
// construction, and may close over local variables — that closed-over state
// is where stateful units such as the tracker and the gesture engine keep
// their private data.
type Factory func(emit EmitFunc) map[string]Handler

type routeTarget struct {
	unit *Unit
	port string
}

// Unit is a node in the synchronous dataflow graph: a set of named input
// handlers plus routes fanning its output ports out to other units.
//
// The graph contract is strictly single-threaded. Dispatch is a plain
// synchronous call tree with no queueing, no reentrancy guard, and no cycle
// detection: routing a cycle causes unbounded recursion and is the caller's
// responsibility to avoid.
type Unit struct {
	handlers map[string]Handler
	routes   map[string][]routeTarget
}

// NewUnit constructs a unit from its factory.
func NewUnit(factory Factory) *Unit {
	u := &Unit{routes: make(map[string][]routeTarget)}
	u.handlers = factory(u.emit)
	return u
}

// Passthrough returns a unit that forwards each of the named ports verbatim:
// a value dispatched on port p is re-emitted on port p unchanged. Used as a
// stable graph entry point decoupling platform event names from internal
// port names.
func Passthrough(ports ...string) *Unit {
	return NewUnit(func(emit EmitFunc) map[string]Handler {
		handlers := make(map[string]Handler, len(ports))
		for _, port := range ports {
			handlers[port] = func(v any) { emit(port, v) }
		}
		return handlers
	})
}

// Route subscribes target to u. For each (output -> input) pair in ports,
// whenever u emits on output, target's handler for input is invoked
// synchronously with the emitted value. Multiple routes out of the same
// output port fan out in registration order.
func (u *Unit) Route(target *Unit, ports map[string]string) {
	for out, in := range ports {
		u.routes[out] = append(u.routes[out], routeTarget{unit: target, port: in})
	}
}

// Dispatch invokes u's handler for port with v, triggering the synchronous
// cascade of emissions and routed handler calls. Ports with no registered
// handler are ignored. This is the sole external entry point into the graph.
func (u *Unit) Dispatch(port string, v any) {
	if h, ok := u.handlers[port]; ok {
		h(v)
	}
}

func (u *Unit) emit(port string, v any) {
	for _, r := range u.routes[port] {
		r.unit.Dispatch(r.port, v)
	}
}

// Value holds the most recent value emitted on a unit's output port, for
// synchronous reads by presentation code that does not otherwise participate
// in the graph.
type Value[T any] struct {
	v T
}

// Get returns the latest observed value, or the initial default if the port
// has not emitted yet.
func (v *Value[T]) Get() T {
	return v.v
}

// FromPort subscribes a latest-value observer to u's output port. The
// returned Value starts at initial and is updated by an ordinary route
// target; emissions that do not type-assert to T are ignored.
func FromPort[T any](u *Unit, port string, initial T) *Value[T] {
	val := &Value[T]{v: initial}
	sink := NewUnit(func(EmitFunc) map[string]Handler {
		return map[string]Handler{
			port: func(v any) {
				if tv, ok := v.(T); ok {
					val.v = tv
				}
			},
		}
	})
	u.Route(sink, map[string]string{port: port})
	return val
}
