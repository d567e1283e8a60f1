// Package pinchpad is an interactive multi-pointer visualizer built on
// [Ebitengine].
//
// It tracks one or two simultaneous pointers (mouse or touch), derives a 2D
// affine transform from their motion — pan, pinch-zoom, rotate, and
// wheel-zoom — and renders a reference mark plus per-pointer diagnostics
// under that transform.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	pinchpad.Run(pinchpad.DefaultConfig())
//
// For full control, implement [ebiten.Game] yourself, build an [App] or a
// bare [Graph], and feed it raw input:
//
//	g := pinchpad.NewGraph(pinchpad.PostureDesktop, renderer.Unit())
//	g.Main.Dispatch(pinchpad.PortPointer, pinchpad.PointerEvent{
//		ID: 0, X: 10, Y: 10, Buttons: 1, Kind: pinchpad.KindDown,
//	})
//
// # Architecture
//
// The pipeline is a small synchronous dataflow graph of [Unit] values wired
// by named ports: raw platform events enter through a passthrough unit, flow
// into the pointer tracker, whose pool snapshots feed the gesture engine,
// whose [State] snapshots feed the renderer. Wheel events bypass the tracker
// and go straight to the engine. See [NewGraph] for the wiring and
// [FromPort] for reading the latest snapshot outside the graph.
//
// Gestures hand off seamlessly between zero, one, and two active pointers:
// one pointer pans, two pinch, rotate, and pan all at once, and each
// continuous gesture is recomputed against the transform captured at its
// start so repeated incremental composition never accumulates drift. A
// third simultaneous pointer freezes the transform without disturbing the
// pool.
//
// [Ebitengine]: https://ebitengine.org
package pinchpad
