package pinchpad

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	maxTouchSlots = 10 // pointer 0 = mouse, 1-9 = touch
	// wheelNotch converts ebiten's wheel offset (±1 per notch, positive up)
	// to browser-style deltaY units (±120 per notch, positive down), which
	// the engine's zoom rate is calibrated for.
	wheelNotch = -120.0
)

// mouse button bits, matching the web PointerEvent.buttons layout.
const (
	buttonsLeft   = 1
	buttonsRight  = 2
	buttonsMiddle = 4
)

// resetAnim tweens the live transform back to the identity.
type resetAnim struct {
	tween *gween.Tween
	from  Affine
}

// App is the ebiten shell around a Graph: it polls mouse, touch, and wheel
// input every tick, converts them to pointer and wheel events, and
// dispatches them on the graph's entry unit. Rendering goes through a
// Renderer routed as a graph sink.
//
// Pressing R animates the view back to the identity transform.
type App struct {
	cfg      Config
	logger   *log.Logger
	graph    *Graph
	renderer *Renderer

	inited     bool
	mousePos   Vec2
	mouseSeen  bool
	mouseDown  bool
	touchMap   [maxTouchSlots]ebiten.TouchID
	touchUsed  [maxTouchSlots]bool
	touchPos   [maxTouchSlots]Vec2
	touchAlive [maxTouchSlots]bool
	touchBuf   []ebiten.TouchID

	reset *resetAnim
}

// NewApp wires a fresh graph and renderer for the given config.
func NewApp(cfg Config, logger *log.Logger) *App {
	renderer := NewRenderer()
	return &App{
		cfg:      cfg,
		logger:   logger,
		renderer: renderer,
		graph:    NewGraph(cfg.posture(), renderer.Unit()),
	}
}

// Graph returns the app's wired graph, for tests and embedding hosts.
func (a *App) Graph() *Graph {
	return a.graph
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	if !a.inited {
		a.inited = true
		scale := ebiten.Monitor().DeviceScaleFactor()
		a.graph.Main.Dispatch(PortInit, Surface{
			Width:  a.cfg.Width,
			Height: a.cfg.Height,
			Scale:  scale,
		})
		a.logger.Info("surface ready",
			"width", a.cfg.Width, "height", a.cfg.Height, "scale", scale, "posture", a.cfg.Posture)
	}

	a.pollMouse()
	a.pollTouches()
	a.pollWheel()
	a.pollReset()
	return nil
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen)
}

// Layout implements ebiten.Game.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Width, a.cfg.Height
}

// pollMouse synthesizes events for pointer 0 from the cursor and buttons.
func (a *App) pollMouse() {
	mx, my := ebiten.CursorPosition()
	pos := Vec2{float64(mx), float64(my)}

	var buttons int
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		buttons |= buttonsLeft
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		buttons |= buttonsRight
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		buttons |= buttonsMiddle
	}
	down := buttons&buttonsLeft != 0

	switch {
	case down && !a.mouseDown:
		a.dispatchPointer(0, pos, buttons, KindDown)
	case !down && a.mouseDown:
		a.dispatchPointer(0, pos, buttons, KindUp)
	case pos != a.mousePos || !a.mouseSeen:
		a.dispatchPointer(0, pos, buttons, KindMove)
	}
	a.mouseDown = down
	a.mousePos = pos
	a.mouseSeen = true
}

// pollTouches synthesizes events for pointers 1-9 from the active touches.
func (a *App) pollTouches() {
	a.touchBuf = ebiten.AppendTouchIDs(a.touchBuf[:0])

	prev := a.touchAlive
	for i := range a.touchAlive {
		a.touchAlive[i] = false
	}
	for _, tid := range a.touchBuf {
		slot := a.touchSlot(tid)
		if slot < 0 {
			continue
		}
		tx, ty := ebiten.TouchPosition(tid)
		pos := Vec2{float64(tx), float64(ty)}

		if !prev[slot] {
			a.dispatchPointer(slot, pos, buttonsLeft, KindDown)
		} else if pos != a.touchPos[slot] {
			a.dispatchPointer(slot, pos, buttonsLeft, KindMove)
		}
		a.touchPos[slot] = pos
		a.touchAlive[slot] = true
	}

	// Lifted touches: up at the last known position, then free the slot.
	for i := 1; i < maxTouchSlots; i++ {
		if a.touchUsed[i] && !a.touchAlive[i] {
			a.dispatchPointer(i, a.touchPos[i], 0, KindUp)
			a.touchUsed[i] = false
			a.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9). Returns the
// existing slot or allocates a new one; -1 if all slots are taken.
func (a *App) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxTouchSlots; i++ {
		if a.touchUsed[i] && a.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxTouchSlots; i++ {
		if !a.touchUsed[i] {
			a.touchUsed[i] = true
			a.touchMap[i] = tid
			return i
		}
	}
	return -1
}

func (a *App) pollWheel() {
	_, yoff := ebiten.Wheel()
	if yoff == 0 {
		return
	}
	mx, my := ebiten.CursorPosition()
	a.graph.Main.Dispatch(PortWheel, WheelEvent{
		DeltaY: yoff * wheelNotch,
		X:      float64(mx),
		Y:      float64(my),
	})
}

// pollReset starts the view reset on R and advances a running animation by
// one tick, driving the engine's "set" port.
func (a *App) pollReset() {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.reset = &resetAnim{
			tween: gween.New(0, 1, float32(a.cfg.ResetMs/1000), ease.OutQuad),
			from:  a.graph.State.Get().Transform,
		}
		a.logger.Debug("view reset")
	}
	if a.reset == nil {
		return
	}
	dt := float32(1.0 / float64(ebiten.TPS()))
	t, done := a.reset.tween.Update(dt)
	a.graph.Engine.Dispatch(PortSet, Lerp(a.reset.from, Identity(), float64(t)))
	if done {
		a.reset = nil
	}
}

func (a *App) dispatchPointer(id int, pos Vec2, buttons int, kind Kind) {
	a.graph.Main.Dispatch(PortPointer, PointerEvent{
		ID:      id,
		X:       pos.X,
		Y:       pos.Y,
		Buttons: buttons,
		Kind:    kind,
	})
}

// Run opens a window for the given config and blocks until it closes.
func Run(cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	return ebiten.RunGame(NewApp(cfg, logger))
}
