package pinchpad

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
)

// Surface describes the rendering surface: pixel dimensions and device
// pixel ratio. Sent once on the graph's "init" port when the surface
// becomes available.
type Surface struct {
	Width, Height int
	Scale         float64
}

const (
	markRadius   = 60.0 // reference ring radius in model units
	markSegments = 48
	historyDot   = 2.5
	pointerDot   = 10.0
	trailWidth   = 2.0
)

var (
	backgroundColor = color.RGBA{R: 0x12, G: 0x12, B: 0x16, A: 0xff}
	markColor       = color.RGBA{R: 0x8a, G: 0x8a, B: 0x96, A: 0xff}
)

// Renderer draws the visible state to an ebiten image: the reference mark
// under the current transform plus per-pointer diagnostics (history dots,
// drag trail, current position, id label). Every frame is redrawn from
// scratch; there is no incremental drawing contract.
//
// The renderer participates in the graph through Unit: it stores the latest
// State routed to its "update" port and the Surface from "init", and Draw
// renders whatever was stored last. Before the first State arrives it draws
// only the background.
type Renderer struct {
	surface  Surface
	ready    bool
	state    State
	hasState bool
}

// NewRenderer returns a renderer with no surface and no state yet.
func NewRenderer() *Renderer {
	return &Renderer{surface: Surface{Scale: 1}}
}

// Unit returns the renderer's graph unit with input ports "init" (Surface)
// and "update" (State).
func (r *Renderer) Unit() *Unit {
	return NewUnit(func(EmitFunc) map[string]Handler {
		return map[string]Handler{
			PortInit: func(v any) {
				if s, ok := v.(Surface); ok {
					if s.Scale <= 0 {
						s.Scale = 1
					}
					r.surface = s
					r.ready = true
				}
			},
			PortUpdate: func(v any) {
				if s, ok := v.(State); ok {
					r.state = s
					r.hasState = true
				}
			},
		}
	})
}

// Draw renders the latest snapshot onto screen.
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	if !r.hasState {
		return
	}
	r.drawMark(screen, r.state.Transform)

	// Stable draw order regardless of map iteration.
	ids := make([]int, 0, len(r.state.Pointers))
	for id := range r.state.Pointers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		r.drawPointer(screen, r.state.Pointers[id])
	}
}

// drawMark draws the reference mark — a crosshair, square, and ring at the
// model origin — under the transform m, so pan, pinch, rotate, and zoom
// stay visible even with no pointer down.
func (r *Renderer) drawMark(screen *ebiten.Image, m Affine) {
	w := float32(r.surface.Scale)

	// Crosshair.
	strokeSegment(screen, m, Vec2{X: -markRadius}, Vec2{X: markRadius}, w, markColor)
	strokeSegment(screen, m, Vec2{Y: -markRadius}, Vec2{Y: markRadius}, w, markColor)

	// Square outline at half the ring radius.
	h := markRadius / 2
	corners := [4]Vec2{{-h, -h}, {h, -h}, {h, h}, {-h, h}}
	for i := range corners {
		strokeSegment(screen, m, corners[i], corners[(i+1)%4], w, markColor)
	}

	// Ring, as a polyline: the affine image of a circle is an ellipse, so
	// transform sample points rather than calling StrokeCircle.
	prev := m.Apply(Vec2{X: markRadius})
	for i := 1; i <= markSegments; i++ {
		angle := 2 * math.Pi * float64(i) / markSegments
		next := m.Apply(Vec2{X: markRadius * math.Cos(angle), Y: markRadius * math.Sin(angle)})
		vector.StrokeLine(screen,
			float32(prev.X), float32(prev.Y), float32(next.X), float32(next.Y),
			w, markColor, true)
		prev = next
	}
}

// drawPointer draws one pointer's diagnostics in its id-derived color.
func (r *Renderer) drawPointer(screen *ebiten.Image, p *Pointer) {
	if len(p.Positions) == 0 {
		return
	}
	clr := pointerColor(p.ID)
	scale := float32(r.surface.Scale)

	// Position history, newest first, fading toward the oldest sample.
	for i, pt := range p.Positions {
		alpha := 1 - float64(i)/maxPositions
		vector.DrawFilledCircle(screen,
			float32(pt.X), float32(pt.Y), historyDot*scale,
			fade(clr, 0.5*alpha), true)
	}

	// Drag trail.
	for i := 0; i+1 < len(p.Trail); i++ {
		vector.StrokeLine(screen,
			float32(p.Trail[i].X), float32(p.Trail[i].Y),
			float32(p.Trail[i+1].X), float32(p.Trail[i+1].Y),
			trailWidth*scale, fade(clr, 0.8), true)
	}

	// Current position: filled while active, outlined while hovering.
	cur := p.Positions[0]
	if p.Active {
		vector.DrawFilledCircle(screen,
			float32(cur.X), float32(cur.Y), pointerDot*scale, clr, true)
	} else {
		vector.StrokeCircle(screen,
			float32(cur.X), float32(cur.Y), pointerDot*scale,
			1.5*scale, clr, true)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", p.ID),
		int(cur.X)+int(pointerDot*r.surface.Scale)+4, int(cur.Y)-8)
}

// pointerColor derives a stable, well-separated color from a pointer id by
// stepping the hue by the golden angle.
func pointerColor(id int) color.RGBA {
	hue := math.Mod(float64(id)*137.508, 360)
	c := colorful.Hsv(hue, 0.65, 0.95)
	red, green, blue := c.RGB255()
	return color.RGBA{R: red, G: green, B: blue, A: 0xff}
}

// fade returns clr with its alpha scaled by a in [0, 1], premultiplied.
func fade(clr color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return color.RGBA{
		R: uint8(float64(clr.R) * a),
		G: uint8(float64(clr.G) * a),
		B: uint8(float64(clr.B) * a),
		A: uint8(255 * a),
	}
}

// strokeSegment strokes the line from a to b transformed by m.
func strokeSegment(screen *ebiten.Image, m Affine, a, b Vec2, width float32, clr color.Color) {
	pa := m.Apply(a)
	pb := m.Apply(b)
	vector.StrokeLine(screen,
		float32(pa.X), float32(pa.Y), float32(pb.X), float32(pb.Y),
		width, clr, true)
}
