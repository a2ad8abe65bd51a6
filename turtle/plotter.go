package turtle

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
	"seehuhn.de/go/geom/vec"
)

// Plotter draws the states of a Grammar onto a Renderer.
//
// Drawings are laid out left to right in slots. Each Draw shifts its origin
// inside the current slot so the whole bounding box has non-negative
// coordinates; NextDraw opens the next slot to the right.
type Plotter struct {
	grammar  Grammar
	renderer Renderer
	logger   *log.Logger

	length  float64
	angle   float64
	margin  float64
	palette []string

	drawIndex int
	slot      vec.Vec2
	origin    vec.Vec2
	box       BoundingBox

	// extent of everything drawn since the last Reset
	canvasWidth  float64
	canvasHeight float64
}

// NewPlotter returns a plotter drawing g onto r and selects the first pen color.
func NewPlotter(g Grammar, r Renderer, opts ...Option) *Plotter {
	p := &Plotter{
		grammar:  g,
		renderer: r,
		logger:   log.New(io.Discard),
		length:   DefaultLength,
		angle:    DefaultAngle,
		margin:   DefaultMargin,
		palette:  DefaultPalette,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.renderer.SetPenColor(p.penColor())
	return p
}

// Step advances the grammar count generations.
func (p *Plotter) Step(count int) *Plotter {
	p.grammar.Step(count)
	return p
}

// Draw renders the grammar's current state. An unbalanced ']' aborts the
// draw with ErrUnbalancedBranch before anything is emitted.
func (p *Plotter) Draw() error {
	state := p.grammar.State()

	box, err := Extent(state, p.length, p.angle)
	if err != nil {
		return err
	}
	p.box = box

	p.origin = vec.Vec2{
		X: p.slot.X - math.Min(0, float64(box.XMin)),
		Y: p.slot.Y - math.Min(0, float64(box.YMin)),
	}
	p.logger.Debug("draw", "index", p.drawIndex, "symbols", len(state), "length", p.length, "box", box, "origin", p.origin)

	p.renderer.MoveTo(p.origin.X, p.origin.Y)
	p.renderer.MarkerAt(p.origin.X, p.origin.Y)
	if err := walk(state, p.origin, p.length, p.angle, penWalker{p.renderer}); err != nil {
		return err
	}

	p.canvasWidth = math.Max(p.canvasWidth, p.slot.X+float64(box.Width()))
	p.canvasHeight = math.Max(p.canvasHeight, p.slot.Y+float64(box.Height()))
	return nil
}

// NextDraw moves to the slot right of the last drawing and switches to the
// next pen color.
func (p *Plotter) NextDraw() *Plotter {
	p.drawIndex++
	p.renderer.SetPenColor(p.penColor())

	p.slot.X += float64(p.box.Width()) + p.margin
	p.origin = p.slot
	p.renderer.MoveTo(p.origin.X, p.origin.Y)
	return p
}

// Reset moves the pen home and forgets the layout of previous drawings.
func (p *Plotter) Reset() *Plotter {
	p.slot = vec.Vec2{}
	p.origin = vec.Vec2{}
	p.box = BoundingBox{}
	p.canvasWidth = 0
	p.canvasHeight = 0
	p.renderer.MoveTo(0, 0)
	return p
}

// Done sizes the canvas to fit every drawing since the last Reset and waits
// for the renderer to finish.
func (p *Plotter) Done() error {
	p.setupCanvas()
	return p.renderer.WaitForClose()
}

// DrawEvolution draws the next n generations of the grammar, halving the
// step length after each one. With combine set the generations share one
// canvas side by side; otherwise each gets a canvas of its own, provided the
// renderer implements Clearer. It finishes with Done.
func (p *Plotter) DrawEvolution(n int, combine bool) error {
	it := p.grammar.Evolve(n)
	for it.Next() {
		if !combine && it.Index() > 1 {
			p.setupCanvas()
			if c, ok := p.renderer.(Clearer); ok {
				c.Clear()
			}
			p.Reset()
		}

		if err := p.Draw(); err != nil {
			return err
		}
		p.length *= 0.5
		if combine {
			p.NextDraw()
		}
	}
	return p.Done()
}

// Box returns the bounding box computed by the last Draw.
func (p *Plotter) Box() BoundingBox {
	return p.box
}

// Origin returns the point the last Draw started from.
func (p *Plotter) Origin() vec.Vec2 {
	return p.origin
}

// Length returns the current step length.
func (p *Plotter) Length() float64 {
	return p.length
}

// CanvasSize returns the canvas dimensions Done would use.
func (p *Plotter) CanvasSize() (width, height int) {
	width = int(math.Ceil(p.canvasWidth))
	height = int(math.Ceil(p.canvasHeight))
	if width < MinCanvasSize {
		width = MinCanvasSize
	}
	if height < MinCanvasSize {
		height = MinCanvasSize
	}
	return width, height
}

func (p *Plotter) setupCanvas() {
	w, h := p.CanvasSize()
	p.logger.Debug("canvas", "width", w, "height", h)
	p.renderer.SetupCanvas(w, h)
}

func (p *Plotter) penColor() string {
	return p.palette[p.drawIndex%len(p.palette)]
}

// penWalker forwards walked geometry to a renderer.
type penWalker struct {
	r Renderer
}

func (w penWalker) line(_, to vec.Vec2) {
	w.r.LineTo(to.X, to.Y)
}

func (w penWalker) restore(at vec.Vec2) {
	w.r.MoveTo(at.X, at.Y)
}
