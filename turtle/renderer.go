package turtle

import "github.com/viktordanov/lsystem"

// Renderer is a drawing backend. Coordinates are in drawing space with y
// pointing up; backends map them onto their own surface.
type Renderer interface {
	// MoveTo moves the pen without drawing.
	MoveTo(x, y float64)
	// LineTo draws a segment from the pen position to (x, y).
	LineTo(x, y float64)
	MarkerAt(x, y float64)
	SetPenColor(name string)
	// SetupCanvas sizes the current canvas once everything on it is drawn.
	SetupCanvas(width, height int)
	// WaitForClose blocks until the backend is finished with its output.
	WaitForClose() error
}

// Clearer is implemented by renderers that can start a fresh, empty canvas.
// The previous canvas is kept as a finished page.
type Clearer interface {
	Clear()
}

// Grammar is the rewriting capability a Plotter draws from.
// *lsystem.LSystem implements it.
type Grammar interface {
	Step(count int) string
	Evolve(n int) *lsystem.Evolution
	State() string
}
