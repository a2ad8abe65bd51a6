package render

import "fmt"

// Op is one call made on a Recorder.
type Op struct {
	Name          string
	X, Y          float64
	Color         string
	Width, Height int
}

func (o Op) String() string {
	switch o.Name {
	case "move", "line", "marker":
		return fmt.Sprintf("%s(%g, %g)", o.Name, o.X, o.Y)
	case "color":
		return fmt.Sprintf("color(%s)", o.Color)
	case "canvas":
		return fmt.Sprintf("canvas(%d, %d)", o.Width, o.Height)
	}
	return o.Name
}

// Recorder remembers every call it receives.
type Recorder struct {
	Ops    []Op
	Closed int
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) MoveTo(x, y float64)     { r.Ops = append(r.Ops, Op{Name: "move", X: x, Y: y}) }
func (r *Recorder) LineTo(x, y float64)     { r.Ops = append(r.Ops, Op{Name: "line", X: x, Y: y}) }
func (r *Recorder) MarkerAt(x, y float64)   { r.Ops = append(r.Ops, Op{Name: "marker", X: x, Y: y}) }
func (r *Recorder) SetPenColor(name string) { r.Ops = append(r.Ops, Op{Name: "color", Color: name}) }
func (r *Recorder) Clear()                  { r.Ops = append(r.Ops, Op{Name: "clear"}) }

func (r *Recorder) SetupCanvas(width, height int) {
	r.Ops = append(r.Ops, Op{Name: "canvas", Width: width, Height: height})
}

func (r *Recorder) WaitForClose() error {
	r.Ops = append(r.Ops, Op{Name: "close"})
	r.Closed++
	return nil
}

// Count returns how many recorded calls have the given name.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// Trace returns the recorded calls in order, formatted with Op.String.
func (r *Recorder) Trace() []string {
	out := make([]string, len(r.Ops))
	for i, op := range r.Ops {
		out[i] = op.String()
	}
	return out
}
