package render

import "seehuhn.de/go/geom/vec"

// Stroke is a connected polyline drawn in one color.
type Stroke struct {
	Color  string
	Points []vec.Vec2
}

type Marker struct {
	Color string
	At    vec.Vec2
}

// Page is one finished canvas.
type Page struct {
	Width, Height int
	Strokes       []Stroke
	Markers       []Marker
}

// pageBuilder implements the drawing half of turtle.Renderer by collecting
// strokes into pages.
type pageBuilder struct {
	pages []Page
	cur   Page

	pen     vec.Vec2
	color   string
	drawing bool // the last stroke in cur is still being extended
}

func (b *pageBuilder) MoveTo(x, y float64) {
	b.pen = vec.Vec2{X: x, Y: y}
	b.drawing = false
}

func (b *pageBuilder) LineTo(x, y float64) {
	to := vec.Vec2{X: x, Y: y}
	if !b.drawing {
		b.cur.Strokes = append(b.cur.Strokes, Stroke{Color: b.color, Points: []vec.Vec2{b.pen}})
		b.drawing = true
	}
	last := &b.cur.Strokes[len(b.cur.Strokes)-1]
	last.Points = append(last.Points, to)
	b.pen = to
}

func (b *pageBuilder) MarkerAt(x, y float64) {
	b.cur.Markers = append(b.cur.Markers, Marker{Color: b.color, At: vec.Vec2{X: x, Y: y}})
}

func (b *pageBuilder) SetPenColor(name string) {
	b.color = name
	b.drawing = false
}

func (b *pageBuilder) SetupCanvas(width, height int) {
	b.cur.Width = width
	b.cur.Height = height
}

// Clear finishes the current page and starts an empty one.
func (b *pageBuilder) Clear() {
	b.pages = append(b.pages, b.cur)
	b.cur = Page{}
	b.drawing = false
}

// finish returns all pages, including the current one, and empties the builder.
func (b *pageBuilder) finish() []Page {
	pages := append(b.pages, b.cur)
	b.pages = nil
	b.cur = Page{}
	b.drawing = false
	return pages
}

// PageFunc receives each encoded page, numbered from 0, along with the total
// number of pages.
type PageFunc func(page, total int, data []byte) error
