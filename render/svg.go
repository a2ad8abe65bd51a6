package render

import (
	"bytes"
	"fmt"
	"html"

	"pgregory.net/rand"
	"seehuhn.de/go/geom/vec"
)

type SVGOption func(*SVG)

// WithStrokeWidth sets the line width in drawing units (default 1).
func WithStrokeWidth(w float64) SVGOption { return func(s *SVG) { s.strokeWidth = w } }

// WithPadding sets the blank border around the canvas (default 10).
func WithPadding(p float64) SVGOption { return func(s *SVG) { s.padding = p } }

// WithBackground fills the page with a color before drawing.
func WithBackground(c string) SVGOption { return func(s *SVG) { s.background = c } }

// WithJitter displaces every vertex by up to amount in each direction, giving
// a hand-drawn look. The same seed reproduces the same output.
func WithJitter(amount float64, seed uint64) SVGOption {
	return func(s *SVG) {
		s.jitter = amount
		s.seed = seed
	}
}

// SVG renders pages as standalone SVG documents.
type SVG struct {
	pageBuilder
	emit PageFunc

	strokeWidth float64
	padding     float64
	background  string
	jitter      float64
	seed        uint64
}

func NewSVG(emit PageFunc, opts ...SVGOption) *SVG {
	s := &SVG{
		pageBuilder: pageBuilder{color: "black"},
		emit:        emit,
		strokeWidth: 1,
		padding:     10,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WaitForClose encodes all pages and passes them to the PageFunc.
func (s *SVG) WaitForClose() error {
	pages := s.finish()
	for i, pg := range pages {
		if err := s.emit(i, len(pages), s.Encode(pg)); err != nil {
			return err
		}
	}
	return nil
}

// Encode renders a single page.
func (s *SVG) Encode(pg Page) []byte {
	var rnd *rand.Rand
	if s.jitter > 0 {
		rnd = rand.New(s.seed)
	}
	width := float64(pg.Width) + 2*s.padding
	height := float64(pg.Height) + 2*s.padding
	project := func(p vec.Vec2) vec.Vec2 {
		out := vec.Vec2{X: p.X + s.padding, Y: float64(pg.Height) + s.padding - p.Y}
		if rnd != nil {
			out.X += (rnd.Float64()*2 - 1) * s.jitter
			out.Y += (rnd.Float64()*2 - 1) * s.jitter
		}
		return out
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	if s.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", html.EscapeString(s.background))
	}

	for _, st := range pg.Strokes {
		if len(st.Points) < 2 {
			continue
		}
		buf.WriteString(`  <path d="`)
		for i, pt := range st.Points {
			cmd := 'L'
			if i == 0 {
				cmd = 'M'
			}
			q := project(pt)
			fmt.Fprintf(&buf, "%c%.2f %.2f", cmd, q.X, q.Y)
		}
		fmt.Fprintf(&buf, `" fill="none" stroke="%s" stroke-width="%.2f" stroke-linecap="round" stroke-linejoin="round"/>`+"\n",
			html.EscapeString(st.Color), s.strokeWidth)
	}

	for _, m := range pg.Markers {
		q := project(m.At)
		fmt.Fprintf(&buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`+"\n",
			q.X, q.Y, 2*s.strokeWidth, html.EscapeString(m.Color))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
