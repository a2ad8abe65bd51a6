package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/vec"
)

type PNGOption func(*PNG)

// WithScale sets pixels per drawing unit (default 2).
func WithScale(s float64) PNGOption { return func(p *PNG) { p.scale = s } }

// WithLineWidth sets the line width in drawing units (default 1).
func WithLineWidth(w float64) PNGOption { return func(p *PNG) { p.lineWidth = w } }

// WithPNGPadding sets the blank border around the canvas in drawing units (default 10).
func WithPNGPadding(pad float64) PNGOption { return func(p *PNG) { p.padding = pad } }

// WithPNGBackground sets the page color (default white). Unknown colors
// leave the page transparent.
func WithPNGBackground(c string) PNGOption { return func(p *PNG) { p.background = c } }

// PNG rasterises pages with an anti-aliasing vector rasteriser.
type PNG struct {
	pageBuilder
	emit PageFunc

	scale      float64
	lineWidth  float64
	padding    float64
	background string
}

func NewPNG(emit PageFunc, opts ...PNGOption) *PNG {
	p := &PNG{
		pageBuilder: pageBuilder{color: "black"},
		emit:        emit,
		scale:       2,
		lineWidth:   1,
		padding:     10,
		background:  "white",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WaitForClose encodes all pages and passes them to the PageFunc.
func (p *PNG) WaitForClose() error {
	pages := p.finish()
	for i, pg := range pages {
		data, err := p.Encode(pg)
		if err != nil {
			return fmt.Errorf("encode page %d: %w", i+1, err)
		}
		if err := p.emit(i, len(pages), data); err != nil {
			return err
		}
	}
	return nil
}

// Rasterize draws a page into a new image.
func (p *PNG) Rasterize(pg Page) *image.RGBA {
	w := int(math.Ceil((float64(pg.Width) + 2*p.padding) * p.scale))
	h := int(math.Ceil((float64(pg.Height) + 2*p.padding) * p.scale))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if bg, err := ParseColor(p.background); err == nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	project := func(v vec.Vec2) vec.Vec2 {
		return vec.Vec2{
			X: (v.X + p.padding) * p.scale,
			Y: (float64(pg.Height) + p.padding - v.Y) * p.scale,
		}
	}
	halfWidth := p.lineWidth * p.scale / 2

	z := vector.NewRasterizer(w, h)
	fill := func(c string) {
		col, err := ParseColor(c)
		if err != nil {
			col = color.RGBA{A: 0xff}
		}
		z.Draw(img, img.Bounds(), image.NewUniform(col), image.Point{})
		z.Reset(w, h)
	}

	for _, st := range pg.Strokes {
		for i := 1; i < len(st.Points); i++ {
			addSegment(z, project(st.Points[i-1]), project(st.Points[i]), halfWidth)
		}
		fill(st.Color)
	}
	for _, m := range pg.Markers {
		addOctagon(z, project(m.At), 2*halfWidth)
		fill(m.Color)
	}
	return img
}

// Encode rasterises a page and encodes it as PNG.
func (p *PNG) Encode(pg Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, p.Rasterize(pg)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// addSegment adds the rectangle covering a line of the given half width.
func addSegment(z *vector.Rasterizer, a, b vec.Vec2, halfWidth float64) {
	d := b.Sub(a)
	length := d.Length()
	if length == 0 {
		addOctagon(z, a, halfWidth)
		return
	}
	n := vec.Vec2{X: -d.Y, Y: d.X}.Mul(halfWidth / length)
	// extend by half the width so joints between segments have no gaps
	t := d.Mul(halfWidth / length)
	a, b = a.Sub(t), b.Add(t)

	z.MoveTo(float32(a.X+n.X), float32(a.Y+n.Y))
	z.LineTo(float32(b.X+n.X), float32(b.Y+n.Y))
	z.LineTo(float32(b.X-n.X), float32(b.Y-n.Y))
	z.LineTo(float32(a.X-n.X), float32(a.Y-n.Y))
	z.ClosePath()
}

func addOctagon(z *vector.Rasterizer, c vec.Vec2, r float64) {
	for i := 0; i < 8; i++ {
		angle := float64(i) * math.Pi / 4
		x := float32(c.X + r*math.Cos(angle))
		y := float32(c.Y + r*math.Sin(angle))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
}
