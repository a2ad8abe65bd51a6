package render

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"github.com/viktordanov/lsystem"
	"github.com/viktordanov/lsystem/turtle"
)

func TestPageBuilderStrokes(t *testing.T) {
	var b pageBuilder
	b.SetPenColor("red")
	b.MoveTo(0, 0)
	b.MarkerAt(0, 0)
	b.LineTo(0, 10)
	b.LineTo(10, 10)
	b.MoveTo(0, 10)
	b.LineTo(0, 20)
	b.SetPenColor("blue")
	b.LineTo(5, 20)
	b.SetupCanvas(10, 20)

	pages := b.finish()
	require.Len(t, pages, 1)
	pg := pages[0]
	assert.Equal(t, 10, pg.Width)
	assert.Equal(t, 20, pg.Height)
	assert.Equal(t, []Marker{{Color: "red", At: vec.Vec2{}}}, pg.Markers)
	assert.Equal(t, []Stroke{
		{Color: "red", Points: []vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}}},
		{Color: "red", Points: []vec.Vec2{{X: 0, Y: 10}, {X: 0, Y: 20}}},
		{Color: "blue", Points: []vec.Vec2{{X: 0, Y: 20}, {X: 5, Y: 20}}},
	}, pg.Strokes)

	assert.Equal(t, []Page{{}}, b.finish())
}

func TestPageBuilderClear(t *testing.T) {
	var b pageBuilder
	b.LineTo(1, 1)
	b.SetupCanvas(1, 1)
	b.Clear()
	b.LineTo(2, 2)

	pages := b.finish()
	require.Len(t, pages, 2)
	assert.Equal(t, 1, pages[0].Width)
	assert.Equal(t, []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}}, pages[0].Strokes[0].Points)
	assert.Equal(t, []vec.Vec2{{X: 1, Y: 1}, {X: 2, Y: 2}}, pages[1].Strokes[0].Points)
}

func TestSVGEncode(t *testing.T) {
	s := NewSVG(nil, WithPadding(5), WithBackground("white"))
	out := string(s.Encode(Page{
		Width:   10,
		Height:  10,
		Strokes: []Stroke{{Color: "red", Points: []vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 10}}}},
		Markers: []Marker{{Color: "red", At: vec.Vec2{}}},
	}))

	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 20.0 20.0" width="20" height="20">`))
	assert.Contains(t, out, `<rect width="100%" height="100%" fill="white"/>`)
	assert.Contains(t, out, `<path d="M5.00 15.00L5.00 5.00" fill="none" stroke="red"`)
	assert.Contains(t, out, `<circle cx="5.00" cy="15.00" r="2.00" fill="red"/>`)
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
}

func TestSVGJitterIsSeeded(t *testing.T) {
	pg := Page{
		Width:   10,
		Height:  10,
		Strokes: []Stroke{{Color: "black", Points: []vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}}}},
	}

	plain := NewSVG(nil).Encode(pg)
	a := NewSVG(nil, WithJitter(1, 7)).Encode(pg)
	b := NewSVG(nil, WithJitter(1, 7)).Encode(pg)

	assert.Equal(t, a, b)
	assert.NotEqual(t, plain, a)
}

func TestSVGWaitForClosePages(t *testing.T) {
	var pages [][]byte
	s := NewSVG(CollectPages(&pages))
	s.LineTo(0, 10)
	s.SetupCanvas(10, 10)
	s.Clear()
	s.LineTo(10, 0)
	s.SetupCanvas(10, 10)

	require.NoError(t, s.WaitForClose())
	require.Len(t, pages, 2)
	assert.Contains(t, string(pages[0]), `M10.00 20.00L10.00 10.00`)
	assert.Contains(t, string(pages[1]), `M10.00 10.00L20.00 20.00`)
}

func TestPNGRasterize(t *testing.T) {
	p := NewPNG(nil)
	img := p.Rasterize(Page{
		Width:   10,
		Height:  10,
		Strokes: []Stroke{{Color: "black", Points: []vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 10}}}},
	})

	assert.Equal(t, 60, img.Bounds().Dx())
	assert.Equal(t, 60, img.Bounds().Dy())
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0, 0, 0, 0xff}, img.RGBAAt(20, 30))
	assert.Equal(t, color.RGBA{0xff, 0xff, 0xff, 0xff}, img.RGBAAt(40, 30))
}

func TestPNGEncode(t *testing.T) {
	var pages [][]byte
	p := NewPNG(CollectPages(&pages), WithScale(1), WithLineWidth(2), WithPNGPadding(0), WithPNGBackground("none"))
	p.SetPenColor("#336699")
	p.LineTo(5, 5)
	p.MarkerAt(0, 0)
	p.SetupCanvas(5, 5)

	require.NoError(t, p.WaitForClose())
	require.Len(t, pages, 1)
	assert.Equal(t, []byte("\x89PNG\r\n\x1a\n"), pages[0][:8])
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("Orange")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0xff, 0xa5, 0x00, 0xff}, c)

	c, err = ParseColor("#336699")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x33, 0x66, 0x99, 0xff}, c)

	for _, bad := range []string{"mauve", "#12", "#1234567"} {
		_, err = ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestFilePages(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree.svg")

	require.NoError(t, FilePages(path)(0, 1, []byte("one")))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one", string(data))

	require.NoError(t, FilePages(path)(1, 2, []byte("two")))
	data, err = os.ReadFile(filepath.Join(dir, "tree-2.svg"))
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))

	assert.Equal(t, "out/a-3.png", PageName("out/a.png", 2))
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	r.SetPenColor("red")
	r.MoveTo(1, 2)
	r.LineTo(3.5, 4)
	r.MarkerAt(0, 0)
	r.SetupCanvas(10, 20)
	r.Clear()
	require.NoError(t, r.WaitForClose())

	assert.Equal(t, []string{"color(red)", "move(1, 2)", "line(3.5, 4)", "marker(0, 0)", "canvas(10, 20)", "clear", "close"}, r.Trace())
	assert.Equal(t, 1, r.Count("line"))
	assert.Equal(t, 1, r.Closed)
}

func TestSVGWithPlotter(t *testing.T) {
	ls, err := lsystem.NewLSystem("F", lsystem.RuleSet{'F': "F[+F][-F]F"})
	require.NoError(t, err)

	var pages [][]byte
	p := turtle.NewPlotter(ls, NewSVG(CollectPages(&pages)), turtle.WithAngle(12))
	require.NoError(t, p.DrawEvolution(3, false))

	require.Len(t, pages, 3)
	for _, pg := range pages {
		assert.Contains(t, string(pg), "<path")
		assert.Contains(t, string(pg), "<circle")
	}
}
