package turtle

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"github.com/viktordanov/lsystem"
	"github.com/viktordanov/lsystem/render"
)

func newGrammar(t *testing.T, axiom string, rules lsystem.RuleSet) *lsystem.LSystem {
	t.Helper()
	ls, err := lsystem.NewLSystem(axiom, rules)
	require.NoError(t, err)
	return ls
}

func TestPlotterDraw(t *testing.T) {
	rec := render.NewRecorder()
	p := NewPlotter(newGrammar(t, "F-F", lsystem.RuleSet{'F': "F"}), rec)

	require.NoError(t, p.Draw())

	assert.Equal(t, []string{
		"color(red)",
		"move(10, 0)",
		"marker(10, 0)",
		"line(10, 10)",
		"line(0, 10)",
	}, rec.Trace())
	assert.Equal(t, BoundingBox{-10, 0, 0, 10}, p.Box())
	assert.Equal(t, vec.Vec2{X: 10, Y: 0}, p.Origin())
}

func TestPlotterDrawBranches(t *testing.T) {
	rec := render.NewRecorder()
	p := NewPlotter(newGrammar(t, "F[+F]F", lsystem.RuleSet{'F': "F"}), rec)

	require.NoError(t, p.Draw())

	assert.Equal(t, []string{
		"color(red)",
		"move(0, 0)",
		"marker(0, 0)",
		"line(0, 10)",
		"line(10, 10)",
		"move(0, 10)",
		"line(0, 20)",
	}, rec.Trace())
	w, h := p.CanvasSize()
	assert.Equal(t, 10, w)
	assert.Equal(t, 20, h)
}

func TestPlotterDrawUnbalanced(t *testing.T) {
	rec := render.NewRecorder()
	p := NewPlotter(newGrammar(t, "F]", lsystem.RuleSet{'F': "F"}), rec)

	err := p.Draw()
	assert.ErrorIs(t, err, ErrUnbalancedBranch)
	assert.Equal(t, 0, rec.Count("line"))
}

func TestPlotterDegenerateCanvas(t *testing.T) {
	rec := render.NewRecorder()
	p := NewPlotter(newGrammar(t, "+-+-", lsystem.RuleSet{'F': "F"}), rec)

	require.NoError(t, p.Draw())
	require.NoError(t, p.Done())

	assert.Equal(t, BoundingBox{}, p.Box())
	assert.Equal(t, []string{
		"color(red)",
		"move(0, 0)",
		"marker(0, 0)",
		"canvas(10, 10)",
		"close",
	}, rec.Trace())
}

func TestPlotterStepThenDraw(t *testing.T) {
	rec := render.NewRecorder()
	p := NewPlotter(newGrammar(t, "F", lsystem.RuleSet{'F': "F+F"}), rec, WithLength(4))

	require.NoError(t, p.Step(1).Draw())
	assert.Equal(t, 2, rec.Count("line"))
	assert.Equal(t, BoundingBox{0, 4, 0, 4}, p.Box())
}

func TestPlotterDrawEvolutionCombined(t *testing.T) {
	rec := render.NewRecorder()
	p := NewPlotter(newGrammar(t, "F", lsystem.RuleSet{'F': "F+F"}), rec)

	require.NoError(t, p.DrawEvolution(2, true))

	assert.Equal(t, []string{
		"color(red)",
		"move(0, 0)",
		"marker(0, 0)",
		"line(0, 10)",
		"line(10, 10)",
		"color(green)",
		"move(20, 0)",
		"move(20, 0)",
		"marker(20, 0)",
		"line(20, 5)",
		"line(25, 5)",
		"line(25, 0)",
		"line(20, 0)",
		"color(blue)",
		"move(35, 0)",
		"canvas(25, 10)",
		"close",
	}, rec.Trace())
	assert.Equal(t, 2.5, p.Length())
}

func TestPlotterDrawEvolutionSeparate(t *testing.T) {
	rec := render.NewRecorder()
	p := NewPlotter(newGrammar(t, "F", lsystem.RuleSet{'F': "F+F"}), rec)

	require.NoError(t, p.DrawEvolution(2, false))

	assert.Equal(t, []string{
		"color(red)",
		"move(0, 0)",
		"marker(0, 0)",
		"line(0, 10)",
		"line(10, 10)",
		"canvas(10, 10)",
		"clear",
		"move(0, 0)",
		"move(0, 0)",
		"marker(0, 0)",
		"line(0, 5)",
		"line(5, 5)",
		"line(5, 0)",
		"line(0, 0)",
		"canvas(10, 10)",
		"close",
	}, rec.Trace())
}

func TestPlotterDrawEvolutionStopsOnError(t *testing.T) {
	rec := render.NewRecorder()
	p := NewPlotter(newGrammar(t, "A", lsystem.RuleSet{'A': "F]"}), rec)

	err := p.DrawEvolution(3, true)
	assert.ErrorIs(t, err, ErrUnbalancedBranch)
	assert.Equal(t, 0, rec.Closed)
}

func TestPlotterPaletteCycles(t *testing.T) {
	rec := render.NewRecorder()
	p := NewPlotter(newGrammar(t, "F", lsystem.RuleSet{'F': "F"}), rec, WithPalette("a", "b"), WithMargin(0))

	for i := 0; i < 3; i++ {
		require.NoError(t, p.Draw())
		p.NextDraw()
	}

	var colors []string
	for _, op := range rec.Ops {
		if op.Name == "color" {
			colors = append(colors, op.Color)
		}
	}
	assert.Equal(t, []string{"a", "b", "a", "b"}, colors)
}

func TestPlotterReset(t *testing.T) {
	rec := render.NewRecorder()
	p := NewPlotter(newGrammar(t, "F-F", lsystem.RuleSet{'F': "F"}), rec)

	require.NoError(t, p.Draw())
	p.NextDraw()
	p.Reset()

	assert.Equal(t, vec.Vec2{}, p.Origin())
	assert.Equal(t, BoundingBox{}, p.Box())
	w, h := p.CanvasSize()
	assert.Equal(t, MinCanvasSize, w)
	assert.Equal(t, MinCanvasSize, h)
}

func TestPlotterLogsDraws(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	p := NewPlotter(newGrammar(t, "F", lsystem.RuleSet{'F': "F"}), render.NewRecorder(), WithLogger(logger), WithAngle(45))

	require.NoError(t, p.Draw())
	assert.Contains(t, buf.String(), "draw")
	assert.Contains(t, buf.String(), "(0, 1, 0, 10)")
}
