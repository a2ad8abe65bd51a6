package turtle

import "github.com/charmbracelet/log"

const (
	DefaultLength = 10.0
	DefaultAngle  = 90.0
	DefaultMargin = 10.0

	// MinCanvasSize replaces canvas dimensions that come out smaller, such as
	// the zero-size box of a state without forward symbols.
	MinCanvasSize = 10
)

// DefaultPalette is cycled through, one color per drawing.
var DefaultPalette = []string{"red", "green", "blue", "orange", "yellow", "brown"}

type Option func(*Plotter)

// WithLength sets the initial step length of a forward move.
func WithLength(l float64) Option { return func(p *Plotter) { p.length = l } }

// WithAngle sets the turn angle in degrees.
func WithAngle(a float64) Option { return func(p *Plotter) { p.angle = a } }

// WithMargin sets the horizontal gap between drawings placed side by side.
func WithMargin(m float64) Option { return func(p *Plotter) { p.margin = m } }

func WithPalette(colors ...string) Option {
	return func(p *Plotter) {
		if len(colors) > 0 {
			p.palette = colors
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(p *Plotter) {
		if l != nil {
			p.logger = l
		}
	}
}
