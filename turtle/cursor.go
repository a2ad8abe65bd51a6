package turtle

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

const (
	Forward     = 'F'
	TurnRight   = '+'
	TurnLeft    = '-'
	BranchOpen  = '['
	BranchClose = ']'

	// InitialHeading points every walk straight up.
	InitialHeading = 90.0
)

type cursor struct {
	pos     vec.Vec2
	heading float64
}

func (c *cursor) forward(length, angle float64) {
	if angle != 90 {
		rad := c.heading * math.Pi / 180
		c.pos = c.pos.Add(vec.Vec2{X: math.Cos(rad) * length, Y: math.Sin(rad) * length})
		return
	}

	switch c.heading {
	case 0:
		c.pos.X += length
	case 90:
		c.pos.Y += length
	case 180:
		c.pos.X -= length
	case 270:
		c.pos.Y -= length
	}
}

func (c *cursor) turn(delta float64) {
	h := math.Mod(c.heading+delta, 360)
	if h < 0 {
		h += 360
	}
	c.heading = h
}

type branchStack []cursor

func (s *branchStack) push(c cursor) {
	*s = append(*s, c)
}

func (s *branchStack) pop() (cursor, bool) {
	n := len(*s)
	if n == 0 {
		return cursor{}, false
	}
	c := (*s)[n-1]
	*s = (*s)[:n-1]
	return c, true
}

// walker receives the geometry produced by walk.
type walker interface {
	line(from, to vec.Vec2)
	restore(at vec.Vec2)
}

// walk interprets symbols starting at start heading InitialHeading. It stops
// at the first unbalanced ']'.
func walk(symbols string, start vec.Vec2, length, angle float64, w walker) error {
	c := cursor{pos: start, heading: InitialHeading}
	var stack branchStack

	for i, r := range symbols {
		switch r {
		case Forward:
			from := c.pos
			c.forward(length, angle)
			w.line(from, c.pos)
		case TurnRight:
			c.turn(-angle)
		case TurnLeft:
			c.turn(angle)
		case BranchOpen:
			stack.push(c)
		case BranchClose:
			saved, ok := stack.pop()
			if !ok {
				return fmt.Errorf("%w: unmatched ']' at offset %d", ErrUnbalancedBranch, i)
			}
			c = saved
			w.restore(c.pos)
		}
	}
	return nil
}
