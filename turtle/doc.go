// Package turtle interprets L-system states as turtle graphics.
//
// # Symbols
//
// Five symbols carry meaning; everything else is ignored:
//
//   - F: move forward one step, drawing a line
//   - +: turn right (clockwise) by the configured angle
//   - -: turn left (counterclockwise) by the configured angle
//   - [: push the cursor (position and heading) onto the branch stack
//   - ]: pop the cursor from the branch stack
//
// Headings are in degrees, counterclockwise from the positive x-axis. Every
// walk starts heading 90°, straight up.
//
// # Extent
//
// [Extent] simulates a walk without drawing and returns the integer
// [BoundingBox] of everything visited, branches included. With a turn angle
// of exactly 90° movement is axis-aligned, so rectilinear grammars produce
// exact boxes.
//
// # Plotter
//
// A [Plotter] combines a [Grammar] (normally an *lsystem.LSystem) with a
// [Renderer] backend. [Plotter.Draw] positions the drawing so its box lies in
// non-negative coordinates and emits one line per forward symbol.
// [Plotter.DrawEvolution] draws successive generations, halving the step
// length each time, either side by side on one canvas or one per canvas:
//
//	ls, _ := lsystem.NewLSystem("F", lsystem.RuleSet{'F': "F[+F][-F]F"})
//	p := turtle.NewPlotter(ls, render.NewSVG(pages), turtle.WithAngle(12))
//	err := p.DrawEvolution(3, true)
//
// A Plotter holds per-draw state and must not be used concurrently.
package turtle
