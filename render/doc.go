// Package render provides turtle.Renderer backends.
//
//   - SVG: one SVG document per canvas page, optionally hand-drawn via jitter
//   - PNG: rasterised with golang.org/x/image/vector
//   - Recorder: an in-memory log of every call, for tests and debugging
//
// SVG and PNG collect strokes into pages. A page is finished by Clear (see
// turtle.Clearer) or by WaitForClose, which encodes every page and hands it
// to the PageFunc given at construction:
//
//	svg := render.NewSVG(render.FilePages("tree.svg"), render.WithStrokeWidth(0.5))
//	p := turtle.NewPlotter(ls, svg)
//	err := p.DrawEvolution(4, false) // tree-1.svg … tree-4.svg
//
// Drawing coordinates have y pointing up; backends flip them onto their
// surface and pad the canvas on every side.
package render
