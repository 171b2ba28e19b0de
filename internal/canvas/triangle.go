package canvas

import (
	"softfb/internal/geom"
	"softfb/internal/mathutil"
)

// FillTriangle scan-converts t with the fill color. It walks rows from the
// top vertex to the bottom one, taking one boundary from the long edge
// (top to bottom) and the other from whichever short edge spans the row.
// A zero-area triangle is drawn as its longest edge, which covers the
// other two.
func (c *Context) FillTriangle(t geom.Triangle) int {
	if t.Degenerate() {
		a, b := longestEdge(t)
		return c.line(int(a.X), int(a.Y), int(b.X), int(b.Y), c.fill)
	}
	top, mid, bot := t.Top(), t.Mid(), t.Bottom()

	yStart := int(top.Y)
	yEnd := min(int(bot.Y), c.maxY)

	n := 0
	for y := yStart; y <= yEnd; y++ {
		lo, hi := edgeX(top, bot, y)
		var slo, shi int
		if y < int(mid.Y) {
			slo, shi = edgeX(top, mid, y)
		} else {
			slo, shi = edgeX(mid, bot, y)
		}
		n += c.span(min(lo, slo), max(hi, shi), y, c.fill)
	}
	return n
}

// StrokeTriangle outlines t with the stroke color. Shared corners are
// counted once per edge that draws them.
func (c *Context) StrokeTriangle(t geom.Triangle) int {
	v := t.Verts
	n := 0
	for i := 0; i < 3; i++ {
		a, b := v[i], v[(i+1)%3]
		n += c.StrokeLine(int(a.X), int(a.Y), int(b.X), int(b.Y))
	}
	return n
}

// edgeX returns the columns the edge a-b covers on row y. A horizontal
// edge covers its whole extent.
func edgeX(a, b geom.Point2D, y int) (lo, hi int) {
	x, err := mathutil.MapRange(y, int(a.Y), int(b.Y), int(a.X), int(b.X))
	if err != nil {
		lo, hi = int(a.X), int(b.X)
		if lo > hi {
			lo, hi = hi, lo
		}
		return lo, hi
	}
	return x, x
}

func longestEdge(t geom.Triangle) (a, b geom.Point2D) {
	v := t.Verts
	best := -1
	for i := 0; i < 3; i++ {
		p, q := v[i], v[(i+1)%3]
		dx, dy := p.Delta(q)
		if d := dx*dx + dy*dy; d > best {
			best, a, b = d, p, q
		}
	}
	return a, b
}
