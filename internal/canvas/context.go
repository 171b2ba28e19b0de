// Package canvas turns line and shape requests into pixel writes on a
// raster.PixelBuffer. Geometry that falls outside the buffer is clipped;
// every drawing call returns the number of pixels it wrote.
package canvas

import (
	"math"

	"softfb/internal/mathutil"
	"softfb/internal/raster"
)

// Context draws into a single buffer with the current colors.
// It is not safe for concurrent use.
type Context struct {
	buf        raster.PixelBuffer
	background raster.Pixel
	stroke     raster.Pixel
	fill       raster.Pixel

	// maxX and maxY are the last addressable column and row, or -1.
	maxX, maxY int

	scratch []raster.Pixel
}

// New returns a context drawing into buf. Colors default to a transparent
// background with opaque black stroke and fill.
func New(buf raster.PixelBuffer) *Context {
	black := raster.Pixel{A: 255}
	return &Context{
		buf:    buf,
		stroke: black,
		fill:   black,
		maxX:   lastIndex(buf.Width()),
		maxY:   lastIndex(buf.Height()),
	}
}

func lastIndex(n uint32) int {
	if n > math.MaxUint16+1 {
		n = math.MaxUint16 + 1
	}
	return int(n) - 1
}

func (c *Context) Buffer() raster.PixelBuffer   { return c.buf }
func (c *Context) SetBackground(p raster.Pixel) { c.background = p }
func (c *Context) SetStroke(p raster.Pixel)     { c.stroke = p }
func (c *Context) SetFill(p raster.Pixel)       { c.fill = p }
func (c *Context) Background() raster.Pixel     { return c.background }
func (c *Context) Stroke() raster.Pixel         { return c.stroke }
func (c *Context) Fill() raster.Pixel           { return c.fill }

// Clear paints the whole buffer with the background color.
func (c *Context) Clear() {
	c.buf.SetAllPixels(c.background)
}

// StrokeHorizontalLine draws row y from x1 to x2 inclusive.
func (c *Context) StrokeHorizontalLine(x1, x2, y int) int {
	return c.span(x1, x2, y, c.stroke)
}

// StrokeVerticalLine draws column x from y1 to y2 inclusive.
func (c *Context) StrokeVerticalLine(x, y1, y2 int) int {
	return c.column(x, y1, y2, c.stroke)
}

func (c *Context) column(x, y1, y2 int, p raster.Pixel) int {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	if x < 0 || x > c.maxX || y2 < 0 || y1 > c.maxY {
		return 0
	}
	y1 = mathutil.Clamp(y1, 0, c.maxY)
	y2 = mathutil.Clamp(y2, 0, c.maxY)

	n := 0
	for y := y1; y <= y2; y++ {
		if c.buf.SetPixel(uint16(x), uint16(y), p) {
			n++
		}
	}
	return n
}

// StrokeLine draws a one pixel wide line between two points, endpoints
// included, with Bresenham's algorithm. The segment is clipped to the
// buffer first, so the walk never leaves it.
func (c *Context) StrokeLine(x1, y1, x2, y2 int) int {
	return c.line(x1, y1, x2, y2, c.stroke)
}

func (c *Context) line(x1, y1, x2, y2 int, p raster.Pixel) int {
	if y1 == y2 {
		return c.span(x1, x2, y1, p)
	}
	if x1 == x2 {
		return c.column(x1, y1, y2, p)
	}
	x1, y1, x2, y2, ok := c.clip(x1, y1, x2, y2)
	if !ok {
		return 0
	}

	dx := x2 - x1
	dy := y2 - y1
	sx := mathutil.Sgn(dx)
	sy := mathutil.Sgn(dy)
	dx *= sx
	dy = -dy * sy
	e := dx + dy

	n := 0
	x, y := x1, y1
	for {
		if c.plot(x, y, p) {
			n++
		}
		if x == x2 && y == y2 {
			return n
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// clip cuts the segment down to the part inside [0, maxX] x [0, maxY]
// (Liang-Barsky). Endpoints already inside are returned unchanged.
func (c *Context) clip(x1, y1, x2, y2 int) (int, int, int, int, bool) {
	if c.maxX < 0 || c.maxY < 0 {
		return 0, 0, 0, 0, false
	}
	fx, fy := float64(x1), float64(y1)
	dx, dy := float64(x2-x1), float64(y2-y1)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, fx},
		{dx, float64(c.maxX) - fx},
		{-dy, fy},
		{dy, float64(c.maxY) - fy},
	}
	for _, edge := range edges {
		p, q := edge[0], edge[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = min(t1, r)
		}
	}

	at := func(t float64) (int, int) {
		x := int(math.Round(fx + t*dx))
		y := int(math.Round(fy + t*dy))
		return mathutil.Clamp(x, 0, c.maxX), mathutil.Clamp(y, 0, c.maxY)
	}
	if t1 < 1 {
		x2, y2 = at(t1)
	}
	if t0 > 0 {
		x1, y1 = at(t0)
	}
	return x1, y1, x2, y2, true
}

// FillRect fills the w by h rectangle whose top-left corner is (x, y).
func (c *Context) FillRect(x, y, w, h int) int {
	if w <= 0 || h <= 0 {
		return 0
	}
	n := 0
	for row := mathutil.Clamp(y, 0, c.maxY+1); row < y+h && row <= c.maxY; row++ {
		n += c.span(x, x+w-1, row, c.fill)
	}
	return n
}

// StrokeRect outlines the w by h rectangle whose top-left corner is (x, y).
func (c *Context) StrokeRect(x, y, w, h int) int {
	if w <= 0 || h <= 0 {
		return 0
	}
	x2, y2 := x+w-1, y+h-1
	n := c.StrokeHorizontalLine(x, x2, y)
	if h > 1 {
		n += c.StrokeHorizontalLine(x, x2, y2)
	}
	if h > 2 {
		n += c.StrokeVerticalLine(x, y+1, y2-1)
		if w > 1 {
			n += c.StrokeVerticalLine(x2, y+1, y2-1)
		}
	}
	return n
}

func (c *Context) plot(x, y int, p raster.Pixel) bool {
	if x < 0 || y < 0 || x > c.maxX || y > c.maxY {
		return false
	}
	return c.buf.SetPixel(uint16(x), uint16(y), p)
}

// span writes p over [x1, x2] on row y after clipping, as a single SetSpan.
func (c *Context) span(x1, x2, y int, p raster.Pixel) int {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if c.maxX < 0 || y < 0 || y > c.maxY || x2 < 0 || x1 > c.maxX {
		return 0
	}
	x1 = mathutil.Clamp(x1, 0, c.maxX)
	x2 = mathutil.Clamp(x2, 0, c.maxX)

	n := x2 - x1 + 1
	run := c.run(n, p)
	if !c.buf.SetSpan(uint16(x1), uint16(y), run) {
		return 0
	}
	return n
}

// run returns n copies of p backed by a reused scratch slice.
func (c *Context) run(n int, p raster.Pixel) []raster.Pixel {
	if cap(c.scratch) < n {
		c.scratch = make([]raster.Pixel, n)
	}
	s := c.scratch[:n]
	for i := range s {
		s[i] = p
	}
	return s
}
