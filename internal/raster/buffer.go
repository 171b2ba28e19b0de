package raster

// PixelBuffer is the capability set drawing code is written against.
// Coordinates are 16-bit, dimensions 32-bit.
type PixelBuffer interface {
	Width() uint32
	Height() uint32

	// SetPixel writes p at (x, y). It returns false, and writes nothing,
	// when the address is outside the buffer.
	SetPixel(x, y uint16, p Pixel) bool

	// GetPixel returns the pixel at (x, y). ok is false outside the buffer.
	GetPixel(x, y uint16) (p Pixel, ok bool)

	// SetSpan copies pix into row y starting at column x. It returns false,
	// and writes nothing, when the run does not fit inside the row.
	SetSpan(x, y uint16, pix []Pixel) bool

	// SetAllPixels overwrites every pixel with p.
	SetAllPixels(p Pixel) bool
}

// Gray is the dense store: a flat, row-major slice of width*height pixels.
// A Gray exclusively owns its storage; use Clone for an independent copy.
type Gray struct {
	width  uint32
	height uint32
	pix    []Pixel
}

var _ PixelBuffer = (*Gray)(nil)

// NewGray allocates a zeroed (transparent black) buffer.
func NewGray(width, height uint32) *Gray {
	return &Gray{
		width:  width,
		height: height,
		pix:    make([]Pixel, int(width)*int(height)),
	}
}

func (g *Gray) Width() uint32  { return g.width }
func (g *Gray) Height() uint32 { return g.height }

// Pix exposes the backing row-major storage. Writes through the returned
// slice are visible to the buffer.
func (g *Gray) Pix() []Pixel { return g.pix }

func (g *Gray) inBounds(x, y uint16) bool {
	return uint32(x) < g.width && uint32(y) < g.height
}

func (g *Gray) offset(x, y uint16) int {
	return int(y)*int(g.width) + int(x)
}

func (g *Gray) SetPixel(x, y uint16, p Pixel) bool {
	if !g.inBounds(x, y) {
		return false
	}
	g.pix[g.offset(x, y)] = p
	return true
}

func (g *Gray) GetPixel(x, y uint16) (Pixel, bool) {
	if !g.inBounds(x, y) {
		return Pixel{}, false
	}
	return g.pix[g.offset(x, y)], true
}

// GetPixelUnchecked reads (x, y) without validating x against the width.
// An x past the row end reads from the following row; an address past the
// end of storage panics.
func (g *Gray) GetPixelUnchecked(x, y uint16) Pixel {
	return g.pix[g.offset(x, y)]
}

func (g *Gray) SetSpan(x, y uint16, pix []Pixel) bool {
	if uint32(y) >= g.height || uint64(x)+uint64(len(pix)) > uint64(g.width) {
		return false
	}
	copy(g.pix[g.offset(x, y):], pix)
	return true
}

// SetSpanUnchecked copies pix starting at (x, y) with no row check: a run
// longer than the rest of the row continues into the next one. A run past
// the end of storage panics.
func (g *Gray) SetSpanUnchecked(x, y uint16, pix []Pixel) bool {
	off := g.offset(x, y)
	dst := g.pix[off : off+len(pix)]
	copy(dst, pix)
	return true
}

func (g *Gray) SetAllPixels(p Pixel) bool {
	for i := len(g.pix) - 1; i >= 0; i-- {
		g.pix[i] = p
	}
	return true
}

// Clone returns a deep copy with its own storage.
func (g *Gray) Clone() *Gray {
	c := &Gray{width: g.width, height: g.height, pix: make([]Pixel, len(g.pix))}
	copy(c.pix, g.pix)
	return c
}
