package raster

import (
	"image"
	"image/color"
	"math"
)

// ColorModel implements image.Image.
func (g *Gray) ColorModel() color.Model { return PixelModel }

// Bounds implements image.Image.
func (g *Gray) Bounds() image.Rectangle {
	return image.Rect(0, 0, int(g.width), int(g.height))
}

// At implements image.Image. Out-of-bounds reads return the zero pixel.
func (g *Gray) At(x, y int) color.Color {
	if x < 0 || y < 0 || x > math.MaxUint16 || y > math.MaxUint16 {
		return Pixel{}
	}
	p, _ := g.GetPixel(uint16(x), uint16(y))
	return p
}

// Set implements draw.Image so the x/image scalers can target a Gray.
func (g *Gray) Set(x, y int, c color.Color) {
	if x < 0 || y < 0 || x > math.MaxUint16 || y > math.MaxUint16 {
		return
	}
	g.SetPixel(uint16(x), uint16(y), PixelModel.Convert(c).(Pixel))
}

// ToNRGBA copies the buffer into a new *image.NRGBA.
func (g *Gray) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(g.Bounds())
	for i, p := range g.pix {
		j := i * 4
		img.Pix[j] = p.R
		img.Pix[j+1] = p.G
		img.Pix[j+2] = p.B
		img.Pix[j+3] = p.A
	}
	return img
}

// FromImage builds a Gray from any image, anchored at its bounds' origin.
// Images larger than the 16-bit coordinate space are cropped.
func FromImage(src image.Image) *Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > math.MaxUint16+1 {
		w = math.MaxUint16 + 1
	}
	if h > math.MaxUint16+1 {
		h = math.MaxUint16 + 1
	}
	g := NewGray(uint32(w), uint32(h))

	if n, ok := src.(*image.NRGBA); ok {
		for y := 0; y < h; y++ {
			off := n.PixOffset(b.Min.X, b.Min.Y+y)
			row := g.pix[y*w : (y+1)*w]
			for x := range row {
				i := off + x*4
				row[x] = Pixel{R: n.Pix[i], G: n.Pix[i+1], B: n.Pix[i+2], A: n.Pix[i+3]}
			}
		}
		return g
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.pix[y*w+x] = PixelModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(Pixel)
		}
	}
	return g
}
