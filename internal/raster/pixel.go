package raster

import "image/color"

// Pixel is a straight-alpha RGBA value, 8 bits per channel.
type Pixel struct {
	R, G, B, A uint8
}

// PixelFromPacked unpacks a word produced by Pixel.Packed.
func PixelFromPacked(v uint32) Pixel {
	return Pixel{
		R: uint8(v),
		G: uint8(v >> 8),
		B: uint8(v >> 16),
		A: uint8(v >> 24),
	}
}

// Packed returns the pixel as a single word, R in the low byte.
func (p Pixel) Packed() uint32 {
	return uint32(p.R) | uint32(p.G)<<8 | uint32(p.B)<<16 | uint32(p.A)<<24
}

// RGBA implements color.Color.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}.RGBA()
}

// PixelModel converts any color to a Pixel.
var PixelModel = color.ModelFunc(pixelModel)

func pixelModel(c color.Color) color.Color {
	if p, ok := c.(Pixel); ok {
		return p
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{R: n.R, G: n.G, B: n.B, A: n.A}
}
