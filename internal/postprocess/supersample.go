package postprocess

import (
	"image"

	"golang.org/x/image/draw"

	"softfb/internal/raster"
)

// Downsample reduces src to width x height with premultiplied-alpha-aware
// CatmullRom filtering, which keeps transparent edges from darkening.
// When src is not larger than the target, a copy of it is returned; the
// result never shares storage with src.
func Downsample(src *raster.Gray, width, height uint32) *raster.Gray {
	if src.Width() <= width && src.Height() <= height {
		return src.Clone()
	}

	// Premultiply alpha
	b := src.Bounds()
	premul := image.NewRGBA(b)
	draw.Draw(premul, b, src, b.Min, draw.Src)

	dst := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premul, b, draw.Src, nil)

	// Unpremultiply alpha
	out := raster.NewGray(width, height)
	pix := out.Pix()
	for i := range pix {
		j := i * 4
		a := float64(dst.Pix[j+3])
		if a > 1 {
			inv := 255.0 / a
			pix[i].R = clamp8(float64(dst.Pix[j]) * inv)
			pix[i].G = clamp8(float64(dst.Pix[j+1]) * inv)
			pix[i].B = clamp8(float64(dst.Pix[j+2]) * inv)
		}
		pix[i].A = dst.Pix[j+3]
	}
	return out
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
