package raster

import (
	"image"
	"image/color"
	"testing"
)

func TestPackedRoundTrip(t *testing.T) {
	p := Pixel{R: 0x11, G: 0x22, B: 0x33, A: 0x44}
	if got := p.Packed(); got != 0x44332211 {
		t.Fatalf("Packed = %#08x, want 0x44332211", got)
	}
	if got := PixelFromPacked(p.Packed()); got != p {
		t.Fatalf("PixelFromPacked = %v, want %v", got, p)
	}
}

func TestPackedEquality(t *testing.T) {
	a := Pixel{R: 1, G: 2, B: 3, A: 4}
	b := Pixel{R: 1, G: 2, B: 3, A: 5}
	if a.Packed() == b.Packed() {
		t.Fatal("distinct pixels packed equal")
	}
	if a.Packed() != (Pixel{R: 1, G: 2, B: 3, A: 4}).Packed() {
		t.Fatal("equal pixels packed differently")
	}
}

func TestPixelModel(t *testing.T) {
	got := PixelModel.Convert(color.RGBA{R: 128, G: 0, B: 0, A: 128}).(Pixel)
	want := Pixel{R: 255, G: 0, B: 0, A: 128}
	if got != want {
		t.Fatalf("Convert = %v, want %v", got, want)
	}
	p := Pixel{R: 9, G: 8, B: 7, A: 255}
	if PixelModel.Convert(p) != p {
		t.Fatal("Convert(Pixel) should be identity")
	}
}

func TestImageAdapters(t *testing.T) {
	g := NewGray(3, 2)
	g.SetPixel(2, 1, Pixel{R: 255, G: 128, B: 0, A: 255})

	if g.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("Bounds = %v", g.Bounds())
	}
	if g.At(-1, 0) != (Pixel{}) || g.At(3, 0) != (Pixel{}) {
		t.Fatal("At out of bounds should return zero pixel")
	}

	n := g.ToNRGBA()
	if c := n.NRGBAAt(2, 1); c != (color.NRGBA{R: 255, G: 128, B: 0, A: 255}) {
		t.Fatalf("ToNRGBA(2,1) = %v", c)
	}

	back := FromImage(n)
	for i, p := range g.Pix() {
		if back.Pix()[i] != p {
			t.Fatalf("FromImage index %d = %v, want %v", i, back.Pix()[i], p)
		}
	}

	g.Set(0, 0, color.White)
	if p, _ := g.GetPixel(0, 0); p != (Pixel{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("Set(0,0,white) -> %v", p)
	}
	g.Set(-5, 0, color.White)
}

func TestFromImageOffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 12, 11))
	src.Set(11, 10, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	g := FromImage(src)
	if g.Width() != 2 || g.Height() != 1 {
		t.Fatalf("dims = %dx%d, want 2x1", g.Width(), g.Height())
	}
	if p, _ := g.GetPixel(1, 0); p != (Pixel{R: 1, G: 2, B: 3, A: 255}) {
		t.Fatalf("(1,0) = %v", p)
	}
}
