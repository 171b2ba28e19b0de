package imageio

import (
	"bytes"
	"errors"
	"runtime"
	"strings"
	"testing"

	"softfb/internal/raster"
)

func checkerboard(w, h uint32) *raster.Gray {
	g := raster.NewGray(w, h)
	for y := uint16(0); y < uint16(h); y++ {
		for x := uint16(0); x < uint16(w); x++ {
			p := raster.Pixel{R: uint8(x * 20), G: uint8(y * 30), B: 90, A: 255}
			if (x+y)%2 == 0 {
				p = raster.Pixel{R: 255, G: 255, B: 255, A: 255}
			}
			g.SetPixel(x, y, p)
		}
	}
	return g
}

func TestWritePPMLayout(t *testing.T) {
	g := raster.NewGray(2, 1)
	g.SetPixel(0, 0, raster.Pixel{R: 1, G: 2, B: 3, A: 4})
	g.SetPixel(1, 0, raster.Pixel{R: 5, G: 6, B: 7, A: 8})

	var buf bytes.Buffer
	if err := WritePPM(&buf, g); err != nil {
		t.Fatal(err)
	}
	want := "P6\n2 1\n255\n\x01\x02\x03\x05\x06\x07"
	if buf.String() != want {
		t.Fatalf("WritePPM = %q, want %q", buf.String(), want)
	}
}

func TestPPMRoundTrip(t *testing.T) {
	g := checkerboard(7, 5)
	var buf bytes.Buffer
	if err := WritePPM(&buf, g); err != nil {
		t.Fatal(err)
	}
	back, err := ReadPPM(&buf)
	if err != nil {
		t.Fatal(err)
	}
	assertSamePixels(t, g, back)
}

func TestReadPPMComments(t *testing.T) {
	in := "P6\n# made by hand\n1 1\n# max\n255\n\xff\x00\x80"
	g, err := ReadPPM(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if p, _ := g.GetPixel(0, 0); p != (raster.Pixel{R: 255, G: 0, B: 128, A: 255}) {
		t.Fatalf("pixel = %v", p)
	}
}

func TestReadPPMErrors(t *testing.T) {
	tests := map[string]string{
		"ascii variant": "P3\n1 1\n255\n0 0 0\n",
		"wide maxval":   "P6\n1 1\n65535\n\x00\x00\x00\x00\x00\x00",
		"short data":    "P6\n2 2\n255\n\x00\x00\x00",
		"bad width":     "P6\nx 1\n255\n",
		"empty":         "",
	}
	for name, in := range tests {
		if _, err := ReadPPM(strings.NewReader(in)); !errors.Is(err, ErrBadPPM) {
			t.Errorf("%s: err = %v, want ErrBadPPM", name, err)
		}
	}
}

func TestReadPPMTruncatedLargeHeader(t *testing.T) {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	_, err := ReadPPM(strings.NewReader("P6\n20000 20000\n255\n"))
	runtime.ReadMemStats(&after)

	if !errors.Is(err, ErrBadPPM) {
		t.Fatalf("err = %v, want ErrBadPPM", err)
	}
	// The header declares 1.6 GB of pixels; none of it should be reserved.
	if got := after.TotalAlloc - before.TotalAlloc; got > 8<<20 {
		t.Errorf("allocated %d bytes for an empty body", got)
	}
}

func assertSamePixels(t *testing.T, want, got *raster.Gray) {
	t.Helper()
	if want.Width() != got.Width() || want.Height() != got.Height() {
		t.Fatalf("dims = %dx%d, want %dx%d", got.Width(), got.Height(), want.Width(), want.Height())
	}
	for i, p := range want.Pix() {
		if got.Pix()[i] != p {
			t.Fatalf("index %d = %v, want %v", i, got.Pix()[i], p)
		}
	}
}
