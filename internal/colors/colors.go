// Package colors is the named color table handed to the drawing layer.
package colors

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"softfb/internal/raster"
)

// ErrUnknownColor is returned by Parse for names that are not in the table.
var ErrUnknownColor = errors.New("colors: unknown color")

var (
	Transparent = raster.Pixel{}
	Black       = raster.Pixel{R: 0, G: 0, B: 0, A: 255}
	White       = raster.Pixel{R: 255, G: 255, B: 255, A: 255}
	Red         = raster.Pixel{R: 255, G: 0, B: 0, A: 255}
	Green       = raster.Pixel{R: 0, G: 255, B: 0, A: 255}
	Blue        = raster.Pixel{R: 0, G: 0, B: 255, A: 255}
	Gray50      = gray(50)
)

// grays holds gray0 (black) .. gray100 (white) in steps of 10.
var grays = func() map[string]raster.Pixel {
	m := make(map[string]raster.Pixel, 11)
	for pct := 0; pct <= 100; pct += 10 {
		m["gray"+strconv.Itoa(pct)] = gray(pct)
	}
	return m
}()

func gray(pct int) raster.Pixel {
	v := uint8((pct*255 + 50) / 100)
	return raster.Pixel{R: v, G: v, B: v, A: 255}
}

// Named looks up a color by name, case-insensitively. The gray scale table
// is searched first, then the SVG 1.1 names.
func Named(name string) (raster.Pixel, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "transparent" {
		return Transparent, true
	}
	if p, ok := grays[strings.Replace(name, "grey", "gray", 1)]; ok {
		return p, true
	}
	c, ok := colornames.Map[name]
	if !ok {
		return raster.Pixel{}, false
	}
	return raster.Pixel{R: c.R, G: c.G, B: c.B, A: c.A}, true
}

// Parse accepts a color name or a hex form: #rgb, #rgba, #rrggbb, #rrggbbaa.
func Parse(s string) (raster.Pixel, error) {
	if !strings.HasPrefix(s, "#") {
		if p, ok := Named(s); ok {
			return p, nil
		}
		return raster.Pixel{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}

	hex := s[1:]
	switch len(hex) {
	case 3, 4:
		var b strings.Builder
		for _, r := range hex {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		hex = b.String()
	case 6, 8:
	default:
		return raster.Pixel{}, fmt.Errorf("colors: invalid hex length %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return raster.Pixel{}, fmt.Errorf("colors: parse %q: %w", s, err)
	}
	return raster.Pixel{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
