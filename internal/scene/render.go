package scene

import (
	"fmt"
	"math"

	"softfb/internal/canvas"
	"softfb/internal/colors"
	"softfb/internal/geom"
	"softfb/internal/postprocess"
	"softfb/internal/raster"
)

// Render draws s into a new buffer of the scene's size. With supersample
// greater than one, the scene is drawn at that multiple of its size and
// filtered back down.
func Render(s Scene, supersample int) (*raster.Gray, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if supersample < 1 {
		supersample = 1
	}
	w := uint64(s.Width) * uint64(supersample)
	h := uint64(s.Height) * uint64(supersample)
	if w > math.MaxUint16+1 || h > math.MaxUint16+1 {
		return nil, fmt.Errorf("%w: %dx supersampled size %dx%d exceeds coordinate range",
			ErrInvalidScene, supersample, w, h)
	}

	buf := raster.NewGray(uint32(w), uint32(h))
	dc := canvas.New(buf)
	if s.Background != "" {
		dc.SetBackground(mustColor(s.Background))
		dc.Clear()
	}
	for _, sh := range s.Shapes {
		if err := drawShape(dc, sh, supersample); err != nil {
			return nil, err
		}
	}

	if supersample > 1 {
		return postprocess.Downsample(buf, s.Width, s.Height), nil
	}
	return buf, nil
}

func drawShape(dc *canvas.Context, sh Shape, ss int) error {
	p := make([]int, len(sh.Points))
	for i, v := range sh.Points {
		p[i] = v * ss
	}
	switch sh.Type {
	case KindHLine:
		p[0], p[1] = min(p[0], p[1]), max(p[0], p[1])
	case KindVLine:
		p[1], p[2] = min(p[1], p[2]), max(p[1], p[2])
	}
	// Lines thicken across their minor axis with the supersample factor so
	// they survive filtering.
	thick := func(draw func(off int)) {
		for off := 0; off < ss; off++ {
			draw(off)
		}
	}

	stroke := colors.Black
	if sh.Stroke != "" {
		stroke = mustColor(sh.Stroke)
	}
	dc.SetStroke(stroke)

	switch sh.Type {
	case KindHLine:
		thick(func(off int) { dc.StrokeHorizontalLine(p[0], p[1]+ss-1, p[2]+off) })
	case KindVLine:
		thick(func(off int) { dc.StrokeVerticalLine(p[0]+off, p[1], p[2]+ss-1) })
	case KindLine:
		x1, y1, x2, y2 := p[0], p[1], p[2], p[3]
		if abs(x2-x1) >= abs(y2-y1) {
			if x1 > x2 {
				x1, y1, x2, y2 = x2, y2, x1, y1
			}
			thick(func(off int) { dc.StrokeLine(x1, y1+off, x2+ss-1, y2+off) })
		} else {
			if y1 > y2 {
				x1, y1, x2, y2 = x2, y2, x1, y1
			}
			thick(func(off int) { dc.StrokeLine(x1+off, y1, x2+off, y2+ss-1) })
		}
	case KindRect:
		filled, outlined := paints(sh)
		if filled {
			dc.SetFill(fillOf(sh))
			dc.FillRect(p[0], p[1], p[2], p[3])
		}
		if outlined {
			for off := 0; off < ss; off++ {
				dc.StrokeRect(p[0]+off, p[1]+off, p[2]-2*off, p[3]-2*off)
			}
		}
	case KindTriangle:
		for _, v := range p {
			if v > math.MaxUint16 {
				return fmt.Errorf("%w: triangle coordinate %d out of range at %dx", ErrInvalidScene, v, ss)
			}
		}
		t := geom.NewTriangle(uint16(p[0]), uint16(p[1]), uint16(p[2]), uint16(p[3]), uint16(p[4]), uint16(p[5]))
		filled, outlined := paints(sh)
		if filled {
			dc.SetFill(fillOf(sh))
			dc.FillTriangle(t)
		}
		if outlined {
			dc.StrokeTriangle(t)
		}
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidScene, sh.Type)
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func paints(sh Shape) (filled, outlined bool) {
	filled = sh.Fill != "" || sh.Stroke == ""
	return filled, sh.Stroke != ""
}

func fillOf(sh Shape) raster.Pixel {
	if sh.Fill == "" {
		return colors.Black
	}
	return mustColor(sh.Fill)
}

// mustColor parses a color already accepted by Validate.
func mustColor(s string) raster.Pixel {
	p, err := colors.Parse(s)
	if err != nil {
		panic(fmt.Sprintf("scene: unvalidated color %q: %v", s, err))
	}
	return p
}
