package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"softfb/internal/colors"
)

// ErrInvalidScene wraps every validation failure.
var ErrInvalidScene = errors.New("scene: invalid")

// Parse decodes a JSON scene and validates it.
func Parse(r io.Reader) (Scene, error) {
	var s Scene
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Scene{}, fmt.Errorf("scene: parse: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Scene{}, err
	}
	return s, nil
}

// Load reads and parses a scene file. A scene without a name takes the
// file's path.
func Load(path string) (Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scene{}, fmt.Errorf("scene: open %s: %w", path, err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return Scene{}, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

// Validate checks dimensions, coordinate counts and colors.
func (s Scene) Validate() error {
	if s.Width == 0 || s.Height == 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidScene, s.Width, s.Height)
	}
	if s.Width > math.MaxUint16+1 || s.Height > math.MaxUint16+1 {
		return fmt.Errorf("%w: size %dx%d exceeds coordinate range", ErrInvalidScene, s.Width, s.Height)
	}
	if s.Background != "" {
		if _, err := colors.Parse(s.Background); err != nil {
			return fmt.Errorf("%w: background: %v", ErrInvalidScene, err)
		}
	}
	for i, sh := range s.Shapes {
		if err := sh.validate(); err != nil {
			return fmt.Errorf("%w: shape %d: %v", ErrInvalidScene, i, err)
		}
	}
	return nil
}

// coordLimit bounds shape coordinates. Off-canvas geometry is allowed and
// clipped, but only within sixteen buffer widths of the largest buffer.
const coordLimit = (math.MaxUint16 + 1) * 16

func (sh Shape) validate() error {
	n, ok := arity[sh.Type]
	if !ok {
		return fmt.Errorf("unknown type %q", sh.Type)
	}
	if len(sh.Points) != n {
		return fmt.Errorf("%s takes %d coordinates, got %d", sh.Type, n, len(sh.Points))
	}
	for _, v := range sh.Points {
		if v < -coordLimit || v > coordLimit {
			return fmt.Errorf("coordinate %d outside ±%d", v, coordLimit)
		}
		if sh.Type == KindTriangle && (v < 0 || v > math.MaxUint16) {
			return fmt.Errorf("triangle coordinate %d out of range", v)
		}
	}
	for _, c := range []string{sh.Stroke, sh.Fill} {
		if c == "" {
			continue
		}
		if _, err := colors.Parse(c); err != nil {
			return err
		}
	}
	return nil
}
