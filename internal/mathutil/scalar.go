package mathutil

import "errors"

// ErrEmptyRange is returned by MapRange when the source range has zero width.
var ErrEmptyRange = errors.New("mathutil: empty source range")

// Signed covers the types Sgn accepts.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Sgn returns -1, 0 or 1 according to the sign of v.
func Sgn[T Signed](v T) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// MapRange maps x proportionally from [olow, ohigh] onto [rlow, rhigh].
// The mapped value is truncated toward zero after the offset is added, so a
// descending target range rounds toward zero as well.
func MapRange(x, olow, ohigh, rlow, rhigh int) (int, error) {
	odiff := ohigh - olow
	if odiff == 0 {
		return 0, ErrEmptyRange
	}
	rdiff := rhigh - rlow
	return int(float64(rlow) + float64(x-olow)*(float64(rdiff)/float64(odiff))), nil
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
