package mathutil

import (
	"errors"
	"math"
	"testing"
)

func TestSgn(t *testing.T) {
	if Sgn(-3) != -1 || Sgn(0) != 0 || Sgn(42) != 1 {
		t.Error("Sgn(int) wrong")
	}
	if Sgn(float32(-0.5)) != -1 || Sgn(0.0) != 0 || Sgn(1e-9) != 1 {
		t.Error("Sgn(float) wrong")
	}
	if Sgn(math.Copysign(0, -1)) != 0 {
		t.Error("Sgn(-0) should be 0")
	}
	if Sgn(int16(-32768)) != -1 {
		t.Error("Sgn(int16 min) wrong")
	}
}

func TestMapRange(t *testing.T) {
	tests := []struct {
		x, olow, ohigh, rlow, rhigh int
		want                        int
	}{
		{5, 0, 10, 0, 100, 50},
		{0, 0, 10, 20, 40, 20},
		{10, 0, 10, 20, 40, 40},
		{3, 0, 10, 0, 1, 0},
		{7, 0, 10, 100, 0, 30},
		{15, 10, 20, 0, -10, -5},
		{1, 0, 3, 0, 10, 3},
		{1, 0, 2, 10, 9, 9},
		{5, 0, 2, 10, 9, 7},
		{1, 0, 4, 3, 2, 2},
		{-1, 0, 4, 0, 10, -2},
	}
	for _, tt := range tests {
		got, err := MapRange(tt.x, tt.olow, tt.ohigh, tt.rlow, tt.rhigh)
		if err != nil {
			t.Errorf("MapRange(%v) error: %v", tt, err)
			continue
		}
		if got != tt.want {
			t.Errorf("MapRange(%d, %d, %d, %d, %d) = %d, want %d",
				tt.x, tt.olow, tt.ohigh, tt.rlow, tt.rhigh, got, tt.want)
		}
	}
}

func TestMapRangeEmptySource(t *testing.T) {
	_, err := MapRange(4, 7, 7, 0, 10)
	if !errors.Is(err, ErrEmptyRange) {
		t.Fatalf("err = %v, want ErrEmptyRange", err)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 9) != 0 || Clamp(10, 0, 9) != 9 || Clamp(4, 0, 9) != 4 {
		t.Error("Clamp wrong")
	}
}
