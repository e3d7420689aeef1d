package filter

import (
	"math"
	"testing"
)

func TestInvertMatrixFull(t *testing.T) {
	m := InvertMatrix(1)
	r, g, b := m.Apply(0, 100, 255)
	if r != 255 || g != 155 || b != 0 {
		t.Errorf("invert(100%%) = %d,%d,%d, want 255,155,0", r, g, b)
	}
}

func TestHueRotate180Constants(t *testing.T) {
	want := ColorMatrix{
		-0.574, 1.430, 0.144, 0,
		0.426, 0.430, 0.144, 0,
		0.426, 1.430, -0.856, 0,
	}
	got := hueRotate(-1, 0)
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("m[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestHueRotatePreservesGray(t *testing.T) {
	rad := 73 * math.Pi / 180
	m := hueRotate(math.Cos(rad), math.Sin(rad))
	r, g, b := m.Apply(128, 128, 128)
	if r != 128 || g != 128 || b != 128 {
		t.Errorf("gray rotated to %d,%d,%d", r, g, b)
	}
}

func TestClampRound(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{-3, 0},
		{0.49, 0},
		{0.5, 1},
		{254.6, 255},
		{300, 255},
	}
	for _, tt := range tests {
		if got := clampRound(tt.in); got != tt.want {
			t.Errorf("clampRound(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
