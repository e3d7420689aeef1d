package sketch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapStrokeStyles(t *testing.T) {
	tests := []struct {
		style string
		width float64
		dash  []float64
	}{
		{StrokeSolid, 2, nil},
		{StrokeDashed, 2.5, []float64{8, 10}},
		{StrokeDotted, 2.5, []float64{1.5, 8}},
	}
	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			o := Map(tt.style, FillSolid, 2, 1, 42)
			assert.Equal(t, tt.width, o.StrokeWidth)
			assert.Equal(t, tt.dash, o.Dash)
		})
	}
}

func TestMapFillDefaults(t *testing.T) {
	o := Map(StrokeSolid, "", 2, 0, 1)
	assert.Equal(t, FillHachure, o.Fill)
	assert.Equal(t, 8.0, o.HachureGap)
	assert.Equal(t, 1.0, o.FillWeight)
	assert.Equal(t, DefaultHachureAngle, o.HachureAngle)
	assert.True(t, o.IsPattern())
	assert.False(t, Map(StrokeSolid, FillSolid, 2, 0, 1).IsPattern())
}

func TestRandomDeterministic(t *testing.T) {
	a, b := NewRandom(12345), NewRandom(12345)
	for i := 0; i < 100; i++ {
		x, y := a.Next(), b.Next()
		assert.Equal(t, x, y)
		assert.GreaterOrEqual(t, x, 0.0)
		assert.Less(t, x, 1.0)
	}
	// first value of the sequence for seed 1: 48271 / 2^31
	assert.InDelta(t, 48271.0/(1<<31), NewRandom(1).Next(), 1e-15)
	assert.Equal(t, NewRandom(0).Next(), NewRandom(1).Next())
}
