package colorutils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp01(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{3.5, 1},
		{math.Inf(1), 1},
		{math.Inf(-1), 0},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Clamp01(tt.in), "Clamp01(%v)", tt.in)
	}
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 1.0, Lerp(1, 0.5, 0))
	assert.Equal(t, 0.5, Lerp(1, 0.5, 1))
	assert.Equal(t, 0.75, Lerp(1, 0.5, 0.5))
}

func TestCmyk2rgb(t *testing.T) {
	assert.Equal(t, [3]float64{1, 1, 1}, Cmyk2rgb([]float64{0, 0, 0, 0}))
	assert.Equal(t, [3]float64{0, 0, 0}, Cmyk2rgb([]float64{0, 0, 0, 100}))
	assert.Equal(t, [3]float64{0, 1, 1}, Cmyk2rgb([]float64{100, 0, 0, 0}))
	assert.Equal(t, [3]float64{0.5, 0.5, 0.5}, Cmyk2rgb([]float64{0, 0, 0, 50}))
}

func TestLab2rgb(t *testing.T) {
	white := Lab2rgb([]float64{100, 0, 0})
	for _, c := range white {
		assert.InDelta(t, 1.0, c, 0.01)
	}

	black := Lab2rgb([]float64{0, 0, 0})
	for _, c := range black {
		assert.InDelta(t, 0.0, c, 0.01)
	}

	// Out-of-gamut values stay in range.
	for _, c := range Lab2rgb([]float64{60, 120, -120}) {
		assert.GreaterOrEqual(t, c, 0.0)
		assert.LessOrEqual(t, c, 1.0)
	}
}
